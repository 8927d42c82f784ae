package services

import (
	"errors"

	"github.com/naolatam/SN-radio-sub000/models"
	"github.com/naolatam/SN-radio-sub000/repositories"

	"gorm.io/gorm"
)

type ThemeService interface {
	CreateTheme(req models.CreateThemeRequest) (*models.Theme, error)
	UpdateTheme(id uint, req models.UpdateThemeRequest) (*models.Theme, error)
	DeleteTheme(id uint) error
	GetTheme(id uint) (*models.Theme, error)
	GetThemes() ([]models.Theme, error)
	GetDefaultTheme() (*models.Theme, error)
}

type themeService struct {
	themeRepo repositories.ThemeRepository
}

func NewThemeService(themeRepo repositories.ThemeRepository) ThemeService {
	return &themeService{themeRepo: themeRepo}
}

func (s *themeService) CreateTheme(req models.CreateThemeRequest) (*models.Theme, error) {
	if _, err := s.themeRepo.GetByName(req.Name); err == nil {
		return nil, models.ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	colors := req.Colors
	if colors == "" {
		colors = "{}"
	}

	if req.IsDefault {
		if err := s.themeRepo.ClearDefault(); err != nil {
			return nil, err
		}
	}

	theme := &models.Theme{
		Name:      req.Name,
		Colors:    colors,
		IsDefault: req.IsDefault,
	}

	if err := s.themeRepo.Create(theme); err != nil {
		return nil, err
	}
	return theme, nil
}

func (s *themeService) UpdateTheme(id uint, req models.UpdateThemeRequest) (*models.Theme, error) {
	theme, err := s.themeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != theme.Name {
		if _, err := s.themeRepo.GetByName(*req.Name); err == nil {
			return nil, models.ErrConflict
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		theme.Name = *req.Name
	}
	if req.Colors != nil {
		theme.Colors = *req.Colors
	}
	if req.IsDefault != nil && *req.IsDefault != theme.IsDefault {
		if *req.IsDefault {
			if err := s.themeRepo.ClearDefault(); err != nil {
				return nil, err
			}
		}
		theme.IsDefault = *req.IsDefault
	}

	if err := s.themeRepo.Update(theme); err != nil {
		return nil, err
	}
	return theme, nil
}

// DeleteTheme refuses to remove the default theme; the site always needs
// one to fall back to.
func (s *themeService) DeleteTheme(id uint) error {
	theme, err := s.themeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	if theme.IsDefault {
		return models.ErrConflict
	}

	return s.themeRepo.Delete(id)
}

func (s *themeService) GetTheme(id uint) (*models.Theme, error) {
	theme, err := s.themeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return theme, nil
}

func (s *themeService) GetThemes() ([]models.Theme, error) {
	return s.themeRepo.GetAll()
}

func (s *themeService) GetDefaultTheme() (*models.Theme, error) {
	theme, err := s.themeRepo.GetDefault()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return theme, nil
}
