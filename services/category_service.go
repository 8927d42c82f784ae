package services

import (
	"errors"

	"github.com/naolatam/SN-radio-sub000/models"
	"github.com/naolatam/SN-radio-sub000/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(id uint) error
	GetCategory(id uint) (*models.Category, error)
	GetCategories() ([]models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	articleRepo  repositories.ArticleRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, articleRepo repositories.ArticleRepository) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		articleRepo:  articleRepo,
	}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	if err := s.ensureSlugFree(req.Slug, 0); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:  req.Name,
		Slug:  req.Slug,
		Color: req.Color,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if req.Slug != nil && *req.Slug != category.Slug {
		if err := s.ensureSlugFree(*req.Slug, category.ID); err != nil {
			return nil, err
		}
		category.Slug = *req.Slug
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses to remove a category still referenced by articles.
func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	count, err := s.articleRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrConflict
	}

	return s.categoryRepo.Delete(id)
}

func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) ensureSlugFree(slug string, selfID uint) error {
	existing, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return models.ErrConflict
	}
	return nil
}
