package repositories

import (
	"github.com/naolatam/SN-radio-sub000/models"

	"gorm.io/gorm"
)

type ThemeRepository interface {
	Create(theme *models.Theme) error
	GetByID(id uint) (*models.Theme, error)
	GetByName(name string) (*models.Theme, error)
	GetAll() ([]models.Theme, error)
	GetDefault() (*models.Theme, error)
	Update(theme *models.Theme) error
	Delete(id uint) error
	ClearDefault() error
}

type themeRepository struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) ThemeRepository {
	return &themeRepository{db: db}
}

func (r *themeRepository) Create(theme *models.Theme) error {
	return r.db.Create(theme).Error
}

func (r *themeRepository) GetByID(id uint) (*models.Theme, error) {
	var theme models.Theme
	err := r.db.First(&theme, id).Error
	return &theme, err
}

func (r *themeRepository) GetByName(name string) (*models.Theme, error) {
	var theme models.Theme
	err := r.db.Where("name = ?", name).First(&theme).Error
	return &theme, err
}

func (r *themeRepository) GetAll() ([]models.Theme, error) {
	var themes []models.Theme
	err := r.db.Order("name asc").Find(&themes).Error
	return themes, err
}

func (r *themeRepository) GetDefault() (*models.Theme, error) {
	var theme models.Theme
	err := r.db.Where("is_default = ?", true).First(&theme).Error
	return &theme, err
}

func (r *themeRepository) Update(theme *models.Theme) error {
	return r.db.Save(theme).Error
}

func (r *themeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Theme{}, id).Error
}

// ClearDefault unsets the current default before another theme takes it.
func (r *themeRepository) ClearDefault() error {
	return r.db.Model(&models.Theme{}).
		Where("is_default = ?", true).
		Update("is_default", false).Error
}
