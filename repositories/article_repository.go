package repositories

import (
	"fmt"

	"github.com/naolatam/SN-radio-sub000/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetList(params models.ArticleListParams) ([]models.Article, int64, error)
	Update(article *models.Article) error
	ReplaceCategories(article *models.Article, categories []models.Category) error
	Delete(id uint) error
	CountByCategory(categoryID uint) (int64, error)

	CountLikes(articleID uint) (int64, error)
	CreateLike(like *models.ArticleLike) error
	DeleteLike(articleID, userID uint) (bool, error)
	LikedByUser(userID uint, articleIDs []uint) (map[uint]bool, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Categories").
		First(&article, id).Error
	return &article, err
}

// Columns a caller may sort on. "likes" is special-cased below because it
// sorts on a derived count, not a column.
var sortableColumns = map[string]bool{
	"published_at": true,
	"updated_at":   true,
}

func (r *articleRepository) GetList(params models.ArticleListParams) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).
		Preload("Author").
		Preload("Categories")

	if params.Category != "" {
		query = query.Joins("JOIN article_categories ON article_categories.article_id = articles.id").
			Joins("JOIN categories ON categories.id = article_categories.category_id").
			Where("categories.slug = ?", params.Category)
	}

	if params.AuthorID > 0 {
		query = query.Where("articles.author_id = ?", params.AuthorID)
	}

	if params.Headline != nil {
		query = query.Where("articles.is_headline = ?", *params.Headline)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("articles.title ILIKE ? OR articles.resume ILIKE ? OR articles.content ILIKE ?",
			pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortOrder := "desc"
	if params.SortOrder == "asc" {
		sortOrder = "asc"
	}

	switch {
	case params.SortBy == "likes":
		query = query.Order(fmt.Sprintf(
			"(SELECT COUNT(*) FROM article_likes WHERE article_likes.article_id = articles.id) %s", sortOrder))
	case sortableColumns[params.SortBy]:
		query = query.Order(fmt.Sprintf("articles.%s %s", params.SortBy, sortOrder))
	default:
		query = query.Order(fmt.Sprintf("articles.published_at %s", sortOrder))
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) ReplaceCategories(article *models.Article, categories []models.Category) error {
	return r.db.Model(article).Association("Categories").Replace(categories)
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

func (r *articleRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Joins("JOIN article_categories ON article_categories.article_id = articles.id").
		Where("article_categories.category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func (r *articleRepository) CountLikes(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ArticleLike{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	return count, err
}

func (r *articleRepository) CreateLike(like *models.ArticleLike) error {
	return r.db.Create(like).Error
}

// DeleteLike reports whether a row was actually removed so the toggle can
// tell an undo apart from a no-op.
func (r *articleRepository) DeleteLike(articleID, userID uint) (bool, error) {
	result := r.db.Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&models.ArticleLike{})
	return result.RowsAffected > 0, result.Error
}

func (r *articleRepository) LikedByUser(userID uint, articleIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool)
	if userID == 0 || len(articleIDs) == 0 {
		return liked, nil
	}

	var likes []models.ArticleLike
	err := r.db.Where("user_id = ? AND article_id IN ?", userID, articleIDs).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}

	for _, like := range likes {
		liked[like.ArticleID] = true
	}
	return liked, nil
}
