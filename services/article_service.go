package services

import (
	"errors"

	"github.com/naolatam/SN-radio-sub000/models"
	"github.com/naolatam/SN-radio-sub000/repositories"
	"github.com/naolatam/SN-radio-sub000/sanitizer"

	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, authorID uint) (*models.Article, error)
	UpdateArticle(id uint, req models.UpdateArticleRequest, userID uint, role models.UserRole) (*models.Article, error)
	DeleteArticle(id uint, userID uint, role models.UserRole) error
	GetArticle(id uint, viewerID uint) (*models.Article, error)
	GetArticles(params models.ArticleListParams, viewerID uint) ([]models.Article, int64, error)
	ToggleLike(articleID, userID uint) (*models.ToggleLikeResponse, error)
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository, categoryRepo repositories.CategoryRepository) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
	}
}

// canModify is the single ownership policy for article mutation: the author
// may always modify their own article, staff and admin may modify any.
func canModify(article *models.Article, userID uint, role models.UserRole) bool {
	return article.AuthorID == userID || role.IsStaff()
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, authorID uint) (*models.Article, error) {
	if result := sanitizer.ValidateContent(req.Content); !result.IsValid {
		return nil, models.NewValidationError(result.Errors...)
	}

	categories, err := s.resolveCategories(req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	html := sanitizer.MarkdownToHTML(req.Content)
	article := &models.Article{
		AuthorID:    authorID,
		Title:       req.Title,
		Resume:      req.Resume,
		Content:     req.Content,
		ContentHTML: &html,
		PictureURL:  req.PictureURL,
		IsHeadline:  req.IsHeadline,
		Categories:  categories,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.GetArticle(article.ID, authorID)
}

func (s *articleService) UpdateArticle(id uint, req models.UpdateArticleRequest, userID uint, role models.UserRole) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if !canModify(article, userID, role) {
		return nil, models.ErrForbidden
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Resume != nil {
		article.Resume = *req.Resume
	}
	if req.PictureURL != nil {
		article.PictureURL = *req.PictureURL
	}
	if req.IsHeadline != nil {
		article.IsHeadline = *req.IsHeadline
	}

	// ContentHTML is only regenerated when the payload carries content.
	// A partial update of other fields keeps the stored HTML as-is.
	if req.Content != nil {
		if result := sanitizer.ValidateContent(*req.Content); !result.IsValid {
			return nil, models.NewValidationError(result.Errors...)
		}
		article.Content = *req.Content
		html := sanitizer.MarkdownToHTML(*req.Content)
		article.ContentHTML = &html
	}

	if req.CategoryIDs != nil {
		categories, err := s.resolveCategories(*req.CategoryIDs)
		if err != nil {
			return nil, err
		}
		if err := s.articleRepo.ReplaceCategories(article, categories); err != nil {
			return nil, err
		}
		article.Categories = categories
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return s.GetArticle(article.ID, userID)
}

func (s *articleService) DeleteArticle(id uint, userID uint, role models.UserRole) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	if !canModify(article, userID, role) {
		return models.ErrForbidden
	}

	return s.articleRepo.Delete(id)
}

func (s *articleService) GetArticle(id uint, viewerID uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if err := s.decorate([]*models.Article{article}, viewerID); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams, viewerID uint) ([]models.Article, int64, error) {
	articles, total, err := s.articleRepo.GetList(params)
	if err != nil {
		return nil, 0, err
	}

	refs := make([]*models.Article, len(articles))
	for i := range articles {
		refs[i] = &articles[i]
	}
	if err := s.decorate(refs, viewerID); err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// ToggleLike flips the (article, user) like row. The insert is attempted
// first and a duplicate-key failure means the row already exists, so the
// unique constraint is the arbiter under concurrent toggles, not a prior
// existence check. The returned count is recomputed after the mutation.
func (s *articleService) ToggleLike(articleID, userID uint) (*models.ToggleLikeResponse, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	liked := true
	err := s.articleRepo.CreateLike(&models.ArticleLike{ArticleID: articleID, UserID: userID})
	if err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// Already liked: this toggle removes it.
		if _, err := s.articleRepo.DeleteLike(articleID, userID); err != nil {
			return nil, err
		}
		liked = false
	}

	likes, err := s.articleRepo.CountLikes(articleID)
	if err != nil {
		return nil, err
	}

	return &models.ToggleLikeResponse{Liked: liked, Likes: likes}, nil
}

func (s *articleService) resolveCategories(ids []uint) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, models.NewValidationError("one or more categories do not exist")
	}
	return categories, nil
}

// decorate fills the derived like fields on loaded articles. The viewer
// flag is only populated for an authenticated viewer (viewerID > 0).
func (s *articleService) decorate(articles []*models.Article, viewerID uint) error {
	ids := make([]uint, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
	}

	likedSet, err := s.articleRepo.LikedByUser(viewerID, ids)
	if err != nil {
		return err
	}

	for _, a := range articles {
		count, err := s.articleRepo.CountLikes(a.ID)
		if err != nil {
			return err
		}
		a.Likes = count
		a.IsLikedByCurrentUser = likedSet[a.ID]
	}
	return nil
}
