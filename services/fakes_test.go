package services

import (
	"sort"
	"strings"

	"github.com/naolatam/SN-radio-sub000/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. They return copies of stored rows so a test
// can assert the store was not mutated through a returned pointer, and they
// reproduce the two gorm errors the services dispatch on.

type fakeArticleRepo struct {
	articles map[uint]*models.Article
	likes    map[[2]uint]bool
	nextID   uint
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles: make(map[uint]*models.Article),
		likes:    make(map[[2]uint]bool),
	}
}

func (r *fakeArticleRepo) Create(article *models.Article) error {
	r.nextID++
	article.ID = r.nextID
	stored := *article
	r.articles[article.ID] = &stored
	return nil
}

func (r *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	stored, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *stored
	return &cp, nil
}

// GetList applies the same filter, sort and pagination semantics as the
// gorm implementation so service-level listing tests exercise the full
// parameter surface.
func (r *fakeArticleRepo) GetList(params models.ArticleListParams) ([]models.Article, int64, error) {
	matched := make([]models.Article, 0, len(r.articles))
	for _, a := range r.articles {
		if params.Category != "" && !hasCategorySlug(a, params.Category) {
			continue
		}
		if params.AuthorID != 0 && a.AuthorID != params.AuthorID {
			continue
		}
		if params.Headline != nil && a.IsHeadline != *params.Headline {
			continue
		}
		if params.Search != "" && !matchesSearch(a, params.Search) {
			continue
		}
		matched = append(matched, *a)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch params.SortBy {
		case "updated_at":
			less = matched[i].UpdatedAt.Before(matched[j].UpdatedAt)
		case "likes":
			less = r.countLikes(matched[i].ID) < r.countLikes(matched[j].ID)
		default:
			less = matched[i].PublishedAt.Before(matched[j].PublishedAt)
		}
		if params.SortOrder == "asc" {
			return less
		}
		return !less
	})

	total := int64(len(matched))

	page, limit := params.Page, params.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return []models.Article{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func hasCategorySlug(a *models.Article, slug string) bool {
	for _, cat := range a.Categories {
		if cat.Slug == slug {
			return true
		}
	}
	return false
}

func matchesSearch(a *models.Article, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{a.Title, a.Resume, a.Content} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (r *fakeArticleRepo) countLikes(articleID uint) int64 {
	var count int64
	for key := range r.likes {
		if key[0] == articleID {
			count++
		}
	}
	return count
}

func (r *fakeArticleRepo) Update(article *models.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *article
	r.articles[article.ID] = &stored
	return nil
}

func (r *fakeArticleRepo) ReplaceCategories(article *models.Article, categories []models.Category) error {
	stored, ok := r.articles[article.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Categories = categories
	return nil
}

func (r *fakeArticleRepo) Delete(id uint) error {
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	for _, a := range r.articles {
		for _, cat := range a.Categories {
			if cat.ID == categoryID {
				count++
				break
			}
		}
	}
	return count, nil
}

func (r *fakeArticleRepo) CountLikes(articleID uint) (int64, error) {
	return r.countLikes(articleID), nil
}

func (r *fakeArticleRepo) CreateLike(like *models.ArticleLike) error {
	key := [2]uint{like.ArticleID, like.UserID}
	if r.likes[key] {
		return gorm.ErrDuplicatedKey
	}
	r.likes[key] = true
	return nil
}

func (r *fakeArticleRepo) DeleteLike(articleID, userID uint) (bool, error) {
	key := [2]uint{articleID, userID}
	if !r.likes[key] {
		return false, nil
	}
	delete(r.likes, key)
	return true, nil
}

func (r *fakeArticleRepo) LikedByUser(userID uint, articleIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool)
	if userID == 0 {
		return liked, nil
	}
	for _, id := range articleIDs {
		if r.likes[[2]uint{id, userID}] {
			liked[id] = true
		}
	}
	return liked, nil
}

type fakeCategoryRepo struct {
	categories map[uint]*models.Category
	nextID     uint
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uint]*models.Category)}
}

func (r *fakeCategoryRepo) Create(category *models.Category) error {
	r.nextID++
	category.ID = r.nextID
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *fakeCategoryRepo) GetByID(id uint) (*models.Category, error) {
	stored, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *stored
	return &cp, nil
}

func (r *fakeCategoryRepo) GetBySlug(slug string) (*models.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) GetByIDs(ids []uint) ([]models.Category, error) {
	out := make([]models.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) GetAll() ([]models.Category, error) {
	out := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(category *models.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *fakeCategoryRepo) Delete(id uint) error {
	delete(r.categories, id)
	return nil
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	stored, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *stored
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetTeam() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role.IsStaff() {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

type fakeThemeRepo struct {
	themes map[uint]*models.Theme
	nextID uint
}

func newFakeThemeRepo() *fakeThemeRepo {
	return &fakeThemeRepo{themes: make(map[uint]*models.Theme)}
}

func (r *fakeThemeRepo) Create(theme *models.Theme) error {
	r.nextID++
	theme.ID = r.nextID
	stored := *theme
	r.themes[theme.ID] = &stored
	return nil
}

func (r *fakeThemeRepo) GetByID(id uint) (*models.Theme, error) {
	stored, ok := r.themes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *stored
	return &cp, nil
}

func (r *fakeThemeRepo) GetByName(name string) (*models.Theme, error) {
	for _, t := range r.themes {
		if t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeThemeRepo) GetAll() ([]models.Theme, error) {
	out := make([]models.Theme, 0, len(r.themes))
	for _, t := range r.themes {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeThemeRepo) GetDefault() (*models.Theme, error) {
	for _, t := range r.themes {
		if t.IsDefault {
			cp := *t
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeThemeRepo) Update(theme *models.Theme) error {
	if _, ok := r.themes[theme.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *theme
	r.themes[theme.ID] = &stored
	return nil
}

func (r *fakeThemeRepo) Delete(id uint) error {
	delete(r.themes, id)
	return nil
}

func (r *fakeThemeRepo) ClearDefault() error {
	for _, t := range r.themes {
		t.IsDefault = false
	}
	return nil
}
