package services

import (
	"testing"

	"github.com/naolatam/SN-radio-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryService(t *testing.T) (CategoryService, *fakeCategoryRepo, *fakeArticleRepo) {
	t.Helper()
	categoryRepo := newFakeCategoryRepo()
	articleRepo := newFakeArticleRepo()
	return NewCategoryService(categoryRepo, articleRepo), categoryRepo, articleRepo
}

func TestCreateCategory(t *testing.T) {
	svc, _, _ := newCategoryService(t)

	category, err := svc.CreateCategory(models.CreateCategoryRequest{
		Name:  "Music",
		Slug:  "music",
		Color: "#ff0000",
	})
	require.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "music", category.Slug)
}

func TestCreateCategoryDuplicateSlugConflicts(t *testing.T) {
	svc, _, _ := newCategoryService(t)

	_, err := svc.CreateCategory(models.CreateCategoryRequest{Name: "Music", Slug: "music"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(models.CreateCategoryRequest{Name: "More music", Slug: "music"})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestUpdateCategorySlugConflict(t *testing.T) {
	svc, _, _ := newCategoryService(t)

	first, err := svc.CreateCategory(models.CreateCategoryRequest{Name: "Music", Slug: "music"})
	require.NoError(t, err)
	second, err := svc.CreateCategory(models.CreateCategoryRequest{Name: "News", Slug: "news"})
	require.NoError(t, err)

	slug := first.Slug
	_, err = svc.UpdateCategory(second.ID, models.UpdateCategoryRequest{Slug: &slug})
	assert.ErrorIs(t, err, models.ErrConflict)

	// Re-submitting its own slug is not a conflict.
	own := second.Slug
	updated, err := svc.UpdateCategory(second.ID, models.UpdateCategoryRequest{Slug: &own})
	require.NoError(t, err)
	assert.Equal(t, "news", updated.Slug)
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	svc, categoryRepo, articleRepo := newCategoryService(t)

	category, err := svc.CreateCategory(models.CreateCategoryRequest{Name: "Music", Slug: "music"})
	require.NoError(t, err)

	require.NoError(t, articleRepo.Create(&models.Article{
		Title:      "Chart show",
		Categories: []models.Category{*category},
	}))

	assert.ErrorIs(t, svc.DeleteCategory(category.ID), models.ErrConflict)
	_, err = categoryRepo.GetByID(category.ID)
	assert.NoError(t, err)
}

func TestDeleteCategoryUnreferenced(t *testing.T) {
	svc, categoryRepo, _ := newCategoryService(t)

	category, err := svc.CreateCategory(models.CreateCategoryRequest{Name: "Music", Slug: "music"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(category.ID))
	assert.Empty(t, categoryRepo.categories)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc, _, _ := newCategoryService(t)
	assert.ErrorIs(t, svc.DeleteCategory(42), models.ErrNotFound)
}
