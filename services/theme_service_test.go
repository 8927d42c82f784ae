package services

import (
	"testing"

	"github.com/naolatam/SN-radio-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newThemeService(t *testing.T) (ThemeService, *fakeThemeRepo) {
	t.Helper()
	repo := newFakeThemeRepo()
	return NewThemeService(repo), repo
}

func TestCreateThemeDefaultsColors(t *testing.T) {
	svc, _ := newThemeService(t)

	theme, err := svc.CreateTheme(models.CreateThemeRequest{Name: "Night"})
	require.NoError(t, err)
	assert.Equal(t, "{}", theme.Colors)
	assert.False(t, theme.IsDefault)
}

func TestCreateThemeDuplicateNameConflicts(t *testing.T) {
	svc, _ := newThemeService(t)

	_, err := svc.CreateTheme(models.CreateThemeRequest{Name: "Night"})
	require.NoError(t, err)

	_, err = svc.CreateTheme(models.CreateThemeRequest{Name: "Night"})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestSettingDefaultClearsPrevious(t *testing.T) {
	svc, _ := newThemeService(t)

	first, err := svc.CreateTheme(models.CreateThemeRequest{Name: "Day", IsDefault: true})
	require.NoError(t, err)

	second, err := svc.CreateTheme(models.CreateThemeRequest{Name: "Night", IsDefault: true})
	require.NoError(t, err)

	current, err := svc.GetDefaultTheme()
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)

	reloaded, err := svc.GetTheme(first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)
}

func TestUpdateThemeSwapsDefault(t *testing.T) {
	svc, _ := newThemeService(t)

	first, err := svc.CreateTheme(models.CreateThemeRequest{Name: "Day", IsDefault: true})
	require.NoError(t, err)
	second, err := svc.CreateTheme(models.CreateThemeRequest{Name: "Night"})
	require.NoError(t, err)

	makeDefault := true
	_, err = svc.UpdateTheme(second.ID, models.UpdateThemeRequest{IsDefault: &makeDefault})
	require.NoError(t, err)

	current, err := svc.GetDefaultTheme()
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)

	reloaded, err := svc.GetTheme(first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)
}

func TestDeleteDefaultThemeConflicts(t *testing.T) {
	svc, _ := newThemeService(t)

	theme, err := svc.CreateTheme(models.CreateThemeRequest{Name: "Day", IsDefault: true})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteTheme(theme.ID), models.ErrConflict)
}

func TestDeleteNonDefaultTheme(t *testing.T) {
	svc, repo := newThemeService(t)

	theme, err := svc.CreateTheme(models.CreateThemeRequest{Name: "Night"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTheme(theme.ID))
	assert.Empty(t, repo.themes)
}

func TestGetDefaultThemeNotFound(t *testing.T) {
	svc, _ := newThemeService(t)
	_, err := svc.GetDefaultTheme()
	assert.ErrorIs(t, err, models.ErrNotFound)
}
