package helper

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/naolatam/SN-radio-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/articles?page=2&limit=10", nil)
	return c, w
}

func TestSendServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", models.NewValidationError("content must not be empty"), http.StatusBadRequest},
		{"not found", models.ErrNotFound, http.StatusNotFound},
		{"forbidden", models.ErrForbidden, http.StatusForbidden},
		{"conflict", models.ErrConflict, http.StatusConflict},
		{"duplicate key", gorm.ErrDuplicatedKey, http.StatusConflict},
		{"wrapped duplicate key", fmt.Errorf("creating category: %w", gorm.ErrDuplicatedKey), http.StatusConflict},
		{"unexpected", errors.New("pq: connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := testContext()
			h := &HTTPHelper{}
			h.SendServiceError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestSendServiceErrorHidesInternals(t *testing.T) {
	c, w := testContext()
	h := &HTTPHelper{}
	h.SendServiceError(c, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestSendSuccessEnvelope(t *testing.T) {
	c, w := testContext()
	h := &HTTPHelper{}
	h.SendSuccess(c, gin.H{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"hello":"world"`)
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "picture_url", Underscore("PictureUrl"))
	assert.Equal(t, "title", Underscore("Title"))
	assert.Equal(t, "is_headline", Underscore("IsHeadline"))
}

func TestGeneratePaging(t *testing.T) {
	c, _ := testContext()
	h := &HTTPHelper{}

	paging := h.GeneratePaging(c, 10, 2, 35)

	assert.Equal(t, int64(35), paging["total_records"])
	assert.Equal(t, 4, paging["total_pages"])
	assert.Equal(t, 2, paging["current_page"])

	links := paging["links"].(map[string]interface{})
	assert.Contains(t, links["previous"], "page=1")
	assert.Contains(t, links["next"], "page=3")
}

func TestGeneratePagingFirstAndLastPage(t *testing.T) {
	c, _ := testContext()
	h := &HTTPHelper{}

	first := h.GeneratePaging(c, 10, 1, 35)
	links := first["links"].(map[string]interface{})
	assert.Equal(t, "", links["previous"])
	assert.NotEqual(t, "", links["next"])

	last := h.GeneratePaging(c, 10, 4, 35)
	links = last["links"].(map[string]interface{})
	assert.NotEqual(t, "", links["previous"])
	assert.Equal(t, "", links["next"])
}
