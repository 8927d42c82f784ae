package helper

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/naolatam/SN-radio-sub000/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	"gorm.io/gorm"
)

// HTTPHelper centralizes the JSON envelope every handler speaks:
// {"success": true, "data": ...} on success and
// {"success": false, "error": "..."} on failure.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (u *HTTPHelper) SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": message})
}

func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"success": false, "error": message})
}

func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": message})
}

func (u *HTTPHelper) SendConflictError(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"success": false, "error": message})
}

// SendServiceError maps the service error taxonomy onto status codes.
// Anything untyped is a 500 with a generic message so internals never leak.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) {
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &validationErr):
		u.SendBadRequest(c, validationErr.Error())
	case errors.Is(err, models.ErrNotFound):
		u.SendNotFoundError(c, "resource not found")
	case errors.Is(err, models.ErrForbidden):
		u.SendForbiddenError(c, "you are not allowed to modify this resource")
	case errors.Is(err, models.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		// Duplicated-key surfaces when a unique constraint wins a race the
		// service-level existence check lost.
		u.SendConflictError(c, "resource already exists or is still referenced")
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
	}
}

// SendValidationError translates gin binding failures field by field.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "validation failed",
		"fields":  errorResponse,
	})
}

// Underscore converts a StructField name to its snake_case JSON key.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path + "?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
}

// GeneratePaging builds the pagination block returned alongside lists.
func (u *HTTPHelper) GeneratePaging(c *gin.Context, limit, page int, totalRecord int64) map[string]interface{} {
	prevURL, nextURL := "", ""

	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	if page > 1 && page <= totalPages {
		prevURL = u.GetPagingUrl(c, page-1, limit)
	}
	if page < totalPages {
		nextURL = u.GetPagingUrl(c, page+1, limit)
	}

	return map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
		"links": map[string]interface{}{
			"previous": prevURL,
			"next":     nextURL,
		},
	}
}
