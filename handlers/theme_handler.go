package handlers

import (
	"strconv"

	"github.com/naolatam/SN-radio-sub000/helper"
	"github.com/naolatam/SN-radio-sub000/models"
	"github.com/naolatam/SN-radio-sub000/services"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themeService services.ThemeService
	Helper       *helper.HTTPHelper
}

func NewThemeHandler(themeService services.ThemeService) *ThemeHandler {
	return &ThemeHandler{
		themeService: themeService,
		Helper:       &helper.HTTPHelper{},
	}
}

func (h *ThemeHandler) CreateTheme(c *gin.Context) {
	var req models.CreateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	theme, err := h.themeService.CreateTheme(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, theme)
}

func (h *ThemeHandler) UpdateTheme(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid theme ID")
		return
	}

	var req models.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	theme, err := h.themeService.UpdateTheme(uint(id), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, theme)
}

func (h *ThemeHandler) DeleteTheme(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid theme ID")
		return
	}

	if err := h.themeService.DeleteTheme(uint(id)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"message": "theme deleted"})
}

func (h *ThemeHandler) GetThemes(c *gin.Context) {
	themes, err := h.themeService.GetThemes()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, themes)
}

func (h *ThemeHandler) GetDefaultTheme(c *gin.Context) {
	theme, err := h.themeService.GetDefaultTheme()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, theme)
}

func (h *ThemeHandler) GetTheme(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid theme ID")
		return
	}

	theme, err := h.themeService.GetTheme(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, theme)
}
