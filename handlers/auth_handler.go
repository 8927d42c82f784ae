package handlers

import (
	"github.com/naolatam/SN-radio-sub000/helper"
	"github.com/naolatam/SN-radio-sub000/models"
	"github.com/naolatam/SN-radio-sub000/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		Helper:      &helper.HTTPHelper{},
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, response)
}

// CreateAccount lets an admin provision accounts with a role, which is how
// staff join the roster. Unlike Register it never issues a token.
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.authService.CreateAccount(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendUnauthorizedError(c, err.Error())
		return
	}

	h.Helper.SendSuccess(c, response)
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	user, err := h.authService.GetUserByID(viewerID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, user)
}

// GetTeam is the public staff roster for the team page.
func (h *AuthHandler) GetTeam(c *gin.Context) {
	members, err := h.authService.GetTeam()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, members)
}
