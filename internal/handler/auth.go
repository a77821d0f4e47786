package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftroots/storefront/internal/state"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	auth *state.Auth
}

func NewAuthHandler(auth *state.Auth) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password) {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}
	c.JSON(http.StatusCreated, h.auth.State())
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.auth.Login(c.Request.Context(), req.Email, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, h.auth.State())
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout()
	c.Status(http.StatusNoContent)
}

// Session returns the current auth state for the navigation view.
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, h.auth.State())
}
