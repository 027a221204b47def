package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guilhermemendeslima/clickcell-system/internal/dto"
	"github.com/guilhermemendeslima/clickcell-system/internal/middleware"
	"github.com/guilhermemendeslima/clickcell-system/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	h.svc.Logout(claims.ID)
	c.Status(http.StatusNoContent)
}

// Me returns the current session identity.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	c.JSON(http.StatusOK, dto.UserResponse{
		ID:     claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   claims.Role,
		Avatar: claims.Avatar,
	})
}
