package handler

import (
	"net/http"

	"partsdesk/internal/apierror"
	"partsdesk/internal/dto"
	"partsdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Operator login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body that does not parse is treated as a server-side failure,
		// matching the deployed auth endpoint's contract.
		c.JSON(http.StatusInternalServerError, apierror.New("Server error. Please try again."))
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		// Always the same generic message — never reveals whether the user
		// or the password was wrong.
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid credentials"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
