package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login issues a session token for valid credentials.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	token, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"token":    token,
		"username": req.Username,
	})
}

// Logout invalidates the presented token.
func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout(TokenFromRequest(c))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// Verify lets the admin panel check whether its stored token is still valid.
func (h *Handler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "username": h.service.Username()})
}

// TokenFromRequest extracts the admin token from the Authorization Bearer
// header, falling back to X-Admin-Token.
func TokenFromRequest(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.GetHeader("X-Admin-Token")
}
