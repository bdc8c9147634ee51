package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(s *Store) *Handler {
	return &Handler{store: s}
}

// Get serves the current settings. Used by both the public site header and
// the admin panel form.
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.store.Get()})
}

// Update merges the posted keys over the stored settings.
func (h *Handler) Update(c *gin.Context) {
	var partial map[string]any
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	merged, err := h.store.Update(partial)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Settings updated successfully",
		"data":    merged,
	})
}

// UploadLogo replaces the organization logo.
func (h *Handler) UploadLogo(c *gin.Context) {
	fh, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No logo uploaded"})
		return
	}
	logoPath, err := h.store.UploadLogo(fh)
	if err != nil {
		if errors.Is(err, ErrLogoTooLarge) || errors.Is(err, ErrLogoInvalidType) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save logo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"path":    logoPath,
		"message": "Logo uploaded successfully",
	})
}
