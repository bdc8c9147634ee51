package photo

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor *Processor
}

func NewHandler(p *Processor) *Handler {
	return &Handler{processor: p}
}

// Upload accepts a standalone photo upload ahead of form submission.
func (h *Handler) Upload(c *gin.Context) {
	fh, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No photo uploaded"})
		return
	}
	path, url, err := h.processor.Process(fh)
	if err != nil {
		if errors.Is(err, ErrTooLarge) || errors.Is(err, ErrInvalidType) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"photo_path": path,
		"photo_url":  url,
	})
}
