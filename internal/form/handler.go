package form

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	schema    *Schema
	validator *Validator
}

func NewHandler(schema *Schema, validator *Validator) *Handler {
	return &Handler{schema: schema, validator: validator}
}

// GetConfig returns the form field schema consumed by the form wizard.
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"fields":  h.schema.ConfigPayload(),
	})
}

type validateRequest struct {
	Step string         `json:"step"`
	Data map[string]any `json:"data"`
}

// Validate checks one wizard step (or the full form when step is empty) and
// always answers 200; success reflects the validation outcome.
func (h *Handler) Validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if req.Data == nil {
		req.Data = map[string]any{}
	}

	var result Result
	if req.Step != "" {
		result = h.validator.ValidateStep(req.Step, req.Data)
	} else {
		result = h.validator.Validate(req.Data)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": result.IsValid,
		"errors":  result.Errors,
		"data":    result.Sanitized,
	})
}
