package submission

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Exporter converts summaries to a downloadable report.
type Exporter interface {
	Export(format string, rows []Summary) (data []byte, filename, contentType string, err error)
}

type Handler struct {
	service  *Service
	exporter Exporter
}

func NewHandler(s *Service, e Exporter) *Handler {
	return &Handler{service: s, exporter: e}
}

// Submit handles the public form submission.
func (h *Handler) Submit(c *gin.Context) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No form data received"})
		return
	}

	id, fieldErrors, err := h.service.Submit(c.Request.Context(), data, Meta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to process submission"})
		return
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusOK, gin.H{"success": false, "errors": fieldErrors})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"submission_id": id,
		"message":       "Form submitted successfully",
	})
}

// Download serves the applicant's own PDF right after submission.
func (h *Handler) Download(c *gin.Context) {
	id := c.Param("id")
	path, err := h.service.PDFPath(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "PDF not found"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="jcs_membership_%s.pdf"`, id))
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}

// List serves the paginated admin listing.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.service.List(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error retrieving submissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       result.Items,
		"pagination": pagination(page, limit, result.Total),
	})
}

// Search filters the admin listing by text query and date range.
func (h *Handler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.service.Search(c.Query("query"), c.Query("date_from"), c.Query("date_to"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error searching submissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       result.Items,
		"pagination": pagination(page, limit, result.Total),
	})
}

// Get serves one full submission record for the admin detail view.
func (h *Handler) Get(c *gin.Context) {
	s, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error retrieving submission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": s})
}

// DownloadPDF serves a submission PDF to the admin panel.
func (h *Handler) DownloadPDF(c *gin.Context) {
	id := c.Param("id")
	path, err := h.service.PDFPath(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "PDF not found"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, id))
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}

// Export streams the filtered listing as CSV, Excel or PDF.
func (h *Handler) Export(c *gin.Context) {
	rows, err := h.service.SearchAll(c.Query("query"), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error retrieving submissions"})
		return
	}
	format := c.DefaultQuery("format", "csv")
	data, filename, contentType, err := h.exporter.Export(format, rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}

func pagination(page, limit, total int) gin.H {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"pages": pages,
	}
}
