package submission

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tanjid017/membership-registration-backend/internal/form"
)

// Renderer produces the application PDF for a validated submission.
type Renderer interface {
	Render(ctx context.Context, data map[string]any) ([]byte, error)
}

// PhotoSaver persists an inline data URI photo and returns its on-disk path.
type PhotoSaver interface {
	SaveDataURI(s string) (string, error)
}

// Notifier is called after a successful submission. Implementations must not
// block the request path.
type Notifier func(submissionID, applicantName string)

// Service runs the full submission pipeline: validate, store the photo,
// render the PDF, persist the record, notify.
type Service struct {
	repo      Repository
	validator *form.Validator
	renderer  Renderer
	photos    PhotoSaver
	notify    Notifier
}

func NewService(repo Repository, v *form.Validator, r Renderer, p PhotoSaver, n Notifier) *Service {
	return &Service{repo: repo, validator: v, renderer: r, photos: p, notify: n}
}

// Submit validates and persists one application. Validation failures are
// returned as a field-to-message map with a nil error; only infrastructure
// failures produce a non-nil error.
func (s *Service) Submit(ctx context.Context, data map[string]any, meta Meta) (string, map[string]string, error) {
	result := s.validator.Validate(data)
	if !result.IsValid {
		return "", result.Errors, nil
	}
	clean := result.Sanitized

	// Inline data URI photos are written to disk so the record and PDF only
	// ever reference a path.
	if photo, ok := clean["photo"].(string); ok && strings.HasPrefix(photo, "data:image/") {
		path, err := s.photos.SaveDataURI(photo)
		if err != nil {
			log.Printf("⚠️ Failed to save submitted photo: %v", err)
		} else {
			clean["photo"] = path
		}
	}

	pdfBytes, err := s.renderer.Render(ctx, clean)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	id, err := s.repo.Save(clean, pdfBytes, meta)
	if err != nil {
		return "", nil, err
	}
	log.Printf("✅ Submission stored: %s", id)

	if s.notify != nil {
		name, _ := clean["name_bangla"].(string)
		go s.notify(id, name)
	}
	return id, nil, nil
}

func (s *Service) Get(submissionID string) (*Submission, error) {
	return s.repo.Get(submissionID)
}

func (s *Service) PDFPath(submissionID string) (string, error) {
	return s.repo.PDFPath(submissionID)
}

func (s *Service) List(page, limit int) (*Page, error) {
	return s.repo.List(page, limit)
}

func (s *Service) Search(query, dateFrom, dateTo string, page, limit int) (*Page, error) {
	return s.repo.Search(query, dateFrom, dateTo, page, limit)
}

// SearchAll returns every summary matching the filters, for exports.
func (s *Service) SearchAll(query, dateFrom, dateTo string) ([]Summary, error) {
	page, err := s.repo.Search(query, dateFrom, dateTo, 1, 1<<30)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
