package photo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxSize is the upload ceiling for applicant photos (5 MB).
const MaxSize = 5 * 1024 * 1024

var (
	ErrTooLarge    = errors.New("ছবির সাইজ ৫ MB এর বেশি হতে পারবে না")
	ErrInvalidType = errors.New("শুধুমাত্র JPG এবং PNG ফরম্যাট গ্রহণযোগ্য")
)

var dataURIPattern = regexp.MustCompile(`^data:image/(jpeg|jpg|png);base64,(.+)$`)

// Processor validates applicant photos and writes them under
// <root>/photos/<YYYY>/<MM>/.
type Processor struct {
	root string
	now  func() time.Time
}

func NewProcessor(storagePath string) *Processor {
	return &Processor{
		root: filepath.Join(storagePath, "photos"),
		now:  time.Now,
	}
}

// Process saves a multipart upload. It sniffs the actual image format rather
// than trusting the client's content type. Returns the on-disk path and the
// public URL the frontend can reference.
func (p *Processor) Process(fh *multipart.FileHeader) (string, string, error) {
	if fh.Size > MaxSize {
		return "", "", ErrTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded photo: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, MaxSize+1))
	if err != nil {
		return "", "", fmt.Errorf("failed to read uploaded photo: %w", err)
	}
	if len(raw) > MaxSize {
		return "", "", ErrTooLarge
	}
	return p.save(raw)
}

// SaveDataURI decodes a base64 data URI photo submitted inline with the form.
func (p *Processor) SaveDataURI(s string) (string, error) {
	m := dataURIPattern.FindStringSubmatch(s)
	if m == nil {
		return "", ErrInvalidType
	}
	raw, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return "", fmt.Errorf("failed to decode photo data: %w", err)
	}
	if len(raw) > MaxSize {
		return "", ErrTooLarge
	}
	path, _, err := p.save(raw)
	return path, err
}

func (p *Processor) save(raw []byte) (string, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil || (format != "jpeg" && format != "png") {
		return "", "", ErrInvalidType
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", "", ErrInvalidType
	}
	ext := "jpg"
	if format == "png" {
		ext = "png"
	}

	now := p.now()
	dir := filepath.Join(p.root, now.Format("2006"), now.Format("01"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create photos directory: %w", err)
	}

	name := fmt.Sprintf("photo_%s_%s.%s", now.Format("20060102150405"), shortID(), ext)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to save photo: %w", err)
	}
	url := "/storage/photos/" + now.Format("2006") + "/" + now.Format("01") + "/" + name
	return path, url, nil
}

func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
