package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxLogoSize is the upload ceiling for the organization logo (2 MB).
const MaxLogoSize = 2 * 1024 * 1024

var (
	ErrLogoTooLarge    = errors.New("logo must not exceed 2 MB")
	ErrLogoInvalidType = errors.New("logo must be a JPG, PNG or GIF image")
)

// Store keeps site settings in a single JSON file. The file is re-read on
// every access so edits made outside the process are visible immediately.
// Missing or corrupt files fall back to defaults.
type Store struct {
	path    string
	logoDir string
	now     func() time.Time
}

func NewStore(storagePath, publicPath string) *Store {
	return &Store{
		path:    filepath.Join(storagePath, "settings.json"),
		logoDir: filepath.Join(publicPath, "images"),
		now:     time.Now,
	}
}

func defaults(now time.Time) map[string]any {
	return map[string]any{
		"org_name_bn": "জাতীয় ছাত্রশক্তি",
		"org_name_en": "Jatiya Chhatra Shakti",
		"logo_path":   "/images/logo.png",
		"updated_at":  now.Format("2006-01-02 15:04:05"),
	}
}

// Get returns the current settings, backfilling any missing keys with
// defaults.
func (s *Store) Get() map[string]any {
	out := defaults(s.now())
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return out
	}
	var stored map[string]any
	if err := json.Unmarshal(raw, &stored); err != nil {
		log.Printf("⚠️ Settings file is corrupt, using defaults: %v", err)
		return out
	}
	for k, v := range stored {
		out[k] = v
	}
	return out
}

// Value returns one setting, or def when it is absent or not a string.
func (s *Store) Value(key, def string) string {
	if v, ok := s.Get()[key].(string); ok && v != "" {
		return v
	}
	return def
}

// Update shallow-merges the given keys over the stored settings and rewrites
// updated_at. Unknown keys are stored as-is.
func (s *Store) Update(partial map[string]any) (map[string]any, error) {
	merged := s.Get()
	for k, v := range partial {
		merged[k] = v
	}
	merged["updated_at"] = s.now().Format("2006-01-02 15:04:05")
	if err := s.write(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// UploadLogo validates and stores a new logo, removes any previously uploaded
// one, and points logo_path at the new file.
func (s *Store) UploadLogo(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxLogoSize {
		return "", ErrLogoTooLarge
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
	if ext == "jpeg" {
		ext = "jpg"
	}
	if ext != "jpg" && ext != "png" && ext != "gif" {
		return "", ErrLogoInvalidType
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded logo: %w", err)
	}
	defer f.Close()
	raw, err := io.ReadAll(io.LimitReader(f, MaxLogoSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded logo: %w", err)
	}
	if len(raw) > MaxLogoSize {
		return "", ErrLogoTooLarge
	}

	if err := os.MkdirAll(s.logoDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create images directory: %w", err)
	}
	name := fmt.Sprintf("logo_%d.%s", s.now().Unix(), ext)
	if err := os.WriteFile(filepath.Join(s.logoDir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to save logo: %w", err)
	}

	// Drop older uploaded logos so the directory does not accumulate them.
	if old, err := filepath.Glob(filepath.Join(s.logoDir, "logo_*")); err == nil {
		for _, p := range old {
			if filepath.Base(p) != name {
				os.Remove(p)
			}
		}
	}

	logoPath := "/images/" + name
	if _, err := s.Update(map[string]any{"logo_path": logoPath}); err != nil {
		return "", err
	}
	return logoPath, nil
}

// LogoFile resolves the configured logo_path to an on-disk file, or "" when
// no readable logo exists.
func (s *Store) LogoFile() string {
	rel := strings.TrimPrefix(s.Value("logo_path", ""), "/images/")
	if rel == "" {
		return ""
	}
	path := filepath.Join(s.logoDir, rel)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func (s *Store) write(settings map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(settings); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
