package submission

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNotFound is returned when no record exists for a submission ID.
var ErrNotFound = errors.New("submission not found")

// Repository persists submissions and answers admin queries over them.
type Repository interface {
	Save(data map[string]any, pdfBytes []byte, meta Meta) (string, error)
	Get(submissionID string) (*Submission, error)
	PDFPath(submissionID string) (string, error)
	List(page, limit int) (*Page, error)
	Search(query, dateFrom, dateTo string, page, limit int) (*Page, error)
}

// FileRepository stores each submission as a JSON + PDF pair under
// <root>/submissions/<YYYY>/<MM>/. Records are scanned from disk on every
// query so external edits are picked up without a restart.
type FileRepository struct {
	root string
	now  func() time.Time
}

var _ Repository = (*FileRepository)(nil)

func NewFileRepository(storagePath string) *FileRepository {
	return &FileRepository{
		root: filepath.Join(storagePath, "submissions"),
		now:  time.Now,
	}
}

// Save writes the PDF and JSON record, generating a fresh submission ID.
// The photo value is replaced with PhotoSentinel before writing.
func (r *FileRepository) Save(data map[string]any, pdfBytes []byte, meta Meta) (string, error) {
	now := r.now()
	dir := filepath.Join(r.root, now.Format("2006"), now.Format("01"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create submissions directory: %w", err)
	}

	var id string
	for attempt := 0; ; attempt++ {
		id = fmt.Sprintf("JCS_%s_%s", now.Format("20060102150405"), randomHex(4))
		if _, err := os.Stat(filepath.Join(dir, id+".json")); os.IsNotExist(err) {
			break
		}
		if attempt >= 4 {
			return "", fmt.Errorf("failed to allocate a unique submission ID")
		}
	}

	pdfPath := filepath.Join(dir, id+".pdf")
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		return "", fmt.Errorf("failed to save PDF: %w", err)
	}

	record := Submission{
		SubmissionID: id,
		SubmittedAt:  now.Format(TimeLayout),
		Data:         stripPhoto(data),
		PDFPath:      pdfPath,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		os.Remove(pdfPath)
		return "", fmt.Errorf("failed to encode submission: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, id+".json"), buf.Bytes(), 0o644); err != nil {
		// Don't leave an orphaned PDF behind when the record itself failed.
		os.Remove(pdfPath)
		return "", fmt.Errorf("failed to save submission: %w", err)
	}
	return id, nil
}

func (r *FileRepository) Get(submissionID string) (*Submission, error) {
	path, err := r.findFile(submissionID + ".json")
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read submission: %w", err)
	}
	var s Submission
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to decode submission: %w", err)
	}
	return &s, nil
}

// PDFPath resolves the on-disk PDF for a submission.
func (r *FileRepository) PDFPath(submissionID string) (string, error) {
	return r.findFile(submissionID + ".pdf")
}

func (r *FileRepository) List(page, limit int) (*Page, error) {
	all, err := r.scan()
	if err != nil {
		return nil, err
	}
	sortBySubmittedAtDesc(all)
	return paginate(all, page, limit), nil
}

// Search filters by a case-insensitive substring over name, English name,
// NID and mobile, plus an optional submitted_at date range. An empty query
// matches every record. A date-only dateTo is extended to the end of that day.
func (r *FileRepository) Search(query, dateFrom, dateTo string, page, limit int) (*Page, error) {
	all, err := r.scan()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	from, hasFrom := parseBound(dateFrom, false)
	to, hasTo := parseBound(dateTo, true)

	matched := make([]Summary, 0, len(all))
	for _, s := range all {
		if q != "" && !matchesQuery(s, q) {
			continue
		}
		if hasFrom || hasTo {
			at, err := time.Parse(TimeLayout, s.SubmittedAt)
			if err != nil {
				continue
			}
			if hasFrom && at.Before(from) {
				continue
			}
			if hasTo && at.After(to) {
				continue
			}
		}
		matched = append(matched, s)
	}
	sortBySubmittedAtDesc(matched)
	return paginate(matched, page, limit), nil
}

// scan walks every year/month shard and builds summaries. Malformed JSON
// files are logged and skipped rather than failing the whole listing.
func (r *FileRepository) scan() ([]Summary, error) {
	years, err := os.ReadDir(r.root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read submissions directory: %w", err)
	}

	var out []Summary
	for _, year := range years {
		if !year.IsDir() {
			continue
		}
		months, err := os.ReadDir(filepath.Join(r.root, year.Name()))
		if err != nil {
			continue
		}
		for _, month := range months {
			if !month.IsDir() {
				continue
			}
			dir := filepath.Join(r.root, year.Name(), month.Name())
			files, err := os.ReadDir(dir)
			if err != nil {
				continue
			}
			for _, f := range files {
				if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
					continue
				}
				raw, err := os.ReadFile(filepath.Join(dir, f.Name()))
				if err != nil {
					continue
				}
				var s Submission
				if err := json.Unmarshal(raw, &s); err != nil {
					log.Printf("⚠️ Skipping malformed submission file %s: %v", f.Name(), err)
					continue
				}
				out = append(out, summarize(&s))
			}
		}
	}
	return out, nil
}

func (r *FileRepository) findFile(name string) (string, error) {
	years, err := os.ReadDir(r.root)
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read submissions directory: %w", err)
	}
	for _, year := range years {
		if !year.IsDir() {
			continue
		}
		months, err := os.ReadDir(filepath.Join(r.root, year.Name()))
		if err != nil {
			continue
		}
		for _, month := range months {
			if !month.IsDir() {
				continue
			}
			path := filepath.Join(r.root, year.Name(), month.Name(), name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}
	return "", ErrNotFound
}

// summarize projects the listing fields. Only the Bengali name has a visible
// fallback; the rest stay blank when absent.
func summarize(s *Submission) Summary {
	name := field(s.Data, "name_bangla")
	if name == "" {
		name = "N/A"
	}
	return Summary{
		SubmissionID: s.SubmissionID,
		SubmittedAt:  s.SubmittedAt,
		Name:         name,
		NameEnglish:  field(s.Data, "name_english"),
		NID:          field(s.Data, "nid_birth_reg"),
		Mobile:       field(s.Data, "mobile_number"),
		Email:        field(s.Data, "email"),
	}
}

func field(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func matchesQuery(s Summary, q string) bool {
	for _, v := range []string{s.Name, s.NameEnglish, s.NID, s.Mobile} {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

// parseBound accepts either a full timestamp or a bare date. For the upper
// bound a bare date is extended to 23:59:59. Unparseable bounds are ignored.
func parseBound(s string, upper bool) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(TimeLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		if upper {
			t = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		}
		return t, true
	}
	return time.Time{}, false
}

func sortBySubmittedAtDesc(items []Summary) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, _ := time.Parse(TimeLayout, items[i].SubmittedAt)
		tj, _ := time.Parse(TimeLayout, items[j].SubmittedAt)
		return ti.After(tj)
	})
}

func paginate(items []Summary, page, limit int) *Page {
	total := len(items)
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	if offset >= total || limit <= 0 {
		return &Page{Items: []Summary{}, Total: total}
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return &Page{Items: items[offset:end], Total: total}
}

func stripPhoto(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	if _, ok := out["photo"]; ok {
		out["photo"] = PhotoSentinel
	}
	return out
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}
