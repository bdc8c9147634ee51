package photo

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func multipartUpload(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File[field][0]
}

func TestProcessSavesUpload(t *testing.T) {
	root := t.TempDir()
	p := NewProcessor(root)
	p.now = func() time.Time { return time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC) }

	fh := multipartUpload(t, "photo", "me.png", pngBytes(t))
	path, url, err := p.Process(fh)
	require.NoError(t, err)

	assert.Contains(t, path, filepath.Join("photos", "2026", "04"))
	assert.True(t, strings.HasSuffix(path, ".png"))
	assert.True(t, strings.HasPrefix(url, "/storage/photos/2026/04/photo_20260402093000_"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestProcessSniffsFormat(t *testing.T) {
	p := NewProcessor(t.TempDir())

	// A JPEG uploaded with a .png name still lands as jpg.
	fh := multipartUpload(t, "photo", "fake.png", jpegBytes(t))
	path, _, err := p.Process(fh)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	// Non-image content is rejected regardless of name.
	fh = multipartUpload(t, "photo", "notes.jpg", []byte("plain text"))
	_, _, err = p.Process(fh)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestSaveDataURI(t *testing.T) {
	p := NewProcessor(t.TempDir())

	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t))
	path, err := p.SaveDataURI(uri)
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveDataURIRejectsBadInput(t *testing.T) {
	p := NewProcessor(t.TempDir())

	_, err := p.SaveDataURI("not a data uri")
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = p.SaveDataURI("data:image/gif;base64,R0lGOD")
	assert.ErrorIs(t, err, ErrInvalidType)

	// Valid prefix but non-image payload.
	_, err = p.SaveDataURI("data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("junk")))
	assert.ErrorIs(t, err, ErrInvalidType)
}
