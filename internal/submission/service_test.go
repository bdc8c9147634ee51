package submission

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanjid017/membership-registration-backend/internal/form"
)

type fakeRenderer struct {
	err      error
	lastData map[string]any
}

func (f *fakeRenderer) Render(_ context.Context, data map[string]any) ([]byte, error) {
	f.lastData = data
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

type fakePhotoSaver struct {
	path string
	err  error
}

func (f *fakePhotoSaver) SaveDataURI(string) (string, error) {
	return f.path, f.err
}

func validSubmitData() map[string]any {
	return map[string]any{
		"name_bangla":   "তানজিদ হাসান",
		"name_english":  "TANJID HASAN",
		"father_name":   "আব্দুল করিম",
		"mother_name":   "রহিমা বেগম",
		"photo":         "data:image/png;base64,iVBORw0KGgo=",
		"mobile_number": "01712345678",
		"nid_birth_reg": "1234567890123",
		"birth_date":    "2000-05-15",
		"present_address":   "House 12, Road 5, Dhanmondi, Dhaka",
		"permanent_address": "Village Rampur, Post Madhupur, Tangail",
		"ssc_year":          "2016",
		"ssc_board":         "ঢাকা",
		"ssc_group":         "বিজ্ঞান",
		"ssc_institution":   "ঢাকা কলেজিয়েট স্কুল",
		"hsc_year":          "2018",
		"hsc_board":         "ঢাকা",
		"hsc_group":         "বিজ্ঞান",
		"hsc_institution":   "নটর ডেম কলেজ",
		"movement_role":     strings.Repeat("a", 30),
		"aspirations":       strings.Repeat("b", 60),
		"declaration_name":      "তানজিদ হাসান",
		"declaration_agreement": true,
	}
}

func newTestService(t *testing.T, renderer *fakeRenderer, photos *fakePhotoSaver, notify Notifier) (*Service, *FileRepository) {
	t.Helper()
	repo := NewFileRepository(t.TempDir())
	v := form.NewValidator(form.DefaultSchema())
	return NewService(repo, v, renderer, photos, notify), repo
}

func TestSubmitStoresRecord(t *testing.T) {
	renderer := &fakeRenderer{}
	photos := &fakePhotoSaver{path: "/stored/photo.png"}
	notified := make(chan string, 1)
	svc, repo := newTestService(t, renderer, photos, func(id, name string) { notified <- name })

	id, fieldErrors, err := svc.Submit(context.Background(), validSubmitData(), Meta{IPAddress: "203.0.113.9"})
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Regexp(t, idPattern, id)

	// The data URI photo was written to disk and the renderer saw the path.
	assert.Equal(t, "/stored/photo.png", renderer.lastData["photo"])

	got, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, PhotoSentinel, got.Data["photo"])
	assert.Equal(t, "203.0.113.9", got.IPAddress)

	select {
	case name := <-notified:
		assert.Equal(t, "তানজিদ হাসান", name)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestSubmitValidationFailure(t *testing.T) {
	renderer := &fakeRenderer{}
	svc, _ := newTestService(t, renderer, &fakePhotoSaver{}, nil)

	data := validSubmitData()
	delete(data, "name_bangla")
	data["mobile_number"] = "123"

	id, fieldErrors, err := svc.Submit(context.Background(), data, Meta{})
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Contains(t, fieldErrors, "name_bangla")
	assert.Contains(t, fieldErrors, "mobile_number")
	// Nothing was rendered or stored.
	assert.Nil(t, renderer.lastData)
}

func TestSubmitRenderFailure(t *testing.T) {
	renderer := &fakeRenderer{err: errors.New("render blew up")}
	svc, repo := newTestService(t, renderer, &fakePhotoSaver{path: "/stored/photo.png"}, nil)

	id, fieldErrors, err := svc.Submit(context.Background(), validSubmitData(), Meta{})
	require.Error(t, err)
	assert.Empty(t, id)
	assert.Empty(t, fieldErrors)

	page, err := repo.List(1, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
}

func TestSubmitKeepsDataURIWhenPhotoSaveFails(t *testing.T) {
	renderer := &fakeRenderer{}
	photos := &fakePhotoSaver{err: errors.New("disk full")}
	svc, _ := newTestService(t, renderer, photos, nil)

	_, fieldErrors, err := svc.Submit(context.Background(), validSubmitData(), Meta{})
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
	// The photo value falls through unchanged; the store still masks it.
	photo, _ := renderer.lastData["photo"].(string)
	assert.True(t, strings.HasPrefix(photo, "data:image/"))
}
