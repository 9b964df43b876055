package handlers_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jpegBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func (e *testEnv) uploadRequest(t *testing.T, fileContents []byte, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write(fileContents)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestUpload_JPEG(t *testing.T) {
	env := setupTestEnv(t)

	w := env.uploadRequest(t, jpegBytes(t, 32, 16), env.adminCookie(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		URL          string `json:"url"`
		ThumbnailURL string `json:"thumbnailUrl"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.URL, "/uploads/blog-images/")
	assert.Contains(t, resp.URL, ".jpg")
	assert.Contains(t, resp.ThumbnailURL, ".thumb.webp")
}

func TestUpload_RejectsNonImage(t *testing.T) {
	env := setupTestEnv(t)

	w := env.uploadRequest(t, []byte("just some text, definitely not an image"), env.adminCookie(t))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_file_type")
}

func TestUpload_RejectsOversized(t *testing.T) {
	env := setupTestEnv(t)

	big := make([]byte, 6<<20)
	w := env.uploadRequest(t, big, env.adminCookie(t))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "file_too_large")
}

func TestUpload_RequiresAdmin(t *testing.T) {
	env := setupTestEnv(t)

	w := env.uploadRequest(t, jpegBytes(t, 8, 8), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpload_NoFile(t *testing.T) {
	env := setupTestEnv(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(env.adminCookie(t))

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no_file")
}
