package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)), nil))
	return buf.Bytes()
}

func TestValidate(t *testing.T) {
	contentType, err := Validate(encodePNG(t, 4, 4))
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	contentType, err = Validate(encodeJPEG(t, 4, 4))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestValidate_RejectsNonImage(t *testing.T) {
	_, err := Validate([]byte("<html><body>not an image</body></html>"))
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = Validate([]byte("%PDF-1.4 not an image either"))
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestValidate_RejectsOversized(t *testing.T) {
	_, err := Validate(make([]byte, MaxUploadSize+1))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".jpg", Extension("image/jpeg"))
	assert.Equal(t, ".png", Extension("image/png"))
	assert.Equal(t, ".webp", Extension("image/webp"))
	assert.Equal(t, "", Extension("application/pdf"))
}

func TestDecode(t *testing.T) {
	img, err := Decode(encodePNG(t, 10, 6), "image/png")
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	_, err = Decode([]byte("garbage"), "image/gif")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestThumbnail_ScalesDownPreservingRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))

	thumb := Thumbnail(src, 40)
	assert.Equal(t, 40, thumb.Bounds().Dx())
	assert.Equal(t, 20, thumb.Bounds().Dy())
}

func TestThumbnail_NarrowImageUnchanged(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 30, 30))

	thumb := Thumbnail(src, 40)
	assert.Equal(t, src, thumb)
}

func TestEncodeWebP(t *testing.T) {
	data, err := EncodeWebP(image.NewRGBA(image.Rect(0, 0, 8, 8)), 80)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	contentType, err := Validate(data)
	require.NoError(t, err)
	assert.Equal(t, "image/webp", contentType)
}
