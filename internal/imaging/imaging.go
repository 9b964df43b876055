package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	xwebp "golang.org/x/image/webp"
)

const MaxUploadSize = 5 << 20 // 5MB

var (
	ErrTooLarge    = errors.New("file size exceeds 5MB limit")
	ErrInvalidType = errors.New("invalid file type")
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Validate sniffs the content type from the bytes themselves (the client's
// declared type is not trusted) and enforces the size cap. Size is checked
// first so oversized junk is rejected without inspection.
func Validate(data []byte) (string, error) {
	if len(data) > MaxUploadSize {
		return "", ErrTooLarge
	}

	contentType := http.DetectContentType(data)
	if _, ok := extensions[contentType]; !ok {
		return "", ErrInvalidType
	}
	return contentType, nil
}

func Extension(contentType string) string {
	return extensions[contentType]
}

func Decode(data []byte, contentType string) (image.Image, error) {
	switch contentType {
	case "image/jpeg":
		return jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		return png.Decode(bytes.NewReader(data))
	case "image/webp":
		return xwebp.Decode(bytes.NewReader(data))
	}
	return nil, ErrInvalidType
}

// Thumbnail scales the image down to maxWidth, preserving aspect ratio.
// Images already narrower than maxWidth come back unchanged.
func Thumbnail(src image.Image, maxWidth int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxWidth {
		return src
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

func EncodeWebP(img image.Image, quality float32) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
