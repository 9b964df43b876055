package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/maisonbelle/salon-api/internal/httperr"
	"github.com/maisonbelle/salon-api/internal/httpresp"
	"github.com/maisonbelle/salon-api/internal/imaging"
	"github.com/maisonbelle/salon-api/internal/storage"
)

const thumbnailWidth = 480

type UploadHandler struct {
	storage storage.Storage
}

func NewUploadHandler(st storage.Storage) *UploadHandler {
	return &UploadHandler{storage: st}
}

type uploadResponse struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Upload accepts a single blog image (JPEG/PNG/WebP, ≤5MB) and stores it
// with a WebP thumbnail variant when the image decodes cleanly.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "no_file", "No file provided")
		return
	}

	// cheap reject before reading the body
	if fileHeader.Size > imaging.MaxUploadSize {
		httperr.BadRequest(c, "file_too_large", "File size exceeds 5MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, imaging.MaxUploadSize+1))
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to read upload")
		return
	}

	contentType, err := imaging.Validate(data)
	if err != nil {
		switch {
		case errors.Is(err, imaging.ErrTooLarge):
			httperr.BadRequest(c, "file_too_large", "File size exceeds 5MB limit")
		default:
			httperr.BadRequest(c, "invalid_file_type", "Only JPEG, PNG and WebP images are accepted")
		}
		return
	}

	key := fmt.Sprintf("blog-images/%s%s", uuid.New().String(), imaging.Extension(contentType))

	url, err := h.storage.Put(c.Request.Context(), key, data, contentType)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to store upload")
		return
	}

	resp := uploadResponse{URL: url}

	// thumbnail is best-effort
	if img, err := imaging.Decode(data, contentType); err == nil {
		thumb := imaging.Thumbnail(img, thumbnailWidth)
		if encoded, err := imaging.EncodeWebP(thumb, 80); err == nil {
			thumbKey := key + ".thumb.webp"
			if thumbURL, err := h.storage.Put(c.Request.Context(), thumbKey, encoded, "image/webp"); err == nil {
				resp.ThumbnailURL = thumbURL
			}
		}
	} else {
		log.Printf("thumbnail skipped for %s: %v", key, err)
	}

	httpresp.OK(c, resp)
}
