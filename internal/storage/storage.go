package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/maisonbelle/salon-api/internal/config"
)

// Storage persists uploaded blog images and hands back their public URL.
type Storage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

func New(cfg *config.Config) (Storage, error) {
	switch cfg.StorageType {
	case "local", "":
		return NewLocalStorage(cfg.StorageLocal, cfg.StorageBaseURL)
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET is required for s3 storage")
		}
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.StorageType)
	}
}

// KeyFromURL recovers the storage key from a URL previously returned by Put.
func KeyFromURL(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return "", false
	}

	key := strings.TrimPrefix(u.Path, "/")
	if rest, found := strings.CutPrefix(key, "uploads/"); found {
		key = rest
	}
	if key == "" {
		return "", false
	}
	return key, true
}
