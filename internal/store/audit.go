package store

import (
	"context"

	"github.com/maisonbelle/salon-api/internal/models"
)

func (s *Store) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}
	return db.WithContext(ctx).Create(entry).Error
}
