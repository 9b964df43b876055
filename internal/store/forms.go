package store

import (
	"context"

	"github.com/maisonbelle/salon-api/internal/domain/submission"
	"github.com/maisonbelle/salon-api/internal/models"
)

func (s *Store) ListFormSubmissions(ctx context.Context, status string) ([]models.FormSubmission, error) {
	db := s.handle()
	if db == nil {
		return []models.FormSubmission{}, nil
	}

	q := db.WithContext(ctx).Model(&models.FormSubmission{})
	if status != "" {
		q = q.Where("status = ?", status)
	} else {
		q = q.Order("created_at DESC")
	}

	var subs []models.FormSubmission
	if err := q.Find(&subs).Error; err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []models.FormSubmission{}
	}
	return subs, nil
}

// CreateFormSubmission stores a booking request. The status is always forced
// to the initial one; callers cannot supply it.
func (s *Store) CreateFormSubmission(ctx context.Context, sub *models.FormSubmission) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}

	sub.Status = string(submission.InitialStatus())
	return db.WithContext(ctx).Create(sub).Error
}

func (s *Store) UpdateFormSubmissionStatus(ctx context.Context, id uint, status submission.Status) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}

	var sub models.FormSubmission
	if err := db.WithContext(ctx).First(&sub, id).Error; err != nil {
		return err
	}

	if err := submission.CanTransition(submission.Status(sub.Status), status); err != nil {
		return err
	}

	sub.Status = string(status)
	return db.WithContext(ctx).Save(&sub).Error
}
