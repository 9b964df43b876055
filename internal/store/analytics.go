package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/maisonbelle/salon-api/internal/models"
)

type PageCount struct {
	Page  string
	Count int64
}

// MarshalJSON renders the pair as a [page, count] tuple, which is the shape
// the dashboard frontend consumes.
func (p PageCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Page, p.Count})
}

type DashboardStats struct {
	TotalViews  int64       `json:"totalViews"`
	UniquePages int64       `json:"uniquePages"`
	TopPages    []PageCount `json:"topPages"`
}

// RecordPageView is best-effort telemetry: without a database it is a no-op,
// and write failures are logged rather than surfaced.
func (s *Store) RecordPageView(ctx context.Context, view *models.PageView) {
	db := s.handle()
	if db == nil {
		return
	}

	if err := db.WithContext(ctx).Create(view).Error; err != nil {
		log.Printf("failed to record page view: %v", err)
	}
}

// Dashboard aggregates page views over the last `days` days: total count,
// distinct pages, and the five most viewed pages by descending count.
func (s *Store) Dashboard(ctx context.Context, days int) (*DashboardStats, error) {
	stats := &DashboardStats{TopPages: []PageCount{}}

	db := s.handle()
	if db == nil {
		return stats, nil
	}

	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	windowed := func() *gorm.DB {
		return db.WithContext(ctx).Model(&models.PageView{}).Where("created_at >= ?", since)
	}

	if err := windowed().Count(&stats.TotalViews).Error; err != nil {
		return nil, err
	}

	if err := windowed().Distinct("page").Count(&stats.UniquePages).Error; err != nil {
		return nil, err
	}

	if err := windowed().
		Select("page, COUNT(*) as count").
		Group("page").
		Order("count DESC").
		Limit(5).
		Scan(&stats.TopPages).Error; err != nil {
		return nil, err
	}
	if stats.TopPages == nil {
		stats.TopPages = []PageCount{}
	}

	return stats, nil
}
