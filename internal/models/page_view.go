package models

import "time"

type PageView struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Page      string `gorm:"size:255;not null;index" json:"page"`
	Referrer  string `gorm:"size:500" json:"referrer"`
	UserAgent string `gorm:"size:500" json:"userAgent"`
	IPHash    string `gorm:"size:64" json:"ipHash"`
	SessionID string `gorm:"size:64" json:"sessionId"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
