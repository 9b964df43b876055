package models

import "time"

type FormSubmission struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:320;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	Service       string `gorm:"size:255" json:"service"`
	PreferredDate string `gorm:"size:50" json:"preferredDate"`
	PreferredTime string `gorm:"size:50" json:"preferredTime"`
	Notes         string `gorm:"type:text" json:"notes"`

	Status string `gorm:"size:20;default:'new'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
