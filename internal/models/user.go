package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OpenID       string `gorm:"size:64;uniqueIndex;not null" json:"openId"`
	Name         string `gorm:"size:100" json:"name"`
	Email        string `gorm:"size:320" json:"email"`
	LoginMethod  string `gorm:"size:64" json:"loginMethod"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         string `gorm:"size:20;default:'user'" json:"role"`

	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
