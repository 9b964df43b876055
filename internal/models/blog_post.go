package models

import "time"

type BlogPost struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title   string `gorm:"size:255;not null" json:"title"`
	Slug    string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Excerpt string `gorm:"type:text" json:"excerpt"`
	Content string `gorm:"type:text;not null" json:"content"`
	Author  string `gorm:"size:255;not null" json:"author"`

	Image    string `gorm:"size:500" json:"image"`
	ReadTime string `gorm:"size:50" json:"readTime"`

	MetaDescription string `gorm:"size:160" json:"metaDescription"`
	Keywords        string `gorm:"size:255" json:"keywords"`

	// 0/1 flags, kept numeric to match the consuming frontend.
	Featured  int `gorm:"default:0" json:"featured"`
	Published int `gorm:"default:0" json:"published"`

	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
