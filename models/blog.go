package models

import (
	"strings"
	"time"
)

type Blog struct {
	BaseModel
	Title         string     `gorm:"type:varchar(200);not null"`
	Slug          string     `gorm:"type:varchar(200);uniqueIndex;not null"`
	Content       string     `gorm:"type:text"` // rich text, stored as HTML
	Excerpt       string     `gorm:"type:varchar(500)"`
	FeaturedImage string     `gorm:"type:varchar(500)"`
	Author        string     `gorm:"type:varchar(100)"`
	IsPublished   bool       `gorm:"default:false;index"`
	PublishedDate *time.Time `gorm:"index"`
	Views         int        `gorm:"default:0"`
	Tags          string     `gorm:"type:varchar(500)"` // comma separated tags
}

// FirstTag returns the first tag of the post, or "General" when untagged.
func (b Blog) FirstTag() string {
	for _, tag := range strings.Split(b.Tags, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			return trimmed
		}
	}
	return "General"
}
