// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a published or draft article in the DevLog application.
// Slugs are the public identifiers; surrogate keys are never exposed in URLs.
type Post struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Slug       string    `gorm:"uniqueIndex;not null" json:"slug"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Summary    string    `json:"summary,omitempty"`
	SeoMeta    string    `gorm:"column:seo_meta" json:"seo_meta,omitempty"`
	CoverImage string    `json:"cover_image,omitempty"`
	Published  bool      `gorm:"not null;default:false" json:"published"`
	AuthorID   string    `gorm:"not null;index;type:text" json:"author_id"`
	Author     *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CategoryID *string   `gorm:"index;type:text" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Category groups posts for the public listing filter.
type Category struct {
	ID   string `gorm:"primaryKey;type:text" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
}
