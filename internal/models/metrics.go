package models

import (
	"time"
)

// PostMetrics holds the public view/like counters for a content slug.
// Rows are created lazily on the first recorded event and counters only
// increase; there is no decrement path.
type PostMetrics struct {
	Slug      string    `gorm:"primaryKey" json:"slug"`
	Views     int64     `gorm:"not null;default:0" json:"views"`
	Likes     int64     `gorm:"not null;default:0" json:"likes"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MetricsSnapshot is the post-increment counter state returned to clients.
type MetricsSnapshot struct {
	Views int64 `json:"views"`
	Likes int64 `json:"likes"`
}

// Snapshot returns the counter state of the row.
func (m *PostMetrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{Views: m.Views, Likes: m.Likes}
}
