package models

import (
	"time"

	"gorm.io/gorm"
)

// Theme holds a named set of display colors the frontend applies site-wide.
// Colors is an opaque JSON document; the backend only stores it.
type Theme struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"uniqueIndex;not null"`
	Colors    string         `json:"colors" gorm:"type:jsonb;default:'{}'"`
	IsDefault bool           `json:"is_default" gorm:"default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
