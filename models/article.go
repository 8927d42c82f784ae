package models

import (
	"time"

	"gorm.io/gorm"
)

type Article struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	AuthorID    uint           `json:"author_id" gorm:"not null;index"`
	Author      User           `json:"author" gorm:"foreignKey:AuthorID"`
	Title       string         `json:"title" gorm:"not null"`
	Resume      string         `json:"resume" gorm:"not null"`
	Content     string         `json:"content" gorm:"type:text;not null"`
	ContentHTML *string        `json:"content_html" gorm:"type:text"`
	PictureURL  string         `json:"picture_url"`
	IsHeadline  bool           `json:"is_headline" gorm:"default:false;index"`
	Categories  []Category     `json:"categories" gorm:"many2many:article_categories;"`
	PublishedAt time.Time      `json:"published_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Derived per request, never stored.
	Likes                int64 `json:"likes" gorm:"-"`
	IsLikedByCurrentUser bool  `json:"is_liked_by_current_user" gorm:"-"`
}
