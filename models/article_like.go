package models

import "time"

// ArticleLike is one like row per (article, user). The composite unique
// index is what makes the toggle safe against concurrent requests from the
// same user: a duplicate insert fails at the database instead of creating
// a second row.
type ArticleLike struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null;uniqueIndex:idx_article_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_article_user"`
	CreatedAt time.Time `json:"created_at"`
}
