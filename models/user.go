package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleStaff UserRole = "staff"
	RoleAdmin UserRole = "admin"
)

// IsStaff reports whether the role may bypass per-article ownership checks.
func (r UserRole) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

type User struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Role      UserRole       `json:"role" gorm:"default:'user'"`
	AvatarURL string         `json:"avatar_url"`
	Bio       string         `json:"bio" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TeamMember is the public projection of a staff account shown on the
// team page. Email and timestamps stay private.
type TeamMember struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Role      UserRole `json:"role"`
	AvatarURL string   `json:"avatar_url"`
	Bio       string   `json:"bio"`
}

func (u *User) TeamMember() TeamMember {
	return TeamMember{
		ID:        u.ID,
		Name:      u.Name,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
	}
}
