package models

// RegisterRequest is shared by public signup and admin account creation.
// Role, AvatarURL and Bio are only honored on the admin path; public
// registration always yields a plain user.
type RegisterRequest struct {
	Name      string   `json:"name" binding:"required,min=2,max=100"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=8"`
	Role      UserRole `json:"role,omitempty"`
	AvatarURL string   `json:"avatar_url"`
	Bio       string   `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Resume      string `json:"resume" binding:"required,min=1,max=500"`
	Content     string `json:"content" binding:"required"`
	PictureURL  string `json:"picture_url"`
	IsHeadline  bool   `json:"is_headline"`
	CategoryIDs []uint `json:"category_ids"`
}

// UpdateArticleRequest uses pointers so a partial payload can be told apart
// from an explicit empty value. ContentHTML is regenerated only when Content
// is present; omitting it keeps the stored HTML untouched.
type UpdateArticleRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Resume      *string `json:"resume" binding:"omitempty,min=1,max=500"`
	Content     *string `json:"content"`
	PictureURL  *string `json:"picture_url"`
	IsHeadline  *bool   `json:"is_headline"`
	CategoryIDs *[]uint `json:"category_ids"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Slug  string `json:"slug" binding:"required,min=1,max=100"`
	Color string `json:"color"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug  *string `json:"slug" binding:"omitempty,min=1,max=100"`
	Color *string `json:"color"`
}

type CreateThemeRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Colors    string `json:"colors"`
	IsDefault bool   `json:"is_default"`
}

type UpdateThemeRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	Colors    *string `json:"colors"`
	IsDefault *bool   `json:"is_default"`
}

type ToggleLikeResponse struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

type ArticleListParams struct {
	Category  string `form:"category"`
	AuthorID  uint   `form:"author_id"`
	Headline  *bool  `form:"headline"`
	Search    string `form:"search"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	SortBy    string `form:"sort_by,default=published_at"`
	SortOrder string `form:"sort_order,default=desc"`
}

// NowPlaying is the stable shape the player polls, regardless of what the
// stream server reports upstream.
type NowPlaying struct {
	Live      bool   `json:"live"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Listeners int    `json:"listeners"`
	StreamURL string `json:"stream_url"`
}
