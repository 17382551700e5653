package models

import "time"

type ContentType string

const (
	ContentMarkdown ContentType = "markdown"
	ContentHTML     ContentType = "html"
)

type MediaType string

const (
	MediaSVG  MediaType = "svg"
	MediaPNG  MediaType = "png"
	MediaWebM MediaType = "webm"
)

type Article struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	CategoryID  uint        `json:"category_id" gorm:"not null;index" validate:"required"`
	Title       string      `json:"title" gorm:"not null;size:255" validate:"required,max=255"`
	Content     string      `json:"content" gorm:"type:text;not null" validate:"required"`
	ContentType ContentType `json:"content_type" gorm:"not null;size:20" validate:"required,oneof=markdown html"`
	CreatedAt   time.Time   `json:"created_at"`

	// Relations
	Category   *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	MediaItems []Media   `json:"media_items,omitempty" gorm:"foreignKey:ArticleID"`
}

type Media struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ArticleID uint      `json:"article_id" gorm:"not null;index" validate:"required"`
	MediaType MediaType `json:"media_type" gorm:"not null;size:10" validate:"required,oneof=svg png webm"`
	URL       string    `json:"url" gorm:"not null;size:500" validate:"required,max=500"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0"`

	// Relations
	Article *Article `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}

func (Article) TableName() string {
	return "articles"
}

func (Media) TableName() string {
	return "media"
}
