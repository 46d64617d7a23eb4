package model

import (
	"time"

	"github.com/google/uuid"
)

// NewsModel. Deletion is soft by default: the row stays with
// news_is_active = false until a permanent delete removes it and its
// stored image.
type NewsModel struct {
	NewsID         uuid.UUID `gorm:"column:news_id;type:uuid;default:gen_random_uuid();primaryKey" json:"news_id"`
	NewsTitle      string    `gorm:"column:news_title;type:varchar(200);not null"                  json:"news_title"`
	NewsSlug       string    `gorm:"column:news_slug;type:varchar(220);uniqueIndex;not null"       json:"news_slug"`
	NewsContent    string    `gorm:"column:news_content;type:text;not null"                        json:"news_content"`
	NewsImageURL   string    `gorm:"column:news_image_url;type:text"                               json:"news_image_url"`
	NewsImageKey   string    `gorm:"column:news_image_key;type:text"                               json:"-"`
	NewsSocialLink string    `gorm:"column:news_social_link;type:text"                             json:"news_social_link"`
	NewsIsActive   bool      `gorm:"column:news_is_active;not null;default:true"                   json:"news_is_active"`
	NewsCreatedAt  time.Time `gorm:"column:news_created_at;type:timestamptz;autoCreateTime"        json:"news_created_at"`
	NewsUpdatedAt  time.Time `gorm:"column:news_updated_at;type:timestamptz;autoUpdateTime"        json:"news_updated_at"`
}

func (NewsModel) TableName() string { return "news" }
