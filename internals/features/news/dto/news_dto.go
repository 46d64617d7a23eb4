package dto

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"markazy_backend/internals/features/news/model"
)

var reHTTPLink = regexp.MustCompile(`^https?://`)

// IsValidSocialLink accepts an absent link or one starting with
// http:// or https://.
func IsValidSocialLink(v string) bool {
	return v == "" || reHTTPLink.MatchString(v)
}

type CreateNewsRequest struct {
	Title      string `json:"title" form:"title" validate:"required,min=3,max=200"`
	Content    string `json:"content" form:"content" validate:"required,min=10"`
	ImageURL   string `json:"image_url" form:"image_url" validate:"omitempty,startswith=http"`
	SocialLink string `json:"social_link" form:"social_link"`
}

type UpdateNewsRequest struct {
	Title      *string `json:"title" form:"title" validate:"omitempty,min=3,max=200"`
	Content    *string `json:"content" form:"content" validate:"omitempty,min=10"`
	ImageURL   *string `json:"image_url" form:"image_url" validate:"omitempty,startswith=http"`
	SocialLink *string `json:"social_link" form:"social_link"`
	IsActive   *bool   `json:"is_active" form:"is_active"`
}

type NewsResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	ImageURL   string    `json:"image_url,omitempty"`
	SocialLink string    `json:"social_link,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToNewsResponse(m model.NewsModel) NewsResponse {
	return NewsResponse{
		ID:         m.NewsID,
		Title:      m.NewsTitle,
		Slug:       m.NewsSlug,
		Content:    m.NewsContent,
		ImageURL:   m.NewsImageURL,
		SocialLink: m.NewsSocialLink,
		IsActive:   m.NewsIsActive,
		CreatedAt:  m.NewsCreatedAt,
		UpdatedAt:  m.NewsUpdatedAt,
	}
}

func ToNewsResponses(ms []model.NewsModel) []NewsResponse {
	out := make([]NewsResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToNewsResponse(m))
	}
	return out
}
