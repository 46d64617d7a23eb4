package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"markazy_backend/internals/features/playgrounds/model"
)

type CreatePlaygroundRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=150"`
	Location string `json:"location" validate:"required,min=2,max=300"`
	Contact  string `json:"contact" validate:"omitempty,max=100"`
}

type UpdatePlaygroundRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=150"`
	Location *string `json:"location" validate:"omitempty,min=2,max=300"`
	Contact  *string `json:"contact" validate:"omitempty,max=100"`
}

type BulkCreatePlaygroundRequest struct {
	Playgrounds []CreatePlaygroundRequest `json:"playgrounds" validate:"required,min=1"`
}

type PlaygroundResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToPlaygroundResponse(m model.PlaygroundModel) PlaygroundResponse {
	return PlaygroundResponse{
		ID:        m.PlaygroundID,
		Name:      m.PlaygroundName,
		Location:  m.PlaygroundLocation,
		Contact:   m.PlaygroundContact,
		CreatedAt: m.PlaygroundCreatedAt,
		UpdatedAt: m.PlaygroundUpdatedAt,
	}
}

func ToPlaygroundResponses(ms []model.PlaygroundModel) []PlaygroundResponse {
	out := make([]PlaygroundResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPlaygroundResponse(m))
	}
	return out
}

// Normalize trims the fields and applies the contact default.
func (r *CreatePlaygroundRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Location = strings.TrimSpace(r.Location)
	r.Contact = strings.TrimSpace(r.Contact)
	if r.Contact == "" {
		r.Contact = model.DefaultContact
	}
}

// PairKey is the case-insensitive natural key used for in-batch dedupe.
func PairKey(name, location string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(location))
}
