package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"markazy_backend/internals/features/techclubs/model"
)

type CreateTechClubRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=150"`
	Phone      string `json:"phone" validate:"omitempty,max=20"`
	Address    string `json:"address" validate:"omitempty,max=300"`
	Location   string `json:"location" validate:"omitempty,startswith=http"`
	ClubsCount int    `json:"clubs_count"`
	Computers  int    `json:"computers"`
	IsActive   *bool  `json:"is_active"`
}

type UpdateTechClubRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=150"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
	Address    *string `json:"address" validate:"omitempty,max=300"`
	Location   *string `json:"location" validate:"omitempty,startswith=http"`
	ClubsCount *int    `json:"clubs_count"`
	Computers  *int    `json:"computers"`
	IsActive   *bool   `json:"is_active"`
}

type BulkCreateTechClubRequest struct {
	Clubs []CreateTechClubRequest `json:"clubs" validate:"required,min=1"`
}

type TechClubResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone,omitempty"`
	Address          string    `json:"address,omitempty"`
	Location         string    `json:"location,omitempty"`
	ClubsCount       int       `json:"clubs_count"`
	Computers        int       `json:"computers"`
	ComputersPerClub float64   `json:"computers_per_club"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToTechClubResponse(m model.TechClubModel) TechClubResponse {
	return TechClubResponse{
		ID:               m.TechClubID,
		Name:             m.TechClubName,
		Phone:            m.TechClubPhone,
		Address:          m.TechClubAddress,
		Location:         m.TechClubLocation,
		ClubsCount:       m.TechClubClubsCount,
		Computers:        m.TechClubComputers,
		ComputersPerClub: ComputersPerClub(m.TechClubComputers, m.TechClubClubsCount),
		IsActive:         m.TechClubIsActive,
		CreatedAt:        m.TechClubCreatedAt,
		UpdatedAt:        m.TechClubUpdatedAt,
	}
}

func ToTechClubResponses(ms []model.TechClubModel) []TechClubResponse {
	out := make([]TechClubResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTechClubResponse(m))
	}
	return out
}

// ComputersPerClub is the derived ratio shown in responses. Zero clubs
// means a zero ratio, never a division error.
func ComputersPerClub(computers, clubs int) float64 {
	if clubs <= 0 {
		return 0
	}
	return float64(computers) / float64(clubs)
}

// ClampNonNegative floors counters at zero instead of rejecting the
// request.
func ClampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// Normalize trims text fields and clamps the counters in place.
func (r *CreateTechClubRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.Location = strings.TrimSpace(r.Location)
	r.ClubsCount = ClampNonNegative(r.ClubsCount)
	r.Computers = ClampNonNegative(r.Computers)
}
