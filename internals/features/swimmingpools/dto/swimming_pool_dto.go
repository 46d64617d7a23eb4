package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"markazy_backend/internals/features/swimmingpools/model"
)

// BulkMax caps one bulk request; larger batches are rejected outright.
const BulkMax = 50

const MinEstablishedYear = 1900

type CreateSwimmingPoolRequest struct {
	Area            string `json:"area" validate:"required,min=2,max=150"`
	YouthCenter     string `json:"youth_center" validate:"required,min=2,max=150"`
	PoolType        string `json:"pool_type" validate:"omitempty,max=100"`
	EstablishedYear *int   `json:"established_year"`
	LanesCount      int    `json:"lanes_count"`
}

type UpdateSwimmingPoolRequest struct {
	Area            *string `json:"area" validate:"omitempty,min=2,max=150"`
	YouthCenter     *string `json:"youth_center" validate:"omitempty,min=2,max=150"`
	PoolType        *string `json:"pool_type" validate:"omitempty,max=100"`
	EstablishedYear *int    `json:"established_year"`
	LanesCount      *int    `json:"lanes_count"`
}

type BulkCreateSwimmingPoolRequest struct {
	Pools []CreateSwimmingPoolRequest `json:"pools" validate:"required,min=1"`
}

type SwimmingPoolResponse struct {
	ID              uuid.UUID `json:"id"`
	Area            string    `json:"area"`
	YouthCenter     string    `json:"youth_center"`
	PoolType        string    `json:"pool_type,omitempty"`
	EstablishedYear *int      `json:"established_year"`
	LanesCount      int       `json:"lanes_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToSwimmingPoolResponse(m model.SwimmingPoolModel) SwimmingPoolResponse {
	return SwimmingPoolResponse{
		ID:              m.PoolID,
		Area:            m.PoolArea,
		YouthCenter:     m.PoolYouthCenter,
		PoolType:        m.PoolType,
		EstablishedYear: m.PoolEstablishedYear,
		LanesCount:      m.PoolLanesCount,
		CreatedAt:       m.PoolCreatedAt,
		UpdatedAt:       m.PoolUpdatedAt,
	}
}

func ToSwimmingPoolResponses(ms []model.SwimmingPoolModel) []SwimmingPoolResponse {
	out := make([]SwimmingPoolResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToSwimmingPoolResponse(m))
	}
	return out
}

// CheckYear bounds an optional established year to 1900..current year.
func CheckYear(year *int, now time.Time) error {
	if year == nil {
		return nil
	}
	if *year < MinEstablishedYear || *year > now.Year() {
		return fmt.Errorf("established_year must be between %d and %d", MinEstablishedYear, now.Year())
	}
	return nil
}

// Normalize trims the text fields and floors the lane count at zero.
func (r *CreateSwimmingPoolRequest) Normalize() {
	r.Area = strings.TrimSpace(r.Area)
	r.YouthCenter = strings.TrimSpace(r.YouthCenter)
	r.PoolType = strings.TrimSpace(r.PoolType)
	if r.LanesCount < 0 {
		r.LanesCount = 0
	}
}

// PairKey is the case-insensitive (area, youth_center) natural key.
func PairKey(area, youthCenter string) string {
	return strings.ToLower(strings.TrimSpace(area)) + "|" + strings.ToLower(strings.TrimSpace(youthCenter))
}
