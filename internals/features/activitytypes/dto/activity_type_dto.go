package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"markazy_backend/internals/features/activitytypes/model"
)

type CreateActivityTypeRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateActivityTypeRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type BulkCreateActivityTypeRequest struct {
	Names []string `json:"names" validate:"required,min=1,dive,min=2,max=100"`
}

// ActivityTypeResponse is the wire shape for one registry entry. Type
// carries the registry tag so combined listings stay distinguishable.
type ActivityTypeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToActivityTypeResponse(m model.ActivityTypeModel, tag string) ActivityTypeResponse {
	return ActivityTypeResponse{
		ID:        m.ActivityTypeID,
		Name:      m.ActivityTypeName,
		Type:      tag,
		CreatedAt: m.ActivityTypeCreatedAt,
		UpdatedAt: m.ActivityTypeUpdatedAt,
	}
}

func ToActivityTypeResponses(ms []model.ActivityTypeModel, tag string) []ActivityTypeResponse {
	out := make([]ActivityTypeResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToActivityTypeResponse(m, tag))
	}
	return out
}

// NormalizeName trims surrounding whitespace before uniqueness checks
// and persistence so "كرة القدم " and "كرة القدم" are the same entry.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// DedupeNames drops empty and in-batch duplicate names (case-insensitive)
// while preserving first-seen order. Used by bulk insert.
func DedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = NormalizeName(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out
}
