package dto

import (
	"time"

	"github.com/google/uuid"

	"markazy_backend/internals/features/activities/model"
)

type ActivityResponse struct {
	ID                uuid.UUID `json:"id"`
	ProjectName       string    `json:"project_name"`
	Slug              string    `json:"slug"`
	CoordinatorName   string    `json:"coordinator_name"`
	PhoneNumber       string    `json:"phone_number"`
	Location          string    `json:"location,omitempty"`
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	DaysCount         int       `json:"days_count"`
	ParticipantsCount int       `json:"participants_count"`
	TargetAgeMin      int       `json:"target_age_min"`
	TargetAgeMax      int       `json:"target_age_max"`
	Gender            string    `json:"gender"`
	AccessType        string    `json:"access_type"`
	Notes             string    `json:"notes,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func ToActivityResponse(m model.ActivityModel) ActivityResponse {
	return ActivityResponse{
		ID:                m.ActivityID,
		ProjectName:       m.ActivityProjectName,
		Slug:              m.ActivitySlug,
		CoordinatorName:   m.ActivityCoordinatorName,
		PhoneNumber:       m.ActivityPhoneNumber,
		Location:          m.ActivityLocation,
		Date:              m.ActivityDate.Format(dateLayout),
		Time:              m.ActivityTime,
		DaysCount:         m.ActivityDaysCount,
		ParticipantsCount: m.ActivityParticipantsCount,
		TargetAgeMin:      m.ActivityTargetAgeMin,
		TargetAgeMax:      m.ActivityTargetAgeMax,
		Gender:            m.ActivityGender,
		AccessType:        m.ActivityAccessType,
		Notes:             m.ActivityNotes,
		Status:            m.ActivityStatus,
		CreatedAt:         m.ActivityCreatedAt,
		UpdatedAt:         m.ActivityUpdatedAt,
	}
}

func ToActivityResponses(ms []model.ActivityModel) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToActivityResponse(m))
	}
	return out
}
