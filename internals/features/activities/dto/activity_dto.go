package dto

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"markazy_backend/internals/features/activities/model"
)

var (
	// Egyptian mobile numbers, with or without the +2 country prefix.
	reEgyptPhone = regexp.MustCompile(`^(\+2)?01[0-25][0-9]{8}$`)
	reTime       = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

const dateLayout = "2006-01-02"

func IsValidEgyptianPhone(v string) bool { return reEgyptPhone.MatchString(v) }
func IsValidTime(v string) bool          { return reTime.MatchString(v) }

type CreateActivityRequest struct {
	ProjectName       string `json:"project_name" validate:"required,min=2,max=150"`
	CoordinatorName   string `json:"coordinator_name" validate:"required,min=2,max=100"`
	PhoneNumber       string `json:"phone_number" validate:"required"`
	Location          string `json:"location" validate:"omitempty,max=300"`
	Date              string `json:"date" validate:"required"`
	Time              string `json:"time" validate:"required"`
	DaysCount         int    `json:"days_count" validate:"required,min=1,max=365"`
	ParticipantsCount int    `json:"participants_count" validate:"required,min=1,max=10000"`
	TargetAgeMin      *int   `json:"target_age_min" validate:"required,gte=0,lte=100"`
	TargetAgeMax      *int   `json:"target_age_max" validate:"required,gte=0,lte=100"`
	Gender            string `json:"gender" validate:"required"`
	AccessType        string `json:"access_type" validate:"required"`
	Notes             string `json:"notes" validate:"omitempty,max=500"`
	Status            string `json:"status"`
}

type UpdateActivityRequest struct {
	ProjectName       *string `json:"project_name" validate:"omitempty,min=2,max=150"`
	CoordinatorName   *string `json:"coordinator_name" validate:"omitempty,min=2,max=100"`
	PhoneNumber       *string `json:"phone_number"`
	Location          *string `json:"location" validate:"omitempty,max=300"`
	Date              *string `json:"date"`
	Time              *string `json:"time"`
	DaysCount         *int    `json:"days_count" validate:"omitempty,min=1,max=365"`
	ParticipantsCount *int    `json:"participants_count" validate:"omitempty,min=1,max=10000"`
	TargetAgeMin      *int    `json:"target_age_min" validate:"omitempty,gte=0,lte=100"`
	TargetAgeMax      *int    `json:"target_age_max" validate:"omitempty,gte=0,lte=100"`
	Gender            *string `json:"gender"`
	AccessType        *string `json:"access_type"`
	Notes             *string `json:"notes" validate:"omitempty,max=500"`
	Status            *string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CheckCreate runs the domain checks the validator tags cannot express:
// enum membership, the phone and time patterns, date shape and the
// target-age ordering.
func (r CreateActivityRequest) CheckCreate(now time.Time) []string {
	errs := make([]string, 0)
	if !IsValidEgyptianPhone(r.PhoneNumber) {
		errs = append(errs, "phone_number must be a valid Egyptian mobile number")
	}
	if !IsValidTime(r.Time) {
		errs = append(errs, "time must be in HH:MM format")
	}
	if !model.IsValidGender(r.Gender) {
		errs = append(errs, "gender must be one of: "+strings.Join(model.Genders, ", "))
	}
	if !model.IsValidAccessType(r.AccessType) {
		errs = append(errs, "access_type must be one of: "+strings.Join(model.AccessTypes, ", "))
	}
	if r.Status != "" && !model.IsValidStatus(r.Status) {
		errs = append(errs, "status must be one of: "+strings.Join(model.Statuses, ", "))
	}
	if r.TargetAgeMin != nil && r.TargetAgeMax != nil && *r.TargetAgeMax < *r.TargetAgeMin {
		errs = append(errs, "target_age_max must be greater than or equal to target_age_min")
	}
	// Dates parse as UTC midnight, so the boundary is the UTC day.
	if date, err := ParseDate(r.Date); err != nil {
		errs = append(errs, "date must be in YYYY-MM-DD format")
	} else if date.Before(TruncateToDay(now.UTC())) {
		errs = append(errs, "date must be today or in the future")
	}
	return errs
}

// CheckUpdate validates only the provided fields. The age bounds are
// checked against the stored record so a lone max cannot slip under a
// previously stored min.
func (r UpdateActivityRequest) CheckUpdate(current model.ActivityModel) []string {
	errs := make([]string, 0)
	if r.PhoneNumber != nil && !IsValidEgyptianPhone(*r.PhoneNumber) {
		errs = append(errs, "phone_number must be a valid Egyptian mobile number")
	}
	if r.Time != nil && !IsValidTime(*r.Time) {
		errs = append(errs, "time must be in HH:MM format")
	}
	if r.Gender != nil && !model.IsValidGender(*r.Gender) {
		errs = append(errs, "gender must be one of: "+strings.Join(model.Genders, ", "))
	}
	if r.AccessType != nil && !model.IsValidAccessType(*r.AccessType) {
		errs = append(errs, "access_type must be one of: "+strings.Join(model.AccessTypes, ", "))
	}
	if r.Status != nil && !model.IsValidStatus(*r.Status) {
		errs = append(errs, "status must be one of: "+strings.Join(model.Statuses, ", "))
	}
	if r.Date != nil {
		if _, err := ParseDate(*r.Date); err != nil {
			errs = append(errs, "date must be in YYYY-MM-DD format")
		}
	}

	min := current.ActivityTargetAgeMin
	max := current.ActivityTargetAgeMax
	if r.TargetAgeMin != nil {
		min = *r.TargetAgeMin
	}
	if r.TargetAgeMax != nil {
		max = *r.TargetAgeMax
	}
	if max < min {
		errs = append(errs, fmt.Sprintf(
			"target_age_max (%d) must be greater than or equal to target_age_min (%d)", max, min))
	}
	return errs
}

func ParseDate(v string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(v))
}

func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
