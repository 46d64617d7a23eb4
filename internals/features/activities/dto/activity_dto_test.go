package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markazy_backend/internals/features/activities/model"
)

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }

func TestIsValidEgyptianPhone(t *testing.T) {
	valid := []string{"01012345678", "01112345678", "01212345678", "01512345678", "+201012345678"}
	for _, v := range valid {
		assert.True(t, IsValidEgyptianPhone(v), v)
	}
	invalid := []string{"0101234567", "010123456789", "01312345678", "0212345678", "1012345678", "+1 555 0100", ""}
	for _, v := range invalid {
		assert.False(t, IsValidEgyptianPhone(v), v)
	}
}

func TestIsValidTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "17:05", "23:59"}
	for _, v := range valid {
		assert.True(t, IsValidTime(v), v)
	}
	invalid := []string{"24:00", "9:30", "12:60", "12.30", "noon", ""}
	for _, v := range invalid {
		assert.False(t, IsValidTime(v), v)
	}
}

func validCreate(now time.Time) CreateActivityRequest {
	return CreateActivityRequest{
		ProjectName:       "مهرجان الصيف",
		CoordinatorName:   "أحمد علي",
		PhoneNumber:       "01012345678",
		Date:              now.UTC().AddDate(0, 0, 7).Format("2006-01-02"),
		Time:              "10:00",
		DaysCount:         3,
		ParticipantsCount: 100,
		TargetAgeMin:      intPtr(10),
		TargetAgeMax:      intPtr(18),
		Gender:            "مختلط",
		AccessType:        "للجميع",
	}
}

func TestCheckCreateValid(t *testing.T) {
	now := time.Now()
	assert.Empty(t, validCreate(now).CheckCreate(now))
}

func TestCheckCreateTodayAccepted(t *testing.T) {
	now := time.Now()
	req := validCreate(now)
	req.Date = now.UTC().Format("2006-01-02")
	assert.Empty(t, req.CheckCreate(now))
}

func TestCheckCreateRejections(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		mutate func(*CreateActivityRequest)
		want   string
	}{
		{"past date", func(r *CreateActivityRequest) { r.Date = now.UTC().AddDate(0, 0, -1).Format("2006-01-02") }, "today or in the future"},
		{"malformed date", func(r *CreateActivityRequest) { r.Date = "07/10/2026" }, "YYYY-MM-DD"},
		{"bad phone", func(r *CreateActivityRequest) { r.PhoneNumber = "12345" }, "Egyptian mobile"},
		{"bad time", func(r *CreateActivityRequest) { r.Time = "25:00" }, "HH:MM"},
		{"unknown gender", func(r *CreateActivityRequest) { r.Gender = "other" }, "gender must be one of"},
		{"unknown access type", func(r *CreateActivityRequest) { r.AccessType = "vip" }, "access_type must be one of"},
		{"unknown status", func(r *CreateActivityRequest) { r.Status = "done" }, "status must be one of"},
		{"max below min", func(r *CreateActivityRequest) { r.TargetAgeMin = intPtr(18); r.TargetAgeMax = intPtr(10) }, "target_age_max"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate(now)
			tt.mutate(&req)
			errs := req.CheckCreate(now)
			require.NotEmpty(t, errs)
			joined := ""
			for _, e := range errs {
				joined += e + "\n"
			}
			assert.Contains(t, joined, tt.want)
		})
	}
}

func TestCheckCreateEnumErrorListsAllowedValues(t *testing.T) {
	now := time.Now()
	req := validCreate(now)
	req.Gender = "unknown"
	errs := req.CheckCreate(now)
	require.Len(t, errs, 1)
	for _, allowed := range model.Genders {
		assert.Contains(t, errs[0], allowed)
	}
}

func TestCheckUpdateAgeAgainstStored(t *testing.T) {
	current := model.ActivityModel{
		ActivityTargetAgeMin: 12,
		ActivityTargetAgeMax: 18,
	}

	// Lone max below the stored min is rejected.
	errs := UpdateActivityRequest{TargetAgeMax: intPtr(10)}.CheckUpdate(current)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "target_age_max")

	// Lone max above the stored min passes.
	assert.Empty(t, UpdateActivityRequest{TargetAgeMax: intPtr(15)}.CheckUpdate(current))

	// Lowering both together is fine.
	assert.Empty(t, UpdateActivityRequest{
		TargetAgeMin: intPtr(5),
		TargetAgeMax: intPtr(8),
	}.CheckUpdate(current))

	// Raising min over the stored max is rejected.
	errs = UpdateActivityRequest{TargetAgeMin: intPtr(20)}.CheckUpdate(current)
	require.NotEmpty(t, errs)
}

func TestCheckUpdateValidatesOnlyProvidedFields(t *testing.T) {
	current := model.ActivityModel{ActivityTargetAgeMin: 0, ActivityTargetAgeMax: 100}

	assert.Empty(t, UpdateActivityRequest{}.CheckUpdate(current))

	errs := UpdateActivityRequest{PhoneNumber: strPtr("nope")}.CheckUpdate(current)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "phone_number")

	errs = UpdateActivityRequest{Status: strPtr("archived")}.CheckUpdate(current)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "status")
}
