package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"markazy_backend/internals/features/centers/model"
)

// =============================
// 🧾 Membership sub-record
// =============================

// Membership is the center's stored membership sub-record, kept as one
// JSONB value. A center may carry a partial or absent membership.
type Membership struct {
	FatherIDImage         string   `json:"father_id_image,omitempty"`
	BirthCertificateImage string   `json:"birth_certificate_image,omitempty"`
	PersonalPhotos        []string `json:"personal_photos,omitempty"`
	UtilityBillImage      string   `json:"utility_bill_image,omitempty"`
	Phone                 string   `json:"phone,omitempty"`
	FirstTimePrice        *float64 `json:"first_time_price,omitempty"`
	RenewalPrice          *float64 `json:"renewal_price,omitempty"`
}

// IsZero reports whether no membership field was ever filled in.
func (m Membership) IsZero() bool {
	return m.FatherIDImage == "" &&
		m.BirthCertificateImage == "" &&
		len(m.PersonalPhotos) == 0 &&
		m.UtilityBillImage == "" &&
		m.Phone == "" &&
		m.FirstTimePrice == nil &&
		m.RenewalPrice == nil
}

// MembershipPatch carries only the fields the caller wants changed.
// Nil means "leave the stored value alone".
type MembershipPatch struct {
	FatherIDImage         *string   `json:"father_id_image"`
	BirthCertificateImage *string   `json:"birth_certificate_image"`
	PersonalPhotos        *[]string `json:"personal_photos"`
	UtilityBillImage      *string   `json:"utility_bill_image"`
	Phone                 *string   `json:"phone"`
	FirstTimePrice        *float64  `json:"first_time_price" validate:"omitempty,gte=0"`
	RenewalPrice          *float64  `json:"renewal_price" validate:"omitempty,gte=0"`
}

// MergeMembership applies a shallow merge: named fields replace the
// stored ones, siblings survive untouched. Never a whole-object replace.
func MergeMembership(current Membership, patch MembershipPatch) Membership {
	out := current
	if patch.FatherIDImage != nil {
		out.FatherIDImage = *patch.FatherIDImage
	}
	if patch.BirthCertificateImage != nil {
		out.BirthCertificateImage = *patch.BirthCertificateImage
	}
	if patch.PersonalPhotos != nil {
		out.PersonalPhotos = *patch.PersonalPhotos
	}
	if patch.UtilityBillImage != nil {
		out.UtilityBillImage = *patch.UtilityBillImage
	}
	if patch.Phone != nil {
		out.Phone = *patch.Phone
	}
	if patch.FirstTimePrice != nil {
		out.FirstTimePrice = patch.FirstTimePrice
	}
	if patch.RenewalPrice != nil {
		out.RenewalPrice = patch.RenewalPrice
	}
	return out
}

// DecodeMembership reads the stored JSONB value. An empty column decodes
// to the zero Membership.
func DecodeMembership(raw []byte) (Membership, error) {
	var m Membership
	if len(raw) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return Membership{}, err
	}
	return m, nil
}

// =============================
// 📩 Requests
// =============================

type CreateCenterRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=150"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
	Address      string `json:"address" validate:"omitempty,max=300"`
	FacebookLink string `json:"facebook_link" validate:"omitempty,startswith=http"`
	Location     string `json:"location" validate:"omitempty,max=300"`
	LocationArea string `json:"location_area" validate:"omitempty,max=50"`
	Region       string `json:"region" validate:"omitempty,max=100"`
	ImageURL     string `json:"image_url" validate:"omitempty,startswith=http"`

	SportsActivities []string `json:"sports_activities"`
	SocialActivities []string `json:"social_activities"`
	ArtActivities    []string `json:"art_activities"`

	Membership *MembershipPatch `json:"membership"`
}

type UpdateCenterRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=150"`
	Phone        *string `json:"phone" validate:"omitempty,max=20"`
	Address      *string `json:"address" validate:"omitempty,max=300"`
	FacebookLink *string `json:"facebook_link" validate:"omitempty,startswith=http"`
	Location     *string `json:"location" validate:"omitempty,max=300"`
	LocationArea *string `json:"location_area" validate:"omitempty,max=50"`
	Region       *string `json:"region" validate:"omitempty,max=100"`
	ImageURL     *string `json:"image_url" validate:"omitempty,startswith=http"`
}

// ReplaceActivitiesRequest replaces whole reference lists. A present
// list overwrites (an empty one clears), a nil list is left alone.
type ReplaceActivitiesRequest struct {
	Sports *[]string `json:"sports"`
	Social *[]string `json:"social"`
	Art    *[]string `json:"art"`
}

type AddActivityRequest struct {
	ActivityID string `json:"activity_id" validate:"required,uuid4"`
}

type RemoveActivitiesRequest struct {
	ActivityIDs []string `json:"activity_ids" validate:"required,min=1,dive,uuid4"`
}

// =============================
// 📤 Responses
// =============================

type ActivityRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CenterResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	FacebookLink string    `json:"facebook_link,omitempty"`
	Location     string    `json:"location,omitempty"`
	LocationArea string    `json:"location_area,omitempty"`
	Region       string    `json:"region,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`

	SportsActivities []string `json:"sports_activities"`
	SocialActivities []string `json:"social_activities"`
	ArtActivities    []string `json:"art_activities"`

	Membership *Membership `json:"membership,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CenterDetailResponse resolves reference ids to registry names for the
// single-record view.
type CenterDetailResponse struct {
	CenterResponse
	SportsActivityDetails []ActivityRef `json:"sports_activity_details"`
	SocialActivityDetails []ActivityRef `json:"social_activity_details"`
	ArtActivityDetails    []ActivityRef `json:"art_activity_details"`
}

func ToCenterResponse(m model.CenterModel) CenterResponse {
	resp := CenterResponse{
		ID:           m.CenterID,
		Name:         m.CenterName,
		Phone:        m.CenterPhone,
		Address:      m.CenterAddress,
		FacebookLink: m.CenterFacebookLink,
		Location:     m.CenterLocation,
		LocationArea: m.CenterLocationArea,
		Region:       m.CenterRegion,
		ImageURL:     m.CenterImageURL,

		SportsActivities: emptyIfNil(m.CenterSportsActivities),
		SocialActivities: emptyIfNil(m.CenterSocialActivities),
		ArtActivities:    emptyIfNil(m.CenterArtActivities),

		CreatedAt: m.CenterCreatedAt,
		UpdatedAt: m.CenterUpdatedAt,
	}
	if ms, err := DecodeMembership(m.CenterMembership); err == nil && !ms.IsZero() {
		resp.Membership = &ms
	}
	return resp
}

func ToCenterResponses(ms []model.CenterModel) []CenterResponse {
	out := make([]CenterResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCenterResponse(m))
	}
	return out
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
