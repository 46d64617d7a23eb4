package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// CenterModel is a youth center. The three activity columns are uuid
// arrays pointing into the registry tables; the store enforces no
// integrity on them, the handlers do.
type CenterModel struct {
	CenterID           uuid.UUID `gorm:"column:center_id;type:uuid;default:gen_random_uuid();primaryKey" json:"center_id"`
	CenterName         string    `gorm:"column:center_name;type:varchar(150);not null"                   json:"center_name"`
	CenterPhone        string    `gorm:"column:center_phone;type:varchar(20)"                            json:"center_phone"`
	CenterAddress      string    `gorm:"column:center_address;type:text"                                 json:"center_address"`
	CenterFacebookLink string    `gorm:"column:center_facebook_link;type:text"                           json:"center_facebook_link"`
	CenterLocation     string    `gorm:"column:center_location;type:text"                                json:"center_location"`
	CenterLocationArea string    `gorm:"column:center_location_area;type:varchar(50)"                    json:"center_location_area"`
	CenterRegion       string    `gorm:"column:center_region;type:varchar(100)"                          json:"center_region"`
	CenterImageURL     string    `gorm:"column:center_image_url;type:text"                               json:"center_image_url"`
	CenterImageKey     string    `gorm:"column:center_image_key;type:text"                               json:"-"`

	CenterSportsActivities pq.StringArray `gorm:"column:center_sports_activities;type:uuid[]" json:"center_sports_activities"`
	CenterSocialActivities pq.StringArray `gorm:"column:center_social_activities;type:uuid[]" json:"center_social_activities"`
	CenterArtActivities    pq.StringArray `gorm:"column:center_art_activities;type:uuid[]"    json:"center_art_activities"`

	CenterMembership datatypes.JSON `gorm:"column:center_membership;type:jsonb" json:"center_membership"`

	CenterCreatedAt time.Time `gorm:"column:center_created_at;type:timestamptz;autoCreateTime" json:"center_created_at"`
	CenterUpdatedAt time.Time `gorm:"column:center_updated_at;type:timestamptz;autoUpdateTime" json:"center_updated_at"`
}

func (CenterModel) TableName() string { return "youth_centers" }
