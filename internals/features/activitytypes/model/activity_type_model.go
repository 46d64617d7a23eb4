package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityTypeModel is the shared shape of the three name registries
// (sport, social, art). The three tables are schema-identical so the
// controllers can dispatch on a type tag instead of switching models.
type ActivityTypeModel struct {
	ActivityTypeID        uuid.UUID `gorm:"column:activity_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_type_id"`
	ActivityTypeName      string    `gorm:"column:activity_type_name;type:varchar(100);not null"                   json:"activity_type_name"`
	ActivityTypeCreatedAt time.Time `gorm:"column:activity_type_created_at;type:timestamptz;autoCreateTime"        json:"activity_type_created_at"`
	ActivityTypeUpdatedAt time.Time `gorm:"column:activity_type_updated_at;type:timestamptz;autoUpdateTime"        json:"activity_type_updated_at"`
}

type SportActivityModel struct {
	ActivityTypeModel
}

func (SportActivityModel) TableName() string { return "sport_activities" }

type SocialActivityModel struct {
	ActivityTypeModel
}

func (SocialActivityModel) TableName() string { return "social_activities" }

type ArtActivityModel struct {
	ActivityTypeModel
}

func (ArtActivityModel) TableName() string { return "art_activities" }
