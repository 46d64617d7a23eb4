package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultContact fills the contact field when the submitter leaves it
// empty.
const DefaultContact = "غير متوفر"

// PlaygroundModel. The natural key is the (name, location) pair,
// case-insensitive; same name on two different grounds is fine.
type PlaygroundModel struct {
	PlaygroundID        uuid.UUID `gorm:"column:playground_id;type:uuid;default:gen_random_uuid();primaryKey" json:"playground_id"`
	PlaygroundName      string    `gorm:"column:playground_name;type:varchar(150);not null"                   json:"playground_name"`
	PlaygroundLocation  string    `gorm:"column:playground_location;type:varchar(300);not null"               json:"playground_location"`
	PlaygroundContact   string    `gorm:"column:playground_contact;type:varchar(100)"                         json:"playground_contact"`
	PlaygroundCreatedAt time.Time `gorm:"column:playground_created_at;type:timestamptz;autoCreateTime"        json:"playground_created_at"`
	PlaygroundUpdatedAt time.Time `gorm:"column:playground_updated_at;type:timestamptz;autoUpdateTime"        json:"playground_updated_at"`
}

func (PlaygroundModel) TableName() string { return "playgrounds" }
