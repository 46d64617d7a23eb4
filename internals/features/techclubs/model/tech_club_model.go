package model

import (
	"time"

	"github.com/google/uuid"
)

type TechClubModel struct {
	TechClubID         uuid.UUID `gorm:"column:tech_club_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tech_club_id"`
	TechClubName       string    `gorm:"column:tech_club_name;type:varchar(150);not null"                   json:"tech_club_name"`
	TechClubPhone      string    `gorm:"column:tech_club_phone;type:varchar(20)"                            json:"tech_club_phone"`
	TechClubAddress    string    `gorm:"column:tech_club_address;type:text"                                 json:"tech_club_address"`
	TechClubLocation   string    `gorm:"column:tech_club_location;type:text"                                json:"tech_club_location"`
	TechClubClubsCount int       `gorm:"column:tech_club_clubs_count;not null;default:0"                    json:"tech_club_clubs_count"`
	TechClubComputers  int       `gorm:"column:tech_club_computers;not null;default:0"                      json:"tech_club_computers"`
	TechClubIsActive   bool      `gorm:"column:tech_club_is_active;not null;default:true"                   json:"tech_club_is_active"`
	TechClubCreatedAt  time.Time `gorm:"column:tech_club_created_at;type:timestamptz;autoCreateTime"        json:"tech_club_created_at"`
	TechClubUpdatedAt  time.Time `gorm:"column:tech_club_updated_at;type:timestamptz;autoUpdateTime"        json:"tech_club_updated_at"`
}

func (TechClubModel) TableName() string { return "tech_clubs" }
