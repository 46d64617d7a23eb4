package model

import (
	"time"

	"github.com/google/uuid"
)

// SwimmingPoolModel. The natural key is the (area, youth_center) pair;
// established year is optional and bounded to 1900..current year.
type SwimmingPoolModel struct {
	PoolID              uuid.UUID `gorm:"column:pool_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pool_id"`
	PoolArea            string    `gorm:"column:pool_area;type:varchar(150);not null"                   json:"pool_area"`
	PoolYouthCenter     string    `gorm:"column:pool_youth_center;type:varchar(150);not null"           json:"pool_youth_center"`
	PoolType            string    `gorm:"column:pool_type;type:varchar(100)"                            json:"pool_type"`
	PoolEstablishedYear *int      `gorm:"column:pool_established_year"                                  json:"pool_established_year"`
	PoolLanesCount      int       `gorm:"column:pool_lanes_count;not null;default:0"                    json:"pool_lanes_count"`
	PoolCreatedAt       time.Time `gorm:"column:pool_created_at;type:timestamptz;autoCreateTime"        json:"pool_created_at"`
	PoolUpdatedAt       time.Time `gorm:"column:pool_updated_at;type:timestamptz;autoUpdateTime"        json:"pool_updated_at"`
}

func (SwimmingPoolModel) TableName() string { return "swimming_pools" }
