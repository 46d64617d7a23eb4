package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel holds editor accounts. There is no registration endpoint:
// rows are provisioned directly in the database.
type UserModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserEmail     string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex"      json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;type:varchar(255);not null"               json:"-"`
	UserRole      string    `gorm:"column:user_role;type:varchar(20);not null"                    json:"user_role"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;type:timestamptz;autoCreateTime"        json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;type:timestamptz;autoUpdateTime"        json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
