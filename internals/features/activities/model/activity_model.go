package model

import (
	"time"

	"github.com/google/uuid"
)

// Enum values are stored in Arabic exactly as the clients send them.
var (
	Genders     = []string{"بنين", "بنات", "مختلط"}
	AccessTypes = []string{"الأعضاء فقط", "للجميع"}
	Statuses    = []string{"مجدول", "جاري", "ملغي"}
)

const (
	StatusScheduled = "مجدول"
	StatusOngoing   = "جاري"
	StatusCancelled = "ملغي"
)

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func IsValidGender(v string) bool     { return contains(Genders, v) }
func IsValidAccessType(v string) bool { return contains(AccessTypes, v) }
func IsValidStatus(v string) bool     { return contains(Statuses, v) }

// ActivityModel is a public event run by the ministry, distinct from
// the sport/social/art name registries.
type ActivityModel struct {
	ActivityID                uuid.UUID `gorm:"column:activity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_id"`
	ActivityProjectName       string    `gorm:"column:activity_project_name;type:varchar(150);not null"           json:"activity_project_name"`
	ActivitySlug              string    `gorm:"column:activity_slug;type:varchar(190);uniqueIndex;not null"       json:"activity_slug"`
	ActivityCoordinatorName   string    `gorm:"column:activity_coordinator_name;type:varchar(100);not null"       json:"activity_coordinator_name"`
	ActivityPhoneNumber       string    `gorm:"column:activity_phone_number;type:varchar(20);not null"            json:"activity_phone_number"`
	ActivityLocation          string    `gorm:"column:activity_location;type:text"                                json:"activity_location"`
	ActivityDate              time.Time `gorm:"column:activity_date;type:date;not null"                           json:"activity_date"`
	ActivityTime              string    `gorm:"column:activity_time;type:varchar(5)"                              json:"activity_time"`
	ActivityDaysCount         int       `gorm:"column:activity_days_count;not null;default:1"                     json:"activity_days_count"`
	ActivityParticipantsCount int       `gorm:"column:activity_participants_count;not null;default:1"             json:"activity_participants_count"`
	ActivityTargetAgeMin      int       `gorm:"column:activity_target_age_min;not null;default:0"                 json:"activity_target_age_min"`
	ActivityTargetAgeMax      int       `gorm:"column:activity_target_age_max;not null;default:0"                 json:"activity_target_age_max"`
	ActivityGender            string    `gorm:"column:activity_gender;type:varchar(20);not null"                  json:"activity_gender"`
	ActivityAccessType        string    `gorm:"column:activity_access_type;type:varchar(30);not null"             json:"activity_access_type"`
	ActivityNotes             string    `gorm:"column:activity_notes;type:varchar(500)"                           json:"activity_notes"`
	ActivityStatus            string    `gorm:"column:activity_status;type:varchar(20);not null;default:'مجدول'"    json:"activity_status"`
	ActivityCreatedAt         time.Time `gorm:"column:activity_created_at;type:timestamptz;autoCreateTime"        json:"activity_created_at"`
	ActivityUpdatedAt         time.Time `gorm:"column:activity_updated_at;type:timestamptz;autoUpdateTime"       json:"activity_updated_at"`
}

func (ActivityModel) TableName() string { return "activities" }
