package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	activityModel "markazy_backend/internals/features/activities/model"
	activityTypeModel "markazy_backend/internals/features/activitytypes/model"
	centerModel "markazy_backend/internals/features/centers/model"
	newsModel "markazy_backend/internals/features/news/model"
	playgroundModel "markazy_backend/internals/features/playgrounds/model"
	poolModel "markazy_backend/internals/features/swimmingpools/model"
	techClubModel "markazy_backend/internals/features/techclubs/model"
	authModel "markazy_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=markazy&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // plays nice with PgBouncer transaction pooling
	}), &gorm.Config{
		TranslateError: true, // 23505 -> gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates or updates every table. gen_random_uuid defaults need
// pgcrypto on PostgreSQL < 13.
func Migrate() {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("pgcrypto: %v", err)
	}
	if err := DB.AutoMigrate(
		&authModel.UserModel{},
		&authModel.TokenBlacklist{},
		&activityTypeModel.SportActivityModel{},
		&activityTypeModel.SocialActivityModel{},
		&activityTypeModel.ArtActivityModel{},
		&centerModel.CenterModel{},
		&activityModel.ActivityModel{},
		&techClubModel.TechClubModel{},
		&playgroundModel.PlaygroundModel{},
		&poolModel.SwimmingPoolModel{},
		&newsModel.NewsModel{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}

	// Case-insensitive unique indexes back the pre-insert duplicate
	// checks, so a concurrent create hits 23505 instead of slipping
	// through.
	for _, stmt := range []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_sport_activities_name ON sport_activities (LOWER(activity_type_name))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_social_activities_name ON social_activities (LOWER(activity_type_name))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_art_activities_name ON art_activities (LOWER(activity_type_name))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_youth_centers_name ON youth_centers (LOWER(center_name))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_activities_project_name ON activities (LOWER(activity_project_name))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_tech_clubs_name ON tech_clubs (LOWER(tech_club_name))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_playgrounds_name_location ON playgrounds (LOWER(playground_name), LOWER(playground_location))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_swimming_pools_area_center ON swimming_pools (LOWER(pool_area), LOWER(pool_youth_center))`,
	} {
		if err := DB.Exec(stmt).Error; err != nil {
			log.Fatalf("❌ unique index failed: %v", err)
		}
	}
	log.Println("✅ Migration done.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
