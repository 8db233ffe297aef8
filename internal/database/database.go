package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"travelmate/internal/domain"

	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate applies the schema for every entity, parents before children so the
// FK constraints resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.LocalGuide{},
		&domain.Destination{},
		&domain.DestinationPhoto{},
		&domain.DestinationFeature{},
		&domain.Accommodation{},
		&domain.Booking{},
		&domain.Itinerary{},
		&domain.ItineraryItem{},
		&domain.ItineraryCollaborator{},
		&domain.DestinationReview{},
		&domain.AccommodationReview{},
		&domain.GuideReview{},
		&domain.ReviewPhoto{},
	)
}
