package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travelmate/internal/config"
	"travelmate/internal/database"
	"travelmate/internal/domain"
)

// Seeds a development database with a staff account, travellers, guides,
// destinations, accommodations and sample bookings, itineraries and reviews.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	wipe(db)

	admin := user(db, "admin", "admin@travelmate.local", "admin12345", domain.RoleStaff, "Admin", "User")
	nadia := user(db, "nadia", "nadia@example.com", "password123", domain.RoleTraveller, "Nadia", "Islam")
	rifat := user(db, "rifat", "rifat@example.com", "password123", domain.RoleTraveller, "Rifat", "Hasan")

	guideUser := user(db, "kabir.guide", "kabir@example.com", "password123", domain.RoleTraveller, "Kabir", "Ahmed")
	kabir := &domain.LocalGuide{
		UserID:          guideUser.ID,
		Region:          "Sylhet",
		Description:     "Tea garden and haor treks, ten years on the trails.",
		ExperienceYears: 10,
		Languages:       "Bengali, English",
		HourlyRate:      12,
		IsVerified:      true,
	}
	mustCreate(db, kabir)

	coxsBazar := &domain.Destination{
		Name:            "Cox's Bazar",
		Description:     "The world's longest natural sea beach.",
		Category:        domain.CategoryBeach,
		Location:        "Cox's Bazar",
		State:           "Chattogram",
		Country:         "Bangladesh",
		BestTimeToVisit: "November to March",
		EntryFee:        0,
		IsFeatured:      true,
		CreatedBy:       admin.ID,
	}
	mustCreate(db, coxsBazar)
	mustCreate(db, &domain.DestinationFeature{DestinationID: coxsBazar.ID, Name: "Beach", Description: "120 km of sand"})

	sundarbans := &domain.Destination{
		Name:            "Sundarbans",
		Description:     "Mangrove forest, home of the Bengal tiger.",
		Category:        domain.CategoryWildlife,
		Location:        "Khulna",
		Country:         "Bangladesh",
		BestTimeToVisit: "October to February",
		EntryFee:        150,
		CreatedBy:       nadia.ID,
	}
	mustCreate(db, sundarbans)

	seaPearl := &domain.Accommodation{
		Name:          "Sea Pearl Resort",
		Type:          domain.AccommodationResort,
		DestinationID: coxsBazar.ID,
		Address:       "Inani Beach, Cox's Bazar",
		PricePerNight: 100,
		MaxGuests:     domain.DefaultMaxGuests,
		IsAvailable:   true,
		CheckInTime:   domain.DefaultCheckInTime,
		CheckOutTime:  domain.DefaultCheckOutTime,
		CreatedBy:     admin.ID,
	}
	mustCreate(db, seaPearl)

	checkIn := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	mustCreate(db, &domain.Booking{
		UserID:          nadia.ID,
		AccommodationID: seaPearl.ID,
		CheckIn:         checkIn,
		CheckOut:        checkIn.AddDate(0, 0, 2),
		Guests:          2,
		TotalAmount:     400, // 100 * 2 nights * 2 guests
		Status:          domain.BookingConfirmed,
		PaymentStatus:   domain.PaymentPaid,
	})

	trip := &domain.Itinerary{
		UserID:    nadia.ID,
		Title:     "Weekend at the beach",
		StartDate: checkIn,
		EndDate:   checkIn.AddDate(0, 0, 2),
		Status:    domain.TripPlanning,
		IsPublic:  true,
	}
	mustCreate(db, trip)
	estCost := 30.0
	mustCreate(db, &domain.ItineraryItem{
		ItineraryID:   trip.ID,
		ItemType:      domain.ItemDestination,
		DestinationID: &coxsBazar.ID,
		Title:         "Sunset at Laboni Point",
		StartDate:     checkIn,
		EndDate:       checkIn,
		EstimatedCost: &estCost,
	})

	mustCreate(db, &domain.AccommodationReview{
		AccommodationID: seaPearl.ID,
		UserID:          rifat.ID,
		Content:         "Clean rooms, great view.",
		Rating:          5,
		IsApproved:      true,
	})
	db.Model(&domain.Accommodation{}).Where("id = ?", seaPearl.ID).Update("rating", 5.0)

	mustCreate(db, &domain.GuideReview{
		GuideID:    kabir.ID,
		UserID:     nadia.ID,
		Content:    "Knows every trail.",
		Rating:     5,
		IsApproved: true,
	})
	db.Model(&domain.LocalGuide{}).Where("id = ?", kabir.ID).Update("rating", 5.0)

	log.Println("Seed data created")
	log.Println("  staff login:     admin / admin12345")
	log.Println("  traveller login: nadia / password123")
}

func wipe(db *gorm.DB) {
	tables := []string{
		"review_photos", "guide_reviews", "accommodation_reviews", "destination_reviews",
		"itinerary_collaborators", "itinerary_items", "itineraries",
		"bookings", "accommodations",
		"destination_features", "destination_photos", "destinations",
		"local_guides", "users",
	}
	for _, table := range tables {
		db.Exec("DELETE FROM " + table)
	}
}

func user(db *gorm.DB, username, email, password string, role domain.UserRole, first, last string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    first,
		LastName:     last,
		Role:         role,
	}
	mustCreate(db, u)
	return u
}

func mustCreate(db *gorm.DB, v any) {
	if err := db.Create(v).Error; err != nil {
		log.Fatalf("seed %T: %v", v, err)
	}
}
