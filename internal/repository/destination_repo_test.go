package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travelmate/internal/database"
	"travelmate/internal/domain"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func rowCount(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}

func seedDestinationTree(t *testing.T, db *gorm.DB) (destinationID, accommodationID, itineraryID int64) {
	t.Helper()
	ctx := context.Background()

	owner := &domain.User{Username: "nadia", Email: "nadia@example.com", Role: domain.RoleTraveller}
	require.NoError(t, db.Create(owner).Error)

	destination := &domain.Destination{
		Name:      "Cox's Bazar",
		Category:  domain.CategoryBeach,
		Location:  "Chattogram",
		Country:   "Bangladesh",
		CreatedBy: owner.ID,
	}
	require.NoError(t, NewDestinationRepository(db).Create(ctx, destination))

	require.NoError(t, db.Create(&domain.DestinationPhoto{
		DestinationID: destination.ID, Image: "/static/uploads/destinations/x.jpg", UploadedBy: owner.ID,
	}).Error)
	require.NoError(t, db.Create(&domain.DestinationFeature{
		DestinationID: destination.ID, Name: "Longest sea beach",
	}).Error)

	destReview := &domain.DestinationReview{
		DestinationID: destination.ID, UserID: owner.ID, Content: "Worth the trip", Rating: 5, IsApproved: true,
	}
	require.NoError(t, db.Create(destReview).Error)
	require.NoError(t, db.Create(&domain.ReviewPhoto{
		Subject: domain.SubjectDestination, ReviewID: destReview.ID, Image: "/static/uploads/review_photos/a.jpg",
	}).Error)

	accommodation := &domain.Accommodation{
		Name:          "Sea Pearl Resort",
		Type:          domain.AccommodationResort,
		DestinationID: destination.ID,
		PricePerNight: 100,
		MaxGuests:     2,
		IsAvailable:   true,
		CheckInTime:   domain.DefaultCheckInTime,
		CheckOutTime:  domain.DefaultCheckOutTime,
		CreatedBy:     owner.ID,
	}
	require.NoError(t, db.Create(accommodation).Error)

	accReview := &domain.AccommodationReview{
		AccommodationID: accommodation.ID, UserID: owner.ID, Content: "Clean rooms", Rating: 4, IsApproved: true,
	}
	require.NoError(t, db.Create(accReview).Error)
	require.NoError(t, db.Create(&domain.ReviewPhoto{
		Subject: domain.SubjectAccommodation, ReviewID: accReview.ID, Image: "/static/uploads/review_photos/b.jpg",
	}).Error)

	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&domain.Booking{
		UserID:          owner.ID,
		AccommodationID: accommodation.ID,
		CheckIn:         checkIn,
		CheckOut:        checkIn.AddDate(0, 0, 2),
		Guests:          2,
		TotalAmount:     400,
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
	}).Error)

	itinerary := &domain.Itinerary{
		UserID:    owner.ID,
		Title:     "Beach weekend",
		StartDate: checkIn,
		EndDate:   checkIn.AddDate(0, 0, 2),
		Status:    domain.TripPlanning,
	}
	require.NoError(t, db.Create(itinerary).Error)
	require.NoError(t, db.Create(&domain.ItineraryItem{
		ItineraryID:     itinerary.ID,
		ItemType:        domain.ItemAccommodation,
		DestinationID:   &destination.ID,
		AccommodationID: &accommodation.ID,
		Title:           "Two nights at the resort",
		StartDate:       checkIn,
		EndDate:         checkIn.AddDate(0, 0, 2),
	}).Error)

	return destination.ID, accommodation.ID, itinerary.ID
}

func TestDestinationRepository_DeleteRemovesChildren(t *testing.T) {
	db := testDB(t)
	destinationID, accommodationID, itineraryID := seedDestinationTree(t, db)

	require.NoError(t, NewDestinationRepository(db).Delete(context.Background(), destinationID))

	require.EqualValues(t, 0, rowCount(t, db, &domain.DestinationPhoto{}, "destination_id = ?", destinationID))
	require.EqualValues(t, 0, rowCount(t, db, &domain.DestinationFeature{}, "destination_id = ?", destinationID))
	require.EqualValues(t, 0, rowCount(t, db, &domain.DestinationReview{}, "destination_id = ?", destinationID))
	require.EqualValues(t, 0, rowCount(t, db, &domain.Accommodation{}, "destination_id = ?", destinationID))
	require.EqualValues(t, 0, rowCount(t, db, &domain.AccommodationReview{}, "accommodation_id = ?", accommodationID))
	require.EqualValues(t, 0, rowCount(t, db, &domain.Booking{}, "accommodation_id = ?", accommodationID))
	require.EqualValues(t, 0, rowCount(t, db, &domain.ReviewPhoto{}, "1 = 1"))

	// the itinerary survives; its item just loses the dangling references
	require.EqualValues(t, 1, rowCount(t, db, &domain.ItineraryItem{}, "itinerary_id = ?", itineraryID))
	require.EqualValues(t, 0, rowCount(t, db, &domain.ItineraryItem{}, "destination_id IS NOT NULL"))
	require.EqualValues(t, 0, rowCount(t, db, &domain.ItineraryItem{}, "accommodation_id IS NOT NULL"))
}

func TestAccommodationRepository_DeleteRemovesChildren(t *testing.T) {
	db := testDB(t)
	destinationID, accommodationID, _ := seedDestinationTree(t, db)

	require.NoError(t, NewAccommodationRepository(db).Delete(context.Background(), accommodationID))

	require.EqualValues(t, 0, rowCount(t, db, &domain.AccommodationReview{}, "accommodation_id = ?", accommodationID))
	require.EqualValues(t, 0, rowCount(t, db, &domain.Booking{}, "accommodation_id = ?", accommodationID))
	require.EqualValues(t, 0, rowCount(t, db, &domain.ReviewPhoto{}, "subject_kind = ?", domain.SubjectAccommodation))
	require.EqualValues(t, 0, rowCount(t, db, &domain.ItineraryItem{}, "accommodation_id IS NOT NULL"))

	// the parent destination and its own children are untouched
	require.EqualValues(t, 1, rowCount(t, db, &domain.Destination{}, "id = ?", destinationID))
	require.EqualValues(t, 1, rowCount(t, db, &domain.DestinationReview{}, "destination_id = ?", destinationID))
	require.EqualValues(t, 1, rowCount(t, db, &domain.ReviewPhoto{}, "subject_kind = ?", domain.SubjectDestination))
}
