package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travelmate/internal/database"
	"travelmate/internal/domain"
	"travelmate/internal/repository"
)

type fixture struct {
	db      *gorm.DB
	service *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	service := NewService(
		repository.NewReviewRepository(db),
		repository.NewDestinationRepository(db),
		repository.NewAccommodationRepository(db),
		repository.NewGuideRepository(db),
	)
	return &fixture{db: db, service: service}
}

func (f *fixture) user(t *testing.T, username string) *domain.User {
	t.Helper()
	u := &domain.User{Username: username, Email: username + "@example.com", Role: domain.RoleTraveller}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) accommodation(t *testing.T) *domain.Accommodation {
	t.Helper()
	d := &domain.Destination{Name: "Cox's Bazar", Category: domain.CategoryBeach, Location: "Chattogram", Country: "Bangladesh"}
	require.NoError(t, f.db.Create(d).Error)
	a := &domain.Accommodation{
		Name: "Sea Pearl", Type: domain.AccommodationResort, DestinationID: d.ID,
		PricePerNight: 100, MaxGuests: 2, IsAvailable: true,
	}
	require.NoError(t, f.db.Create(a).Error)
	return a
}

func (f *fixture) guide(t *testing.T) *domain.LocalGuide {
	t.Helper()
	u := f.user(t, "guideuser")
	g := &domain.LocalGuide{UserID: u.ID, Region: "Sylhet", IsVerified: true}
	require.NoError(t, f.db.Create(g).Error)
	return g
}

func TestRatingTitle(t *testing.T) {
	cases := map[int]string{5: "Excellent", 4: "Very Good", 3: "Good", 2: "Fair", 1: "Poor", 0: "", 6: ""}
	for rating, want := range cases {
		require.Equal(t, want, domain.RatingTitle(rating))
	}
}

func TestService_AccommodationRatingAggregation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	accommodation := f.accommodation(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	cara := f.user(t, "cara")

	_, err := f.service.CreateAccommodationReview(ctx, alice.ID, accommodation.ID, CreateReviewRequest{Rating: 5, Content: "Great stay"})
	require.NoError(t, err)
	_, err = f.service.CreateAccommodationReview(ctx, bob.ID, accommodation.ID, CreateReviewRequest{Rating: 3})
	require.NoError(t, err)

	var stored domain.Accommodation
	require.NoError(t, f.db.First(&stored, accommodation.ID).Error)
	require.Equal(t, 4.0, stored.Rating) // mean(5,3)

	_, err = f.service.CreateAccommodationReview(ctx, cara.ID, accommodation.ID, CreateReviewRequest{Rating: 4})
	require.NoError(t, err)

	require.NoError(t, f.db.First(&stored, accommodation.ID).Error)
	require.Equal(t, 4.0, stored.Rating) // mean(5,3,4) = 4.0
}

func TestService_UnapprovedReviewsExcludedFromAggregate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	accommodation := f.accommodation(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	rv, err := f.service.CreateAccommodationReview(ctx, alice.ID, accommodation.ID, CreateReviewRequest{Rating: 5})
	require.NoError(t, err)
	_, err = f.service.CreateAccommodationReview(ctx, bob.ID, accommodation.ID, CreateReviewRequest{Rating: 1})
	require.NoError(t, err)

	// moderation pulls bob's review; the aggregate should move back to 5
	require.NoError(t, f.db.Model(&domain.AccommodationReview{}).
		Where("accommodation_id = ? AND user_id = ?", accommodation.ID, bob.ID).
		Update("is_approved", false).Error)
	require.NoError(t, f.service.recomputeAccommodationRating(ctx, accommodation.ID))

	var stored domain.Accommodation
	require.NoError(t, f.db.First(&stored, accommodation.ID).Error)
	require.Equal(t, 5.0, stored.Rating)

	reviews, err := f.service.GetAccommodationReviews(ctx, accommodation.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, rv.ID, reviews[0].ID)
}

func TestService_OneReviewPerUserPerSubject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	accommodation := f.accommodation(t)
	alice := f.user(t, "alice")

	_, err := f.service.CreateAccommodationReview(ctx, alice.ID, accommodation.ID, CreateReviewRequest{Rating: 4})
	require.NoError(t, err)

	_, err = f.service.CreateAccommodationReview(ctx, alice.ID, accommodation.ID, CreateReviewRequest{Rating: 2})
	require.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestService_GuideRatingWriteback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	guide := f.guide(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	_, err := f.service.CreateGuideReview(ctx, alice.ID, guide.ID, CreateReviewRequest{Rating: 5})
	require.NoError(t, err)
	_, err = f.service.CreateGuideReview(ctx, bob.ID, guide.ID, CreateReviewRequest{Rating: 4})
	require.NoError(t, err)

	var stored domain.LocalGuide
	require.NoError(t, f.db.First(&stored, guide.ID).Error)
	require.Equal(t, 4.5, stored.Rating)
}

func TestService_DeleteReviewRecomputesAggregate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	accommodation := f.accommodation(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	_, err := f.service.CreateAccommodationReview(ctx, alice.ID, accommodation.ID, CreateReviewRequest{Rating: 5})
	require.NoError(t, err)
	low, err := f.service.CreateAccommodationReview(ctx, bob.ID, accommodation.ID, CreateReviewRequest{Rating: 1})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteAccommodationReview(ctx, bob.ID, false, low.ID))

	var stored domain.Accommodation
	require.NoError(t, f.db.First(&stored, accommodation.ID).Error)
	require.Equal(t, 5.0, stored.Rating)
}

func TestService_DeleteReview_AuthorOrStaffOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	accommodation := f.accommodation(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	rv, err := f.service.CreateAccommodationReview(ctx, alice.ID, accommodation.ID, CreateReviewRequest{Rating: 4})
	require.NoError(t, err)

	require.ErrorIs(t, f.service.DeleteAccommodationReview(ctx, bob.ID, false, rv.ID), ErrForbidden)
	require.NoError(t, f.service.DeleteAccommodationReview(ctx, bob.ID, true, rv.ID))
}

func TestService_ReviewPhotosTaggedBySubject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	accommodation := f.accommodation(t)
	alice := f.user(t, "alice")

	rv, err := f.service.CreateAccommodationReview(ctx, alice.ID, accommodation.ID, CreateReviewRequest{Rating: 4})
	require.NoError(t, err)

	photo, err := f.service.AddPhoto(ctx, alice.ID, domain.SubjectAccommodation, rv.ID, "/static/uploads/review_photos/a.jpg", "lobby")
	require.NoError(t, err)
	require.Equal(t, domain.SubjectAccommodation, photo.Subject)

	// a destination review with the same numeric id must not see this photo
	photos, err := f.service.GetPhotos(ctx, domain.SubjectDestination, rv.ID)
	require.NoError(t, err)
	require.Empty(t, photos)

	photos, err = f.service.GetPhotos(ctx, domain.SubjectAccommodation, rv.ID)
	require.NoError(t, err)
	require.Len(t, photos, 1)
}
