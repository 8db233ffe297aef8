package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"travelmate/internal/domain"
	"travelmate/internal/repository"
)

type MockDestinationRepo struct {
	mock.Mock
}

func (m *MockDestinationRepo) GetAll(ctx context.Context, f repository.DestinationFilters) ([]domain.Destination, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Destination), args.Get(1).(int64), args.Error(2)
}

func (m *MockDestinationRepo) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

func (m *MockDestinationRepo) Create(ctx context.Context, d *domain.Destination) error {
	args := m.Called(ctx, d)
	d.ID = 11
	return args.Error(0)
}

func (m *MockDestinationRepo) Update(ctx context.Context, d *domain.Destination) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDestinationRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDestinationRepo) AddPhoto(ctx context.Context, p *domain.DestinationPhoto) error {
	args := m.Called(ctx, p)
	p.ID = 21
	return args.Error(0)
}

func (m *MockDestinationRepo) SetPrimaryPhoto(ctx context.Context, destinationID, photoID int64) error {
	args := m.Called(ctx, destinationID, photoID)
	return args.Error(0)
}

func (m *MockDestinationRepo) DeletePhoto(ctx context.Context, destinationID, photoID int64) error {
	args := m.Called(ctx, destinationID, photoID)
	return args.Error(0)
}

func (m *MockDestinationRepo) AddFeature(ctx context.Context, f *domain.DestinationFeature) error {
	args := m.Called(ctx, f)
	f.ID = 31
	return args.Error(0)
}

func (m *MockDestinationRepo) DeleteFeature(ctx context.Context, destinationID, featureID int64) error {
	args := m.Called(ctx, destinationID, featureID)
	return args.Error(0)
}

type MockAccommodationRepo struct {
	mock.Mock
}

func (m *MockAccommodationRepo) GetAll(ctx context.Context, f repository.AccommodationFilters) ([]domain.Accommodation, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Accommodation), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccommodationRepo) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Accommodation), args.Error(1)
}

func (m *MockAccommodationRepo) Create(ctx context.Context, a *domain.Accommodation) error {
	args := m.Called(ctx, a)
	a.ID = 41
	return args.Error(0)
}

func (m *MockAccommodationRepo) Update(ctx context.Context, a *domain.Accommodation) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccommodationRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockReviewGate struct{}

func (mockReviewGate) GetDestinationReviews(ctx context.Context, destinationID int64, limit, offset int) ([]domain.DestinationReview, error) {
	return nil, nil
}

func (mockReviewGate) GetAccommodationReviews(ctx context.Context, accommodationID int64, limit, offset int) ([]domain.AccommodationReview, error) {
	return nil, nil
}

func (mockReviewGate) HasUserReviewed(ctx context.Context, subject domain.ReviewSubject, subjectID, userID int64) (bool, error) {
	return false, nil
}

func newCatalogService(destinations *MockDestinationRepo, accommodations *MockAccommodationRepo) *Service {
	return NewService(destinations, accommodations, mockReviewGate{})
}

func TestService_CreateDestination_DefaultsCountry(t *testing.T) {
	destinations := new(MockDestinationRepo)
	destinations.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newCatalogService(destinations, new(MockAccommodationRepo))

	created, err := service.CreateDestination(context.Background(), 7, CreateDestinationRequest{
		Name:     "Sundarbans",
		Category: "wildlife",
		Location: "Khulna",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Bangladesh", created.Country)
	assert.Equal(t, int64(7), created.CreatedBy)
	assert.Equal(t, domain.CategoryWildlife, created.Category)
}

func TestService_CreateDestination_BadCategory(t *testing.T) {
	destinations := new(MockDestinationRepo)
	service := newCatalogService(destinations, new(MockAccommodationRepo))

	_, err := service.CreateDestination(context.Background(), 7, CreateDestinationRequest{
		Name:     "Somewhere",
		Category: "volcanic",
		Location: "Nowhere",
	})

	assert.ErrorIs(t, err, ErrValidation)
	destinations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_UpdateDestination_NonOwnerForbidden(t *testing.T) {
	destinations := new(MockDestinationRepo)
	destinations.On("GetByID", mock.Anything, int64(1)).Return(&domain.Destination{ID: 1, CreatedBy: 7}, nil)

	service := newCatalogService(destinations, new(MockAccommodationRepo))

	name := "Renamed"
	_, err := service.UpdateDestination(context.Background(), 8, false, 1, UpdateDestinationRequest{Name: &name})

	assert.ErrorIs(t, err, ErrForbidden)
	destinations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_UpdateDestination_StaffOverridesOwnership(t *testing.T) {
	destinations := new(MockDestinationRepo)
	destinations.On("GetByID", mock.Anything, int64(1)).Return(&domain.Destination{ID: 1, CreatedBy: 7}, nil)
	destinations.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := newCatalogService(destinations, new(MockAccommodationRepo))

	featured := true
	updated, err := service.UpdateDestination(context.Background(), 99, true, 1, UpdateDestinationRequest{IsFeatured: &featured})

	assert.NoError(t, err)
	assert.True(t, updated.IsFeatured)
}

func TestService_UpdateDestination_FeaturedRequiresStaff(t *testing.T) {
	destinations := new(MockDestinationRepo)
	destinations.On("GetByID", mock.Anything, int64(1)).Return(&domain.Destination{ID: 1, CreatedBy: 7}, nil)

	service := newCatalogService(destinations, new(MockAccommodationRepo))

	featured := true
	_, err := service.UpdateDestination(context.Background(), 7, false, 1, UpdateDestinationRequest{IsFeatured: &featured})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_AddDestinationPhoto_PrimaryPromotion(t *testing.T) {
	destinations := new(MockDestinationRepo)
	destinations.On("GetByID", mock.Anything, int64(3)).Return(&domain.Destination{ID: 3, CreatedBy: 7}, nil)
	destinations.On("AddPhoto", mock.Anything, mock.Anything).Return(nil)
	destinations.On("SetPrimaryPhoto", mock.Anything, int64(3), int64(21)).Return(nil)

	service := newCatalogService(destinations, new(MockAccommodationRepo))

	photo, err := service.AddDestinationPhoto(context.Background(), 7, false, 3, "/static/uploads/destinations/x.jpg", "view", true)

	assert.NoError(t, err)
	assert.True(t, photo.IsPrimary)
	destinations.AssertCalled(t, "SetPrimaryPhoto", mock.Anything, int64(3), int64(21))
}

func TestService_AddDestinationPhoto_NonOwnerForbidden(t *testing.T) {
	destinations := new(MockDestinationRepo)
	destinations.On("GetByID", mock.Anything, int64(3)).Return(&domain.Destination{ID: 3, CreatedBy: 7}, nil)

	service := newCatalogService(destinations, new(MockAccommodationRepo))

	_, err := service.AddDestinationPhoto(context.Background(), 8, false, 3, "/static/uploads/destinations/x.jpg", "", true)

	assert.ErrorIs(t, err, ErrForbidden)
	destinations.AssertNotCalled(t, "AddPhoto", mock.Anything, mock.Anything)
	destinations.AssertNotCalled(t, "SetPrimaryPhoto", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateAccommodation_AppliesDefaults(t *testing.T) {
	destinations := new(MockDestinationRepo)
	destinations.On("GetByID", mock.Anything, int64(3)).Return(&domain.Destination{ID: 3}, nil)
	accommodations := new(MockAccommodationRepo)
	accommodations.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newCatalogService(destinations, accommodations)

	created, err := service.CreateAccommodation(context.Background(), 1, CreateAccommodationRequest{
		Name:          "Hill Resort",
		Type:          "resort",
		DestinationID: 3,
		PricePerNight: 120,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxGuests, created.MaxGuests)
	assert.Equal(t, domain.DefaultCheckInTime, created.CheckInTime)
	assert.Equal(t, domain.DefaultCheckOutTime, created.CheckOutTime)
	assert.True(t, created.IsAvailable)
}

func TestService_CreateAccommodation_UnknownDestination(t *testing.T) {
	destinations := new(MockDestinationRepo)
	destinations.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := newCatalogService(destinations, new(MockAccommodationRepo))

	_, err := service.CreateAccommodation(context.Background(), 1, CreateAccommodationRequest{
		Name:          "Ghost Hotel",
		Type:          "hotel",
		DestinationID: 404,
		PricePerNight: 90,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}
