package itinerary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"travelmate/internal/domain"
)

type MockItineraryRepo struct {
	mock.Mock
}

func (m *MockItineraryRepo) Create(ctx context.Context, it *domain.Itinerary) error {
	args := m.Called(ctx, it)
	it.ID = 9
	return args.Error(0)
}

func (m *MockItineraryRepo) GetByID(ctx context.Context, id int64) (*domain.Itinerary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Itinerary), args.Error(1)
}

func (m *MockItineraryRepo) GetByUser(ctx context.Context, userID int64) ([]domain.Itinerary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Itinerary), args.Error(1)
}

func (m *MockItineraryRepo) GetPublic(ctx context.Context, limit, offset int) ([]domain.Itinerary, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Itinerary), args.Error(1)
}

func (m *MockItineraryRepo) Update(ctx context.Context, it *domain.Itinerary) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItineraryRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItineraryRepo) CreateItem(ctx context.Context, item *domain.ItineraryItem) error {
	args := m.Called(ctx, item)
	item.ID = 19
	return args.Error(0)
}

func (m *MockItineraryRepo) GetItem(ctx context.Context, itineraryID, itemID int64) (*domain.ItineraryItem, error) {
	args := m.Called(ctx, itineraryID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItineraryItem), args.Error(1)
}

func (m *MockItineraryRepo) UpdateItem(ctx context.Context, item *domain.ItineraryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItineraryRepo) DeleteItem(ctx context.Context, itineraryID, itemID int64) error {
	args := m.Called(ctx, itineraryID, itemID)
	return args.Error(0)
}

func (m *MockItineraryRepo) AddCollaborator(ctx context.Context, c *domain.ItineraryCollaborator) error {
	args := m.Called(ctx, c)
	c.ID = 29
	return args.Error(0)
}

func (m *MockItineraryRepo) RemoveCollaborator(ctx context.Context, itineraryID, userID int64) error {
	args := m.Called(ctx, itineraryID, userID)
	return args.Error(0)
}

type MockUserGate struct {
	mock.Mock
}

func (m *MockUserGate) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func cost(v float64) *float64 { return &v }

func TestService_Create_RejectsReversedDates(t *testing.T) {
	repo := new(MockItineraryRepo)
	service := NewService(repo, new(MockUserGate))

	_, err := service.Create(context.Background(), 7, CreateItineraryRequest{
		Title:     "Backwards",
		StartDate: "2026-09-10",
		EndDate:   "2026-09-05",
	})

	assert.ErrorIs(t, err, ErrInvalidDates)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Get_GroupsItemsByDayAndSumsCosts(t *testing.T) {
	itinerary := &domain.Itinerary{
		ID:        9,
		UserID:    7,
		StartDate: day("2026-09-01"),
		EndDate:   day("2026-09-03"),
		Items: []domain.ItineraryItem{
			{ID: 1, ItemType: domain.ItemDestination, Title: "Fort tour", StartDate: day("2026-09-01"), EstimatedCost: cost(30)},
			{ID: 2, ItemType: domain.ItemMeal, Title: "Street food", StartDate: day("2026-09-01"), EstimatedCost: nil},
			{ID: 3, ItemType: domain.ItemActivity, Title: "Boat ride", StartDate: day("2026-09-02"), EstimatedCost: cost(45.5)},
		},
	}

	repo := new(MockItineraryRepo)
	repo.On("GetByID", mock.Anything, int64(9)).Return(itinerary, nil)

	service := NewService(repo, new(MockUserGate))

	detail, err := service.Get(context.Background(), 7, false, 9)

	assert.NoError(t, err)
	assert.Len(t, detail.Days, 2)
	assert.Equal(t, "2026-09-01", detail.Days[0].Date)
	assert.Len(t, detail.Days[0].Items, 2)
	assert.Equal(t, "2026-09-02", detail.Days[1].Date)
	assert.Equal(t, 75.5, detail.EstimatedCost) // nil costs excluded, not zeroed
	assert.Equal(t, 3, detail.TotalDays)
	assert.Equal(t, 1, detail.DestinationCount)
	assert.Equal(t, 0, detail.AccommodationCount)
}

func TestService_AddItem_MustFallWithinTripDates(t *testing.T) {
	itinerary := &domain.Itinerary{ID: 9, UserID: 7, StartDate: day("2026-09-01"), EndDate: day("2026-09-03")}

	repo := new(MockItineraryRepo)
	repo.On("GetByID", mock.Anything, int64(9)).Return(itinerary, nil)

	service := NewService(repo, new(MockUserGate))

	_, err := service.AddItem(context.Background(), 7, 9, CreateItemRequest{
		ItemType:  "activity",
		Title:     "Late hike",
		StartDate: "2026-09-04",
	})

	assert.ErrorIs(t, err, ErrInvalidDates)
	repo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestService_Get_PrivateItineraryHiddenFromOthers(t *testing.T) {
	itinerary := &domain.Itinerary{ID: 9, UserID: 7, IsPublic: false}

	repo := new(MockItineraryRepo)
	repo.On("GetByID", mock.Anything, int64(9)).Return(itinerary, nil)

	service := NewService(repo, new(MockUserGate))

	_, err := service.Get(context.Background(), 8, false, 9)
	assert.ErrorIs(t, err, ErrForbidden)

	// staff may view
	_, err = service.Get(context.Background(), 8, true, 9)
	assert.NoError(t, err)
}

func TestService_Update_StaffCannotEditOthersItinerary(t *testing.T) {
	itinerary := &domain.Itinerary{ID: 9, UserID: 7, StartDate: day("2026-09-01"), EndDate: day("2026-09-03")}

	repo := new(MockItineraryRepo)
	repo.On("GetByID", mock.Anything, int64(9)).Return(itinerary, nil)

	service := NewService(repo, new(MockUserGate))

	title := "Hijacked"
	_, err := service.Update(context.Background(), 99, 9, UpdateItineraryRequest{Title: &title})

	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_AddItem_OwnerOnly(t *testing.T) {
	itinerary := &domain.Itinerary{ID: 9, UserID: 7}

	repo := new(MockItineraryRepo)
	repo.On("GetByID", mock.Anything, int64(9)).Return(itinerary, nil)

	service := NewService(repo, new(MockUserGate))

	_, err := service.AddItem(context.Background(), 8, 9, CreateItemRequest{
		ItemType:  "activity",
		Title:     "Hike",
		StartDate: "2026-09-02",
	})

	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestService_AddItem_BadType(t *testing.T) {
	itinerary := &domain.Itinerary{ID: 9, UserID: 7}

	repo := new(MockItineraryRepo)
	repo.On("GetByID", mock.Anything, int64(9)).Return(itinerary, nil)

	service := NewService(repo, new(MockUserGate))

	_, err := service.AddItem(context.Background(), 7, 9, CreateItemRequest{
		ItemType:  "teleport",
		Title:     "Warp",
		StartDate: "2026-09-02",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_AddCollaborator_ResolvesUsername(t *testing.T) {
	itinerary := &domain.Itinerary{ID: 9, UserID: 7}

	repo := new(MockItineraryRepo)
	repo.On("GetByID", mock.Anything, int64(9)).Return(itinerary, nil)
	repo.On("AddCollaborator", mock.Anything, mock.Anything).Return(nil)
	users := new(MockUserGate)
	users.On("GetByUsername", mock.Anything, "friend").Return(&domain.User{ID: 33, Username: "friend"}, nil)

	service := NewService(repo, users)

	collaborator, err := service.AddCollaborator(context.Background(), 7, 9, AddCollaboratorRequest{Username: "friend"})

	assert.NoError(t, err)
	assert.Equal(t, int64(33), collaborator.UserID)
	assert.Equal(t, domain.CollaboratorView, collaborator.Permission)
}

func TestService_AddCollaborator_OwnerCannotAddSelf(t *testing.T) {
	itinerary := &domain.Itinerary{ID: 9, UserID: 7}

	repo := new(MockItineraryRepo)
	repo.On("GetByID", mock.Anything, int64(9)).Return(itinerary, nil)
	users := new(MockUserGate)
	users.On("GetByUsername", mock.Anything, "me").Return(&domain.User{ID: 7, Username: "me"}, nil)

	service := NewService(repo, users)

	_, err := service.AddCollaborator(context.Background(), 7, 9, AddCollaboratorRequest{Username: "me"})

	assert.ErrorIs(t, err, ErrValidation)
}
