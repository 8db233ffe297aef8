package itinerary

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"travelmate/internal/domain"
	"travelmate/internal/repository"
)

const dateLayout = "2006-01-02"

type Service struct {
	itineraries ItineraryRepository
	users       UserGate
}

func NewService(itineraries ItineraryRepository, users UserGate) *Service {
	return &Service{itineraries: itineraries, users: users}
}

// DayPlan groups items sharing a start date.
type DayPlan struct {
	Date  string                 `json:"date"`
	Items []domain.ItineraryItem `json:"items"`
}

type ItineraryDetail struct {
	Itinerary          *domain.Itinerary `json:"itinerary"`
	Days               []DayPlan         `json:"days"`
	TotalDays          int               `json:"total_days"`
	DestinationCount   int               `json:"destination_count"`
	AccommodationCount int               `json:"accommodation_count"`
	EstimatedCost      float64           `json:"estimated_cost"`
}

// buildDetail groups items by day and totals their costs. Items without an
// estimate contribute nothing; they do not count as zero-cost days elsewhere.
func buildDetail(it *domain.Itinerary) *ItineraryDetail {
	var days []DayPlan
	total := 0.0
	destinations, accommodations := 0, 0

	for _, item := range it.Items {
		if item.EstimatedCost != nil {
			total += *item.EstimatedCost
		}
		switch item.ItemType {
		case domain.ItemDestination:
			destinations++
		case domain.ItemAccommodation:
			accommodations++
		}

		date := item.StartDate.Format(dateLayout)
		if n := len(days); n > 0 && days[n-1].Date == date {
			days[n-1].Items = append(days[n-1].Items, item)
			continue
		}
		days = append(days, DayPlan{Date: date, Items: []domain.ItineraryItem{item}})
	}

	return &ItineraryDetail{
		Itinerary:          it,
		Days:               days,
		TotalDays:          it.TotalDays(),
		DestinationCount:   destinations,
		AccommodationCount: accommodations,
		EstimatedCost:      math.Round(total*100) / 100,
	}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateItineraryRequest) (*domain.Itinerary, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}
	if end.Before(start) {
		return nil, ErrInvalidDates
	}

	itinerary := &domain.Itinerary{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		Status:      domain.TripPlanning,
		IsPublic:    req.IsPublic,
	}
	if err := s.itineraries.Create(ctx, itinerary); err != nil {
		return nil, err
	}
	return itinerary, nil
}

// Get allows the owner, staff, and anyone when the itinerary is public.
func (s *Service) Get(ctx context.Context, actorID int64, isStaff bool, id int64) (*ItineraryDetail, error) {
	itinerary, err := s.itineraries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if itinerary.UserID != actorID && !isStaff && !itinerary.IsPublic {
		return nil, ErrForbidden
	}
	return buildDetail(itinerary), nil
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]domain.Itinerary, error) {
	return s.itineraries.GetByUser(ctx, userID)
}

func (s *Service) ListPublic(ctx context.Context, limit, offset int) ([]domain.Itinerary, error) {
	return s.itineraries.GetPublic(ctx, limit, offset)
}

// ownedItinerary loads the itinerary and enforces owner-only access. Mutations
// never honor collaborator entries or staff role.
func (s *Service) ownedItinerary(ctx context.Context, actorID, id int64) (*domain.Itinerary, error) {
	itinerary, err := s.itineraries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if itinerary.UserID != actorID {
		return nil, ErrForbidden
	}
	return itinerary, nil
}

func (s *Service) Update(ctx context.Context, actorID, id int64, req UpdateItineraryRequest) (*domain.Itinerary, error) {
	itinerary, err := s.ownedItinerary(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		itinerary.Title = *req.Title
	}
	if req.Description != nil {
		itinerary.Description = *req.Description
	}
	if req.StartDate != nil {
		start, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return nil, ErrValidation
		}
		itinerary.StartDate = start
	}
	if req.EndDate != nil {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, ErrValidation
		}
		itinerary.EndDate = end
	}
	if itinerary.EndDate.Before(itinerary.StartDate) {
		return nil, ErrInvalidDates
	}
	if req.Status != nil {
		status := domain.TripStatus(*req.Status)
		if !domain.ValidTripStatus(status) {
			return nil, ErrValidation
		}
		itinerary.Status = status
	}
	if req.IsPublic != nil {
		itinerary.IsPublic = *req.IsPublic
	}

	if err := s.itineraries.Update(ctx, itinerary); err != nil {
		return nil, err
	}
	return itinerary, nil
}

func (s *Service) Delete(ctx context.Context, actorID, id int64) error {
	if _, err := s.ownedItinerary(ctx, actorID, id); err != nil {
		return err
	}
	return s.itineraries.Delete(ctx, id)
}

// itemDatesWithinTrip rejects item dates outside the itinerary's own range.
func itemDatesWithinTrip(it *domain.Itinerary, start, end time.Time) error {
	if it.StartDate.IsZero() || it.EndDate.IsZero() {
		return nil
	}
	if start.Before(it.StartDate) || end.After(it.EndDate) {
		return ErrInvalidDates
	}
	return nil
}

func (s *Service) AddItem(ctx context.Context, actorID, itineraryID int64, req CreateItemRequest) (*domain.ItineraryItem, error) {
	itinerary, err := s.ownedItinerary(ctx, actorID, itineraryID)
	if err != nil {
		return nil, err
	}

	itemType := domain.ItemType(req.ItemType)
	if !domain.ValidItemType(itemType) {
		return nil, ErrValidation
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end := start
	if req.EndDate != "" {
		end, err = time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, ErrValidation
		}
	}
	if end.Before(start) {
		return nil, ErrInvalidDates
	}
	if err := itemDatesWithinTrip(itinerary, start, end); err != nil {
		return nil, err
	}
	if req.EstimatedCost != nil && *req.EstimatedCost < 0 {
		return nil, ErrValidation
	}

	item := &domain.ItineraryItem{
		ItineraryID:     itineraryID,
		ItemType:        itemType,
		DestinationID:   req.DestinationID,
		AccommodationID: req.AccommodationID,
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		StartDate:       start,
		EndDate:         end,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		EstimatedCost:   req.EstimatedCost,
		IsBooked:        req.IsBooked,
		SortOrder:       req.SortOrder,
	}
	if err := s.itineraries.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, actorID, itineraryID, itemID int64, req UpdateItemRequest) (*domain.ItineraryItem, error) {
	itinerary, err := s.ownedItinerary(ctx, actorID, itineraryID)
	if err != nil {
		return nil, err
	}

	item, err := s.itineraries.GetItem(ctx, itineraryID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.ItemType != nil {
		itemType := domain.ItemType(*req.ItemType)
		if !domain.ValidItemType(itemType) {
			return nil, ErrValidation
		}
		item.ItemType = itemType
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.StartDate != nil {
		start, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return nil, ErrValidation
		}
		item.StartDate = start
	}
	if req.EndDate != nil {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, ErrValidation
		}
		item.EndDate = end
	}
	if item.EndDate.Before(item.StartDate) {
		return nil, ErrInvalidDates
	}
	if err := itemDatesWithinTrip(itinerary, item.StartDate, item.EndDate); err != nil {
		return nil, err
	}
	if req.StartTime != nil {
		item.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		item.EndTime = *req.EndTime
	}
	if req.EstimatedCost != nil {
		if *req.EstimatedCost < 0 {
			return nil, ErrValidation
		}
		item.EstimatedCost = req.EstimatedCost
	}
	if req.IsBooked != nil {
		item.IsBooked = *req.IsBooked
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}

	if err := s.itineraries.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, actorID, itineraryID, itemID int64) error {
	if _, err := s.ownedItinerary(ctx, actorID, itineraryID); err != nil {
		return err
	}
	if err := s.itineraries.DeleteItem(ctx, itineraryID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) AddCollaborator(ctx context.Context, actorID, itineraryID int64, req AddCollaboratorRequest) (*domain.ItineraryCollaborator, error) {
	if _, err := s.ownedItinerary(ctx, actorID, itineraryID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.ID == actorID {
		return nil, ErrValidation
	}

	permission := domain.CollaboratorPermission(req.Permission)
	if permission == "" {
		permission = domain.CollaboratorView
	}
	if permission != domain.CollaboratorView && permission != domain.CollaboratorEdit {
		return nil, ErrValidation
	}

	collaborator := &domain.ItineraryCollaborator{
		ItineraryID: itineraryID,
		UserID:      user.ID,
		Permission:  permission,
	}
	if err := s.itineraries.AddCollaborator(ctx, collaborator); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return collaborator, nil
}

func (s *Service) RemoveCollaborator(ctx context.Context, actorID, itineraryID, userID int64) error {
	if _, err := s.ownedItinerary(ctx, actorID, itineraryID); err != nil {
		return err
	}
	if err := s.itineraries.RemoveCollaborator(ctx, itineraryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
