package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"kabarett-api/internal/models"
	"kabarett-api/internal/store"
)

type DBLayer interface {
	Create(ctx context.Context, collection string, record any) (string, error)
	FindOne(ctx context.Context, collection string, filter any, out any, sort ...store.SortSpec) error
	ConditionalUpdate(ctx context.Context, collection string, filter, update any, out any) error
}

type Service struct {
	DB DBLayer
}

func NewService(db DBLayer) *Service {
	return &Service{DB: db}
}

// Reserve books tickets for an event and returns the new reservation
// id. Overbooking is prevented by the conditional decrement in step 3,
// not by the capacity read in step 2: the filter and the mutation are
// evaluated together by the storage engine, so two concurrent requests
// for the last seats cannot both match.
func (s *Service) Reserve(ctx context.Context, req models.ReservationRequest) (string, error) {
	// Step 1: Look up the event.
	filter, err := store.ByID(req.EventID)
	if err != nil {
		return "", ErrEventNotFound
	}

	var event models.Event
	if err := s.DB.FindOne(ctx, models.EventCollection, filter, &event); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrEventNotFound
		}
		return "", fmt.Errorf("load event %s: %w", req.EventID, err)
	}

	// Step 2: Fast-path rejection when capacity is visibly short.
	if event.SeatsAvailable < req.Tickets {
		return "", ErrNotEnoughSeats
	}

	// Step 3: Decrement seats, guarded by the same capacity condition.
	decFilter := bson.M{
		"_id":             event.ID,
		"seats_available": bson.M{"$gte": req.Tickets},
	}
	update := bson.M{
		"$inc": bson.M{"seats_available": -req.Tickets},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	var updated models.Event
	if err := s.DB.ConditionalUpdate(ctx, models.EventCollection, decFilter, update, &updated); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// A concurrent reservation consumed the seats between
			// steps 2 and 3. Not retried; the caller may resubmit.
			return "", ErrSeatsTaken
		}
		return "", fmt.Errorf("decrement seats for event %s: %w", req.EventID, err)
	}

	// Step 4: Record the reservation. A failure here leaves the seats
	// decremented with no reservation recorded, which errs toward
	// underselling and is surfaced rather than rolled back.
	res := models.Reservation{
		EventID: req.EventID,
		Name:    req.Name,
		Email:   req.Email,
		Tickets: req.Tickets,
		Note:    req.Note,
	}
	id, err := s.DB.Create(ctx, models.ReservationCollection, res)
	if err != nil {
		return "", fmt.Errorf("record reservation for event %s: %w", req.EventID, err)
	}

	return id, nil
}

// Get fetches a single reservation by its id.
func (s *Service) Get(ctx context.Context, id string) (*models.Reservation, error) {
	filter, err := store.ByID(id)
	if err != nil {
		return nil, ErrReservationNotFound
	}

	var res models.Reservation
	if err := s.DB.FindOne(ctx, models.ReservationCollection, filter, &res); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("load reservation %s: %w", id, err)
	}

	return &res, nil
}
