package content

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"kabarett-api/internal/models"
	"kabarett-api/internal/store"
)

type DBLayer interface {
	Create(ctx context.Context, collection string, record any) (string, error)
	Find(ctx context.Context, collection string, filter any, out any, sort ...store.SortSpec) error
	FindOne(ctx context.Context, collection string, filter any, out any, sort ...store.SortSpec) error
	Count(ctx context.Context, collection string) (int64, error)
}

type Service struct {
	DB DBLayer
}

func NewService(db DBLayer) *Service {
	return &Service{DB: db}
}

// ListEvents returns every event ordered by start date, earliest
// first. Always a fresh query; an empty program yields an empty slice.
func (s *Service) ListEvents(ctx context.Context) ([]models.Event, error) {
	events := []models.Event{}
	if err := s.DB.Find(ctx, models.EventCollection, bson.M{}, &events, store.SortSpec{Field: "date"}); err != nil {
		return nil, err
	}
	return events, nil
}

// ListOwners returns every owner profile; no ordering is guaranteed.
func (s *Service) ListOwners(ctx context.Context) ([]models.OwnerProfile, error) {
	owners := []models.OwnerProfile{}
	if err := s.DB.Find(ctx, models.OwnerProfileCollection, bson.M{}, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

// LatestTheater returns the most recently created theater record, or
// nil when none exists.
func (s *Service) LatestTheater(ctx context.Context) (*models.Theater, error) {
	var theater models.Theater
	err := s.DB.FindOne(ctx, models.TheaterCollection, bson.M{}, &theater, store.SortSpec{Field: "created_at", Desc: true})
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &theater, nil
}

// VideoForMonth returns the video for monthKey. With fallback set, a
// missing key falls back to the most recently created video of any
// month. A nil result without error means nothing matched at all.
func (s *Service) VideoForMonth(ctx context.Context, monthKey string, fallback bool) (*models.Video, error) {
	var video models.Video
	err := s.DB.FindOne(ctx, models.VideoCollection, bson.M{"month_key": monthKey}, &video)
	if err == nil {
		return &video, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if !fallback {
		return nil, nil
	}

	err = s.DB.FindOne(ctx, models.VideoCollection, bson.M{}, &video, store.SortSpec{Field: "created_at", Desc: true})
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// SubmitContact stores a contact form message and returns its id.
func (s *Service) SubmitContact(ctx context.Context, req models.ContactRequest) (string, error) {
	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	id, err := s.DB.Create(ctx, models.ContactMessageCollection, msg)
	if err != nil {
		return "", fmt.Errorf("store contact message: %w", err)
	}
	return id, nil
}
