package content_api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"kabarett-api/internal/content"
	"kabarett-api/internal/content/content_api"
	"kabarett-api/internal/logger"
	"kabarett-api/internal/models"
	"kabarett-api/internal/store"
	"kabarett-api/internal/utils"
)

// MockContentDB is a mock implementation of the DBLayer interface
type MockContentDB struct {
	events        []models.Event
	owners        []models.OwnerProfile
	theaters      []models.Theater
	videos        []models.Video
	contacts      []models.ContactMessage
	shouldFailOn  string
	errorToReturn error
}

func NewMockContentDB() *MockContentDB {
	return &MockContentDB{}
}

func (m *MockContentDB) SetupFailure(operation string, err error) {
	m.shouldFailOn = operation
	m.errorToReturn = err
}

func (m *MockContentDB) Create(ctx context.Context, collection string, record any) (string, error) {
	if m.shouldFailOn == "Create" {
		return "", m.errorToReturn
	}

	id := primitive.NewObjectID()
	now := time.Now().UTC()

	switch rec := record.(type) {
	case models.Event:
		rec.ID = id
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		m.events = append(m.events, rec)
	case models.OwnerProfile:
		rec.ID = id
		m.owners = append(m.owners, rec)
	case models.Theater:
		rec.ID = id
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		m.theaters = append(m.theaters, rec)
	case models.Video:
		rec.ID = id
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		m.videos = append(m.videos, rec)
	case models.ContactMessage:
		rec.ID = id
		rec.CreatedAt = now
		m.contacts = append(m.contacts, rec)
	default:
		return "", fmt.Errorf("unexpected record type %T", record)
	}

	return id.Hex(), nil
}

func (m *MockContentDB) Find(ctx context.Context, collection string, filter any, out any, sort ...store.SortSpec) error {
	if m.shouldFailOn == "Find" {
		return m.errorToReturn
	}

	switch target := out.(type) {
	case *[]models.Event:
		*target = append([]models.Event{}, m.events...)
	case *[]models.OwnerProfile:
		*target = append([]models.OwnerProfile{}, m.owners...)
	default:
		return fmt.Errorf("unexpected target type %T", out)
	}
	return nil
}

func (m *MockContentDB) FindOne(ctx context.Context, collection string, filter any, out any, sort ...store.SortSpec) error {
	if m.shouldFailOn == "FindOne" {
		return m.errorToReturn
	}

	switch target := out.(type) {
	case *models.Theater:
		if len(m.theaters) == 0 {
			return store.ErrNotFound
		}
		*target = m.theaters[len(m.theaters)-1]
	case *models.Video:
		if key, ok := filter.(bson.M)["month_key"].(string); ok {
			for _, v := range m.videos {
				if v.MonthKey == key {
					*target = v
					return nil
				}
			}
			return store.ErrNotFound
		}
		if len(m.videos) == 0 {
			return store.ErrNotFound
		}
		latest := m.videos[0]
		for _, v := range m.videos[1:] {
			if v.CreatedAt.After(latest.CreatedAt) {
				latest = v
			}
		}
		*target = latest
	default:
		return fmt.Errorf("unexpected target type %T", out)
	}
	return nil
}

func (m *MockContentDB) Count(ctx context.Context, collection string) (int64, error) {
	if m.shouldFailOn == "Count" {
		return 0, m.errorToReturn
	}
	return int64(len(m.events)), nil
}

// MockHealthDB fakes the store slice the diagnostics endpoint probes
type MockHealthDB struct {
	name        string
	collections []string
	err         error
}

func (m *MockHealthDB) Name() string { return m.name }

func (m *MockHealthDB) Collections(ctx context.Context) ([]string, error) {
	return m.collections, m.err
}

// Helper function to create a handler with a mock database for testing
func setupTestHandler() (*content_api.Handler, *MockContentDB) {
	mockDB := NewMockContentDB()
	handler := &content_api.Handler{
		Service: content.NewService(mockDB),
		Logger:  &logger.Logger{},
	}
	return handler, mockDB
}

func TestRootHandler(t *testing.T) {
	handler, _ := setupTestHandler()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handler.Root(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Cabaret Theater API running", resp["message"])
}

func TestTestDatabaseHandler(t *testing.T) {
	t.Run("Healthy database", func(t *testing.T) {
		handler, _ := setupTestHandler()
		handler.DB = &MockHealthDB{
			name:        "kabarett",
			collections: []string{"event", "reservation", "theater"},
		}
		t.Setenv("DATABASE_URL", "mongodb://localhost:27017")

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		handler.TestDatabase(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "✅ Running", resp["backend"])
		assert.Equal(t, "✅ Connected & Working", resp["database"])
		assert.Equal(t, "✅ Set", resp["database_url"])
		assert.Equal(t, "kabarett", resp["database_name"])
		assert.Equal(t, "Connected", resp["connection_status"])
		assert.Contains(t, resp["collections"], "event")
	})

	t.Run("Database url not set", func(t *testing.T) {
		handler, _ := setupTestHandler()
		handler.DB = &MockHealthDB{name: "kabarett"}
		t.Setenv("DATABASE_URL", "")

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		handler.TestDatabase(w, req)

		var resp map[string]any
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "❌ Not Set", resp["database_url"])
	})

	t.Run("Collections error is truncated", func(t *testing.T) {
		handler, _ := setupTestHandler()
		longErr := fmt.Errorf("connection timed out: %s", strings.Repeat("x", 200))
		handler.DB = &MockHealthDB{name: "kabarett", err: longErr}

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		handler.TestDatabase(w, req)

		var resp map[string]any
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

		state, ok := resp["database"].(string)
		assert.True(t, ok)
		assert.Contains(t, state, "⚠️ Connected but Error:")
		assert.NotContains(t, state, longErr.Error())
	})

	t.Run("No database", func(t *testing.T) {
		handler, _ := setupTestHandler()
		handler.DB = nil

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		handler.TestDatabase(w, req)

		var resp map[string]any
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "❌ Not Available", resp["database"])
		assert.Equal(t, "Not Connected", resp["connection_status"])
	})
}

func TestListEventsHandler(t *testing.T) {
	t.Run("Events present", func(t *testing.T) {
		handler, mockDB := setupTestHandler()
		mockDB.events = []models.Event{
			{Title: "Wiener Schmäh & Schnapsidee", Date: time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC)},
		}

		req := httptest.NewRequest("GET", "/api/events", nil)
		w := httptest.NewRecorder()

		handler.ListEvents(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var events []models.Event
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&events))
		assert.Len(t, events, 1)
		assert.Equal(t, "Wiener Schmäh & Schnapsidee", events[0].Title)
	})

	t.Run("No events yields an empty list", func(t *testing.T) {
		handler, _ := setupTestHandler()

		req := httptest.NewRequest("GET", "/api/events", nil)
		w := httptest.NewRecorder()

		handler.ListEvents(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("Storage failure", func(t *testing.T) {
		handler, mockDB := setupTestHandler()
		mockDB.SetupFailure("Find", fmt.Errorf("connection reset"))

		req := httptest.NewRequest("GET", "/api/events", nil)
		w := httptest.NewRecorder()

		handler.ListEvents(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp utils.ErrorResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Storage unavailable", resp.Detail)
	})
}

func TestGetTheaterHandler(t *testing.T) {
	t.Run("Theater present", func(t *testing.T) {
		handler, mockDB := setupTestHandler()
		mockDB.theaters = []models.Theater{{Name: "Kabarett Salon am Kanal"}}

		req := httptest.NewRequest("GET", "/api/theater", nil)
		w := httptest.NewRecorder()

		handler.GetTheater(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var theater models.Theater
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&theater))
		assert.Equal(t, "Kabarett Salon am Kanal", theater.Name)
	})

	t.Run("No theater yields null", func(t *testing.T) {
		handler, _ := setupTestHandler()

		req := httptest.NewRequest("GET", "/api/theater", nil)
		w := httptest.NewRecorder()

		handler.GetTheater(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))
	})
}

func TestCurrentVideoHandler(t *testing.T) {
	t.Run("Falls back to the newest video", func(t *testing.T) {
		handler, mockDB := setupTestHandler()

		// Nothing for the current month, so the endpoint serves the
		// most recent one instead.
		mockDB.videos = []models.Video{
			{MonthKey: "2020-01", VideoURL: "https://example.com/old.mp4", CreatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
			{MonthKey: "2020-02", VideoURL: "https://example.com/new.mp4", CreatedAt: time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)},
		}

		req := httptest.NewRequest("GET", "/api/video/current", nil)
		w := httptest.NewRecorder()

		handler.CurrentVideo(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var video models.Video
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&video))
		assert.Equal(t, "2020-02", video.MonthKey)
	})

	t.Run("No videos yields null", func(t *testing.T) {
		handler, _ := setupTestHandler()

		req := httptest.NewRequest("GET", "/api/video/current", nil)
		w := httptest.NewRecorder()

		handler.CurrentVideo(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))
	})
}

func TestVideoByMonthHandler(t *testing.T) {
	t.Run("Exact month match", func(t *testing.T) {
		handler, mockDB := setupTestHandler()
		mockDB.videos = []models.Video{
			{MonthKey: "2026-07", VideoURL: "https://example.com/jul.mp4"},
		}

		req := httptest.NewRequest("GET", "/api/video/2026-07", nil)
		w := httptest.NewRecorder()

		r := chi.NewRouter()
		r.Get("/api/video/{monthKey}", handler.VideoByMonth)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var video models.Video
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&video))
		assert.Equal(t, "2026-07", video.MonthKey)
	})

	t.Run("Missing month yields null without fallback", func(t *testing.T) {
		handler, mockDB := setupTestHandler()
		mockDB.videos = []models.Video{
			{MonthKey: "2026-07", VideoURL: "https://example.com/jul.mp4", CreatedAt: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
		}

		req := httptest.NewRequest("GET", "/api/video/2026-01", nil)
		w := httptest.NewRecorder()

		r := chi.NewRouter()
		r.Get("/api/video/{monthKey}", handler.VideoByMonth)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))
	})
}

func TestSubmitContactHandler(t *testing.T) {
	t.Run("Successful submission", func(t *testing.T) {
		handler, mockDB := setupTestHandler()

		body, _ := json.Marshal(models.ContactRequest{
			Name:    "Anna Gruber",
			Email:   "anna@example.com",
			Subject: "Gutscheine",
			Message: "Gibt es Geschenkgutscheine für die Herbstsaison?",
		})
		req := httptest.NewRequest("POST", "/api/contact", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.SubmitContact(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp models.ContactResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotEmpty(t, resp.MessageID)
		assert.Equal(t, "Thanks for reaching out!", resp.Message)

		assert.Len(t, mockDB.contacts, 1)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		handler, _ := setupTestHandler()

		req := httptest.NewRequest("POST", "/api/contact", bytes.NewBufferString(`{"name": "broken`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.SubmitContact(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Message too short", func(t *testing.T) {
		handler, _ := setupTestHandler()

		body, _ := json.Marshal(models.ContactRequest{
			Name:    "Anna Gruber",
			Email:   "anna@example.com",
			Subject: "Hi",
			Message: "Hi",
		})
		req := httptest.NewRequest("POST", "/api/contact", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.SubmitContact(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp utils.ErrorResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Contains(t, resp.Detail, "Message")
	})
}

func TestSeedHandler(t *testing.T) {
	t.Run("First seed inserts demo data", func(t *testing.T) {
		handler, mockDB := setupTestHandler()

		req := httptest.NewRequest("POST", "/api/seed", nil)
		w := httptest.NewRecorder()

		handler.Seed(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "ok", resp["status"])
		assert.Equal(t, "Seeded demo data", resp["message"])
		assert.Len(t, mockDB.events, 3)
	})

	t.Run("Second seed is a no-op", func(t *testing.T) {
		handler, _ := setupTestHandler()

		w := httptest.NewRecorder()
		handler.Seed(w, httptest.NewRequest("POST", "/api/seed", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		handler.Seed(w, httptest.NewRequest("POST", "/api/seed", nil))

		var resp map[string]string
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Already seeded", resp["message"])
	})

	t.Run("Storage failure", func(t *testing.T) {
		handler, mockDB := setupTestHandler()
		mockDB.SetupFailure("Count", fmt.Errorf("connection reset"))

		req := httptest.NewRequest("POST", "/api/seed", nil)
		w := httptest.NewRecorder()

		handler.Seed(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
