package content_api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"kabarett-api/internal/content"
	"kabarett-api/internal/logger"
	"kabarett-api/internal/models"
	"kabarett-api/internal/utils"
)

// HealthDB is the slice of the store the diagnostics endpoint probes.
type HealthDB interface {
	Name() string
	Collections(ctx context.Context) ([]string, error)
}

type Handler struct {
	Service *content.Service
	DB      HealthDB
	Logger  *logger.Logger
}

type seedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Cabaret Theater API running"})
}

// TestDatabase reports the live state of the backing database,
// including the collection names it can see.
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.DB != nil {
		response["database"] = "✅ Available"
		if os.Getenv("DATABASE_URL") != "" {
			response["database_url"] = "✅ Set"
		} else {
			response["database_url"] = "❌ Not Set"
		}
		response["database_name"] = h.DB.Name()
		response["connection_status"] = "Connected"

		if names, err := h.DB.Collections(r.Context()); err != nil {
			msg := err.Error()
			if len(msg) > 80 {
				msg = msg[:80]
			}
			response["database"] = "⚠️ Connected but Error: " + msg
		} else {
			response["collections"] = names
			response["database"] = "✅ Connected & Working"
		}
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.ListEvents(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListEvents: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	utils.WriteJSON(w, http.StatusOK, events)
}

func (h *Handler) ListOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.Service.ListOwners(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListOwners: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	utils.WriteJSON(w, http.StatusOK, owners)
}

func (h *Handler) GetTheater(w http.ResponseWriter, r *http.Request) {
	theater, err := h.Service.LatestTheater(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetTheater: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	utils.WriteJSON(w, http.StatusOK, theater)
}

// CurrentVideo looks up the video for the current month and falls
// back to the most recent one of any month.
func (h *Handler) CurrentVideo(w http.ResponseWriter, r *http.Request) {
	video, err := h.Service.VideoForMonth(r.Context(), utils.CurrentMonthKey(), true)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CurrentVideo: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	utils.WriteJSON(w, http.StatusOK, video)
}

// VideoByMonth looks up the video for an explicit month key, with no
// fallback.
func (h *Handler) VideoByMonth(w http.ResponseWriter, r *http.Request) {
	monthKey := chi.URLParam(r, "monthKey")
	h.Logger.Info("API", fmt.Sprintf("VideoByMonth: monthKey=%s", monthKey))

	video, err := h.Service.VideoForMonth(r.Context(), monthKey, false)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("VideoByMonth: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	utils.WriteJSON(w, http.StatusOK, video)
}

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	h.Logger.Info("API", "SubmitContact: received request")

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("SubmitContact: failed to decode request body: %v", err))
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := models.Validate(req); err != nil {
		h.Logger.Warn("API", fmt.Sprintf("SubmitContact: validation failed: %v", err))
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.Service.SubmitContact(r.Context(), req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SubmitContact: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, models.ContactResponse{
		MessageID: id,
		Message:   "Thanks for reaching out!",
	})
}

func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.Service.Seed(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Seed: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	message := "Already seeded"
	if seeded {
		message = "Seeded demo data"
	}
	h.Logger.Info("SEED", message)

	utils.WriteJSON(w, http.StatusOK, seedResponse{Status: "ok", Message: message})
}
