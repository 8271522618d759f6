package reservation_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kabarett-api/internal/logger"
	"kabarett-api/internal/metrics"
	"kabarett-api/internal/models"
	"kabarett-api/internal/reservation"
	"kabarett-api/internal/reservation/qr"
	"kabarett-api/internal/utils"
)

type Handler struct {
	Service *reservation.Service
	QR      *qr.Generator
	Logger  *logger.Logger
}

func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	h.Logger.Info("API", "CreateReservation: received request")

	var req models.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateReservation: failed to decode request body: %v", err))
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := models.Validate(req); err != nil {
		h.Logger.Warn("API", fmt.Sprintf("CreateReservation: validation failed: %v", err))
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.Service.Reserve(r.Context(), req)
	if err != nil {
		metrics.TrackReservation(reserveOutcome(err), 0)
		h.writeServiceError(w, "CreateReservation", err)
		return
	}

	metrics.TrackReservation(metrics.OutcomeConfirmed, req.Tickets)
	h.Logger.LogReservation("CREATE", id, fmt.Sprintf("%d ticket(s) for event %s", req.Tickets, req.EventID))

	utils.WriteJSON(w, http.StatusCreated, models.ReservationResponse{
		ReservationID: id,
		Message:       "Reservation confirmed",
	})
}

func (h *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "reservationId")
	h.Logger.Info("API", fmt.Sprintf("GetReservation: reservationId=%s", reservationID))

	res, err := h.Service.Get(r.Context(), reservationID)
	if err != nil {
		h.writeServiceError(w, "GetReservation", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, res)
}

// GetReservationQR renders the reservation as an encrypted QR code
// for door check-in.
func (h *Handler) GetReservationQR(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "reservationId")
	h.Logger.Info("API", fmt.Sprintf("GetReservationQR: reservationId=%s", reservationID))

	res, err := h.Service.Get(r.Context(), reservationID)
	if err != nil {
		h.writeServiceError(w, "GetReservationQR", err)
		return
	}

	png, err := h.QR.GenerateEncryptedQR(*res)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetReservationQR: failed to generate QR: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "Could not generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetReservationQR: failed to write response: %v", err))
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, reservation.ErrEventNotFound):
		h.Logger.Warn("API", fmt.Sprintf("%s: %v", op, err))
		utils.WriteError(w, http.StatusNotFound, "Event not found")
	case errors.Is(err, reservation.ErrNotEnoughSeats):
		h.Logger.Warn("API", fmt.Sprintf("%s: %v", op, err))
		utils.WriteError(w, http.StatusBadRequest, "Not enough seats available")
	case errors.Is(err, reservation.ErrSeatsTaken):
		h.Logger.Warn("API", fmt.Sprintf("%s: %v", op, err))
		utils.WriteError(w, http.StatusConflict, "Seats no longer available")
	case errors.Is(err, reservation.ErrReservationNotFound):
		h.Logger.Warn("API", fmt.Sprintf("%s: %v", op, err))
		utils.WriteError(w, http.StatusNotFound, "Reservation not found")
	default:
		h.Logger.Error("API", fmt.Sprintf("%s: storage failure: %v", op, err))
		utils.WriteError(w, http.StatusInternalServerError, "Storage unavailable")
	}
}

func reserveOutcome(err error) string {
	switch {
	case errors.Is(err, reservation.ErrEventNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, reservation.ErrNotEnoughSeats):
		return metrics.OutcomeNotEnough
	case errors.Is(err, reservation.ErrSeatsTaken):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeError
	}
}
