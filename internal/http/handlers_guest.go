package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/domain/model"
)

// GuestHandlers serve signed-in guests (any role).
type GuestHandlers struct {
	Reservations ReservationService
	Reviews      ReviewService
	Logger       *slog.Logger
}

// CreateReservation handles POST /api/reservations.
func (h *GuestHandlers) CreateReservation(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	var req model.CreateReservationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	res, err := h.Reservations.Create(r.Context(), p.Identity.UserID, req)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, res)
}

// MyReservations handles GET /api/me/reservations.
func (h *GuestHandlers) MyReservations(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	out, err := h.Reservations.ListForUser(r.Context(), p.Identity.UserID, pageFromRequest(r))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// CreateReview handles POST /api/accommodations/{id}/reviews.
func (h *GuestHandlers) CreateReview(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	var req model.CreateReviewRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.AccommodationID = r.PathValue("id")
	rev, err := h.Reviews.Create(r.Context(), p.Identity.UserID, req)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, rev)
}
