package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/domain/model"
)

// HostHandlers serve the host portal. Every query is scoped to the principal's host id.
type HostHandlers struct {
	Accommodations AccommodationService
	Reservations   ReservationService
	Logger         *slog.Logger
}

// ListAccommodations handles GET /api/host/accommodations.
func (h *HostHandlers) ListAccommodations(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	out, err := h.Accommodations.ListForHost(r.Context(), p.Scoped.HostID, pageFromRequest(r))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// CreateAccommodation handles POST /api/host/accommodations.
func (h *HostHandlers) CreateAccommodation(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	var req model.CreateAccommodationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	a, err := h.Accommodations.CreateForHost(r.Context(), p.Scoped.HostID, req)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, a)
}

// UpdateAccommodation handles PATCH /api/host/accommodations/{id}.
func (h *HostHandlers) UpdateAccommodation(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	var req model.UpdateAccommodationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	a, err := h.Accommodations.UpdateForHost(r.Context(), p.Scoped.HostID, r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, a)
}

// ListReservations handles GET /api/host/reservations?status=.
func (h *HostHandlers) ListReservations(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	out, err := h.Reservations.ListForHost(
		r.Context(), p.Scoped.HostID, pageFromRequest(r), r.URL.Query().Get("status"))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// UpdateReservation handles PATCH /api/host/reservations/{id}.
func (h *HostHandlers) UpdateReservation(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	var req model.UpdateReservationStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	res, err := h.Reservations.UpdateStatusForHost(r.Context(), p.Scoped.HostID, r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// InfluencerHandlers serve the influencer portal, scoped to the principal's influencer id.
type InfluencerHandlers struct {
	Influencers InfluencerService
	Logger      *slog.Logger
}

// ListLinks handles GET /api/influencer/links.
func (h *InfluencerHandlers) ListLinks(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	links, err := h.Influencers.ListLinks(r.Context(), p.Scoped.InfluencerID)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"items": links})
}

// CreateLink handles POST /api/influencer/links.
func (h *InfluencerHandlers) CreateLink(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	var req model.CreateReferralLinkRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	link, err := h.Influencers.CreateLink(r.Context(), p.Scoped.InfluencerID, req)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, link)
}

// Dashboard handles GET /api/influencer/dashboard.
func (h *InfluencerHandlers) Dashboard(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	d, err := h.Influencers.Dashboard(r.Context(), p.Scoped.InfluencerID)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, d)
}

// SummaryHandler handles GET /api/portal/summary for hosts and admins.
type SummaryHandler struct {
	Portal PortalService
	Logger *slog.Logger
}

// Summary renders the landing counts for the principal.
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	s, err := h.Portal.Summary(r.Context(), p)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, s)
}
