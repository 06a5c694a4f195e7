package httpx

import (
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/service"
)

// PublicHandlers serve anonymous guest routes.
type PublicHandlers struct {
	Accommodations AccommodationService
	Reviews        ReviewService
	Notices        NoticeService
	Influencers    InfluencerService
	Logger         *slog.Logger
}

// ListAccommodations handles GET /api/accommodations?page=&page_size=&region=.
func (h *PublicHandlers) ListAccommodations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Accommodations.ListPublished(r.Context(), pageFromRequest(r), r.URL.Query().Get("region"))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// GetAccommodation handles GET /api/accommodations/{id}.
func (h *PublicHandlers) GetAccommodation(w http.ResponseWriter, r *http.Request) {
	a, err := h.Accommodations.GetPublished(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, a)
}

// ListReviews handles GET /api/accommodations/{id}/reviews.
func (h *PublicHandlers) ListReviews(w http.ResponseWriter, r *http.Request) {
	out, err := h.Reviews.ListForAccommodation(r.Context(), r.PathValue("id"), pageFromRequest(r))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// ListNotices handles GET /api/notices.
func (h *PublicHandlers) ListNotices(w http.ResponseWriter, r *http.Request) {
	out, err := h.Notices.List(r.Context(), pageFromRequest(r), true)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// Referral handles GET /r/{code}: records the click and redirects to the link's landing
// path. Unknown codes land on the home page.
func (h *PublicHandlers) Referral(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.PathValue("code"))
	landing, err := h.Influencers.RecordClick(r.Context(), service.ClickInput{
		Code:      code,
		Referer:   r.Referer(),
		ClientKey: clientIP(r) + "|" + r.UserAgent(),
	})
	if err != nil {
		if !apperrors.IsNotFound(err) {
			WriteAppError(w, r, h.Logger, err)
			return
		}
		landing = "/"
	}
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, landing, http.StatusFound)
}
