package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/domain/model"
)

// AdminHandlers serve the admin portal.
type AdminHandlers struct {
	Notices        NoticeService
	Accommodations AccommodationService
	Roles          RoleAdminService
	Influencers    InfluencerService
	Logger         *slog.Logger
}

// ListNotices handles GET /api/admin/notices (drafts included).
func (h *AdminHandlers) ListNotices(w http.ResponseWriter, r *http.Request, _ domainauth.Principal) {
	out, err := h.Notices.List(r.Context(), pageFromRequest(r), false)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// CreateNotice handles POST /api/admin/notices.
func (h *AdminHandlers) CreateNotice(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	var req model.CreateNoticeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	n, err := h.Notices.Create(r.Context(), p.Identity.UserID, req)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, n)
}

// UpdateNotice handles PATCH /api/admin/notices/{id}.
func (h *AdminHandlers) UpdateNotice(w http.ResponseWriter, r *http.Request, _ domainauth.Principal) {
	var req model.UpdateNoticeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	n, err := h.Notices.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, n)
}

// DeleteNotice handles DELETE /api/admin/notices/{id}.
func (h *AdminHandlers) DeleteNotice(w http.ResponseWriter, r *http.Request, _ domainauth.Principal) {
	if err := h.Notices.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAccommodations handles GET /api/admin/accommodations?status=.
func (h *AdminHandlers) ListAccommodations(w http.ResponseWriter, r *http.Request, _ domainauth.Principal) {
	out, err := h.Accommodations.ListAll(r.Context(), pageFromRequest(r), r.URL.Query().Get("status"))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

type setStatusBody struct {
	Status string `json:"status"`
}

// SetAccommodationStatus handles PATCH /api/admin/accommodations/{id}/status.
func (h *AdminHandlers) SetAccommodationStatus(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	var body setStatusBody
	if !DecodeJSON(w, r, &body) {
		return
	}
	a, err := h.Accommodations.SetStatus(r.Context(), r.PathValue("id"), body.Status)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	h.logger().InfoContext(r.Context(), "accommodation status changed",
		"accommodation_id", a.ID, "status", a.Status, "by", p.Identity.UserID, "bypass", p.Bypass)
	WriteJSON(w, http.StatusOK, a)
}

// ListRoles handles GET /api/admin/roles?role=.
func (h *AdminHandlers) ListRoles(w http.ResponseWriter, r *http.Request, _ domainauth.Principal) {
	page := pageFromRequest(r)
	items, err := h.Roles.List(r.Context(), page, r.URL.Query().Get("role"))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	if items == nil {
		items = []*model.RoleAssignment{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"items": items, "page": page.Number, "page_size": page.Size})
}

// SetRole handles PUT /api/admin/roles/{userId}.
func (h *AdminHandlers) SetRole(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	var req model.SetRoleRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.UserID = r.PathValue("userId")
	ra, err := h.Roles.Assign(r.Context(), p, req)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, ra)
}

// DeleteRole handles DELETE /api/admin/roles/{userId}.
func (h *AdminHandlers) DeleteRole(w http.ResponseWriter, r *http.Request, p domainauth.Principal) {
	if err := h.Roles.Revoke(r.Context(), p, r.PathValue("userId")); err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// InfluencerAnalytics handles GET /api/admin/analytics/influencers.
func (h *AdminHandlers) InfluencerAnalytics(w http.ResponseWriter, r *http.Request, _ domainauth.Principal) {
	page := pageFromRequest(r)
	rows, err := h.Influencers.Analytics(r.Context(), page)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	if rows == nil {
		rows = []model.InfluencerAnalytics{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"items": rows, "page": page.Number, "page_size": page.Size})
}

func (h *AdminHandlers) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
