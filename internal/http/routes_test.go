package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhub/stayhub-web/internal/domain/model"
	"github.com/stayhub/stayhub-web/internal/service"
	"github.com/stayhub/stayhub-web/internal/util"
)

type fakeAccommodations struct {
	AccommodationService
	hostIDs []string
}

func (f *fakeAccommodations) UpdateForHost(
	_ context.Context,
	hostID, id string,
	_ model.UpdateAccommodationRequest,
) (*model.Accommodation, error) {
	f.hostIDs = append(f.hostIDs, hostID)
	return &model.Accommodation{ID: id, HostID: hostID}, nil
}

func (f *fakeAccommodations) ListAll(
	_ context.Context,
	p util.Page,
	_ string,
) (service.Paged[*model.Accommodation], error) {
	return service.Paged[*model.Accommodation]{Items: []*model.Accommodation{}, Page: p.Number, PageSize: p.Size}, nil
}

func newTestRouter(h *gateHarness, acc AccommodationService) *http.ServeMux {
	logger := discardLogger()
	return NewRouter(RouterServices{
		Guard:      h.guard,
		Policies:   h.policies,
		Guest:      &GuestHandlers{Logger: logger},
		Host:       &HostHandlers{Accommodations: acc, Logger: logger},
		Influencer: &InfluencerHandlers{Logger: logger},
		Admin:      &AdminHandlers{Accommodations: acc, Logger: logger},
		Summary:    &SummaryHandler{Logger: logger},
	})
}

func TestRouter_ProtectedRoutesRejectAnonymous(t *testing.T) {
	h := newGateHarness(t, service.BypassConfig{})
	mux := newTestRouter(h, &fakeAccommodations{})

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/reservations"},
		{http.MethodGet, "/api/me/reservations"},
		{http.MethodPost, "/api/accommodations/a1/reviews"},
		{http.MethodGet, "/api/host/accommodations"},
		{http.MethodPost, "/api/host/accommodations"},
		{http.MethodPatch, "/api/host/accommodations/a1"},
		{http.MethodGet, "/api/host/reservations"},
		{http.MethodPatch, "/api/host/reservations/r1"},
		{http.MethodGet, "/api/influencer/links"},
		{http.MethodPost, "/api/influencer/links"},
		{http.MethodGet, "/api/influencer/dashboard"},
		{http.MethodGet, "/api/admin/notices"},
		{http.MethodPost, "/api/admin/notices"},
		{http.MethodPatch, "/api/admin/notices/n1"},
		{http.MethodDelete, "/api/admin/notices/n1"},
		{http.MethodGet, "/api/admin/accommodations"},
		{http.MethodPatch, "/api/admin/accommodations/a1/status"},
		{http.MethodGet, "/api/admin/roles"},
		{http.MethodPut, "/api/admin/roles/u1"},
		{http.MethodDelete, "/api/admin/roles/u1"},
		{http.MethodGet, "/api/admin/analytics/influencers"},
		{http.MethodGet, "/api/portal/summary"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(rt.method, rt.path, strings.NewReader(`{}`)))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHENTICATED", decodeError(t, rec).Error)
		})
	}
	assert.Equal(t, 0, h.identities.Calls())
}

func TestRouter_HostRouteUsesScopedHostID(t *testing.T) {
	h := newGateHarness(t, service.BypassConfig{})
	acc := &fakeAccommodations{}
	mux := newTestRouter(h, acc)

	req := httptest.NewRequest(http.MethodPatch, "/api/host/accommodations/a1", strings.NewReader(`{"name":"Sea view"}`))
	req.Header.Set("Authorization", "Bearer "+hostToken)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"h-1"}, acc.hostIDs)
	assert.Equal(t, 1, h.hosts.Calls())
}

func TestRouter_GuestCannotReachHostRoutes(t *testing.T) {
	h := newGateHarness(t, service.BypassConfig{})
	acc := &fakeAccommodations{}
	mux := newTestRouter(h, acc)

	req := httptest.NewRequest(http.MethodPatch, "/api/host/accommodations/a1", strings.NewReader(`{}`))
	req.Header.Set(DefaultTokenHeader, guestToken)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, acc.hostIDs)
	assert.Equal(t, 0, h.hosts.Calls())
}

func TestRouter_AdminBypass(t *testing.T) {
	h := newGateHarness(t, service.BypassConfig{Enabled: true, Secret: testBypassSecret})
	mux := newTestRouter(h, &fakeAccommodations{})

	adminReq := httptest.NewRequest(http.MethodGet, "/api/admin/accommodations", nil)
	adminReq.Header.Set(DefaultTokenHeader, testBypassSecret)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, adminReq)
	assert.Equal(t, http.StatusOK, rec.Code)

	summaryReq := httptest.NewRequest(http.MethodGet, "/api/portal/summary", nil)
	summaryReq.Header.Set(DefaultTokenHeader, testBypassSecret)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, summaryReq)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_MetricsMount(t *testing.T) {
	h := newGateHarness(t, service.BypassConfig{})
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	mux := NewRouter(RouterServices{
		Guard:          h.guard,
		Policies:       h.policies,
		MetricsHandler: metrics,
		MetricsPath:    "/internal/metrics",
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/internal/metrics", nil))
	assert.Equal(t, "# metrics", rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
