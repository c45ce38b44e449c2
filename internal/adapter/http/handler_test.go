package httpadapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"docsuite-ads/internal/adapter/auth"
	"docsuite-ads/internal/adapter/render"
	"docsuite-ads/internal/config/configs"
	"docsuite-ads/internal/core/domain"
	"docsuite-ads/internal/core/port"
	"docsuite-ads/internal/core/port/mocks"
)

type fixture struct {
	ads   *mocks.MockAdUseCase
	admin *mocks.MockAdminUseCase
	srv   *httptest.Server
	logs  *syncBuffer
}

// syncBuffer collects server logs written from handler goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newFixture(t *testing.T, authn Authenticator) *fixture {
	t.Helper()
	logs := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	f := &fixture{
		ads:   mocks.NewMockAdUseCase(t),
		admin: mocks.NewMockAdminUseCase(t),
		logs:  logs,
	}
	h := NewHandler(Deps{
		Ads:            f.ads,
		Admin:          f.admin,
		Renderer:       render.New(logger),
		Auth:           authn,
		Logger:         logger,
		AllowedOrigins: []string{"https://docs.example.com"},
	})
	f.srv = httptest.NewServer(h.Router())
	t.Cleanup(f.srv.Close)
	return f
}

func noRedirect() *http.Client {
	return &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
}

func doJSON(t *testing.T, method, url string, body any, header http.Header) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := noRedirect().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestAdRequestJSON(t *testing.T) {
	f := newFixture(t, nil)
	f.ads.EXPECT().ServeAd(mock.Anything, domain.PlacementHeader).Return(&port.AdResponse{
		Placement:  domain.PlacementHeader,
		Outcome:    domain.OutcomeCreative,
		Candidates: 1,
		Ad: &domain.ResolvedAd{
			ID:       "c1",
			Creative: domain.ImageCreative{ImageURL: "/ads/h.png"},
			Link:     "https://x.test",
			Weight:   7,
			Tier:     domain.TierGold,
		},
		ClickURL: "/api/v1/ad/click/c1?placement=header",
	}, nil)

	resp := doJSON(t, http.MethodGet, f.srv.URL+"/api/v1/ad/header", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

	var got struct {
		Outcome string `json:"outcome"`
		Ad      struct {
			ID       string `json:"id"`
			Mode     string `json:"mode"`
			ImageURL string `json:"imageUrl"`
			Weight   int    `json:"weight"`
		} `json:"ad"`
		ClickURL string `json:"clickUrl"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "creative", got.Outcome)
	assert.Equal(t, "c1", got.Ad.ID)
	assert.Equal(t, "image", got.Ad.Mode)
	assert.Equal(t, 7, got.Ad.Weight)
	assert.Equal(t, "/api/v1/ad/click/c1?placement=header", got.ClickURL)
}

func TestAdRequestCollapsedSlot(t *testing.T) {
	f := newFixture(t, nil)
	f.ads.EXPECT().ServeAd(mock.Anything, domain.PlacementSidebarLeft).
		Return(&port.AdResponse{Placement: domain.PlacementSidebarLeft, Outcome: domain.OutcomeNone, Exclusive: true}, nil)

	resp := doJSON(t, http.MethodGet, f.srv.URL+"/api/v1/ad/sidebar-left", nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestAdRequestUnknownPlacement(t *testing.T) {
	f := newFixture(t, nil)
	f.ads.EXPECT().ServeAd(mock.Anything, domain.Placement("popup")).
		Return(nil, fmt.Errorf("%w: %q", port.ErrUnknownPlacement, "popup"))

	resp := doJSON(t, http.MethodGet, f.srv.URL+"/api/v1/ad/popup", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdFragment(t *testing.T) {
	f := newFixture(t, nil)
	f.ads.EXPECT().ServeAd(mock.Anything, domain.PlacementFooter).
		Return(&port.AdResponse{Placement: domain.PlacementFooter, Outcome: domain.OutcomePlaceholder}, nil)

	resp := doJSON(t, http.MethodGet, f.srv.URL+"/ad/footer", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, readBody(t, resp), "/advertise.html")
}

func TestAdClick(t *testing.T) {
	f := newFixture(t, nil)
	f.ads.EXPECT().RegisterClick(mock.Anything, "c1", domain.PlacementHeader).Return("https://landing.test", nil)
	f.ads.EXPECT().RegisterClick(mock.Anything, "gone", domain.Placement("")).Return("", port.ErrCampaignNotFound)

	resp := doJSON(t, http.MethodGet, f.srv.URL+"/api/v1/ad/click/c1?placement=header", nil, nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://landing.test", resp.Header.Get("Location"))

	resp = doJSON(t, http.MethodGet, f.srv.URL+"/api/v1/ad/click/gone", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCampaignWizard(t *testing.T) {
	f := newFixture(t, nil)

	t.Run("validation", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, f.srv.URL+"/api/v1/admin/campaigns/wizard", map[string]any{
			"advertiserId": "a1",
			"tier":         "diamond",
			"startDate":    "01/02/2025",
		}, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorResp
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "validation failed", body.Error)
		assert.Len(t, body.Details, 2)
	})

	t.Run("domain error", func(t *testing.T) {
		f.admin.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(r port.CampaignWizardReq) bool {
			return r.AdvertiserID == "a2"
		})).Return(nil, &domain.ValidationError{Msg: "Missing required assets: Desktop Image"}).Once()

		resp := doJSON(t, http.MethodPost, f.srv.URL+"/api/v1/admin/campaigns/wizard", map[string]any{
			"advertiserId": "a2",
			"startDate":    "2025-01-01",
		}, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "Missing required assets")
	})

	t.Run("created", func(t *testing.T) {
		f.admin.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(r port.CampaignWizardReq) bool {
			return r.NewAdvertiser != nil && r.NewAdvertiser.CompanyName == "Acme"
		})).Return(&domain.Campaign{ID: "new", Placement: domain.PlacementHeader}, nil).Once()

		resp := doJSON(t, http.MethodPost, f.srv.URL+"/api/v1/admin/campaigns/wizard", map[string]any{
			"newAdvertiser": map[string]any{"companyName": "Acme", "email": "a@acme.test", "tier": "gold"},
			"startDate":     "2025-01-01",
		}, nil)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})
}

func TestDeleteAdvertiserStatuses(t *testing.T) {
	f := newFixture(t, nil)
	f.admin.EXPECT().DeleteAdvertiser(mock.Anything, "a1", false).Return(port.ErrAdvertiserInUse)
	f.admin.EXPECT().DeleteAdvertiser(mock.Anything, "a1", true).Return(nil)
	f.admin.EXPECT().DeleteAdvertiser(mock.Anything, "zz", false).Return(port.ErrAdvertiserNotFound)

	assert.Equal(t, http.StatusConflict, doJSON(t, http.MethodDelete, f.srv.URL+"/api/v1/admin/advertisers/a1", nil, nil).StatusCode)
	assert.Equal(t, http.StatusNoContent, doJSON(t, http.MethodDelete, f.srv.URL+"/api/v1/admin/advertisers/a1?cascade=true", nil, nil).StatusCode)
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodDelete, f.srv.URL+"/api/v1/admin/advertisers/zz", nil, nil).StatusCode)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodDelete, f.srv.URL+"/api/v1/admin/advertisers/a1?cascade=maybe", nil, nil).StatusCode)
}

func TestSaveCampaignsDocument(t *testing.T) {
	f := newFixture(t, nil)
	f.admin.EXPECT().SaveCampaigns(mock.Anything, mock.MatchedBy(func(cs []domain.Campaign) bool {
		return len(cs) == 1 && cs[0].Creative.Mode() == domain.ModeScript
	})).Return(nil)

	resp := doJSON(t, http.MethodPost, f.srv.URL+"/api/v1/admin/campaigns", []map[string]any{{
		"id": "c1", "placement": "sidebar-left", "status": "active",
		"startDate": "2025-01-01", "endDate": "2025-01-15", "script": "<ins class=\"adsbygoogle\"></ins>",
	}}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, f.srv.URL+"/api/v1/admin/campaigns", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOverviewAt(t *testing.T) {
	f := newFixture(t, nil)
	at := time.Date(2025, 1, 10, 6, 0, 0, 0, time.UTC)
	f.admin.EXPECT().Overview(mock.Anything, at).Return(&port.Overview{TotalAdvertisers: 3, Alerts: []port.Alert{}}, nil)

	resp := doJSON(t, http.MethodGet, f.srv.URL+"/api/v1/admin/stats/overview?at=2025-01-10T06:00:00Z", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"totalAdvertisers":3`)

	resp = doJSON(t, http.MethodGet, f.srv.URL+"/api/v1/admin/stats/overview?at=yesterday", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := auth.NewService(configs.Auth{
		JWTSecret:         "secret",
		AdminUser:         "admin",
		AdminPasswordHash: string(hash),
		TokenTTL:          time.Hour,
	})
	f := newFixture(t, svc)

	resp := doJSON(t, http.MethodGet, f.srv.URL+"/api/v1/admin/advertisers", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, f.srv.URL+"/api/v1/admin/login", loginReq{Username: "admin", Password: "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, f.srv.URL+"/api/v1/admin/login", map[string]string{"username": "admin"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, f.srv.URL+"/api/v1/admin/login", loginReq{Username: "admin", Password: "hunter2"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lr loginResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&lr))
	require.NotEmpty(t, lr.Token)

	f.admin.EXPECT().Advertisers(mock.Anything).Return(nil, nil)
	resp = doJSON(t, http.MethodGet, f.srv.URL+"/api/v1/admin/advertisers", nil, http.Header{"Authorization": {"Bearer " + lr.Token}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, readBody(t, resp))

	resp = doJSON(t, http.MethodGet, f.srv.URL+"/api/v1/admin/advertisers", nil, http.Header{"Authorization": {"Bearer forged"}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	f.admin.EXPECT().SaveSettings(mock.Anything, mock.Anything).Return(nil)
	resp = doJSON(t, http.MethodPost, f.srv.URL+"/api/v1/admin/settings", map[string]any{}, http.Header{"Authorization": {"Bearer " + lr.Token}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	logs := f.logs.String()
	assert.Contains(t, logs, `"msg":"admin change"`)
	assert.Contains(t, logs, `"operator":"admin"`)
	assert.Contains(t, logs, `"action":"save settings"`)
}

func TestAdminChangesAreAudited(t *testing.T) {
	f := newFixture(t, nil)

	f.admin.EXPECT().DeleteAdvertiser(mock.Anything, "a1", true).Return(nil)
	resp := doJSON(t, http.MethodDelete, f.srv.URL+"/api/v1/admin/advertisers/a1?cascade=true", nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	f.admin.EXPECT().DeleteAdvertiser(mock.Anything, "a2", false).Return(port.ErrAdvertiserInUse)
	resp = doJSON(t, http.MethodDelete, f.srv.URL+"/api/v1/admin/advertisers/a2", nil, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	logs := f.logs.String()
	assert.Contains(t, logs, `"operator":"anonymous"`)
	assert.Contains(t, logs, `"advertiser_id":"a1"`)
	assert.Contains(t, logs, `"cascade":true`)
	assert.NotContains(t, logs, `"advertiser_id":"a2"`)
}

func TestLoginDisabledWithoutAuth(t *testing.T) {
	f := newFixture(t, nil)
	resp := doJSON(t, http.MethodPost, f.srv.URL+"/api/v1/admin/login", loginReq{Username: "a", Password: "b"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORSAndHealth(t *testing.T) {
	f := newFixture(t, nil)
	preflight := func(origin, method string) http.Header {
		return http.Header{
			"Origin":                         {origin},
			"Access-Control-Request-Method":  {method},
			"Access-Control-Request-Headers": {"Authorization"},
		}
	}

	resp := doJSON(t, http.MethodOptions, f.srv.URL+"/api/v1/admin/advertisers/a1", nil, preflight("https://docs.example.com", http.MethodDelete))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://docs.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.MethodDelete, resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Authorization", resp.Header.Get("Access-Control-Allow-Headers"))

	resp = doJSON(t, http.MethodOptions, f.srv.URL+"/api/v1/ad/header", nil, preflight("https://evil.test", http.MethodGet))
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Headers"))

	resp = doJSON(t, http.MethodOptions, f.srv.URL+"/api/v1/ad/header", nil, preflight("https://docs.example.com", http.MethodPut))
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Methods"))

	resp = doJSON(t, http.MethodGet, f.srv.URL+"/healthz", nil, http.Header{"Origin": {"https://docs.example.com"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://docs.example.com", resp.Header.Get("Access-Control-Allow-Origin"))

	resp = doJSON(t, http.MethodGet, f.srv.URL+"/healthz", nil, http.Header{"Origin": {"https://evil.test"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORSWithoutOrigins(t *testing.T) {
	h := corsHandler(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://docs.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, nil)
	f.ads.EXPECT().ServeAd(mock.Anything, domain.PlacementFooter).
		Return(&port.AdResponse{Placement: domain.PlacementFooter, Outcome: domain.OutcomePlaceholder}, nil)

	doJSON(t, http.MethodGet, f.srv.URL+"/api/v1/ad/footer", nil, nil)

	resp := doJSON(t, http.MethodGet, f.srv.URL+"/metrics", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, `ads_served_total{outcome="placeholder",placement="footer"}`)
	assert.Contains(t, body, `route="/api/v1/ad/{placement}"`)
}
