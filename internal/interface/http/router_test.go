package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zerozero/zerozero/internal/domain/analytics"
	"github.com/zerozero/zerozero/internal/domain/answers"
	"github.com/zerozero/zerozero/internal/domain/auth"
	"github.com/zerozero/zerozero/internal/domain/impact"
	"github.com/zerozero/zerozero/internal/domain/zone"
	"github.com/zerozero/zerozero/internal/infra/analyticsstore"
	"github.com/zerozero/zerozero/internal/infra/answerrepo"
	"github.com/zerozero/zerozero/internal/infra/config"
	"github.com/zerozero/zerozero/internal/infra/scrapedstore"
	"github.com/zerozero/zerozero/internal/infra/userrepo"
)

type testEnv struct {
	handler http.Handler
	scraped *scrapedstore.MemoryStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:        ":0",
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
			AllowedOrigins: []string{"*"},
		},
		Zone:    config.ZoneConfig{SwitchAdviceURL: "https://example.org/switch"},
		Scraped: config.ScrapedConfig{IngestToken: "scraper-secret", TTL: time.Minute},
	}

	authSvc := auth.NewService(auth.Config{
		Secret:          "test-secret",
		TokenTTL:        time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}, userrepo.NewMemoryRepository(), logger)
	answersSvc := answers.NewService(answerrepo.NewMemoryRepository(), logger)
	scraped := scrapedstore.NewMemoryStore(time.Minute)
	zoneSvc := zone.NewService(zone.Config{SwitchAdviceURL: cfg.Zone.SwitchAdviceURL}, scraped, logger)
	analyticsSvc := analytics.NewService(analytics.Config{TrendingLimit: 10}, analyticsstore.NewMemoryStore(), logger)

	handler := NewHandler(zoneSvc, answersSvc, analyticsSvc, authSvc, scraped, logger)
	server := NewRouter(cfg, handler, authSvc)
	return &testEnv{handler: server.Handler, scraped: scraped}
}

func (e *testEnv) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	e.handler.ServeHTTP(recorder, req)
	return recorder
}

func (e *testEnv) register(t *testing.T) string {
	t.Helper()
	recorder := e.do(http.MethodPost, "/api/v1/auth/register", `{"email":"user@example.com","password":"pass1234","name":"Robin"}`, nil)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = e.do(http.MethodPost, "/api/v1/auth/login", `{"email":"user@example.com","password":"pass1234"}`, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var resp auth.LoginResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestRouter_ZoneAnonymous(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(http.MethodGet, "/api/v1/zone", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var vm zone.ViewModel
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &vm))
	require.Len(t, vm.Journeys, int(impact.JourneyCount))
	require.Len(t, vm.Tips, zone.TipCount)
	require.Equal(t, "Start a journey to see what you could save", vm.Hero.Title)
}

func TestRouter_ZonePreviewInvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(http.MethodPost, "/api/v1/zone/preview", `{"journeyAnswers":123}`, nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_AnswersRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(http.MethodPut, "/api/v1/answers/home", `{"answers":{"monthly_cost":"100"}}`, nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "unauthorized", errBody["error"]["code"])
}

func TestRouter_AnswerAndImpactFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t)

	recorder := env.do(http.MethodPut, "/api/v1/answers/home", `{"answers":{"monthly_cost":"100","green_tariff":"no"}}`, bearer(token))
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.do(http.MethodGet, "/api/v1/impact", "", bearer(token))
	require.Equal(t, http.StatusOK, recorder.Code)

	var userImpact impact.UserImpact
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &userImpact))
	home := userImpact.Journeys[impact.JourneyHome]
	require.Equal(t, 940, home.CarbonKg)
	require.Equal(t, 300, home.MoneyGbp)

	recorder = env.do(http.MethodGet, "/api/v1/zone", "", bearer(token))
	require.Equal(t, http.StatusOK, recorder.Code)
	var vm zone.ViewModel
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &vm))
	require.Equal(t, zone.ActionSwitch, vm.Journeys[0].Action.Type)
	require.Equal(t, "https://example.org/switch", vm.Journeys[0].Action.ActionURL)
}

func TestRouter_JourneyImpactFromQuery(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(http.MethodGet, "/api/v1/impact/home?monthly_cost=100&green_tariff=no", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result impact.Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	require.Equal(t, 940, result.CarbonKg)
	require.Equal(t, 300, result.MoneyGbp)
}

func TestRouter_JourneyImpactFallsBackToStoredAnswers(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t)

	recorder := env.do(http.MethodPut, "/api/v1/answers/home", `{"answers":{"monthly_cost":"100","green_tariff":"no"}}`, bearer(token))
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.do(http.MethodGet, "/api/v1/impact/home", "", bearer(token))
	require.Equal(t, http.StatusOK, recorder.Code)

	var result impact.Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	require.Equal(t, 940, result.CarbonKg)
	require.Equal(t, 300, result.MoneyGbp)

	// Anonymous callers without query answers get the not-started result.
	recorder = env.do(http.MethodGet, "/api/v1/impact/home", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	require.Equal(t, 0, result.CarbonKg)
	require.Equal(t, 0, result.MoneyGbp)
	require.NotEmpty(t, result.Explanation)
}

func TestRouter_JourneyImpactUnknownJourney(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(http.MethodGet, "/api/v1/impact/gardening", "", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
}

func TestRouter_ResetJourney(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t)

	recorder := env.do(http.MethodPut, "/api/v1/answers/food", `{"answers":{"diet_type":"VEGAN"}}`, bearer(token))
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.do(http.MethodDelete, "/api/v1/answers/food", "", bearer(token))
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = env.do(http.MethodGet, "/api/v1/answers/food", "", bearer(token))
	require.Equal(t, http.StatusOK, recorder.Code)
	var resp answers.JourneyAnswersResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Empty(t, resp.Answers)
}

func TestRouter_LikesFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t)

	recorder := env.do(http.MethodPut, "/api/v1/likes/tip-home", "", bearer(token))
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = env.do(http.MethodGet, "/api/v1/likes", "", bearer(token))
	require.Equal(t, http.StatusOK, recorder.Code)
	var likes struct {
		Likes []string `json:"likes"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &likes))
	require.Equal(t, []string{"tip-home"}, likes.Likes)

	recorder = env.do(http.MethodDelete, "/api/v1/likes/tip-home", "", bearer(token))
	require.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestRouter_ScrapedIngestRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(http.MethodPost, "/internal/scraped/home", `{"carbon_value":1000}`, nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRouter_ScrapedIngestStoresPoint(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(http.MethodPost, "/internal/scraped/home", `{"carbon_value":1000,"local_grant_gbp":400}`, map[string]string{"X-Ingest-Token": "scraper-secret"})
	require.Equal(t, http.StatusNoContent, recorder.Code)

	point, found, err := env.scraped.Get(context.Background(), impact.JourneyHome)
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, point.CarbonValue)
	require.Equal(t, float64(1000), *point.CarbonValue)
	require.Equal(t, float64(400), point.LocalGrantGbp)
}

func TestRouter_ScrapedIngestRejectsUnknownJourney(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(http.MethodPost, "/internal/scraped/gardening", `{"carbon_value":1000}`, map[string]string{"X-Ingest-Token": "scraper-secret"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRouter_EventCaptureAndTrending(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(http.MethodPost, "/api/v1/events", `{"name":"Zone Opened","journey":"home"}`, nil)
	require.Equal(t, http.StatusAccepted, recorder.Code)

	recorder = env.do(http.MethodPost, "/api/v1/events", `{"name":"zone opened"}`, nil)
	require.Equal(t, http.StatusAccepted, recorder.Code)

	recorder = env.do(http.MethodGet, "/api/v1/events/trending", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var trending struct {
		Events []analytics.TrendingEvent `json:"events"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &trending))
	require.Len(t, trending.Events, 1)
	require.Equal(t, "zone_opened", trending.Events[0].Name)
	require.Equal(t, int64(2), trending.Events[0].Count)
}

func TestRouter_ProfileUpdate(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t)

	recorder := env.do(http.MethodPatch, "/api/v1/me", `{"postcode":"sw1a1aa","household":2}`, bearer(token))
	require.Equal(t, http.StatusOK, recorder.Code)

	var view auth.UserView
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &view))
	require.Equal(t, "SW1A 1AA", view.Postcode)
	require.Equal(t, 2, view.Household)
}

func decodeErrorBody(t *testing.T, payload []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(payload, &body))
	return body
}
