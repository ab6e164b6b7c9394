package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinTrade_Go/internal/auth"
	"github.com/osse101/SkinTrade_Go/internal/cases"
	"github.com/osse101/SkinTrade_Go/internal/catalog"
	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/economy"
	"github.com/osse101/SkinTrade_Go/internal/event"
	"github.com/osse101/SkinTrade_Go/internal/eventlog"
	"github.com/osse101/SkinTrade_Go/internal/handler"
	"github.com/osse101/SkinTrade_Go/internal/opening"
	"github.com/osse101/SkinTrade_Go/internal/profile"
	"github.com/osse101/SkinTrade_Go/internal/roulette"
	"github.com/osse101/SkinTrade_Go/internal/session"
	"github.com/osse101/SkinTrade_Go/internal/sse"
)

type testServer struct {
	handler http.Handler
	opening *opening.Service
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	registry, err := cases.NewRegistry([]domain.Case{{
		ID:    "starter",
		Name:  "Starter Case",
		Price: 1000,
		Items: []domain.CaseItem{
			{ID: "p250-sand", Name: "P250 | Sand Dune", Rarity: domain.RarityCommon, Chance: 100},
		},
	}})
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	activity := eventlog.NewService(eventlog.NewMemoryRepository(10, nil))
	require.NoError(t, activity.Subscribe(bus))

	store := session.NewStore(session.Options{StartingBalance: domain.StartingBalance})
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	openingSvc := opening.NewService(registry, store, bus, opening.Options{
		Spinner: roulette.NewSpinner(10 * time.Millisecond),
	})

	srv := NewServer(Options{
		Addr:              ":0",
		MaxBodyBytes:      1 << 20,
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		SteamReturnURL:    "http://localhost:8080/api/v1/auth/steam/callback",
	}, Services{
		Catalog:  catalog.NewService(nil),
		Cases:    registry,
		Sessions: store,
		Tokens:   tokens,
		Economy:  economy.NewService(store, bus),
		TopUp:    economy.NewTopUp(""),
		Opening:  openingSvc,
		Profile:  profile.NewService(store),
		Activity: activity,
		Hub:      sse.NewHub(),
	})
	return testServer{handler: srv.Handler(), opening: openingSvc}
}

func (ts testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestServer_OpenRevealSellFlow(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", handler.LoginRequest{Name: "Ivan"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	login := decode[handler.LoginResponse](t, rec)
	assert.Equal(t, domain.StartingBalance, login.Balance.Balance)
	token := login.Token

	rec = ts.do(t, http.MethodPost, "/api/v1/cases/starter/open", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	opened := decode[opening.OpenResult](t, rec)
	assert.Equal(t, domain.StartingBalance-1000, opened.Balance)

	ts.opening.Spinner().Wait()

	rec = ts.do(t, http.MethodGet, "/api/v1/spins/"+opened.SpinID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	spin := decode[opening.SpinView](t, rec)
	assert.Equal(t, opening.StatusRevealed, spin.Status)
	require.NotNil(t, spin.Item)
	assert.Equal(t, "p250-sand", spin.Item.ItemID)

	rec = ts.do(t, http.MethodGet, "/api/v1/inventory", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	inv := decode[economy.Inventory](t, rec)
	require.Equal(t, 1, inv.Count)

	rec = ts.do(t, http.MethodPost, "/api/v1/inventory/sell", token, handler.SelectionRequest{IDs: []string{inv.Items[0].InstanceID}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sale := decode[economy.Sale](t, rec)
	assert.Equal(t, domain.SaleValueCommon, sale.Total)
	assert.Equal(t, domain.StartingBalance-1000+domain.SaleValueCommon, sale.Balance)

	rec = ts.do(t, http.MethodGet, "/api/v1/activity", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	activity := decode[handler.ActivityResponse](t, rec)
	assert.NotZero(t, activity.Count)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/balance", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ProtectedRoutesRequireSession(t *testing.T) {
	ts := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/balance"},
		{http.MethodPost, "/api/v1/cases/starter/open"},
		{http.MethodGet, "/api/v1/inventory"},
		{http.MethodGet, "/api/v1/profile"},
		{http.MethodGet, "/api/v1/spins/pending"},
		{http.MethodGet, "/api/v1/activity"},
		{http.MethodGet, "/api/v1/events"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := ts.do(t, rt.method, rt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec = ts.do(t, rt.method, rt.path, "not-a-token", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestServer_PublicRoutes(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/api/v1/cases", "/api/v1/catalog", "/api/v1/balance/topup", "/api/v1/auth/steam"} {
		t.Run(path, func(t *testing.T) {
			rec := ts.do(t, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestServer_SecurityHeaders(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}
