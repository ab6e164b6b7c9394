package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/middleware"
	"github.com/osse101/SkinTrade_Go/internal/session"
)

const testStartingBalance = domain.StartingBalance

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

var testCases = []domain.Case{
	{
		ID:    "starter",
		Name:  "Starter Case",
		Price: 1000,
		Items: []domain.CaseItem{
			{ID: "p250-sand", Name: "P250 | Sand Dune", Rarity: domain.RarityCommon, Chance: 60},
			{ID: "ak-redline", Name: "AK-47 | Redline", Rarity: domain.RarityRare, Chance: 40},
		},
	},
	{
		ID:    "dragon",
		Name:  "Dragon Case",
		Price: 50000,
		Items: []domain.CaseItem{
			{ID: "awp-dragon", Name: "AWP | Dragon Lore", Rarity: domain.RarityLegendary, Chance: 100},
		},
	},
}

func newTestStore() *session.Store {
	return session.NewStore(session.Options{StartingBalance: testStartingBalance})
}

func newTestSession(t *testing.T, store *session.Store) session.Session {
	t.Helper()
	return store.Create(context.Background(), domain.User{ID: "u-1", Name: domain.DefaultUserName, JoinDate: testTime})
}

// seedInventory adds one item per rarity and returns their instance IDs in order.
func seedInventory(t *testing.T, store *session.Store, sessionID string, rarities ...domain.Rarity) []string {
	t.Helper()
	ids := []string{
		"0b6f2f4e-8d7a-4f7e-9a53-5b8d1c0e2a01",
		"0b6f2f4e-8d7a-4f7e-9a53-5b8d1c0e2a02",
		"0b6f2f4e-8d7a-4f7e-9a53-5b8d1c0e2a03",
		"0b6f2f4e-8d7a-4f7e-9a53-5b8d1c0e2a04",
	}
	require.LessOrEqual(t, len(rarities), len(ids))
	_, err := store.Update(context.Background(), sessionID, func(s *session.Session) error {
		for i, rarity := range rarities {
			item := domain.CaseItem{ID: "item-" + string(rarity), Name: string(rarity) + " skin", Rarity: rarity}
			s.AddItem(domain.NewInventoryItem(ids[i], "starter", item, testTime))
		}
		return nil
	})
	require.NoError(t, err)
	return ids[:len(rarities)]
}

// newSessionRequest builds a request that already passed SessionAuth.
func newSessionRequest(method, target string, body io.Reader, sessionID string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req.WithContext(middleware.WithSessionID(req.Context(), sessionID))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// withURLParam sets a chi route parameter as the router would.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(req.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
