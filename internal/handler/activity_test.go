package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinTrade_Go/internal/event"
	"github.com/osse101/SkinTrade_Go/internal/eventlog"
)

func newActivityService(t *testing.T) (eventlog.Service, *event.MemoryBus) {
	t.Helper()
	bus := event.NewMemoryBus()
	svc := eventlog.NewService(eventlog.NewMemoryRepository(10, nil))
	require.NoError(t, svc.Subscribe(bus))
	return svc, bus
}

func TestHandleActivity(t *testing.T) {
	svc, bus := newActivityService(t)
	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewCaseOpenedEvent("sess-1", "spin-1", "starter", 1000, time.Now())))
	require.NoError(t, bus.Publish(ctx, event.NewBalanceChangedEvent("sess-1", 44750, -1000, "case_open")))
	require.NoError(t, bus.Publish(ctx, event.NewBalanceChangedEvent("sess-2", 10, 10, "top_up")))

	tests := []struct {
		name      string
		target    string
		wantCode  int
		wantCount int
		wantFirst string
	}{
		{"all", "/api/v1/activity", http.StatusOK, 2, string(event.BalanceChanged)},
		{"by type", "/api/v1/activity?type=case.opened", http.StatusOK, 1, string(event.CaseOpened)},
		{"limited", "/api/v1/activity?limit=1", http.StatusOK, 1, string(event.BalanceChanged)},
		{"unknown type", "/api/v1/activity?type=bogus", http.StatusBadRequest, 0, ""},
		{"bad limit", "/api/v1/activity?limit=ten", http.StatusBadRequest, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleActivity(svc)(rec, newSessionRequest(http.MethodGet, tt.target, nil, "sess-1"))

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			resp := decodeBody[ActivityResponse](t, rec)
			assert.Equal(t, tt.wantCount, resp.Count)
			require.Len(t, resp.Events, tt.wantCount)
			assert.Equal(t, tt.wantFirst, resp.Events[0].EventType)
		})
	}
}

func TestHandleActivity_RequiresSession(t *testing.T) {
	svc, _ := newActivityService(t)
	rec := httptest.NewRecorder()
	HandleActivity(svc)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/activity", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
