package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	openedBefore := testutil.ToFloat64(CasesOpened.WithLabelValues("metrics-case"))
	spentBefore := testutil.ToFloat64(MoneySpent)
	legendBefore := testutil.ToFloat64(ItemsWon.WithLabelValues(string(domain.RarityLegendary)))
	fallbackBefore := testutil.ToFloat64(FallbackDraws)
	soldBefore := testutil.ToFloat64(ItemsSold)
	earnedBefore := testutil.ToFloat64(MoneyEarned)

	require.NoError(t, bus.Publish(ctx, event.NewCaseOpenedEvent("s", "spin", "metrics-case", 250, time.Now())))
	require.NoError(t, bus.Publish(ctx, event.NewCaseRevealedEvent("s", "spin", "metrics-case",
		domain.InventoryItem{Rarity: domain.RarityLegendary}, true)))
	require.NoError(t, bus.Publish(ctx, event.NewItemSoldEvent("s", []string{"a", "b"}, 1250)))

	assert.Equal(t, openedBefore+1, testutil.ToFloat64(CasesOpened.WithLabelValues("metrics-case")))
	assert.Equal(t, spentBefore+250, testutil.ToFloat64(MoneySpent))
	assert.Equal(t, legendBefore+1, testutil.ToFloat64(ItemsWon.WithLabelValues(string(domain.RarityLegendary))))
	assert.Equal(t, fallbackBefore+1, testutil.ToFloat64(FallbackDraws))
	assert.Equal(t, soldBefore+2, testutil.ToFloat64(ItemsSold))
	assert.Equal(t, earnedBefore+1250, testutil.ToFloat64(MoneyEarned))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/cases/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/cases/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cases/42", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/cases/{id}", "418")))
	assert.Equal(t, 0.0, testutil.ToFloat64(HTTPRequestsInFlight))
}
