package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/osse101/SkinTrade_Go/internal/event"
	"github.com/osse101/SkinTrade_Go/internal/eventlog"
)

// ActivityReader returns a session's recorded events
type ActivityReader interface {
	History(ctx context.Context, sessionID, eventType string, limit int) ([]eventlog.Entry, error)
}

// ActivityResponse is the caller's recent activity, newest first
type ActivityResponse struct {
	Events []eventlog.Entry `json:"events"`
	Count  int              `json:"count"`
}

// HandleActivity returns the caller's recent case openings, reveals, sales and balance changes
// @Summary Recent activity
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param type query string false "Event type filter"
// @Param limit query int false "Maximum entries"
// @Success 200 {object} ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /activity [get]
func HandleActivity(svc ActivityReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		eventType := GetOptionalQueryParam(r, "type", "")
		if eventType != "" && !isKnownEventType(eventType) {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "type"))
			return
		}
		limit, ok := GetIntQueryParam(r, w, "limit", eventlog.DefaultHistoryLimit)
		if !ok {
			return
		}

		entries, err := svc.History(r.Context(), sessionID, eventType, limit)
		if err != nil {
			respondServiceError(w, r, OpActivity, err)
			return
		}
		respondJSON(w, http.StatusOK, ActivityResponse{Events: entries, Count: len(entries)})
	}
}

func isKnownEventType(t string) bool {
	for _, known := range event.AllTypes {
		if string(known) == t {
			return true
		}
	}
	return false
}
