package handler

import (
	"context"
	"net/http"

	"github.com/osse101/SkinTrade_Go/internal/profile"
)

// ProfileReader builds profile views
type ProfileReader interface {
	Get(ctx context.Context, sessionID string) (profile.View, error)
}

// HandleProfile returns the caller's profile, stats, level and achievements
// @Summary Profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} profile.View
// @Failure 401 {object} ErrorResponse
// @Router /profile [get]
func HandleProfile(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		view, err := svc.Get(r.Context(), sessionID)
		if err != nil {
			respondServiceError(w, r, OpProfile, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}
