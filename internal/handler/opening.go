package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SkinTrade_Go/internal/opening"
)

// CaseOpener opens cases and reports spin status
type CaseOpener interface {
	Open(ctx context.Context, sessionID, caseID string) (opening.OpenResult, error)
	Spin(ctx context.Context, sessionID, spinID string) (opening.SpinView, error)
	PendingSpin(ctx context.Context, sessionID string) (opening.SpinView, bool)
}

// PendingSpinResponse tells a reconnecting client whether a spin is still running
type PendingSpinResponse struct {
	Pending bool              `json:"pending"`
	Spin    *opening.SpinView `json:"spin,omitempty"`
}

// HandleOpenCase charges the case price and starts a spin
// @Summary Open case
// @Description Debits the price and starts the roulette. The won item is hidden until the reveal; poll GET /spins/{id} or listen for case.revealed.
// @Tags cases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Case ID"
// @Success 201 {object} opening.OpenResult
// @Failure 400 {object} ErrorResponse "Insufficient funds"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "A spin is already running"
// @Router /cases/{id}/open [post]
func HandleOpenCase(svc CaseOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		result, err := svc.Open(r.Context(), sessionID, chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, OpOpenCase, err)
			return
		}
		respondJSON(w, http.StatusCreated, result)
	}
}

// HandleGetSpin returns the status of a spin; the item is present only after the reveal
// @Summary Spin status
// @Tags cases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spin ID"
// @Success 200 {object} opening.SpinView
// @Failure 404 {object} ErrorResponse
// @Router /spins/{id} [get]
func HandleGetSpin(svc CaseOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		view, err := svc.Spin(r.Context(), sessionID, chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, OpGetSpin, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandlePendingSpin reports the caller's running spin, if any
// @Summary Pending spin
// @Tags cases
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PendingSpinResponse
// @Router /spins/pending [get]
func HandlePendingSpin(svc CaseOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		view, pending := svc.PendingSpin(r.Context(), sessionID)
		resp := PendingSpinResponse{Pending: pending}
		if pending {
			resp.Spin = &view
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
