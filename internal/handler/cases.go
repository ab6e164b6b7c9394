package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/economy"
	"github.com/osse101/SkinTrade_Go/internal/logger"
	"github.com/osse101/SkinTrade_Go/internal/middleware"
)

// CaseLister reads the case registry
type CaseLister interface {
	List(ctx context.Context) []domain.Case
	Get(ctx context.Context, id string) (domain.Case, error)
}

// BalanceReader reads a session balance
type BalanceReader interface {
	Balance(ctx context.Context, sessionID string) (economy.Balance, error)
}

// CaseSummary is one tile of the case list. Affordable is set only for signed-in callers.
type CaseSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	Image      string `json:"image"`
	ItemCount  int    `json:"item_count"`
	Affordable *bool  `json:"affordable,omitempty"`
	Message    string `json:"message,omitempty"`
}

// CaseListResponse is the case list with the caller's balance when signed in
type CaseListResponse struct {
	Cases   []CaseSummary    `json:"cases"`
	Balance *economy.Balance `json:"balance,omitempty"`
}

// CaseDetail is a case with its drop table
type CaseDetail struct {
	domain.Case
	TotalChance float64 `json:"total_chance"`
	Affordable  *bool   `json:"affordable,omitempty"`
}

// callerBalance returns the balance of the optional session on the request.
func callerBalance(r *http.Request, balances BalanceReader) *economy.Balance {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok || balances == nil {
		return nil
	}
	b, err := balances.Balance(r.Context(), sessionID)
	if err != nil {
		logger.FromContext(r.Context()).Debug("Balance unavailable for case listing", "error", err)
		return nil
	}
	return &b
}

// HandleListCases lists the cases, marking which ones the caller can afford
// @Summary List cases
// @Description All cases. With a bearer token each case carries affordable and, when short, an insufficient funds message.
// @Tags cases
// @Produce json
// @Success 200 {object} CaseListResponse
// @Router /cases [get]
func HandleListCases(cases CaseLister, balances BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		balance := callerBalance(r, balances)
		list := cases.List(r.Context())

		resp := CaseListResponse{Cases: make([]CaseSummary, 0, len(list)), Balance: balance}
		for _, c := range list {
			summary := CaseSummary{
				ID:        c.ID,
				Name:      c.Name,
				Price:     c.Price,
				Image:     c.Image,
				ItemCount: len(c.Items),
			}
			if balance != nil {
				affordable := c.Affordable(balance.Balance)
				summary.Affordable = &affordable
				if !affordable {
					summary.Message = ErrMsgNotEnoughMoneyError
				}
			}
			resp.Cases = append(resp.Cases, summary)
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetCase returns a case with every item and its drop chance
// @Summary Get case
// @Tags cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} CaseDetail
// @Failure 404 {object} ErrorResponse
// @Router /cases/{id} [get]
func HandleGetCase(cases CaseLister, balances BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := cases.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, OpGetCase, err)
			return
		}

		detail := CaseDetail{Case: c, TotalChance: c.TotalChance()}
		if balance := callerBalance(r, balances); balance != nil {
			affordable := c.Affordable(balance.Balance)
			detail.Affordable = &affordable
		}
		respondJSON(w, http.StatusOK, detail)
	}
}
