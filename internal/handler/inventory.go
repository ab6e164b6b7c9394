package handler

import (
	"net/http"

	"github.com/osse101/SkinTrade_Go/internal/economy"
)

// SelectionRequest names inventory items by instance ID
type SelectionRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=500,dive,required,uuid"`
}

// HandleInventory lists the caller's won items
// @Summary Inventory
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} economy.Inventory
// @Failure 401 {object} ErrorResponse
// @Router /inventory [get]
func HandleInventory(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		inv, err := svc.Inventory(r.Context(), sessionID)
		if err != nil {
			respondServiceError(w, r, OpInventory, err)
			return
		}
		respondJSON(w, http.StatusOK, inv)
	}
}

// HandleQuote returns what a selection would sell for without selling it
// @Summary Quote sale
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SelectionRequest true "Selected items"
// @Success 200 {object} economy.Quote
// @Failure 400 {object} ErrorResponse
// @Router /inventory/quote [post]
func HandleQuote(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req SelectionRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpQuote); err != nil {
			return
		}

		quote, err := svc.Quote(r.Context(), sessionID, req.IDs)
		if err != nil {
			respondServiceError(w, r, OpQuote, err)
			return
		}
		respondJSON(w, http.StatusOK, quote)
	}
}

// HandleSell sells the selected items and credits their value
// @Summary Sell items
// @Description Removes exactly the selected items and credits the sum of their sale values. Fails without changes if any item is missing.
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SelectionRequest true "Selected items"
// @Success 200 {object} economy.Sale
// @Failure 400 {object} ErrorResponse
// @Router /inventory/sell [post]
func HandleSell(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req SelectionRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpSell); err != nil {
			return
		}

		sale, err := svc.Sell(r.Context(), sessionID, req.IDs)
		if err != nil {
			respondServiceError(w, r, OpSell, err)
			return
		}
		respondJSON(w, http.StatusOK, sale)
	}
}

// HandleSellAll sells the whole inventory
// @Summary Sell all items
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} economy.Sale
// @Failure 400 {object} ErrorResponse "Inventory is empty"
// @Router /inventory/sell-all [post]
func HandleSellAll(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		sale, err := svc.SellAll(r.Context(), sessionID)
		if err != nil {
			respondServiceError(w, r, OpSellAll, err)
			return
		}
		respondJSON(w, http.StatusOK, sale)
	}
}
