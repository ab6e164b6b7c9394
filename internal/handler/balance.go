package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/economy"
	"github.com/osse101/SkinTrade_Go/internal/logger"
)

// TopUpLinker builds external payment links
type TopUpLinker interface {
	QuickAmounts() []int
	URL(amount int) (string, error)
	QRCode(amount, size int) ([]byte, error)
}

// TopUpRequest is the amount to pay in
type TopUpRequest struct {
	Amount int `json:"amount" validate:"required,gt=0,max=1000000"`
}

// TopUpResponse is the payment link for an amount
type TopUpResponse struct {
	Amount    int    `json:"amount"`
	Formatted string `json:"formatted"`
	URL       string `json:"url"`
}

// TopUpOptions lists the preset amounts
type TopUpOptions struct {
	QuickAmounts []int  `json:"quick_amounts"`
	Currency     string `json:"currency"`
}

// HandleBalance returns the caller's balance
// @Summary Balance
// @Tags balance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} economy.Balance
// @Failure 401 {object} ErrorResponse
// @Router /balance [get]
func HandleBalance(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		balance, err := svc.Balance(r.Context(), sessionID)
		if err != nil {
			respondServiceError(w, r, OpBalance, err)
			return
		}
		respondJSON(w, http.StatusOK, balance)
	}
}

// HandleTopUpOptions returns the quick top-up amounts
// @Summary Top-up presets
// @Tags balance
// @Produce json
// @Success 200 {object} TopUpOptions
// @Router /balance/topup [get]
func HandleTopUpOptions(topUp TopUpLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, TopUpOptions{
			QuickAmounts: topUp.QuickAmounts(),
			Currency:     domain.CurrencyCode,
		})
	}
}

// HandleTopUp returns the YooMoney quickpay link for an amount. The balance is not credited.
// @Summary Top-up link
// @Tags balance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TopUpRequest true "Amount"
// @Success 200 {object} TopUpResponse
// @Failure 400 {object} ErrorResponse
// @Router /balance/topup [post]
func HandleTopUp(topUp TopUpLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireSession(w, r); !ok {
			return
		}

		var req TopUpRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpTopUp); err != nil {
			return
		}

		link, err := topUp.URL(req.Amount)
		if err != nil {
			respondServiceError(w, r, OpTopUp, err)
			return
		}

		logger.FromContext(r.Context()).Info(economy.LogMsgTopUpLinked, "amount", req.Amount)
		respondJSON(w, http.StatusOK, TopUpResponse{
			Amount:    req.Amount,
			Formatted: economy.FormatAmount(req.Amount),
			URL:       link,
		})
	}
}

// HandleTopUpQR renders the top-up link as a PNG QR code
// @Summary Top-up QR code
// @Tags balance
// @Produce png
// @Security BearerAuth
// @Param amount query int true "Amount"
// @Param size query int false "Image size in pixels" default(256)
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Router /balance/topup/qr [get]
func HandleTopUpQR(topUp TopUpLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireSession(w, r); !ok {
			return
		}

		raw, ok := GetQueryParam(r, w, "amount")
		if !ok {
			return
		}
		amount, err := strconv.Atoi(raw)
		if err != nil {
			respondServiceError(w, r, OpTopUpQR, domain.ErrInvalidAmount)
			return
		}
		size, ok := GetIntQueryParam(r, w, "size", economy.DefaultQRSize)
		if !ok {
			return
		}

		png, err := topUp.QRCode(amount, size)
		if err != nil {
			respondServiceError(w, r, OpTopUpQR, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "private, max-age=300")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(png); err != nil {
			logger.FromContext(r.Context()).Warn(ErrMsgQRCodeFailed, "error", err)
		}
	}
}
