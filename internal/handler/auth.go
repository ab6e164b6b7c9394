package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/SkinTrade_Go/internal/auth"
	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/economy"
	"github.com/osse101/SkinTrade_Go/internal/logger"
	"github.com/osse101/SkinTrade_Go/internal/session"
)

// SessionManager creates and drops sessions
type SessionManager interface {
	Create(ctx context.Context, user domain.User) session.Session
	Delete(ctx context.Context, id string) bool
}

// TokenIssuer signs session tokens
type TokenIssuer interface {
	Issue(sessionID string) (string, time.Time, error)
}

// SteamLoginResponse carries the OpenID redirect
type SteamLoginResponse struct {
	URL string `json:"url"`
}

// LoginRequest is the optional body of the stub login
type LoginRequest struct {
	Name string `json:"name" validate:"omitempty,max=32,displayname"`
}

// LoginResponse hands out the session token
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	SessionID string          `json:"session_id"`
	User      domain.User     `json:"user"`
	Balance   economy.Balance `json:"balance"`
}

// HandleSteamLogin returns the Steam OpenID login URL
// @Summary Steam login URL
// @Description Builds the Steam OpenID redirect. The callback is not verified; use POST /auth/login to get a session.
// @Tags auth
// @Produce json
// @Success 200 {object} SteamLoginResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/steam [get]
func HandleSteamLogin(returnURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		link, err := auth.SteamLoginURL(returnURL)
		if err != nil {
			// a bad return URL is a deployment problem, not a client one
			logger.FromContext(r.Context()).Error("Steam return URL is invalid", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}
		respondJSON(w, http.StatusOK, SteamLoginResponse{URL: link})
	}
}

// HandleLogin creates a mock Steam user with a fresh session and returns its token
// @Summary Sign in
// @Description Creates a verified mock user with the starting balance and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest false "Display name"
// @Success 201 {object} LoginResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func HandleLogin(sessions SessionManager, tokens TokenIssuer, now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if r.ContentLength != 0 {
			if err := DecodeAndValidateRequest(r, w, &req, OpLogin); err != nil {
				return
			}
		}

		sess := sessions.Create(r.Context(), auth.MockUser(req.Name, now()))
		token, expiresAt, err := tokens.Issue(sess.ID)
		if err != nil {
			sessions.Delete(r.Context(), sess.ID)
			logger.FromContext(r.Context()).Error("Failed to issue session token", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgLoginFailed)
			return
		}

		logger.FromContext(r.Context()).Info("User signed in", "session_id", sess.ID, "name", sess.User.Name)

		respondJSON(w, http.StatusCreated, LoginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			SessionID: sess.ID,
			User:      sess.User,
			Balance:   economy.NewBalance(sess.Balance),
		})
	}
}

// HandleLogout drops the caller's session
// @Summary Sign out
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/logout [post]
func HandleLogout(sessions SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}
		sessions.Delete(r.Context(), sessionID)
		logger.FromContext(r.Context()).Info("User signed out")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedOut})
	}
}
