package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/opening"
)

type MockCaseOpener struct {
	mock.Mock
}

func (m *MockCaseOpener) Open(ctx context.Context, sessionID, caseID string) (opening.OpenResult, error) {
	args := m.Called(ctx, sessionID, caseID)
	return args.Get(0).(opening.OpenResult), args.Error(1)
}

func (m *MockCaseOpener) Spin(ctx context.Context, sessionID, spinID string) (opening.SpinView, error) {
	args := m.Called(ctx, sessionID, spinID)
	return args.Get(0).(opening.SpinView), args.Error(1)
}

func (m *MockCaseOpener) PendingSpin(ctx context.Context, sessionID string) (opening.SpinView, bool) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(opening.SpinView), args.Bool(1)
}

func TestHandleOpenCase(t *testing.T) {
	revealAt := testTime.Add(5 * time.Second)

	tests := []struct {
		name           string
		setupMock      func(*MockCaseOpener)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			setupMock: func(m *MockCaseOpener) {
				m.On("Open", mock.Anything, "sess-1", "starter").Return(opening.OpenResult{
					SpinID:        "spin-1",
					CaseID:        "starter",
					Price:         1000,
					Balance:       44750,
					RevealAt:      revealAt,
					RevealAfterMs: 5000,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Insufficient funds",
			setupMock: func(m *MockCaseOpener) {
				m.On("Open", mock.Anything, "sess-1", "starter").
					Return(opening.OpenResult{}, fmt.Errorf("%w: need 1000, have 10", domain.ErrInsufficientFunds))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgNotEnoughMoneyError,
		},
		{
			name: "Spin already running",
			setupMock: func(m *MockCaseOpener) {
				m.On("Open", mock.Anything, "sess-1", "starter").Return(opening.OpenResult{}, domain.ErrSpinInProgress)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  ErrMsgSpinInProgressError,
		},
		{
			name: "Unknown case",
			setupMock: func(m *MockCaseOpener) {
				m.On("Open", mock.Anything, "sess-1", "starter").Return(opening.OpenResult{}, domain.ErrCaseNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  ErrMsgCaseNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCaseOpener{}
			tt.setupMock(svc)

			req := withURLParam(newSessionRequest(http.MethodPost, "/api/v1/cases/starter/open", nil, "sess-1"), "id", "starter")
			rec := httptest.NewRecorder()
			HandleOpenCase(svc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody[ErrorResponse](t, rec).Error)
			} else {
				result := decodeBody[opening.OpenResult](t, rec)
				assert.Equal(t, "spin-1", result.SpinID)
				assert.Equal(t, 44750, result.Balance)
				assert.NotContains(t, rec.Body.String(), `"item"`)
			}
			svc.AssertExpectations(t)
		})
	}

	t.Run("requires session", func(t *testing.T) {
		svc := &MockCaseOpener{}
		rec := httptest.NewRecorder()
		HandleOpenCase(svc)(rec, httptest.NewRequest(http.MethodPost, "/api/v1/cases/starter/open", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "Open", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleGetSpin(t *testing.T) {
	item := domain.NewInventoryItem("inst-1", "starter", testCases[0].Items[1], testTime)

	tests := []struct {
		name           string
		view           opening.SpinView
		err            error
		expectedStatus int
		expectItem     bool
	}{
		{
			name:           "spinning hides the item",
			view:           opening.SpinView{ID: "spin-1", CaseID: "starter", Status: opening.StatusSpinning},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "revealed shows the item",
			view:           opening.SpinView{ID: "spin-1", CaseID: "starter", Status: opening.StatusRevealed, Item: &item},
			expectedStatus: http.StatusOK,
			expectItem:     true,
		},
		{
			name:           "someone else's spin",
			err:            domain.ErrSpinNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCaseOpener{}
			svc.On("Spin", mock.Anything, "sess-1", "spin-1").Return(tt.view, tt.err)

			req := withURLParam(newSessionRequest(http.MethodGet, "/api/v1/spins/spin-1", nil, "sess-1"), "id", "spin-1")
			rec := httptest.NewRecorder()
			HandleGetSpin(svc)(rec, req)

			require.Equal(t, tt.expectedStatus, rec.Code)
			if tt.err != nil {
				return
			}
			view := decodeBody[opening.SpinView](t, rec)
			if tt.expectItem {
				require.NotNil(t, view.Item)
				assert.Equal(t, "AK-47 | Redline", view.Item.Name)
			} else {
				assert.Nil(t, view.Item)
			}
		})
	}
}

func TestHandlePendingSpin(t *testing.T) {
	svc := &MockCaseOpener{}
	svc.On("PendingSpin", mock.Anything, "busy").Return(opening.SpinView{ID: "spin-7", Status: opening.StatusSpinning}, true)
	svc.On("PendingSpin", mock.Anything, "idle").Return(opening.SpinView{}, false)

	rec := httptest.NewRecorder()
	HandlePendingSpin(svc)(rec, newSessionRequest(http.MethodGet, "/api/v1/spins/pending", nil, "busy"))
	resp := decodeBody[PendingSpinResponse](t, rec)
	assert.True(t, resp.Pending)
	require.NotNil(t, resp.Spin)
	assert.Equal(t, "spin-7", resp.Spin.ID)

	rec = httptest.NewRecorder()
	HandlePendingSpin(svc)(rec, newSessionRequest(http.MethodGet, "/api/v1/spins/pending", nil, "idle"))
	resp = decodeBody[PendingSpinResponse](t, rec)
	assert.False(t, resp.Pending)
	assert.Nil(t, resp.Spin)
}
