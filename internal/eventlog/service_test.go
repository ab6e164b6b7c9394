package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinTrade_Go/internal/event"
)

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func TestService_Subscribe(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	mockBus := new(MockEventBus)

	for _, et := range event.AllTypes {
		mockBus.On("Subscribe", et, mock.Anything).Return()
	}

	err := service.Subscribe(mockBus)
	assert.NoError(t, err)
	mockBus.AssertExpectations(t)
}

func TestService_HandleEvent(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)
	ctx := context.Background()

	evt := event.NewItemSoldEvent("sess-1", []string{"a", "b"}, 1200)
	mockRepo.On("LogEvent", ctx, "sess-1", string(event.ItemSold), evt.Payload).Return(nil)

	err := svc.handleEvent(ctx, evt)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_SkipsGlobalEvents(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)

	err := svc.handleEvent(context.Background(), event.Event{Type: event.ItemSold, Payload: "not scoped"})
	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "LogEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_HandleEvent_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)
	ctx := context.Background()

	evt := event.NewBalanceChangedEvent("sess-1", 500, -500, "case_open")
	mockRepo.On("LogEvent", ctx, "sess-1", string(event.BalanceChanged), evt.Payload).Return(errors.New("full"))

	err := svc.handleEvent(ctx, evt)
	assert.Error(t, err)
}

func TestService_History_ClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, DefaultHistoryLimit},
		{"negative", -3, DefaultHistoryLimit},
		{"within range", 10, 10},
		{"too large", MaxHistoryLimit + 1, MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo)
			ctx := context.Background()

			want := Filter{SessionID: "sess-1", EventType: "item.sold", Limit: tt.want}
			mockRepo.On("GetEvents", ctx, want).Return([]Entry{}, nil)

			_, err := service.History(ctx, "sess-1", "item.sold", tt.limit)
			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_ThroughBus(t *testing.T) {
	bus := event.NewMemoryBus()
	service := NewService(NewMemoryRepository(10, nil))
	require.NoError(t, service.Subscribe(bus))
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewCaseOpenedEvent("sess-1", "spin-1", "starter", 1000, time.Now())))
	require.NoError(t, bus.Publish(ctx, event.NewBalanceChangedEvent("sess-1", 44750, -1000, "case_open")))
	require.NoError(t, bus.Publish(ctx, event.NewBalanceChangedEvent("sess-2", 100, 100, "top_up")))

	history, err := service.History(ctx, "sess-1", "", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, string(event.BalanceChanged), history[0].EventType)
	assert.Equal(t, string(event.CaseOpened), history[1].EventType)

	service.Forget(ctx, "sess-1")
	history, err = service.History(ctx, "sess-1", "", 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestService_CleanupOldEvents(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CleanupOldEvents", ctx, time.Hour).Return(int64(5), nil)

	count, err := service.CleanupOldEvents(ctx, time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	mockRepo.AssertExpectations(t)
}
