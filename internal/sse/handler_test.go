package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSession(id string) SessionResolver {
	return func(*http.Request) (string, bool) { return id, id != "" }
}

func TestHandler_RequiresSession(t *testing.T) {
	hub := NewHub()
	rec := httptest.NewRecorder()
	Handler(hub, fixedSession(""))(rec, httptest.NewRequest(http.MethodGet, "/events", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_StreamsSessionEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub, fixedSession("s1")))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=case.revealed", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEventType := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
		}
	}

	assert.Equal(t, EventTypeConnected, readEventType())
	waitForClients(t, hub, 1)

	hub.Broadcast("s2", "case.revealed", nil)
	hub.Broadcast("s1", "case.opened", nil)
	hub.Broadcast("s1", "case.revealed", map[string]string{"spin_id": "x"})

	assert.Equal(t, "case.revealed", readEventType())
}
