package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/fitdash/fitdash/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// idle keep-alive connections of the test http clients
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

// newTestServer wires a full Server against a fake fitness API and
// returns it together with its router (CSRF protection is applied in
// Serve only, so form posts in tests need no token).
func newTestServer(t *testing.T, apiHandler http.Handler) (*Server, *mux.Router) {
	t.Helper()

	apiServer := httptest.NewServer(apiHandler)
	t.Cleanup(apiServer.Close)
	t.Cleanup(func() {
		http.DefaultTransport.(*http.Transport).CloseIdleConnections()
	})

	cfg := &config.Config{
		Environment: "development",
		APIBaseURL:  apiServer.URL,
		CSRFAuthKey: "test-csrf-key-32-bytes-long!!!!!",
	}

	server, err := NewServer(context.Background(), cfg)
	require.NoError(t, err)
	return server, server.routerSetup()
}
