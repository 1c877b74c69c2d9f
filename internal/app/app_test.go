package app

import (
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/drstein77/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, ctx context.Context, source string) *Server {
	t.Helper()
	t.Setenv("DATABASE_URI", "")
	t.Setenv("PAGE_TEMPLATE", "")
	t.Setenv("FETCH_TIMEOUT", "")

	option := config.NewOptions()
	require.NoError(t, option.Parse(flag.NewFlagSet("test", flag.ContinueOnError),
		[]string{"-a", "127.0.0.1:0", "-l", "error", "-s", source}))

	return NewServer(ctx, option)
}

func serveAsync(server *Server) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		server.Serve()
	}()
	return done
}

func (server *Server) listening() bool {
	server.mu.Lock()
	defer server.mu.Unlock()
	return server.srv != nil
}

func TestServeStopsWhenCancelledDuringLoad(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	t.Cleanup(source.Close)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := newTestServer(t, ctx, source.URL)
	done := serveAsync(server)

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("catalog load never started")
	}

	cancel()
	server.Shutdown(5 * time.Second)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Serve kept running after shutdown during load")
	}
	assert.False(t, server.listening())
}

func TestServeShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := newTestServer(t, ctx, filepath.Join(t.TempDir(), "missing.json"))
	done := serveAsync(server)

	require.Eventually(t, server.listening, 5*time.Second, 10*time.Millisecond)

	cancel()
	server.Shutdown(5 * time.Second)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Serve kept running after shutdown")
	}
	assert.True(t, server.storage.Books().Fallback)
}

func TestShutdownBeforeServe(t *testing.T) {
	server := newTestServer(t, context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	server.Shutdown(time.Second)

	select {
	case <-serveAsync(server):
	case <-time.After(2 * time.Second):
		t.Fatal("Serve started listening after Shutdown")
	}
	assert.False(t, server.listening())
}
