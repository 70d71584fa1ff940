// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

// mockHTTPServer is a test double for the HTTPServer interface.
type mockHTTPServer struct {
	listenAndServeErr   error
	shutdownErr         error
	listenAndServeCount atomic.Int32
	shutdownCount       atomic.Int32
	stopCh              chan struct{}
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{stopCh: make(chan struct{})}
}

func (m *mockHTTPServer) ListenAndServe() error {
	m.listenAndServeCount.Add(1)
	if m.listenAndServeErr != nil {
		return m.listenAndServeErr
	}
	<-m.stopCh
	return http.ErrServerClosed
}

func (m *mockHTTPServer) Shutdown(_ context.Context) error {
	m.shutdownCount.Add(1)
	close(m.stopCh)
	return m.shutdownErr
}

func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	t.Parallel()

	mock := newMockHTTPServer()
	svc := NewHTTPServerService(mock, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	// Give the server goroutine a moment to start, then shut down.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after context cancellation")
	}

	if mock.shutdownCount.Load() != 1 {
		t.Errorf("Shutdown called %d times, want 1", mock.shutdownCount.Load())
	}
}

func TestHTTPServerService_StartupFailure(t *testing.T) {
	t.Parallel()

	startErr := errors.New("address already in use")
	mock := newMockHTTPServer()
	mock.listenAndServeErr = startErr
	svc := NewHTTPServerService(mock, 5*time.Second)

	err := svc.Serve(context.Background())
	if !errors.Is(err, startErr) {
		t.Errorf("Serve returned %v, want wrapped %v", err, startErr)
	}
}

func TestHTTPServerService_String(t *testing.T) {
	t.Parallel()

	svc := NewHTTPServerService(newMockHTTPServer(), time.Second)
	if svc.String() != "http-server" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestNewHTTPServerService_DefaultTimeout(t *testing.T) {
	t.Parallel()

	svc := NewHTTPServerService(newMockHTTPServer(), 0)
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("shutdownTimeout = %s, want 10s default", svc.shutdownTimeout)
	}
}
