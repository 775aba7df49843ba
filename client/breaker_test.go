package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBreakerClient_PassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`hello`))
	}))
	defer server.Close()

	bc := NewBreakerClient(NewClient(WithMaxRetries(0)))
	body, err := bc.GetBody(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetBody failed: %v", err)
	}
	if string(body) != "hello" {
		t.Errorf("unexpected body: %q", body)
	}

	states := bc.State()
	if len(states) != 1 {
		t.Fatalf("expected one breaker, got %d", len(states))
	}
	for _, state := range states {
		if state != "closed" {
			t.Errorf("expected closed breaker, got %s", state)
		}
	}
}

func TestBreakerClient_ClientErrorsDoNotTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	bc := NewBreakerClient(NewClient(WithMaxRetries(0)))
	for i := 0; i < 10; i++ {
		_, err := bc.GetBody(context.Background(), server.URL)
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) || !httpErr.IsNotFound() {
			t.Fatalf("request %d: expected 404 HTTPError, got %v", i, err)
		}
	}

	for host, state := range bc.State() {
		if state != "closed" {
			t.Errorf("breaker for %s tripped on 404s", host)
		}
	}
}

func TestBreakerClient_TripsOnServerErrors(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	bc := NewBreakerClient(NewClient(WithMaxRetries(0)))

	// Trips after 5 consecutive failures
	for i := 0; i < 5; i++ {
		if _, err := bc.GetBody(context.Background(), server.URL); err == nil {
			t.Fatalf("request %d: expected error", i)
		}
	}

	seen := requests
	_, err := bc.GetBody(context.Background(), server.URL)
	if !errors.Is(err, ErrUpstreamDown) {
		t.Fatalf("expected ErrUpstreamDown from open breaker, got %v", err)
	}
	if requests != seen {
		t.Errorf("open breaker must not hit upstream, got %d extra requests", requests-seen)
	}

	for host, state := range bc.State() {
		if state != "open" {
			t.Errorf("expected open breaker for %s, got %s", host, state)
		}
	}
}
