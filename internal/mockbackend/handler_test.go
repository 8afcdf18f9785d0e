package mockbackend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/bwdash/internal/client"
	"nathanbeddoewebdev/bwdash/internal/domain"
	"nathanbeddoewebdev/bwdash/internal/logging"
	"nathanbeddoewebdev/bwdash/internal/retry"
	"nathanbeddoewebdev/bwdash/internal/series"
)

func newBackend(t *testing.T, opts ...HandlerOption) (*httptest.Server, time.Time) {
	t.Helper()
	g, now := fixedGenerator()
	srv := httptest.NewServer(NewHandler(g, opts...))
	t.Cleanup(srv.Close)
	return srv, now
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/bandwidth", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandler_ServesClientEndToEnd(t *testing.T) {
	srv, now := newBackend(t)
	c := client.New(srv.URL, client.WithRetry(retry.Config{MaxAttempts: 1}))
	w := domain.Window{From: now.AddDate(0, 0, -1), To: now}

	resp, err := c.FetchSeries(context.Background(), w)
	if err != nil {
		t.Fatalf("FetchSeries error: %v", err)
	}
	points, err := series.Merge(resp, series.LabelDays)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if len(points) != resp.Len() || len(points) == 0 {
		t.Fatalf("unexpected point count %d", len(points))
	}

	maxima, err := c.FetchAggregate(context.Background(), w, domain.AggregateMax)
	if err != nil {
		t.Fatalf("FetchAggregate error: %v", err)
	}
	for _, p := range resp.CDN {
		if p.Value > maxima.CDN {
			t.Fatalf("sample %v exceeds reported maximum %v", p.Value, maxima.CDN)
		}
	}
}

func TestHandler_RejectsBadRequests(t *testing.T) {
	srv, _ := newBackend(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `nope`},
		{name: "missing to", body: `{"from":1}`},
		{name: "from after to", body: `{"from":2000,"to":1000}`},
		{name: "from equals to", body: `{"from":1000,"to":1000}`},
		{name: "unknown aggregate", body: `{"from":1,"to":2,"aggregate":"median"}`},
		{name: "unknown field", body: `{"from":1,"to":2,"bucket":"1h"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if resp := post(t, srv.URL, tt.body); resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	srv, _ := newBackend(t)

	resp, err := http.Get(srv.URL + "/bandwidth")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestHandler_RequiresToken(t *testing.T) {
	srv, now := newBackend(t, WithToken("s3cret"))
	w := domain.Window{From: now.Add(-time.Hour), To: now}

	anon := client.New(srv.URL, client.WithRetry(retry.Config{MaxAttempts: 1}))
	if _, err := anon.FetchSeries(context.Background(), w); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	authed := client.New(srv.URL, client.WithToken("s3cret"))
	if _, err := authed.FetchSeries(context.Background(), w); err != nil {
		t.Fatalf("authorized fetch failed: %v", err)
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	g, _ := fixedGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	done := make(chan error, 1)

	go func() {
		done <- Serve(ctx, "127.0.0.1:0", NewHandler(g), logging.Discard(), ready)
	}()

	addr := <-ready
	resp := post(t, "http://"+addr, `{"from":1,"to":2,"aggregate":"sum"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
