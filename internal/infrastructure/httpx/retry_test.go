package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestDoJSON(t *testing.T) {
	t.Run("decodes 2xx body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"name":"ok"}`))
		}))
		defer srv.Close()

		var out struct {
			Name string `json:"name"`
		}
		err := DoJSON(context.Background(), srv.Client(), http.MethodGet, srv.URL, nil, nil, &out, Options{Attempts: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Name != "ok" {
			t.Fatalf("expected decoded body, got %+v", out)
		}
	})

	t.Run("sends body and headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer tok" {
				t.Errorf("missing auth header, got %q", r.Header.Get("Authorization"))
			}
			if r.Header.Get("Content-Type") != "application/json" {
				t.Errorf("missing content type, got %q", r.Header.Get("Content-Type"))
			}
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		body := map[string]string{"k": "v"}
		headers := map[string]string{"Authorization": "Bearer tok"}
		if err := DoJSON(context.Background(), srv.Client(), http.MethodPost, srv.URL, headers, body, nil, Options{Attempts: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("retries until success", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		err := DoJSON(context.Background(), srv.Client(), http.MethodGet, srv.URL, nil, nil, nil, Options{Attempts: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if atomic.LoadInt32(&calls) != 2 {
			t.Fatalf("expected 2 calls, got %d", calls)
		}
	})

	t.Run("returns last error when attempts are exhausted", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		err := DoJSON(context.Background(), srv.Client(), http.MethodGet, srv.URL, nil, nil, nil, Options{Attempts: 2})
		if err == nil {
			t.Fatal("expected error")
		}
		if atomic.LoadInt32(&calls) != 2 {
			t.Fatalf("expected 2 calls, got %d", calls)
		}
	})

	t.Run("zero attempts behaves as one", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		if err := DoJSON(context.Background(), srv.Client(), http.MethodGet, srv.URL, nil, nil, nil, Options{}); err == nil {
			t.Fatal("expected error")
		}
		if atomic.LoadInt32(&calls) != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})

	t.Run("cancelled context stops the retry loop", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := DoJSON(ctx, srv.Client(), http.MethodGet, srv.URL, nil, nil, nil, Options{Attempts: 3, Backoff: 0})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
