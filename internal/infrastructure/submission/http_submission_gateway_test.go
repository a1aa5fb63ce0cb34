package submission

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/infrastructure/httpx"
)

func testGateway(srv *httptest.Server) *HTTPGateway {
	g := &HTTPGateway{
		client: http.DefaultClient,
		opts:   httpx.Options{Timeout: time.Second, Attempts: 2},
	}
	if srv != nil {
		g.client = srv.Client()
		g.url = srv.URL
	}
	return g
}

func samplePayload() entities.OrderSubmission {
	return entities.OrderSubmission{
		OrderID:      "id-1",
		Plan:         entities.Plan{ID: 287, Name: "TURBO", Price: 119.90},
		MonthlyTotal: 119.90,
	}
}

func TestHTTPGateway_Submit(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		_, err := testGateway(nil).Submit(context.Background(), samplePayload())
		if !errors.Is(err, ErrSubmissionNotConfigured) {
			t.Fatalf("expected ErrSubmissionNotConfigured, got %v", err)
		}
	})

	t.Run("mock mode succeeds without a request", func(t *testing.T) {
		g := testGateway(nil)
		g.mockMode = true

		res, err := g.Submit(context.Background(), samplePayload())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.Message != "Pedido realizado com sucesso (MOCK)" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("posts the full payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			var got entities.OrderSubmission
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("decode payload: %v", err)
			}
			if got.OrderID != "id-1" || got.Plan.Name != "TURBO" {
				t.Errorf("unexpected payload %+v", got)
			}
			w.Write([]byte(`{"success":true,"message":"Pedido realizado com sucesso"}`))
		}))
		defer srv.Close()

		res, err := testGateway(srv).Submit(context.Background(), samplePayload())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("retries once then succeeds", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{"success":true,"message":"ok"}`))
		}))
		defer srv.Close()

		res, err := testGateway(srv).Submit(context.Background(), samplePayload())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || atomic.LoadInt32(&calls) != 2 {
			t.Fatalf("expected success on second attempt, res=%+v calls=%d", res, calls)
		}
	})

	t.Run("hard error after every attempt fails", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := testGateway(srv).Submit(context.Background(), samplePayload())
		if err == nil {
			t.Fatal("expected error")
		}
		if atomic.LoadInt32(&calls) != 2 {
			t.Fatalf("expected 2 attempts, got %d", calls)
		}
	})
}
