package submission

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/infrastructure/httpx"
	"fibra_vendas/internal/usecase/interfaces"
)

var ErrSubmissionNotConfigured = errors.New("submission backend not configured")

// HTTPGateway posts the completed order to the intake endpoint.
//
// This is the one facade operation where degrading to a fake success is
// forbidden: after the bounded retry, failure surfaces to the caller. The
// demo success path exists only behind the explicit SUBMISSION_MOCK switch.

type HTTPGateway struct {
	client   *http.Client
	url      string
	mockMode bool
	opts     httpx.Options
}

var _ interfaces.ISubmissionGateway = (*HTTPGateway)(nil)

// NewHTTPGateway reads SUBMISSION_URL and SUBMISSION_MOCK from the
// environment.
func NewHTTPGateway() *HTTPGateway {
	mock := isSubmissionMockEnabled()
	if mock {
		log.Printf("[submission][gateway] mock mode enabled")
	}
	return &HTTPGateway{
		client:   &http.Client{},
		url:      strings.TrimSpace(os.Getenv("SUBMISSION_URL")),
		mockMode: mock,
		opts: httpx.Options{
			Timeout:  8 * time.Second,
			Attempts: 2,
			Backoff:  time.Second,
		},
	}
}

func (g *HTTPGateway) Submit(ctx context.Context, payload entities.OrderSubmission) (interfaces.SubmissionResult, error) {
	if g.mockMode {
		log.Printf("[submission][gateway] mock submit order_id=%s", payload.OrderID)
		return interfaces.SubmissionResult{Success: true, Message: "Pedido realizado com sucesso (MOCK)"}, nil
	}
	if g.url == "" {
		return interfaces.SubmissionResult{}, ErrSubmissionNotConfigured
	}

	var res interfaces.SubmissionResult
	if err := httpx.DoJSON(ctx, g.client, http.MethodPost, g.url, nil, payload, &res, g.opts); err != nil {
		log.Printf("[submission][gateway] submit failed order_id=%s err=%v", payload.OrderID, err)
		return interfaces.SubmissionResult{}, err
	}
	log.Printf("[submission][gateway] submit accepted order_id=%s success=%t", payload.OrderID, res.Success)
	return res, nil
}

func isSubmissionMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SUBMISSION_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
