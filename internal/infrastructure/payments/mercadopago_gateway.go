package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"fibra_vendas/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges the one-time activation tax for orders approved
// with conditions. Mock mode approves locally without calling the provider.

type MercadoPagoGateway struct {
	client   payment.Client
	method   string
	mockMode bool
}

var _ interfaces.IActivationChargeGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	method := strings.TrimSpace(os.Getenv("ACTIVATION_PAYMENT_METHOD_ID"))
	if method == "" {
		method = "pix"
	}

	if isActivationChargeMockEnabled() {
		log.Printf("[activation][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, method: method}, nil
	}

	if accessToken == "" {
		log.Printf("[activation][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[activation][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[activation][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), method: method}, nil
}

func (g *MercadoPagoGateway) ChargeActivation(ctx context.Context, charge interfaces.ActivationCharge) (string, string, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[activation][gateway] mock charge order_id=%s amount=%.2f provider_payment_id=%s", charge.OrderID, charge.Amount, id)
		return id, "approved", nil
	}

	if g == nil || g.client == nil {
		log.Printf("[activation][gateway] gateway not configured")
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[activation][gateway] charge start order_id=%s amount=%.2f", charge.OrderID, charge.Amount)

	req := payment.Request{
		TransactionAmount: charge.Amount,
		Description:       charge.Description,
		PaymentMethodID:   g.method,
		ExternalReference: charge.OrderID,
		Payer:             &payment.PayerRequest{Email: charge.PayerEmail},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[activation][gateway] sdk create failed order_id=%s err=%v", charge.OrderID, err)
		return "", "", err
	}
	log.Printf("[activation][gateway] charge success order_id=%s provider_payment_id=%d provider_status=%s", charge.OrderID, resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, nil
}

func isActivationChargeMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
