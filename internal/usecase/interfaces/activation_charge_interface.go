package interfaces

import "context"

// ActivationCharge describes the one-time activation tax charged when the
// credit analysis approved with conditions and the order pays by card.
type ActivationCharge struct {
	OrderID     string
	Amount      float64
	PayerEmail  string
	Description string
}

// IActivationChargeGateway creates the one-time charge with the payment
// provider. The charge is best-effort during submission; the order intake
// result stays authoritative.

type IActivationChargeGateway interface {
	ChargeActivation(ctx context.Context, charge ActivationCharge) (providerPaymentID string, providerStatus string, err error)
}
