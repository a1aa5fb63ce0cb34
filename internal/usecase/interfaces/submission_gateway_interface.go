package interfaces

import (
	"context"

	"fibra_vendas/internal/domain/entities"
)

// SubmissionResult is the intake provider's answer to a completed order.
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ISubmissionGateway posts the complete order snapshot.
//
// Unlike the read-side gateways, submission failure must surface to the
// caller as a hard error; a false success here is unacceptable.

type ISubmissionGateway interface {
	Submit(ctx context.Context, payload entities.OrderSubmission) (SubmissionResult, error)
}
