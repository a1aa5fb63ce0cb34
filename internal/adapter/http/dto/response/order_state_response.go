package response

import (
	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/domain/order"
)

// StepGateResponse is the derived gate state for one wizard step.
type StepGateResponse struct {
	Step       int  `json:"step"`
	Active     bool `json:"active"`
	Completed  bool `json:"completed"`
	Locked     bool `json:"locked"`
	CanAdvance bool `json:"can_advance"`
}

// OrderStateResponse is the full read model: draft snapshot plus everything
// derived from it (gate and pricing, recomputed on every read).
type OrderStateResponse struct {
	OrderID string              `json:"order_id"`
	Draft   entities.OrderDraft `json:"draft"`
	Gate    []StepGateResponse  `json:"gate"`
	Totals  order.Totals        `json:"totals"`
}

func FromSession(s entities.OrderSession) OrderStateResponse {
	gate := make([]StepGateResponse, 0, entities.ReviewStep)
	for step := entities.FirstStep; step <= entities.ReviewStep; step++ {
		gate = append(gate, StepGateResponse{
			Step:       step,
			Active:     order.IsActive(s.Draft, step),
			Completed:  order.IsCompleted(s.Draft, step),
			Locked:     order.IsLocked(s.Draft, step),
			CanAdvance: order.CanAdvance(s.Draft, step),
		})
	}
	return OrderStateResponse{
		OrderID: s.ID,
		Draft:   s.Draft,
		Gate:    gate,
		Totals:  order.ComputeTotal(s.Draft),
	}
}
