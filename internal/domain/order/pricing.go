package order

import "fibra_vendas/internal/domain/entities"

// Totals is the derived pricing breakdown for the current draft.
//
// ActivationTax is a one-time charge shown separately; it is not part of the
// recurring monthly Total.
type Totals struct {
	PlanPrice     float64 `json:"plan_price"`
	ServicesTotal float64 `json:"services_total"`
	ActivationTax float64 `json:"activation_tax"`
	Total         float64 `json:"total"`
}

// ComputeTotal derives the pricing from the draft on every read. Nothing is
// cached in the draft, so a toggle can never leave a stale total behind.
//
// The stored ActivationTax may hold a leftover value from an earlier
// analysis; it is only surfaced while the status is APPROVED_WITH_TAX.
func ComputeTotal(d entities.OrderDraft) Totals {
	var t Totals
	if d.SelectedPlan != nil {
		t.PlanPrice = d.SelectedPlan.Price
	}
	for _, s := range d.AdditionalServices {
		t.ServicesTotal += s.Price
	}
	if d.AnalysisStatus == entities.AnalysisApprovedWithTax {
		t.ActivationTax = d.ActivationTax
	}
	t.Total = t.PlanPrice + t.ServicesTotal
	return t
}
