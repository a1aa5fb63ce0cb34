package order

import "fibra_vendas/internal/domain/entities"

// Step gate: which wizard step is active, completed or locked, and whether
// forward progress from each step is allowed.
//
// Gate state is purely derived from draft.Step by comparison, so a completed
// step can be re-activated (edit a previous step) without clearing anything
// captured in later steps. The only cascading reset in the flow is SetPlan,
// inside its own step.

const (
	// MinCelularLen is the masked length of a complete (DD) NNNNN-NNNN phone.
	MinCelularLen = 14
)

func IsActive(d entities.OrderDraft, step int) bool    { return step == d.Step }
func IsCompleted(d entities.OrderDraft, step int) bool { return step < d.Step }
func IsLocked(d entities.OrderDraft, step int) bool    { return step > d.Step }

// CanAdvance reports whether the draft satisfies the advance precondition of
// the given step. Step usecases call this before dispatching SetStep(step+1);
// the reducer itself never range-checks.
func CanAdvance(d entities.OrderDraft, step int) bool {
	switch step {
	case 1:
		return d.Customer != nil && len(d.Customer.Celular) >= MinCelularLen && d.ViabilityConfirmed
	case 2:
		return d.SelectedPlan != nil && len(d.SelectedApps) == d.SelectedPlan.AppsLimit
	case 3:
		return d.AnalysisStatus.Approved()
	case 4:
		return d.Customer != nil &&
			d.Customer.Nome != "" &&
			d.Customer.Email != "" &&
			d.Customer.DataNascimento != "" &&
			d.Customer.Telefone != "" &&
			d.Scheduling != nil &&
			d.Scheduling.Date != "" &&
			d.Scheduling.TimeID != "" &&
			d.PaymentMethod != entities.PaymentNone
	default:
		return false
	}
}

// CanSetStep validates a SetStep request against the gate: rewinding to any
// already-reached step is always allowed; moving forward is allowed one step
// at a time and only when the current step's precondition holds.
func CanSetStep(d entities.OrderDraft, target int) bool {
	if target < entities.FirstStep || target > entities.ReviewStep {
		return false
	}
	if target <= d.Step {
		return true
	}
	return target == d.Step+1 && CanAdvance(d, d.Step)
}

// CanSubmit is the final gate: the review step must be active and the terms
// accepted before submitOrder may be invoked.
func CanSubmit(d entities.OrderDraft, acceptedTerms bool) bool {
	return d.Step == entities.ReviewStep && acceptedTerms && CanAdvance(d, 4)
}
