package order

import "fibra_vendas/internal/domain/entities"

// Reduce is the pure transition function of the order draft.
//
// It never mutates its input and never fails: unknown intents return the
// draft unchanged. Range checks on SetStep belong to the gate, applied by the
// step usecases before dispatch.
func Reduce(d entities.OrderDraft, intent Intent) entities.OrderDraft {
	out := d.Clone()

	switch in := intent.(type) {
	case SetStep:
		out.Step = in.Step

	case SetAddress:
		a := in.Address
		out.Address = &a
		out.ViabilityConfirmed = true

	case SetContactInfo:
		c := defaultCustomer(out.Customer)
		c.Celular = in.Celular
		out.Customer = &c

	case SetPlan:
		p := in.Plan
		out.SelectedPlan = &p
		// Apps are plan-scoped; changing plan invalidates the selection.
		out.SelectedApps = []entities.AppOption{}

	case ToggleApp:
		if out.HasApp(in.App.ID) {
			kept := out.SelectedApps[:0]
			for _, a := range out.SelectedApps {
				if a.ID != in.App.ID {
					kept = append(kept, a)
				}
			}
			out.SelectedApps = kept
			break
		}
		limit := 0
		if out.SelectedPlan != nil {
			limit = out.SelectedPlan.AppsLimit
		}
		// At the limit, adding is a silent no-op rather than an error.
		if len(out.SelectedApps) >= limit {
			break
		}
		out.SelectedApps = append(out.SelectedApps, in.App)

	case ToggleService:
		if out.HasService(in.Service.ID) {
			kept := out.AdditionalServices[:0]
			for _, s := range out.AdditionalServices {
				if s.ID != in.Service.ID {
					kept = append(kept, s)
				}
			}
			out.AdditionalServices = kept
			break
		}
		out.AdditionalServices = append(out.AdditionalServices, in.Service)

	case SetCustomer:
		c := defaultCustomer(out.Customer)
		c = in.Patch.Apply(c)
		out.Customer = &c

	case SetAnalysis:
		out.AnalysisStatus = in.Status
		out.ActivationTax = in.Tax

	case SetScheduling:
		s := in.Scheduling
		out.Scheduling = &s

	case SetPayment:
		out.PaymentMethod = in.Method
		out.DueDate = in.DueDate

	case SetDueDate:
		out.DueDate = in.DueDate
	}

	return out
}

// defaultCustomer returns the existing record or a fresh one with the
// documented defaults (empty strings, tipo pessoa F).
func defaultCustomer(c *entities.CustomerData) entities.CustomerData {
	if c != nil {
		return *c
	}
	return entities.CustomerData{TipoPessoa: entities.PersonFisica}
}
