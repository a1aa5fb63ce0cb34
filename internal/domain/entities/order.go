package entities

// AnalysisStatus is the credit-analysis outcome recorded in the draft.
//
// The empty value means the analysis has not run yet.

type AnalysisStatus string

const (
	AnalysisNone            AnalysisStatus = ""
	AnalysisPending         AnalysisStatus = "PENDING"
	AnalysisApproved        AnalysisStatus = "APPROVED"
	AnalysisRejected        AnalysisStatus = "REJECTED"
	AnalysisApprovedWithTax AnalysisStatus = "APPROVED_WITH_TAX"
)

// Approved reports whether the status allows the flow to continue past step 3.
func (s AnalysisStatus) Approved() bool {
	return s == AnalysisApproved || s == AnalysisApprovedWithTax
}

type PaymentMethod string

const (
	PaymentNone       PaymentMethod = ""
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentBoleto     PaymentMethod = "boleto"
)

// Scheduling is the installation appointment picked in step 4.
type Scheduling struct {
	Date      string `json:"date"`
	TimeID    string `json:"time_id"`
	TimeLabel string `json:"time_label"`
}

const (
	FirstStep      = 1
	ReviewStep     = 5
	DefaultDueDate = "10"
)

// OrderDraft is the single order-in-progress aggregate for one capture
// session. It is exclusively owned by the session store: every mutation goes
// through the transition function, all other components read snapshots.
//
// Step tracks the active wizard step (1..5). SelectedApps keeps insertion
// order but has set semantics by app ID, bounded by SelectedPlan.AppsLimit.
// ActivationTax is only meaningful while AnalysisStatus is APPROVED_WITH_TAX.
type OrderDraft struct {
	Step               int                 `json:"step"`
	ViabilityConfirmed bool                `json:"viability_confirmed"`
	Address            *Address            `json:"address"`
	SelectedPlan       *Plan               `json:"selected_plan"`
	SelectedApps       []AppOption         `json:"selected_apps"`
	AdditionalServices []AdditionalService `json:"additional_services"`
	Customer           *CustomerData       `json:"customer"`
	AnalysisStatus     AnalysisStatus      `json:"analysis_status"`
	ActivationTax      float64             `json:"activation_tax"`
	Scheduling         *Scheduling         `json:"scheduling"`
	PaymentMethod      PaymentMethod       `json:"payment_method"`
	DueDate            string              `json:"due_date"`
}

// NewOrderDraft returns the defaults every capture session starts from.
func NewOrderDraft() OrderDraft {
	return OrderDraft{
		Step:               FirstStep,
		SelectedApps:       []AppOption{},
		AdditionalServices: []AdditionalService{},
		DueDate:            DefaultDueDate,
	}
}

// Clone returns a deep copy, so snapshots handed out of the store can never
// alias the owned draft.
func (d OrderDraft) Clone() OrderDraft {
	out := d
	if d.Address != nil {
		a := *d.Address
		out.Address = &a
	}
	if d.SelectedPlan != nil {
		p := *d.SelectedPlan
		p.Features = append([]string(nil), d.SelectedPlan.Features...)
		out.SelectedPlan = &p
	}
	out.SelectedApps = append([]AppOption{}, d.SelectedApps...)
	out.AdditionalServices = append([]AdditionalService{}, d.AdditionalServices...)
	if d.Customer != nil {
		c := *d.Customer
		out.Customer = &c
	}
	if d.Scheduling != nil {
		s := *d.Scheduling
		out.Scheduling = &s
	}
	return out
}

// HasApp reports whether the app is currently selected.
func (d OrderDraft) HasApp(appID string) bool {
	for _, a := range d.SelectedApps {
		if a.ID == appID {
			return true
		}
	}
	return false
}

// HasService reports whether the additional service is currently selected.
func (d OrderDraft) HasService(serviceID string) bool {
	for _, s := range d.AdditionalServices {
		if s.ID == serviceID {
			return true
		}
	}
	return false
}
