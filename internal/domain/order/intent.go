package order

import "fibra_vendas/internal/domain/entities"

// Intent is a tagged mutation request applied to the draft by Reduce.
//
// Every intent is a plain serializable value; logging the tag per dispatch
// yields a complete audit trail of the session, and tests can assert
// Reduce(draft, intent) == expected with no side effects.

type Intent interface {
	// Tag identifies the intent in dispatch logs.
	Tag() string
}

type SetStep struct {
	Step int `json:"step"`
}

type SetAddress struct {
	Address entities.Address `json:"address"`
}

type SetContactInfo struct {
	Celular string `json:"celular"`
}

type SetPlan struct {
	Plan entities.Plan `json:"plan"`
}

type ToggleApp struct {
	App entities.AppOption `json:"app"`
}

type ToggleService struct {
	Service entities.AdditionalService `json:"service"`
}

type SetCustomer struct {
	Patch entities.CustomerPatch `json:"patch"`
}

type SetAnalysis struct {
	Status entities.AnalysisStatus `json:"status"`
	Tax    float64                 `json:"tax"`
}

type SetScheduling struct {
	Scheduling entities.Scheduling `json:"scheduling"`
}

type SetPayment struct {
	Method  entities.PaymentMethod `json:"method"`
	DueDate string                 `json:"due_date"`
}

type SetDueDate struct {
	DueDate string `json:"due_date"`
}

func (SetStep) Tag() string        { return "SET_STEP" }
func (SetAddress) Tag() string     { return "SET_ADDRESS" }
func (SetContactInfo) Tag() string { return "SET_CONTACT_INFO" }
func (SetPlan) Tag() string        { return "SET_PLAN" }
func (ToggleApp) Tag() string      { return "TOGGLE_APP" }
func (ToggleService) Tag() string  { return "TOGGLE_SERVICE" }
func (SetCustomer) Tag() string    { return "SET_CUSTOMER" }
func (SetAnalysis) Tag() string    { return "SET_ANALYSIS" }
func (SetScheduling) Tag() string  { return "SET_SCHEDULING" }
func (SetPayment) Tag() string     { return "SET_PAYMENT" }
func (SetDueDate) Tag() string     { return "SET_DUE_DATE" }
