package request

// Step-navigation and step 2/3/5 payloads.

type SetStepRequest struct {
	Step int `json:"step" binding:"required,min=1,max=5"`
}

type SelectPlanRequest struct {
	PlanID int `json:"plan_id" binding:"required"`
}

// AnalysisRequest carries identity data for the credit check. The contact
// phone is not accepted here: the phone captured in step 1 is used, so the
// analysis always runs against the number the customer confirmed.
type AnalysisRequest struct {
	TipoPessoa string `json:"tipo_pessoa" binding:"omitempty,oneof=F J"`
	CpfCnpj    string `json:"cpf_cnpj" binding:"required"`
}

type SchedulingRequest struct {
	Date   string `json:"date" binding:"required"`
	TimeID string `json:"time_id" binding:"required"`
}

type PaymentRequest struct {
	Method  string `json:"method" binding:"required,oneof=credit_card boleto"`
	DueDate string `json:"due_date"`
}

type DueDateRequest struct {
	DueDate string `json:"due_date" binding:"required"`
}

type SubmitRequest struct {
	AcceptTerms bool `json:"accept_terms"`
}
