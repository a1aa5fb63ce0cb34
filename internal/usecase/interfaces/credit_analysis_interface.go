package interfaces

import (
	"context"
	"errors"

	"fibra_vendas/internal/domain/entities"
)

// Contract errors every implementation must use, so callers can distinguish
// "service unavailable" from "backend never configured" without knowing the
// concrete gateway.
var (
	ErrCreditNotConfigured = errors.New("credit analysis backend not configured")
	ErrCreditUnavailable   = errors.New("credit analysis service unavailable")
)

// CreditAnalysisResult is the upstream answer, in the provider's vocabulary
// (status "APROVADO" means approved; valor_ativacao > 0 means approved with
// a one-time activation tax).
type CreditAnalysisResult struct {
	Status        string  `json:"status"`
	ValorAtivacao float64 `json:"valor_ativacao"`
	NomeCliente   string  `json:"nome_cliente"`
}

// Approved reports whether the provider approved the customer.
func (r CreditAnalysisResult) Approved() bool { return r.Status == "APROVADO" }

// AnalysisStatus maps the provider answer to the draft status.
func (r CreditAnalysisResult) AnalysisStatus() entities.AnalysisStatus {
	if !r.Approved() {
		return entities.AnalysisRejected
	}
	if r.ValorAtivacao > 0 {
		return entities.AnalysisApprovedWithTax
	}
	return entities.AnalysisApproved
}

// ICreditAnalysisGateway submits identity data for credit analysis.
//
// Implementations must validate document/phone before any network call and
// honor the strict/permissive mode split: strict surfaces configuration and
// availability errors, permissive degrades to a mock approval.

type ICreditAnalysisGateway interface {
	Analyze(ctx context.Context, tipo entities.PersonType, document, phone string) (CreditAnalysisResult, error)
}
