package handlers

import (
	"errors"
	"net/http"

	"fibra_vendas/internal/domain/validation"
	"fibra_vendas/internal/usecase"
	"fibra_vendas/internal/usecase/interfaces"
	"fibra_vendas/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// mapOrderError translates usecase/domain sentinel errors into the stable
// client-facing envelope. Anything unknown becomes an opaque internal error;
// provider detail never reaches the client.
func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderSessionNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStepLocked):
		return pkg.NewDomainErrorSimple("STEP_LOCKED", "Step is not reachable yet", http.StatusConflict)

	case errors.Is(err, validation.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Invalid contact phone", http.StatusBadRequest)
	case errors.Is(err, validation.ErrInvalidDocument):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT", "Invalid CPF/CNPJ", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncompleteAddress):
		return pkg.NewDomainErrorSimple("INCOMPLETE_ADDRESS", "Address is incomplete", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFeasible):
		return pkg.NewDomainErrorSimple("NOT_FEASIBLE", "Address is outside the coverage area", http.StatusUnprocessableEntity)

	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppNotFound):
		return pkg.NewDomainErrorSimple("APP_NOT_FOUND", "App not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Additional service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSlotNotFound):
		return pkg.NewDomainErrorSimple("SLOT_NOT_FOUND", "Installation slot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanStepIncomplete):
		return pkg.NewDomainErrorSimple("PLAN_SELECTION_INCOMPLETE", "Select a plan and exactly the included apps", http.StatusConflict)

	case errors.Is(err, usecase.ErrMissingContactPhone):
		return pkg.NewDomainErrorSimple("MISSING_CONTACT_PHONE", "Contact phone was not captured in step 1", http.StatusConflict)
	case errors.Is(err, usecase.ErrAnalysisRejected):
		return pkg.NewDomainErrorSimple("ANALYSIS_REJECTED", "Credit analysis was not approved", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrCreditNotConfigured):
		return pkg.NewDomainErrorSimple("CREDIT_NOT_CONFIGURED", "Credit analysis backend is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrCreditUnavailable):
		return pkg.NewDomainErrorSimple("CREDIT_UNAVAILABLE", "Credit analysis is temporarily unavailable", http.StatusServiceUnavailable)

	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Invalid payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDueDate):
		return pkg.NewDomainErrorSimple("INVALID_DUE_DATE", "Invalid billing due date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractStepIncomplete):
		return pkg.NewDomainErrorSimple("CONTRACT_DATA_INCOMPLETE", "Contract data is incomplete", http.StatusConflict)

	case errors.Is(err, usecase.ErrTermsNotAccepted):
		return pkg.NewDomainErrorSimple("TERMS_NOT_ACCEPTED", "Terms must be accepted before submitting", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmitNotAllowed):
		return pkg.NewDomainErrorSimple("SUBMIT_NOT_ALLOWED", "Order is not ready for submission", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "A submission is already being processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionFailed):
		return pkg.NewDomainErrorSimple("SUBMISSION_FAILED", "Order submission failed, try again", http.StatusBadGateway)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
