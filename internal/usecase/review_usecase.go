package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/domain/order"
	"fibra_vendas/internal/usecase/interfaces"
)

var (
	ErrTermsNotAccepted = errors.New("terms not accepted")
	ErrSubmitNotAllowed = errors.New("submit not allowed")
	ErrSubmissionFailed = errors.New("submission failed")
)

// IReviewUseCase is the step 5 controller: final gate check and submission.

type IReviewUseCase interface {
	Submit(ctx context.Context, orderID string, acceptTerms bool) (interfaces.SubmissionResult, error)
}

type ReviewUseCase struct {
	sessions   IOrderSessionUseCase
	submission interfaces.ISubmissionGateway
	charges    interfaces.IActivationChargeGateway
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

// NewReviewUseCase wires the submission gateway and an optional activation
// charge gateway (nil skips the charge).
func NewReviewUseCase(sessions IOrderSessionUseCase, submission interfaces.ISubmissionGateway, charges interfaces.IActivationChargeGateway) *ReviewUseCase {
	return &ReviewUseCase{sessions: sessions, submission: submission, charges: charges}
}

// Submit posts the complete draft snapshot exactly once per accepted-terms
// click. The session latch refuses re-entry while a submission is running;
// failure keeps the draft intact so the user can retry.
func (u *ReviewUseCase) Submit(ctx context.Context, orderID string, acceptTerms bool) (interfaces.SubmissionResult, error) {
	s, err := u.sessions.Get(ctx, orderID)
	if err != nil {
		return interfaces.SubmissionResult{}, err
	}
	if !acceptTerms {
		return interfaces.SubmissionResult{}, ErrTermsNotAccepted
	}
	if !order.CanSubmit(s.Draft, acceptTerms) {
		return interfaces.SubmissionResult{}, ErrSubmitNotAllowed
	}

	if !u.sessions.BeginSubmit(orderID) {
		return interfaces.SubmissionResult{}, ErrSubmissionInFlight
	}
	defer u.sessions.EndSubmit(orderID)

	payload := buildSubmission(s)

	u.chargeActivationTax(ctx, s)

	log.Printf("[review][usecase] submitting order_id=%s plan=%s total=%.2f", orderID, payload.Plan.Name, payload.MonthlyTotal)
	res, err := u.submission.Submit(ctx, payload)
	if err != nil {
		log.Printf("[review][usecase] submission failed order_id=%s err=%v", orderID, err)
		return interfaces.SubmissionResult{}, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	if !res.Success {
		log.Printf("[review][usecase] submission refused order_id=%s message=%s", orderID, res.Message)
		return res, ErrSubmissionFailed
	}

	// Submit success is the only non-explicit path that discards a draft.
	if err := u.sessions.Reset(ctx, orderID); err != nil {
		log.Printf("[review][usecase] session cleanup failed order_id=%s err=%v", orderID, err)
	}
	log.Printf("[review][usecase] submitted order_id=%s", orderID)
	return res, nil
}

// chargeActivationTax creates the one-time charge for card orders approved
// with conditions. Best effort: the intake result stays authoritative.
func (u *ReviewUseCase) chargeActivationTax(ctx context.Context, s entities.OrderSession) {
	d := s.Draft
	if u.charges == nil || d.AnalysisStatus != entities.AnalysisApprovedWithTax || d.PaymentMethod != entities.PaymentCreditCard {
		return
	}
	email := ""
	if d.Customer != nil {
		email = d.Customer.Email
	}
	id, status, err := u.charges.ChargeActivation(ctx, interfaces.ActivationCharge{
		OrderID:     s.ID,
		Amount:      d.ActivationTax,
		PayerEmail:  email,
		Description: fmt.Sprintf("Taxa de ativação pedido %s", s.ID),
	})
	if err != nil {
		log.Printf("[review][usecase] activation charge failed order_id=%s err=%v", s.ID, err)
		return
	}
	log.Printf("[review][usecase] activation charge created order_id=%s provider_payment_id=%s status=%s", s.ID, id, status)
}

func buildSubmission(s entities.OrderSession) entities.OrderSubmission {
	d := s.Draft
	totals := order.ComputeTotal(d)

	payload := entities.OrderSubmission{
		OrderID:       s.ID,
		Apps:          d.SelectedApps,
		Services:      d.AdditionalServices,
		Payment:       entities.PaymentChoice{Method: d.PaymentMethod, DueDate: d.DueDate},
		MonthlyTotal:  totals.Total,
		ActivationTax: totals.ActivationTax,
	}
	if d.Customer != nil {
		payload.Customer = *d.Customer
	}
	if d.Address != nil {
		payload.Address = *d.Address
	}
	if d.SelectedPlan != nil {
		payload.Plan = *d.SelectedPlan
	}
	if d.Scheduling != nil {
		payload.Scheduling = *d.Scheduling
	}
	return payload
}
