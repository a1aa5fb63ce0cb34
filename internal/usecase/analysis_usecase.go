package usecase

import (
	"context"
	"errors"
	"log"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/domain/order"
	"fibra_vendas/internal/usecase/interfaces"
)

var (
	ErrMissingContactPhone = errors.New("missing contact phone")
	ErrAnalysisRejected    = errors.New("credit analysis rejected")
)

// IAnalysisUseCase is the step 3 controller: identity and credit check.

type IAnalysisUseCase interface {
	Analyze(ctx context.Context, orderID string, tipo entities.PersonType, document string) (entities.OrderSession, interfaces.CreditAnalysisResult, error)
}

type AnalysisUseCase struct {
	sessions IOrderSessionUseCase
	credit   interfaces.ICreditAnalysisGateway
}

var _ IAnalysisUseCase = (*AnalysisUseCase)(nil)

func NewAnalysisUseCase(sessions IOrderSessionUseCase, credit interfaces.ICreditAnalysisGateway) *AnalysisUseCase {
	return &AnalysisUseCase{sessions: sessions, credit: credit}
}

// Analyze runs the credit check with the phone captured in step 1. Document
// validation (checksum) and the sentinel test-document bypass live in the
// gateway, so invalid input fails fast before any network call.
func (u *AnalysisUseCase) Analyze(ctx context.Context, orderID string, tipo entities.PersonType, document string) (entities.OrderSession, interfaces.CreditAnalysisResult, error) {
	s, err := u.sessions.Get(ctx, orderID)
	if err != nil {
		return entities.OrderSession{}, interfaces.CreditAnalysisResult{}, err
	}
	if s.Draft.Customer == nil || s.Draft.Customer.Celular == "" {
		return entities.OrderSession{}, interfaces.CreditAnalysisResult{}, ErrMissingContactPhone
	}
	if tipo == "" {
		tipo = entities.PersonFisica
	}

	res, err := u.credit.Analyze(ctx, tipo, document, s.Draft.Customer.Celular)
	if err != nil {
		return entities.OrderSession{}, interfaces.CreditAnalysisResult{}, err
	}

	if !res.Approved() {
		// Record the rejection; the draft keeps all entered data and the
		// step stays where it is.
		_, derr := u.sessions.Dispatch(ctx, orderID, order.SetAnalysis{Status: entities.AnalysisRejected})
		if derr != nil {
			return entities.OrderSession{}, res, derr
		}
		log.Printf("[analysis][usecase] rejected order_id=%s status=%s", orderID, res.Status)
		return entities.OrderSession{}, res, ErrAnalysisRejected
	}

	nome := res.NomeCliente
	doc := document
	tipoPessoa := tipo
	s, err = u.sessions.Dispatch(ctx, orderID,
		order.SetAnalysis{Status: res.AnalysisStatus(), Tax: res.ValorAtivacao},
		order.SetCustomer{Patch: entities.CustomerPatch{Nome: &nome, CpfCnpj: &doc, TipoPessoa: &tipoPessoa}},
	)
	if err != nil {
		return entities.OrderSession{}, res, err
	}
	s, err = u.sessions.SetStep(ctx, orderID, 4)
	if err != nil {
		return entities.OrderSession{}, res, err
	}
	log.Printf("[analysis][usecase] approved order_id=%s status=%s tax=%.2f", orderID, s.Draft.AnalysisStatus, s.Draft.ActivationTax)
	return s, res, nil
}
