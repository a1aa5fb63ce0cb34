package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/domain/order"
	"fibra_vendas/internal/domain/validation"
	"fibra_vendas/internal/usecase/interfaces"
)

var (
	ErrIncompleteAddress = errors.New("incomplete address")
	ErrNotFeasible       = errors.New("address not feasible")
)

// IViabilityUseCase is the step 1 controller: collect the contact phone,
// confirm the installation address is serviceable and move the draft to
// step 2.

type IViabilityUseCase interface {
	ConfirmViability(ctx context.Context, orderID, celular string, addr entities.Address) (entities.OrderSession, interfaces.ViabilityResult, error)
	LookupCEP(ctx context.Context, cep string) (*interfaces.AddressLookup, error)
}

type ViabilityUseCase struct {
	sessions  IOrderSessionUseCase
	viability interfaces.IViabilityGateway
	postal    interfaces.IAddressLookupGateway
}

var _ IViabilityUseCase = (*ViabilityUseCase)(nil)

func NewViabilityUseCase(sessions IOrderSessionUseCase, viability interfaces.IViabilityGateway, postal interfaces.IAddressLookupGateway) *ViabilityUseCase {
	return &ViabilityUseCase{sessions: sessions, viability: viability, postal: postal}
}

func (u *ViabilityUseCase) ConfirmViability(ctx context.Context, orderID, celular string, addr entities.Address) (entities.OrderSession, interfaces.ViabilityResult, error) {
	if err := validation.ValidateCelular(celular); err != nil {
		return entities.OrderSession{}, interfaces.ViabilityResult{}, err
	}
	if strings.TrimSpace(addr.Logradouro) == "" || strings.TrimSpace(addr.Numero) == "" || strings.TrimSpace(addr.Cidade) == "" {
		return entities.OrderSession{}, interfaces.ViabilityResult{}, ErrIncompleteAddress
	}
	if addr.Tipo == "" {
		addr.Tipo = entities.ResidenceCasa
	}

	res, err := u.viability.CheckViability(ctx, freeTextAddress(addr))
	if err != nil {
		// The gateway degrades on provider failure; an error here means the
		// check itself was refused (bad input), not a transient outage.
		return entities.OrderSession{}, interfaces.ViabilityResult{}, err
	}
	if !res.Feasible {
		log.Printf("[viability][usecase] not feasible order_id=%s", orderID)
		return entities.OrderSession{}, res, ErrNotFeasible
	}

	lng, lat := res.Longitude, res.Latitude
	addr.Longitude = &lng
	addr.Latitude = &lat

	s, err := u.sessions.Dispatch(ctx, orderID,
		order.SetContactInfo{Celular: celular},
		order.SetAddress{Address: addr},
	)
	if err != nil {
		return entities.OrderSession{}, res, err
	}
	s, err = u.sessions.SetStep(ctx, orderID, 2)
	if err != nil {
		return entities.OrderSession{}, res, err
	}
	log.Printf("[viability][usecase] confirmed order_id=%s degraded=%t", orderID, res.Degraded)
	return s, res, nil
}

func (u *ViabilityUseCase) LookupCEP(ctx context.Context, cep string) (*interfaces.AddressLookup, error) {
	return u.postal.LookupCEP(ctx, cep)
}

func freeTextAddress(a entities.Address) string {
	parts := []string{a.Logradouro, a.Numero, a.Bairro, a.Cidade, a.Estado}
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return fmt.Sprintf("%s, Brasil", strings.Join(kept, ", "))
}
