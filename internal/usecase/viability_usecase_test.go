package usecase

import (
	"context"
	"errors"
	"testing"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/domain/validation"
	"fibra_vendas/internal/usecase/interfaces"
	mock_interfaces "fibra_vendas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// fakeSessionRepo is a stateful in-memory store shared by the step usecase
// tests, so dispatched intents actually accumulate in the draft.
type fakeSessionRepo struct {
	m map[string]entities.OrderSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{m: map[string]entities.OrderSession{}}
}

func (r *fakeSessionRepo) Put(_ context.Context, s entities.OrderSession) error {
	r.m[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) Get(_ context.Context, id string) (entities.OrderSession, error) {
	return r.m[id], nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.m, id)
	return nil
}

func seedSession(t *testing.T, sessions *OrderSessionUseCase) entities.OrderSession {
	t.Helper()
	s, err := sessions.Create(context.Background())
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return s
}

func validAddress() entities.Address {
	return entities.Address{
		CEP:        "01310-100",
		Logradouro: "Avenida Paulista",
		Numero:     "1000",
		Bairro:     "Bela Vista",
		Cidade:     "São Paulo",
		Estado:     "SP",
	}
}

func TestViabilityUseCase_ConfirmViability(t *testing.T) {
	t.Run("invalid phone fails before any gateway call", func(t *testing.T) {
		uc := NewViabilityUseCase(nil, nil, nil)
		_, _, err := uc.ConfirmViability(context.Background(), "id-1", "11988", validAddress())
		if !errors.Is(err, validation.ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
	})

	t.Run("incomplete address rejected", func(t *testing.T) {
		uc := NewViabilityUseCase(nil, nil, nil)
		addr := validAddress()
		addr.Numero = " "
		_, _, err := uc.ConfirmViability(context.Background(), "id-1", "(11) 98888-7777", addr)
		if !errors.Is(err, ErrIncompleteAddress) {
			t.Fatalf("expected ErrIncompleteAddress, got %v", err)
		}
	})

	t.Run("not feasible surfaces without touching the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sessions := NewOrderSessionUseCase(newFakeSessionRepo())
		gw := mock_interfaces.NewMockIViabilityGateway(ctrl)
		uc := NewViabilityUseCase(sessions, gw, nil)
		s := seedSession(t, sessions)

		gw.EXPECT().CheckViability(gomock.Any(), gomock.Any()).Return(interfaces.ViabilityResult{Feasible: false}, nil)

		_, _, err := uc.ConfirmViability(context.Background(), s.ID, "(11) 98888-7777", validAddress())
		if !errors.Is(err, ErrNotFeasible) {
			t.Fatalf("expected ErrNotFeasible, got %v", err)
		}

		after, _ := sessions.Get(context.Background(), s.ID)
		if after.Draft.ViabilityConfirmed || after.Draft.Step != 1 {
			t.Fatalf("expected draft untouched, got %+v", after.Draft)
		}
	})

	t.Run("feasible stores coords and advances to step 2", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sessions := NewOrderSessionUseCase(newFakeSessionRepo())
		gw := mock_interfaces.NewMockIViabilityGateway(ctrl)
		uc := NewViabilityUseCase(sessions, gw, nil)
		s := seedSession(t, sessions)

		var checked string
		gw.EXPECT().CheckViability(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, address string) (interfaces.ViabilityResult, error) {
				checked = address
				return interfaces.ViabilityResult{Feasible: true, Longitude: -46.6333, Latitude: -23.5505}, nil
			})

		out, res, err := uc.ConfirmViability(context.Background(), s.ID, "(11) 98888-7777", validAddress())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Feasible {
			t.Fatal("expected feasible result")
		}
		if checked != "Avenida Paulista, 1000, Bela Vista, São Paulo, SP, Brasil" {
			t.Fatalf("unexpected free-text address %q", checked)
		}
		if out.Draft.Step != 2 {
			t.Fatalf("expected step 2, got %d", out.Draft.Step)
		}
		if !out.Draft.ViabilityConfirmed {
			t.Fatal("expected viability confirmed")
		}
		if out.Draft.Address == nil || out.Draft.Address.Longitude == nil || *out.Draft.Address.Longitude != -46.6333 {
			t.Fatalf("expected coords stored, got %+v", out.Draft.Address)
		}
		if out.Draft.Customer == nil || out.Draft.Customer.Celular != "(11) 98888-7777" {
			t.Fatalf("expected contact stored, got %+v", out.Draft.Customer)
		}
		if out.Draft.Address.Tipo != entities.ResidenceCasa {
			t.Fatalf("expected residence type defaulted to casa, got %q", out.Draft.Address.Tipo)
		}
	})
}

func TestViabilityUseCase_LookupCEP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mock_interfaces.NewMockIAddressLookupGateway(ctrl)
	uc := NewViabilityUseCase(nil, nil, gw)

	gw.EXPECT().LookupCEP(gomock.Any(), "01310100").Return(&interfaces.AddressLookup{Localidade: "São Paulo"}, nil)

	got, err := uc.LookupCEP(context.Background(), "01310100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Localidade != "São Paulo" {
		t.Fatalf("unexpected lookup %+v", got)
	}
}
