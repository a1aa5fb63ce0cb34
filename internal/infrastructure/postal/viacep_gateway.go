package postal

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"fibra_vendas/internal/domain/validation"
	"fibra_vendas/internal/infrastructure/httpx"
	"fibra_vendas/internal/usecase/interfaces"
)

const defaultViaCEPBaseURL = "https://viacep.com.br/ws"

// mockAddress is returned when the provider cannot be reached, so the form
// can still be filled and corrected by hand.
var mockAddress = interfaces.AddressLookup{
	Logradouro: "Avenida Paulista",
	Bairro:     "Bela Vista",
	Localidade: "São Paulo",
	UF:         "SP",
	CEP:        "01310-100",
}

// ViaCEPGateway resolves 8-digit postal codes through viacep.com.br.

type ViaCEPGateway struct {
	client  *http.Client
	baseURL string
	opts    httpx.Options
}

var _ interfaces.IAddressLookupGateway = (*ViaCEPGateway)(nil)

func NewViaCEPGateway() *ViaCEPGateway {
	return &ViaCEPGateway{
		client:  &http.Client{},
		baseURL: defaultViaCEPBaseURL,
		opts: httpx.Options{
			Timeout:  5 * time.Second,
			Attempts: 2,
			Backoff:  time.Second,
		},
	}
}

type viaCEPResponse struct {
	interfaces.AddressLookup
	Erro bool `json:"erro"`
}

// LookupCEP returns nil without a network call for anything that is not an
// 8-digit code; "erro":true from the provider means the code does not exist.
// Network failure degrades to the fixed mock address.
func (g *ViaCEPGateway) LookupCEP(ctx context.Context, cep string) (*interfaces.AddressLookup, error) {
	clean := validation.NormalizeCEP(cep)
	if clean == "" {
		return nil, nil
	}

	var resp viaCEPResponse
	url := fmt.Sprintf("%s/%s/json/", g.baseURL, clean)
	if err := httpx.DoJSON(ctx, g.client, http.MethodGet, url, nil, nil, &resp, g.opts); err != nil {
		log.Printf("[postal][gateway] lookup failed, using mock address cep=%s err=%v", clean, err)
		out := mockAddress
		return &out, nil
	}
	if resp.Erro {
		return nil, nil
	}
	out := resp.AddressLookup
	return &out, nil
}
