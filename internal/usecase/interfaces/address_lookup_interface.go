package interfaces

import "context"

// AddressLookup carries the structured fields returned for a postal code,
// in the provider's naming (localidade = city, uf = state).
type AddressLookup struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	CEP        string `json:"cep"`
}

// IAddressLookupGateway resolves an 8-digit CEP into address fields.
//
// Malformed input returns (nil, nil) without touching the network; provider
// failure falls back to a fixed address rather than propagating the error.

type IAddressLookupGateway interface {
	LookupCEP(ctx context.Context, cep string) (*AddressLookup, error)
}
