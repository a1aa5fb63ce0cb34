package request

import "fibra_vendas/internal/domain/entities"

// AddressRequest is the installation address collected in step 1.
type AddressRequest struct {
	CEP            string `json:"cep"`
	Logradouro     string `json:"logradouro" binding:"required"`
	Numero         string `json:"numero" binding:"required"`
	Bairro         string `json:"bairro"`
	Cidade         string `json:"cidade" binding:"required"`
	Estado         string `json:"estado"`
	Complemento    string `json:"complemento"`
	Tipo           string `json:"tipo" binding:"omitempty,oneof=casa empresa condominio"`
	CondominioID   string `json:"condominio_id"`
	CondominioNome string `json:"condominio_nome"`
	Bloco          string `json:"bloco"`
	Apartamento    string `json:"apartamento"`
}

// ViabilityRequest is the step 1 payload: contact phone plus address.
type ViabilityRequest struct {
	Celular string         `json:"celular" binding:"required"`
	Address AddressRequest `json:"address" binding:"required"`
}

func (r ViabilityRequest) ToAddress() entities.Address {
	return entities.Address{
		CEP:            r.Address.CEP,
		Logradouro:     r.Address.Logradouro,
		Numero:         r.Address.Numero,
		Bairro:         r.Address.Bairro,
		Cidade:         r.Address.Cidade,
		Estado:         r.Address.Estado,
		Complemento:    r.Address.Complemento,
		Tipo:           entities.ResidenceType(r.Address.Tipo),
		CondominioID:   r.Address.CondominioID,
		CondominioNome: r.Address.CondominioNome,
		Bloco:          r.Address.Bloco,
		Apartamento:    r.Address.Apartamento,
	}
}
