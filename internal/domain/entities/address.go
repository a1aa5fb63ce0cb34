package entities

// ResidenceType qualifies the installation location.

type ResidenceType string

const (
	ResidenceCasa       ResidenceType = "casa"
	ResidenceEmpresa    ResidenceType = "empresa"
	ResidenceCondominio ResidenceType = "condominio"
)

// Address is the installation location captured during the viability step.
//
// Latitude/Longitude are filled by the viability check when the geocoder
// resolves the address. Condominio fields only apply when Tipo is condominio.
type Address struct {
	CEP         string        `json:"cep"`
	Logradouro  string        `json:"logradouro"`
	Numero      string        `json:"numero"`
	Bairro      string        `json:"bairro"`
	Cidade      string        `json:"cidade"`
	Estado      string        `json:"estado"`
	Complemento string        `json:"complemento,omitempty"`
	Latitude    *float64      `json:"latitude,omitempty"`
	Longitude   *float64      `json:"longitude,omitempty"`
	Tipo        ResidenceType `json:"tipo"`

	CondominioID   string `json:"condominio_id,omitempty"`
	CondominioNome string `json:"condominio_nome,omitempty"`
	Bloco          string `json:"bloco,omitempty"`
	Apartamento    string `json:"apartamento,omitempty"`
}
