package entities

// PersonType distinguishes pessoa física (F) from jurídica (J).

type PersonType string

const (
	PersonFisica   PersonType = "F"
	PersonJuridica PersonType = "J"
)

// CustomerData is built incrementally across steps 1, 3 and 4.
//
// Step 1 captures Celular, step 3 fills Nome/CpfCnpj from the credit analysis,
// step 4 collects the remaining contract fields. Updates merge into the
// existing record; only the first write creates it, with empty-string defaults.
type CustomerData struct {
	Nome           string     `json:"nome"`
	CpfCnpj        string     `json:"cpf_cnpj"`
	Email          string     `json:"email"`
	Celular        string     `json:"celular"`
	Telefone       string     `json:"telefone,omitempty"`
	DataNascimento string     `json:"data_nascimento"`
	TipoPessoa     PersonType `json:"tipo_pessoa"`

	// Extended legal fields, optional for the core flow.
	RG              string `json:"rg,omitempty"`
	OrgaoEmissor    string `json:"orgao_emissor,omitempty"`
	Sexo            string `json:"sexo,omitempty"`
	Nacionalidade   string `json:"nacionalidade,omitempty"`
	Naturalidade    string `json:"naturalidade,omitempty"`
	EstadoNascimento string `json:"estado_nascimento,omitempty"`
	EstadoCivil     string `json:"estado_civil,omitempty"`
	Profissao       string `json:"profissao,omitempty"`

	// Pessoa jurídica.
	RazaoSocial     string `json:"razao_social,omitempty"`
	NomeResponsavel string `json:"nome_responsavel,omitempty"`
	CPFResponsavel  string `json:"cpf_responsavel,omitempty"`
}

// CustomerPatch is a partial customer update. Nil fields are left untouched
// by the merge; set fields overwrite.
type CustomerPatch struct {
	Nome           *string     `json:"nome,omitempty"`
	CpfCnpj        *string     `json:"cpf_cnpj,omitempty"`
	Email          *string     `json:"email,omitempty"`
	Celular        *string     `json:"celular,omitempty"`
	Telefone       *string     `json:"telefone,omitempty"`
	DataNascimento *string     `json:"data_nascimento,omitempty"`
	TipoPessoa     *PersonType `json:"tipo_pessoa,omitempty"`

	RG              *string `json:"rg,omitempty"`
	OrgaoEmissor    *string `json:"orgao_emissor,omitempty"`
	Sexo            *string `json:"sexo,omitempty"`
	Nacionalidade   *string `json:"nacionalidade,omitempty"`
	Naturalidade    *string `json:"naturalidade,omitempty"`
	EstadoNascimento *string `json:"estado_nascimento,omitempty"`
	EstadoCivil     *string `json:"estado_civil,omitempty"`
	Profissao       *string `json:"profissao,omitempty"`

	RazaoSocial     *string `json:"razao_social,omitempty"`
	NomeResponsavel *string `json:"nome_responsavel,omitempty"`
	CPFResponsavel  *string `json:"cpf_responsavel,omitempty"`
}

// Apply merges the patch into a copy of c and returns it.
func (p CustomerPatch) Apply(c CustomerData) CustomerData {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&c.Nome, p.Nome)
	setStr(&c.CpfCnpj, p.CpfCnpj)
	setStr(&c.Email, p.Email)
	setStr(&c.Celular, p.Celular)
	setStr(&c.Telefone, p.Telefone)
	setStr(&c.DataNascimento, p.DataNascimento)
	if p.TipoPessoa != nil {
		c.TipoPessoa = *p.TipoPessoa
	}
	setStr(&c.RG, p.RG)
	setStr(&c.OrgaoEmissor, p.OrgaoEmissor)
	setStr(&c.Sexo, p.Sexo)
	setStr(&c.Nacionalidade, p.Nacionalidade)
	setStr(&c.Naturalidade, p.Naturalidade)
	setStr(&c.EstadoNascimento, p.EstadoNascimento)
	setStr(&c.EstadoCivil, p.EstadoCivil)
	setStr(&c.Profissao, p.Profissao)
	setStr(&c.RazaoSocial, p.RazaoSocial)
	setStr(&c.NomeResponsavel, p.NomeResponsavel)
	setStr(&c.CPFResponsavel, p.CPFResponsavel)
	return c
}
