package request

import "fibra_vendas/internal/domain/entities"

// CustomerUpdateRequest is the step 4 partial update. Absent fields stay
// untouched in the draft; present fields overwrite, including with "".
type CustomerUpdateRequest struct {
	Nome           *string `json:"nome"`
	Email          *string `json:"email"`
	Telefone       *string `json:"telefone"`
	DataNascimento *string `json:"data_nascimento"`

	RG               *string `json:"rg"`
	OrgaoEmissor     *string `json:"orgao_emissor"`
	Sexo             *string `json:"sexo"`
	Nacionalidade    *string `json:"nacionalidade"`
	Naturalidade     *string `json:"naturalidade"`
	EstadoNascimento *string `json:"estado_nascimento"`
	EstadoCivil      *string `json:"estado_civil"`
	Profissao        *string `json:"profissao"`

	RazaoSocial     *string `json:"razao_social"`
	NomeResponsavel *string `json:"nome_responsavel"`
	CPFResponsavel  *string `json:"cpf_responsavel"`
}

// ToPatch maps the request onto the domain patch. Identity fields (document,
// tipo pessoa, primary phone) are deliberately not updatable here; they are
// owned by steps 1 and 3.
func (r CustomerUpdateRequest) ToPatch() entities.CustomerPatch {
	return entities.CustomerPatch{
		Nome:             r.Nome,
		Email:            r.Email,
		Telefone:         r.Telefone,
		DataNascimento:   r.DataNascimento,
		RG:               r.RG,
		OrgaoEmissor:     r.OrgaoEmissor,
		Sexo:             r.Sexo,
		Nacionalidade:    r.Nacionalidade,
		Naturalidade:     r.Naturalidade,
		EstadoNascimento: r.EstadoNascimento,
		EstadoCivil:      r.EstadoCivil,
		Profissao:        r.Profissao,
		RazaoSocial:      r.RazaoSocial,
		NomeResponsavel:  r.NomeResponsavel,
		CPFResponsavel:   r.CPFResponsavel,
	}
}
