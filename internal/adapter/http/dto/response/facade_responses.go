package response

import "fibra_vendas/internal/usecase/interfaces"

// ViabilityResponse reports the coverage check outcome alongside the
// updated order state.
type ViabilityResponse struct {
	Feasible bool               `json:"feasible"`
	Coords   [2]float64         `json:"coords"`
	Degraded bool               `json:"degraded"`
	Order    OrderStateResponse `json:"order"`
}

func FromViability(res interfaces.ViabilityResult, order OrderStateResponse) ViabilityResponse {
	return ViabilityResponse{
		Feasible: res.Feasible,
		Coords:   [2]float64{res.Longitude, res.Latitude},
		Degraded: res.Degraded,
		Order:    order,
	}
}

// AddressResponse is the postal lookup result, kept in the provider's field
// vocabulary (localidade = city, uf = state).
type AddressResponse struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	CEP        string `json:"cep"`
}

func FromAddressLookup(l interfaces.AddressLookup) AddressResponse {
	return AddressResponse{
		Logradouro: l.Logradouro,
		Bairro:     l.Bairro,
		Localidade: l.Localidade,
		UF:         l.UF,
		CEP:        l.CEP,
	}
}

// AnalysisResponse reports the credit decision alongside the updated order
// state.
type AnalysisResponse struct {
	Status        string             `json:"status"`
	ActivationTax float64            `json:"activation_tax"`
	NomeCliente   string             `json:"nome_cliente"`
	Order         OrderStateResponse `json:"order"`
}

func FromAnalysis(res interfaces.CreditAnalysisResult, order OrderStateResponse) AnalysisResponse {
	return AnalysisResponse{
		Status:        string(res.AnalysisStatus()),
		ActivationTax: res.ValorAtivacao,
		NomeCliente:   res.NomeCliente,
		Order:         order,
	}
}

// SubmitResponse is the intake provider's answer relayed to the client.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func FromSubmission(res interfaces.SubmissionResult) SubmitResponse {
	return SubmitResponse{Success: res.Success, Message: res.Message}
}
