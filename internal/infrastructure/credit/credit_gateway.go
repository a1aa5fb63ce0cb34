package credit

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/domain/validation"
	"fibra_vendas/internal/infrastructure/httpx"
	"fibra_vendas/internal/usecase/interfaces"
)

// Mode selects the failure policy of the gateway.
//
// Strict is the production policy: missing credentials and upstream failures
// surface as errors, never as silent approvals. Permissive is the
// development policy: both degrade to a mock approval so the flow can be
// exercised without the backend.
type Mode string

const (
	ModeStrict     Mode = "strict"
	ModePermissive Mode = "permissive"
)

// sentinelDocument is the reserved demo CPF: it always yields an approved
// zero-tax result with no network call, in every mode.
const sentinelDocument = "11111111111"

// AnalysisGateway calls the upstream credit-analysis API through its bearer
// credential.

type AnalysisGateway struct {
	client *http.Client
	apiURL string
	token  string
	mode   Mode
	opts   httpx.Options
}

var _ interfaces.ICreditAnalysisGateway = (*AnalysisGateway)(nil)

// NewAnalysisGateway reads CREDIT_ANALYSIS_API_URL, CREDIT_ANALYSIS_API_TOKEN
// and CREDIT_ANALYSIS_MODE from the environment. Anything other than
// "permissive" means strict.
func NewAnalysisGateway() *AnalysisGateway {
	mode := ModeStrict
	if strings.EqualFold(strings.TrimSpace(os.Getenv("CREDIT_ANALYSIS_MODE")), string(ModePermissive)) {
		mode = ModePermissive
	}
	log.Printf("[credit][gateway] initialized mode=%s", mode)
	return &AnalysisGateway{
		client: &http.Client{},
		apiURL: strings.TrimRight(os.Getenv("CREDIT_ANALYSIS_API_URL"), "/"),
		token:  os.Getenv("CREDIT_ANALYSIS_API_TOKEN"),
		mode:   mode,
		opts: httpx.Options{
			Timeout:  8 * time.Second,
			Attempts: 1,
		},
	}
}

func mockResult(name string) interfaces.CreditAnalysisResult {
	return interfaces.CreditAnalysisResult{Status: "APROVADO", ValorAtivacao: 0, NomeCliente: name}
}

// Analyze validates the input, honors the sentinel bypass, then queries the
// upstream. Invalid documents fail fast with a distinct error and are never
// retried or sent over the wire.
func (g *AnalysisGateway) Analyze(ctx context.Context, tipo entities.PersonType, document, phone string) (interfaces.CreditAnalysisResult, error) {
	cleanDoc := validation.OnlyDigits(document)

	if cleanDoc == sentinelDocument {
		log.Printf("[credit][gateway] sentinel document, skipping backend")
		return mockResult("CLIENTE TESTE"), nil
	}

	if err := validation.ValidateDocument(string(tipo), cleanDoc); err != nil {
		return interfaces.CreditAnalysisResult{}, err
	}
	if err := validation.ValidateCelular(phone); err != nil {
		return interfaces.CreditAnalysisResult{}, err
	}

	if g.apiURL == "" || g.token == "" {
		if g.mode == ModePermissive {
			log.Printf("[credit][gateway] backend not configured, permissive mock approval")
			return mockResult("CLIENTE MOCK"), nil
		}
		return interfaces.CreditAnalysisResult{}, interfaces.ErrCreditNotConfigured
	}

	q := url.Values{}
	q.Set("tipo_pessoa", string(tipo))
	q.Set("cpf_cnpj", cleanDoc)
	q.Set("tel_celular", validation.OnlyDigits(phone))
	reqURL := fmt.Sprintf("%s/analise-cliente?%s", g.apiURL, q.Encode())
	headers := map[string]string{"Authorization": "Bearer " + g.token}

	var res interfaces.CreditAnalysisResult
	if err := httpx.DoJSON(ctx, g.client, http.MethodGet, reqURL, headers, nil, &res, g.opts); err != nil {
		if g.mode == ModePermissive {
			log.Printf("[credit][gateway] backend failed, permissive mock approval err=%v", err)
			return mockResult("CLIENTE MOCK"), nil
		}
		log.Printf("[credit][gateway] backend failed err=%v", err)
		return interfaces.CreditAnalysisResult{}, interfaces.ErrCreditUnavailable
	}
	return res, nil
}
