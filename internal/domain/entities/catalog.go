package entities

// Catalog reference data for the capture flow.
//
// Plans, apps and additional services are immutable: loaded once at startup
// (static defaults or the catalog database) and referenced by value from the
// order draft. Nothing in the flow ever mutates catalog entries.

type Plan struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Speed         int      `json:"speed"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Features      []string `json:"features"`
	AppsLimit     int      `json:"apps_limit"`
	BestValue     bool     `json:"best_value,omitempty"`
}

// AppOption is a streaming app bundled with a plan (up to Plan.AppsLimit).
type AppOption struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Domain string `json:"domain,omitempty"`
}

// AdditionalService is an optional recurring add-on, independent of the plan.
type AdditionalService struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Condominio is a known multi-dwelling building served by the provider.
type Condominio struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Bairro string `json:"bairro"`
}

// TimeSlot is an installation window offered during scheduling.
type TimeSlot struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DefaultPlans is the built-in commercial catalog, used when no catalog
// database is configured.
func DefaultPlans() []Plan {
	return []Plan{
		{ID: 286, Name: "START", Speed: 500, Price: 99.90, OriginalPrice: 119.90, Features: []string{"Wi-Fi 6 Grátis", "Instalação Grátis"}, AppsLimit: 1},
		{ID: 287, Name: "TURBO", Speed: 700, Price: 119.90, OriginalPrice: 149.90, Features: []string{"Wi-Fi 6 Grátis", "Instalação Grátis", "IP Fixo"}, AppsLimit: 2, BestValue: true},
		{ID: 288, Name: "GIGA", Speed: 1000, Price: 149.90, OriginalPrice: 199.90, Features: []string{"Wi-Fi 6 Mesh", "Prioridade Suporte", "IP Público"}, AppsLimit: 3},
	}
}

func DefaultApps() []AppOption {
	return []AppOption{
		{ID: "netflix", Name: "Netflix", Domain: "netflix.com", Logo: "https://logo.clearbit.com/netflix.com"},
		{ID: "hbomax", Name: "HBO Max", Domain: "hbomax.com", Logo: "https://logo.clearbit.com/hbomax.com"},
		{ID: "disney", Name: "Disney+", Domain: "disneyplus.com", Logo: "https://logo.clearbit.com/disneyplus.com"},
		{ID: "paramount", Name: "Paramount+", Domain: "paramountplus.com", Logo: "https://logo.clearbit.com/paramountplus.com"},
		{ID: "deezer", Name: "Deezer", Domain: "deezer.com", Logo: "https://logo.clearbit.com/deezer.com"},
		{ID: "spotify", Name: "Spotify", Domain: "spotify.com", Logo: "https://logo.clearbit.com/spotify.com"},
	}
}

func DefaultServices() []AdditionalService {
	return []AdditionalService{
		{ID: "mesh", Name: "Ponto Ultra Mesh", Price: 19.90, Description: "Amplie o sinal do Wi-Fi para a casa toda."},
		{ID: "ipfixo", Name: "IP Fixo Gamer", Price: 29.90, Description: "Menor latência e estabilidade para jogos."},
		{ID: "suporte", Name: "Suporte Premium", Price: 9.90, Description: "Atendimento prioritário 24h."},
	}
}

func DefaultCondominios() []Condominio {
	return []Condominio{
		{ID: "1", Nome: "Residencial Viver Bem", Bairro: "Jardim das Flores"},
		{ID: "2", Nome: "Condomínio Grand Park", Bairro: "Centro"},
		{ID: "3", Nome: "Edifício Horizonte", Bairro: "Bela Vista"},
	}
}

func DefaultTimeSlots() []TimeSlot {
	return []TimeSlot{
		{ID: "1", Label: "08:00 - 10:00"},
		{ID: "2", Label: "10:00 - 12:00"},
		{ID: "3", Label: "13:00 - 15:00"},
		{ID: "4", Label: "15:00 - 18:00"},
	}
}
