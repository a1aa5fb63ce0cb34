package geo

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"fibra_vendas/internal/infrastructure/httpx"
	"fibra_vendas/internal/usecase/interfaces"
)

// Fallback coordinate (São Paulo) used whenever geocoding or the coverage
// layer cannot answer. Failure here must never block the capture flow, so
// the degraded result is always feasible.
const (
	fallbackLongitude = -46.6333
	fallbackLatitude  = -23.5505
)

const defaultMapboxBaseURL = "https://api.mapbox.com"

// MapboxGateway resolves a free-text address to coordinates and queries the
// coverage tileset at that point. Each network step runs with a bounded
// timeout and a single retry with fixed backoff before degrading.

type MapboxGateway struct {
	client  *http.Client
	baseURL string
	token   string
	tileset string
	opts    httpx.Options
}

var _ interfaces.IViabilityGateway = (*MapboxGateway)(nil)

// NewMapboxGateway reads MAPBOX_TOKEN and MAPBOX_TILESET from the
// environment.
func NewMapboxGateway() *MapboxGateway {
	return &MapboxGateway{
		client:  &http.Client{},
		baseURL: defaultMapboxBaseURL,
		token:   os.Getenv("MAPBOX_TOKEN"),
		tileset: os.Getenv("MAPBOX_TILESET"),
		opts: httpx.Options{
			Timeout:  5 * time.Second,
			Attempts: 2,
			Backoff:  time.Second,
		},
	}
}

type geocodeResponse struct {
	Features []struct {
		Center []float64 `json:"center"`
	} `json:"features"`
}

func (g *MapboxGateway) CheckViability(ctx context.Context, address string) (interfaces.ViabilityResult, error) {
	degraded := interfaces.ViabilityResult{
		Feasible:  true,
		Longitude: fallbackLongitude,
		Latitude:  fallbackLatitude,
		Degraded:  true,
	}

	geoURL := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?access_token=%s&country=BR&limit=1",
		g.baseURL, url.PathEscape(address), url.QueryEscape(g.token))

	var geo geocodeResponse
	if err := httpx.DoJSON(ctx, g.client, http.MethodGet, geoURL, nil, nil, &geo, g.opts); err != nil {
		log.Printf("[viability][gateway] geocode failed, degrading err=%v", err)
		return degraded, nil
	}
	if len(geo.Features) == 0 || len(geo.Features[0].Center) < 2 {
		log.Printf("[viability][gateway] empty geocode result, degrading address=%q", address)
		return degraded, nil
	}
	lng, lat := geo.Features[0].Center[0], geo.Features[0].Center[1]

	tileURL := fmt.Sprintf("%s/v4/%s/tilequery/%f,%f.json?radius=0&limit=1&access_token=%s",
		g.baseURL, g.tileset, lng, lat, url.QueryEscape(g.token))

	if err := httpx.DoJSON(ctx, g.client, http.MethodGet, tileURL, nil, nil, nil, g.opts); err != nil {
		log.Printf("[viability][gateway] tilequery failed, degrading err=%v", err)
		return degraded, nil
	}

	return interfaces.ViabilityResult{Feasible: true, Longitude: lng, Latitude: lat}, nil
}
