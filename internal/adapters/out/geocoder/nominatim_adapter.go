package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nurl "net/url"
	"strconv"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
)

// NominatimAdapter - публичный OSM-геокодер
type NominatimAdapter struct {
	client  *http.Client
	baseURL string
	logger  out.LoggerPort
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func NewNominatimAdapter(baseURL string, logger out.LoggerPort) *NominatimAdapter {
	return &NominatimAdapter{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		logger:  logger,
	}
}

func (a *NominatimAdapter) Reverse(ctx context.Context, lat, lon float64) (*domain.GeoPoint, error) {
	url := fmt.Sprintf("%s/reverse", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	query := nurl.Values{}
	query.Add("format", "json")
	query.Add("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	query.Add("lon", strconv.FormatFloat(lon, 'f', 6, 64))
	req.URL.RawQuery = query.Encode()
	// Nominatim требует осмысленный User-Agent
	req.Header.Set("User-Agent", "fixmate-marketplace/1.0")

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("geocoder.nominatim.reverse_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("geocoder.nominatim.reverse_failed", out.LogFields{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if result.DisplayName == "" {
		return nil, fmt.Errorf("no address for coordinates")
	}

	return &domain.GeoPoint{
		Lat:     lat,
		Lon:     lon,
		Address: result.DisplayName,
	}, nil
}

func (a *NominatimAdapter) Forward(ctx context.Context, searchQuery string) (*domain.GeoPoint, error) {
	url := fmt.Sprintf("%s/search", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	query := nurl.Values{}
	query.Add("format", "json")
	query.Add("limit", "1")
	query.Add("q", searchQuery)
	req.URL.RawQuery = query.Encode()
	req.Header.Set("User-Agent", "fixmate-marketplace/1.0")

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("geocoder.nominatim.forward_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, domain.ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed lat in response: %v", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed lon in response: %v", err)
	}

	return &domain.GeoPoint{
		Lat:     lat,
		Lon:     lon,
		Address: results[0].DisplayName,
	}, nil
}
