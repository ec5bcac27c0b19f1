package services

import (
	"context"
	"fmt"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
)

// GeocodingService ходит по цепочке провайдеров; обратное
// геокодирование не падает никогда - последний фолбэк просто
// строка с координатами
type GeocodingService struct {
	primary   out.GeocoderPort
	secondary out.GeocoderPort
	logger    out.LoggerPort
}

func NewGeocodingService(primary, secondary out.GeocoderPort, logger out.LoggerPort) *GeocodingService {
	return &GeocodingService{
		primary:   primary,
		secondary: secondary,
		logger:    logger.WithModule("GeocodingService"),
	}
}

func (s *GeocodingService) Reverse(ctx context.Context, lat, lon float64) *domain.GeoPoint {
	for _, geocoder := range []out.GeocoderPort{s.primary, s.secondary} {
		if geocoder == nil {
			continue
		}
		point, err := geocoder.Reverse(ctx, lat, lon)
		if err == nil && point != nil && point.Address != "" {
			return point
		}
		if err != nil {
			s.logger.Warn("geocode.reverse.provider_failed", out.LogFields{
				"lat":   lat,
				"lon":   lon,
				"error": err.Error(),
			})
		}
	}

	// Пользователь увидит хотя бы координаты
	return &domain.GeoPoint{
		Lat:     lat,
		Lon:     lon,
		Address: fmt.Sprintf("%.6f, %.6f", lat, lon),
	}
}

func (s *GeocodingService) Forward(ctx context.Context, query string) (*domain.GeoPoint, error) {
	var lastErr error
	for _, geocoder := range []out.GeocoderPort{s.primary, s.secondary} {
		if geocoder == nil {
			continue
		}
		point, err := geocoder.Forward(ctx, query)
		if err == nil && point != nil {
			return point, nil
		}
		if err != nil {
			lastErr = err
			s.logger.Warn("geocode.forward.provider_failed", out.LogFields{
				"query": query,
				"error": err.Error(),
			})
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, domain.ErrNotFound
}
