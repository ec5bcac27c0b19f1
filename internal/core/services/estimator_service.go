package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
	"github.com/fixmate/repair-marketplace-api/internal/utils"
	"github.com/google/uuid"
)

var (
	ErrIssueTextLength    = fmt.Errorf("%w: description must be between 10 and 500 characters", domain.ErrInvalidIssueText)
	ErrIssueTextGibberish = fmt.Errorf("%w: description does not look like a real problem report", domain.ErrInvalidIssueText)
)

// Разумные границы для цены, пришедшей от AI, в USD
const (
	aiPriceMinUSD = 5
	aiPriceMaxUSD = 2000
)

const (
	predefinedJitter = 0.05
	heuristicJitter  = 0.10
)

type DiagnosisService struct {
	aiPort         out.AiPort
	ratesPort      out.ExchangeRatePort
	cachePort      out.CachePort
	diagnosisStore out.DiagnosisStorePort
	logger         out.LoggerPort
	cfg            *config.Config
	rnd            func() float64
}

func NewDiagnosisService(
	aiPort out.AiPort,
	ratesPort out.ExchangeRatePort,
	cachePort out.CachePort,
	diagnosisStore out.DiagnosisStorePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *DiagnosisService {
	return &DiagnosisService{
		aiPort:         aiPort,
		ratesPort:      ratesPort,
		cachePort:      cachePort,
		diagnosisStore: diagnosisStore,
		cfg:            cfg,
		logger:         logger.WithModule("DiagnosisService"),
		rnd:            rand.Float64,
	}
}

func (s *DiagnosisService) Estimate(ctx context.Context, req domain.DiagnosisRequest) (*domain.Estimate, error) {
	var (
		estimate *domain.Estimate
		err      error
	)

	if req.IsCustom() {
		estimate, err = s.estimateCustom(ctx, req)
	} else {
		estimate, err = s.estimatePredefined(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	s.persistDiagnosis(ctx, req, estimate)

	return estimate, nil
}

// estimatePredefined - мгновенная оценка из статических таблиц
func (s *DiagnosisService) estimatePredefined(ctx context.Context, req domain.DiagnosisRequest) (*domain.Estimate, error) {
	cacheKey := predefinedCacheKey(req)
	if s.cachePort != nil {
		if cached, ok := s.cachePort.GetEstimate(ctx, cacheKey); ok {
			s.logger.Debug("estimate.predefined.cache_hit", out.LogFields{
				"category": req.Category,
				"issue":    req.Issue,
			})
			return cached, nil
		}
	}

	issues, ok := basePricing[req.Category]
	if !ok {
		return nil, domain.ErrUnknownCategory
	}
	base, ok := issues[req.Issue]
	if !ok {
		return nil, domain.ErrUnknownIssue
	}

	diagnosis, ok := staticDiagnosis(req.Category, req.Issue, req.Brand)
	if !ok {
		return nil, domain.ErrUnknownIssue
	}

	price := base * BrandMultiplier(req.Brand) * modelMultiplier(req.Category, req.Model)
	price = utils.Jitter(price, predefinedJitter, s.rnd)

	estimate := &domain.Estimate{
		Diagnosis:     diagnosis,
		EstimatedCost: utils.RoundPrice(price),
		Currency:      s.cfg.Rates.Currency,
		Source:        domain.EstimateSourceStatic,
	}

	if s.cachePort != nil {
		s.cachePort.StoreEstimate(ctx, cacheKey, *estimate)
	}

	return estimate, nil
}

// estimateCustom - произвольное описание: валидация, AI, эвристический фолбэк
func (s *DiagnosisService) estimateCustom(ctx context.Context, req domain.DiagnosisRequest) (*domain.Estimate, error) {
	if err := validateCustomIssue(req.CustomIssue); err != nil {
		return nil, err
	}

	if estimate, ok := s.tryAI(ctx, req); ok {
		return estimate, nil
	}

	// Пользователю не сообщаем, что сработал фолбэк - только provenance в ответе
	price := heuristicPrice(req.Category, req.Brand, req.CustomIssue)
	price = utils.Jitter(price, heuristicJitter, s.rnd)

	return &domain.Estimate{
		Diagnosis:     heuristicDiagnosis(req.Category, req.Brand, req.CustomIssue),
		EstimatedCost: utils.RoundPrice(price),
		Currency:      s.cfg.Rates.Currency,
		Source:        domain.EstimateSourceHeuristic,
	}, nil
}

func (s *DiagnosisService) tryAI(ctx context.Context, req domain.DiagnosisRequest) (*domain.Estimate, bool) {
	if s.aiPort == nil {
		return nil, false
	}

	diagnosis, err := s.aiPort.Diagnose(ctx, req.Category, req.Brand, req.Model, req.CustomIssue)
	if err != nil {
		s.logger.Warn("estimate.ai.diagnose_failed", out.LogFields{
			"category": req.Category,
			"error":    err.Error(),
		})
		return nil, false
	}

	priceUSD, err := s.aiPort.EstimatePriceUSD(ctx, req.Category, req.Brand, req.Model, req.CustomIssue)
	if err != nil {
		s.logger.Warn("estimate.ai.price_failed", out.LogFields{
			"category": req.Category,
			"error":    err.Error(),
		})
		return nil, false
	}

	if priceUSD < aiPriceMinUSD || priceUSD > aiPriceMaxUSD {
		s.logger.Warn("estimate.ai.price_out_of_range", out.LogFields{
			"priceUsd": priceUSD,
		})
		return nil, false
	}

	price := priceUSD * s.usdRate(ctx)

	return &domain.Estimate{
		Diagnosis:     strings.TrimSpace(diagnosis),
		EstimatedCost: utils.RoundPrice(price),
		Currency:      s.cfg.Rates.Currency,
		Source:        domain.EstimateSourceAI,
	}, true
}

// usdRate - курс из кэша, затем из внешнего API, затем константа из конфига
func (s *DiagnosisService) usdRate(ctx context.Context) float64 {
	if s.cachePort != nil {
		if rate, ok := s.cachePort.GetUSDRate(ctx); ok {
			return rate
		}
	}

	if s.ratesPort != nil {
		rate, err := s.ratesPort.GetUSDRate(ctx)
		if err == nil && rate > 0 {
			if s.cachePort != nil {
				s.cachePort.StoreUSDRate(ctx, rate)
			}
			return rate
		}
		if err != nil {
			s.logger.Warn("estimate.rate.fetch_failed", out.LogFields{
				"error": err.Error(),
			})
		}
	}

	return s.cfg.Rates.FallbackUSDRate
}

// persistDiagnosis - самостоятельная запись события диагностики,
// ошибки записи не влияют на ответ
func (s *DiagnosisService) persistDiagnosis(ctx context.Context, req domain.DiagnosisRequest, estimate *domain.Estimate) {
	if s.diagnosisStore == nil {
		return
	}

	issue := req.Issue
	if req.IsCustom() {
		issue = req.CustomIssue
	}

	record := domain.Diagnosis{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		Category:      req.Category,
		Brand:         req.Brand,
		Model:         req.Model,
		Issue:         issue,
		DiagnosisText: estimate.Diagnosis,
		EstimatedCost: estimate.EstimatedCost,
		Currency:      estimate.Currency,
		Source:        estimate.Source,
		CreatedAt:     time.Now(),
	}

	if err := s.diagnosisStore.Insert(ctx, record); err != nil {
		s.logger.Error("estimate.diagnosis.persist_failed", out.LogFields{
			"userId": req.UserID,
			"error":  err.Error(),
		})
	}
}

func (s *DiagnosisService) PredefinedIssues(category string) ([]string, error) {
	issues := PredefinedIssues(category)
	if issues == nil {
		return nil, domain.ErrUnknownCategory
	}
	return issues, nil
}

func predefinedCacheKey(req domain.DiagnosisRequest) string {
	return strings.Join([]string{req.Category, req.Issue, req.Brand, req.Model}, "|")
}
