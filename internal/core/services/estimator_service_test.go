package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/utils"
)

func newTestDiagnosisService(t *testing.T, aiPort *fakeAiPort, ratesPort *fakeRatesPort) (*DiagnosisService, *fakeDiagnosisStore) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Rates.Currency = "PHP"
	cfg.Rates.FallbackUSDRate = 56.5

	store := &fakeDiagnosisStore{}

	service := NewDiagnosisService(nil, nil, nil, store, cfg, nopLogger{})
	if aiPort != nil {
		service.aiPort = aiPort
	}
	if ratesPort != nil {
		service.ratesPort = ratesPort
	}

	// Без джиттера результаты детерминированы
	service.rnd = func() float64 { return 0.5 }

	return service, store
}

func TestEstimatePredefined(t *testing.T) {
	service, store := newTestDiagnosisService(t, nil, nil)

	estimate, err := service.Estimate(context.Background(), domain.DiagnosisRequest{
		UserID:   "user-1",
		Category: "Refrigerator",
		Brand:    "Samsung",
		Issue:    "Not cooling",
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	// 4200 * 1.3 без джиттера
	if estimate.EstimatedCost != 5460 {
		t.Errorf("EstimatedCost = %d, want 5460", estimate.EstimatedCost)
	}
	if estimate.Currency != "PHP" {
		t.Errorf("Currency = %s, want PHP", estimate.Currency)
	}
	if estimate.Source != domain.EstimateSourceStatic {
		t.Errorf("Source = %s, want static", estimate.Source)
	}
	if estimate.Diagnosis == "" {
		t.Error("diagnosis text must not be empty")
	}

	if len(store.inserted) != 1 {
		t.Fatalf("diagnosis records = %d, want 1", len(store.inserted))
	}
	if store.inserted[0].UserID != "user-1" {
		t.Errorf("persisted userId = %s", store.inserted[0].UserID)
	}
}

func TestEstimatePredefinedJitterBounds(t *testing.T) {
	service, _ := newTestDiagnosisService(t, nil, nil)

	for _, rnd := range []float64{0, 0.25, 0.5, 0.75, 0.999999} {
		rnd := rnd
		service.rnd = func() float64 { return rnd }

		estimate, err := service.Estimate(context.Background(), domain.DiagnosisRequest{
			UserID:   "user-1",
			Category: "Refrigerator",
			Brand:    "Samsung",
			Issue:    "Not cooling",
		})
		if err != nil {
			t.Fatalf("Estimate: %v", err)
		}

		// 5460 +- 5%, затем округление до 5
		if estimate.EstimatedCost < 5185 || estimate.EstimatedCost > 5735 {
			t.Errorf("rnd=%v: EstimatedCost = %d, out of jitter bounds", rnd, estimate.EstimatedCost)
		}
		if estimate.EstimatedCost%5 != 0 {
			t.Errorf("rnd=%v: EstimatedCost = %d, not a multiple of 5", rnd, estimate.EstimatedCost)
		}
		if estimate.EstimatedCost < utils.MinimumEstimate {
			t.Errorf("rnd=%v: EstimatedCost = %d, below minimum", rnd, estimate.EstimatedCost)
		}
	}
}

func TestEstimateUnknownCategoryAndIssue(t *testing.T) {
	service, _ := newTestDiagnosisService(t, nil, nil)

	_, err := service.Estimate(context.Background(), domain.DiagnosisRequest{
		Category: "Dishwasher",
		Issue:    "Not cooling",
	})
	if !errors.Is(err, domain.ErrUnknownCategory) {
		t.Errorf("unknown category: %v, want ErrUnknownCategory", err)
	}

	_, err = service.Estimate(context.Background(), domain.DiagnosisRequest{
		Category: "Refrigerator",
		Issue:    "Time travel malfunction",
	})
	if !errors.Is(err, domain.ErrUnknownIssue) {
		t.Errorf("unknown issue: %v, want ErrUnknownIssue", err)
	}
}

func TestEstimateCustomValidation(t *testing.T) {
	service, store := newTestDiagnosisService(t, nil, nil)

	cases := []struct {
		name string
		text string
	}{
		{"too short", "broken"},
		{"repeated char", "aaaaaaaaaaaaaaa"},
		{"keyboard mash", "asdfasdfasdfasdf"},
		{"special chars only", "!!!@@@###$$$%%%^^^"},
		{"no vowels", "bcdfghjklmnpqrstvwxz"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Estimate(context.Background(), domain.DiagnosisRequest{
				Category:    "Refrigerator",
				Brand:       "Samsung",
				CustomIssue: tc.text,
			})
			if !errors.Is(err, domain.ErrInvalidIssueText) {
				t.Errorf("Estimate(%q) = %v, want ErrInvalidIssueText", tc.text, err)
			}
		})
	}

	if len(store.inserted) != 0 {
		t.Errorf("rejected requests must not be persisted, got %d records", len(store.inserted))
	}
}

func TestEstimateCustomAcceptsNormalSentences(t *testing.T) {
	service, _ := newTestDiagnosisService(t, nil, nil)

	// Обычные описания поломок любой длины должны проходить валидацию,
	// включая длинные, близкие к верхней границе
	cases := []struct {
		name string
		text string
	}{
		{
			"short",
			"The washing machine leaks water from the door during the rinse cycle",
		},
		{
			"long",
			"My refrigerator has stopped cooling properly over the last week, the freezer compartment still works but the lower section feels warm and all the vegetables spoil within a day or two",
		},
		{
			"longer",
			"The air conditioner in the living room turns itself off after about ten minutes of running and the air coming out is barely cold even when I set the temperature to the lowest possible value",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			estimate, err := service.Estimate(context.Background(), domain.DiagnosisRequest{
				UserID:      "user-1",
				Category:    "Refrigerator",
				Brand:       "Samsung",
				CustomIssue: tc.text,
			})
			if err != nil {
				t.Fatalf("Estimate(%d chars): %v", len(tc.text), err)
			}
			if estimate.Source != domain.EstimateSourceHeuristic {
				t.Errorf("Source = %s, want heuristic", estimate.Source)
			}
		})
	}
}

func TestEstimateCustomHeuristicFallback(t *testing.T) {
	// AI недоступен - обе попытки падают
	ai := &fakeAiPort{diagnosisErr: errors.New("service unavailable")}
	service, store := newTestDiagnosisService(t, ai, nil)

	estimate, err := service.Estimate(context.Background(), domain.DiagnosisRequest{
		UserID:      "user-1",
		Category:    "Refrigerator",
		Brand:       "Samsung",
		CustomIssue: "It is leaking water and the compressor is very noisy",
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if estimate.Source != domain.EstimateSourceHeuristic {
		t.Fatalf("Source = %s, want heuristic", estimate.Source)
	}
	// 2500 * 1.0 (moderate) * 1.6 (compressor) * 1.3 (Samsung) без джиттера
	if estimate.EstimatedCost != 5200 {
		t.Errorf("EstimatedCost = %d, want 5200", estimate.EstimatedCost)
	}
	if estimate.Diagnosis == "" {
		t.Error("heuristic diagnosis text must not be empty")
	}

	if len(store.inserted) != 1 || store.inserted[0].Source != domain.EstimateSourceHeuristic {
		t.Error("heuristic estimate must be persisted with its provenance")
	}
}

func TestEstimateCustomAI(t *testing.T) {
	ai := &fakeAiPort{
		diagnosis: "The compressor start relay has likely failed.",
		priceUSD:  100,
	}
	rates := &fakeRatesPort{rate: 56.5}
	service, _ := newTestDiagnosisService(t, ai, rates)

	estimate, err := service.Estimate(context.Background(), domain.DiagnosisRequest{
		UserID:      "user-1",
		Category:    "Refrigerator",
		Brand:       "Samsung",
		CustomIssue: "The fridge stopped cooling after a power outage yesterday",
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if estimate.Source != domain.EstimateSourceAI {
		t.Fatalf("Source = %s, want ai", estimate.Source)
	}
	// 100 USD * 56.5
	if estimate.EstimatedCost != 5650 {
		t.Errorf("EstimatedCost = %d, want 5650", estimate.EstimatedCost)
	}
	if estimate.Diagnosis != "The compressor start relay has likely failed." {
		t.Errorf("Diagnosis = %q", estimate.Diagnosis)
	}
}

func TestEstimateCustomAIPriceOutOfRange(t *testing.T) {
	// Абсурдная цена от AI не должна дойти до пользователя
	ai := &fakeAiPort{
		diagnosis: "Everything is broken.",
		priceUSD:  50000,
	}
	service, _ := newTestDiagnosisService(t, ai, nil)

	estimate, err := service.Estimate(context.Background(), domain.DiagnosisRequest{
		Category:    "Television",
		Brand:       "Sony",
		CustomIssue: "The screen flickers and shows colored lines sometimes",
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if estimate.Source != domain.EstimateSourceHeuristic {
		t.Errorf("Source = %s, want heuristic after out-of-range AI price", estimate.Source)
	}
}

func TestEstimateUSDRateFallback(t *testing.T) {
	ai := &fakeAiPort{diagnosis: "Worn drive belt.", priceUSD: 10}
	rates := &fakeRatesPort{err: errors.New("timeout")}
	service, _ := newTestDiagnosisService(t, ai, rates)

	estimate, err := service.Estimate(context.Background(), domain.DiagnosisRequest{
		Category:    "Washing Machine",
		Brand:       "LG",
		CustomIssue: "The drum does not spin even though the motor hums",
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	// 10 USD * 56.5 (фолбэк из конфига), округление до 5, минимум 500
	if estimate.EstimatedCost != 565 {
		t.Errorf("EstimatedCost = %d, want 565", estimate.EstimatedCost)
	}
}

func TestPredefinedIssues(t *testing.T) {
	service, _ := newTestDiagnosisService(t, nil, nil)

	issues, err := service.PredefinedIssues("Refrigerator")
	if err != nil {
		t.Fatalf("PredefinedIssues: %v", err)
	}
	if len(issues) == 0 {
		t.Error("expected a non-empty issue list")
	}

	if _, err := service.PredefinedIssues("Dishwasher"); !errors.Is(err, domain.ErrUnknownCategory) {
		t.Errorf("unknown category: %v, want ErrUnknownCategory", err)
	}
}
