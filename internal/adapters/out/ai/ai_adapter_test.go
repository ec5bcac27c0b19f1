package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
)

type nopLogger struct{}

func (l nopLogger) Debug(event string, fields out.LogFields) {}
func (l nopLogger) Info(event string, fields out.LogFields)  {}
func (l nopLogger) Warn(event string, fields out.LogFields)  {}
func (l nopLogger) Error(event string, fields out.LogFields) {}

func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

func chatServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer " {
			t.Error("missing bearer token")
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			w.Write([]byte(`{"choices":[{"message":{"content":"` + content + `"}}]}`))
		}
	}))
}

func newTestConfig(primaryURL, secondaryURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Ai.PrimaryURL = primaryURL
	cfg.Ai.PrimaryKey = "test-key"
	cfg.Ai.PrimaryModel = "test-model"
	cfg.Ai.SecondaryURL = secondaryURL
	cfg.Ai.SecondaryKey = "test-key-2"
	cfg.Ai.SecondaryModel = "test-model-2"
	cfg.Ai.MinCallDelay = 0
	cfg.Ai.MaxCalls = 100
	cfg.Ai.CooldownWindow = time.Minute
	return cfg
}

func TestEstimatePriceUSDParsesNumber(t *testing.T) {
	server := chatServer(t, http.StatusOK, "Around 120.50 dollars")
	defer server.Close()

	adapter := NewAiAdapter(newTestConfig(server.URL, ""), nopLogger{})

	price, err := adapter.EstimatePriceUSD(context.Background(), "Refrigerator", "Samsung", "", "not cooling")
	if err != nil {
		t.Fatalf("EstimatePriceUSD: %v", err)
	}
	if price != 120.50 {
		t.Errorf("price = %v, want 120.50", price)
	}
}

func TestEstimatePriceUSDNoNumber(t *testing.T) {
	server := chatServer(t, http.StatusOK, "I cannot estimate that")
	defer server.Close()

	adapter := NewAiAdapter(newTestConfig(server.URL, ""), nopLogger{})

	if _, err := adapter.EstimatePriceUSD(context.Background(), "Refrigerator", "Samsung", "", "not cooling"); err == nil {
		t.Error("expected an error for a response without a number")
	}
}

func TestDiagnoseFallsBackToSecondary(t *testing.T) {
	primary := chatServer(t, http.StatusInternalServerError, "")
	defer primary.Close()
	secondary := chatServer(t, http.StatusOK, "The compressor relay has failed.")
	defer secondary.Close()

	adapter := NewAiAdapter(newTestConfig(primary.URL, secondary.URL), nopLogger{})

	diagnosis, err := adapter.Diagnose(context.Background(), "Refrigerator", "Samsung", "", "not cooling")
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if diagnosis != "The compressor relay has failed." {
		t.Errorf("diagnosis = %q", diagnosis)
	}
}

func TestDiagnoseAllProvidersDown(t *testing.T) {
	primary := chatServer(t, http.StatusTooManyRequests, "")
	defer primary.Close()
	secondary := chatServer(t, http.StatusUnauthorized, "")
	defer secondary.Close()

	adapter := NewAiAdapter(newTestConfig(primary.URL, secondary.URL), nopLogger{})

	if _, err := adapter.Diagnose(context.Background(), "Refrigerator", "Samsung", "", "not cooling"); err == nil {
		t.Error("expected an error when all providers fail")
	}
}

func TestCallBudgetCooldown(t *testing.T) {
	server := chatServer(t, http.StatusOK, "ok 42")
	defer server.Close()

	cfg := newTestConfig(server.URL, "")
	cfg.Ai.MaxCalls = 2
	adapter := NewAiAdapter(cfg, nopLogger{})

	for i := 0; i < 2; i++ {
		if _, err := adapter.Diagnose(context.Background(), "Refrigerator", "Samsung", "", "not cooling"); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	// Третий вызов превышает бюджет окна
	if _, err := adapter.Diagnose(context.Background(), "Refrigerator", "Samsung", "", "not cooling"); err == nil {
		t.Error("expected a cooldown error after exceeding the call budget")
	}

	// Охлаждение действует и на последующие вызовы
	if _, err := adapter.Diagnose(context.Background(), "Refrigerator", "Samsung", "", "not cooling"); err == nil {
		t.Error("expected calls to stay blocked during cooldown")
	}
}
