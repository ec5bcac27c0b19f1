package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
)

// AiAdapter ходит в chat-completion API: сначала основной провайдер,
// при любой ошибке - запасной. Rate limit клиентский: минимальная
// пауза между вызовами плюс счетчик с окном охлаждения.
type AiAdapter struct {
	client *http.Client
	cfg    *config.Config
	logger out.LoggerPort

	mu            sync.Mutex
	lastCallAt    time.Time
	windowStart   time.Time
	callsInWindow int
	cooldownUntil time.Time
}

type provider struct {
	name  string
	url   string
	key   string
	model string
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

var priceRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

func NewAiAdapter(cfg *config.Config, logger out.LoggerPort) *AiAdapter {
	return &AiAdapter{
		client: &http.Client{Timeout: 30 * time.Second},
		cfg:    cfg,
		logger: logger,
	}
}

func (a *AiAdapter) Diagnose(ctx context.Context, category, brand, model, issue string) (string, error) {
	prompt := fmt.Sprintf(
		"You are an appliance repair expert. A customer has a %s %s (model: %s) with this problem: %q. "+
			"Give a short plain-language diagnosis of the most likely cause in 2-3 sentences. Do not mention prices.",
		brand, category, orUnknown(model), issue,
	)

	return a.complete(ctx, prompt)
}

func (a *AiAdapter) EstimatePriceUSD(ctx context.Context, category, brand, model, issue string) (float64, error) {
	prompt := fmt.Sprintf(
		"You are an appliance repair cost estimator. Estimate the typical repair cost in US dollars for a %s %s (model: %s) with this problem: %q. "+
			"Answer with a single number only, no currency sign, no explanation.",
		brand, category, orUnknown(model), issue,
	)

	content, err := a.complete(ctx, prompt)
	if err != nil {
		return 0, err
	}

	match := priceRe.FindString(content)
	if match == "" {
		return 0, fmt.Errorf("no number in AI response: %q", content)
	}

	price, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse AI price %q: %v", match, err)
	}

	return price, nil
}

func (a *AiAdapter) complete(ctx context.Context, prompt string) (string, error) {
	if err := a.acquire(); err != nil {
		return "", err
	}

	providers := []provider{
		{name: "primary", url: a.cfg.Ai.PrimaryURL, key: a.cfg.Ai.PrimaryKey, model: a.cfg.Ai.PrimaryModel},
		{name: "secondary", url: a.cfg.Ai.SecondaryURL, key: a.cfg.Ai.SecondaryKey, model: a.cfg.Ai.SecondaryModel},
	}

	var lastErr error
	for _, p := range providers {
		if p.url == "" {
			continue
		}

		content, err := a.callProvider(ctx, p, prompt)
		if err == nil {
			return content, nil
		}

		lastErr = err
		a.logger.Warn("ai.provider.failed", out.LogFields{
			"provider": p.name,
			"error":    err.Error(),
		})
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no AI provider configured")
	}
	return "", lastErr
}

func (a *AiAdapter) callProvider(ctx context.Context, p provider, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.key)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", fmt.Errorf("auth failed: status %d", resp.StatusCode)
	case http.StatusTooManyRequests:
		return "", fmt.Errorf("rate limited by provider")
	default:
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("malformed response: %v", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty choices in response")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty content in response")
	}

	return content, nil
}

// acquire применяет клиентский rate limit. Превышение лимита окна
// включает охлаждение - на это время AI-путь пропускается целиком.
func (a *AiAdapter) acquire() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := time.Now()

	if now.Before(a.cooldownUntil) {
		return fmt.Errorf("ai calls are cooling down until %s", a.cooldownUntil.Format(time.RFC3339))
	}

	if !a.lastCallAt.IsZero() {
		elapsed := now.Sub(a.lastCallAt)
		if elapsed < a.cfg.Ai.MinCallDelay {
			time.Sleep(a.cfg.Ai.MinCallDelay - elapsed)
			now = time.Now()
		}
	}

	if now.Sub(a.windowStart) > a.cfg.Ai.CooldownWindow {
		a.windowStart = now
		a.callsInWindow = 0
	}

	a.callsInWindow++
	if a.callsInWindow > a.cfg.Ai.MaxCalls {
		a.cooldownUntil = a.windowStart.Add(a.cfg.Ai.CooldownWindow)
		return fmt.Errorf("ai call budget exceeded, cooling down")
	}

	a.lastCallAt = now
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
