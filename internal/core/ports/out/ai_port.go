package out

import "context"

// AiPort - удаленная LLM-диагностика. Адаптер сам ходит по цепочке
// провайдеров (primary -> secondary) и применяет rate limit;
// наружу отдается только итоговая ошибка.
type AiPort interface {
	// Diagnose возвращает свободный текст диагноза
	Diagnose(ctx context.Context, category, brand, model, issue string) (string, error)

	// EstimatePriceUSD возвращает оценку стоимости ремонта в долларах
	EstimatePriceUSD(ctx context.Context, category, brand, model, issue string) (float64, error)
}
