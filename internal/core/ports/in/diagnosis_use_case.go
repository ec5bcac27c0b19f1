package in

import (
	"context"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
)

type DiagnosisUseCase interface {
	// Estimate всегда возвращает какую-то оценку: статические таблицы
	// для предопределенных неисправностей, AI с эвристическим
	// фолбэком для произвольного описания
	Estimate(ctx context.Context, req domain.DiagnosisRequest) (*domain.Estimate, error)

	// PredefinedIssues - список известных неисправностей категории
	PredefinedIssues(category string) ([]string, error)
}
