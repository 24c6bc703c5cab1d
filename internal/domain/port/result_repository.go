package port

import (
	"context"

	"maskcompare/internal/domain/entity"
)

// ResultRepository интерфейс хранилища посчитанных метрик
type ResultRepository interface {
	// All возвращает все строки в исходном порядке
	All(ctx context.Context) ([]entity.ResultRow, error)

	// Select возвращает строки, чьё изображение входит в names, в исходном порядке
	Select(ctx context.Context, names []string) ([]entity.ResultRow, error)
}
