package port

import (
	"context"

	"maskcompare/internal/domain/entity"
)

// FigureDisplay интерфейс вывода готовой фигуры
type FigureDisplay interface {
	// Show показывает (сохраняет, отправляет) фигуру
	Show(ctx context.Context, fig *entity.Figure) error
}
