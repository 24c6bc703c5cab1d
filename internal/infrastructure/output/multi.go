package output

import (
	"context"
	stderrors "errors"

	"maskcompare/internal/domain/entity"
	"maskcompare/internal/domain/port"
)

// Multi отправляет фигуру во все выводы по очереди.
type Multi []port.FigureDisplay

// Show вызывает каждый вывод, ошибки объединяются.
func (m Multi) Show(ctx context.Context, fig *entity.Figure) error {
	var errs []error
	for _, d := range m {
		if err := d.Show(ctx, fig); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

var _ port.FigureDisplay = Multi(nil)
