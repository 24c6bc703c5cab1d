//go:build !gocv
// +build !gocv

package vision

import (
	"context"

	"maskcompare/internal/domain/entity"
)

// Window вывод-заглушка (без OpenCV).
type Window struct {
	opts CanvasOptions
}

// NewWindow создаёт вывод-заглушку.
func NewWindow(opts CanvasOptions) *Window {
	return &Window{opts: opts}
}

// Show возвращает ошибку, если сборка без тега gocv.
func (w *Window) Show(ctx context.Context, fig *entity.Figure) error {
	_ = ctx
	_ = fig
	return ErrGoCVDisabled
}
