//go:build gocv
// +build gocv

package vision

import (
	"context"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"maskcompare/internal/domain/entity"
	"maskcompare/internal/domain/port"
)

// Window показывает фигуру в окне OpenCV и ждёт нажатия клавиши.
type Window struct {
	opts CanvasOptions
}

// NewWindow создаёт вывод в окно HighGUI.
func NewWindow(opts CanvasOptions) *Window {
	return &Window{opts: opts}
}

// Show рисует фигуру и блокируется до нажатия клавиши.
func (w *Window) Show(ctx context.Context, fig *entity.Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	canvas, err := RenderCanvas(fig, w.opts)
	if err != nil {
		return err
	}

	mat, err := gocv.ImageToMatRGB(canvas)
	if err != nil {
		return errors.Wrap(err, "canvas to mat")
	}
	defer mat.Close()

	window := gocv.NewWindow(fig.Name)
	defer window.Close()

	window.IMShow(mat)
	window.WaitKey(0)
	return nil
}

// Проверка реализации интерфейса
var _ port.FigureDisplay = (*Window)(nil)
