package output

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"maskcompare/internal/domain/entity"
	"maskcompare/internal/domain/port"
	"maskcompare/internal/infrastructure/vision"
)

// PNGWriter сохраняет фигуру в <Dir>/<stem>_comparison.png
type PNGWriter struct {
	Dir  string
	opts vision.CanvasOptions
}

// NewPNGWriter создаёт вывод фигур в PNG-файлы.
func NewPNGWriter(dir string, opts vision.CanvasOptions) *PNGWriter {
	return &PNGWriter{Dir: dir, opts: opts}
}

// Path путь к файлу для фигуры.
func (w *PNGWriter) Path(fig *entity.Figure) string {
	base := filepath.Base(fig.Name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(w.Dir, stem+"_comparison.png")
}

// Show рисует фигуру и записывает её на диск.
func (w *PNGWriter) Show(ctx context.Context, fig *entity.Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	canvas, err := vision.RenderCanvas(fig, w.opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	path := w.Path(fig)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create figure file")
	}
	defer f.Close()

	if err := png.Encode(f, canvas); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return f.Close()
}

// Проверка реализации интерфейса
var _ port.FigureDisplay = (*PNGWriter)(nil)
