package vision

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"maskcompare/internal/domain/entity"
)

// CanvasOptions параметры раскладки фигуры.
type CanvasOptions struct {
	PanelWidth int // ширина одной панели в пикселях
	Margin     int // отступ между панелями
}

// DefaultCanvasOptions раскладка по умолчанию.
func DefaultCanvasOptions() CanvasOptions {
	return CanvasOptions{PanelWidth: 480, Margin: 12}
}

// RenderCanvas собирает панели фигуры в одно изображение сеткой 2x3
// с заголовками над каждой панелью.
func RenderCanvas(fig *entity.Figure, opts CanvasOptions) (image.Image, error) {
	if fig == nil {
		return nil, errors.New("figure is nil")
	}
	if len(fig.Panels) != entity.FigureRows*entity.FigureCols {
		return nil, errors.Errorf("figure %s has %d panels, want %d", fig.Name, len(fig.Panels), entity.FigureRows*entity.FigureCols)
	}
	if opts.PanelWidth <= 0 {
		opts.PanelWidth = DefaultCanvasOptions().PanelWidth
	}

	scaled := make([]image.Image, len(fig.Panels))
	panelH := 0
	maxLines := 1
	for i, p := range fig.Panels {
		if p.Image == nil {
			return nil, errors.Errorf("panel %q has no image", p.Title)
		}
		scaled[i] = scalePanel(p, opts.PanelWidth)
		if h := scaled[i].Bounds().Dy(); h > panelH {
			panelH = h
		}
		if n := len(strings.Split(p.Title, "\n")); n > maxLines {
			maxLines = n
		}
	}

	face := basicfont.Face7x13
	lineH := float64(face.Height) + 4
	titleH := int(lineH*float64(maxLines)) + opts.Margin/2
	cellW := opts.PanelWidth + opts.Margin
	cellH := panelH + titleH + opts.Margin

	dc := gg.NewContext(cellW*entity.FigureCols+opts.Margin, cellH*entity.FigureRows+opts.Margin)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetColor(color.Black)

	for i, p := range fig.Panels {
		col, row := i%entity.FigureCols, i/entity.FigureCols
		x0 := opts.Margin + col*cellW
		y0 := opts.Margin + row*cellH

		cx := float64(x0) + float64(opts.PanelWidth)/2
		for j, line := range strings.Split(p.Title, "\n") {
			dc.DrawStringAnchored(line, cx, float64(y0)+lineH*float64(j), 0.5, 1)
		}
		dc.DrawImage(scaled[i], x0, y0+titleH)
	}

	return dc.Image(), nil
}

func scalePanel(p entity.Panel, width int) image.Image {
	img := p.Image
	interp := resize.Bilinear
	if p.Grayscale {
		// маски показываем в оттенках серого без интерполяции между классами
		img = Stretch(img)
		interp = resize.NearestNeighbor
	}
	if img.Bounds().Dx() == width {
		return img
	}
	return resize.Resize(uint(width), 0, img, interp)
}
