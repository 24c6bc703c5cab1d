package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"maskcompare/internal/domain/entity"
)

func sixPanels(w, h int) []entity.Panel {
	panels := make([]entity.Panel, 0, 6)
	for _, title := range []string{"Original", "GT label", "a\nDice=0.100", "b\nDice=0.200", "c\nDice=0.300", "d\nDice=0.400"} {
		panels = append(panels, entity.Panel{Title: title, Image: gradientRGB(w, h), Grayscale: title == "GT label"})
	}
	return panels
}

func TestRenderCanvas_Grid(t *testing.T) {
	fig := &entity.Figure{Name: "x.png", Panels: sixPanels(40, 20)}
	opts := CanvasOptions{PanelWidth: 80, Margin: 10}

	img, err := RenderCanvas(fig, opts)
	require.NoError(t, err)

	b := img.Bounds()
	require.Equal(t, 3*(80+10)+10, b.Dx())
	// панели масштабируются пропорционально: 40x20 -> 80x40
	require.Greater(t, b.Dy(), 2*40)
}

func TestRenderCanvas_RejectsWrongPanelCount(t *testing.T) {
	fig := &entity.Figure{Name: "x.png", Panels: sixPanels(4, 4)[:5]}
	_, err := RenderCanvas(fig, DefaultCanvasOptions())
	require.Error(t, err)

	_, err = RenderCanvas(nil, DefaultCanvasOptions())
	require.Error(t, err)
}

func TestRenderCanvas_RejectsEmptyPanel(t *testing.T) {
	panels := sixPanels(4, 4)
	panels[3].Image = nil
	_, err := RenderCanvas(&entity.Figure{Panels: panels}, DefaultCanvasOptions())
	require.Error(t, err)
}

func TestScalePanel_GrayscaleKeepsWidth(t *testing.T) {
	p := entity.Panel{Image: gradientRGB(30, 10), Grayscale: true}
	out := scalePanel(p, 30)
	_, ok := out.(*image.Gray)
	require.True(t, ok)
}
