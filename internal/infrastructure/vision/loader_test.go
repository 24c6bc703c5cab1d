package vision

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestStdLoader_LoadRGBAndMask(t *testing.T) {
	dir := t.TempDir()

	mask := image.NewGray(image.Rect(0, 0, 3, 2))
	mask.SetGray(1, 1, color.Gray{Y: 255})
	writePNG(t, filepath.Join(dir, "m.png"), mask)
	writePNG(t, filepath.Join(dir, "rgb.png"), gradientRGB(3, 2))

	l := NewStdLoader()

	img, err := l.LoadRGB(filepath.Join(dir, "rgb.png"))
	require.NoError(t, err)
	require.IsType(t, &image.RGBA{}, img)
	require.Equal(t, gradientRGB(3, 2).RGBAAt(2, 1), img.(*image.RGBA).RGBAAt(2, 1))

	m, err := l.LoadMask(filepath.Join(dir, "m.png"))
	require.NoError(t, err)
	require.Equal(t, []bool{false, false, false, false, true, false}, Foreground(m))
}

func TestStdLoader_Errors(t *testing.T) {
	dir := t.TempDir()
	l := NewStdLoader()

	_, err := l.LoadMask(filepath.Join(dir, "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o644))
	_, err = l.LoadRGB(bad)
	require.Error(t, err)
}

func TestStdLoader_LoadRGBDropsAlpha(t *testing.T) {
	dir := t.TempDir()

	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	src.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	writePNG(t, filepath.Join(dir, "alpha.png"), src)

	img, err := NewStdLoader().LoadRGB(filepath.Join(dir, "alpha.png"))
	require.NoError(t, err)

	rgba := img.(*image.RGBA)
	require.Equal(t, color.RGBA{R: 200, G: 100, B: 50, A: 255}, rgba.RGBAAt(0, 0))
	// полностью прозрачный пиксель теряет цвет уже при кодировании PNG, но остаётся непрозрачным
	require.Equal(t, uint8(255), rgba.RGBAAt(1, 0).A)
}
