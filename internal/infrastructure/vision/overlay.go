package vision

import (
	"image"
	"image/color"
	"math"

	"github.com/pkg/errors"
)

// MaskThreshold значения маски выше порога считаются передним планом.
const MaskThreshold = 127

var (
	ErrAlphaRange   = errors.New("alpha must be within [0, 1]")
	ErrSizeMismatch = errors.New("mask size does not match image size")
)

// Overlay накладывает полупрозрачный цвет на пиксели переднего плана маски.
// Исходное изображение не изменяется.
func Overlay(img image.Image, mask image.Image, c color.RGBA, alpha float64) (*image.RGBA, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return nil, errors.Wrapf(ErrAlphaRange, "alpha=%v", alpha)
	}
	if err := CheckSameSize(img, mask); err != nil {
		return nil, err
	}

	out := ToRGBA(img)
	fg := Foreground(mask)
	b := out.Bounds()
	col := [3]float64{float64(c.R), float64(c.G), float64(c.B)}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if !fg[y*b.Dx()+x] {
				continue
			}
			i := out.PixOffset(b.Min.X+x, b.Min.Y+y)
			for ch := 0; ch < 3; ch++ {
				out.Pix[i+ch] = blend(col[ch], float64(out.Pix[i+ch]), alpha)
			}
		}
	}

	return out, nil
}

// Foreground возвращает маску переднего плана построчно (len = w*h).
func Foreground(mask image.Image) []bool {
	// 16-битные маски сравниваются по исходному значению, без сжатия до 8 бит
	if g16, ok := mask.(*image.Gray16); ok {
		b := g16.Bounds()
		fg := make([]bool, b.Dx()*b.Dy())
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				fg[y*b.Dx()+x] = g16.Gray16At(b.Min.X+x, b.Min.Y+y).Y > MaskThreshold
			}
		}
		return fg
	}

	gray := ToGray(mask)
	b := gray.Bounds()
	fg := make([]bool, b.Dx()*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := gray.Pix[gray.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < b.Dx(); x++ {
			fg[y*b.Dx()+x] = row[x] > MaskThreshold
		}
	}
	return fg
}

// ToGray приводит изображение к одному каналу стандартным преобразованием яркости.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			gray.SetGray(x, y, color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray))
		}
	}
	return gray
}

// ToRGBA возвращает непрозрачную копию изображения с началом координат в (0,0).
// Альфа-канал отбрасывается, цвет берётся без премультипликации.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			out.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return out
}

// Stretch переводит изображение в оттенки серого и растягивает яркость в 0..255
// по минимуму и максимуму, как отображение с палитрой gray. 16-битные маски
// растягиваются по исходным значениям. Однотонное изображение не растягивается.
func Stretch(img image.Image) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	vals := make([]int, w*h)

	if g16, ok := img.(*image.Gray16); ok {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				vals[y*w+x] = int(g16.Gray16At(b.Min.X+x, b.Min.Y+y).Y)
			}
		}
	} else {
		gray := ToGray(img)
		gb := gray.Bounds()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				vals[y*w+x] = int(gray.GrayAt(gb.Min.X+x, gb.Min.Y+y).Y)
			}
		}
	}

	lo, hi := math.MaxInt, math.MinInt
	for _, v := range vals {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	out := image.NewGray(image.Rect(0, 0, w, h))
	for i, v := range vals {
		switch {
		case hi > lo:
			out.Pix[i] = uint8(((v-lo)*255 + (hi-lo)/2) / (hi - lo))
		case v > 255:
			out.Pix[i] = 255
		default:
			out.Pix[i] = uint8(v)
		}
	}
	return out
}

func blend(c, orig, alpha float64) uint8 {
	v := math.Round(c*alpha + orig*(1-alpha))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// CheckSameSize проверяет, что размеры маски и изображения совпадают.
func CheckSameSize(img, mask image.Image) error {
	ib, mb := img.Bounds(), mask.Bounds()
	if ib.Dx() != mb.Dx() || ib.Dy() != mb.Dy() {
		return errors.Wrapf(ErrSizeMismatch, "image %dx%d, mask %dx%d", ib.Dx(), ib.Dy(), mb.Dx(), mb.Dy())
	}
	return nil
}
