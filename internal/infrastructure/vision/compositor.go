package vision

import (
	"image"
	"image/color"

	"maskcompare/internal/domain/port"
)

// Compositor реализация port.MaskCompositor поверх функций пакета.
type Compositor struct{}

// NewCompositor создаёт компоновщик масок.
func NewCompositor() *Compositor {
	return &Compositor{}
}

// Overlay см. vision.Overlay.
func (Compositor) Overlay(img, mask image.Image, c color.RGBA, alpha float64) (image.Image, error) {
	out, err := Overlay(img, mask, c, alpha)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToGray см. vision.ToGray.
func (Compositor) ToGray(img image.Image) image.Image {
	return ToGray(img)
}

// CheckSameSize см. vision.CheckSameSize.
func (Compositor) CheckSameSize(img, mask image.Image) error {
	return CheckSameSize(img, mask)
}

// Проверка реализации интерфейса
var _ port.MaskCompositor = (*Compositor)(nil)
