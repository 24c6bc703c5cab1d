package port

import (
	"image"
	"image/color"
)

// MaskCompositor интерфейс наложения масок на изображение
type MaskCompositor interface {
	// Overlay накладывает цвет на передний план маски, исходник не меняется
	Overlay(img, mask image.Image, c color.RGBA, alpha float64) (image.Image, error)

	// ToGray приводит изображение к одному каналу
	ToGray(img image.Image) image.Image

	// CheckSameSize проверяет совпадение размеров маски и изображения
	CheckSameSize(img, mask image.Image) error
}
