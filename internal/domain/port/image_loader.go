package port

import "image"

// ImageLoader интерфейс загрузчика изображений с диска
type ImageLoader interface {
	// LoadRGB загружает цветное изображение
	LoadRGB(path string) (image.Image, error)

	// LoadMask загружает маску как есть (одно- или многоканальную)
	LoadMask(path string) (image.Image, error)
}
