package vision

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"

	"maskcompare/internal/domain/port"
)

// StdLoader загружает изображения декодерами стандартной библиотеки (PNG, JPEG).
type StdLoader struct{}

// NewStdLoader создаёт загрузчик без зависимости от OpenCV.
func NewStdLoader() *StdLoader {
	return &StdLoader{}
}

// LoadRGB загружает изображение и приводит его к RGBA.
func (l *StdLoader) LoadRGB(path string) (image.Image, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return ToRGBA(img), nil
}

// LoadMask загружает маску без преобразований.
func (l *StdLoader) LoadMask(path string) (image.Image, error) {
	return decodeFile(path)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return img, nil
}

// Проверка реализации интерфейса
var _ port.ImageLoader = (*StdLoader)(nil)
