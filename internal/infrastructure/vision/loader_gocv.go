//go:build gocv
// +build gocv

package vision

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"maskcompare/internal/domain/port"
)

// ErrGoCVDisabled возвращается, если сборка без тега gocv.
var ErrGoCVDisabled = errors.New("gocv build tag is not enabled")

// GoCVLoader загружает изображения через OpenCV.
type GoCVLoader struct{}

// NewGoCVLoader создаёт загрузчик на gocv.
func NewGoCVLoader() *GoCVLoader {
	return &GoCVLoader{}
}

// LoadRGB читает файл как BGR и конвертирует в image.Image.
func (l *GoCVLoader) LoadRGB(path string) (image.Image, error) {
	return readMat(path, gocv.IMReadColor)
}

// LoadMask читает маску с исходным числом каналов, глубина приводится к 8 бит.
func (l *GoCVLoader) LoadMask(path string) (image.Image, error) {
	return readMat(path, gocv.IMReadAnyColor)
}

func readMat(path string, flags gocv.IMReadFlag) (image.Image, error) {
	mat := gocv.IMRead(path, flags)
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.Errorf("failed to read image %s", path)
	}

	// ToImage понимает только 1, 3 и 4 канала
	if mat.Channels() == 2 {
		return nil, errors.Errorf("unsupported channel count in %s", path)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, errors.Wrapf(err, "convert %s", path)
	}
	return img, nil
}

// Проверка реализации интерфейса
var _ port.ImageLoader = (*GoCVLoader)(nil)
