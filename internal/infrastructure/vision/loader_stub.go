//go:build !gocv
// +build !gocv

package vision

import (
	"image"

	"github.com/pkg/errors"
)

// ErrGoCVDisabled возвращается, если сборка без тега gocv.
var ErrGoCVDisabled = errors.New("gocv build tag is not enabled")

// GoCVLoader загрузчик-заглушка (без OpenCV).
type GoCVLoader struct{}

// NewGoCVLoader создаёт загрузчик-заглушку.
func NewGoCVLoader() *GoCVLoader {
	return &GoCVLoader{}
}

// LoadRGB возвращает ошибку, если сборка без тега gocv.
func (l *GoCVLoader) LoadRGB(path string) (image.Image, error) {
	_ = path
	return nil, ErrGoCVDisabled
}

// LoadMask возвращает ошибку, если сборка без тега gocv.
func (l *GoCVLoader) LoadMask(path string) (image.Image, error) {
	_ = path
	return nil, ErrGoCVDisabled
}
