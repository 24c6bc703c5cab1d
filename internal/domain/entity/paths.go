package entity

import (
	"fmt"
	"path/filepath"
)

// PathBundle набор каталогов с исходниками, разметкой и масками
type PathBundle struct {
	ImageDir        string // исходные фотографии
	LabelDir        string // ground-truth разметка
	BaselineMaskDir string // маски базовой модели
	ImprovedMaskDir string // маски улучшенной модели
}

// ImagePath путь к исходному изображению.
func (p PathBundle) ImagePath(name string) string {
	return filepath.Join(p.ImageDir, name)
}

// LabelCandidates возвращает возможные пути к разметке в порядке проверки.
func (p PathBundle) LabelCandidates(stem string) []string {
	return []string{
		filepath.Join(p.LabelDir, stem+".png"),
		filepath.Join(p.LabelDir, stem+"_L.png"),
	}
}

// MaskPath путь к маске вида <dir>/<stem>_<class>.png.
func (p PathBundle) MaskPath(stem string, class MaskClass, variant ModelVariant) string {
	dir := p.BaselineMaskDir
	if variant == VariantImproved {
		dir = p.ImprovedMaskDir
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", stem, class))
}
