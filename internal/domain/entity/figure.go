package entity

import "image"

// FigureRows и FigureCols задают сетку фигуры 2x3.
const (
	FigureRows = 2
	FigureCols = 3
)

// Panel одна ячейка фигуры
type Panel struct {
	Title     string      // заголовок, может содержать перевод строки
	Image     image.Image // содержимое панели
	Grayscale bool        // маска без наложения, рисуется в оттенках серого
}

// Figure сравнение для одного изображения
type Figure struct {
	Name   string // имя исходного файла
	Panels []Panel
}

// Titles возвращает заголовки панелей в порядке сетки.
func (f *Figure) Titles() []string {
	titles := make([]string, 0, len(f.Panels))
	for _, p := range f.Panels {
		titles = append(titles, p.Title)
	}
	return titles
}
