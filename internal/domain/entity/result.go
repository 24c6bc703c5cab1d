package entity

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaskClass класс объектов, для которого построена маска
type MaskClass string

const (
	ClassPeople  MaskClass = "people"
	ClassVehicle MaskClass = "vehicle"
)

// ModelVariant вариант модели сегментации
type ModelVariant string

const (
	VariantBaseline ModelVariant = "baseline"
	VariantImproved ModelVariant = "improved"
)

// ResultRow одна строка CSV с посчитанными Dice-коэффициентами
type ResultRow struct {
	Image               string  // имя файла исходного изображения
	DicePeopleBaseline  float64 // dice_people_baseline
	DicePeopleImproved  float64 // dice_people_improved
	DiceVehicleBaseline float64 // dice_vehicle_baseline
	DiceVehicleImproved float64 // dice_vehicle_improved
	Err                 error   // ошибка разбора строки, проявляется при отрисовке
}

// Stem возвращает имя файла без расширения.
func (r ResultRow) Stem() string {
	base := filepath.Base(r.Image)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Score возвращает Dice для пары класс/вариант.
func (r ResultRow) Score(class MaskClass, variant ModelVariant) float64 {
	switch {
	case class == ClassPeople && variant == VariantBaseline:
		return r.DicePeopleBaseline
	case class == ClassPeople && variant == VariantImproved:
		return r.DicePeopleImproved
	case class == ClassVehicle && variant == VariantBaseline:
		return r.DiceVehicleBaseline
	default:
		return r.DiceVehicleImproved
	}
}

// ScoreTitle подпись панели, например "People (Baseline)\nDice=0.810".
func (r ResultRow) ScoreTitle(class MaskClass, variant ModelVariant) string {
	return fmt.Sprintf("%s (%s)\nDice=%.3f", capitalize(string(class)), capitalize(string(variant)), r.Score(class, variant))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
