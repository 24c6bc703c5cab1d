package app

import (
	"context"
	"image"
	"image/color"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"maskcompare/internal/domain/entity"
	"maskcompare/internal/domain/port"
)

// ErrLabelNotFound ни один из вариантов имени файла разметки не найден.
var ErrLabelNotFound = errors.New("label file not found")

// DefaultAlpha непрозрачность наложения масок.
const DefaultAlpha = 0.4

// Цвета наложения: базовая и улучшенная модель различаются яркостью.
var overlayColors = map[entity.MaskClass]map[entity.ModelVariant]color.RGBA{
	entity.ClassPeople: {
		entity.VariantBaseline: {G: 255, A: 255},
		entity.VariantImproved: {G: 200, A: 255},
	},
	entity.ClassVehicle: {
		entity.VariantBaseline: {B: 255, A: 255},
		entity.VariantImproved: {B: 200, A: 255},
	},
}

// Порядок панелей масок в сетке после Original и GT label.
var maskPanels = []struct {
	class   entity.MaskClass
	variant entity.ModelVariant
}{
	{entity.ClassPeople, entity.VariantBaseline},
	{entity.ClassPeople, entity.VariantImproved},
	{entity.ClassVehicle, entity.VariantBaseline},
	{entity.ClassVehicle, entity.VariantImproved},
}

// ComparisonService строит и показывает сравнение масок для выбранных изображений.
type ComparisonService struct {
	results    port.ResultRepository
	loader     port.ImageLoader
	compositor port.MaskCompositor
	display    port.FigureDisplay
	log        zerolog.Logger
	alpha      float64
}

// Report итог прохода по выбранным изображениям.
type Report struct {
	Shown  []string
	Failed map[string]error
}

// NewComparisonService создаёт сервис сравнения.
func NewComparisonService(results port.ResultRepository, loader port.ImageLoader, compositor port.MaskCompositor, display port.FigureDisplay, log zerolog.Logger) *ComparisonService {
	return &ComparisonService{
		results:    results,
		loader:     loader,
		compositor: compositor,
		display:    display,
		log:        log,
		alpha:      DefaultAlpha,
	}
}

// WithAlpha задаёт непрозрачность наложения.
func (s *ComparisonService) WithAlpha(alpha float64) *ComparisonService {
	s.alpha = alpha
	return s
}

// DisplaySelected показывает выбранные изображения в порядке строк CSV.
// Ошибка по одному изображению логируется и не прерывает обработку остальных.
func (s *ComparisonService) DisplaySelected(ctx context.Context, selected []string, paths entity.PathBundle, useOverlays bool) (*Report, error) {
	rows, err := s.results.Select(ctx, selected)
	if err != nil {
		return nil, errors.Wrap(err, "select results")
	}
	s.log.Info().Strs("images", selected).Msg("Displaying selected images")

	report := &Report{Failed: make(map[string]error)}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		s.log.Info().Msgf("Displaying %s", row.Image)
		if err := s.ShowResult(ctx, row, paths, useOverlays); err != nil {
			s.log.Error().Err(err).Str("image", row.Image).Msgf("Failed to display %s", row.Image)
			report.Failed[row.Image] = err
			continue
		}
		report.Shown = append(report.Shown, row.Image)
	}

	return report, nil
}

// ShowResult строит фигуру для строки и передаёт её в вывод.
func (s *ComparisonService) ShowResult(ctx context.Context, row entity.ResultRow, paths entity.PathBundle, useOverlays bool) error {
	fig, err := s.BuildFigure(row, paths, useOverlays)
	if err != nil {
		return err
	}
	return s.display.Show(ctx, fig)
}

// BuildFigure загружает исходник, разметку и четыре маски и собирает сетку 2x3.
func (s *ComparisonService) BuildFigure(row entity.ResultRow, paths entity.PathBundle, useOverlays bool) (*entity.Figure, error) {
	if row.Err != nil {
		return nil, errors.Wrap(row.Err, "result row")
	}

	stem := row.Stem()

	labelPath, err := ResolveLabel(paths, stem)
	if err != nil {
		return nil, err
	}

	masks := make([]image.Image, len(maskPanels))
	for i, mp := range maskPanels {
		masks[i], err = s.loader.LoadMask(paths.MaskPath(stem, mp.class, mp.variant))
		if err != nil {
			return nil, errors.Wrapf(err, "load %s %s mask", mp.variant, mp.class)
		}
	}

	img, err := s.loader.LoadRGB(paths.ImagePath(row.Image))
	if err != nil {
		return nil, errors.Wrap(err, "load image")
	}

	label, err := s.loader.LoadMask(labelPath)
	if err != nil {
		return nil, errors.Wrap(err, "load label")
	}

	fig := &entity.Figure{
		Name: row.Image,
		Panels: []entity.Panel{
			{Title: "Original", Image: img},
			{Title: "GT label", Image: s.compositor.ToGray(label), Grayscale: true},
		},
	}

	for i, mp := range maskPanels {
		panel := entity.Panel{Title: row.ScoreTitle(mp.class, mp.variant)}
		if useOverlays {
			panel.Image, err = s.compositor.Overlay(img, masks[i], overlayColors[mp.class][mp.variant], s.alpha)
			if err != nil {
				return nil, errors.Wrapf(err, "overlay %s %s", mp.variant, mp.class)
			}
		} else {
			if err := s.compositor.CheckSameSize(img, masks[i]); err != nil {
				return nil, errors.Wrapf(err, "%s %s mask", mp.variant, mp.class)
			}
			panel.Image = masks[i]
			panel.Grayscale = true
		}
		fig.Panels = append(fig.Panels, panel)
	}

	return fig, nil
}

// ResolveLabel ищет файл разметки: сначала <stem>.png, затем <stem>_L.png.
func ResolveLabel(paths entity.PathBundle, stem string) (string, error) {
	candidates := paths.LabelCandidates(stem)
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.Wrapf(ErrLabelNotFound, "tried %v", candidates)
}
