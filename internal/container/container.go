package container

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"maskcompare/config"
	telegram "maskcompare/internal/api"
	app "maskcompare/internal/application"
	"maskcompare/internal/domain/port"
	"maskcompare/internal/infrastructure/output"
	"maskcompare/internal/infrastructure/storage"
	"maskcompare/internal/infrastructure/vision"
)

type Container struct {
	Results           port.ResultRepository
	Loader            port.ImageLoader
	Display           port.FigureDisplay
	ComparisonService *app.ComparisonService
}

// New собирает зависимости по конфигурации. Ошибка чтения CSV фатальна.
func New(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	results, err := storage.LoadCSVResultRepository(cfg.CSVPath)
	if err != nil {
		return nil, err
	}

	display, err := NewDisplay(cfg)
	if err != nil {
		return nil, err
	}

	loader := NewLoader(cfg)
	svc := app.NewComparisonService(results, loader, vision.NewCompositor(), display, log).WithAlpha(cfg.OverlayAlpha)

	return &Container{
		Results:           results,
		Loader:            loader,
		Display:           display,
		ComparisonService: svc,
	}, nil
}

// NewLoader выбирает загрузчик изображений.
func NewLoader(cfg *config.Config) port.ImageLoader {
	if cfg.ImageBackend == config.BackendGoCV {
		return vision.NewGoCVLoader()
	}
	return vision.NewStdLoader()
}

// NewDisplay собирает выводы: PNG или окно OpenCV, плюс Telegram, если настроен.
func NewDisplay(cfg *config.Config) (port.FigureDisplay, error) {
	opts := vision.DefaultCanvasOptions()
	opts.PanelWidth = cfg.PanelWidth

	var displays output.Multi
	switch cfg.Display {
	case config.DisplayWindow:
		displays = append(displays, vision.NewWindow(opts))
	default:
		displays = append(displays, output.NewPNGWriter(cfg.OutputDir, opts))
	}

	if cfg.TelegramEnabled() {
		publisher, err := telegram.NewPublisher(cfg.TelegramToken, cfg.TelegramChatID, opts)
		if err != nil {
			return nil, errors.Wrap(err, "telegram publisher")
		}
		displays = append(displays, publisher)
	}

	if len(displays) == 1 {
		return displays[0], nil
	}
	return displays, nil
}
