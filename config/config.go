package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"maskcompare/internal/domain/entity"
)

// Значения по умолчанию совпадают с путями эксперимента на Kaggle.
const (
	DefaultOutRoot  = "/kaggle/working/a3_sam2_camvid"
	DefaultImageDir = "/kaggle/input/camvid/CamVid/val"
	DefaultLabelDir = "/kaggle/input/camvid/CamVid/val_labels"
)

// DefaultSelectedImages изображения, показываемые по умолчанию.
var DefaultSelectedImages = []string{"0001TP_009900.png", "0001TP_009060.png"}

// Способы вывода фигуры
const (
	DisplayPNG    = "png"
	DisplayWindow = "window"
)

// Загрузчики изображений
const (
	BackendStd  = "std"
	BackendGoCV = "gocv"
)

type Config struct {
	Paths          entity.PathBundle
	CSVPath        string
	LogDir         string
	LogName        string
	LogLevel       string
	SelectedImages []string
	UseOverlays    bool
	OverlayAlpha   float64
	OutputDir      string
	Display        string
	ImageBackend   string
	PanelWidth     int
	TelegramToken  string
	TelegramChatID int64
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	outRoot := getenv("OUT_ROOT", DefaultOutRoot)

	cfg := &Config{
		Paths: entity.PathBundle{
			ImageDir:        getenv("IMG_DIR", DefaultImageDir),
			LabelDir:        getenv("LBL_DIR", DefaultLabelDir),
			BaselineMaskDir: getenv("MASK_BASELINE_DIR", filepath.Join(outRoot, "masks_baseline")),
			ImprovedMaskDir: getenv("MASK_IMPROVED_DIR", filepath.Join(outRoot, "masks_improved")),
		},
		CSVPath:        getenv("CSV_PATH", filepath.Join(outRoot, "camvid_val_dice.csv")),
		LogDir:         getenv("LOG_DIR", filepath.Join(outRoot, "logs")),
		LogName:        getenv("LOG_NAME", "evaluate"),
		LogLevel:       getenv("LOG_LEVEL", "INFO"),
		SelectedImages: splitList(getenv("SELECTED_IMAGES", strings.Join(DefaultSelectedImages, ","))),
		OutputDir:      getenv("OUTPUT_DIR", filepath.Join(outRoot, "figures")),
		Display:        strings.ToLower(getenv("DISPLAY_MODE", DisplayPNG)),
		ImageBackend:   strings.ToLower(getenv("IMAGE_BACKEND", BackendStd)),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
	}

	var err error
	if cfg.UseOverlays, err = strconv.ParseBool(getenv("USE_OVERLAYS", "true")); err != nil {
		return nil, errors.Wrap(err, "USE_OVERLAYS")
	}
	if cfg.OverlayAlpha, err = strconv.ParseFloat(getenv("OVERLAY_ALPHA", "0.4"), 64); err != nil {
		return nil, errors.Wrap(err, "OVERLAY_ALPHA")
	}
	if cfg.OverlayAlpha < 0 || cfg.OverlayAlpha > 1 {
		return nil, errors.Errorf("OVERLAY_ALPHA must be within [0, 1], got %v", cfg.OverlayAlpha)
	}
	if cfg.PanelWidth, err = strconv.Atoi(getenv("PANEL_WIDTH", "480")); err != nil {
		return nil, errors.Wrap(err, "PANEL_WIDTH")
	}
	if cfg.PanelWidth <= 0 {
		return nil, errors.Errorf("PANEL_WIDTH must be positive, got %d", cfg.PanelWidth)
	}
	if cfg.TelegramChatID, err = strconv.ParseInt(getenv("TELEGRAM_CHAT_ID", "0"), 10, 64); err != nil {
		return nil, errors.Wrap(err, "TELEGRAM_CHAT_ID")
	}

	switch cfg.Display {
	case DisplayPNG, DisplayWindow:
	default:
		return nil, errors.Errorf("unknown DISPLAY_MODE %q", cfg.Display)
	}
	switch cfg.ImageBackend {
	case BackendStd, BackendGoCV:
	default:
		return nil, errors.Errorf("unknown IMAGE_BACKEND %q", cfg.ImageBackend)
	}

	return cfg, nil
}

// TelegramEnabled отправка в Telegram включена, если заданы токен и чат.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
