package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Config представляет конфигурацию приложения
type Config struct {
	Scanner   ScannerConfig   `yaml:"scanner" mapstructure:"scanner"`
	Engine    EngineConfig    `yaml:"engine" mapstructure:"engine"`
	Watermark WatermarkConfig `yaml:"watermark" mapstructure:"watermark"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	UI        UIConfig        `yaml:"ui" mapstructure:"ui"`
}

// ScannerConfig настройки выбора директории
type ScannerConfig struct {
	// Directory директория по умолчанию; пустая строка означает текущую
	Directory string `yaml:"directory" mapstructure:"directory"`
}

// EngineConfig настройки PDF движка
type EngineConfig struct {
	Backend           string `yaml:"backend" mapstructure:"backend"`
	UniPDFLicenseKey  string `yaml:"unipdf_license_key" mapstructure:"unipdf_license_key"`
	RelaxedValidation bool   `yaml:"relaxed_validation" mapstructure:"relaxed_validation"`
}

// WatermarkConfig настройки наложения водяного знака
type WatermarkConfig struct {
	ImageMaxPx int     `yaml:"image_max_px" mapstructure:"image_max_px"` // максимальная сторона растрового знака
	Opacity    float64 `yaml:"opacity" mapstructure:"opacity"`
}

// OutputConfig настройки вывода
type OutputConfig struct {
	LogLevel    string `yaml:"log_level" mapstructure:"log_level"`
	LogToFile   bool   `yaml:"log_to_file" mapstructure:"log_to_file"`
	LogFileName string `yaml:"log_file_name" mapstructure:"log_file_name"`
	Verbose     bool   `yaml:"verbose" mapstructure:"verbose"`
}

// UIConfig режим интерактивного интерфейса
type UIConfig struct {
	Mode string `yaml:"mode" mapstructure:"mode"`
}

// Допустимые значения
const (
	BackendPDFCPU = "pdfcpu"
	BackendUniPDF = "unipdf"

	UIModePlain = "plain"
	UIModeTUI   = "tui"
)

var (
	ErrInvalidBackend   = errors.New("engine backend must be pdfcpu or unipdf")
	ErrInvalidUIMode    = errors.New("ui mode must be plain or tui")
	ErrInvalidLogLevel  = errors.New("log level must be debug, info, warning or error")
	ErrInvalidImageSize = errors.New("watermark image_max_px must be positive")
	ErrInvalidOpacity   = errors.New("watermark opacity must be in (0, 1]")
)

// DefaultConfig конфигурация по умолчанию
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Backend:           BackendPDFCPU,
			RelaxedValidation: true,
		},
		Watermark: WatermarkConfig{
			ImageMaxPx: 1200,
			Opacity:    1.0,
		},
		Output: OutputConfig{
			LogLevel:    "info",
			LogToFile:   false,
			LogFileName: "pdfutils.log",
		},
		UI: UIConfig{
			Mode: UIModePlain,
		},
	}
}

// Validate проверяет корректность конфигурации приложения
func (c *Config) Validate() error {
	switch c.Engine.Backend {
	case BackendPDFCPU, BackendUniPDF:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Engine.Backend)
	}

	switch c.UI.Mode {
	case UIModePlain, UIModeTUI:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidUIMode, c.UI.Mode)
	}

	switch strings.ToLower(c.Output.LogLevel) {
	case "debug", "info", "warning", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Output.LogLevel)
	}

	if c.Watermark.ImageMaxPx <= 0 {
		return ErrInvalidImageSize
	}
	if c.Watermark.Opacity <= 0 || c.Watermark.Opacity > 1 {
		return ErrInvalidOpacity
	}

	return nil
}
