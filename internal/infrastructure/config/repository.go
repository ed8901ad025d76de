package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"pdfutils/internal/domain/entities"
)

const (
	// EnvPrefix префикс переменных окружения, например PDFUTILS_UI_MODE
	EnvPrefix = "PDFUTILS"
	// LicenseEnv переменная окружения с ключом unipdf
	LicenseEnv = "UNIDOC_LICENSE_API_KEY"
	// DefaultPath имя файла конфигурации по умолчанию
	DefaultPath = "config.yaml"
	// DefaultEnvFile файл с переменными окружения
	DefaultEnvFile = ".env"
)

// Repository реализация репозитория конфигурации.
// Приоритет: значения по умолчанию, YAML файл, .env, переменные окружения, флаги.
type Repository struct {
	v       *viper.Viper
	envFile string
}

// NewRepository создает новый репозиторий конфигурации
func NewRepository() *Repository {
	return NewRepositoryWithEnvFile(DefaultEnvFile)
}

// NewRepositoryWithEnvFile позволяет указать путь к .env файлу; пустая строка отключает его
func NewRepositoryWithEnvFile(envFile string) *Repository {
	v := viper.New()
	setDefaults(v, entities.DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Repository{v: v, envFile: envFile}
}

// Viper отдает экземпляр viper для привязки флагов командной строки
func (r *Repository) Viper() *viper.Viper {
	return r.v
}

// Load загружает конфигурацию из файла
func (r *Repository) Load(configPath string) (*entities.Config, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			r.v.SetConfigFile(configPath)
			r.v.SetConfigType("yaml")
			if err := r.v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", configPath, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", configPath, err)
		}
	}

	if err := r.mergeEnvFile(); err != nil {
		return nil, err
	}

	var cfg entities.Config
	if err := r.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Engine.UniPDFLicenseKey == "" {
		cfg.Engine.UniPDFLicenseKey = os.Getenv(LicenseEnv)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save сохраняет конфигурацию в файл
func (r *Repository) Save(configPath string, config *entities.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// mergeEnvFile подмешивает значения .env на уровне файла конфигурации,
// поэтому настоящие переменные окружения и флаги остаются важнее.
func (r *Repository) mergeEnvFile() error {
	if r.envFile == "" {
		return nil
	}

	values, err := godotenv.Read(r.envFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read env file %s: %w", r.envFile, err)
	}

	if key, ok := values[LicenseEnv]; ok {
		if _, set := values[envName("engine.unipdf_license_key")]; !set {
			values[envName("engine.unipdf_license_key")] = key
		}
	}

	overrides := map[string]interface{}{}
	for _, key := range r.v.AllKeys() {
		value, ok := values[envName(key)]
		if !ok {
			continue
		}
		section, field, found := strings.Cut(key, ".")
		if !found {
			overrides[key] = value
			continue
		}
		nested, _ := overrides[section].(map[string]interface{})
		if nested == nil {
			nested = map[string]interface{}{}
			overrides[section] = nested
		}
		nested[field] = value
	}

	if len(overrides) == 0 {
		return nil
	}
	return r.v.MergeConfigMap(overrides)
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func setDefaults(v *viper.Viper, cfg *entities.Config) {
	v.SetDefault("scanner.directory", cfg.Scanner.Directory)

	v.SetDefault("engine.backend", cfg.Engine.Backend)
	v.SetDefault("engine.unipdf_license_key", cfg.Engine.UniPDFLicenseKey)
	v.SetDefault("engine.relaxed_validation", cfg.Engine.RelaxedValidation)

	v.SetDefault("watermark.image_max_px", cfg.Watermark.ImageMaxPx)
	v.SetDefault("watermark.opacity", cfg.Watermark.Opacity)

	v.SetDefault("output.log_level", cfg.Output.LogLevel)
	v.SetDefault("output.log_to_file", cfg.Output.LogToFile)
	v.SetDefault("output.log_file_name", cfg.Output.LogFileName)
	v.SetDefault("output.verbose", cfg.Output.Verbose)

	v.SetDefault("ui.mode", cfg.UI.Mode)
}
