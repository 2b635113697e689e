package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string        `toml:"environment" validate:"oneof=development production"`
	Storage     StorageConfig `toml:"storage"`
	Logging     LoggingConfig `toml:"logging"`
	OCR         OCRConfig     `toml:"ocr"`
	Export      ExportConfig  `toml:"export"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path" validate:"required"`
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level  string   `toml:"level" validate:"oneof=debug info warn error"`
	Output []string `toml:"output" validate:"dive,oneof=stdout console file"`
}

// OCRConfig controls the text-extraction engines.
type OCRConfig struct {
	Language  string `toml:"language"`   // Tesseract language hint, e.g. "eng"
	DPI       int    `toml:"dpi"`        // DPI hint for image OCR, 0 = engine default
	EnableOCR bool   `toml:"enable_ocr"` // Allow image OCR via Tesseract (requires native libs)
	TempDir   string `toml:"temp_dir"`   // Scratch directory for PDF processing, "" = system temp
}

// ExportConfig controls serializer output.
type ExportConfig struct {
	OutputDir string `toml:"output_dir"`
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings are exposed in scriptum.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout", "file"},
		},
		OCR: OCRConfig{
			Language:  "eng",
			DPI:       0,
			EnableOCR: true,
		},
		Export: ExportConfig{
			OutputDir: "./exports",
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files. Later files
// override earlier files; environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("SCRIPTUM_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if badgerPath := os.Getenv("SCRIPTUM_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if reset := os.Getenv("SCRIPTUM_BADGER_RESET"); reset != "" {
		if r, err := strconv.ParseBool(reset); err == nil {
			config.Storage.Badger.ResetOnStartup = r
		}
	}

	if level := os.Getenv("SCRIPTUM_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("SCRIPTUM_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	if lang := os.Getenv("SCRIPTUM_OCR_LANGUAGE"); lang != "" {
		config.OCR.Language = lang
	}
	if dpi := os.Getenv("SCRIPTUM_OCR_DPI"); dpi != "" {
		if d, err := strconv.Atoi(dpi); err == nil {
			config.OCR.DPI = d
		}
	}
	if enable := os.Getenv("SCRIPTUM_OCR_ENABLE"); enable != "" {
		if e, err := strconv.ParseBool(enable); err == nil {
			config.OCR.EnableOCR = e
		}
	}

	if outDir := os.Getenv("SCRIPTUM_EXPORT_DIR"); outDir != "" {
		config.Export.OutputDir = outDir
	}
}

// Validate checks the configuration against struct validation tags.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction returns true when running in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
