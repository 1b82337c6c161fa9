package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Tools struct {
		Drafter     string `yaml:"drafter"`     // structural parser binary
		WKHTMLToPDF string `yaml:"wkhtmltopdf"` // paginator binary
	} `yaml:"tools"`
	Render struct {
		Template      string `yaml:"template"`
		PDFTemplate   string `yaml:"pdf_template"`
		CoverTemplate string `yaml:"cover_template"`
		TempDir       string `yaml:"temp_dir"`
		Sanitize      bool   `yaml:"sanitize"`
	} `yaml:"render"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	var cfg Config
	cfg.Tools.Drafter = "drafter"
	cfg.Tools.WKHTMLToPDF = "wkhtmltopdf"
	cfg.Render.TempDir = filepath.Join(os.TempDir(), "specdoc")
	applyEnv(&cfg)
	return &cfg
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config over the defaults
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	applyEnv(cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if drafter := os.Getenv("SPECDOC_DRAFTER"); drafter != "" {
		cfg.Tools.Drafter = drafter
	}
	if paginator := os.Getenv("SPECDOC_WKHTMLTOPDF"); paginator != "" {
		cfg.Tools.WKHTMLToPDF = paginator
	}
	if tempDir := os.Getenv("SPECDOC_TEMP_DIR"); tempDir != "" {
		cfg.Render.TempDir = tempDir
	}
}
