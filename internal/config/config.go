package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

type Config struct {
	Addr          string        `env:"DGW_ADDR" envDefault:":8080"`
	DataDir       string        `env:"DGW_DATA_DIR" envDefault:"data"`
	DBPath        string        `env:"DGW_DB_PATH"`
	StaticDir     string        `env:"DGW_STATIC_DIR"`
	LogLevel      string        `env:"DGW_LOG_LEVEL" envDefault:"info"`
	EnableSwagger bool          `env:"DGW_ENABLE_SWAGGER" envDefault:"false"`
	EditDebounce  time.Duration `env:"DGW_EDIT_DEBOUNCE" envDefault:"500ms"`

	AI AIConfig
}

// AIConfig selects the text generation backend. The credential itself lives
// in the settings store, not in the environment.
type AIConfig struct {
	Provider string        `env:"DGW_AI_PROVIDER" envDefault:"gemini"`
	Model    string        `env:"DGW_AI_MODEL"`
	BaseURL  string        `env:"DGW_AI_BASE_URL"`
	Timeout  time.Duration `env:"DGW_AI_TIMEOUT" envDefault:"60s"`
	Proxy    string        `env:"DGW_AI_PROXY"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg.DataDir = filepath.Clean(cfg.DataDir)
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "dutchghostwriter.db")
	}
	cfg.DBPath = filepath.Clean(cfg.DBPath)
	if cfg.StaticDir == "" {
		cfg.StaticDir = detectStaticDir()
	}
	cfg.StaticDir = filepath.Clean(cfg.StaticDir)

	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	switch cfg.AI.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic:
	case ProviderCompatible:
		if cfg.AI.BaseURL == "" {
			return Config{}, fmt.Errorf("DGW_AI_BASE_URL is required for provider %q", cfg.AI.Provider)
		}
	default:
		return Config{}, fmt.Errorf("unknown DGW_AI_PROVIDER %q", cfg.AI.Provider)
	}
	if cfg.EditDebounce < 0 {
		return Config{}, fmt.Errorf("DGW_EDIT_DEBOUNCE must not be negative")
	}

	return cfg, nil
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
