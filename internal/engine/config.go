package engine

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/pelletier/go-toml/v2"
)

// Built-in defaults, overridden by the config file, then env, then flags.
const (
	DefaultModel        = "gpt-4.1-mini"
	DefaultMaxTokens    = 3000
	DefaultTemperature  = 0.7
	DefaultAPIBase      = "https://api.openai.com/v1"
	DefaultMCPPort      = "8892"
	DefaultFetchTimeout = 15 * time.Second
	DefaultLLMTimeout   = 120 * time.Second
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey      string // env only
	LLMAPIBase     string
	LLMModel       string
	LLMTemperature float64
	LLMMaxTokens   int
	LLMTimeout     time.Duration
	Languages      []string
	Template       Template
	FetchTimeout   time.Duration
	BrowserTLS     bool // load the watch page with a Chrome TLS fingerprint
	MCPPort        string
	HTTPClient     *http.Client
}

var cfg = DefaultConfig()

// Cfg exposes the engine configuration for sub-packages (sources, ytserver).
// Always points to the current cfg value.
var Cfg = &cfg

// Init installs c as the engine configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		LLMAPIBase:     DefaultAPIBase,
		LLMModel:       DefaultModel,
		LLMTemperature: DefaultTemperature,
		LLMMaxTokens:   DefaultMaxTokens,
		LLMTimeout:     DefaultLLMTimeout,
		Languages:      []string{"en"},
		Template:       TemplateSummary,
		FetchTimeout:   DefaultFetchTimeout,
		BrowserTLS:     true,
		MCPPort:        DefaultMCPPort,
	}
}

// fileConfig mirrors the TOML config file.
type fileConfig struct {
	LLM struct {
		BaseURL        string   `toml:"base_url"`
		Model          string   `toml:"model"`
		MaxTokens      int      `toml:"max_tokens"`
		Temperature    *float64 `toml:"temperature"`
		TimeoutSeconds int      `toml:"timeout_seconds"`
	} `toml:"llm"`
	YouTube struct {
		Languages           []string `toml:"languages"`
		Template            string   `toml:"template"`
		FetchTimeoutSeconds int      `toml:"fetch_timeout_seconds"`
		BrowserTLS          *bool    `toml:"browser_tls"`
	} `toml:"youtube"`
	Server struct {
		Port string `toml:"port"`
	} `toml:"server"`
}

// LoadConfig layers the optional TOML file at path and the environment over
// the defaults. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if strings.TrimSpace(path) != "" {
		if err := applyConfigFile(&c, path); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&c); err != nil {
		return Config{}, err
	}
	c.HTTPClient = &http.Client{Timeout: c.FetchTimeout}
	return c, nil
}

func applyConfigFile(c *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	var fc fileConfig
	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("config %s: %s", path, strict.String())
		}
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if fc.LLM.BaseURL != "" {
		c.LLMAPIBase = fc.LLM.BaseURL
	}
	if fc.LLM.Model != "" {
		c.LLMModel = fc.LLM.Model
	}
	if fc.LLM.MaxTokens > 0 {
		c.LLMMaxTokens = fc.LLM.MaxTokens
	}
	if fc.LLM.Temperature != nil {
		c.LLMTemperature = *fc.LLM.Temperature
	}
	if fc.LLM.TimeoutSeconds > 0 {
		c.LLMTimeout = time.Duration(fc.LLM.TimeoutSeconds) * time.Second
	}
	if len(fc.YouTube.Languages) > 0 {
		c.Languages = fc.YouTube.Languages
	}
	if fc.YouTube.Template != "" {
		tpl, err := ParseTemplate(fc.YouTube.Template)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		c.Template = tpl
	}
	if fc.YouTube.FetchTimeoutSeconds > 0 {
		c.FetchTimeout = time.Duration(fc.YouTube.FetchTimeoutSeconds) * time.Second
	}
	if fc.YouTube.BrowserTLS != nil {
		c.BrowserTLS = *fc.YouTube.BrowserTLS
	}
	if fc.Server.Port != "" {
		c.MCPPort = fc.Server.Port
	}
	return nil
}

func applyEnv(c *Config) error {
	c.LLMAPIKey = env.Str("LLM_API_KEY", env.Str("OPENAI_API_KEY", ""))
	c.LLMAPIBase = env.Str("LLM_API_BASE", c.LLMAPIBase)
	c.LLMModel = env.Str("LLM_MODEL", c.LLMModel)
	c.LLMMaxTokens = env.Int("LLM_MAX_TOKENS", c.LLMMaxTokens)
	c.LLMTemperature = env.Float("LLM_TEMPERATURE", c.LLMTemperature)
	c.LLMTimeout = env.Duration("LLM_TIMEOUT", c.LLMTimeout)
	c.FetchTimeout = env.Duration("FETCH_TIMEOUT", c.FetchTimeout)
	c.MCPPort = env.Str("MCP_PORT", c.MCPPort)
	if langs := env.List("YT_LANGS", ""); len(langs) > 0 {
		c.Languages = langs
	}
	if v := env.Str("YT_BROWSER_TLS", ""); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("YT_BROWSER_TLS: %w", err)
		}
		c.BrowserTLS = on
	}
	tpl, err := ParseTemplate(env.Str("YT_TEMPLATE", string(c.Template)))
	if err != nil {
		return fmt.Errorf("YT_TEMPLATE: %w", err)
	}
	c.Template = tpl
	return nil
}
