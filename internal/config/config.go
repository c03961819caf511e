package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultModel               = "llama-3.1-8b-instant"
	DefaultBaseURL             = "https://api.groq.com/openai/v1"
	DefaultMaxTokens           = 1024
	DefaultMatchTemperature    = 0.3
	DefaultGenerateTemperature = 0.7
	DefaultHost                = "0.0.0.0"
	DefaultPort                = 18790
	DefaultBufSize             = 100
	DefaultMaxConversations    = 10
	DefaultURLCheckTimeout     = 10
)

type Config struct {
	Provider ProviderConfig `json:"provider"`
	Advisor  AdvisorConfig  `json:"advisor"`
	Channels ChannelsConfig `json:"channels"`
	Gateway  GatewayConfig  `json:"gateway"`
	History  HistoryConfig  `json:"history"`
	Security SecurityConfig `json:"security"`
}

type ProviderConfig struct {
	APIKey    string `json:"apiKey"`
	BaseURL   string `json:"baseUrl,omitempty"`
	Model     string `json:"model"`
	MaxTokens int    `json:"maxTokens"`
}

type AdvisorConfig struct {
	MatchTemperature    float64 `json:"matchTemperature"`
	GenerateTemperature float64 `json:"generateTemperature"`
}

type ChannelsConfig struct {
	Telegram TelegramConfig `json:"telegram"`
	WebUI    WebUIConfig    `json:"webui"`
}

type TelegramConfig struct {
	Enabled   bool     `json:"enabled"`
	Token     string   `json:"token"`
	AllowFrom []string `json:"allowFrom"`
	Proxy     string   `json:"proxy,omitempty"`
}

type WebUIConfig struct {
	Enabled   bool     `json:"enabled"`
	AllowFrom []string `json:"allowFrom"`
}

type GatewayConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type HistoryConfig struct {
	Path             string `json:"path,omitempty"`
	MaxConversations int    `json:"maxConversations"`
	RetentionDays    int    `json:"retentionDays,omitempty"`
}

type SecurityConfig struct {
	VirusTotalAPIKey string `json:"virusTotalApiKey,omitempty"`
	URLCheckTimeout  int    `json:"urlCheckTimeout,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			BaseURL:   DefaultBaseURL,
			Model:     DefaultModel,
			MaxTokens: DefaultMaxTokens,
		},
		Advisor: AdvisorConfig{
			MatchTemperature:    DefaultMatchTemperature,
			GenerateTemperature: DefaultGenerateTemperature,
		},
		Channels: ChannelsConfig{},
		Gateway: GatewayConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		History: HistoryConfig{
			Path:             filepath.Join(ConfigDir(), "chat_history.json"),
			MaxConversations: DefaultMaxConversations,
		},
		Security: SecurityConfig{
			URLCheckTimeout: DefaultURLCheckTimeout,
		},
	}
}

func ConfigDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, ".hustlebot")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// LoadConfig reads ~/.hustlebot/config.json over the defaults, then
// applies environment overrides. A .env file in the working directory
// is loaded first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if key := os.Getenv("HUSTLEBOT_API_KEY"); key != "" {
		cfg.Provider.APIKey = key
	}
	if key := os.Getenv("GROQ_API_KEY"); key != "" && cfg.Provider.APIKey == "" {
		cfg.Provider.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && cfg.Provider.APIKey == "" {
		cfg.Provider.APIKey = key
	}
	if url := os.Getenv("HUSTLEBOT_BASE_URL"); url != "" {
		cfg.Provider.BaseURL = url
	}
	if model := os.Getenv("HUSTLEBOT_MODEL"); model != "" {
		cfg.Provider.Model = model
	}
	if token := os.Getenv("HUSTLEBOT_TELEGRAM_TOKEN"); token != "" {
		cfg.Channels.Telegram.Token = token
	}
	if key := os.Getenv("VIRUSTOTAL_API_KEY"); key != "" {
		cfg.Security.VirusTotalAPIKey = key
	}
	if path := os.Getenv("HUSTLEBOT_HISTORY_PATH"); path != "" {
		cfg.History.Path = path
	}
	if port := os.Getenv("HUSTLEBOT_PORT"); port != "" {
		if parsed, err := strconv.Atoi(port); err == nil {
			cfg.Gateway.Port = parsed
		}
	}

	if cfg.Provider.Model == "" {
		cfg.Provider.Model = DefaultModel
	}
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = DefaultBaseURL
	}
	if cfg.Provider.MaxTokens <= 0 {
		cfg.Provider.MaxTokens = DefaultMaxTokens
	}
	if cfg.Advisor.MatchTemperature <= 0 {
		cfg.Advisor.MatchTemperature = DefaultMatchTemperature
	}
	if cfg.Advisor.GenerateTemperature <= 0 {
		cfg.Advisor.GenerateTemperature = DefaultGenerateTemperature
	}
	if cfg.History.Path == "" {
		cfg.History.Path = DefaultConfig().History.Path
	}
	if cfg.History.MaxConversations <= 0 {
		cfg.History.MaxConversations = DefaultMaxConversations
	}
	if cfg.Security.URLCheckTimeout <= 0 {
		cfg.Security.URLCheckTimeout = DefaultURLCheckTimeout
	}

	return cfg, nil
}

func SaveConfig(cfg *Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(ConfigPath(), data, 0644)
}
