package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all assistant configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Assistant
	Assistant  AssistantConfig
	Classifier ClassifierConfig
	Session    SessionConfig
	Presenter  PresenterConfig

	// Collaborators
	Search     SearchConfig
	YouTube    YouTubeConfig
	Automation AutomationConfig
	ImageGen   ImageGenConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Enabled bool
	Port    int
	Mode    string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type AssistantConfig struct {
	Username      string
	AssistantName string
	Timezone      string
	DataDir       string
	HistorySize   int
	TurnTimeout   time.Duration
	SeedGreeting  bool
}

type ClassifierConfig struct {
	MaxRetries  int
	Temperature float64
}

type SessionConfig struct {
	Driver string // "sqlite" or "memory"
	DSN    string
}

type PresenterConfig struct {
	TTSEnabled bool
	TTSCommand string
}

type SearchConfig struct {
	APIKey   string
	CX       string
	Results  int
	CacheTTL time.Duration
	CacheMax int
}

type YouTubeConfig struct {
	APIKey string
}

type AutomationConfig struct {
	Workers int
	Browser string
	Editor  string
}

type ImageGenConfig struct {
	Enabled   bool
	APIKey    string
	ModelURL  string
	Images    int
	QueueSize int
}

// LLMConfig holds both provider chains: one for intent classification, one for answers.
type LLMConfig struct {
	Classifier ChainConfig
	Chat       ChainConfig
	Proxy      string
}

// ChainConfig is a priority-ordered provider chain with fallback/retry policy.
type ChainConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Options controls where Load looks for files.
type Options struct {
	ConfigFile string // explicit config file; empty means search paths
	EnvFile    string // .env file; missing file is not an error
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/assistant/
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading env file %s: %w", envFile, err)
	}

	v := viper.New()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/assistant/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Enabled = v.GetBool("http_server.enabled")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Assistant
	cfg.Assistant.Username = v.GetString("assistant.username")
	cfg.Assistant.AssistantName = v.GetString("assistant.assistant_name")
	cfg.Assistant.Timezone = v.GetString("assistant.timezone")
	cfg.Assistant.DataDir = v.GetString("assistant.data_dir")
	cfg.Assistant.HistorySize = v.GetInt("assistant.history_size")
	cfg.Assistant.TurnTimeout = v.GetDuration("assistant.turn_timeout")
	cfg.Assistant.SeedGreeting = v.GetBool("assistant.seed_greeting")

	cfg.Classifier.MaxRetries = v.GetInt("classifier.max_retries")
	cfg.Classifier.Temperature = v.GetFloat64("classifier.temperature")

	cfg.Session.Driver = v.GetString("session.driver")
	cfg.Session.DSN = v.GetString("session.dsn")

	cfg.Presenter.TTSEnabled = v.GetBool("presenter.tts_enabled")
	cfg.Presenter.TTSCommand = v.GetString("presenter.tts_command")

	// Collaborators
	cfg.Search.APIKey = expandEnvVar(v, v.GetString("search.api_key"))
	cfg.Search.CX = expandEnvVar(v, v.GetString("search.cx"))
	cfg.Search.Results = v.GetInt("search.results")
	cfg.Search.CacheTTL = v.GetDuration("search.cache_ttl")
	cfg.Search.CacheMax = v.GetInt("search.cache_max")
	if key := v.GetString("google_api_key"); key != "" && cfg.Search.APIKey == "" {
		cfg.Search.APIKey = key
	}

	cfg.YouTube.APIKey = expandEnvVar(v, v.GetString("youtube.api_key"))
	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = cfg.Search.APIKey
	}

	cfg.Automation.Workers = v.GetInt("automation.workers")
	cfg.Automation.Browser = v.GetString("automation.browser")
	cfg.Automation.Editor = v.GetString("automation.editor")

	cfg.ImageGen.Enabled = v.GetBool("imagegen.enabled")
	cfg.ImageGen.APIKey = expandEnvVar(v, v.GetString("imagegen.api_key"))
	cfg.ImageGen.ModelURL = v.GetString("imagegen.model_url")
	cfg.ImageGen.Images = v.GetInt("imagegen.images")
	cfg.ImageGen.QueueSize = v.GetInt("imagegen.queue_size")
	if hfKey := v.GetString("huggingface_api_key"); hfKey != "" && cfg.ImageGen.APIKey == "" {
		cfg.ImageGen.APIKey = hfKey
	}

	// LLM Provider Abstraction
	cfg.LLM.Proxy = v.GetString("llm.proxy")
	cfg.LLM.Classifier = loadChain(v, "llm.classifier")
	cfg.LLM.Chat = loadChain(v, "llm.chat")

	if err := validateChainConfig("classifier", &cfg.LLM.Classifier); err != nil {
		return nil, err
	}
	if err := validateChainConfig("chat", &cfg.LLM.Chat); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadChain(v *viper.Viper, key string) ChainConfig {
	chain := ChainConfig{
		FallbackEnabled: v.GetBool(key + ".fallback_enabled"),
		RetryAttempts:   v.GetInt(key + ".retry_attempts"),
		RetryDelay:      v.GetString(key + ".retry_delay"),
		MaxTotalTimeout: v.GetString(key + ".max_total_timeout"),
	}

	if !v.IsSet(key + ".providers") {
		return chain
	}

	providersList, ok := v.Get(key + ".providers").([]interface{})
	if !ok {
		return chain
	}
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		chain.Providers = append(chain.Providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}
	return chain
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.enabled", true)
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 30)

	v.SetDefault("assistant.username", "User")
	v.SetDefault("assistant.assistant_name", "Jarvis")
	v.SetDefault("assistant.timezone", "Local")
	v.SetDefault("assistant.data_dir", "data")
	v.SetDefault("assistant.history_size", 10)
	v.SetDefault("assistant.turn_timeout", "2m")
	v.SetDefault("assistant.seed_greeting", true)

	v.SetDefault("classifier.max_retries", 1)
	v.SetDefault("classifier.temperature", 0.2)

	v.SetDefault("session.driver", "sqlite")
	v.SetDefault("session.dsn", "data/assistant.db")

	v.SetDefault("presenter.tts_enabled", false)
	v.SetDefault("presenter.tts_command", "espeak-ng")

	v.SetDefault("search.results", 5)
	v.SetDefault("search.cache_ttl", "2m")
	v.SetDefault("search.cache_max", 64)

	v.SetDefault("automation.workers", 4)

	v.SetDefault("imagegen.enabled", true)
	v.SetDefault("imagegen.model_url", "https://api-inference.huggingface.co/models/stabilityai/stable-diffusion-xl-base-1.0")
	v.SetDefault("imagegen.images", 4)
	v.SetDefault("imagegen.queue_size", 4)

	// LLM defaults
	for _, chain := range []string{"llm.classifier", "llm.chat"} {
		v.SetDefault(chain+".fallback_enabled", true)
		v.SetDefault(chain+".retry_attempts", 2)
		v.SetDefault(chain+".retry_delay", "1s")
		v.SetDefault(chain+".max_total_timeout", "60s")
	}
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateChainConfig validates one LLM provider chain
func validateChainConfig(name string, cfg *ChainConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured for %s chain - add llm.%s.providers to config.yaml", name, name)
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("%s provider %d: name is required", name, i)
		}
		if provider.Model == "" {
			return fmt.Errorf("%s provider %s: model is required", name, provider.Name)
		}

		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("%s provider %s: priority must be positive", name, provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("%s provider %s: duplicate priority %d", name, provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers in %s chain", name)
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
