package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	// ErrMissingAPIKey indicates neither GEMINI_API_KEY nor API_KEY is set
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

	// ErrInvalidConfig indicates a setting with an unusable value
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds every setting of the application
type Config struct {
	Speech SpeechConfig
	Audio  AudioConfig
	App    AppConfig
}

// SpeechConfig holds the speech model settings
type SpeechConfig struct {
	APIKey string
	Model  string
}

// AudioConfig describes the PCM the model returns and how it is played
type AudioConfig struct {
	SampleRate    int
	Channels      int
	PlayerCommand string
}

type AppConfig struct {
	Env      string
	LogLevel string
	HTTPAddr string
}

// Development reports whether the app runs in a development environment
func (c AppConfig) Development() bool {
	return c.Env == "development"
}

// Load reads the configuration from the environment after loading .env.
// Explicit files must exist; the default .env is optional.
func Load(files ...string) (*Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{}

	// Speech
	cfg.Speech.APIKey = getEnvDefault("GEMINI_API_KEY", os.Getenv("API_KEY"))
	cfg.Speech.Model = getEnvDefault("TTS_MODEL", "gemini-2.5-flash-preview-tts")

	// Audio
	cfg.Audio.SampleRate = getEnvIntDefault("TTS_SAMPLE_RATE", 24000)
	cfg.Audio.Channels = getEnvIntDefault("TTS_CHANNELS", 1)
	cfg.Audio.PlayerCommand = os.Getenv("PLAYER_COMMAND")

	// App
	cfg.App.Env = getEnvDefault("APP_ENV", "development")
	cfg.App.LogLevel = getEnvDefault("LOG_LEVEL", "info")
	cfg.App.HTTPAddr = getEnvDefault("HTTP_ADDR", ":8080")

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequireAPIKey fails when no API key is configured. Offline commands never
// call it.
func (c *Config) RequireAPIKey() error {
	if c.Speech.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func getEnvDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func validateConfig(cfg *Config) error {
	if cfg.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: TTS_SAMPLE_RATE must be positive, got %d", ErrInvalidConfig, cfg.Audio.SampleRate)
	}
	if cfg.Audio.Channels < 1 {
		return fmt.Errorf("%w: TTS_CHANNELS must be at least 1, got %d", ErrInvalidConfig, cfg.Audio.Channels)
	}
	return nil
}
