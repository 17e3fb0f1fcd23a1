package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/ttsaudio/internal/config"
	"github.com/ik5/ttsaudio/internal/logging"
)

var (
	// Global flags
	envFile  string
	logLevel string

	globalConfig *config.Config
	logger       *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ttsaudio",
	Short: "Turn text-to-speech output into playable audio",
	Long: `ttsaudio - synthesize speech and convert raw model audio into WAV files.

Speech models return headerless 16-bit PCM, usually base64 encoded.
ttsaudio decodes it, wraps it in a WAV container and can play it.

Configuration (environment or .env):
  GEMINI_API_KEY   API key for the speech model (API_KEY is also accepted)
  TTS_MODEL        model name (default gemini-2.5-flash-preview-tts)
  TTS_SAMPLE_RATE  PCM sample rate (default 24000)
  TTS_CHANNELS     PCM channel count (default 1)
  PLAYER_COMMAND   external player reading raw PCM on stdin (default aplay)
  LOG_LEVEL        debug, info, warn, error (default info)
  APP_ENV          development or production (default development)
  HTTP_ADDR        listen address for 'serve' (default :8080)

Examples:
  ttsaudio speak "Hello there" -o hello.wav
  ttsaudio speak -f dialogue.yaml --play
  ttsaudio decode response.json -o speech.wav
  ttsaudio info speech.wav`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment from this file instead of .env")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL")
}

func initConfig(cmd *cobra.Command, _ []string) error {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.App.LogLevel
	if logLevel != "" {
		level = logLevel
	}

	l, err := logging.New(level, cfg.App.Development())
	if err != nil {
		return err
	}

	globalConfig = cfg
	logger = l
	return nil
}
