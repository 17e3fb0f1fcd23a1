package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/ttsaudio/internal/server"
	"github.com/ik5/ttsaudio/speech"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	Long: `Run the HTTP service.

Endpoints:
  POST /api/speech   {"text", "mode", "voice", "second_voice"} -> audio/wav
  POST /api/decode   {"data", "sample_rate", "channels"}       -> audio/wav
  GET  /api/voices
  GET  /healthz
  GET  /metrics

Without an API key /api/speech answers 503 and the rest keeps working.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var synth speech.Synthesizer
		if err := globalConfig.RequireAPIKey(); err != nil {
			logger.Warn("speech synthesis disabled", zap.Error(err))
		} else {
			g, err := speech.NewGeminiSynthesizer(ctx, globalConfig.Speech.APIKey, globalConfig.Speech.Model, logger)
			if err != nil {
				return err
			}
			synth = g
		}

		addr := globalConfig.App.HTTPAddr
		if serveAddr != "" {
			addr = serveAddr
		}

		srv := server.New(synth, pcmFormat(), logger, server.NewMetrics())
		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default HTTP_ADDR)")

	rootCmd.AddCommand(serveCmd)
}
