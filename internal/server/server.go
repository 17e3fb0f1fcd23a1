// Package server exposes speech synthesis and base64 PCM conversion over
// HTTP. Every audio response is a complete WAV file.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/ik5/ttsaudio"
	"github.com/ik5/ttsaudio/audio"
	"github.com/ik5/ttsaudio/formats/pcm"
	"github.com/ik5/ttsaudio/formats/wav"
	"github.com/ik5/ttsaudio/payload"
	"github.com/ik5/ttsaudio/speech"
)

const maxBodySize = 32 << 20

var errNotConfigured = errors.New("speech synthesis is not configured")

// Server routes HTTP requests to the synthesizer and the audio pipeline.
type Server struct {
	synth   speech.Synthesizer
	format  pcm.Format
	logger  *zap.Logger
	metrics *Metrics
	app     *fiber.App
}

// New creates a server. synth may be nil, in which case /api/speech answers
// 503. format is the PCM layout assumed when a response or request does not
// name one.
func New(synth speech.Synthesizer, format pcm.Format, logger *zap.Logger, metrics *Metrics) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}

	s := &Server{
		synth:   synth,
		format:  format,
		logger:  logger,
		metrics: metrics,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "ttsaudio",
		BodyLimit:             maxBodySize,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	s.app.Use(recover.New())

	api := s.app.Group("/api")
	api.Post("/speech", s.instrument("speech", s.handleSpeech))
	api.Post("/decode", s.instrument("decode", s.handleDecode))
	api.Get("/voices", s.instrument("voices", s.handleVoices))

	s.app.Get("/healthz", s.handleHealth)
	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	return s
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server started", zap.String("address", ln.Addr().String()))
		errCh <- s.app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = s.app.ShutdownWithContext(shutdownCtx)
	// Serve may not have picked up the listener yet.
	_ = ln.Close()
	if err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

func (s *Server) instrument(route string, next fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := next(c)

		code := c.Response().StatusCode()
		if err != nil {
			code = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
		}
		s.metrics.RecordRequest(route, code)

		return err
	}
}

func (s *Server) handleSpeech(c *fiber.Ctx) error {
	if s.synth == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, errNotConfigured.Error())
	}

	var req speech.Request
	if err := decodeJSON(c.Body(), &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	start := time.Now()
	out, err := s.synth.Synthesize(c.UserContext(), req)
	s.metrics.RecordSynthesis(string(req.Mode), err == nil, time.Since(start))
	if err != nil {
		s.logger.Error("speech synthesis failed", zap.Error(err))
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	wf, err := out.Waveform(s.format)
	if err != nil {
		s.logger.Error("unusable audio from synthesizer",
			zap.String("mime_type", out.MIMEType),
			zap.Error(err))
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	return s.sendWAV(c, wf)
}

// decodeRequest is the body of POST /api/decode.
type decodeRequest struct {
	Data       string `json:"data"`
	SampleRate int    `json:"sample_rate,omitempty"`
	Channels   int    `json:"channels,omitempty"`
}

func (s *Server) handleDecode(c *fiber.Ctx) error {
	var req decodeRequest
	if err := decodeJSON(c.Body(), &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if req.SampleRate == 0 {
		req.SampleRate = s.format.SampleRate
	}
	if req.Channels == 0 {
		req.Channels = s.format.Channels
	}

	wf, err := ttsaudio.DecodeBase64PCM(req.Data, req.SampleRate, req.Channels)
	if err != nil {
		return fiber.NewError(statusFor(err), err.Error())
	}

	return s.sendWAV(c, wf)
}

type voicesResponse struct {
	Voices   []speech.Voice `json:"voices"`
	Modes    []speech.Mode  `json:"modes"`
	Speakers []string       `json:"speakers"`
}

func (s *Server) handleVoices(c *fiber.Ctx) error {
	return c.JSON(voicesResponse{
		Voices:   speech.Voices(),
		Modes:    []speech.Mode{speech.ModeSingle, speech.ModeMulti},
		Speakers: []string{speech.SpeakerA, speech.SpeakerB},
	})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": "ttsaudio"})
}

func (s *Server) sendWAV(c *fiber.Ctx, wf *audio.Waveform) error {
	data, err := wav.Marshal(wf)
	if err != nil {
		return fiber.NewError(statusFor(err), err.Error())
	}

	s.metrics.RecordWAV(len(data))

	c.Set(fiber.HeaderContentType, "audio/wav")
	return c.Status(fiber.StatusOK).Send(data)
}

// statusFor maps pipeline errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, payload.ErrMalformedInput),
		errors.Is(err, audio.ErrInvalidParameter),
		errors.Is(err, audio.ErrConsistency):
		return http.StatusBadRequest
	case errors.Is(err, wav.ErrDataTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// errorHandler renders every error as {"error": message}.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
