// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini text-to-speech model.
const DefaultModel = "gemini-2.5-flash-preview-tts"

// contentGenerator is the part of genai.Models the synthesizer uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiSynthesizer synthesizes speech with the Gemini API.
type GeminiSynthesizer struct {
	models contentGenerator
	model  string
	logger *zap.Logger
}

// NewGeminiSynthesizer creates a synthesizer backed by the Gemini API.
// An empty model selects DefaultModel.
func NewGeminiSynthesizer(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiSynthesizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return newGeminiSynthesizer(client.Models, model, logger), nil
}

func newGeminiSynthesizer(models contentGenerator, model string, logger *zap.Logger) *GeminiSynthesizer {
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiSynthesizer{models: models, model: model, logger: logger}
}

// Model returns the model name requests are sent to.
func (g *GeminiSynthesizer) Model() string { return g.model }

// Synthesize validates req, asks the model for audio and returns the first
// inline audio part of the first candidate.
func (g *GeminiSynthesizer) Synthesize(ctx context.Context, req Request) (*Audio, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{genai.NewPartFromText(req.Text)},
	}}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityAudio)},
		SpeechConfig:       speechConfig(req),
	}

	g.logger.Debug("requesting speech",
		zap.String("model", g.model),
		zap.String("mode", string(req.Mode)),
		zap.String("voice", string(req.Voice)),
		zap.Int("text_length", len(req.Text)))

	resp, err := g.models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate speech: %w", err)
	}

	blob := inlineAudio(resp)
	if blob == nil {
		return nil, ErrNoAudio
	}

	g.logger.Debug("speech generated",
		zap.String("mime_type", blob.MIMEType),
		zap.Int("audio_size", len(blob.Data)))

	return &Audio{MIMEType: blob.MIMEType, PCM: blob.Data}, nil
}

func speechConfig(req Request) *genai.SpeechConfig {
	if req.Mode == ModeMulti {
		return &genai.SpeechConfig{
			MultiSpeakerVoiceConfig: &genai.MultiSpeakerVoiceConfig{
				SpeakerVoiceConfigs: []*genai.SpeakerVoiceConfig{
					{Speaker: SpeakerA, VoiceConfig: voiceConfig(req.Voice)},
					{Speaker: SpeakerB, VoiceConfig: voiceConfig(req.SecondVoice)},
				},
			},
		}
	}

	return &genai.SpeechConfig{VoiceConfig: voiceConfig(req.Voice)}
}

func voiceConfig(v Voice) *genai.VoiceConfig {
	return &genai.VoiceConfig{
		PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: string(v)},
	}
}

func inlineAudio(resp *genai.GenerateContentResponse) *genai.Blob {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}

	content := resp.Candidates[0].Content
	if content == nil {
		return nil
	}

	for _, part := range content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData
		}
	}

	return nil
}
