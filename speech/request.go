// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"fmt"
	"slices"
	"strings"
)

// Mode selects between one voice and a two-speaker dialogue.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeMulti  Mode = "multi"
)

// Voice is the name of a prebuilt model voice.
type Voice string

const (
	VoiceZephyr Voice = "Zephyr"
	VoicePuck   Voice = "Puck"
	VoiceCharon Voice = "Charon"
	VoiceKore   Voice = "Kore"
	VoiceFenrir Voice = "Fenrir"
)

// Speaker labels the text must use in multi-speaker mode, e.g.
//
//	Speaker A: Hello!
//	Speaker B: Hi, how are you?
const (
	SpeakerA = "Speaker A"
	SpeakerB = "Speaker B"
)

var voices = []Voice{VoiceZephyr, VoicePuck, VoiceCharon, VoiceKore, VoiceFenrir}

// Voices returns the prebuilt voices in display order.
func Voices() []Voice {
	return slices.Clone(voices)
}

// Valid reports whether v is one of the prebuilt voices.
func (v Voice) Valid() bool {
	return slices.Contains(voices, v)
}

// ParseVoice resolves a voice name case-insensitively.
func ParseVoice(s string) (Voice, error) {
	for _, v := range voices {
		if strings.EqualFold(string(v), strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVoice, s)
}

// Request describes one synthesis call.
type Request struct {
	Text        string `json:"text" yaml:"text"`
	Mode        Mode   `json:"mode,omitempty" yaml:"mode,omitempty"`
	Voice       Voice  `json:"voice,omitempty" yaml:"voice,omitempty"`
	SecondVoice Voice  `json:"second_voice,omitempty" yaml:"second_voice,omitempty"`
}

// WithDefaults returns a copy of r with an empty mode set to single and an
// empty first voice set to Zephyr. In multi mode an empty second voice stays
// empty so Validate can report it.
func (r Request) WithDefaults() Request {
	if r.Mode == "" {
		r.Mode = ModeSingle
	}
	if r.Voice == "" {
		r.Voice = VoiceZephyr
	}
	return r
}

// Validate checks r after defaults are applied.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}

	switch r.Mode {
	case ModeSingle:
	case ModeMulti:
		if r.SecondVoice == "" {
			return ErrSecondVoiceRequired
		}
		if !r.SecondVoice.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownVoice, r.SecondVoice)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, r.Mode)
	}

	if !r.Voice.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownVoice, r.Voice)
	}

	return nil
}
