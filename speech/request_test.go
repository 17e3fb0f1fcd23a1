// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoices(t *testing.T) {
	t.Parallel()

	v := Voices()
	assert.Equal(t, []Voice{VoiceZephyr, VoicePuck, VoiceCharon, VoiceKore, VoiceFenrir}, v)

	// callers cannot change the package list
	v[0] = "Nobody"
	assert.Equal(t, VoiceZephyr, Voices()[0])
}

func TestParseVoice(t *testing.T) {
	t.Parallel()

	v, err := ParseVoice(" kore ")
	require.NoError(t, err)
	assert.Equal(t, VoiceKore, v)

	_, err = ParseVoice("Alloy")
	assert.ErrorIs(t, err, ErrUnknownVoice)
}

func TestRequest_WithDefaults(t *testing.T) {
	t.Parallel()

	r := Request{Text: "hi"}.WithDefaults()
	assert.Equal(t, ModeSingle, r.Mode)
	assert.Equal(t, VoiceZephyr, r.Voice)
	assert.Empty(t, r.SecondVoice)

	r = Request{Text: "hi", Mode: ModeMulti, Voice: VoicePuck}.WithDefaults()
	assert.Equal(t, ModeMulti, r.Mode)
	assert.Equal(t, VoicePuck, r.Voice)
	assert.Empty(t, r.SecondVoice)
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"single ok", Request{Text: "Hello", Mode: ModeSingle, Voice: VoiceZephyr}, nil},
		{"multi ok", Request{Text: "Speaker A: hi\nSpeaker B: hey", Mode: ModeMulti, Voice: VoiceZephyr, SecondVoice: VoicePuck}, nil},
		{"empty text", Request{Mode: ModeSingle, Voice: VoiceZephyr}, ErrEmptyText},
		{"whitespace text", Request{Text: " \n\t", Mode: ModeSingle, Voice: VoiceZephyr}, ErrEmptyText},
		{"multi without second voice", Request{Text: "hi", Mode: ModeMulti, Voice: VoiceZephyr}, ErrSecondVoiceRequired},
		{"unknown voice", Request{Text: "hi", Mode: ModeSingle, Voice: "Alloy"}, ErrUnknownVoice},
		{"unknown second voice", Request{Text: "hi", Mode: ModeMulti, Voice: VoiceKore, SecondVoice: "Echo"}, ErrUnknownVoice},
		{"unknown mode", Request{Text: "hi", Mode: "chorus", Voice: VoiceKore}, ErrUnknownMode},
		{"missing mode", Request{Text: "hi", Voice: VoiceKore}, ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
