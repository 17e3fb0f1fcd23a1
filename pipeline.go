// SPDX-License-Identifier: EPL-2.0

package ttsaudio

import (
	"fmt"

	"github.com/ik5/ttsaudio/audio"
	"github.com/ik5/ttsaudio/formats/pcm"
	"github.com/ik5/ttsaudio/formats/wav"
	"github.com/ik5/ttsaudio/payload"
)

const (
	// DefaultSampleRate is the rate of the PCM returned by the speech model.
	DefaultSampleRate = 24000

	// DefaultChannels is the channel count of the PCM returned by the speech model.
	DefaultChannels = 1
)

// DecodeBase64PCM decodes a base64 payload of signed 16-bit little-endian
// interleaved PCM into a Waveform.
//
// Errors wrap payload.ErrMalformedInput for bad base64 text and
// audio.ErrInvalidParameter for a non-positive rate or channel count.
// Trailing partial frames are dropped.
func DecodeBase64PCM(data string, sampleRate, channels int) (*audio.Waveform, error) {
	raw, err := payload.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}

	wf, err := pcm.Decode(raw, sampleRate, channels)
	if err != nil {
		return nil, fmt.Errorf("decoding pcm: %w", err)
	}

	return wf, nil
}

// Base64ToWAV converts a base64 speech payload into a complete WAV file,
// assuming DefaultSampleRate and DefaultChannels.
//
// Example:
//
//	data, err := ttsaudio.Base64ToWAV(inlineData)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("speech.wav", data, 0o644)
func Base64ToWAV(data string) ([]byte, error) {
	return Base64ToWAVWith(data, DefaultSampleRate, DefaultChannels)
}

// Base64ToWAVWith is Base64ToWAV for PCM of a known rate and channel count.
func Base64ToWAVWith(data string, sampleRate, channels int) ([]byte, error) {
	wf, err := DecodeBase64PCM(data, sampleRate, channels)
	if err != nil {
		return nil, err
	}

	out, err := wav.Marshal(wf)
	if err != nil {
		return nil, fmt.Errorf("encoding wav: %w", err)
	}

	return out, nil
}
