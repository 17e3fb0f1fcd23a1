// SPDX-License-Identifier: EPL-2.0

package ttsaudio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/ttsaudio/audio"
	"github.com/ik5/ttsaudio/internal/audiotest"
	"github.com/ik5/ttsaudio/payload"
)

func TestDecodeBase64PCM(t *testing.T) {
	t.Parallel()

	// 0x4000 and 0xC000 little-endian
	wf, err := DecodeBase64PCM("AEAAwA==", 8000, 1)
	if err != nil {
		t.Fatalf("DecodeBase64PCM() error = %v", err)
	}

	if wf.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", wf.SampleRate)
	}

	want := []float32{0.5, -0.5}
	if wf.Frames() != len(want) {
		t.Fatalf("Frames() = %d, want %d", wf.Frames(), len(want))
	}
	for i, v := range want {
		if wf.Data[0][i] != v {
			t.Errorf("Data[0][%d] = %v, want %v", i, wf.Data[0][i], v)
		}
	}
}

func TestDecodeBase64PCM_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		rate     int
		channels int
		want     error
	}{
		{"malformed", "!", 24000, 1, payload.ErrMalformedInput},
		{"zero rate", "AEAAwA==", 0, 1, audio.ErrInvalidParameter},
		{"zero channels", "AEAAwA==", 24000, 0, audio.ErrInvalidParameter},
		{"negative channels", "", 24000, -2, audio.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wf, err := DecodeBase64PCM(tt.data, tt.rate, tt.channels)
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodeBase64PCM() error = %v, want %v", err, tt.want)
			}
			if wf != nil {
				t.Errorf("DecodeBase64PCM() waveform = %v, want nil", wf)
			}
		})
	}
}

func TestBase64ToWAV_Header(t *testing.T) {
	t.Parallel()

	out, err := Base64ToWAV(audiotest.Base64PCM16(100, -100, 200))
	if err != nil {
		t.Fatalf("Base64ToWAV() error = %v", err)
	}

	if len(out) != 44+6 {
		t.Fatalf("len = %d, want 50", len(out))
	}

	if got := binary.LittleEndian.Uint32(out[24:28]); got != DefaultSampleRate {
		t.Errorf("sample rate = %d, want %d", got, DefaultSampleRate)
	}
	if got := binary.LittleEndian.Uint16(out[22:24]); got != DefaultChannels {
		t.Errorf("channels = %d, want %d", got, DefaultChannels)
	}
	if got := binary.LittleEndian.Uint32(out[40:44]); got != 6 {
		t.Errorf("data size = %d, want 6", got)
	}
}

func TestBase64ToWAV_Empty(t *testing.T) {
	t.Parallel()

	out, err := Base64ToWAV("")
	if err != nil {
		t.Fatalf("Base64ToWAV() error = %v", err)
	}
	if len(out) != 44 {
		t.Errorf("len = %d, want 44", len(out))
	}
}

func TestBase64ToWAV_Malformed(t *testing.T) {
	t.Parallel()

	out, err := Base64ToWAV("AAA!")
	if !errors.Is(err, payload.ErrMalformedInput) {
		t.Errorf("Base64ToWAV() error = %v, want ErrMalformedInput", err)
	}
	if out != nil {
		t.Errorf("Base64ToWAV() = %d bytes, want nil", len(out))
	}
}

// TestBase64ToWAVWith_RoundTrip decodes the result with an independent WAV
// reader and compares every sample against the source PCM.
func TestBase64ToWAVWith_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1, -1, 16384, -16384, 32767, -32768, 1234, -4321, 7}
	out, err := Base64ToWAVWith(audiotest.Base64PCM16(samples...), 16000, 2)
	if err != nil {
		t.Fatalf("Base64ToWAVWith() error = %v", err)
	}

	dec := gowav.NewDecoder(bytes.NewReader(out))
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}

	if int(dec.SampleRate) != 16000 || int(dec.NumChans) != 2 {
		t.Fatalf("format = %d Hz %d ch, want 16000 Hz 2 ch", dec.SampleRate, dec.NumChans)
	}
	if len(buf.Data) != len(samples) {
		t.Fatalf("got %d samples, want %d", len(buf.Data), len(samples))
	}

	for i, s := range samples {
		orig := float64(s) / 32768
		got := float64(buf.Data[i]) / 32767
		if diff := orig - got; diff > 1.0/32768 || diff < -1.0/32768 {
			t.Errorf("sample %d: got %v, want %v within 1/32768", i, got, orig)
		}
	}
}

func BenchmarkBase64ToWAV(b *testing.B) {
	data := audiotest.Base64PCM16(make([]int16, DefaultSampleRate)...)

	for b.Loop() {
		if _, err := Base64ToWAV(data); err != nil {
			b.Fatal(err)
		}
	}
}
