// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/ttsaudio/audio"
	"github.com/ik5/ttsaudio/internal/audiotest"
)

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	data := audiotest.PCM16(0, 100, -100, 16384, -16384, 32000, -32000, 7)
	w, err := Decode(data, 24000, 2)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got, err := Marshal(w)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	if len(got) != len(data) {
		t.Fatalf("len(Marshal()) = %d, want %d", len(got), len(data))
	}

	// Decoding scales by 1/32768 and encoding by 32767, so each sample may
	// drift by one step.
	for i := 0; i < len(data); i += 2 {
		orig := int16(uint16(data[i]) | uint16(data[i+1])<<8)
		back := int16(uint16(got[i]) | uint16(got[i+1])<<8)
		if d := int(orig) - int(back); d < -1 || d > 1 {
			t.Errorf("sample %d: %d became %d", i/2, orig, back)
		}
	}
}

func TestMarshal_Clamps(t *testing.T) {
	t.Parallel()

	w := &audio.Waveform{SampleRate: 8000, Data: [][]float32{{1.5, -1.5}}}

	got, err := Marshal(w)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := audiotest.PCM16(32767, -32768)
	if !bytes.Equal(got, want) {
		t.Errorf("Marshal() = %v, want %v", got, want)
	}
}

func TestMarshal_Inconsistent(t *testing.T) {
	t.Parallel()

	w := &audio.Waveform{SampleRate: 8000, Data: [][]float32{{0, 0}, {0}}}

	got, err := Marshal(w)
	if !errors.Is(err, audio.ErrConsistency) {
		t.Errorf("Marshal() error = %v, want ErrConsistency", err)
	}
	if got != nil {
		t.Errorf("Marshal() returned %d bytes on error", len(got))
	}
}

func TestAppendSamples(t *testing.T) {
	t.Parallel()

	got := AppendSamples([]byte{0xAA}, []float32{0.5, -0.5})
	want := append([]byte{0xAA}, audiotest.PCM16(16384, -16384)...)

	if !bytes.Equal(got, want) {
		t.Errorf("AppendSamples() = %v, want %v", got, want)
	}
}

func TestAppendFrames_Range(t *testing.T) {
	t.Parallel()

	w := &audio.Waveform{SampleRate: 8000, Data: [][]float32{{0, 0.5, 1}, {0, -0.5, -1}}}

	got := AppendFrames(nil, w, 1, 2)
	want := audiotest.PCM16(16384, -16384)

	if !bytes.Equal(got, want) {
		t.Errorf("AppendFrames() = %v, want %v", got, want)
	}
}
