// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
	"time"
)

// MaxChannels is the largest channel count a 16-bit PCM container can describe.
const MaxChannels = math.MaxUint16

// Waveform is a decoded block of audio held in memory.
//
// Data holds one slice per channel; Data[c][f] is the amplitude of channel c at
// frame f, normally in [-1.0, 1.0]. Every channel has the same length.
// A Waveform is not modified after it is built: producers hand it over and
// consumers only read from it.
type Waveform struct {
	SampleRate int
	Data       [][]float32
}

// NewWaveform allocates a silent waveform of frames frames per channel.
func NewWaveform(sampleRate, channels, frames int) (*Waveform, error) {
	if err := checkParams(sampleRate, channels); err != nil {
		return nil, err
	}
	if frames < 0 {
		return nil, fmt.Errorf("%w: negative frame count %d", ErrInvalidParameter, frames)
	}

	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return &Waveform{SampleRate: sampleRate, Data: data}, nil
}

// NumChannels returns the number of channels.
func (w *Waveform) NumChannels() int { return len(w.Data) }

// Frames returns the number of frames, the per channel sample count.
func (w *Waveform) Frames() int {
	if len(w.Data) == 0 {
		return 0
	}
	return len(w.Data[0])
}

// Duration returns the play time of the waveform.
func (w *Waveform) Duration() time.Duration {
	if w.SampleRate <= 0 {
		return 0
	}
	return time.Duration(w.Frames()) * time.Second / time.Duration(w.SampleRate)
}

// Validate reports ErrInvalidParameter for a bad sample rate or channel
// count and ErrConsistency when channels differ in length.
func (w *Waveform) Validate() error {
	if w == nil {
		return fmt.Errorf("%w: nil waveform", ErrInvalidParameter)
	}
	if err := checkParams(w.SampleRate, len(w.Data)); err != nil {
		return err
	}

	frames := len(w.Data[0])
	for c := 1; c < len(w.Data); c++ {
		if len(w.Data[c]) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, channel 0 has %d",
				ErrConsistency, c, len(w.Data[c]), frames)
		}
	}

	return nil
}

// Interleaved returns the samples frame by frame (L R L R ... for stereo).
func (w *Waveform) Interleaved() []float32 {
	channels := w.NumChannels()
	frames := w.Frames()
	out := make([]float32, frames*channels)

	for c, ch := range w.Data {
		for f := range frames {
			out[f*channels+c] = ch[f]
		}
	}

	return out
}

// Source streams the waveform as interleaved samples. Each call returns an
// independent reader starting at frame 0.
func (w *Waveform) Source() Source {
	return &waveformSource{w: w}
}

func checkParams(sampleRate, channels int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParameter, sampleRate)
	}
	if channels < 1 || channels > MaxChannels {
		return fmt.Errorf("%w: channel count %d", ErrInvalidParameter, channels)
	}

	return nil
}

type waveformSource struct {
	w   *Waveform
	pos int // next frame to read
}

func (s *waveformSource) SampleRate() int { return s.w.SampleRate }
func (s *waveformSource) Channels() int   { return s.w.NumChannels() }
func (s *waveformSource) BufSize() int    { return 4096 }
func (s *waveformSource) Close() error    { return nil }

func (s *waveformSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := s.w.NumChannels()
	if channels == 0 || len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	remaining := s.w.Frames() - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, remaining)
	for f := range frames {
		for c, ch := range s.w.Data {
			dst[f*channels+c] = ch[s.pos+f]
		}
	}
	s.pos += frames

	if s.pos >= s.w.Frames() {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}
