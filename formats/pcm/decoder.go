// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/ttsaudio/audio"
	"github.com/ik5/ttsaudio/utils"
)

// BytesPerSample is the width of one 16-bit sample.
const BytesPerSample = 2

// Decode interprets data as interleaved s16le PCM with the given layout.
func Decode(data []byte, sampleRate, channels int) (*audio.Waveform, error) {
	if channels < 1 || channels > audio.MaxChannels {
		return nil, fmt.Errorf("%w: channel count %d", audio.ErrInvalidParameter, channels)
	}

	frames := len(data) / BytesPerSample / channels

	w, err := audio.NewWaveform(sampleRate, channels, frames)
	if err != nil {
		return nil, err
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			off := (base + c) * BytesPerSample
			v := int16(binary.LittleEndian.Uint16(data[off : off+BytesPerSample]))
			w.Data[c][f] = utils.Int16ToFloat32(v)
		}
	}

	return w, nil
}

// Decoder reads a whole raw PCM stream with a fixed layout.
type Decoder struct {
	SampleRate int
	Channels   int
}

func (d Decoder) Decode(r io.Reader) (*audio.Waveform, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading pcm data: %w", err)
	}

	return Decode(data, d.SampleRate, d.Channels)
}
