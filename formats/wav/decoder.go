// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/ttsaudio/audio"
	"github.com/ik5/ttsaudio/utils"
)

// Decoder reads a 16-bit PCM WAV file into a Waveform. Chunks other than
// "fmt " and "data" are skipped.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Waveform, error) {
	// go-audio needs an io.ReadSeeker, so the file is held in memory.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	if len(data) < 12 {
		return nil, fmt.Errorf("%w: %d byte header", io.ErrUnexpectedEOF, len(data))
	}
	if !bytes.HasPrefix(data[:4], []byte("RIFF")) || !bytes.HasPrefix(data[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	dec := gowav.NewDecoder(bytes.NewReader(data))
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	if dec.NumChans == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	if dec.WavAudioFormat != 1 || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	channels := int(dec.NumChans)
	frames := len(buf.Data) / channels

	w, err := audio.NewWaveform(int(dec.SampleRate), channels, frames)
	if err != nil {
		return nil, err
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			w.Data[c][f] = utils.Int16ToFloat32(int16(buf.Data[base+c]))
		}
	}

	return w, nil
}
