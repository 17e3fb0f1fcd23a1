// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/ttsaudio/audio"
	"github.com/ik5/ttsaudio/utils"
)

// readChunk is the number of interleaved samples pulled from the decoder per call.
const readChunk = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder decodes 16-bit PCM AIFF into an audio.Waveform.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Waveform, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	return readWaveform(dec)
}

// readWaveform drains dec and de-interleaves the samples into a Waveform.
func readWaveform(dec aiffReader) (*audio.Waveform, error) {
	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	buf := &goaudio.IntBuffer{
		Data:   make([]int, readChunk),
		Format: format,
	}

	var samples []int
	for {
		n, err := dec.PCMBuffer(buf)
		samples = append(samples, buf.Data[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffChunks, err)
		}
		if n == 0 {
			break
		}
	}

	channels := format.NumChannels
	frames := len(samples) / channels

	wf, err := audio.NewWaveform(format.SampleRate, channels, frames)
	if err != nil {
		return nil, err
	}

	for f := range frames {
		for c := range channels {
			wf.Data[c][f] = utils.Int16ToFloat32(int16(samples[f*channels+c]))
		}
	}

	return wf, nil
}
