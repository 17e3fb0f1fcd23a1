// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/ttsaudio/audio"
	"github.com/ik5/ttsaudio/formats/pcm"
)

// HeaderSize is the length of the canonical PCM WAV header.
const HeaderSize = 44

const bitsPerSample = 16

// Encode writes wf as a 16-bit PCM WAV file. Samples are re-quantized with
// utils.Float32ToInt16. Nothing is written when wf is invalid.
func Encode(w io.Writer, wf *audio.Waveform) error {
	if err := wf.Validate(); err != nil {
		return err
	}

	channels := wf.NumChannels()
	frames := wf.Frames()

	if uint64(wf.SampleRate) > math.MaxUint32 {
		return fmt.Errorf("%w: %d Hz does not fit a WAV header",
			audio.ErrInvalidParameter, wf.SampleRate)
	}

	size, err := dataSize(frames, channels)
	if err != nil {
		return err
	}

	if _, err := w.Write(header(wf.SampleRate, channels, size)); err != nil {
		return fmt.Errorf("%w", err)
	}

	if frames == 0 {
		return nil
	}

	// Write 8K frames at a time
	const chunkFrames = 8192
	buf := make([]byte, 0, min(frames, chunkFrames)*channels*2)

	for i := 0; i < frames; i += chunkFrames {
		end := min(i+chunkFrames, frames)
		buf = pcm.AppendFrames(buf[:0], wf, i, end)

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// Marshal returns wf as a complete WAV file.
func Marshal(wf *audio.Waveform) ([]byte, error) {
	var buf bytes.Buffer
	if wf != nil && len(wf.Data) > 0 {
		buf.Grow(HeaderSize + wf.Frames()*len(wf.Data)*2)
	}

	if err := Encode(&buf, wf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// dataSize returns the byte length of the data chunk, which together with
// the 36 header bytes after the RIFF size field must fit in 32 bits.
func dataSize(frames, channels int) (uint32, error) {
	size := uint64(frames) * uint64(channels) * bitsPerSample / 8
	if size > math.MaxUint32-36 {
		return 0, fmt.Errorf("%w: %d bytes", ErrDataTooLarge, size)
	}

	return uint32(size), nil
}

func header(sampleRate, channels int, dataSize uint32) []byte {
	numChannels := uint16(channels)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * uint16(bitsPerSample/8)
	riffSize := 36 + dataSize

	h := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], riffSize)
	copy(h[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(h[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(h[22:24], numChannels)
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], byteRate)
	binary.LittleEndian.PutUint16(h[32:34], blockAlign)
	binary.LittleEndian.PutUint16(h[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}
