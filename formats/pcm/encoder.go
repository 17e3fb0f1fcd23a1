// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"

	"github.com/ik5/ttsaudio/audio"
	"github.com/ik5/ttsaudio/utils"
)

// AppendFrames quantizes frames [from, to) of w and appends them to dst as
// interleaved s16le. w must already be valid.
func AppendFrames(dst []byte, w *audio.Waveform, from, to int) []byte {
	for f := from; f < to; f++ {
		for _, ch := range w.Data {
			dst = binary.LittleEndian.AppendUint16(dst, uint16(utils.Float32ToInt16(ch[f])))
		}
	}

	return dst
}

// AppendSamples quantizes already interleaved samples, as read from an
// audio.Source, and appends them to dst.
func AppendSamples(dst []byte, samples []float32) []byte {
	for _, s := range samples {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(utils.Float32ToInt16(s)))
	}

	return dst
}

// Marshal returns w as raw interleaved s16le PCM.
func Marshal(w *audio.Waveform) ([]byte, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	frames := w.Frames()
	buf := make([]byte, 0, frames*w.NumChannels()*BytesPerSample)

	return AppendFrames(buf, w, 0, frames), nil
}
