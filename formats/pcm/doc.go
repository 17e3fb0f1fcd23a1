// SPDX-License-Identifier: EPL-2.0

// Package pcm converts between raw signed 16-bit little-endian PCM and
// audio.Waveform.
//
// Raw PCM carries no header, so the caller supplies the sample rate and
// channel count:
//
//	w, err := pcm.Decode(data, 24000, 1)
//
// Samples are normalized by dividing by 32768. A trailing partial frame,
// including a dangling odd byte, is dropped without error, and an empty
// input gives a zero-frame waveform.
//
// The reverse direction re-quantizes with utils.Float32ToInt16:
//
//	raw, err := pcm.Marshal(w)
//
// Decoder adapts Decode to audio.Decoder so raw PCM can sit in an
// audio.Registry next to the container formats.
package pcm
