// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds deterministic sample data for tests.
// It does not import the audio package so that package's own tests can use it.
package audiotest

import (
	"encoding/base64"
	"encoding/binary"
	"math"
)

// Channels returns channels slices of frames samples produced by fn.
func Channels(channels, frames int, fn func(frame int, channel int) float32) [][]float32 {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
		for f := range frames {
			data[c][f] = fn(f, c)
		}
	}

	return data
}

// Silence returns all-zero channel data.
func Silence(channels, frames int) [][]float32 {
	return Channels(channels, frames, func(int, int) float32 { return 0 })
}

// Constant returns channel data holding value everywhere.
func Constant(channels, frames int, value float32) [][]float32 {
	return Channels(channels, frames, func(int, int) float32 { return value })
}

// Sine returns a sine tone at frequency Hz on every channel.
func Sine(sampleRate, channels, frames int, frequency float64) [][]float32 {
	return Channels(channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// PCM16 encodes samples as signed 16-bit little-endian bytes.
func PCM16(samples ...int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}

	return buf
}

// Base64PCM16 is PCM16 wrapped in standard padded base64, the shape the
// speech API returns.
func Base64PCM16(samples ...int16) string {
	return base64.StdEncoding.EncodeToString(PCM16(samples...))
}
