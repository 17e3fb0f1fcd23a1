// SPDX-License-Identifier: EPL-2.0

// Package audio provides the data model shared by every decoder and encoder.
//
// This package contains:
//   - Waveform, decoded audio held in memory, one float32 slice per channel
//   - Source interface for streaming interleaved samples
//   - Decoder interface and a Registry keyed by format name
//   - The error taxonomy used across the module
//
// # Waveform
//
// A Waveform stores its sample rate and the samples of each channel:
//
//	wf, err := audio.NewWaveform(24000, 1, frames)
//	wf.Data[0][i] = 0.25
//
// Samples are normally in [-1.0, 1.0]. Encoders clamp anything outside that
// range. All channels must have the same length; Validate reports
// ErrConsistency when they do not and ErrInvalidParameter for a non-positive
// sample rate or an empty channel list.
//
// # Source Interface
//
// Waveform.Source streams the samples frame by frame, which is what output
// devices consume:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples may return data together with io.EOF on the final read. dst
// must hold a whole number of frames.
//
// # Format Registry
//
// The Registry maps a format key to its Decoder:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("pcm", pcm.Decoder{SampleRate: 24000, Channels: 1})
//
//	decoder, ok := registry.Get("wav")
//	wf, err := decoder.Decode(file)
//
// The registry is safe for concurrent use.
//
// # Errors
//
//   - ErrInvalidParameter: bad sample rate, channel count or frame count
//   - ErrConsistency: channels of different lengths
//   - ErrInvalidDstSize: ReadSamples buffer not a multiple of the channel count
package audio
