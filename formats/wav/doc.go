// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files.
//
// Decoding uses the github.com/go-audio/wav library, so files carrying extra
// chunks (LIST, bext, padding) are accepted. Encoding writes the canonical
// 44-byte header directly and is byte-for-byte deterministic.
//
// # Decoding WAV Files
//
//	w, err := wav.Decoder{}.Decode(file)
//
// The result is an audio.Waveform with samples normalized by 1/32768.
//
// # Writing WAV Files
//
//	err := wav.Encode(file, w)
//	data, err := wav.Marshal(w)
//
// Samples are quantized as clamp(round(x*32767), -32768, 32767), so
// out-of-range input saturates rather than wraps. A waveform whose channels
// differ in length fails with audio.ErrConsistency before anything is written.
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: interleaved little-endian samples
package wav
