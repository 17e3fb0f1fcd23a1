// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile is returned when the input lacks a RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")
	// ErrUnsupportedWavLayout is returned for a missing or unreadable fmt chunk.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	// ErrOnlyPCM16bitSupported is returned for anything but 16-bit integer PCM.
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	// ErrUnsupportedWavChunks is returned when the sample data cannot be read.
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	// ErrDataTooLarge is returned when the samples do not fit a 32-bit RIFF size.
	ErrDataTooLarge = errors.New("audio data too large for a WAV file")
)
