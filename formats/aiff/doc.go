// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files into an audio.Waveform.
//
// Decoding is delegated to github.com/go-audio/aiff. The decoder reads the
// whole sound data chunk, de-interleaves it and normalises every sample by
// dividing by 32768, the same rule formats/pcm applies to raw speech output,
// so an AIFF and a WAV carrying the same PCM produce identical waveforms.
//
//	wf, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrOnlyPCM16bitSupported) {
//	    // 8, 24 and 32-bit files are rejected
//	}
//
// Input that is not an io.ReadSeeker is read fully into memory first,
// because go-audio needs to seek between chunks.
//
// # Errors
//
//   - ErrNotAiffFile: the FORM/AIFF header is missing
//   - ErrOnlyPCM16bitSupported: bit depth other than 16
//   - ErrUnsupportedAiffLayout: no channels or no sample rate
//   - ErrUnsupportedAiffChunks: the sound data could not be read
//
// AIFF-C and encoding AIFF are not supported; use formats/wav for output.
package aiff
