// SPDX-License-Identifier: EPL-2.0

// Package ttsaudio turns the audio returned by text-to-speech models into
// playable files.
//
// Speech APIs answer with headerless audio: base64 text carrying signed
// 16-bit little-endian PCM, mono, 24kHz. The package chains the three steps
// needed to make that usable:
//
//	base64 text --payload.Decode--> bytes --pcm.Decode--> audio.Waveform --wav.Encode--> WAV
//
// For the common case a single call is enough:
//
//	data, err := ttsaudio.Base64ToWAV(part.InlineData.Data)
//
// Each step is also available on its own:
//
//	raw, _ := payload.Decode(text)
//	wf, _ := pcm.Decode(raw, ttsaudio.DefaultSampleRate, ttsaudio.DefaultChannels)
//	_ = wav.Encode(file, wf)
//
// # Subpackages
//
//   - audio: the Waveform data model, Source and Decoder interfaces, Registry
//   - payload: forgiving base64 decoding
//   - formats/pcm: raw s16le PCM decoding and re-quantisation
//   - formats/wav: canonical 44-byte-header WAV encoding, WAV decoding
//   - formats/aiff: AIFF decoding
//   - speech: speech request model and the Gemini synthesizer
//   - playback: sinks and a player that never overlaps playbacks
//
// # Sample conversion
//
// Decoding divides by 32768 while encoding multiplies by 32767 and rounds,
// so a decode/encode round trip can move a sample by at most one step.
//
// # Errors
//
// All errors wrap one of the sentinels below and can be tested with errors.Is:
//   - payload.ErrMalformedInput
//   - audio.ErrInvalidParameter
//   - audio.ErrConsistency
package ttsaudio
