// SPDX-License-Identifier: EPL-2.0

// Package speech models text-to-speech requests and talks to the Gemini
// speech model.
//
// A Request names the text, the mode and one or two prebuilt voices. In
// multi-speaker mode the first voice speaks the lines labelled "Speaker A:"
// and the second voice the lines labelled "Speaker B:".
//
//	synth, err := speech.NewGeminiSynthesizer(ctx, apiKey, "", logger)
//	out, err := synth.Synthesize(ctx, speech.Request{Text: "Hello!", Voice: speech.VoiceKore})
//	wf, err := out.Waveform(pcm.Format{SampleRate: 24000, Channels: 1})
//
// Responses saved from the REST API carry the audio as base64 text;
// ExtractPayload pulls it out with a jq expression so it can be handed to
// payload.Decode.
package speech
