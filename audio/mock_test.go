package audio

import (
	"github.com/ik5/ttsaudio/internal/audiotest"
)

// newSilentWaveform creates a waveform of silence.
func newSilentWaveform(sampleRate, channels, frames int) *Waveform {
	return &Waveform{SampleRate: sampleRate, Data: audiotest.Silence(channels, frames)}
}

// newConstantWaveform creates a waveform holding value on every channel.
func newConstantWaveform(sampleRate, channels, frames int, value float32) *Waveform {
	return &Waveform{SampleRate: sampleRate, Data: audiotest.Constant(channels, frames, value)}
}

// newRampWaveform creates a waveform where every sample encodes its position,
// so interleaving mistakes are easy to spot.
func newRampWaveform(sampleRate, channels, frames int) *Waveform {
	return &Waveform{
		SampleRate: sampleRate,
		Data: audiotest.Channels(channels, frames, func(frame int, channel int) float32 {
			return float32(frame*10+channel) / 1000
		}),
	}
}
