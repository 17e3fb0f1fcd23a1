// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"context"

	"github.com/ik5/ttsaudio/audio"
	"github.com/ik5/ttsaudio/formats/pcm"
)

// Synthesizer turns text into raw audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) (*Audio, error)
}

// Audio is the headerless PCM returned by a Synthesizer.
type Audio struct {
	MIMEType string
	PCM      []byte
}

// Format resolves the PCM layout from the MIME type, falling back to def
// for parameters the type leaves out. An empty MIME type yields def.
func (a *Audio) Format(def pcm.Format) (pcm.Format, error) {
	if a.MIMEType == "" {
		return def, nil
	}
	return pcm.ParseMIMEType(a.MIMEType, def)
}

// Waveform decodes the PCM using the layout named by the MIME type.
func (a *Audio) Waveform(def pcm.Format) (*audio.Waveform, error) {
	f, err := a.Format(def)
	if err != nil {
		return nil, err
	}
	return pcm.Decode(a.PCM, f.SampleRate, f.Channels)
}
