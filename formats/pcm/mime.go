// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
	"mime"
	"strconv"
	"strings"
)

var ErrUnsupportedMIMEType = errors.New("unsupported PCM mime type")

// Format is the layout of a raw PCM payload.
type Format struct {
	SampleRate int
	Channels   int
}

// String renders the format as an audio/L16 media type.
func (f Format) String() string {
	return fmt.Sprintf("audio/L16; rate=%d; channels=%d", f.SampleRate, f.Channels)
}

// ParseMIMEType reads the layout out of an audio/L16 or audio/pcm media type
// such as "audio/L16;codec=pcm;rate=24000". Parameters that are missing keep
// the values from def.
func ParseMIMEType(s string, def Format) (Format, error) {
	mediaType, params, err := mime.ParseMediaType(s)
	if err != nil {
		return Format{}, fmt.Errorf("%w: %q: %w", ErrUnsupportedMIMEType, s, err)
	}

	switch strings.ToLower(mediaType) {
	case "audio/l16", "audio/pcm":
	default:
		return Format{}, fmt.Errorf("%w: %q", ErrUnsupportedMIMEType, mediaType)
	}

	if codec, ok := params["codec"]; ok && !strings.EqualFold(codec, "pcm") {
		return Format{}, fmt.Errorf("%w: codec %q", ErrUnsupportedMIMEType, codec)
	}

	f := def
	if v, ok := params["rate"]; ok {
		if f.SampleRate, err = strconv.Atoi(v); err != nil || f.SampleRate <= 0 {
			return Format{}, fmt.Errorf("%w: rate %q", ErrUnsupportedMIMEType, v)
		}
	}
	if v, ok := params["channels"]; ok {
		if f.Channels, err = strconv.Atoi(v); err != nil || f.Channels < 1 {
			return Format{}, fmt.Errorf("%w: channels %q", ErrUnsupportedMIMEType, v)
		}
	}

	return f, nil
}
