// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/ik5/ttsaudio/audio"
	"github.com/ik5/ttsaudio/formats/pcm"
)

// Sink is an audio output device.
type Sink interface {
	// Play blocks until src is drained, ctx is done or the output fails.
	Play(ctx context.Context, src audio.Source) error
	// Close releases the device.
	Close() error
}

// WriterSink streams s16le PCM into an io.Writer.
type WriterSink struct {
	w io.Writer

	mu     sync.Mutex
	closed bool
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Play(ctx context.Context, src audio.Source) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ErrSinkClosed
	}

	return stream(ctx, s.w, src)
}

// Close marks the sink closed. The writer is not closed, it belongs to the caller.
func (s *WriterSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// stream copies src to w as s16le, one source buffer at a time, checking ctx
// between buffers.
func stream(ctx context.Context, w io.Writer, src audio.Source) error {
	ch := max(src.Channels(), 1)
	size := max(src.BufSize()/ch*ch, ch)

	buf := make([]float32, size)
	out := make([]byte, 0, size*pcm.BytesPerSample)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = pcm.AppendSamples(out[:0], buf[:n])
			if _, werr := w.Write(out); werr != nil {
				return fmt.Errorf("writing samples: %w", werr)
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading samples: %w", err)
		}
	}
}
