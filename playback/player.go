// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/ik5/ttsaudio/audio"
)

// session is one playback run. err is set before done is closed.
type session struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Player plays one waveform at a time on a sink. Starting a new playback
// stops the one in flight first, so two playbacks never overlap.
type Player struct {
	sink   Sink
	logger *zap.Logger

	mu      sync.Mutex
	current *session
	closed  bool
}

func NewPlayer(sink Sink, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{sink: sink, logger: logger}
}

// Play validates wf, stops any in-flight playback and starts wf in the
// background. Use Wait to block until it finishes.
func (p *Player) Play(ctx context.Context, wf *audio.Waveform) error {
	if err := wf.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPlayerClosed
	}

	p.stopLocked()

	playCtx, cancel := context.WithCancel(ctx)
	s := &session{cancel: cancel, done: make(chan struct{})}
	p.current = s

	p.logger.Debug("playback started",
		zap.Int("sample_rate", wf.SampleRate),
		zap.Int("channels", wf.NumChannels()),
		zap.Duration("duration", wf.Duration()))

	go func() {
		defer close(s.done)
		defer cancel()

		src := wf.Source()
		defer src.Close()

		err := p.sink.Play(playCtx, src)
		if errors.Is(err, context.Canceled) && playCtx.Err() != nil {
			err = nil
		}
		if err != nil {
			p.logger.Error("playback failed", zap.Error(err))
		}
		s.err = err
	}()

	return nil
}

// Playing reports whether a playback is in flight.
func (p *Player) Playing() bool {
	p.mu.Lock()
	s := p.current
	p.mu.Unlock()

	if s == nil {
		return false
	}

	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// Stop cancels the in-flight playback, if any, and waits for it to end.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.current == nil {
		return
	}

	p.current.cancel()
	<-p.current.done
}

// Wait blocks until the current playback ends and returns its error.
// A stopped playback returns nil.
func (p *Player) Wait() error {
	p.mu.Lock()
	s := p.current
	p.mu.Unlock()

	if s == nil {
		return nil
	}

	<-s.done
	return s.err
}

// Close stops playback and closes the sink. Calling Close more than once is
// safe.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	p.stopLocked()

	return p.sink.Close()
}
