// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ik5/ttsaudio/audio"
)

// DefaultCommand is the ALSA player shipped with most Linux distributions.
const DefaultCommand = "aplay"

// CommandSink pipes s16le PCM into the stdin of an external player.
type CommandSink struct {
	name   string
	args   func(sampleRate, channels int) []string
	logger *zap.Logger

	mu     sync.Mutex
	closed bool
}

// NewCommandSink creates a sink around command, a program name optionally
// followed by arguments. An empty command selects aplay with raw s16le
// input. Any other command gets its own arguments and nothing else, so it
// must already expect raw PCM on stdin.
func NewCommandSink(command string, logger *zap.Logger) *CommandSink {
	if logger == nil {
		logger = zap.NewNop()
	}

	fields := strings.Fields(command)
	if len(fields) == 0 {
		return &CommandSink{name: DefaultCommand, args: aplayArgs, logger: logger}
	}

	extra := fields[1:]
	args := func(int, int) []string { return extra }
	if fields[0] == DefaultCommand && len(extra) == 0 {
		args = aplayArgs
	}

	return &CommandSink{name: fields[0], args: args, logger: logger}
}

func aplayArgs(sampleRate, channels int) []string {
	return []string{
		"-q",
		"-t", "raw",
		"-f", "S16_LE",
		"-r", strconv.Itoa(sampleRate),
		"-c", strconv.Itoa(channels),
	}
}

// Command returns the program and arguments used for a given layout.
func (s *CommandSink) Command(sampleRate, channels int) (string, []string) {
	return s.name, s.args(sampleRate, channels)
}

func (s *CommandSink) Play(ctx context.Context, src audio.Source) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ErrSinkClosed
	}

	name, args := s.Command(src.SampleRate(), src.Channels())
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("creating stdin pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}

	s.logger.Debug("player started",
		zap.String("command", name),
		zap.Strings("args", args))

	streamErr := stream(ctx, stdin, src)
	closeErr := stdin.Close()
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if waitErr != nil {
		s.logger.Error("player failed",
			zap.String("command", name),
			zap.Error(waitErr),
			zap.String("stderr", stderr.String()))
		return fmt.Errorf("running %s: %w", name, waitErr)
	}

	return errors.Join(streamErr, closeErr)
}

func (s *CommandSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
