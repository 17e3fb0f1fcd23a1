// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"errors"
	"os/exec"
	"slices"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/ttsaudio/audio"
	"github.com/ik5/ttsaudio/internal/audiotest"
)

func TestNewCommandSink_Command(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		command  string
		wantName string
		wantArgs []string
	}{
		{"default", "", "aplay", []string{"-q", "-t", "raw", "-f", "S16_LE", "-r", "24000", "-c", "1"}},
		{"bare aplay", "aplay", "aplay", []string{"-q", "-t", "raw", "-f", "S16_LE", "-r", "24000", "-c", "1"}},
		{"aplay with args", "aplay -D hw:1", "aplay", []string{"-D", "hw:1"}},
		{"custom", "ffplay -f s16le -ar 24000 -nodisp -autoexit -", "ffplay",
			[]string{"-f", "s16le", "-ar", "24000", "-nodisp", "-autoexit", "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name, args := NewCommandSink(tt.command, zap.NewNop()).Command(24000, 1)
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if !slices.Equal(args, tt.wantArgs) {
				t.Errorf("args = %q, want %q", args, tt.wantArgs)
			}
		})
	}
}

func requireCommand(t *testing.T, name string) {
	t.Helper()

	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func TestCommandSink_Play(t *testing.T) {
	t.Parallel()
	requireCommand(t, "cat")

	wf := &audio.Waveform{SampleRate: 8000, Data: audiotest.Sine(8000, 1, 8000, 440)}

	if err := NewCommandSink("cat", nil).Play(context.Background(), wf.Source()); err != nil {
		t.Errorf("Play() error = %v", err)
	}
}

func TestCommandSink_ProcessFails(t *testing.T) {
	t.Parallel()
	requireCommand(t, "false")

	wf := &audio.Waveform{SampleRate: 8000, Data: audiotest.Silence(1, 10)}

	err := NewCommandSink("false", nil).Play(context.Background(), wf.Source())
	if err == nil {
		t.Error("Play() error = nil, want exit error")
	}
}

func TestCommandSink_MissingProgram(t *testing.T) {
	t.Parallel()

	wf := &audio.Waveform{SampleRate: 8000, Data: audiotest.Silence(1, 10)}

	err := NewCommandSink("ttsaudio-no-such-player", nil).Play(context.Background(), wf.Source())
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("Play() error = %v, want exec.ErrNotFound", err)
	}
}

func TestCommandSink_Canceled(t *testing.T) {
	t.Parallel()
	requireCommand(t, "sleep")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	wf := &audio.Waveform{SampleRate: 8000, Data: audiotest.Silence(1, 10)}

	start := time.Now()
	err := NewCommandSink("sleep 10", nil).Play(ctx, wf.Source())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Play() error = %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Play() took %v, process was not killed", elapsed)
	}
}

func TestCommandSink_Closed(t *testing.T) {
	t.Parallel()

	sink := NewCommandSink("", nil)
	_ = sink.Close()

	wf := &audio.Waveform{SampleRate: 8000, Data: audiotest.Silence(1, 10)}
	if err := sink.Play(context.Background(), wf.Source()); !errors.Is(err, ErrSinkClosed) {
		t.Errorf("Play() error = %v, want ErrSinkClosed", err)
	}
}
