package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/ttsaudio/audio"
	"github.com/ik5/ttsaudio/formats/aiff"
	"github.com/ik5/ttsaudio/formats/pcm"
	"github.com/ik5/ttsaudio/formats/wav"
	"github.com/ik5/ttsaudio/playback"
)

// pcmFormat is the layout of raw model PCM taken from the configuration.
func pcmFormat() pcm.Format {
	return pcm.Format{
		SampleRate: globalConfig.Audio.SampleRate,
		Channels:   globalConfig.Audio.Channels,
	}
}

// newRegistry returns the decoders available for input files.
func newRegistry(f pcm.Format) *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("pcm", pcm.Decoder{SampleRate: f.SampleRate, Channels: f.Channels})
	reg.Register("raw", pcm.Decoder{SampleRate: f.SampleRate, Channels: f.Channels})
	return reg
}

// formatKey returns the registry key for path, or override when set.
func formatKey(path, override string) string {
	if override != "" {
		return strings.ToLower(override)
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// decodeFile decodes path with the decoder registered for its extension.
func decodeFile(reg *audio.Registry, path, format string) (*audio.Waveform, error) {
	key := formatKey(path, format)
	dec, ok := reg.Get(key)
	if !ok {
		return nil, fmt.Errorf("unsupported format %q, use --format", key)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wf, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return wf, nil
}

// readInput reads a file, or stdin when path is "-" or empty.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// writeWAV encodes wf into path, creating parent directories.
func writeWAV(path string, wf *audio.Waveform) error {
	data, err := wav.Marshal(wf)
	if err != nil {
		return err
	}
	return saveToFile(path, data)
}

// saveToFile saves data to a file
func saveToFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// play blocks until wf has been played with the configured player.
func play(ctx context.Context, wf *audio.Waveform) error {
	player := playback.NewPlayer(playback.NewCommandSink(globalConfig.Audio.PlayerCommand, logger), logger)
	defer player.Close()

	if err := player.Play(ctx, wf); err != nil {
		return err
	}
	return player.Wait()
}

// formatBytes formats bytes to human readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
