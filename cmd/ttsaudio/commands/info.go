package commands

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/ttsaudio/audio"
)

var infoFormat string

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show the layout of an audio file",
	Long: `Decode a WAV, AIFF or raw PCM file and print its layout and peak level.

Raw PCM (.pcm, .raw) is read with TTS_SAMPLE_RATE and TTS_CHANNELS.

Example:
  ttsaudio info speech.wav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wf, err := decodeFile(newRegistry(pcmFormat()), args[0], infoFormat)
		if err != nil {
			return err
		}
		printInfo(cmd.OutOrStdout(), args[0], wf)
		return nil
	},
}

func init() {
	infoCmd.Flags().StringVar(&infoFormat, "format", "", "override the format detected from the extension (wav, aiff, pcm)")

	rootCmd.AddCommand(infoCmd)
}

func printInfo(w io.Writer, path string, wf *audio.Waveform) {
	fmt.Fprintf(w, "File:        %s\n", path)
	fmt.Fprintf(w, "Sample rate: %d Hz\n", wf.SampleRate)
	fmt.Fprintf(w, "Channels:    %d\n", wf.NumChannels())
	fmt.Fprintf(w, "Frames:      %d\n", wf.Frames())
	fmt.Fprintf(w, "Duration:    %v\n", wf.Duration().Round(time.Millisecond))
	fmt.Fprintf(w, "Peak:        %.4f\n", peak(wf))
}

// peak returns the largest absolute sample value.
func peak(wf *audio.Waveform) float64 {
	var p float64
	for _, ch := range wf.Data {
		for _, s := range ch {
			p = math.Max(p, math.Abs(float64(s)))
		}
	}
	return p
}
