package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/ttsaudio"
	"github.com/ik5/ttsaudio/formats/pcm"
	"github.com/ik5/ttsaudio/speech"
)

var (
	decodeOutput    string
	decodeRawOutput string
	decodeQuery     string
	decodeRaw      bool
	decodeRate     int
	decodeChannels int
	decodePlay     bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode [input]",
	Short: "Convert base64 PCM to WAV",
	Long: `Convert base64 encoded 16-bit PCM into a WAV file.

The input is a saved generateContent JSON response, from which the audio is
extracted with a jq expression, or plain base64 text when --raw is given.
Input is read from stdin when no file or "-" is given.

Examples:
  ttsaudio decode response.json -o speech.wav
  ttsaudio decode --raw payload.b64 --rate 16000 -o speech.wav
  ttsaudio decode response.json --raw-output speech.pcm
  curl ... | ttsaudio decode --query '.candidates[0].content.parts[] | .inlineData.data' --play`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "", "write WAV to this file")
	decodeCmd.Flags().StringVar(&decodeRawOutput, "raw-output", "", "write whole frames as raw s16le PCM to this file")
	decodeCmd.Flags().StringVarP(&decodeQuery, "query", "q", speech.DefaultPayloadQuery, "jq expression locating the base64 audio")
	decodeCmd.Flags().BoolVar(&decodeRaw, "raw", false, "input is base64 text, not JSON")
	decodeCmd.Flags().IntVar(&decodeRate, "rate", 0, "sample rate (default TTS_SAMPLE_RATE)")
	decodeCmd.Flags().IntVar(&decodeChannels, "channels", 0, "channel count (default TTS_CHANNELS)")
	decodeCmd.Flags().BoolVar(&decodePlay, "play", false, "play the result")

	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	if decodeOutput == "" && decodeRawOutput == "" && !decodePlay {
		return fmt.Errorf("nothing to do, use -o, --raw-output and/or --play")
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	data, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	text := string(data)
	if !decodeRaw {
		text, err = speech.ExtractPayload(cmd.Context(), data, decodeQuery)
		if err != nil {
			return err
		}
	}

	f := pcmFormat()
	if decodeRate != 0 {
		f.SampleRate = decodeRate
	}
	if decodeChannels != 0 {
		f.Channels = decodeChannels
	}

	wf, err := ttsaudio.DecodeBase64PCM(strings.TrimSpace(text), f.SampleRate, f.Channels)
	if err != nil {
		return err
	}

	if decodeOutput != "" {
		if err := writeWAV(decodeOutput, wf); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d frames, %v)\n",
			decodeOutput, wf.Frames(), wf.Duration().Round(time.Millisecond))
	}

	if decodeRawOutput != "" {
		raw, err := pcm.Marshal(wf)
		if err != nil {
			return err
		}
		if err := saveToFile(decodeRawOutput, raw); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", decodeRawOutput, formatBytes(int64(len(raw))))
	}

	if decodePlay {
		return play(cmd.Context(), wf)
	}

	return nil
}
