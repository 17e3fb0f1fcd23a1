package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/ttsaudio/speech"
)

var (
	speakFile        string
	speakOutput      string
	speakMode        string
	speakVoice       string
	speakSecondVoice string
	speakPlay        bool
	speakRawOutput   string
)

var speakCmd = &cobra.Command{
	Use:   "speak [text]",
	Short: "Synthesize speech with the Gemini speech model",
	Long: `Synthesize speech and save it as WAV, play it, or both.

Text comes from the arguments or from a request file (-f). Flags override
values from the file.

In multi-speaker mode label every line with "Speaker A:" or "Speaker B:";
--voice speaks for Speaker A and --second-voice for Speaker B.

Example request file (dialogue.yaml):
  text: |
    Speaker A: Hi there! How can I help you today?
    Speaker B: I'd like to know more about multi-speaker text-to-speech.
  mode: multi
  voice: Zephyr
  second_voice: Puck

Examples:
  ttsaudio speak "Hello there" -o hello.wav
  ttsaudio speak -f dialogue.yaml --play`,
	RunE: runSpeak,
}

func init() {
	speakCmd.Flags().StringVarP(&speakFile, "file", "f", "", "request file (YAML or JSON)")
	speakCmd.Flags().StringVarP(&speakOutput, "output", "o", "", "write WAV to this file")
	speakCmd.Flags().StringVar(&speakMode, "mode", "", "single or multi")
	speakCmd.Flags().StringVar(&speakVoice, "voice", "", "voice, or Speaker A voice in multi mode")
	speakCmd.Flags().StringVar(&speakSecondVoice, "second-voice", "", "Speaker B voice in multi mode")
	speakCmd.Flags().BoolVar(&speakPlay, "play", false, "play the result")
	speakCmd.Flags().StringVar(&speakRawOutput, "raw-output", "", "also write the raw PCM to this file")

	rootCmd.AddCommand(speakCmd)
}

// buildRequest merges the request file, the arguments and the flags.
func buildRequest(args []string) (speech.Request, error) {
	var req speech.Request

	if speakFile != "" {
		loaded, err := speech.LoadRequest(speakFile)
		if err != nil {
			return req, err
		}
		req = *loaded
	}

	if len(args) > 0 {
		req.Text = strings.Join(args, " ")
	}
	if speakMode != "" {
		req.Mode = speech.Mode(strings.ToLower(speakMode))
	}
	if speakVoice != "" {
		v, err := speech.ParseVoice(speakVoice)
		if err != nil {
			return req, err
		}
		req.Voice = v
	}
	if speakSecondVoice != "" {
		v, err := speech.ParseVoice(speakSecondVoice)
		if err != nil {
			return req, err
		}
		req.SecondVoice = v
	}

	req = req.WithDefaults()
	return req, req.Validate()
}

func runSpeak(cmd *cobra.Command, args []string) error {
	if speakOutput == "" && !speakPlay {
		return fmt.Errorf("nothing to do, use -o and/or --play")
	}

	req, err := buildRequest(args)
	if err != nil {
		return err
	}

	if err := globalConfig.RequireAPIKey(); err != nil {
		return err
	}

	ctx := cmd.Context()
	synth, err := speech.NewGeminiSynthesizer(ctx, globalConfig.Speech.APIKey, globalConfig.Speech.Model, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := synth.Synthesize(ctx, req)
	if err != nil {
		return err
	}
	logger.Info("speech synthesized",
		zap.String("model", synth.Model()),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("audio_size", len(out.PCM)))

	if speakRawOutput != "" {
		if err := saveToFile(speakRawOutput, out.PCM); err != nil {
			return err
		}
	}

	wf, err := out.Waveform(pcmFormat())
	if err != nil {
		return err
	}

	if speakOutput != "" {
		if err := writeWAV(speakOutput, wf); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s, %v)\n",
			speakOutput, formatBytes(int64(len(out.PCM))), wf.Duration().Round(time.Millisecond))
	}

	if speakPlay {
		return play(ctx, wf)
	}

	return nil
}
