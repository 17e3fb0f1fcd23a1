package commands

import (
	"github.com/spf13/cobra"
)

var playFormat string

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play an audio file",
	Long: `Play a WAV, AIFF or raw PCM file through PLAYER_COMMAND (aplay by default).

Example:
  ttsaudio play speech.wav
  PLAYER_COMMAND="paplay --raw --format=s16le --rate=24000 --channels=1" ttsaudio play speech.pcm`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wf, err := decodeFile(newRegistry(pcmFormat()), args[0], playFormat)
		if err != nil {
			return err
		}
		return play(cmd.Context(), wf)
	},
}

func init() {
	playCmd.Flags().StringVar(&playFormat, "format", "", "override the format detected from the extension (wav, aiff, pcm)")

	rootCmd.AddCommand(playCmd)
}
