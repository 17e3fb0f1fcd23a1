package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/ttsaudio/speech"
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List the prebuilt voices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, v := range speech.Voices() {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(voicesCmd)
}
