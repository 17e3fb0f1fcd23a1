// Package main provides the ttsaudio CLI tool.
//
// Usage:
//
//	ttsaudio [flags] <command> [args]
//
// Commands:
//
//	speak   - Synthesize text with the Gemini speech model
//	decode  - Convert a base64 PCM payload or saved API response to WAV
//	info    - Show the layout of a WAV, AIFF or raw PCM file
//	play    - Play a WAV, AIFF or raw PCM file
//	voices  - List the prebuilt voices
//	serve   - Run the HTTP service
//
// Configuration is read from the environment and an optional .env file.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/ttsaudio/cmd/ttsaudio/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
