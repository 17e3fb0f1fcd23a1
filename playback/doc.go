// SPDX-License-Identifier: EPL-2.0

// Package playback sends waveforms to an audio output.
//
// A Sink is the output device. WriterSink streams s16le PCM into any
// io.Writer, CommandSink pipes it into an external player such as aplay:
//
//	sink := playback.NewCommandSink("", logger) // aplay -q -t raw -f S16_LE ...
//	player := playback.NewPlayer(sink, logger)
//	defer player.Close()
//
//	if err := player.Play(ctx, wf); err != nil {
//	    return err
//	}
//	return player.Wait()
//
// Player keeps at most one playback in flight: Play stops the previous one
// before starting, Stop cancels it and Close releases the sink.
package playback
