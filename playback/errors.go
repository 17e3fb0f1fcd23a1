package playback

import "errors"

var (
	// ErrPlayerClosed indicates Play was called after Close
	ErrPlayerClosed = errors.New("player is closed")

	// ErrSinkClosed indicates Play was called on a closed sink
	ErrSinkClosed = errors.New("sink is closed")
)
