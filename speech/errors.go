package speech

import "errors"

var (
	// ErrEmptyText indicates the request carries no text to speak
	ErrEmptyText = errors.New("input text cannot be empty")

	// ErrSecondVoiceRequired indicates a multi-speaker request without a second voice
	ErrSecondVoiceRequired = errors.New("second voice is required for multi-speaker mode")

	// ErrUnknownVoice indicates a voice name outside the prebuilt set
	ErrUnknownVoice = errors.New("unknown voice")

	// ErrUnknownMode indicates a mode other than single or multi
	ErrUnknownMode = errors.New("unknown speech mode")

	// ErrNoAudio indicates the model answered without inline audio data
	ErrNoAudio = errors.New("no audio data received from the API")

	// ErrNoPayload indicates a jq query produced no base64 string
	ErrNoPayload = errors.New("no audio payload in response")
)
