package entities

import "errors"

// ErrEmptyTranscript is returned when an empty transcript is sent for analysis
var ErrEmptyTranscript = errors.New("transcript text is empty")
