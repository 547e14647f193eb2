package cue

import "github.com/ayoisaiah/stride/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format: %s",
	}

	errInvalidVoiceCmd = &apperr.Error{
		Message: "unable to parse voice command %q",
	}

	errVoiceFailed = &apperr.Error{
		Message: "voice command failed for cue %s",
	}

	errSpeakerInit = &apperr.Error{
		Message: "unable to initialise audio output",
	}
)
