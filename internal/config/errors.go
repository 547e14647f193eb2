package config

import "github.com/ayoisaiah/stride/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownSound = &apperr.Error{
		Message: "sound file for %s not found: %s",
	}

	errUnknownCue = &apperr.Error{
		Message: "unknown cue in audio.sounds: %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errUnknownSegment = &apperr.Error{
		Message: "unknown segment type in display.colors: %s",
	}

	errInvalidVolume = &apperr.Error{
		Message: "audio volume must be between 0 and 1, got %v",
	}

	errInvalidCueDelay = &apperr.Error{
		Message: "cue delay must be between 0 and %v, got %v",
	}

	errInvalidWorkout = &apperr.Error{
		Message: "--week must be between 1 and %d and --day between 1 and %d",
	}

	errEmptyVoiceCmd = &apperr.Error{
		Message: "voice is enabled but voice.cmd is empty",
	}
)
