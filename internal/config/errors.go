package config

import "github.com/ayoisaiah/yogi/internal/apperr"

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

	errInvalidStartTime = &apperr.Error{
		Message: "start time %q must be in HH:MM format",
	}

	errInvalidInterval = &apperr.Error{
		Message: "%s must be between %v and %v, got %v",
	}

	errInvalidPort = &apperr.Error{
		Message: "legacy api port must be between 1 and 65535, got %d",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s (must be debug, info, warn or error)",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errUnknownSound = &apperr.Error{
		Message: "sound file not found: %s",
	}

	errInvalidCLIStart = &apperr.Error{
		Message: "invalid start time: %s",
	}
)
