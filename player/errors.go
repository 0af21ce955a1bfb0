package player

import "github.com/ayoisaiah/yogi/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errOpenSound = &apperr.Error{
		Message: "unable to open sound %s",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to parse settings.cmd option",
	}

	errNoCards = &apperr.Error{
		Message: "nothing to play: the session has no cards",
	}
)
