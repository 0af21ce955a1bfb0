package app

import "github.com/ayoisaiah/yogi/internal/apperr"

var (
	errMissingID = &apperr.Error{
		Message: "missing %s id: pass it as the first argument",
	}

	errMissingCards = &apperr.Error{
		Message: "no card ids given",
	}

	errInvalidPosition = &apperr.Error{
		Message: "invalid position %q: expected a number between 1 and %d",
	}

	errInvalidMinutes = &apperr.Error{
		Message: "invalid number of minutes: %q",
	}
)
