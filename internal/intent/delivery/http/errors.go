package http

import (
	"errors"

	"eindr-intent-engine/internal/intent"
	pkgErrors "eindr-intent-engine/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intent.ErrEmptyInput):
		return pkgErrors.NewHTTPError(400, "input text is empty")
	case errors.Is(err, intent.ErrNoIntents):
		return pkgErrors.NewHTTPError(400, "no intents found in multi-intent data")
	case errors.Is(err, intent.ErrUserNotFound):
		return pkgErrors.NewHTTPError(404, "user not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
