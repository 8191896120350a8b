package http

import (
	"eindr-intent-engine/internal/intent"
	"eindr-intent-engine/pkg/log"
)

type handler struct {
	l  log.Logger
	uc intent.UseCase
}

// New creates a new HTTP handler for the intent domain.
func New(l log.Logger, uc intent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
