package usecase

import (
	"time"

	"eindr-intent-engine/internal/intent/classifier"
	"eindr-intent-engine/internal/intent/repository"
	"eindr-intent-engine/internal/intent/segmenter"
	pkgLog "eindr-intent-engine/pkg/log"
	"eindr-intent-engine/pkg/timeparse"
)

type implUseCase struct {
	l        pkgLog.Logger
	seg      *segmenter.Segmenter
	cls      *classifier.Classifier
	store    repository.Store
	resolver *timeparse.Resolver
	now      func() time.Time
}

// New creates a new intent UseCase instance.
func New(
	l pkgLog.Logger,
	seg *segmenter.Segmenter,
	cls *classifier.Classifier,
	store repository.Store,
	resolver *timeparse.Resolver,
) *implUseCase {
	return &implUseCase{
		l:        l,
		seg:      seg,
		cls:      cls,
		store:    store,
		resolver: resolver,
		now:      time.Now,
	}
}
