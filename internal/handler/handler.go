package handler

import (
	"time"

	"go.uber.org/zap"
)

type Handler struct {
	Logger       *zap.Logger
	MaxBodyBytes int64
	Version      string

	// Now and Loc decide what "today" means; injected so handlers are
	// testable against fixed dates.
	Now func() time.Time
	Loc *time.Location
}

// today is the current calendar date in the configured timezone.
func (app *Handler) today() time.Time {
	now := time.Now
	if app.Now != nil {
		now = app.Now
	}
	loc := time.UTC
	if app.Loc != nil {
		loc = app.Loc
	}
	return now().In(loc)
}
