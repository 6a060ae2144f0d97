// Package clock provides the wall clock used for order timestamps and calendar days.
package clock

import (
	"time"

	"menumaster/config"
	"menumaster/internal/domain/service"
)

type systemClock struct {
	loc *time.Location
}

// New returns a clock in the configured env.timezone.
func New(cfg *config.Config) (service.Clock, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return &systemClock{loc: loc}, nil
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *systemClock) Location() *time.Location {
	return c.loc
}

// Fixed is a clock frozen at one instant.
type Fixed struct {
	At  time.Time
	Loc *time.Location
}

func (f *Fixed) Now() time.Time {
	return f.At.In(f.Location())
}

func (f *Fixed) Location() *time.Location {
	if f.Loc == nil {
		return time.UTC
	}

	return f.Loc
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.At = f.At.Add(d)
}
