package timeperiod

import (
	"errors"
	"fmt"
	"time"
)

// Common errors returned by period bookkeeping.
var (
	ErrZeroTime         = errors.New("time must not be the zero value")
	ErrStartAfterEnd    = errors.New("start time has to be before the end time")
	ErrNegativeDuration = errors.New("duration must be positive")
	ErrDurationFixed    = errors.New("duration already defined by start and end time")
)

// nowUTC is the clock used for the started/ended checks. Tests swap it out.
var nowUTC = func() time.Time { return time.Now().UTC() }

// Period represents a period in time. A period can have an absolute start
// and end time and a duration; it can be active, started or already ended.
// All times are stored in UTC to keep the arithmetic clear of DST
// boundaries.
type Period struct {
	start    time.Time
	end      time.Time
	duration time.Duration
}

// New creates an empty period without a start or end time.
func New() *Period {
	return &Period{}
}

// SetStart sets the absolute start time of the period, normalized to UTC.
// The start time must not lie after an already set end time. If an end
// time is set, the duration is updated accordingly.
func (p *Period) SetStart(start time.Time) error {
	if start.IsZero() {
		return fmt.Errorf("start: %w", ErrZeroTime)
	}

	start = start.UTC()

	if !p.end.IsZero() {
		if start.After(p.end) {
			return fmt.Errorf("%w: start %s, end %s", ErrStartAfterEnd, start, p.end)
		}
		p.duration = p.end.Sub(start)
	}

	p.start = start
	return nil
}

// SetEnd sets the absolute end time of the period, normalized to UTC. The
// end time must not lie before an already set start time. If a start time
// is set, the duration is updated accordingly.
func (p *Period) SetEnd(end time.Time) error {
	if end.IsZero() {
		return fmt.Errorf("end: %w", ErrZeroTime)
	}

	end = end.UTC()

	if !p.start.IsZero() {
		if end.Before(p.start) {
			return fmt.Errorf("%w: start %s, end %s", ErrStartAfterEnd, p.start, end)
		}
		p.duration = end.Sub(p.start)
	}

	p.end = end
	return nil
}

// Start returns the absolute start time of the period in UTC, or the zero
// time if it was never set.
func (p *Period) Start() time.Time {
	return p.start
}

// End returns the absolute end time of the period in UTC, or the zero time
// if it was never set.
func (p *Period) End() time.Time {
	return p.end
}

// Duration returns the duration of the period.
func (p *Period) Duration() time.Duration {
	return p.duration
}

// SetDuration sets the duration of the period and back-fills a missing
// start or end time from it. Once both start and end time are set, the
// duration is defined by them and can no longer be changed.
func (p *Period) SetDuration(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDuration, d)
	}

	if !p.start.IsZero() && !p.end.IsZero() {
		return ErrDurationFixed
	}

	if p.end.IsZero() && !p.start.IsZero() {
		p.end = p.start.Add(d)
	} else if p.start.IsZero() && !p.end.IsZero() {
		p.start = p.end.Add(-d)
	}

	p.duration = d
	return nil
}

// SetLength sets the duration of the period in seconds, a helper wrapper
// around SetDuration for callers dealing with fractional second lengths
// from audio files.
func (p *Period) SetLength(seconds float64) error {
	return p.SetDuration(time.Duration(seconds * float64(time.Second)))
}

// Started reports whether the period has started.
func (p *Period) Started() bool {
	return !p.start.IsZero() && !nowUTC().Before(p.start)
}

// Ended reports whether the period has ended.
func (p *Period) Ended() bool {
	return !p.end.IsZero() && !nowUTC().Before(p.end)
}

// Active reports whether the period is active: started but not ended yet.
func (p *Period) Active() bool {
	return p.Started() && !p.Ended()
}

// String returns a representation of the period useful for logging.
func (p *Period) String() string {
	return fmt.Sprintf("period start: %s, end: %s, duration: %s", p.start, p.end, p.duration)
}
