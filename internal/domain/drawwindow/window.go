package drawwindow

import (
	"time"

	"github.com/moonticket/backend/pkg/errorx"
)

const (
	Length = 7 * 24 * time.Hour

	BoundaryWeekday = time.Monday
	BoundaryHour    = 22

	// DefaultUTCOffset is UTC-5 year-round, no daylight saving adjustment.
	DefaultUTCOffset = -5 * time.Hour
)

// Window is the half-open interval [Start, End) in UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

type Resolver struct {
	loc *time.Location
}

// NewResolver creates a resolver whose weekly boundary is Monday 22:00 at the
// given fixed offset from UTC.
func NewResolver(utcOffset time.Duration) *Resolver {
	return &Resolver{loc: time.FixedZone("draw", int(utcOffset/time.Second))}
}

// Active returns the window containing t. An instant exactly on a boundary
// belongs to the window starting there.
func (r *Resolver) Active(t time.Time) (Window, error) {
	if t.IsZero() {
		return Window{}, errorx.New(errorx.WindowResolution, "Cannot resolve draw window of zero time")
	}

	local := t.In(r.loc)
	daysSinceBoundary := (int(local.Weekday()) - int(BoundaryWeekday) + 7) % 7

	start := time.Date(
		local.Year(), local.Month(), local.Day()-daysSinceBoundary,
		BoundaryHour, 0, 0, 0, r.loc,
	)

	// Boundary day but before the boundary hour.
	if start.After(t) {
		start = start.AddDate(0, 0, -7)
	}

	start = start.UTC()
	return Window{Start: start, End: start.Add(Length)}, nil
}

// LastClosed returns the window right before the one containing t.
func (r *Resolver) LastClosed(t time.Time) (Window, error) {
	active, err := r.Active(t)
	if err != nil {
		return Window{}, err
	}

	return Window{Start: active.Start.Add(-Length), End: active.Start}, nil
}
