package tripdate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"bookingsync-service/pkg/logger"
)

// DateLayout is the ISO calendar date layout used for booking start dates
const DateLayout = "2006-01-02"

// Window represents a trip's date range with inclusive bounds
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether day falls within the window
func (w Window) Contains(day time.Time) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

// EndedBefore reports whether the window has fully elapsed as of day
func (w Window) EndedBefore(day time.Time) bool {
	return day.After(w.End)
}

var dayCountPattern = regexp.MustCompile(`\d+`)

// Resolver derives trip windows from loosely structured booking fields
type Resolver struct {
	logger logger.Logger
}

// NewResolver creates a new trip window resolver
func NewResolver(logger logger.Logger) *Resolver {
	return &Resolver{
		logger: logger,
	}
}

// Resolve parses a start date and a free-form duration string into a trip
// window. The first run of ASCII digits in the duration is the day count;
// units and surrounding text are ignored. Returns false when the window
// cannot be derived from the stored fields.
func (r *Resolver) Resolve(startDate, duration string) (Window, bool) {
	start, err := time.Parse(DateLayout, strings.TrimSpace(startDate))
	if err != nil {
		r.logger.Debug("Start date not parseable", "startDate", startDate, "error", err)
		return Window{}, false
	}

	digits := dayCountPattern.FindString(duration)
	if digits == "" {
		r.logger.Debug("No day count in duration", "duration", duration)
		return Window{}, false
	}

	days, err := strconv.Atoi(digits)
	if err != nil || days <= 0 {
		r.logger.Debug("Day count not usable", "duration", duration, "digits", digits)
		return Window{}, false
	}

	return Window{
		Start: start,
		End:   start.AddDate(0, 0, days-1),
	}, true
}
