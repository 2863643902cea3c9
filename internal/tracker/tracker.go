// Package tracker accumulates the user's content consumption log and the
// state of its AI analysis.
package tracker

import (
	"crypto/rand"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/abhisek/brainrot/internal/content"
)

// MaxDuration is the longest single entry, in minutes: one day.
const MaxDuration = 24 * 60

var (
	// ErrInvalidDuration is returned for input that is not a whole number
	// of minutes in [1, MaxDuration].
	ErrInvalidDuration = errors.New("duration must be a whole number of minutes between 1 and 1440")

	// ErrUnknownType is returned for a content type outside the catalog.
	ErrUnknownType = errors.New("unknown content type")
)

// Tracker holds the log in insertion order plus the analysis state. It is
// owned by a single goroutine.
type Tracker struct {
	entries []content.ContentLog
	now     func() time.Time
	entropy io.Reader

	analysis analysisState
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the clock used to date entries.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates an empty Tracker.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		now:     time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// ParseDuration accepts a base-10 integer in [1, MaxDuration], optionally
// surrounded by whitespace.
func ParseDuration(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 || n > MaxDuration {
		return 0, ErrInvalidDuration
	}
	return n, nil
}

// Add appends an entry for contentType. On error the log is unchanged.
func (t *Tracker) Add(contentType, durationInput string) (content.ContentLog, error) {
	if !content.IsContentType(contentType) {
		return content.ContentLog{}, ErrUnknownType
	}
	minutes, err := ParseDuration(durationInput)
	if err != nil {
		return content.ContentLog{}, err
	}

	now := t.now()
	entry := content.ContentLog{
		ID:       ulid.MustNew(ulid.Timestamp(now), t.entropy).String(),
		Type:     contentType,
		Duration: minutes,
		Date:     now.Local().Format(content.DateLayout),
	}
	t.entries = append(t.entries, entry)
	return entry, nil
}

// Entries returns the log in insertion order. The slice must not be
// modified.
func (t *Tracker) Entries() []content.ContentLog {
	return t.entries
}

// Len returns the number of entries.
func (t *Tracker) Len() int {
	return len(t.entries)
}
