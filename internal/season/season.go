// Package season derives NHL season identifiers and season ranges.
//
// A season identifier is the start year and end year concatenated with no
// separator ("20242025"). A season begins in October, so January 2025 still
// belongs to the 2024-2025 season.
package season

import (
	"fmt"
	"strconv"
	"time"
)

// BoundaryMonth is the first calendar month of a new season.
const BoundaryMonth = time.October

// FirstStartYear is the start year of the league's first season (1917-1918).
const FirstStartYear = 1917

// ID identifies one season, e.g. "20242025".
type ID string

// New builds the identifier for the season starting in startYear.
func New(startYear int) ID {
	return ID(fmt.Sprintf("%04d%04d", startYear, startYear+1))
}

// Parse validates s as a season identifier.
func Parse(s string) (ID, error) {
	if len(s) != 8 {
		return "", fmt.Errorf("season %q: want 8 digits", s)
	}
	start, err := strconv.Atoi(s[:4])
	if err != nil {
		return "", fmt.Errorf("season %q: start year: %w", s, err)
	}
	end, err := strconv.Atoi(s[4:])
	if err != nil {
		return "", fmt.Errorf("season %q: end year: %w", s, err)
	}
	if end != start+1 {
		return "", fmt.Errorf("season %q: end year %d does not follow start year %d", s, end, start)
	}
	return ID(s), nil
}

// StartYear returns the calendar year the season begins in.
func (id ID) StartYear() int {
	n, _ := strconv.Atoi(string(id)[:4])
	return n
}

// EndYear returns the calendar year the season ends in.
func (id ID) EndYear() int {
	n, _ := strconv.Atoi(string(id)[4:])
	return n
}

// Label renders the season as "2024-2025".
func (id ID) Label() string {
	return fmt.Sprintf("%d-%d", id.StartYear(), id.EndYear())
}

func (id ID) String() string { return string(id) }

// Range is an ordered run of consecutive seasons, oldest first.
type Range []ID

// CurrentStartYear returns the start year of the season containing now.
func CurrentStartYear(now time.Time) int {
	if now.Month() >= BoundaryMonth {
		return now.Year()
	}
	return now.Year() - 1
}

// Current returns the season containing now.
func Current(now time.Time) ID {
	return New(CurrentStartYear(now))
}

// NewRange returns duration consecutive seasons ending at the season
// containing now. A duration below 1 yields the current season only.
func NewRange(now time.Time, duration int) Range {
	if duration < 1 {
		duration = 1
	}
	first := CurrentStartYear(now) - (duration - 1)
	r := make(Range, duration)
	for i := range r {
		r[i] = New(first + i)
	}
	return r
}

// AllTime returns the number of seasons from the first league season up to
// and including the season containing now.
func AllTime(now time.Time) int {
	return CurrentStartYear(now) - FirstStartYear + 1
}

// Clamp bounds duration to [lo, hi].
func Clamp(duration, lo, hi int) int {
	if duration < lo {
		return lo
	}
	if duration > hi {
		return hi
	}
	return duration
}

// Chunks splits r into consecutive slices of at most size seasons.
func (r Range) Chunks(size int) []Range {
	if size < 1 {
		size = 1
	}
	chunks := make([]Range, 0, (len(r)+size-1)/size)
	for i := 0; i < len(r); i += size {
		end := i + size
		if end > len(r) {
			end = len(r)
		}
		chunks = append(chunks, r[i:end])
	}
	return chunks
}

// Strings returns the identifiers as plain strings.
func (r Range) Strings() []string {
	out := make([]string, len(r))
	for i, id := range r {
		out[i] = string(id)
	}
	return out
}
