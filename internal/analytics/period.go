package analytics

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/feral-file/ff-leaderboard/internal/domain"
)

var (
	// ErrInvalidPeriod is returned when a period token cannot be parsed
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidDate is returned when a date string is not in YYYY-MM-DD format
	ErrInvalidDate = errors.New("invalid date")
)

var quarterPattern = regexp.MustCompile(`^(\d{4})-Q([1-4])$`)

// Quarter is a calendar quarter such as 2026-Q1
type Quarter struct {
	Year int
	Q    int
}

// ParseQuarter parses a "YYYY-Qn" token
func ParseQuarter(token string) (Quarter, error) {
	m := quarterPattern.FindStringSubmatch(token)
	if m == nil {
		return Quarter{}, fmt.Errorf("%w: quarter %q must look like 2026-Q1", ErrInvalidPeriod, token)
	}
	year, _ := strconv.Atoi(m[1])
	q, _ := strconv.Atoi(m[2])
	return Quarter{Year: year, Q: q}, nil
}

// ParseOptionalQuarter parses token, returning nil for an empty token
func ParseOptionalQuarter(token string) (*Quarter, error) {
	if token == "" {
		return nil, nil
	}
	q, err := ParseQuarter(token)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Start returns the first calendar day of the quarter
func (q Quarter) Start() time.Time {
	return time.Date(q.Year, time.Month((q.Q-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last calendar day of the quarter
func (q Quarter) End() time.Time {
	return q.Start().AddDate(0, 3, -1)
}

// Previous returns the quarter before q, wrapping Q1 to Q4 of the prior year
func (q Quarter) Previous() Quarter {
	if q.Q == 1 {
		return Quarter{Year: q.Year - 1, Q: 4}
	}
	return Quarter{Year: q.Year, Q: q.Q - 1}
}

func (q Quarter) String() string {
	return fmt.Sprintf("%d-Q%d", q.Year, q.Q)
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DATE_LAYOUT, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q must be in YYYY-MM-DD format", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseOptionalDate parses s, returning nil for an empty string
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate formats a snapshot date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(domain.DATE_LAYOUT)
}

// FormatOptionalDate formats t, returning nil when t is nil
func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

// Day truncates t to its calendar day in UTC
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a snapshot date by n calendar days
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// SnapshotDates looks up snapshot dates in one snapshot table
//
//go:generate mockgen -source=period.go -destination=../mocks/snapshot_dates.go -package=mocks -mock_names=SnapshotDates=MockSnapshotDates
type SnapshotDates interface {
	// LatestOnOrBefore returns the most recent snapshot date at or before bound,
	// or the globally most recent date when bound is nil. Nil means no data.
	LatestOnOrBefore(ctx context.Context, bound *time.Time) (*time.Time, error)
	// LatestBefore returns the most recent snapshot date strictly before bound
	LatestBefore(ctx context.Context, bound time.Time) (*time.Time, error)
}

// WindowHint carries the caller-supplied period hints for a date range
type WindowHint struct {
	Start        *time.Time
	End          *time.Time
	Quarter      *Quarter
	LookbackDays int
}

// Window is a resolved, inclusive snapshot date range
type Window struct {
	Start time.Time
	End   time.Time
	// Empty is set when the store has no snapshot to anchor the range
	Empty bool
}

// Days returns every calendar day of the window in ascending order
func (w Window) Days() []time.Time {
	if w.Empty {
		return nil
	}
	var days []time.Time
	for d := Day(w.Start); !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ResolveWindow turns period hints into a concrete [start, end] range.
//
// Without an explicit end the range ends at the latest snapshot on or before the
// quarter end (or the latest snapshot overall). Without an explicit start it begins
// LookbackDays-1 days before the end, or at the previous quarter's end when a
// quarter is given. A reversed range is swapped.
func ResolveWindow(ctx context.Context, dates SnapshotDates, hint WindowHint) (Window, error) {
	var end time.Time
	if hint.End != nil {
		end = Day(*hint.End)
	} else {
		var bound *time.Time
		if hint.Quarter != nil {
			qEnd := hint.Quarter.End()
			bound = &qEnd
		}
		latest, err := dates.LatestOnOrBefore(ctx, bound)
		if err != nil {
			return Window{}, err
		}
		if latest == nil {
			return Window{Empty: true}, nil
		}
		end = Day(*latest)
	}

	var start time.Time
	switch {
	case hint.Start != nil:
		start = Day(*hint.Start)
	case hint.Quarter != nil:
		start = hint.Quarter.Previous().End()
	default:
		lookback := hint.LookbackDays
		if lookback < 1 {
			lookback = 1
		}
		start = AddDays(end, -(lookback - 1))
	}

	if start.After(end) {
		start, end = end, start
	}
	return Window{Start: start, End: end}, nil
}

// BaselineStart returns the start of the comparison range for change APIs.
// A single-day window compares against the prior calendar day.
func BaselineStart(w Window) time.Time {
	if w.Start.Equal(w.End) {
		return AddDays(w.Start, -1)
	}
	return w.Start
}

// BaselineRule selects how the baseline snapshot is found when no quarter is given
type BaselineRule int

const (
	// BaselinePreviousSnapshot uses the latest snapshot strictly before the current one
	BaselinePreviousSnapshot BaselineRule = iota
	// BaselinePreviousDay uses the calendar day before the current snapshot
	BaselinePreviousDay
	// BaselineLookback uses the calendar day exactly LookbackDays before the current snapshot
	BaselineLookback
)

// ComparisonHint carries the caller-supplied hints for a two-point comparison
type ComparisonHint struct {
	Quarter      *Quarter
	Rule         BaselineRule
	LookbackDays int
}

// Comparison is a resolved current/baseline snapshot pair
type Comparison struct {
	Current time.Time
	// Baseline is nil when no baseline snapshot exists
	Baseline *time.Time
	// Empty is set when the store has no current snapshot
	Empty bool
}

// ResolveComparison finds the current snapshot and its comparison baseline.
// With a quarter, current is the latest snapshot on or before the quarter end and
// the baseline is the latest snapshot on or before the previous quarter's end.
func ResolveComparison(ctx context.Context, dates SnapshotDates, hint ComparisonHint) (Comparison, error) {
	var bound *time.Time
	if hint.Quarter != nil {
		qEnd := hint.Quarter.End()
		bound = &qEnd
	}
	current, err := dates.LatestOnOrBefore(ctx, bound)
	if err != nil {
		return Comparison{}, err
	}
	if current == nil {
		return Comparison{Empty: true}, nil
	}
	cmp := Comparison{Current: Day(*current)}

	if hint.Quarter != nil {
		prevEnd := hint.Quarter.Previous().End()
		baseline, err := dates.LatestOnOrBefore(ctx, &prevEnd)
		if err != nil {
			return Comparison{}, err
		}
		if baseline != nil {
			b := Day(*baseline)
			cmp.Baseline = &b
		}
		return cmp, nil
	}

	switch hint.Rule {
	case BaselinePreviousDay:
		b := AddDays(cmp.Current, -1)
		cmp.Baseline = &b
	case BaselineLookback:
		b := AddDays(cmp.Current, -hint.LookbackDays)
		cmp.Baseline = &b
	default:
		baseline, err := dates.LatestBefore(ctx, cmp.Current)
		if err != nil {
			return Comparison{}, err
		}
		if baseline != nil {
			b := Day(*baseline)
			cmp.Baseline = &b
		}
	}
	return cmp, nil
}
