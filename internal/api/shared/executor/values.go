package executor

import (
	"github.com/feral-file/ff-leaderboard/internal/analytics"
)

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func ptr[T any](v T) *T {
	return &v
}

// nonZero treats a stored zero as an absent measurement
func nonZero(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

// floatChange is current minus baseline, nil unless both are measured
func floatChange(current, baseline *float64, places int) *float64 {
	if current == nil || baseline == nil {
		return nil
	}
	return ptr(analytics.Round(*current-*baseline, places))
}

// intChange is current minus baseline, nil unless both are measured
func intChange(current, baseline *int64) *int64 {
	if current == nil || baseline == nil {
		return nil
	}
	return ptr(*current - *baseline)
}

// sumChanges adds whichever changes are present, nil when none is
func sumChanges(changes ...*int64) *int64 {
	var total *int64
	for _, c := range changes {
		if c == nil {
			continue
		}
		if total == nil {
			total = ptr(int64(0))
		}
		*total += *c
	}
	return total
}

func intKey(v *int64) *float64 {
	if v == nil {
		return nil
	}
	return ptr(float64(*v))
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// inSet reports whether v is in set. A nil set matches everything.
func inSet(set map[string]struct{}, v *string) bool {
	if set == nil {
		return true
	}
	if v == nil {
		return false
	}
	_, ok := set[*v]
	return ok
}

// firstNonNil returns the first non-nil value
func firstNonNil[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func maxPtr(current, v *float64) *float64 {
	if v == nil {
		return current
	}
	if current == nil || *v > *current {
		return ptr(*v)
	}
	return current
}
