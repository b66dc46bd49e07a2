package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
)

// SortOrder is the direction of a ranking
type SortOrder string

const (
	SortDesc SortOrder = "desc"
	SortAsc  SortOrder = "asc"
)

// ParseSortOrder parses "asc" or "desc", returning def for an empty value
func ParseSortOrder(s string, def SortOrder) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return def, nil
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", fmt.Errorf("sort order must be asc or desc, got %q", s)
	}
}

// AbsentBaselinePolicy decides what happens to an entity with no baseline value
type AbsentBaselinePolicy int

const (
	// GrowthFromZero treats a missing baseline as zero: delta equals current
	GrowthFromZero AbsentBaselinePolicy = iota
	// ExcludeAbsent drops the entity from comparable output
	ExcludeAbsent
)

// ZeroBaselinePolicy decides the delta percent when the baseline is zero
type ZeroBaselinePolicy int

const (
	// ZeroBaselineCapped reports 100, even when current is zero too
	ZeroBaselineCapped ZeroBaselinePolicy = iota
	// ZeroBaselineGrowth reports 100 when current is non-zero and 0 otherwise
	ZeroBaselineGrowth
	// ZeroBaselineUndefined reports no percent at all
	ZeroBaselineUndefined
)

// DeltaPolicy bundles the absent and zero baseline rules of one metric
type DeltaPolicy struct {
	Absent AbsentBaselinePolicy
	Zero   ZeroBaselinePolicy
}

var (
	// WeightDelta is the policy of weight-like rankings
	WeightDelta = DeltaPolicy{Absent: GrowthFromZero, Zero: ZeroBaselineCapped}
	// TierDelta is the policy of aggregated tier weight changes
	TierDelta = DeltaPolicy{Absent: GrowthFromZero, Zero: ZeroBaselineGrowth}
	// ComparableDelta is the policy of plain two-point comparisons
	ComparableDelta = DeltaPolicy{Absent: ExcludeAbsent, Zero: ZeroBaselineUndefined}
)

// Delta is the change of one metric between a baseline and a current snapshot
type Delta struct {
	Current  float64
	Baseline *float64
	Change   float64
	// Percent is nil when the policy leaves it undefined
	Percent *float64
}

// ComputeDelta applies policy to one current/baseline pair.
// The second result is false when the entity must be excluded.
func ComputeDelta(current float64, baseline *float64, policy DeltaPolicy) (Delta, bool) {
	d := Delta{Current: current, Baseline: baseline}
	if baseline == nil {
		if policy.Absent == ExcludeAbsent {
			return Delta{}, false
		}
		d.Change = current
		d.Percent = zeroBaselinePercent(current, ZeroBaselineCapped)
		return d, true
	}

	d.Change = current - *baseline
	if *baseline == 0 {
		d.Percent = zeroBaselinePercent(current, policy.Zero)
		return d, true
	}
	pct := d.Change / *baseline * 100
	d.Percent = &pct
	return d, true
}

func zeroBaselinePercent(current float64, policy ZeroBaselinePolicy) *float64 {
	pct := 100.0
	switch policy {
	case ZeroBaselineUndefined:
		return nil
	case ZeroBaselineGrowth:
		if current == 0 {
			pct = 0
		}
	}
	return &pct
}

// Percentile maps a 1-indexed rank among n entities onto [0, 100], rank 1 being 100
func Percentile(rank, n int) float64 {
	if n <= 1 {
		return 100.0
	}
	return Round((1-float64(rank-1)/float64(n-1))*100, 2)
}

// Ranked is an item annotated with its 1-indexed rank and percentile
type Ranked[T any] struct {
	Item       T
	Rank       int
	Percentile float64
}

// SortByKey stably sorts items by key. Ties keep their input order.
func SortByKey[T any](items []T, key func(T) float64, order SortOrder) {
	sort.SliceStable(items, func(i, j int) bool {
		if order == SortAsc {
			return key(items[i]) < key(items[j])
		}
		return key(items[i]) > key(items[j])
	})
}

// SortByNullableKey stably sorts items by an optional key. Absent keys sort last in either order.
func SortByNullableKey[T any](items []T, key func(T) *float64, order SortOrder) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := key(items[i]), key(items[j])
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case order == SortAsc:
			return *a < *b
		default:
			return *a > *b
		}
	})
}

// SortByNullableString stably sorts items by an optional string key. Absent keys sort last.
func SortByNullableString[T any](items []T, key func(T) *string, order SortOrder) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := key(items[i]), key(items[j])
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case order == SortAsc:
			return *a < *b
		default:
			return *a > *b
		}
	})
}

// Rank stably sorts items by key and assigns ranks and percentiles over the full set
func Rank[T any](ctx context.Context, items []T, key func(T) float64, order SortOrder) ([]Ranked[T], error) {
	sorted := make([]T, len(items))
	copy(sorted, items)
	SortByKey(sorted, key, order)
	return AssignRanks(ctx, sorted)
}

// AssignRanks annotates already ordered items with rank and percentile
func AssignRanks[T any](ctx context.Context, sorted []T) ([]Ranked[T], error) {
	n := len(sorted)
	out := make([]Ranked[T], n)
	for i, item := range sorted {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		out[i] = Ranked[T]{Item: item, Rank: i + 1, Percentile: Percentile(i+1, n)}
	}
	return out, nil
}

// Paginate returns the 1-indexed page of items. Out of range pages are empty.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Offset returns the number of items before the given page
func Offset(page, pageSize int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * pageSize
}

// TotalPages returns how many pages of pageSize hold total items
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}
