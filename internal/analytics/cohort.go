package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// DefaultBins is the number of histogram bins used when none is requested
const DefaultBins = 10

// Pair joins one entity's base and target observations
type Pair[T any] struct {
	Key    string
	Base   *T
	Target *T
}

// Comparable reports whether the entity is present on both dates
func (p Pair[T]) Comparable() bool {
	return p.Base != nil && p.Target != nil
}

// New reports whether the entity only appears on the target date
func (p Pair[T]) New() bool {
	return p.Base == nil && p.Target != nil
}

// Missing reports whether the entity only appears on the base date
func (p Pair[T]) Missing() bool {
	return p.Base != nil && p.Target == nil
}

// Latest returns the target observation, or the base one when the entity is missing
func (p Pair[T]) Latest() *T {
	if p.Target != nil {
		return p.Target
	}
	return p.Base
}

// Membership counts entities by presence on the base and target dates
type Membership struct {
	OnBase     int
	OnTarget   int
	Comparable int
	New        int
	Missing    int
}

// Join pairs base and target observations by key. Base keys come first in base
// order, followed by target-only keys in target order. Duplicate keys keep the
// first observation.
func Join[T any](ctx context.Context, base, target []T, key func(T) string) ([]Pair[T], error) {
	index := make(map[string]int, len(base))
	pairs := make([]Pair[T], 0, len(base))
	for i := range base {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		k := key(base[i])
		if _, ok := index[k]; ok {
			continue
		}
		index[k] = len(pairs)
		pairs = append(pairs, Pair[T]{Key: k, Base: &base[i]})
	}
	for i := range target {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		k := key(target[i])
		if pos, ok := index[k]; ok {
			if pairs[pos].Target == nil {
				pairs[pos].Target = &target[i]
			}
			continue
		}
		index[k] = len(pairs)
		pairs = append(pairs, Pair[T]{Key: k, Target: &target[i]})
	}
	return pairs, nil
}

// Exclude drops pairs matching drop. Apply it before CountMembership so
// exclusions shrink every count.
func Exclude[T any](pairs []Pair[T], drop func(Pair[T]) bool) []Pair[T] {
	out := make([]Pair[T], 0, len(pairs))
	for _, p := range pairs {
		if !drop(p) {
			out = append(out, p)
		}
	}
	return out
}

// CountMembership classifies every pair as comparable, new or missing
func CountMembership[T any](pairs []Pair[T]) Membership {
	var m Membership
	for _, p := range pairs {
		if p.Base != nil {
			m.OnBase++
		}
		if p.Target != nil {
			m.OnTarget++
		}
		switch {
		case p.Comparable():
			m.Comparable++
		case p.New():
			m.New++
		case p.Missing():
			m.Missing++
		}
	}
	return m
}

// ComparablePairs returns the pairs present on both dates, in input order
func ComparablePairs[T any](pairs []Pair[T]) []Pair[T] {
	out := make([]Pair[T], 0, len(pairs))
	for _, p := range pairs {
		if p.Comparable() {
			out = append(out, p)
		}
	}
	return out
}

// Change is one entity's base and target value of a metric
type Change struct {
	Base   float64
	Target float64
}

// Delta returns target minus base
func (c Change) Delta() float64 {
	return c.Target - c.Base
}

// Summary aggregates a set of changes
type Summary struct {
	Count        int
	Increased    int
	Decreased    int
	Unchanged    int
	AvgBase      float64
	AvgTarget    float64
	AvgChange    float64
	MedianChange float64
	// MaxIncrease and MaxDecrease are the largest and smallest deltas, 0 when empty
	MaxIncrease float64
	MaxDecrease float64
}

// Summarize computes counts, means, median and extremes of changes
func Summarize(changes []Change) Summary {
	s := Summary{Count: len(changes)}
	if len(changes) == 0 {
		return s
	}

	deltas := make([]float64, len(changes))
	var sumBase, sumTarget, sumDelta float64
	s.MaxIncrease = math.Inf(-1)
	s.MaxDecrease = math.Inf(1)
	for i, c := range changes {
		d := c.Delta()
		deltas[i] = d
		sumBase += c.Base
		sumTarget += c.Target
		sumDelta += d
		switch {
		case d > 0:
			s.Increased++
		case d < 0:
			s.Decreased++
		default:
			s.Unchanged++
		}
		s.MaxIncrease = math.Max(s.MaxIncrease, d)
		s.MaxDecrease = math.Min(s.MaxDecrease, d)
	}

	n := float64(len(changes))
	s.AvgBase = sumBase / n
	s.AvgTarget = sumTarget / n
	s.AvgChange = sumDelta / n
	s.MedianChange = Median(deltas)
	return s
}

// DimensionSummary is the summary of the changes sharing one dimension value
type DimensionSummary struct {
	Dimension string
	Summary
}

// SummarizeBy groups items by dimension and summarizes each group. Groups are
// ordered by descending count, then descending average change, then dimension,
// and truncated to topN when topN > 0.
func SummarizeBy[T any](ctx context.Context, items []T, dimension func(T) string, change func(T) Change, topN int) ([]DimensionSummary, error) {
	index := make(map[string]int)
	var keys []string
	var groups [][]Change
	for i, item := range items {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		k := dimension(item)
		pos, ok := index[k]
		if !ok {
			pos = len(keys)
			index[k] = pos
			keys = append(keys, k)
			groups = append(groups, nil)
		}
		groups[pos] = append(groups[pos], change(item))
	}

	out := make([]DimensionSummary, len(keys))
	for i, k := range keys {
		out[i] = DimensionSummary{Dimension: k, Summary: Summarize(groups[i])}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.AvgChange != b.AvgChange {
			return a.AvgChange > b.AvgChange
		}
		return a.Dimension < b.Dimension
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out, nil
}

// Median returns the median of values, 0 for an empty input. values is not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Distribution is a fixed-bin histogram
type Distribution struct {
	Labels []string
	Counts []int
}

// BuildDistribution buckets values into bins of equal width between the observed
// min and max. The max lands in the last bin. When every value is equal a single
// bin labelled with that value holds them all.
func BuildDistribution(values []float64, bins int) Distribution {
	if len(values) == 0 {
		return Distribution{Labels: []string{}, Counts: []int{}}
	}
	if bins < 1 {
		bins = DefaultBins
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return Distribution{
			Labels: []string{fmt.Sprintf("%.4f", lo)},
			Counts: []int{len(values)},
		}
	}

	step := (hi - lo) / float64(bins)
	d := Distribution{Labels: make([]string, bins), Counts: make([]int, bins)}
	for i := 0; i < bins; i++ {
		start := lo + float64(i)*step
		end := start + step
		if i == bins-1 {
			end = hi
		}
		d.Labels[i] = fmt.Sprintf("%.4f~%.4f", start, end)
	}
	for _, v := range values {
		idx := int(math.Floor((v - lo) / step))
		if idx > bins-1 {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		d.Counts[idx]++
	}
	return d
}

// TopMovers returns up to n items with the largest deltas and up to n with the
// smallest. Ties keep input order.
func TopMovers[T any](items []T, delta func(T) float64, n int) (gainers, decliners []T) {
	gainers = make([]T, len(items))
	copy(gainers, items)
	SortByKey(gainers, delta, SortDesc)

	decliners = make([]T, len(items))
	copy(decliners, items)
	SortByKey(decliners, delta, SortAsc)

	if n >= 0 && len(items) > n {
		gainers = gainers[:n]
		decliners = decliners[:n]
	}
	return gainers, decliners
}

// Near reports whether v is within eps of center
func Near(v, center, eps float64) bool {
	return math.Abs(v-center) < eps
}

// BothNear reports whether a change sits at center on both dates
func BothNear(c Change, center, eps float64) bool {
	return Near(c.Base, center, eps) && Near(c.Target, center, eps)
}
