package analytics

import (
	"context"
	"sort"
	"time"
)

// Number is a metric value type that supports day-over-day deltas
type Number interface {
	~int | ~int64 | ~float64
}

// Series is the ordered rows of one entity
type Series[T any] struct {
	Entity string
	Rows   []T
}

// GroupSeries splits rows into one series per entity. Entities appear in the order
// they are first seen and rows keep their input order, so rows sorted by
// (entity, date) yield date-ordered series. Entities without rows never appear.
func GroupSeries[T any](ctx context.Context, rows []T, entity func(T) string) ([]Series[T], error) {
	index := make(map[string]int)
	var out []Series[T]
	for i, row := range rows {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		key := entity(row)
		pos, ok := index[key]
		if !ok {
			pos = len(out)
			index[key] = pos
			out = append(out, Series[T]{Entity: key})
		}
		out[pos].Rows = append(out[pos].Rows, row)
	}
	return out, nil
}

// DayOverDay returns the change of each value from the previous one.
// The first element is always 0.
func DayOverDay[N Number](values []N) []N {
	out := make([]N, len(values))
	for i := 1; i < len(values); i++ {
		out[i] = values[i] - values[i-1]
	}
	return out
}

// SummedSeries is an entity's values summed per date, dates ascending
type SummedSeries struct {
	Entity string
	Dates  []time.Time
	Values []float64
}

// SumByDate sums value per (entity, date). Entities keep first-appearance order.
func SumByDate[T any](ctx context.Context, rows []T, entity func(T) string, date func(T) time.Time, value func(T) float64) ([]SummedSeries, error) {
	groups, err := GroupSeries(ctx, rows, entity)
	if err != nil {
		return nil, err
	}

	out := make([]SummedSeries, 0, len(groups))
	for _, g := range groups {
		sums := make(map[time.Time]float64)
		for _, row := range g.Rows {
			sums[Day(date(row))] += value(row)
		}
		dates := make([]time.Time, 0, len(sums))
		for d := range sums {
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		s := SummedSeries{Entity: g.Entity, Dates: dates, Values: make([]float64, len(dates))}
		for i, d := range dates {
			s.Values[i] = sums[d]
		}
		out = append(out, s)
	}
	return out, nil
}

// FirstLast returns the first and last values of rows in input order
func FirstLast[T any](rows []T, value func(T) float64) (first, last float64, ok bool) {
	if len(rows) == 0 {
		return 0, 0, false
	}
	return value(rows[0]), value(rows[len(rows)-1]), true
}
