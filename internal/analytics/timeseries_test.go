package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countryRow struct {
	country string
	date    time.Time
	value   float64
}

func day(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGroupSeries(t *testing.T) {
	rows := []countryRow{
		{"CN", day("2026-02-01"), 1},
		{"CN", day("2026-02-02"), 2},
		{"US", day("2026-02-01"), 5},
		{"JP", day("2026-02-02"), 7},
		{"US", day("2026-02-02"), 6},
	}

	series, err := GroupSeries(context.Background(), rows, func(r countryRow) string { return r.country })
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, "CN", series[0].Entity)
	assert.Equal(t, "US", series[1].Entity)
	assert.Equal(t, "JP", series[2].Entity)
	assert.Len(t, series[0].Rows, 2)
	assert.Equal(t, 6.0, series[1].Rows[1].value)

	empty, err := GroupSeries(context.Background(), []countryRow{}, func(r countryRow) string { return r.country })
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDayOverDay(t *testing.T) {
	assert.Equal(t, []int64{0, 5, -2, 0}, DayOverDay([]int64{10, 15, 13, 13}))
	assert.Equal(t, []float64{0}, DayOverDay([]float64{42}))
	assert.Empty(t, DayOverDay([]int{}))

	for _, values := range [][]float64{{3}, {1, 2}, {9, 1, 4, 4}} {
		assert.Equal(t, 0.0, DayOverDay(values)[0])
	}
}

func TestSumByDate(t *testing.T) {
	rows := []countryRow{
		{"MASTER|US", day("2026-02-02"), 1.5},
		{"MASTER|US", day("2026-02-01"), 1},
		{"GOLD|CN", day("2026-02-01"), 3},
		{"MASTER|US", day("2026-02-02"), 2.5},
	}

	series, err := SumByDate(context.Background(), rows,
		func(r countryRow) string { return r.country },
		func(r countryRow) time.Time { return r.date },
		func(r countryRow) float64 { return r.value },
	)
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, "MASTER|US", series[0].Entity)
	assert.Equal(t, []time.Time{day("2026-02-01"), day("2026-02-02")}, series[0].Dates)
	assert.Equal(t, []float64{1, 4}, series[0].Values)
	assert.Equal(t, "GOLD|CN", series[1].Entity)
	assert.Equal(t, []float64{3}, series[1].Values)
}

func TestFirstLast(t *testing.T) {
	rows := []countryRow{{"A", day("2026-01-01"), 2}, {"A", day("2026-01-02"), 3}, {"A", day("2026-01-03"), 7}}
	first, last, ok := FirstLast(rows, func(r countryRow) float64 { return r.value })
	require.True(t, ok)
	assert.Equal(t, 2.0, first)
	assert.Equal(t, 7.0, last)

	_, _, ok = FirstLast([]countryRow{}, func(r countryRow) float64 { return r.value })
	assert.False(t, ok)
}

func TestWindowDays(t *testing.T) {
	w := Window{Start: day("2026-02-27"), End: day("2026-03-02")}
	days := w.Days()
	require.Len(t, days, 4)
	assert.Equal(t, "2026-02-27", FormatDate(days[0]))
	assert.Equal(t, "2026-03-02", FormatDate(days[3]))
	assert.Nil(t, Window{Empty: true}.Days())
}
