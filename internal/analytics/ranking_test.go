package analytics

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestComputeDelta(t *testing.T) {
	tests := []struct {
		name        string
		current     float64
		baseline    *float64
		policy      DeltaPolicy
		wantOK      bool
		wantChange  float64
		wantPercent *float64
	}{
		{
			name:        "baseline present",
			current:     15,
			baseline:    ptr(10),
			policy:      WeightDelta,
			wantOK:      true,
			wantChange:  5,
			wantPercent: ptr(50),
		},
		{
			name:        "zero baseline is capped at 100",
			current:     5,
			baseline:    ptr(0),
			policy:      WeightDelta,
			wantOK:      true,
			wantChange:  5,
			wantPercent: ptr(100),
		},
		{
			name:        "zero baseline and zero current is capped at 100",
			current:     0,
			baseline:    ptr(0),
			policy:      WeightDelta,
			wantOK:      true,
			wantChange:  0,
			wantPercent: ptr(100),
		},
		{
			name:        "tier with no weight on either date",
			current:     0,
			baseline:    ptr(0),
			policy:      TierDelta,
			wantOK:      true,
			wantChange:  0,
			wantPercent: ptr(0),
		},
		{
			name:        "tier growing from zero",
			current:     3,
			baseline:    ptr(0),
			policy:      TierDelta,
			wantOK:      true,
			wantChange:  3,
			wantPercent: ptr(100),
		},
		{
			name:        "zero baseline undefined",
			current:     5,
			baseline:    ptr(0),
			policy:      ComparableDelta,
			wantOK:      true,
			wantChange:  5,
			wantPercent: nil,
		},
		{
			name:        "absent baseline grows from zero",
			current:     5,
			baseline:    nil,
			policy:      WeightDelta,
			wantOK:      true,
			wantChange:  5,
			wantPercent: ptr(100),
		},
		{
			name:     "absent baseline is excluded",
			current:  5,
			baseline: nil,
			policy:   ComparableDelta,
			wantOK:   false,
		},
		{
			name:        "decrease",
			current:     80,
			baseline:    ptr(100),
			policy:      WeightDelta,
			wantOK:      true,
			wantChange:  -20,
			wantPercent: ptr(-20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ComputeDelta(tt.current, tt.baseline, tt.policy)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tt.wantChange, d.Change, 1e-9)
			if tt.wantPercent == nil {
				assert.Nil(t, d.Percent)
			} else {
				require.NotNil(t, d.Percent)
				assert.InDelta(t, *tt.wantPercent, *d.Percent, 1e-9)
			}
		})
	}
}

func TestPercentile(t *testing.T) {
	assert.Equal(t, 100.0, Percentile(1, 1))
	assert.Equal(t, 100.0, Percentile(1, 0))
	for _, n := range []int{2, 3, 7, 100} {
		assert.Equal(t, 100.0, Percentile(1, n), "rank 1 of %d", n)
		assert.Equal(t, 0.0, Percentile(n, n), "rank %d of %d", n, n)
	}
	assert.Equal(t, 50.0, Percentile(2, 3))
	assert.Equal(t, 66.67, Percentile(2, 4))
}

type entity struct {
	id    string
	value float64
}

func TestRankStableTies(t *testing.T) {
	items := []entity{
		{"a", 1},
		{"b", 3},
		{"c", 3},
		{"d", 2},
		{"e", 3},
	}

	ranked, err := Rank(context.Background(), items, func(e entity) float64 { return e.value }, SortDesc)
	require.NoError(t, err)

	var ids []string
	for _, r := range ranked {
		ids = append(ids, r.Item.id)
	}
	assert.Equal(t, []string{"b", "c", "e", "d", "a"}, ids)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 100.0, ranked[0].Percentile)
	assert.Equal(t, 5, ranked[4].Rank)
	assert.Equal(t, 0.0, ranked[4].Percentile)

	// input slice is untouched
	assert.Equal(t, "a", items[0].id)

	asc, err := Rank(context.Background(), items, func(e entity) float64 { return e.value }, SortAsc)
	require.NoError(t, err)
	ids = ids[:0]
	for _, r := range asc {
		ids = append(ids, r.Item.id)
	}
	assert.Equal(t, []string{"a", "d", "b", "c", "e"}, ids)
}

func TestRankCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Rank(ctx, []entity{{"a", 1}}, func(e entity) float64 { return e.value }, SortDesc)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSortByNullableKey(t *testing.T) {
	type row struct {
		id string
		v  *float64
	}
	rows := []row{{"a", nil}, {"b", ptr(2)}, {"c", ptr(1)}, {"d", nil}, {"e", ptr(2)}}

	SortByNullableKey(rows, func(r row) *float64 { return r.v }, SortDesc)
	var ids []string
	for _, r := range rows {
		ids = append(ids, r.id)
	}
	assert.Equal(t, []string{"b", "e", "c", "a", "d"}, ids)

	SortByNullableKey(rows, func(r row) *float64 { return r.v }, SortAsc)
	ids = ids[:0]
	for _, r := range rows {
		ids = append(ids, r.id)
	}
	assert.Equal(t, []string{"c", "b", "e", "a", "d"}, ids)
}

func TestPaginatePartitionsResult(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	page2 := Paginate(items, 2, 10)
	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, page2)
	assert.Equal(t, 3, TotalPages(len(items), 10))

	for _, size := range []int{1, 3, 7, 10, 25, 40} {
		t.Run(fmt.Sprintf("page_size=%d", size), func(t *testing.T) {
			var seen []int
			for page := 1; page <= TotalPages(len(items), size); page++ {
				seen = append(seen, Paginate(items, page, size)...)
			}
			assert.Equal(t, items, seen)
		})
	}

	assert.Empty(t, Paginate(items, 4, 10))
	assert.Empty(t, Paginate(items, 0, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
}

func TestWeightChangeScenario(t *testing.T) {
	// US weighs 100 on 2026-02-10 and 80 on 2026-02-09
	d, ok := ComputeDelta(100, ptr(80), WeightDelta)
	require.True(t, ok)
	assert.Equal(t, 20.0, d.Change)
	require.NotNil(t, d.Percent)
	assert.Equal(t, 25.0, *d.Percent)

	ranked, err := Rank(context.Background(), []Delta{d}, func(d Delta) float64 { return d.Change }, SortDesc)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].Rank)
}

func TestParseSortOrder(t *testing.T) {
	o, err := ParseSortOrder("", SortDesc)
	require.NoError(t, err)
	assert.Equal(t, SortDesc, o)

	o, err = ParseSortOrder("ASC", SortDesc)
	require.NoError(t, err)
	assert.Equal(t, SortAsc, o)

	_, err = ParseSortOrder("sideways", SortDesc)
	assert.Error(t, err)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.23, Round(1.2345, WeightPlaces))
	assert.Equal(t, 1.2346, Round(1.23456, RatioPlaces))
	assert.Nil(t, RoundPtr(nil, 2))
	assert.Equal(t, 2.5, *RoundPtr(ptr(2.4999), 2))
}
