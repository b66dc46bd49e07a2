package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	user    string
	country string
	value   float64
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.5, Median([]float64{1, 2, 3, 4}))
	assert.Equal(t, 3.0, Median([]float64{1, 3, 5}))
	assert.Equal(t, 0.0, Median([]float64{}))
	assert.Equal(t, 0.0, Median(nil))

	values := []float64{4, 1, 3}
	assert.Equal(t, 3.0, Median(values))
	assert.Equal(t, []float64{4, 1, 3}, values)
}

func TestBuildDistribution(t *testing.T) {
	t.Run("even spread", func(t *testing.T) {
		values := []float64{0, 0.1, 0.25, 0.5, 0.99, 1}
		d := BuildDistribution(values, 10)
		require.Len(t, d.Labels, 10)
		require.Len(t, d.Counts, 10)
		assert.Equal(t, "0.0000~0.1000", d.Labels[0])
		assert.Equal(t, "0.9000~1.0000", d.Labels[9])

		total := 0
		for _, c := range d.Counts {
			total += c
		}
		assert.Equal(t, len(values), total)
		// the max is inclusive into the last bin
		assert.Equal(t, 2, d.Counts[9])
		assert.Equal(t, 1, d.Counts[0])
	})

	t.Run("degenerate", func(t *testing.T) {
		d := BuildDistribution([]float64{0.5, 0.5, 0.5}, 10)
		assert.Equal(t, []string{"0.5000"}, d.Labels)
		assert.Equal(t, []int{3}, d.Counts)
	})

	t.Run("empty", func(t *testing.T) {
		d := BuildDistribution(nil, 10)
		assert.Empty(t, d.Labels)
		assert.Empty(t, d.Counts)
	})

	t.Run("negative deltas", func(t *testing.T) {
		values := []float64{-2, -1, 0, 1, 2}
		d := BuildDistribution(values, 4)
		assert.Equal(t, []int{1, 1, 1, 2}, d.Counts)
		assert.Equal(t, "-2.0000~-1.0000", d.Labels[0])
	})
}

func TestJoinMembership(t *testing.T) {
	base := []observation{
		{"A", "US", 0.4},
		{"B", "US", 0.5},
		{"C", "CN", 0.6},
		{"A", "US", 0.9}, // duplicate, first wins
	}
	target := []observation{
		{"B", "US", 0.5},
		{"C", "CN", 0.7},
		{"D", "JP", 0.2},
	}

	pairs, err := Join(context.Background(), base, target, func(o observation) string { return o.user })
	require.NoError(t, err)
	require.Len(t, pairs, 4)

	assert.Equal(t, "A", pairs[0].Key)
	assert.True(t, pairs[0].Missing())
	assert.Equal(t, 0.4, pairs[0].Base.value)
	assert.True(t, pairs[1].Comparable())
	assert.True(t, pairs[2].Comparable())
	assert.Equal(t, "D", pairs[3].Key)
	assert.True(t, pairs[3].New())
	assert.Equal(t, "JP", pairs[3].Latest().country)

	m := CountMembership(pairs)
	assert.Equal(t, Membership{OnBase: 3, OnTarget: 3, Comparable: 2, New: 1, Missing: 1}, m)
	assert.Equal(t, 4, m.Comparable+m.New+m.Missing)
}

func TestExcludeBeforeMembership(t *testing.T) {
	base := []observation{{"A", "US", 0.5}, {"B", "US", 0.5 + 1e-12}, {"C", "CN", 0.3}}
	target := []observation{{"A", "US", 0.5}, {"B", "US", 0.5}, {"C", "CN", 0.5}}

	pairs, err := Join(context.Background(), base, target, func(o observation) string { return o.user })
	require.NoError(t, err)

	change := func(p Pair[observation]) Change {
		return Change{Base: p.Base.value, Target: p.Target.value}
	}
	kept := Exclude(pairs, func(p Pair[observation]) bool {
		return p.Comparable() && BothNear(change(p), 0.5, 1e-9)
	})

	m := CountMembership(kept)
	assert.Equal(t, 1, m.Comparable)
	assert.Equal(t, 1, m.OnBase)
	require.Len(t, kept, 1)
	assert.Equal(t, "C", kept[0].Key)
}

func TestSummarize(t *testing.T) {
	changes := []Change{
		{Base: 1, Target: 2},
		{Base: 2, Target: 1},
		{Base: 3, Target: 3},
		{Base: 0, Target: 4},
	}
	s := Summarize(changes)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 2, s.Increased)
	assert.Equal(t, 1, s.Decreased)
	assert.Equal(t, 1, s.Unchanged)
	assert.Equal(t, 1.5, s.AvgBase)
	assert.Equal(t, 2.5, s.AvgTarget)
	assert.Equal(t, 1.0, s.AvgChange)
	assert.Equal(t, 0.5, s.MedianChange)
	assert.Equal(t, 4.0, s.MaxIncrease)
	assert.Equal(t, -1.0, s.MaxDecrease)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarizeBy(t *testing.T) {
	items := []observation{
		{"A", "US", 1},
		{"B", "CN", 3},
		{"C", "US", 2},
		{"D", "JP", 3},
		{"E", "CN", -1},
		{"F", "BR", 3},
	}

	out, err := SummarizeBy(context.Background(), items,
		func(o observation) string { return o.country },
		func(o observation) Change { return Change{Base: 0, Target: o.value} },
		0,
	)
	require.NoError(t, err)
	require.Len(t, out, 4)

	// two-member groups first, higher average change first, then dimension name
	assert.Equal(t, "US", out[0].Dimension)
	assert.Equal(t, 1.5, out[0].AvgChange)
	assert.Equal(t, "CN", out[1].Dimension)
	assert.Equal(t, "BR", out[2].Dimension)
	assert.Equal(t, "JP", out[3].Dimension)

	top, err := SummarizeBy(context.Background(), items,
		func(o observation) string { return o.country },
		func(o observation) Change { return Change{Base: 0, Target: o.value} },
		2,
	)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestTopMovers(t *testing.T) {
	items := []observation{{"A", "", 1}, {"B", "", 5}, {"C", "", -3}, {"D", "", 5}, {"E", "", 0}}
	gainers, decliners := TopMovers(items, func(o observation) float64 { return o.value }, 3)

	require.Len(t, gainers, 3)
	assert.Equal(t, "B", gainers[0].user)
	assert.Equal(t, "D", gainers[1].user)
	assert.Equal(t, "A", gainers[2].user)

	require.Len(t, decliners, 3)
	assert.Equal(t, "C", decliners[0].user)
	assert.Equal(t, "E", decliners[1].user)
	assert.Equal(t, "A", decliners[2].user)
}

func TestNear(t *testing.T) {
	assert.True(t, Near(0.5+1e-10, 0.5, 1e-9))
	assert.False(t, Near(0.5+1e-8, 0.5, 1e-9))
	assert.True(t, BothNear(Change{Base: 1e-13, Target: -1e-13}, 0, 1e-12))
	assert.False(t, BothNear(Change{Base: 0, Target: 1e-6}, 0, 1e-12))
}
