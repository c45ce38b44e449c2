package rotation

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsuite-ads/internal/core/domain"
)

type item struct {
	name   string
	weight int
}

func (i item) SelectionWeight() int { return i.weight }

func fixed(values ...float64) Rand {
	i := 0
	return RandFunc(func() float64 {
		v := values[i%len(values)]
		i++
		return v
	})
}

func TestPickOneEmpty(t *testing.T) {
	got, ok := PickOne([]item{}, fixed(0.5))
	assert.False(t, ok)
	assert.Equal(t, item{}, got)

	_, ok = PickOne[item](nil, fixed(0.5))
	assert.False(t, ok)
}

func TestPickOneZeroWeightCountsAsOne(t *testing.T) {
	got, ok := PickOne([]item{{name: "only", weight: 0}}, fixed(0.99))
	require.True(t, ok)
	assert.Equal(t, "only", got.name)

	// total = 1 + 1 + 2
	items := []item{{"zero", 0}, {"neg", -5}, {"two", 2}}
	cases := []struct {
		r    float64
		want string
	}{
		{0.0, "zero"},
		{0.24, "zero"},
		{0.25, "neg"},
		{0.49, "neg"},
		{0.5, "two"},
		{0.999, "two"},
	}
	for _, tc := range cases {
		got, ok := PickOne(items, fixed(tc.r))
		require.True(t, ok)
		assert.Equal(t, tc.want, got.name, "r=%v", tc.r)
	}
}

func TestPickOneFallsBackToFirst(t *testing.T) {
	// a source returning 1.0 breaks the [0,1) contract; the walk never
	// matches and the first item is returned
	got, ok := PickOne([]item{{"a", 3}, {"b", 4}}, fixed(1.0))
	require.True(t, ok)
	assert.Equal(t, "a", got.name)
}

func TestPickOneConvergesToWeights(t *testing.T) {
	items := []item{{"a", 1}, {"b", 3}, {"c", 6}}
	rng := rand.New(rand.NewPCG(1, 2))

	const draws = 200000
	counts := map[string]int{}
	for range draws {
		got, ok := PickOne(items, rng)
		require.True(t, ok)
		counts[got.name]++
	}
	assert.InDelta(t, 0.1, float64(counts["a"])/draws, 0.01)
	assert.InDelta(t, 0.3, float64(counts["b"])/draws, 0.01)
	assert.InDelta(t, 0.6, float64(counts["c"])/draws, 0.01)
}

func TestGoldAndBronzeOverrideScenario(t *testing.T) {
	a := imageCampaign("A", domain.PlacementHeader, domain.TierGold)
	b := imageCampaign("B", domain.PlacementHeader, domain.TierBronze)
	b.CustomWeight = 20

	ads := Resolve(domain.PlacementHeader, []domain.Campaign{a, b}, nil, domain.DefaultSettings(), now)
	require.Len(t, ads, 2)
	assert.Equal(t, 7, ads[0].Weight)
	assert.Equal(t, 20, ads[1].Weight)

	got, _ := PickOne(ads, fixed(0.5))
	assert.Equal(t, "B", got.ID)

	rng := rand.New(rand.NewPCG(7, 11))
	const draws = 100000
	picksB := 0
	for range draws {
		if got, _ := PickOne(ads, rng); got.ID == "B" {
			picksB++
		}
	}
	assert.InDelta(t, 20.0/27.0, float64(picksB)/draws, 0.01)
}
