package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rankeo/internal/catalog"
	"rankeo/internal/models"
)

func TestBuildPairs(t *testing.T) {
	slugs := []string{"chile", "peru", "argentina", "uruguay", "bolivia"}

	all := BuildPairs(slugs, 0)
	require.Len(t, all, len(slugs)*(len(slugs)-1)/2)
	assert.Equal(t, []string{"chile-vs-peru", "chile-vs-argentina", "chile-vs-uruguay"}, all[:3])

	seen := map[string]bool{}
	for _, pair := range all {
		assert.False(t, seen[pair], "duplicate pair %s", pair)
		seen[pair] = true

		a, b, ok := ParsePair(pair)
		require.True(t, ok)
		assert.NotEqual(t, a, b)
		assert.False(t, seen[JoinPair(b, a)], "pair %s appears in both orders", pair)
	}

	for max := 1; max <= len(all); max++ {
		assert.Equal(t, all[:max], BuildPairs(slugs, max), "max=%d", max)
	}
	assert.Equal(t, all, BuildPairs(slugs, 100))
	assert.Empty(t, BuildPairs([]string{"chile"}, 0))
	assert.NotNil(t, BuildPairs(nil, 0))
}

func TestParsePair(t *testing.T) {
	tests := []struct {
		id string
		a  string
		b  string
		ok bool
	}{
		{id: "chile-vs-peru", a: "chile", b: "peru", ok: true},
		{id: "buenos-aires-vs-ciudad-de-mexico", a: "buenos-aires", b: "ciudad-de-mexico", ok: true},
		{id: "chile-peru", ok: false},
		{id: "-vs-peru", ok: false},
		{id: "chile-vs-", ok: false},
		{id: "a-vs-b-vs-c", ok: false},
		{id: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			a, b, ok := ParsePair(tt.id)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.a, a)
			assert.Equal(t, tt.b, b)
		})
	}
}

func TestPairRoundTrip(t *testing.T) {
	names := []string{"Chile", "Perú", "Ciudad de México", "São Paulo", "Trinidad vs Tobago", "VS", "Corea del Sur"}
	for _, nameA := range names {
		for _, nameB := range names {
			if nameA == nameB {
				continue
			}
			a, b := catalog.Slugify(nameA), catalog.Slugify(nameB)
			t.Run(fmt.Sprintf("%s/%s", a, b), func(t *testing.T) {
				gotA, gotB, ok := ParsePair(JoinPair(a, b))
				require.True(t, ok)
				assert.Equal(t, a, gotA)
				assert.Equal(t, b, gotB)
			})
		}
	}
}

func TestSuggestedPairs(t *testing.T) {
	c := catalog.Default()
	svc := NewPairService(catalog.NewIndex(c))

	top := svc.TopEntities(models.EntityCountry, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "alemania", top[0].Slug)
	assert.Equal(t, 5, top[0].Appearances)

	assert.Equal(t, []string{
		"alemania-vs-argentina",
		"alemania-vs-australia",
		"argentina-vs-australia",
	}, svc.SuggestedPairs(models.EntityCountry, 3, 0))

	assert.Len(t, svc.SuggestedPairs(models.EntityCountry, 20, 190), 190)
	assert.Len(t, svc.SuggestedPairs(models.EntityCity, 20, 10), 10)
	assert.Equal(t, "amsterdam-vs-barcelona", svc.SuggestedPairs(models.EntityCity, 2, 0)[0])
	assert.Empty(t, svc.SuggestedPairs(models.EntityCountry, 0, 10))
}
