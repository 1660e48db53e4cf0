package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_CategoryOnly(t *testing.T) {
	got := Filter(Products(), "Bebidas", "")

	require.Len(t, got, 1)
	assert.Equal(t, "Azulito", got[0].Title)
	for _, p := range got {
		assert.Equal(t, "Bebidas", p.Category)
	}
}

func TestFilter_AllMatchesEverything(t *testing.T) {
	got := Filter(Products(), CategoryAll, "")
	assert.Len(t, got, len(Products()))
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	got := Filter(Products(), CategoryAll, "NACH")

	require.Len(t, got, 1)
	assert.Equal(t, "Nachos", got[0].Title)
}

func TestFilter_SearchMatchesCategoryToo(t *testing.T) {
	got := Filter(Products(), CategoryAll, "pollo")

	require.Len(t, got, 1)
	assert.Equal(t, "Alitas", got[0].Title)
}

func TestFilter_PreservesCatalogOrder(t *testing.T) {
	got := Filter(Products(), CategoryAll, "a")

	var prev int = -1
	all := Products()
	for _, p := range got {
		idx := -1
		for i, q := range all {
			if q.ID == p.ID {
				idx = i
				break
			}
		}
		require.Greater(t, idx, prev, "filter must not re-sort")
		prev = idx
	}
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter(Products(), "Bebidas", "alitas")
	assert.Empty(t, got)
}

func TestByID(t *testing.T) {
	p, ok := ByID("3")
	require.True(t, ok)
	assert.Equal(t, "Azulito", p.Title)

	_, ok = ByID("999")
	assert.False(t, ok)
}
