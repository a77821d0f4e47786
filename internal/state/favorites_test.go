package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftroots/storefront/internal/model"
)

func TestFavorites_AddStampsDateAdded(t *testing.T) {
	bridge, _ := testBridge()
	fav := NewFavorites(bridge, testLogger())
	stamp := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	fav.now = func() time.Time { return stamp }

	fav.AddFavorite(product(1, "10.00"))

	snap := fav.State()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, stamp, snap.Items[0].DateAdded)
	assert.Equal(t, 1, snap.TotalItems)
}

func TestFavorites_AddIsIdempotent(t *testing.T) {
	bridge, _ := testBridge()
	fav := NewFavorites(bridge, testLogger())

	fav.AddFavorite(product(1, "10.00"))
	first := fav.State()
	fav.AddFavorite(product(1, "10.00"))

	assert.Equal(t, first, fav.State())
}

func TestFavorites_ToggleIsItsOwnInverse(t *testing.T) {
	bridge, _ := testBridge()
	fav := NewFavorites(bridge, testLogger())
	fav.AddFavorite(product(2, "5.00"))

	before := fav.State()
	fav.ToggleFavorite(product(1, "10.00"))
	assert.True(t, fav.IsFavorite(1))
	fav.ToggleFavorite(product(1, "10.00"))

	assert.False(t, fav.IsFavorite(1))
	assert.Equal(t, before, fav.State())
}

func TestFavorites_RemoveAndClear(t *testing.T) {
	bridge, backend := testBridge()
	fav := NewFavorites(bridge, testLogger())

	fav.AddFavorite(product(1, "10.00"))
	fav.AddFavorite(product(2, "20.00"))

	fav.RemoveFavorite(1)
	assert.False(t, fav.IsFavorite(1))
	assert.Equal(t, 1, fav.State().TotalItems)

	fav.ClearFavorites()
	assert.Equal(t, 0, fav.State().TotalItems)

	_, ok, err := backend.Get(model.KeyUserFavorites)
	require.NoError(t, err)
	assert.False(t, ok, "empty favorites should remove the key")
}

func TestFavorites_HydratesFromStorage(t *testing.T) {
	bridge, _ := testBridge()
	first := NewFavorites(bridge, testLogger())
	first.AddFavorite(product(1, "10.00"))
	first.AddFavorite(product(2, "20.00"))

	second := NewFavorites(bridge, testLogger())
	snap := second.State()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, 1, snap.Items[0].ID)
	assert.Equal(t, 2, snap.Items[1].ID)
	assert.Equal(t, 2, snap.TotalItems)
}

func TestFavorites_CorruptStorageStartsEmpty(t *testing.T) {
	bridge, backend := testBridge()
	require.NoError(t, backend.Set(model.KeyUserFavorites, []byte("[not json")))

	fav := NewFavorites(bridge, testLogger())
	assert.Empty(t, fav.State().Items)

	_, ok, err := backend.Get(model.KeyUserFavorites)
	require.NoError(t, err)
	assert.False(t, ok)
}
