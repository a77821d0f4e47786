package state

import (
	"log/slog"
	"sync"
	"time"

	"github.com/craftroots/storefront/internal/model"
	"github.com/craftroots/storefront/internal/storage"
)

// Favorites owns the deduplicated list of favorited products.
type Favorites struct {
	mu     sync.Mutex
	items  []model.FavoriteItem
	bridge *storage.Bridge
	log    *slog.Logger
	now    func() time.Time
	subs   subscribers[model.FavoritesState]
}

// NewFavorites builds the container and hydrates it from storage.
func NewFavorites(bridge *storage.Bridge, log *slog.Logger) *Favorites {
	f := &Favorites{bridge: bridge, log: log, now: time.Now}
	var stored []model.FavoriteItem
	if bridge.Read(model.KeyUserFavorites, &stored) {
		f.items = stored
		log.Info("favorites restored", "count", len(stored))
	}
	return f
}

// Subscribe registers fn to receive a state snapshot after every committed
// transition. The returned function cancels the subscription.
func (f *Favorites) Subscribe(fn func(model.FavoritesState)) func() {
	return f.subs.add(fn)
}

// State returns a snapshot of the current favorites state.
func (f *Favorites) State() model.FavoritesState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return snapshotFavorites(f.items)
}

// AddFavorite appends the product with DateAdded stamped now. Adding an id
// that is already favorited is a no-op.
func (f *Favorites) AddFavorite(p model.Product) {
	f.mu.Lock()
	if hasFavorite(f.items, p.ID) {
		f.mu.Unlock()
		return
	}
	f.items = append(f.items, toFavorite(p, f.now()))
	snap := f.commit()
	f.mu.Unlock()

	f.subs.notify(snap)
}

// RemoveFavorite deletes the favorite with the given product id.
func (f *Favorites) RemoveFavorite(id int) {
	f.mu.Lock()
	next := make([]model.FavoriteItem, 0, len(f.items))
	for _, item := range f.items {
		if item.ID != id {
			next = append(next, item)
		}
	}
	f.items = next
	snap := f.commit()
	f.mu.Unlock()

	f.subs.notify(snap)
}

// ClearFavorites resets to the empty state.
func (f *Favorites) ClearFavorites() {
	f.mu.Lock()
	f.items = nil
	snap := f.commit()
	f.mu.Unlock()

	f.subs.notify(snap)
}

// IsFavorite reports whether the product id is favorited.
func (f *Favorites) IsFavorite(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return hasFavorite(f.items, id)
}

// ToggleFavorite removes the product if favorited, adds it otherwise. The
// check and the mutation happen under one lock acquisition, so two toggles
// in the same instant cannot both observe the stale membership.
func (f *Favorites) ToggleFavorite(p model.Product) {
	f.mu.Lock()
	if hasFavorite(f.items, p.ID) {
		next := make([]model.FavoriteItem, 0, len(f.items))
		for _, item := range f.items {
			if item.ID != p.ID {
				next = append(next, item)
			}
		}
		f.items = next
	} else {
		f.items = append(f.items, toFavorite(p, f.now()))
	}
	snap := f.commit()
	f.mu.Unlock()

	f.subs.notify(snap)
}

// commit persists the items list and returns the snapshot to broadcast.
// The key is removed when the list empties. Caller holds the lock.
func (f *Favorites) commit() model.FavoritesState {
	if len(f.items) > 0 {
		f.bridge.Write(model.KeyUserFavorites, f.items)
	} else {
		f.bridge.Remove(model.KeyUserFavorites)
	}
	return snapshotFavorites(f.items)
}

func snapshotFavorites(items []model.FavoriteItem) model.FavoritesState {
	out := make([]model.FavoriteItem, len(items))
	copy(out, items)
	return model.FavoritesState{Items: out, TotalItems: len(items)}
}

func hasFavorite(items []model.FavoriteItem, id int) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func toFavorite(p model.Product, addedAt time.Time) model.FavoriteItem {
	return model.FavoriteItem{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Seller:      p.Seller,
		DateAdded:   addedAt,
	}
}
