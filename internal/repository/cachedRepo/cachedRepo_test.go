package cachedRepo

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/vovaf709/cinema-bot/internal/domain"
)

type fakeCatalog struct {
	lookups int
}

func (f *fakeCatalog) SearchByKeyword(_ context.Context, _ string) ([]domain.Film, error) {
	return nil, nil
}

func (f *fakeCatalog) LookupImdbID(_ context.Context, filmID int) (string, error) {
	f.lookups++
	return fmt.Sprintf("tt%d", filmID), nil
}

type fakeCache struct {
	entries map[int]string
	sets    chan struct{}
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[int]string),
		sets:    make(chan struct{}, 8),
	}
}

func (f *fakeCache) GetImdbID(_ context.Context, filmID int) (string, error) {
	imdbID, ok := f.entries[filmID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return imdbID, nil
}

func (f *fakeCache) SetImdbID(_ context.Context, filmID int, imdbID string) error {
	f.entries[filmID] = imdbID
	f.sets <- struct{}{}
	return nil
}

func TestLookupImdbIDHit(t *testing.T) {
	catalog := &fakeCatalog{}
	cache := newFakeCache()
	cache.entries[409] = "tt1160419"
	repo := NewCachedRepo(catalog, cache, slog.Default())

	imdbID, err := repo.LookupImdbID(context.Background(), 409)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imdbID != "tt1160419" {
		t.Errorf("unexpected imdb id: %q", imdbID)
	}
	if catalog.lookups != 0 {
		t.Errorf("cache hit must not reach the catalog, got %d lookups", catalog.lookups)
	}
}

func TestLookupImdbIDMissBackfills(t *testing.T) {
	catalog := &fakeCatalog{}
	cache := newFakeCache()
	repo := NewCachedRepo(catalog, cache, slog.Default())

	imdbID, err := repo.LookupImdbID(context.Background(), 409)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imdbID != "tt409" {
		t.Errorf("unexpected imdb id: %q", imdbID)
	}
	if catalog.lookups != 1 {
		t.Errorf("expected one catalog lookup, got %d", catalog.lookups)
	}

	select {
	case <-cache.sets:
	case <-time.After(time.Second):
		t.Fatal("expected the miss to backfill the cache")
	}
	if cache.entries[409] != "tt409" {
		t.Errorf("unexpected cached value: %q", cache.entries[409])
	}
}
