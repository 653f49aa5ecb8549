package usecase

import (
	"context"

	"github.com/vovaf709/cinema-bot/internal/domain"
)

type CatalogProvider interface {
	SearchByKeyword(ctx context.Context, keyword string) ([]domain.Film, error)
	LookupImdbID(ctx context.Context, filmID int) (string, error)
}

type ViewProvider interface {
	ViewURL(ctx context.Context, imdbID string) (string, error)
	FetchPoster(ctx context.Context, url string) ([]byte, error)
}

type TrailerProvider interface {
	SearchTrailer(ctx context.Context, query string, index int) (string, error)
}
