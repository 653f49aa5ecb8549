package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vovaf709/cinema-bot/internal/domain"
)

// Films runs the search-and-classify flow and the view-link chain.
type Films struct {
	catalog   CatalogProvider
	providers ViewProvider
	log       *slog.Logger
}

func NewFilms(catalog CatalogProvider, providers ViewProvider, log *slog.Logger) *Films {
	return &Films{
		catalog:   catalog,
		providers: providers,
		log:       log,
	}
}

// Search classifies the catalog's answer for one free-text query.
// An upstream failure is an error; an empty (or fully filtered) result set
// is a normal NotFound classification.
func (uc *Films) Search(ctx context.Context, query string) (domain.Classification, error) {
	const op = "usecase.Films.Search"

	if strings.TrimSpace(query) == "" {
		return domain.Classification{Kind: domain.NotFound}, nil
	}

	films, err := uc.catalog.SearchByKeyword(ctx, query)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("%s: %w", op, err)
	}

	return Classify(films, query), nil
}

// ViewURL chases film id -> imdb id -> RU watch link. Every hop degrades
// to "no link" instead of surfacing a technical error.
func (uc *Films) ViewURL(ctx context.Context, film domain.Film) string {
	imdbID, err := uc.catalog.LookupImdbID(ctx, film.ID)
	if err != nil {
		uc.log.DebugContext(ctx, "imdb id unavailable", "filmID", film.ID, "error", err)
		return ""
	}

	viewURL, err := uc.providers.ViewURL(ctx, imdbID)
	if err != nil {
		uc.log.DebugContext(ctx, "view url unavailable", "imdbID", imdbID, "error", err)
		return ""
	}
	return viewURL
}

// Poster fetches the poster payload, nil when the film has no poster or
// the fetch failed.
func (uc *Films) Poster(ctx context.Context, film domain.Film) []byte {
	if film.PosterURL == "" {
		return nil
	}
	payload, err := uc.providers.FetchPoster(ctx, film.PosterURL)
	if err != nil {
		uc.log.DebugContext(ctx, "poster unavailable", "filmID", film.ID, "error", err)
		return nil
	}
	return payload
}
