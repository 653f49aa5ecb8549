package cachedRepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vovaf709/cinema-bot/internal/domain"
	"github.com/vovaf709/cinema-bot/pkg/prometheus"
)

type CatalogRepository interface {
	SearchByKeyword(ctx context.Context, keyword string) ([]domain.Film, error)
	LookupImdbID(ctx context.Context, filmID int) (string, error)
}

type CacheRepository interface {
	GetImdbID(ctx context.Context, filmID int) (string, error)
	SetImdbID(ctx context.Context, filmID int, imdbID string) error
}

// CachedRepo is a read-through cache over the catalog. Only the IMDB id
// lookup is cached: search pages churn, ids are immutable.
type CachedRepo struct {
	repo  CatalogRepository
	cache CacheRepository
	log   *slog.Logger
}

func NewCachedRepo(repo CatalogRepository, cache CacheRepository, log *slog.Logger) *CachedRepo {
	return &CachedRepo{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func (r *CachedRepo) SearchByKeyword(ctx context.Context, keyword string) ([]domain.Film, error) {
	return r.repo.SearchByKeyword(ctx, keyword)
}

func (r *CachedRepo) LookupImdbID(ctx context.Context, filmID int) (string, error) {
	const op = "cachedRepo.LookupImdbID"

	imdbID, err := r.cache.GetImdbID(ctx, filmID)
	if err == nil {
		prometheus.CacheOperations.WithLabelValues("hit").Inc()
		return imdbID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		prometheus.CacheOperations.WithLabelValues("error").Inc()
		r.log.WarnContext(ctx, "cache lookup failed",
			"filmID", filmID,
			"error", err,
		)
	}
	prometheus.CacheOperations.WithLabelValues("miss").Inc()

	imdbID, err = r.repo.LookupImdbID(ctx, filmID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	go func() {
		if err := r.cache.SetImdbID(context.WithoutCancel(ctx), filmID, imdbID); err != nil {
			r.log.ErrorContext(ctx, "failed to cache imdb id",
				"filmID", filmID,
				"error", err,
			)
		}
	}()

	return imdbID, nil
}
