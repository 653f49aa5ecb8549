package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/vovaf709/cinema-bot/configs"
	"github.com/vovaf709/cinema-bot/pkg/prometheus"
)

// Repo wraps the TMDB watch-provider lookup and the poster fetch.
type Repo struct {
	Path   string
	APIKey string
	Client *http.Client
}

func NewRepo(config *configs.Config) *Repo {
	return &Repo{
		APIKey: config.TMDB.Token,
		Path:   config.TMDB.Path,
		Client: &http.Client{
			Timeout: config.TMDB.Timeout,
		},
	}
}

// ViewURL returns the RU-region watch link for an IMDB id, or "" when TMDB
// knows no provider for that region.
func (repo *Repo) ViewURL(ctx context.Context, imdbID string) (string, error) {
	const op = "tmdb.ViewURL"

	endpoint := fmt.Sprintf("%s%s/watch/providers?api_key=%s", repo.Path, imdbID, repo.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%s: failed to create request: %w", op, err)
	}

	resp, err := repo.Client.Do(req)
	if err != nil {
		prometheus.APIFailures.WithLabelValues("tmdb").Inc()
		return "", fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		prometheus.APIFailures.WithLabelValues("tmdb").Inc()
		return "", fmt.Errorf("%s: bad status %d", op, resp.StatusCode)
	}

	var body struct {
		Results map[string]struct {
			Link string `json:"link"`
		} `json:"results"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%s: malformed response: %w", op, err)
	}

	return body.Results["RU"].Link, nil
}

// FetchPoster downloads the poster payload as-is. The caller decides
// whether the bytes are a real image or the catalog's placeholder.
func (repo *Repo) FetchPoster(ctx context.Context, url string) ([]byte, error) {
	const op = "tmdb.FetchPoster"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}

	resp, err := repo.Client.Do(req)
	if err != nil {
		prometheus.APIFailures.WithLabelValues("poster").Inc()
		return nil, fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		prometheus.APIFailures.WithLabelValues("poster").Inc()
		return nil, fmt.Errorf("%s: bad status %d", op, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
