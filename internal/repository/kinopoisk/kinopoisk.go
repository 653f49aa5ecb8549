package kinopoisk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/vovaf709/cinema-bot/configs"
	"github.com/vovaf709/cinema-bot/internal/domain"
	"github.com/vovaf709/cinema-bot/pkg/prometheus"
)

type Repo struct {
	Path   string
	APIKey string
	Client *http.Client
}

func NewRepo(config *configs.Config) *Repo {
	return &Repo{
		APIKey: config.KP.Token,
		Path:   config.KP.Path,
		Client: &http.Client{
			Timeout: config.KP.Timeout,
		},
	}
}

// SearchByKeyword runs one keyword search and drops films with an absent or
// zero rating. Zero-rated entries are almost always broken catalog data, so
// the filter lives here, once, and nowhere downstream.
func (repo *Repo) SearchByKeyword(ctx context.Context, keyword string) ([]domain.Film, error) {
	const op = "kinopoisk.SearchByKeyword"

	endpoint := fmt.Sprintf("search-by-keyword?keyword=%s&page=1", url.QueryEscape(keyword))
	resp, err := repo.doRequest(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var body struct {
		Films []domain.Film `json:"films"`
	}
	if err = json.Unmarshal(resp, &body); err != nil {
		return nil, fmt.Errorf("%s: malformed response: %w", op, err)
	}

	return filterRated(body.Films), nil
}

// LookupImdbID resolves a kinopoisk film id to its IMDB id.
func (repo *Repo) LookupImdbID(ctx context.Context, filmID int) (string, error) {
	const op = "kinopoisk.LookupImdbID"

	resp, err := repo.doRequest(ctx, fmt.Sprintf("%d", filmID))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var body struct {
		ExternalID struct {
			ImdbID string `json:"imdbId"`
		} `json:"externalId"`
	}
	if err = json.Unmarshal(resp, &body); err != nil {
		return "", fmt.Errorf("%s: malformed response: %w", op, err)
	}
	if body.ExternalID.ImdbID == "" {
		return "", fmt.Errorf("%s: film %d: %w", op, filmID, domain.ErrNotFound)
	}

	return body.ExternalID.ImdbID, nil
}

func (repo *Repo) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	const op = "kinopoisk.doRequest"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, repo.Path+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Add("accept", "application/json")
	req.Header.Add("X-API-KEY", repo.APIKey)

	resp, err := repo.Client.Do(req)
	if err != nil {
		prometheus.APIFailures.WithLabelValues("kinopoisk").Inc()
		return nil, fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		prometheus.APIFailures.WithLabelValues("kinopoisk").Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s: bad status %d, response: %s", op, resp.StatusCode, body)
	}

	return io.ReadAll(resp.Body)
}

func filterRated(films []domain.Film) []domain.Film {
	filtered := make([]domain.Film, 0, len(films))
	for _, film := range films {
		if film.Rating == "" || film.Rating == "0.0" || film.Rating == "null" {
			continue
		}
		filtered = append(filtered, film)
	}
	return filtered
}
