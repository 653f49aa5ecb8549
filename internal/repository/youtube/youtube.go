package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vovaf709/cinema-bot/configs"
	"github.com/vovaf709/cinema-bot/internal/domain"
	"github.com/vovaf709/cinema-bot/pkg/prometheus"
)

const watchURL = "https://www.youtube.com/watch?v="

// Repo wraps the youtube search API, parameterized by a candidate index
// into the first results page.
type Repo struct {
	Path   string
	APIKey string
	Client *http.Client
}

func NewRepo(config *configs.Config) *Repo {
	return &Repo{
		APIKey: config.YT.Token,
		Path:   config.YT.Path,
		Client: &http.Client{
			Timeout: config.YT.Timeout,
		},
	}
}

// SearchTrailer returns the watch URL of result number index for the query.
// domain.ErrNotFound when the results page has no entry at that index.
func (repo *Repo) SearchTrailer(ctx context.Context, query string, index int) (string, error) {
	const op = "youtube.SearchTrailer"

	endpoint := fmt.Sprintf("%s?part=snippet&maxResults=%d&q=%s&type=video&key=%s",
		repo.Path, index+1, url.QueryEscape(query), repo.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%s: failed to create request: %w", op, err)
	}

	resp, err := repo.Client.Do(req)
	if err != nil {
		prometheus.APIFailures.WithLabelValues("youtube").Inc()
		return "", fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		prometheus.APIFailures.WithLabelValues("youtube").Inc()
		return "", fmt.Errorf("%s: bad status %d", op, resp.StatusCode)
	}

	var body struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
		} `json:"items"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%s: malformed response: %w", op, err)
	}

	if index >= len(body.Items) || body.Items[index].ID.VideoID == "" {
		return "", fmt.Errorf("%s: no candidate at index %d: %w", op, index, domain.ErrNotFound)
	}

	return watchURL + body.Items[index].ID.VideoID, nil
}
