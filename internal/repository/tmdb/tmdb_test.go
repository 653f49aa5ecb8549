package tmdb

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vovaf709/cinema-bot/configs"
)

func testRepo(url string) *Repo {
	return NewRepo(&configs.Config{
		TMDB: configs.TMDBConfig{
			Token:   "tmdb-token",
			Path:    url + "/3/movie/",
			Timeout: time.Second,
		},
	})
}

func TestViewURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/3/movie/tt1160419/watch/providers" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "tmdb-token" {
			t.Errorf("unexpected api key: %q", r.URL.Query().Get("api_key"))
		}
		w.Write([]byte(`{"results": {"RU": {"link": "https://www.themoviedb.org/movie/438631/watch"}}}`))
	}))
	defer srv.Close()

	url, err := testRepo(srv.URL).ViewURL(context.Background(), "tt1160419")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://www.themoviedb.org/movie/438631/watch" {
		t.Errorf("unexpected url: %q", url)
	}
}

func TestViewURLNoRURegion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": {"US": {"link": "https://example.com"}}}`))
	}))
	defer srv.Close()

	url, err := testRepo(srv.URL).ViewURL(context.Background(), "tt1160419")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "" {
		t.Errorf("expected no link outside RU, got %q", url)
	}
}

func TestViewURLBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := testRepo(srv.URL).ViewURL(context.Background(), "tt0"); err == nil {
		t.Fatal("expected an error on non-200")
	}
}

func TestFetchPoster(t *testing.T) {
	payload := []byte("\xff\xd8\xff\xe0JFIF")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	got, err := testRepo(srv.URL).FetchPoster(context.Background(), srv.URL+"/poster.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("unexpected payload: %q", got)
	}
}
