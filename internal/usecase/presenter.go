package usecase

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vovaf709/cinema-bot/internal/domain"
)

// brokenPosterSignature shows up in the catalog's "no poster" placeholder,
// which is a GIF instead of a real image.
var brokenPosterSignature = []byte("GIF")

// DisplayContent is a resolved film rendered for sending.
type DisplayContent struct {
	Caption    string
	PosterURL  string
	TrailerURL string
	Truncated  bool
}

// Render formats a film caption: present fields only, fixed order, no
// clever conditional arithmetic. The caption is cut at limit runes with an
// ellipsis marker.
func Render(film domain.Film, viewURL, trailerURL string, limit int) DisplayContent {
	var b strings.Builder

	b.WriteString(film.Name + "\n\n")
	if film.Rating != "" {
		fmt.Fprintf(&b, "Рейтинг: %s\n", film.Rating)
	}
	if len(film.Genres) > 0 {
		fmt.Fprintf(&b, "Жанр: %s\n", joinGenres(film.Genres))
	}
	if film.Length != "" {
		fmt.Fprintf(&b, "Длительность: %s\n", film.Length)
	}
	if film.Year != "" {
		fmt.Fprintf(&b, "Год производства: %s\n", film.Year)
	}
	if len(film.Countries) > 0 {
		fmt.Fprintf(&b, "Страна: %s\n\n", joinCountries(film.Countries))
	}
	if film.Description != "" {
		fmt.Fprintf(&b, "Краткое описание:\n %s\n\n", film.Description)
	}
	if viewURL != "" {
		b.WriteString("Ссылка для просмотра: " + viewURL)
	}

	caption := b.String()
	truncated := false
	if runes := []rune(caption); len(runes) > limit {
		caption = string(runes[:limit]) + "..."
		truncated = true
	}

	return DisplayContent{
		Caption:    caption,
		PosterURL:  film.PosterURL,
		TrailerURL: trailerURL,
		Truncated:  truncated,
	}
}

// BrokenPoster reports whether a poster payload is the placeholder rather
// than a displayable image.
func BrokenPoster(payload []byte) bool {
	return bytes.Contains(payload, brokenPosterSignature)
}
