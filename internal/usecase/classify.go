package usecase

import (
	"strings"
	"unicode"

	"github.com/vovaf709/cinema-bot/internal/domain"
)

// Classify decides how a filtered search result set should be handled.
// Exact-name matching is case-insensitive with surrounding whitespace
// trimmed; diacritics and transliteration are left alone.
func Classify(films []domain.Film, query string) domain.Classification {
	if len(films) == 0 {
		return domain.Classification{Kind: domain.NotFound}
	}

	matches := make([]domain.Film, 0, 1)
	for _, film := range films {
		if film.SameName(query) {
			matches = append(matches, film)
		}
	}

	switch len(matches) {
	case 0:
		return domain.Classification{Kind: domain.NeedsSelection, Results: films}
	case 1:
		return domain.Classification{Kind: domain.Unique, Film: matches[0]}
	default:
		return domain.Classification{Kind: domain.AmbiguousSameName, Matches: matches}
	}
}

// SelectionChoices labels same-name films with genre and year so the user
// can tell remakes apart. First-seen order, at most max entries; the
// trailing "none of these" button is the delivery layer's job.
func SelectionChoices(matches []domain.Film, max int) []domain.Choice {
	choices := make([]domain.Choice, 0, max)
	for _, film := range matches {
		label := film.Name + "; "
		if len(film.Genres) > 0 {
			label += joinGenres(film.Genres) + "; "
		}
		if film.Year != "" {
			label += film.Year
		}
		choices = append(choices, domain.Choice{Label: label, Film: film})
		if len(choices) == max {
			break
		}
	}
	return choices
}

// QuickReplyNames returns the distinct film names of a result set, first
// occurrence wins, dedup on the normalized form.
func QuickReplyNames(films []domain.Film) []string {
	seen := make(map[string]struct{}, len(films))
	names := make([]string, 0, len(films))
	for _, film := range films {
		normalized := domain.NormalizeName(film.Name)
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		names = append(names, film.Name)
	}
	return names
}

func joinGenres(genres []domain.Genre) string {
	parts := make([]string, 0, len(genres))
	for _, genre := range genres {
		parts = append(parts, capitalize(genre.Genre))
	}
	return strings.Join(parts, ", ")
}

func joinCountries(countries []domain.Country) string {
	parts := make([]string, 0, len(countries))
	for _, country := range countries {
		parts = append(parts, country.Country)
	}
	return strings.Join(parts, ", ")
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
