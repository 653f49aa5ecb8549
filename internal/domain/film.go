package domain

import "strings"

// Film is one entry of a kinopoisk keyword search, immutable once fetched.
// Year and Rating come back as strings from the v2.1 API and may be empty.
type Film struct {
	ID          int       `json:"filmId"`
	Name        string    `json:"nameRu"`
	Year        string    `json:"year"`
	Rating      string    `json:"rating"`
	Length      string    `json:"filmLength"`
	Description string    `json:"description"`
	PosterURL   string    `json:"posterUrlPreview"`
	Genres      []Genre   `json:"genres"`
	Countries   []Country `json:"countries"`
}

type Genre struct {
	Genre string `json:"genre"`
}

type Country struct {
	Country string `json:"country"`
}

// NormalizeName is the comparison form used for exact-name matching:
// case-insensitive, leading/trailing whitespace trimmed, nothing else.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameName reports whether the film's localized name matches the query
// under NormalizeName.
func (f Film) SameName(query string) bool {
	return NormalizeName(f.Name) == NormalizeName(query)
}
