package domain

// ClassificationKind says how a search result set should be handled.
type ClassificationKind int

const (
	// NotFound - empty or fully filtered result set.
	NotFound ClassificationKind = iota
	// Unique - exactly one film carries the queried name.
	Unique
	// AmbiguousSameName - several distinct films share the queried name.
	AmbiguousSameName
	// NeedsSelection - no film matches the query verbatim, offer the names
	// present in the result set instead.
	NeedsSelection
)

type Classification struct {
	Kind ClassificationKind

	// Film is set for Unique.
	Film Film
	// Matches holds the exact-name films for AmbiguousSameName,
	// first-seen order, uncapped (the prompt builder caps).
	Matches []Film
	// Results holds the raw result set for NeedsSelection.
	Results []Film
}

// Choice is one entry of a selection prompt.
type Choice struct {
	Label string
	Film  Film
}
