package usecase

import (
	"testing"

	"github.com/vovaf709/cinema-bot/internal/domain"
)

func film(name, year, rating string) domain.Film {
	return domain.Film{Name: name, Year: year, Rating: rating}
}

func TestClassifyEmpty(t *testing.T) {
	c := Classify(nil, "Дюна")
	if c.Kind != domain.NotFound {
		t.Fatalf("expected NotFound, got %v", c.Kind)
	}
}

func TestClassifyUnique(t *testing.T) {
	films := []domain.Film{
		film("Дюна", "2021", "8.1"),
		film("Дюна: Часть вторая", "2024", "8.5"),
	}
	c := Classify(films, "Дюна")
	if c.Kind != domain.Unique {
		t.Fatalf("expected Unique, got %v", c.Kind)
	}
	if c.Film.Year != "2021" {
		t.Errorf("expected the 2021 film, got %q", c.Film.Year)
	}
}

func TestClassifyMatchIsCaseAndSpaceInsensitive(t *testing.T) {
	films := []domain.Film{film("Дюна", "2021", "8.1")}
	c := Classify(films, "  дЮнА ")
	if c.Kind != domain.Unique {
		t.Fatalf("expected Unique for normalized query, got %v", c.Kind)
	}
}

func TestClassifyAmbiguousSameName(t *testing.T) {
	films := []domain.Film{
		film("Дюна", "1984", "7.5"),
		film("Дюна: Часть вторая", "2024", "8.5"),
		film("Дюна", "2021", "8.1"),
	}
	c := Classify(films, "Дюна")
	if c.Kind != domain.AmbiguousSameName {
		t.Fatalf("expected AmbiguousSameName, got %v", c.Kind)
	}
	if len(c.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(c.Matches))
	}
	// First-seen order: selecting index 1 must give the 2021 film.
	if c.Matches[0].Year != "1984" || c.Matches[1].Year != "2021" {
		t.Errorf("unexpected match order: %q, %q", c.Matches[0].Year, c.Matches[1].Year)
	}
}

func TestClassifyNeedsSelection(t *testing.T) {
	films := []domain.Film{
		film("Дюна", "2021", "8.1"),
		film("Дюна: Часть вторая", "2024", "8.5"),
	}
	c := Classify(films, "дюн")
	if c.Kind != domain.NeedsSelection {
		t.Fatalf("expected NeedsSelection, got %v", c.Kind)
	}
	if len(c.Results) != 2 {
		t.Errorf("expected raw results to be carried, got %d", len(c.Results))
	}
}

func TestSelectionChoicesLabels(t *testing.T) {
	matches := []domain.Film{
		{Name: "Дюна", Year: "2021", Genres: []domain.Genre{{Genre: "фантастика"}, {Genre: "драма"}}},
		{Name: "Дюна"},
	}
	choices := SelectionChoices(matches, 10)
	if len(choices) != 2 {
		t.Fatalf("expected 2 choices, got %d", len(choices))
	}
	if choices[0].Label != "Дюна; Фантастика, Драма; 2021" {
		t.Errorf("unexpected label: %q", choices[0].Label)
	}
	// Genre and year are simply omitted when absent.
	if choices[1].Label != "Дюна; " {
		t.Errorf("unexpected bare label: %q", choices[1].Label)
	}
}

func TestSelectionChoicesCap(t *testing.T) {
	matches := make([]domain.Film, 0, 12)
	for i := 0; i < 12; i++ {
		matches = append(matches, film("Дюна", "2021", "8.1"))
	}
	if got := len(SelectionChoices(matches, 10)); got != 10 {
		t.Fatalf("expected cap of 10 choices, got %d", got)
	}
}

func TestQuickReplyNamesDedup(t *testing.T) {
	films := []domain.Film{
		film("Дюна", "2021", "8.1"),
		film("дюна ", "1984", "7.5"),
		film("Дюна 2000", "2000", "6.1"),
		film("Дюна", "1984", "7.5"),
	}
	names := QuickReplyNames(films)
	if len(names) != 2 {
		t.Fatalf("expected 2 unique names, got %d: %v", len(names), names)
	}
	// First occurrence wins, order preserved.
	if names[0] != "Дюна" || names[1] != "Дюна 2000" {
		t.Errorf("unexpected names: %v", names)
	}
}
