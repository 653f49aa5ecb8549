package usecase

import (
	"strings"
	"testing"

	"github.com/vovaf709/cinema-bot/internal/domain"
)

func TestRenderFullCaption(t *testing.T) {
	f := domain.Film{
		Name:        "Дюна",
		Rating:      "8.1",
		Length:      "2:35",
		Year:        "2021",
		Description: "Пустынная планета.",
		Genres:      []domain.Genre{{Genre: "фантастика"}},
		Countries:   []domain.Country{{Country: "США"}, {Country: "Канада"}},
		PosterURL:   "https://example.com/poster.jpg",
	}

	content := Render(f, "https://tmdb.example/watch", "https://youtube.example/t", 1000)

	want := "Дюна\n\n" +
		"Рейтинг: 8.1\n" +
		"Жанр: Фантастика\n" +
		"Длительность: 2:35\n" +
		"Год производства: 2021\n" +
		"Страна: США, Канада\n\n" +
		"Краткое описание:\n Пустынная планета.\n\n" +
		"Ссылка для просмотра: https://tmdb.example/watch"
	if content.Caption != want {
		t.Errorf("unexpected caption:\n%q\nwant:\n%q", content.Caption, want)
	}
	if content.Truncated {
		t.Error("short caption must not be marked truncated")
	}
	if content.PosterURL != f.PosterURL {
		t.Errorf("unexpected poster url: %q", content.PosterURL)
	}
}

func TestRenderOmitsAbsentFields(t *testing.T) {
	content := Render(domain.Film{Name: "Дюна"}, "", "", 1000)
	if content.Caption != "Дюна\n\n" {
		t.Errorf("unexpected caption: %q", content.Caption)
	}
}

func TestRenderTruncates(t *testing.T) {
	f := domain.Film{
		Name:        "Дюна",
		Description: strings.Repeat("ж", 2000),
	}
	content := Render(f, "", "", 1000)
	if !content.Truncated {
		t.Fatal("expected truncation")
	}
	runes := []rune(content.Caption)
	if len(runes) != 1003 {
		t.Errorf("expected 1000 runes plus ellipsis, got %d", len(runes))
	}
	if !strings.HasSuffix(content.Caption, "...") {
		t.Error("expected ellipsis marker")
	}
}

func TestBrokenPoster(t *testing.T) {
	if !BrokenPoster([]byte("GIF89a\x00\x01")) {
		t.Error("GIF payload must be treated as broken")
	}
	if BrokenPoster([]byte("\xff\xd8\xff\xe0JFIF")) {
		t.Error("jpeg payload must not be treated as broken")
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"фантастика": "Фантастика",
		"SCI-FI":     "Sci-fi",
		"":           "",
	}
	for input, want := range tests {
		if got := capitalize(input); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", input, got, want)
		}
	}
}
