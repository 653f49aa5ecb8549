package usecase

import (
	"context"
	"log/slog"

	"github.com/vovaf709/cinema-bot/internal/domain"
	"github.com/vovaf709/cinema-bot/internal/repository/trailerOffsets"
	"github.com/vovaf709/cinema-bot/pkg/prometheus"
)

// FeedbackReply selects the wording of the /wrong response.
type FeedbackReply int

const (
	// FeedbackThanks - a pending trailer was rejected and recorded.
	FeedbackThanks FeedbackReply = iota
	// FeedbackConfused - nothing was pending.
	FeedbackConfused
	// FeedbackIrritated - nothing was pending, repeatedly.
	FeedbackIrritated
)

// Trailers resolves trailer candidates and turns /wrong feedback into
// offset advances.
type Trailers struct {
	videos    TrailerProvider
	offsets   *trailerOffsets.Offsets
	threshold int
	log       *slog.Logger
}

func NewTrailers(videos TrailerProvider, offsets *trailerOffsets.Offsets, threshold int, log *slog.Logger) *Trailers {
	return &Trailers{
		videos:    videos,
		offsets:   offsets,
		threshold: threshold,
		log:       log,
	}
}

// TrailerKeyFor derives the feedback identity of a film's trailer:
// name plus year plus rating, each appended only when present. Distinct
// films sharing all three collide and share feedback; accepted.
func TrailerKeyFor(film domain.Film) string {
	key := trailerQueryFor(film)
	if film.Rating != "" {
		key += film.Rating
	}
	return key
}

func trailerQueryFor(film domain.Film) string {
	query := film.Name
	if film.Year != "" {
		query += " " + film.Year
	}
	return query
}

// Resolve finds the current trailer candidate for the film. The offset is
// read, never advanced: only an explicit /wrong moves it, so resolution
// stays idempotent. Exhausted keys return nothing without a network call.
// The second return value is the trailer key for the caller to park as
// pending feedback state.
func (uc *Trailers) Resolve(ctx context.Context, film domain.Film) (string, string) {
	key := TrailerKeyFor(film)

	index := uc.offsets.Next(key)
	if index == trailerOffsets.Exhausted {
		return "", key
	}

	trailerURL, err := uc.videos.SearchTrailer(ctx, trailerQueryFor(film)+" трейлер", index)
	if err != nil {
		uc.log.DebugContext(ctx, "trailer unavailable",
			"key", key,
			"index", index,
			"error", err,
		)
		return "", key
	}
	return trailerURL, key
}

// HandleFeedback applies one /wrong to the chat's state. With a pending
// trailer the offset advances and the streak resets; without one the
// streak grows and flips the reply tone at the threshold. The streak only
// resets on a handled rejection or a new query, never here.
func (uc *Trailers) HandleFeedback(state *domain.SessionState) FeedbackReply {
	if state.PendingTrailerKey != "" {
		uc.offsets.Advance(state.PendingTrailerKey)
		prometheus.TrailerRejections.Inc()
		state.PendingTrailerKey = ""
		state.FeedbackStreak = 0
		return FeedbackThanks
	}

	state.FeedbackStreak++
	if state.FeedbackStreak >= uc.threshold {
		return FeedbackIrritated
	}
	return FeedbackConfused
}
