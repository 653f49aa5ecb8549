package telegram

import (
	"context"

	"github.com/vovaf709/cinema-bot/internal/domain"
	"github.com/vovaf709/cinema-bot/internal/usecase"
)

type FilmService interface {
	Search(ctx context.Context, query string) (domain.Classification, error)
	ViewURL(ctx context.Context, film domain.Film) string
	Poster(ctx context.Context, film domain.Film) []byte
}

type TrailerService interface {
	Resolve(ctx context.Context, film domain.Film) (string, string)
	HandleFeedback(state *domain.SessionState) usecase.FeedbackReply
}

type StateProvider interface {
	GetStateByID(chatID int64) *domain.SessionState
	ActiveChats() []int64
}
