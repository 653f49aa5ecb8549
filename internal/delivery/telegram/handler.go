package telegram

import (
	"context"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/vovaf709/cinema-bot/internal/domain"
	"github.com/vovaf709/cinema-bot/internal/usecase"
	"github.com/vovaf709/cinema-bot/pkg/prometheus"
)

const (
	delimiter        = "_"
	chatIDKey        = "chat_id"
	correlationIDKey = "correlation_id"
	queryKey         = "query"
	errorKey         = "error"
	successKey       = "success"
)

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery.Message.Chat.ID,
			update.CallbackQuery.Data, update.CallbackQuery.ID)

	case update.Message == nil:
		return

	case update.Message.IsCommand():
		b.handleCommand(ctx, update.Message.Chat.ID, update.Message.Command(),
			update.Message.Text)

	default:
		b.handleQuery(ctx, update.Message.Chat.ID, strings.TrimSpace(update.Message.Text))
	}
}

func (b *Bot) handleCommand(ctx context.Context, chatID int64, command string, raw string) {
	startTime := time.Now()
	defer func() {
		prometheus.CommandDuration.WithLabelValues(command).Observe(time.Since(startTime).Seconds())
	}()

	status := successKey
	defer func() {
		prometheus.CommandCounter.WithLabelValues(command, status).Inc()
	}()

	state := b.sessions.GetStateByID(chatID)
	b.log.Info("command received",
		chatIDKey, chatID,
		"command", command,
		correlationIDKey, state.CorrelationID,
	)

	switch command {
	case "start", "help":
		b.SendMessage(chatID, msgGreeting)
	case "wrong":
		b.handleFeedback(chatID, state)
	default:
		// Unrecognized commands are treated as a title query, the
		// catalog will sort it out.
		status = errorKey
		b.handleQuery(ctx, chatID, strings.TrimSpace(raw))
	}
}

func (b *Bot) handleFeedback(chatID int64, state *domain.SessionState) {
	switch b.trailers.HandleFeedback(state) {
	case usecase.FeedbackThanks:
		b.SendMessage(chatID, msgThanks)
	case usecase.FeedbackIrritated:
		b.SendMessage(chatID, msgPlsStop)
	default:
		b.SendMessage(chatID, msgWhat)
	}
}

func (b *Bot) handleQuery(ctx context.Context, chatID int64, query string) {
	startTime := time.Now()
	defer func() {
		prometheus.CommandDuration.WithLabelValues("search").Observe(time.Since(startTime).Seconds())
	}()
	status := successKey
	defer func() {
		prometheus.CommandCounter.WithLabelValues("search", status).Inc()
	}()

	// Navigating away resolves any pending feedback and open prompt.
	state := b.sessions.GetStateByID(chatID)
	state.PendingTrailerKey = ""
	state.FeedbackStreak = 0
	state.ClearPrompt()

	if query == msgNoResultHere {
		// The trailing quick-reply button echoes its label back.
		b.SendMessage(chatID, msgNoResultRespond)
		return
	}

	b.log.Info("search received",
		chatIDKey, chatID,
		queryKey, query,
		correlationIDKey, state.CorrelationID,
	)

	classification, err := b.films.Search(ctx, query)
	if err != nil {
		status = errorKey
		b.log.Error("search failed",
			chatIDKey, chatID,
			queryKey, query,
			correlationIDKey, state.CorrelationID,
			errorKey, err,
		)
		b.SendMessage(chatID, msgNotFound)
		return
	}

	switch classification.Kind {
	case domain.Unique:
		b.showFilm(ctx, chatID, state, classification.Film)
	case domain.AmbiguousSameName:
		b.sendSelectionPrompt(chatID, state, classification.Matches)
	case domain.NeedsSelection:
		b.sendQuickReply(chatID, classification.Results)
	default:
		b.SendMessage(chatID, msgNotFound)
	}
}

// showFilm presents one resolved film: caption with optional poster, then
// the trailer line. The view-link chain runs concurrently with the trailer
// search; the chat enters the awaiting-feedback state only after the
// trailer call has completed and the trailer was actually offered.
func (b *Bot) showFilm(ctx context.Context, chatID int64, state *domain.SessionState, film domain.Film) {
	viewURLCh := make(chan string, 1)
	go func() {
		viewURLCh <- b.films.ViewURL(ctx, film)
	}()

	trailerURL, trailerKey := b.trailers.Resolve(ctx, film)
	viewURL := <-viewURLCh

	content := usecase.Render(film, viewURL, trailerURL, b.cfg.CaptionLimit)
	b.sendFilmCard(ctx, chatID, film, content)

	if trailerURL != "" {
		b.SendMessage(chatID, msgTrailerPrefix+trailerURL)
		state.PendingTrailerKey = trailerKey
	}
}

func (b *Bot) sendFilmCard(ctx context.Context, chatID int64, film domain.Film, content usecase.DisplayContent) {
	payload := b.films.Poster(ctx, film)
	if payload == nil || usecase.BrokenPoster(payload) {
		b.SendMessage(chatID, content.Caption)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(content.PosterURL))
	photo.Caption = content.Caption
	if _, err := b.Send(photo); err != nil {
		b.log.Error("failed to send photo", chatIDKey, chatID, errorKey, err)
		b.SendMessage(chatID, content.Caption)
		return
	}
	prometheus.MessagesSent.WithLabelValues("image").Inc()
}

// sendSelectionPrompt offers one inline button per same-name film. The
// candidate set is scoped to this prompt via a fresh prompt id baked into
// the callback data, so stale or cross-chat callbacks cannot select.
func (b *Bot) sendSelectionPrompt(chatID int64, state *domain.SessionState, matches []domain.Film) {
	choices := usecase.SelectionChoices(matches, b.cfg.MaxChoices)

	state.PromptID = uuid.New().String()
	state.Candidates = make([]domain.Film, 0, len(choices))

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(choices)+1)
	for i, choice := range choices {
		state.Candidates = append(state.Candidates, choice.Film)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(choice.Label, buildCallbackData(state.PromptID, i)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(msgNoResultHere, state.PromptID),
	))

	msg := tgbotapi.NewMessage(chatID, msgSameName)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.Send(msg); err != nil {
		b.log.Error("failed to send selection prompt", chatIDKey, chatID, errorKey, err)
		return
	}
	prometheus.MessagesSent.WithLabelValues("prompt").Inc()
}

// sendQuickReply offers the distinct names found for a query that matched
// nothing verbatim. Buttons echo their label as plain text.
func (b *Bot) sendQuickReply(chatID int64, results []domain.Film) {
	names := usecase.QuickReplyNames(results)

	rows := make([][]tgbotapi.KeyboardButton, 0, len(names)+1)
	for _, name := range names {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(name)))
	}
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(msgNoResultHere)))

	markup := tgbotapi.NewReplyKeyboard(rows...)
	markup.OneTimeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, msgWhich)
	msg.ReplyMarkup = markup
	if _, err := b.Send(msg); err != nil {
		b.log.Error("failed to send quick reply", chatIDKey, chatID, errorKey, err)
		return
	}
	prometheus.MessagesSent.WithLabelValues("prompt").Inc()
}

func (b *Bot) handleCallback(ctx context.Context, chatID int64, data string, callbackID string) {
	if err := b.AnswerCallbackQuery(callbackID, ""); err != nil {
		b.log.Debug("failed to answer callback", chatIDKey, chatID, errorKey, err)
	}

	state := b.sessions.GetStateByID(chatID)

	promptID, index, ok := parseCallbackData(data)
	if !ok {
		// The trailing "none of these" button carries the bare prompt id.
		state.ClearPrompt()
		b.SendMessage(chatID, msgNoResultRespond)
		return
	}

	if promptID != state.PromptID || index < 0 || index >= len(state.Candidates) {
		b.log.Info("stale selection callback",
			chatIDKey, chatID,
			"prompt_id", promptID,
			correlationIDKey, state.CorrelationID,
		)
		b.SendMessage(chatID, msgNoResultRespond)
		return
	}

	film := state.Candidates[index]
	state.ClearPrompt()
	b.showFilm(ctx, chatID, state, film)
}

func buildCallbackData(promptID string, index int) string {
	return promptID + delimiter + strconv.Itoa(index)
}

func parseCallbackData(data string) (string, int, bool) {
	promptID, indexStr, found := strings.Cut(data, delimiter)
	if !found {
		return data, 0, false
	}
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return promptID, 0, false
	}
	return promptID, index, true
}
