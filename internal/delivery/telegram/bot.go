package telegram

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vovaf709/cinema-bot/configs"
	"github.com/vovaf709/cinema-bot/pkg/prometheus"
)

const queueSize = 16

// Bot routes inbound updates to the handlers. Updates of one chat are
// serialized through that chat's queue; different chats run in parallel.
// That serialization is what makes SessionState fields safe to touch
// without locks.
type Bot struct {
	*tgbotapi.BotAPI
	films    FilmService
	trailers TrailerService
	sessions StateProvider
	cfg      configs.BotConfig
	log      *slog.Logger

	ctx     context.Context
	mu      sync.Mutex
	queues  map[int64]chan tgbotapi.Update
	stopped bool
	wg      sync.WaitGroup
}

func NewBot(ctx context.Context, config *configs.Config, sessions StateProvider,
	films FilmService, trailers TrailerService, log *slog.Logger) (*Bot, error) {

	api, err := tgbotapi.NewBotAPI(config.TG.Token)
	if err != nil {
		return nil, err
	}
	api.Client = &http.Client{
		Timeout: config.TG.ConnectionTimeout,
	}

	return &Bot{
		BotAPI:   api,
		films:    films,
		trailers: trailers,
		sessions: sessions,
		cfg:      config.Bot,
		log:      log,
		ctx:      ctx,
		queues:   make(map[int64]chan tgbotapi.Update),
	}, nil
}

func (b *Bot) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.GetUpdatesChan(u)

	for update := range updates {
		chatID := chatIDOf(update)
		if chatID == 0 {
			continue
		}
		b.dispatch(chatID, update)
	}
}

// Stop drains the update stream and waits for in-flight chat tasks, up to
// the context deadline.
func (b *Bot) Stop(ctx context.Context) {
	b.StopReceivingUpdates()

	b.mu.Lock()
	b.stopped = true
	for _, queue := range b.queues {
		close(queue)
	}
	b.queues = nil
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		b.log.Warn("shutdown deadline reached with tasks still running")
	}
}

func (b *Bot) dispatch(chatID int64, update tgbotapi.Update) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return
	}
	queue, ok := b.queues[chatID]
	if !ok {
		queue = make(chan tgbotapi.Update, queueSize)
		b.queues[chatID] = queue
		b.wg.Add(1)
		go b.worker(queue)
	}

	// Enqueue under the lock so Stop cannot close a queue mid-send. A chat
	// that has queueSize updates in flight loses the newest one.
	select {
	case queue <- update:
	default:
		b.log.Warn("chat queue full, dropping update", "chat_id", chatID)
	}
}

func (b *Bot) worker(updates <-chan tgbotapi.Update) {
	defer b.wg.Done()
	for update := range updates {
		b.safeHandle(b.ctx, update)
	}
}

// safeHandle isolates one chat's task: a panic there is logged and must
// not take down the other chats.
func (b *Bot) safeHandle(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("handler panicked",
				"chat_id", chatIDOf(update),
				"panic", r,
			)
		}
	}()

	b.handleUpdate(ctx, update)
	prometheus.ActiveSessions.Set(float64(len(b.sessions.ActiveChats())))
}

func chatIDOf(update tgbotapi.Update) int64 {
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.Chat.ID
	case update.Message != nil:
		return update.Message.Chat.ID
	default:
		return 0
	}
}

func (b *Bot) SendMessage(chatID int64, text string) error {
	if len(text) > 4000 {
		text = text[:4000] + "..."
	}
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.Send(msg)
	if err != nil {
		b.log.Error("failed to send message", "chat_id", chatID, "error", err)
		return err
	}
	prometheus.MessagesSent.WithLabelValues("text").Inc()
	return nil
}

func (b *Bot) AnswerCallbackQuery(callbackID string, text string) error {
	cfg := tgbotapi.NewCallback(callbackID, text)
	_, err := b.Request(cfg)
	return err
}
