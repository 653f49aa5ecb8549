package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovaf709/cinema-bot/configs"
	"github.com/vovaf709/cinema-bot/configs/loader/dotEnvLoader"
	"github.com/vovaf709/cinema-bot/internal/delivery/telegram"
	"github.com/vovaf709/cinema-bot/internal/repository/cachedRepo"
	"github.com/vovaf709/cinema-bot/internal/repository/kinopoisk"
	"github.com/vovaf709/cinema-bot/internal/repository/redisCache"
	"github.com/vovaf709/cinema-bot/internal/repository/sessionState"
	"github.com/vovaf709/cinema-bot/internal/repository/tmdb"
	"github.com/vovaf709/cinema-bot/internal/repository/trailerOffsets"
	"github.com/vovaf709/cinema-bot/internal/repository/youtube"
	"github.com/vovaf709/cinema-bot/internal/usecase"
	"github.com/vovaf709/cinema-bot/pkg/logger"
	"github.com/vovaf709/cinema-bot/pkg/prometheus"
)

func main() {

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	loader := dotEnvLoader.DotEnvLoader{}
	cfg := configs.MustLoad(loader)
	log := logger.NewLogger(cfg)

	var catalog usecase.CatalogProvider = kinopoisk.NewRepo(cfg)
	if cfg.RD.Host != "" {
		catalog = cachedRepo.NewCachedRepo(catalog, redisCache.NewCache(cfg), log)
		log.Info("imdb id cache enabled", "host", cfg.RD.Host)
	}

	providers := tmdb.NewRepo(cfg)
	videos := youtube.NewRepo(cfg)

	sessions := sessionState.NewSessionStates()
	offsets := trailerOffsets.NewOffsets(cfg.Bot.MaxTrailers)

	films := usecase.NewFilms(catalog, providers, log)
	trailers := usecase.NewTrailers(videos, offsets, cfg.Bot.FeedbackThreshold, log)

	prometheus.Init()
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":8080", nil)
	log.Info("Starting prometheus at port 8080")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bot, err := telegram.NewBot(ctx, cfg, sessions, films, trailers, log)
	if err != nil {
		log.Error("failed to create bot:", "error", err)
		os.Exit(1)
	}
	log.Info("Starting bot")
	go bot.Run()
	<-done
	log.Info("Shutting down bot")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	bot.Stop(stopCtx)
	log.Info("Service stopped")
}
