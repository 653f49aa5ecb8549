package configs

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/vovaf709/cinema-bot/configs/loader"
)

type KinopoiskConfig struct {
	Token   string `validate:"required"`
	Path    string `validate:"required"`
	Timeout time.Duration
}

type TMDBConfig struct {
	Token   string `validate:"required"`
	Path    string `validate:"required"`
	Timeout time.Duration
}

type YoutubeConfig struct {
	Token   string `validate:"required"`
	Path    string `validate:"required"`
	Timeout time.Duration
}

type TelegramConfig struct {
	Token             string `validate:"required"`
	ConnectionTimeout time.Duration
}

type RedisConfig struct {
	Host         string
	DB           int
	User         string
	Password     string
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// BotConfig holds the knobs of the disambiguation and feedback flow.
type BotConfig struct {
	MaxChoices        int
	MaxTrailers       int
	FeedbackThreshold int
	CaptionLimit      int
}

type Config struct {
	KP   KinopoiskConfig
	TMDB TMDBConfig
	YT   YoutubeConfig
	TG   TelegramConfig
	RD   RedisConfig
	Bot  BotConfig
	Env  string
}

func MustLoad(loader loader.ConfigLoader) *Config {
	env := flag.String("env", "dev", "Environment type")
	flag.Parse()

	const op = "configs.MustLoad"
	envs, err := loader.Load()
	if err != nil {
		log.Fatalf("%s: config load failed: %+v", op, err)
	}

	cfg := FromEnvs(envs)
	cfg.Env = *env

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("%s: config validation failed: %+v", op, err)
	}

	return cfg
}

// FromEnvs builds a config from a flat env map, defaulting everything that
// is safe to default.
func FromEnvs(envs map[string]string) *Config {
	return &Config{
		KP: KinopoiskConfig{
			Token:   envs["KINOPOISK_TOKEN"],
			Path:    getEnvAsString(envs["KINOPOISK_PATH"], "https://kinopoiskapiunofficial.tech/api/v2.1/films/"),
			Timeout: getEnvAsDuration(envs["UPSTREAM_TIMEOUT"], 10*time.Second),
		},
		TMDB: TMDBConfig{
			Token:   envs["TMDB_TOKEN"],
			Path:    getEnvAsString(envs["TMDB_PATH"], "https://api.themoviedb.org/3/movie/"),
			Timeout: getEnvAsDuration(envs["UPSTREAM_TIMEOUT"], 10*time.Second),
		},
		YT: YoutubeConfig{
			Token:   envs["YOUTUBE_TOKEN"],
			Path:    getEnvAsString(envs["YOUTUBE_PATH"], "https://www.googleapis.com/youtube/v3/search"),
			Timeout: getEnvAsDuration(envs["UPSTREAM_TIMEOUT"], 10*time.Second),
		},
		TG: TelegramConfig{
			Token:             envs["TELEGRAM_TOKEN"],
			ConnectionTimeout: getEnvAsDuration(envs["TELEGRAM_CONNECTION_TIMEOUT"], 5*time.Second),
		},
		RD: RedisConfig{
			Host:         envs["REDIS_HOST"],
			DB:           getEnvAsInt(envs["REDIS_DB"], 0),
			User:         envs["REDIS_USER"],
			Password:     envs["REDIS_PASSWORD"],
			MaxRetries:   getEnvAsInt(envs["REDIS_MAX_RETRIES"], 3),
			DialTimeout:  getEnvAsDuration(envs["REDIS_DIAL_TIMEOUT"], 5*time.Second),
			ReadTimeout:  getEnvAsDuration(envs["REDIS_READ_TIMEOUT"], 5*time.Second),
			WriteTimeout: getEnvAsDuration(envs["REDIS_WRITE_TIMEOUT"], 5*time.Second),
		},
		Bot: BotConfig{
			MaxChoices:        getEnvAsInt(envs["MAX_CHOICES"], 10),
			MaxTrailers:       getEnvAsInt(envs["MAX_TRAILERS"], 10),
			FeedbackThreshold: getEnvAsInt(envs["FEEDBACK_THRESHOLD"], 3),
			CaptionLimit:      getEnvAsInt(envs["CAPTION_LIMIT"], 1000),
		},
	}
}

func validateConfig(cfg *Config) error {
	if cfg.KP.Token == "" || cfg.TG.Token == "" || cfg.TMDB.Token == "" || cfg.YT.Token == "" {
		return fmt.Errorf("missing required configuration")
	}
	return nil
}

func getEnvAsString(strValue string, defaultValue string) string {
	if strValue == "" {
		return defaultValue
	}
	return strValue
}

func getEnvAsDuration(strValue string, defaultValue time.Duration) time.Duration {
	const op = "configs.getEnvAsDuration"
	if strValue == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(strValue)
	if err != nil {
		log.Printf("%s: invalid value %s, using default: %v", op, strValue, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsInt(strValue string, defaultValue int) int {
	const op = "configs.getEnvAsInt"
	if strValue == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("%s: invalid value %s, using default: %v", op, strValue, defaultValue)
		return defaultValue
	}
	return value
}
