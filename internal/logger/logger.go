package logger

import (
	"os"
	"time"

	"github.com/lshigami/tms/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. It is called before the config is
// loaded, so it reads LOG_LEVEL and LOG_PRETTY straight from the environment.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	apply(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_PRETTY") == "true")
}

// Configure applies the loaded config, which also covers values set in .env.
func Configure(cfg *config.Config) {
	apply(cfg.Log.Level, cfg.Log.Pretty)
}

func apply(rawLevel string, pretty bool) {
	level, err := zerolog.ParseLevel(rawLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
