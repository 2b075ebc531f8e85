package mylog

import (
	"context"
	"log/slog"
	"os"

	"meditrack/app/config"

	"github.com/phsym/console-slog"
	slogmulti "github.com/samber/slog-multi"
	slogtelegram "github.com/samber/slog-telegram/v2"
)

// Preinit installs a console handler so that config loading failures are
// readable before Init has a chance to run.
func Preinit() {
	slog.SetDefault(slog.New(newConsoleHandler()))
}

func Init(cfg *config.Config) error {
	router := slogmulti.Router()

	router = router.Add(newConsoleHandler())

	if cfg.Log.Telegram.Token != "" {
		router = router.Add(
			slogtelegram.Option{
				Level:     slog.LevelDebug,
				Token:     cfg.Log.Telegram.Token,
				Username:  cfg.Log.Telegram.ChatID,
				AddSource: true,
			}.NewTelegramHandler(),
			wantsTelegram,
		)
	}

	slog.SetDefault(slog.New(router.Handler()))

	return nil
}

func newConsoleHandler() slog.Handler {
	return console.NewHandler(os.Stderr, &console.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
	})
}

// wantsTelegram forwards errors and records explicitly tagged with the
// "telegram" attr, e.g. safety escalations.
func wantsTelegram(_ context.Context, r slog.Record) bool {
	if r.Level == slog.LevelError {
		return true
	}

	tagged := false

	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == "telegram" {
			tagged = true
			return false
		}

		return true
	})

	return tagged
}
