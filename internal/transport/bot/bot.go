package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"rtanksbot/internal/config"
	"rtanksbot/internal/domain/service/player"
	"rtanksbot/internal/stats"
	"rtanksbot/internal/transport/bot/handler"
	"rtanksbot/internal/worker"
	"rtanksbot/pkg/contextx"
	"rtanksbot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const longPollTimeoutSeconds = 60

// Bot is the Telegram transport.
type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler

	handler *handler.Handler
}

func New(
	ctx context.Context,
	cfg config.Config,
	svc *player.Service,
	tracker *stats.Tracker,
	watcher *worker.SiteWatcher,
	links handler.ProfileLinker,
) (*Bot, error) {
	tgBot, err := telego.NewBot(cfg.Bot.Token)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	updates, err := tgBot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollTimeoutSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("tgBot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(tgBot, updates)
	if err != nil {
		return nil, fmt.Errorf("th.NewBotHandler: %w", err)
	}

	commandHandler := handler.New(svc, tracker, watcher, links)
	commandHandler.RegisterRoutes(botHandler)

	return &Bot{
		bot:        tgBot,
		botHandler: botHandler,
		handler:    commandHandler,
	}, nil
}

// Run blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	go func() {
		if err := b.botHandler.Start(); err != nil {
			logger(ctx).Error("bot handler start", logx.Error(err))
		}
	}()

	me, err := b.bot.GetMe(ctx)
	if err == nil {
		logger(ctx).Info("bot connected", slog.String("username", me.Username))
	}

	<-ctx.Done()

	if err := b.botHandler.Stop(); err != nil {
		logger(ctx).Error("bot handler stop", logx.Error(err))
	}

	return ctx.Err()
}
