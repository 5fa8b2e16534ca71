package handler

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/rs/xid"
	"github.com/shirou/gopsutil/v4/process"

	"rtanksbot/internal/domain"
	"rtanksbot/internal/transport/bot/view"
	"rtanksbot/pkg/contextx"
	"rtanksbot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnPlayer(ctx *th.Context, msg telego.Message) error {
	h.tracker.RecordCommand()

	parts := strings.Fields(msg.Text)
	if len(parts) < 2 {
		return h.sendHTML(ctx, msg.Chat.ID, view.PlayerUsage)
	}

	username := strings.TrimSpace(parts[1])

	record, err := h.svc.Lookup(withTrace(ctx), username)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return h.sendHTML(ctx, msg.Chat.ID, view.NotFound(username))
		}

		logger(ctx).Error("player command failed", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, view.LookupFailed)
	}

	profileURL := h.links.ProfileURL(record.Username)

	_, err = ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: msg.Chat.ID},
		Text:      view.Player(record, profileURL),
		ParseMode: telego.ModeHTML,
		ReplyMarkup: tu.InlineKeyboard(
			tu.InlineKeyboardRow(
				tu.InlineKeyboardButton("🔗 Open profile").WithURL(profileURL),
			),
		),
	})
	return err
}

func (h *Handler) OnBotStats(ctx *th.Context, msg telego.Message) error {
	h.tracker.RecordCommand()

	snap := h.tracker.Snapshot()
	uptime := int64(time.Since(snap.StartedAt).Seconds())

	memoryMB, cpuPercent := processUsage()

	text := view.BotStats(snap, uptime, memoryMB, cpuPercent, h.watcher.Status())

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

// processUsage reads the bot's own memory and CPU consumption.
// Failures degrade to zeros rather than breaking the stats card.
func processUsage() (memoryMB, cpuPercent float64) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, 0
	}

	if mem, err := proc.MemoryInfo(); err == nil {
		memoryMB = float64(mem.RSS) / 1024 / 1024
	}

	if cpu, err := proc.CPUPercent(); err == nil {
		cpuPercent = cpu
	}

	return memoryMB, cpuPercent
}

// withTrace stamps a fresh trace id on the context and enriches the
// carried logger with it. Every log line of a lookup, down to the HTTP
// round trips, shares the id.
func withTrace(ctx context.Context) context.Context {
	traceID := contextx.TraceID(xid.New().String())

	log := logger(ctx).With(logx.Stringer(logx.FieldTraceID, traceID))

	return contextx.WithLogger(contextx.WithTraceID(ctx, traceID), log)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	return err
}
