package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"rtanksbot/internal/config"
	"rtanksbot/internal/domain/service/player"
	"rtanksbot/internal/infrastructure/ratings"
	"rtanksbot/internal/stats"
	"rtanksbot/internal/transport/bot"
	"rtanksbot/internal/worker"
	"rtanksbot/pkg/metrics"
	"rtanksbot/pkg/probe"
)

const appName = "rtanksbot"

// Overridden via -ldflags on release builds.
var buildVersion = "dev" //nolint:gochecknoglobals

func version() string { return buildVersion }

// Run wires the application and blocks until ctx is cancelled or a
// component fails.
func Run(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	client := ratings.NewClient(cfg.Ratings.BaseURL, cfg.Ratings.HTTPTimeout)
	log.Info("ratings client ready", slog.String("base-url", cfg.Ratings.BaseURL))

	tracker := stats.NewTracker(prometheus.DefaultRegisterer)

	svc := player.NewService(client, tracker, cfg.Ratings.CacheTTL)

	watcher := worker.NewSiteWatcher(client, cfg.Ratings.SiteCheckInterval)
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("watcher.Start: %w", err)
	}
	defer watcher.Stop()

	tgBot, err := bot.New(ctx, cfg, svc, tracker, watcher, client)
	if err != nil {
		return fmt.Errorf("bot.New: %w", err)
	}

	probeServer := probe.NewServer(cfg.Server.ProbeAddress, probe.Options{
		Name:    appName,
		Version: version(),
	})
	metricsServer := metrics.NewPrometheusServer(cfg.Server.MetricsAddress)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return probeServer.Run(ctx) })
	g.Go(func() error { return metricsServer.Run(ctx) })
	g.Go(func() error { return tgBot.Run(ctx) })

	log.Info("application started")

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	log.Info("application stopping...")

	return nil
}
