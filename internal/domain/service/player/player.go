// Package player orchestrates a lookup: fetch candidate pages, run the
// extraction engine, fall back to the ranking pages, record the
// outcome. The caller-facing contract is binary — a complete record or
// domain.ErrPlayerNotFound.
package player

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"rtanksbot/internal/domain"
	"rtanksbot/internal/domain/entity"
	"rtanksbot/internal/scraper"
	"rtanksbot/internal/stats"
	"rtanksbot/pkg/contextx"
	"rtanksbot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Fetcher is the transport collaborator. It owns timeouts, pacing and
// candidate ordering; the service only walks what it offers.
type Fetcher interface {
	ProfileCandidates(username string) []string
	SearchCandidates(username string) []string
	Fetch(ctx context.Context, pageURL string) (string, error)
}

type Service struct {
	fetcher  Fetcher
	recorder stats.Recorder
	cache    *gocache.Cache
}

func NewService(fetcher Fetcher, recorder stats.Recorder, cacheTTL time.Duration) *Service {
	return &Service{
		fetcher:  fetcher,
		recorder: recorder,
		cache:    gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Lookup resolves a username to a PlayerRecord. Transport failures are
// logged and abandoned per candidate; they never surface to the caller
// as anything but not-found.
func (s *Service) Lookup(ctx context.Context, username string) (*entity.PlayerRecord, error) {
	username = strings.TrimSpace(username)
	key := strings.ToLower(username)

	if cached, ok := s.cache.Get(key); ok {
		logger(ctx).Debug("lookup served from cache", slog.String(logx.FieldUsername, username))
		return cached.(*entity.PlayerRecord), nil
	}

	start := time.Now()

	record := s.fromProfilePages(ctx, username)
	if record == nil {
		record = s.fromRankingPages(ctx, username)
	}

	if record == nil {
		s.recorder.RecordLookup(stats.OutcomeNotFound, time.Since(start))

		logger(ctx).Info("lookup finished",
			slog.String(logx.FieldUsername, username),
			slog.String(logx.FieldOutcome, string(stats.OutcomeNotFound)),
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
		)

		return nil, domain.ErrPlayerNotFound
	}

	s.cache.SetDefault(key, record)
	s.recorder.RecordLookup(stats.OutcomeSuccess, time.Since(start))

	logger(ctx).Info("lookup finished",
		slog.String(logx.FieldUsername, username),
		slog.String(logx.FieldOutcome, string(stats.OutcomeSuccess)),
		slog.String(logx.FieldRank, record.Rank),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return record, nil
}

func (s *Service) fromProfilePages(ctx context.Context, username string) *entity.PlayerRecord {
	for _, pageURL := range s.fetcher.ProfileCandidates(username) {
		html, err := s.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			logger(ctx).Warn("profile candidate abandoned",
				slog.String(logx.FieldURL, pageURL), logx.Error(err))
			continue
		}

		record, err := scraper.Extract(html, username)
		if err != nil {
			if !errors.Is(err, domain.ErrPlayerNotFound) {
				logger(ctx).Warn("extraction failed",
					slog.String(logx.FieldURL, pageURL), logx.Error(err))
			}
			continue
		}

		return record
	}

	return nil
}

// fromRankingPages is the degraded path: a case-insensitive sighting
// of the username on a listing page yields an experience-only record.
func (s *Service) fromRankingPages(ctx context.Context, username string) *entity.PlayerRecord {
	needle := strings.ToLower(username)

	for _, pageURL := range s.fetcher.SearchCandidates(username) {
		html, err := s.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			logger(ctx).Warn("search candidate abandoned",
				slog.String(logx.FieldURL, pageURL), logx.Error(err))
			continue
		}

		if !strings.Contains(strings.ToLower(html), needle) {
			continue
		}

		record, err := scraper.ExtractFromRankings(html, username)
		if err != nil {
			continue
		}

		logger(ctx).Info("lookup degraded to rankings data",
			slog.String(logx.FieldUsername, username),
			slog.String(logx.FieldURL, pageURL))

		return record
	}

	return nil
}
