package handler

import (
	"rtanksbot/internal/domain/service/player"
	"rtanksbot/internal/stats"
	"rtanksbot/internal/worker"
)

// ProfileLinker supplies the public profile URL for reply cards.
type ProfileLinker interface {
	ProfileURL(username string) string
}

type Handler struct {
	svc     *player.Service
	tracker *stats.Tracker
	watcher *worker.SiteWatcher
	links   ProfileLinker
}

func New(
	svc *player.Service,
	tracker *stats.Tracker,
	watcher *worker.SiteWatcher,
	links ProfileLinker,
) *Handler {
	return &Handler{
		svc:     svc,
		tracker: tracker,
		watcher: watcher,
		links:   links,
	}
}
