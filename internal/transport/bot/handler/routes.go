package handler

import (
	th "github.com/mymmrac/telego/telegohandler"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler) {
	bh.HandleMessage(h.OnStart, th.CommandEqual("start"))
	bh.HandleMessage(h.OnPlayer, th.CommandEqual("player"))
	bh.HandleMessage(h.OnBotStats, th.CommandEqual("botstats"))
}
