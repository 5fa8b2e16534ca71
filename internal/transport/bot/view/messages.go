// Package view renders bot replies. Templates use Telegram HTML parse
// mode.
package view

import (
	"fmt"
	"strings"

	"rtanksbot/internal/domain/entity"
	"rtanksbot/internal/format"
	"rtanksbot/internal/stats"
	"rtanksbot/internal/worker"
)

const StartMessage = `🎮 <b>RTanks stats bot</b>

/player <code>username</code> — player statistics from the ratings site
/botstats — bot performance statistics`

const PlayerUsage = `Usage: /player <code>username</code>`

func NotFound(username string) string {
	return fmt.Sprintf(
		"❌ <b>Player not found</b>\n\nCould not find player data for <code>%s</code>. Please check the username and try again.",
		username,
	)
}

const LookupFailed = "⚠️ <b>Error</b>\n\nAn error occurred while fetching player data. The ratings website might be temporarily unavailable."

// rankEmoji groups the 31 symbol indices into presentation bands.
func rankEmoji(rank string) string {
	index := entity.SymbolIndex(rank)

	switch {
	case index >= 31:
		return "🏆"
	case index >= 26: // General and above
		return "⭐"
	case index >= 16: // officer tiers
		return "🏅"
	default:
		return "🎖"
	}
}

// Player renders the full profile card.
func Player(record *entity.PlayerRecord, profileURL string) string {
	var sb strings.Builder

	activity := "🔴 Offline"
	if record.IsOnline {
		activity = "🟢 Online"
	}

	fmt.Fprintf(&sb, "<b>%s</b>\n%s\n\n", record.Username, activity)
	fmt.Fprintf(&sb, "%s <b>Rank:</b> %s\n", rankEmoji(record.Rank), record.Rank)

	if record.MaxExperience > 0 {
		fmt.Fprintf(&sb, "✨ <b>Experience:</b> %s/%s\n",
			format.ExactNumber(record.Experience), format.ExactNumber(record.MaxExperience))
	} else {
		fmt.Fprintf(&sb, "✨ <b>Experience:</b> %s\n", format.ExactNumber(record.Experience))
	}

	premium := "No"
	if record.Premium {
		premium = "Yes"
	}
	fmt.Fprintf(&sb, "💎 <b>Premium:</b> %s\n\n", premium)

	fmt.Fprintf(&sb, "⚔️ <b>Combat Stats</b>\n")
	fmt.Fprintf(&sb, "Kills: %s\n", format.ExactNumber(record.Kills))
	fmt.Fprintf(&sb, "Deaths: %s\n", format.ExactNumber(record.Deaths))
	fmt.Fprintf(&sb, "K/D: %s\n\n", record.KDRatio)

	fmt.Fprintf(&sb, "📦 <b>Gold Boxes:</b> %d\n", record.GoldBoxes)
	fmt.Fprintf(&sb, "👥 <b>Group:</b> %s\n", record.Group)

	if len(record.Equipment.Turrets) > 0 || len(record.Equipment.Hulls) > 0 {
		sb.WriteString("\n🔧 <b>Equipment</b>\n")
		if len(record.Equipment.Turrets) > 0 {
			fmt.Fprintf(&sb, "Turrets: %s\n", strings.Join(record.Equipment.Turrets, ", "))
		}
		if len(record.Equipment.Hulls) > 0 {
			fmt.Fprintf(&sb, "Hulls: %s\n", strings.Join(record.Equipment.Hulls, ", "))
		}
	}

	fmt.Fprintf(&sb, "\n🔗 <a href=\"%s\">Profile</a>", profileURL)

	return sb.String()
}

// BotStats renders the /botstats card.
func BotStats(
	snap stats.Snapshot,
	uptimeSeconds int64,
	memoryMB float64,
	cpuPercent float64,
	site worker.SiteStatus,
) string {
	var sb strings.Builder

	sb.WriteString("🤖 <b>Bot Statistics</b>\n\n")

	fmt.Fprintf(&sb, "⏱ <b>Uptime:</b> %s\n", format.Duration(uptimeSeconds))
	fmt.Fprintf(&sb, "📊 <b>Commands:</b> %s\n", format.CompactNumber(int(snap.Commands)))
	fmt.Fprintf(&sb, "✅ <b>Success rate:</b> %.1f%%\n\n", snap.SuccessRate())

	fmt.Fprintf(&sb, "🔍 <b>Lookups</b>\n")
	fmt.Fprintf(&sb, "Successful: %s\n", format.CompactNumber(int(snap.Successes)))
	fmt.Fprintf(&sb, "Failed: %s\n", format.CompactNumber(int(snap.Failures)))
	fmt.Fprintf(&sb, "Avg latency: %dms\n\n", snap.AvgLookupTime().Milliseconds())

	fmt.Fprintf(&sb, "💻 <b>Resources</b>\n")
	fmt.Fprintf(&sb, "Memory: %.2f MB\n", memoryMB)
	fmt.Fprintf(&sb, "CPU: %.1f%%\n\n", cpuPercent)

	fmt.Fprintf(&sb, "🌍 <b>Website:</b> %s", siteStatusLine(site))

	return sb.String()
}

func siteStatusLine(site worker.SiteStatus) string {
	switch site.State {
	case worker.SiteOnline:
		return fmt.Sprintf("🟢 Online (%dms)", site.Latency.Milliseconds())
	case worker.SitePartial:
		return fmt.Sprintf("🟡 Partial (%d)", site.StatusCode)
	default:
		return "🔴 Offline"
	}
}
