package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Ladder is the fixed 31-tier seniority progression, lowest first.
// "Legend" is itself sub-levelled by experience past the last fixed tier.
var Ladder = []string{
	"Recruit",
	"Private",
	"Gefreiter",
	"Corporal",
	"Master Corporal",
	"Sergeant",
	"Staff Sergeant",
	"Master Sergeant",
	"First Sergeant",
	"Sergeant Major",
	"Warrant Officer 1",
	"Warrant Officer 2",
	"Warrant Officer 3",
	"Warrant Officer 4",
	"Warrant Officer 5",
	"Third Lieutenant",
	"Second Lieutenant",
	"First Lieutenant",
	"Captain",
	"Major",
	"Lieutenant Colonel",
	"Colonel",
	"Brigadier",
	"Major General",
	"Lieutenant General",
	"General",
	"Marshal",
	"Field Marshal",
	"Commander",
	"Generalissimo",
	"Legend",
}

// LowestRank is the default when neither a rank token nor a positive
// experience value is available.
const LowestRank = "Recruit"

// RankAliases maps the site's Russian rank labels to canonical names.
// New languages are additive entries here, never branching in the parser.
var RankAliases = map[string]string{
	"Новобранец":        "Recruit",
	"Рядовой":           "Private",
	"Ефрейтор":          "Gefreiter",
	"Капрал":            "Corporal",
	"Мастер-капрал":     "Master Corporal",
	"Сержант":           "Sergeant",
	"Штаб-сержант":      "Staff Sergeant",
	"Мастер-сержант":    "Master Sergeant",
	"Первый сержант":    "First Sergeant",
	"Старшина":          "Sergeant Major",
	"Уорэнт-офицер 1":   "Warrant Officer 1",
	"Уорэнт-офицер 2":   "Warrant Officer 2",
	"Уорэнт-офицер 3":   "Warrant Officer 3",
	"Уорэнт-офицер 4":   "Warrant Officer 4",
	"Уорэнт-офицер 5":   "Warrant Officer 5",
	"Младший лейтенант": "Third Lieutenant",
	"Лейтенант":         "Second Lieutenant",
	"Старший лейтенант": "First Lieutenant",
	"Капитан":           "Captain",
	"Майор":             "Major",
	"Подполковник":      "Lieutenant Colonel",
	"Полковник":         "Colonel",
	"Бригадир":          "Brigadier",
	"Генерал-майор":     "Major General",
	"Генерал-лейтенант": "Lieutenant General",
	"Генерал":           "General",
	"Маршал":            "Marshal",
	"Фельдмаршал":       "Field Marshal",
	"Командир":          "Commander",
	"Генералиссимус":    "Generalissimo",
	"Легенда":           "Legend",
}

// AliasFor returns the Russian spelling of a canonical rank name. Rank
// token scanning needs both spellings per tier.
func AliasFor(canonical string) (string, bool) {
	for alias, name := range RankAliases {
		if name == canonical {
			return alias, true
		}
	}
	return "", false
}

type experienceThreshold struct {
	min  int
	rank string
}

// Inclusive lower bounds of every fixed tier, checked top-down.
// Legend is handled separately: its level grows without bound.
var experienceThresholds = []experienceThreshold{
	{1600000, "Generalissimo"},
	{1400000, "Commander"},
	{1255000, "Field Marshal"},
	{1122000, "Marshal"},
	{1000000, "General"},
	{889000, "Lieutenant General"},
	{787000, "Major General"},
	{695000, "Brigadier"},
	{606000, "Colonel"},
	{527000, "Lieutenant Colonel"},
	{455000, "Major"},
	{390000, "Captain"},
	{332000, "First Lieutenant"},
	{280000, "Second Lieutenant"},
	{233000, "Third Lieutenant"},
	{192000, "Warrant Officer 5"},
	{156000, "Warrant Officer 4"},
	{125000, "Warrant Officer 3"},
	{98000, "Warrant Officer 2"},
	{76000, "Warrant Officer 1"},
	{57000, "Sergeant Major"},
	{41000, "First Sergeant"},
	{29000, "Master Sergeant"},
	{20000, "Staff Sergeant"},
	{12300, "Sergeant"},
	{7700, "Master Corporal"},
	{4400, "Corporal"},
	{2200, "Gefreiter"},
	{1000, "Private"},
}

const legendExperienceFloor = 1800000

// RankFromExperience derives a rank label from an experience value when
// no rank token was found on the page.
func RankFromExperience(experience int) string {
	if experience >= legendExperienceFloor {
		level := (experience - 1600000) / 200000
		if level < 1 {
			level = 1
		}
		return fmt.Sprintf("Legend %d", level)
	}

	for _, t := range experienceThresholds {
		if experience >= t.min {
			return t.rank
		}
	}

	return LowestRank
}

// SymbolIndex maps a rank label to its symbolic index, 1 for Recruit
// through 31 for Legend. Every "Legend N" level shares index 31, as
// does any label the ladder does not know.
func SymbolIndex(rank string) int {
	if strings.HasPrefix(rank, "Legend") {
		return len(Ladder)
	}

	for i, name := range Ladder {
		if strings.EqualFold(name, rank) {
			return i + 1
		}
	}

	return len(Ladder)
}

// LegendLabel renders the synthesized top-tier label for a level parsed
// from the page, e.g. "Legend 3".
func LegendLabel(level string) string {
	if _, err := strconv.Atoi(level); err != nil {
		return "Legend"
	}
	return "Legend " + level
}
