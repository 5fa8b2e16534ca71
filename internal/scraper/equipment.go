package scraper

import (
	"regexp"

	"github.com/samber/lo"

	"rtanksbot/internal/domain/entity"
)

// The garage roster, in garage order. Equipment extraction scans the
// document for every name on these lists.
var (
	turretNames = []string{
		"Smoky",
		"Firebird",
		"Twins",
		"Railgun",
		"Isida",
		"Thunder",
		"Freeze",
		"Ricochet",
		"Shaft",
		"Hammer",
		"Vulcan",
		"Magnum",
		"Striker",
	}

	hullNames = []string{
		"Wasp",
		"Hornet",
		"Viking",
		"Hunter",
		"Titan",
		"Dictator",
		"Mammoth",
	}
)

type equipmentPatterns struct {
	name string
	// Tried in order: "Name M3", "Name 3", bare "Name". The first form
	// with any hit stops the scan for this name.
	res []*regexp.Regexp
}

var (
	turretPatterns = buildEquipmentPatterns(turretNames)
	hullPatterns   = buildEquipmentPatterns(hullNames)
)

func buildEquipmentPatterns(names []string) []equipmentPatterns {
	patterns := make([]equipmentPatterns, 0, len(names))

	for _, name := range names {
		quoted := regexp.QuoteMeta(name)
		patterns = append(patterns, equipmentPatterns{
			name: name,
			res: []*regexp.Regexp{
				regexp.MustCompile(`(?i)` + quoted + `[^a-zA-Z0-9]*M(\d+)`),
				regexp.MustCompile(`(?i)` + quoted + `[^a-zA-Z0-9]*(\d+)`),
				regexp.MustCompile(`(?i)` + quoted),
			},
		})
	}

	return patterns
}

func matchEquipment(d *document) entity.Equipment {
	return entity.Equipment{
		Turrets: scanEquipment(d, turretPatterns),
		Hulls:   scanEquipment(d, hullPatterns),
	}
}

func scanEquipment(d *document, patterns []equipmentPatterns) []string {
	var found []string

	for _, p := range patterns {
		for _, re := range p.res {
			matches := re.FindAllStringSubmatch(d.raw, -1)
			if matches == nil {
				continue
			}

			for _, m := range matches {
				if len(m) > 1 && m[1] != "" {
					found = append(found, p.name+" M"+m[1])
				} else {
					found = append(found, p.name)
				}
			}
			break
		}
	}

	return lo.Uniq(found)
}
