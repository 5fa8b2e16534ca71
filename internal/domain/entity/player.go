package entity

import "fmt"

// Equipment holds the turret and hull names found on a profile page,
// in first-occurrence order, optionally annotated with an Mx tier.
type Equipment struct {
	Turrets []string `json:"turrets"`
	Hulls   []string `json:"hulls"`
}

// PlayerRecord is the parsed profile of a single player. It is built
// only after a page positively classifies as a genuine profile and is
// immutable once returned.
type PlayerRecord struct {
	Username      string    `json:"username"`
	Rank          string    `json:"rank"`
	Experience    int       `json:"experience"`
	MaxExperience int       `json:"max_experience,omitempty"`
	Kills         int       `json:"kills"`
	Deaths        int       `json:"deaths"`
	KDRatio       string    `json:"kd_ratio"`
	GoldBoxes     int       `json:"gold_boxes"`
	Premium       bool      `json:"premium"`
	Group         string    `json:"group"`
	IsOnline      bool      `json:"is_online"`
	Equipment     Equipment `json:"equipment"`
}

// GroupUnknown is the group label of a record whose page carries no
// usable group/clan value.
const GroupUnknown = "Unknown"

// KDRatio renders the kill/death ratio. Deaths of zero degrade to the
// raw kill count ("0.00" when both are zero) instead of dividing.
func KDRatio(kills, deaths int) string {
	if deaths == 0 {
		if kills > 0 {
			return fmt.Sprintf("%d", kills)
		}
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(kills)/float64(deaths))
}
