package textures

import "strings"

// Season is one of the four in-game seasons. The empty Season means the
// texture applies to all of them.
type Season string

const (
	NoSeason Season = ""
	Spring   Season = "spring"
	Summer   Season = "summer"
	Fall     Season = "fall"
	Winter   Season = "winter"
)

// Seasons lists the in-game seasons in calendar order.
var Seasons = [4]Season{Spring, Summer, Fall, Winter}

// ParseSeason returns the Season named by s, ignoring case and surrounding
// whitespace. Unknown names yield NoSeason and false.
func ParseSeason(s string) (Season, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, season := range Seasons {
		if string(season) == s {
			return season, true
		}
	}
	return NoSeason, false
}

func (s Season) String() string {
	return string(s)
}
