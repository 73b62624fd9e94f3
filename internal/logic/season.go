package logic

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/courtside/stats-api/internal/models"
)

// SeasonType classifies a game by the phase of the season it belongs to.
type SeasonType int

const (
	SeasonTypeUnknown SeasonType = iota
	SeasonTypePreseason
	SeasonTypeRegular
	SeasonTypePostseason
	SeasonTypePlayIn
	SeasonTypeCupFinals
)

func (t SeasonType) String() string {
	switch t {
	case SeasonTypePreseason:
		return "Preseason"
	case SeasonTypeRegular:
		return "Regular Season"
	case SeasonTypePostseason:
		return "Postseason"
	case SeasonTypePlayIn:
		return "Play-In Tournament"
	case SeasonTypeCupFinals:
		return "NBA Cup Finals"
	default:
		return ""
	}
}

const dateLayout = "2006-01-02"

// ParseGameDate parses a store key of the form "YYYY-MM-DD" or
// "YYYY-MM-DD_HH-MM-SS". Only the date portion is interpreted; a key
// whose date portion does not parse yields a GameDate with a zero Day
// but retains the original key for ordering.
func ParseGameDate(key string) models.GameDate {
	datePart, _, _ := strings.Cut(key, "_")
	day, err := time.Parse(dateLayout, datePart)
	if err != nil {
		return models.GameDate{Key: key}
	}
	return models.GameDate{Key: key, Day: day}
}

// SeasonTypeFromID derives the season type from a season_id's leading
// digit (the league's encoding: 1 preseason, 2 regular season, 4
// postseason, 5 play-in, 6 cup finals). Anything else is unknown.
func SeasonTypeFromID(seasonID string) SeasonType {
	if seasonID == "" {
		return SeasonTypeUnknown
	}
	switch seasonID[0] {
	case '1':
		return SeasonTypePreseason
	case '2':
		return SeasonTypeRegular
	case '4':
		return SeasonTypePostseason
	case '5':
		return SeasonTypePlayIn
	case '6':
		return SeasonTypeCupFinals
	default:
		return SeasonTypeUnknown
	}
}

// seasonLabel formats a season starting in startYear as "YYYY-YY".
func seasonLabel(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// SeasonYearFromID extracts the season label from a season_id, whose
// digits after the first encode the season start year (e.g. "22024" is
// the 2024-25 regular season). Returns "" when the id is malformed.
func SeasonYearFromID(seasonID string) string {
	if len(seasonID) < 2 {
		return ""
	}
	year, err := strconv.Atoi(seasonID[1:])
	if err != nil || year < 1900 || year > 2999 {
		return ""
	}
	return seasonLabel(year)
}

// SeasonYearFromDate derives the season label from a calendar date.
// October through December belong to the season starting that year,
// earlier months to the season started the previous year.
func SeasonYearFromDate(day time.Time) string {
	if day.IsZero() {
		return ""
	}
	year := day.Year()
	if day.Month() >= time.October {
		return seasonLabel(year)
	}
	return seasonLabel(year - 1)
}

// SeasonYear resolves a game's season label, preferring the explicit
// season_id and falling back to the calendar date for records that
// predate the id convention.
func SeasonYear(seasonID string, date models.GameDate) string {
	if label := SeasonYearFromID(seasonID); label != "" {
		return label
	}
	return SeasonYearFromDate(date.Day)
}
