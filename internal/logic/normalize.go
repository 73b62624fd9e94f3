package logic

import (
	"sort"
	"strings"

	"github.com/courtside/stats-api/internal/models"
)

const (
	homeSeparator = " vs. "
	awaySeparator = " @ "
)

// Game locations derived from the matchup string.
const (
	LocationHome    = "home"
	LocationAway    = "away"
	LocationUnknown = "unknown"
)

// NormalizeGame derives location and opponent classification for one raw
// game. It never fails: a malformed matchup degrades to an unknown
// location with the opponent fields left unset, so a single irregular
// record can't take down a stats request.
//
// The " vs. " separator is checked before " @ "; first match wins.
func NormalizeGame(key string, raw models.RawGame, teamAbbr string) models.NormalizedGame {
	g := models.NormalizedGame{
		Date:     ParseGameDate(key),
		Raw:      raw,
		TeamAbbr: teamAbbr,
		Location: LocationUnknown,
	}

	var opponentToken string
	switch {
	case strings.Contains(raw.Matchup, homeSeparator):
		g.Location = LocationHome
		opponentToken = opponentSide(raw.Matchup, homeSeparator, teamAbbr)
	case strings.Contains(raw.Matchup, awaySeparator):
		g.Location = LocationAway
		opponentToken = opponentSide(raw.Matchup, awaySeparator, teamAbbr)
	default:
		return g
	}

	opp := CanonicalAbbr(opponentToken)
	g.OpponentAbbr = opp
	g.OpponentDivision = TeamDivision(opp)
	g.OpponentConference = TeamConference(opp)

	teamConf := TeamConference(CanonicalAbbr(teamAbbr))
	if teamConf != "" && g.OpponentConference != "" {
		inter := teamConf != g.OpponentConference
		g.Interconference = &inter
	}

	return g
}

// opponentSide picks the side of the split that isn't the team itself.
// When neither side matches (inconsistent upstream data) the second
// token is assumed to be the opponent.
func opponentSide(matchup, sep, teamAbbr string) string {
	left, right, _ := strings.Cut(matchup, sep)
	switch teamAbbr {
	case left:
		return right
	case right:
		return left
	default:
		return right
	}
}

// NormalizeAll merges a document's observed and future games into one
// normalized sequence ordered by store key. The team abbreviation comes
// from each game's own Team field, falling back to the document's
// abbrev_name for team documents that omit it per game.
func NormalizeAll(doc *models.EntityDoc) []models.NormalizedGame {
	games := make([]models.NormalizedGame, 0, len(doc.Games)+len(doc.FutureGames))

	appendGames := func(src map[string]models.RawGame, future bool) {
		for key, raw := range src {
			raw.IsFutureGame = future
			abbr := raw.Team
			if abbr == "" {
				abbr = doc.AbbrevName
			}
			games = append(games, NormalizeGame(key, raw, abbr))
		}
	}
	appendGames(doc.Games, false)
	appendGames(doc.FutureGames, true)

	sort.Slice(games, func(i, j int) bool {
		return games[i].Date.Key < games[j].Date.Key
	})
	return games
}
