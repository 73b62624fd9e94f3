package logic

import (
	"sort"
	"time"

	"github.com/courtside/stats-api/internal/models"
)

// gamePredicate keeps or drops a single normalized game.
type gamePredicate func(models.NormalizedGame) bool

// FilterGames applies the spec's filters to a normalized game sequence.
// Each recognized filter is an independent predicate; they compose by
// intersection, in a fixed order, so adding a new filter can never
// change the semantics of an existing one. Input order is preserved
// except for the final last-N-games truncation, which re-sorts by date
// descending.
//
// Filtering never errors. Malformed game dates are kept by the date
// range predicates (fail-open: irregular upstream dates must not
// silently vanish from results) and excluded by predicates that cannot
// classify the game without a date.
func FilterGames(games []models.NormalizedGame, spec models.FilterSpec) []models.NormalizedGame {
	out := games
	for _, p := range buildPredicates(spec) {
		out = keep(out, p)
	}
	if spec.LastNGames > 0 {
		out = lastNGames(out, spec.LastNGames)
	}
	return out
}

func buildPredicates(spec models.FilterSpec) []gamePredicate {
	var preds []gamePredicate
	if p := dateFromPredicate(spec.DateFrom); p != nil {
		preds = append(preds, p)
	}
	if p := dateToPredicate(spec.DateTo); p != nil {
		preds = append(preds, p)
	}
	if p := monthPredicate(spec.Month); p != nil {
		preds = append(preds, p)
	}
	if p := seasonPredicate(spec.Season); p != nil {
		preds = append(preds, p)
	}
	if p := seasonTypePredicate(spec.SeasonType); p != nil {
		preds = append(preds, p)
	}
	if p := outcomePredicate(spec.Outcome); p != nil {
		preds = append(preds, p)
	}
	if p := divisionPredicate(spec.Division); p != nil {
		preds = append(preds, p)
	}
	if p := conferencePredicate(spec.Conference); p != nil {
		preds = append(preds, p)
	}
	if p := gameTypePredicate(spec.GameType); p != nil {
		preds = append(preds, p)
	}
	if p := opponentsPredicate(spec.OpponentNames()); p != nil {
		preds = append(preds, p)
	}
	return preds
}

func keep(games []models.NormalizedGame, p gamePredicate) []models.NormalizedGame {
	out := make([]models.NormalizedGame, 0, len(games))
	for _, g := range games {
		if p(g) {
			out = append(out, g)
		}
	}
	return out
}

// dateFromPredicate keeps games on or after the bound. A bound that does
// not parse imposes no constraint; a game date that did not parse is
// kept.
func dateFromPredicate(from string) gamePredicate {
	if from == "" {
		return nil
	}
	bound, err := time.Parse(dateLayout, from)
	if err != nil {
		return nil
	}
	return func(g models.NormalizedGame) bool {
		if !g.Date.Valid() {
			return true
		}
		return !g.Date.Day.Before(bound)
	}
}

// dateToPredicate keeps games on or before the bound, with the same
// fail-open behavior as dateFromPredicate.
func dateToPredicate(to string) gamePredicate {
	if to == "" {
		return nil
	}
	bound, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil
	}
	return func(g models.NormalizedGame) bool {
		if !g.Date.Valid() {
			return true
		}
		return !g.Date.Day.After(bound)
	}
}

func monthPredicate(month int) gamePredicate {
	if month < 1 || month > 12 {
		return nil
	}
	return func(g models.NormalizedGame) bool {
		return g.Date.Valid() && int(g.Date.Day.Month()) == month
	}
}

func seasonPredicate(season string) gamePredicate {
	if season == "" {
		return nil
	}
	return func(g models.NormalizedGame) bool {
		return SeasonYear(g.Raw.SeasonID, g.Date) == season
	}
}

// seasonTypePredicate matches on the type encoded in season_id. Games
// with a missing or unrecognized season_id are unknown and excluded.
func seasonTypePredicate(seasonType string) gamePredicate {
	if seasonType == "" {
		return nil
	}
	return func(g models.NormalizedGame) bool {
		t := SeasonTypeFromID(g.Raw.SeasonID)
		return t != SeasonTypeUnknown && t.String() == seasonType
	}
}

func outcomePredicate(outcome string) gamePredicate {
	var want string
	switch outcome {
	case models.OutcomeWin:
		want = "W"
	case models.OutcomeLoss:
		want = "L"
	default:
		// "All", empty, or anything else: no constraint.
		return nil
	}
	return func(g models.NormalizedGame) bool {
		return g.Raw.WinLoss == want
	}
}

func divisionPredicate(division string) gamePredicate {
	if division == "" {
		return nil
	}
	return func(g models.NormalizedGame) bool {
		return g.OpponentDivision == division
	}
}

func conferencePredicate(conference string) gamePredicate {
	if conference == "" {
		return nil
	}
	return func(g models.NormalizedGame) bool {
		return g.OpponentConference == conference
	}
}

// gameTypePredicate excludes games whose interconference flag could not
// be resolved; an unclassifiable game matches neither value.
func gameTypePredicate(gameType string) gamePredicate {
	var wantInter bool
	switch gameType {
	case models.GameTypeInterconference:
		wantInter = true
	case models.GameTypeIntraconference:
		wantInter = false
	default:
		return nil
	}
	return func(g models.NormalizedGame) bool {
		return g.Interconference != nil && *g.Interconference == wantInter
	}
}

// opponentsPredicate resolves full team names to canonical codes and
// keeps games against any of them. A name that doesn't resolve matches
// no games; it does not widen or error the filter.
func opponentsPredicate(names []string) gamePredicate {
	if len(names) == 0 {
		return nil
	}
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if abbr, ok := AbbrForTeamName(name); ok {
			wanted[abbr] = true
		}
	}
	return func(g models.NormalizedGame) bool {
		return g.OpponentAbbr != "" && wanted[g.OpponentAbbr]
	}
}

// lastNGames sorts the filtered sequence newest-first by store key and
// truncates to n. Future and observed games are ranked together; callers
// that need only observed history partition before filtering.
func lastNGames(games []models.NormalizedGame, n int) []models.NormalizedGame {
	out := make([]models.NormalizedGame, len(games))
	copy(out, games)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Key > out[j].Date.Key
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
