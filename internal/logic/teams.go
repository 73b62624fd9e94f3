package logic

// Static league taxonomy. Loaded once, read-only; safe for concurrent
// use without synchronization. A missing key always means "unknown",
// never an error, so a novel team code degrades classification instead
// of failing a request.

var teamDivisions = map[string]string{
	"NYK": "Atlantic",
	"BKN": "Atlantic",
	"BOS": "Atlantic",
	"PHI": "Atlantic",
	"TOR": "Atlantic",
	"CHI": "Central",
	"CLE": "Central",
	"DET": "Central",
	"IND": "Central",
	"MIL": "Central",
	"ATL": "Southeast",
	"CHA": "Southeast",
	"MIA": "Southeast",
	"ORL": "Southeast",
	"WAS": "Southeast",
	"DAL": "Southwest",
	"HOU": "Southwest",
	"MEM": "Southwest",
	"NOP": "Southwest",
	"SAS": "Southwest",
	"DEN": "Northwest",
	"MIN": "Northwest",
	"OKC": "Northwest",
	"POR": "Northwest",
	"UTA": "Northwest",
	"GSW": "Pacific",
	"LAC": "Pacific",
	"LAL": "Pacific",
	"PHX": "Pacific",
	"SAC": "Pacific",
}

var teamConferences = map[string]string{
	"NYK": "East",
	"BKN": "East",
	"BOS": "East",
	"PHI": "East",
	"TOR": "East",
	"CHI": "East",
	"CLE": "East",
	"DET": "East",
	"IND": "East",
	"MIL": "East",
	"ATL": "East",
	"CHA": "East",
	"MIA": "East",
	"ORL": "East",
	"WAS": "East",
	"DAL": "West",
	"HOU": "West",
	"MEM": "West",
	"NOP": "West",
	"SAS": "West",
	"DEN": "West",
	"MIN": "West",
	"OKC": "West",
	"POR": "West",
	"UTA": "West",
	"GSW": "West",
	"LAC": "West",
	"LAL": "West",
	"PHX": "West",
	"SAC": "West",
}

var teamNameToAbbr = map[string]string{
	"New York Knicks":        "NYK",
	"Brooklyn Nets":          "BKN",
	"Boston Celtics":         "BOS",
	"Philadelphia 76ers":     "PHI",
	"Toronto Raptors":        "TOR",
	"Chicago Bulls":          "CHI",
	"Cleveland Cavaliers":    "CLE",
	"Detroit Pistons":        "DET",
	"Indiana Pacers":         "IND",
	"Milwaukee Bucks":        "MIL",
	"Atlanta Hawks":          "ATL",
	"Charlotte Hornets":      "CHA",
	"Miami Heat":             "MIA",
	"Orlando Magic":          "ORL",
	"Washington Wizards":     "WAS",
	"Dallas Mavericks":       "DAL",
	"Houston Rockets":        "HOU",
	"Memphis Grizzlies":      "MEM",
	"New Orleans Pelicans":   "NOP",
	"San Antonio Spurs":      "SAS",
	"Denver Nuggets":         "DEN",
	"Minnesota Timberwolves": "MIN",
	"Oklahoma City Thunder":  "OKC",
	"Portland Trail Blazers": "POR",
	"Utah Jazz":              "UTA",
	"Golden State Warriors":  "GSW",
	"Los Angeles Clippers":   "LAC",
	"Los Angeles Lakers":     "LAL",
	"Phoenix Suns":           "PHX",
	"Sacramento Kings":       "SAC",
}

// aliasAbbr maps codes of relocated or renamed franchises to the code
// they play under today. Old box scores reference these.
var aliasAbbr = map[string]string{
	"NJN": "BKN", // New Jersey Nets -> Brooklyn
	"SEA": "OKC", // Seattle SuperSonics -> Oklahoma City
	"NOH": "NOP", // New Orleans Hornets -> Pelicans
	"NOK": "NOP", // New Orleans/Oklahoma City Hornets -> Pelicans
	"VAN": "MEM", // Vancouver Grizzlies -> Memphis
	"CHH": "CHA", // original Charlotte Hornets code
}

// CanonicalAbbr resolves a matchup token to a canonical team code. The
// token may be a current abbreviation, a legacy abbreviation, or a full
// team name. Unrecognized tokens pass through unchanged so that lookups
// on them classify as unknown rather than erroring.
func CanonicalAbbr(token string) string {
	if abbr, ok := teamNameToAbbr[token]; ok {
		token = abbr
	}
	if canonical, ok := aliasAbbr[token]; ok {
		return canonical
	}
	return token
}

// TeamDivision returns the division for a canonical team code, or ""
// when the code is unknown.
func TeamDivision(abbr string) string { return teamDivisions[abbr] }

// TeamConference returns the conference for a canonical team code, or
// "" when the code is unknown.
func TeamConference(abbr string) string { return teamConferences[abbr] }

// AbbrForTeamName maps a full team name to its abbreviation. The second
// return is false for unrecognized names.
func AbbrForTeamName(name string) (string, bool) {
	abbr, ok := teamNameToAbbr[name]
	return abbr, ok
}
