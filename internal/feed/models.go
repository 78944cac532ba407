package feed

// League is one entry of the data-source API's league listing.
type League struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// LeaguesResponse wraps the league listing payload.
type LeaguesResponse struct {
	Leagues []League `json:"leagues"`
}

// TeamEntry is one team in a league's roster listing.
type TeamEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// LeagueTeams is the roster listing payload for one league.
type LeagueTeams struct {
	League string      `json:"league"`
	Teams  []TeamEntry `json:"teams"`
	Source string      `json:"source,omitempty"`
}

// Player carries a player's display fields plus a free-form stat map. The
// map may hold season aggregates or a single game's box score; values arrive
// as JSON numbers or strings depending on the upstream feed.
type Player struct {
	Name     string         `json:"name"`
	Position string         `json:"position"`
	Stats    map[string]any `json:"stats"`
}

// TeamGame is one entry of a team's game history. Score is a "H-A" pair of
// the home and away totals; Home reports whether this team was the home side.
type TeamGame struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	Home     bool   `json:"home"`
	Status   string `json:"status"`
	Score    string `json:"score"`
}

// TeamDetail is the team page payload: roster plus game history.
type TeamDetail struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	League  string     `json:"league"`
	Logo    string     `json:"logo,omitempty"`
	Players []Player   `json:"players"`
	Games   []TeamGame `json:"games"`
	Warning string     `json:"warning,omitempty"`
}

// Game is one scoreboard game. Status is free text from the upstream
// provider; StartTime is an ISO-ish timestamp string that may be missing or
// unparseable. Records and scores are display strings, not numbers.
type Game struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	Status     string `json:"status"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomeLogo   string `json:"home_logo,omitempty"`
	AwayLogo   string `json:"away_logo,omitempty"`
	HomeScore  string `json:"home_score"`
	AwayScore  string `json:"away_score"`
	HomeRecord string `json:"home_record,omitempty"`
	AwayRecord string `json:"away_record,omitempty"`
}

// LeagueGroup groups one league's games inside a schedule payload.
type LeagueGroup struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Games []Game `json:"games"`
}

// DaySchedule is one day's section of the schedule payload.
type DaySchedule struct {
	Date    string        `json:"date"`
	Key     string        `json:"key"`
	Leagues []LeagueGroup `json:"leagues"`
}

// SchedulePayload is the today/yesterday scoreboard payload. Older versions
// of the data-source API put today's leagues at the top level instead of
// under "today"; both shapes are accepted.
type SchedulePayload struct {
	Date      string        `json:"date"`
	Today     *DaySchedule  `json:"today"`
	Yesterday *DaySchedule  `json:"yesterday"`
	Leagues   []LeagueGroup `json:"leagues"`
}

// GamePlayers is the optional per-game box score payload.
type GamePlayers struct {
	GameID    string   `json:"game_id"`
	Players   []Player `json:"players"`
	Available bool     `json:"available"`
}
