package view

import (
	"strings"
	"time"

	"github.com/scorecheck/scorecheck/internal/feed"
)

// GameView is a scoreboard game annotated for rendering. Score labels are
// suppressed (empty) for games that have not started; time and date labels
// fall back to "TBD" / "Date TBD" when the start timestamp is missing or
// unparseable.
type GameView struct {
	feed.Game
	State          string `json:"state"`
	StatusLabel    string `json:"status_label"`
	TimeLabel      string `json:"time_label"`
	DateLabel      string `json:"date_label"`
	HomeScoreLabel string `json:"home_score_label"`
	AwayScoreLabel string `json:"away_score_label"`
}

// LeagueBucket is one league's games for a single day partition.
type LeagueBucket struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Games []GameView `json:"games"`
}

// ScheduleBoard is the derived today/yesterday view of a schedule payload.
// NoGamesToday flags the fallback notice directing attention to yesterday's
// results: it is set only when today is empty and yesterday is not.
type ScheduleBoard struct {
	Today        []LeagueBucket `json:"today"`
	Yesterday    []LeagueBucket `json:"yesterday"`
	NoGamesToday bool           `json:"no_games_today"`
}

// BuildScheduleBoard partitions a schedule payload into today and yesterday
// buckets, display-sorts each league's games, and decides whether the
// "no games today" notice applies. Labels render in loc. A nil payload
// yields an empty board.
func BuildScheduleBoard(payload *feed.SchedulePayload, loc *time.Location) ScheduleBoard {
	if loc == nil {
		loc = time.UTC
	}
	if payload == nil {
		return ScheduleBoard{}
	}

	// Older payloads carry today's leagues at the top level.
	todayGroups := payload.Leagues
	if payload.Today != nil && payload.Today.Leagues != nil {
		todayGroups = payload.Today.Leagues
	}
	var yesterdayGroups []feed.LeagueGroup
	if payload.Yesterday != nil {
		yesterdayGroups = payload.Yesterday.Leagues
	}

	board := ScheduleBoard{
		Today:     buildBuckets(todayGroups, loc),
		Yesterday: buildBuckets(yesterdayGroups, loc),
	}
	board.NoGamesToday = countGames(board.Today) == 0 && countGames(board.Yesterday) > 0
	return board
}

func buildBuckets(groups []feed.LeagueGroup, loc *time.Location) []LeagueBucket {
	buckets := make([]LeagueBucket, 0, len(groups))
	for _, group := range groups {
		games := SortForDisplay(group.Games)
		views := make([]GameView, 0, len(games))
		for _, game := range games {
			views = append(views, buildGameView(game, loc))
		}
		buckets = append(buckets, LeagueBucket{ID: group.ID, Name: group.Name, Games: views})
	}
	return buckets
}

func buildGameView(game feed.Game, loc *time.Location) GameView {
	status := Classify(game.Status)
	gv := GameView{
		Game:        game,
		State:       status.State.String(),
		StatusLabel: status.Label,
		TimeLabel:   "TBD",
		DateLabel:   "Date TBD",
	}

	if start, ok := parseStartTime(game.StartTime); ok {
		local := start.In(loc)
		gv.TimeLabel = local.Format("3:04 PM")
		gv.DateLabel = local.Format("1/2")
	}

	// Pre-game scores are suppressed, not zero.
	if status.State != StateScheduled {
		gv.HomeScoreLabel = game.HomeScore
		gv.AwayScoreLabel = game.AwayScore
	}
	return gv
}

func countGames(buckets []LeagueBucket) int {
	total := 0
	for _, bucket := range buckets {
		total += len(bucket.Games)
	}
	return total
}

// startTimeLayouts covers RFC3339 and the short "2006-01-02T15:04Z" form
// some upstream endpoints emit.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

func parseStartTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range startTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
