package service

import (
	"context"
	"log"
	"time"

	"github.com/scorecheck/scorecheck/internal/view"
)

// ScheduleService derives the schedule board view from data-source payloads.
type ScheduleService struct {
	feed Feed
	loc  *time.Location
}

// NewScheduleService creates a new schedule service. loc controls how game
// time and date labels render; nil falls back to UTC.
func NewScheduleService(feed Feed, loc *time.Location) *ScheduleService {
	if loc == nil {
		loc = time.UTC
	}
	return &ScheduleService{
		feed: feed,
		loc:  loc,
	}
}

// Board returns the today/yesterday schedule board. A fetch failure is
// absorbed: the board is built from an empty payload so the page still
// renders, with nothing to show rather than an error.
func (s *ScheduleService) Board(ctx context.Context) view.ScheduleBoard {
	payload, err := s.feed.TodayGames(ctx)
	if err != nil {
		log.Printf("[schedule] fetching today games: %v", err)
		payload = nil
	}
	return view.BuildScheduleBoard(payload, s.loc)
}
