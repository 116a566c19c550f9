// Package service provides the business logic layer for the match module.
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/declanmoran/omahonys-pub/internal/eventview"
	"github.com/declanmoran/omahonys-pub/internal/match/model"
	"github.com/declanmoran/omahonys-pub/internal/match/repository"
)

// Upcoming names the filter applied to public match listings. Every caller
// chooses explicitly; there is no implicit default boundary.
type Upcoming string

const (
	// UpcomingNotStarted keeps matches that have not kicked off yet.
	UpcomingNotStarted Upcoming = "not-started"
	// UpcomingToday keeps matches on today's calendar date or later.
	UpcomingToday Upcoming = "today"
	// UpcomingAll applies no time filter.
	UpcomingAll Upcoming = "all"
)

// ListOptions control the public match listing.
type ListOptions struct {
	Upcoming Upcoming
	League   string
	Sport    string
}

// Service defines match business logic operations.
type Service interface {
	// List returns matches filtered per opts, ordered by kick-off.
	List(ctx context.Context, opts ListOptions) ([]model.Match, error)

	// ListGrouped returns the filtered listing partitioned by calendar date.
	ListGrouped(ctx context.Context, opts ListOptions) ([]eventview.DateGroup[model.Match], error)

	// Create validates and inserts a new match.
	Create(ctx context.Context, req *model.MatchRequest) (*model.Match, error)

	// Update validates and fully replaces an existing match.
	Update(ctx context.Context, id int64, req *model.MatchRequest) (*model.Match, error)

	// Delete removes a match.
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   repository.Repository
	loc    *time.Location
	logger *zap.SugaredLogger
	now    func() time.Time
}

// New creates a new match service instance.
func New(repo repository.Repository, loc *time.Location, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

// List returns matches filtered per opts, ordered by kick-off.
func (s *service) List(ctx context.Context, opts ListOptions) ([]model.Match, error) {
	matches, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matches = eventview.FilterByField(matches, func(m model.Match) string { return m.League }, opts.League)
	matches = eventview.FilterByField(matches, func(m model.Match) string { return m.Sport }, opts.Sport)

	switch opts.Upcoming {
	case UpcomingAll:
	case UpcomingNotStarted:
		matches = s.upcoming(matches, eventview.PolicyNotYetStarted)
	default:
		matches = s.upcoming(matches, eventview.PolicyTodayInclusive)
	}

	return eventview.SortByWhen(matches, s.loc, eventview.Ascending), nil
}

// ListGrouped returns the filtered listing partitioned by calendar date.
func (s *service) ListGrouped(ctx context.Context, opts ListOptions) ([]eventview.DateGroup[model.Match], error) {
	matches, err := s.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return eventview.GroupByCalendarDate(matches, s.loc), nil
}

// upcoming applies the named boundary policy and logs any record whose
// stored date/time no longer parses. Bad records are skipped, not fatal.
func (s *service) upcoming(matches []model.Match, policy eventview.Policy) []model.Match {
	kept, parseErrs := eventview.ListUpcoming(matches, s.now(), s.loc, policy)
	for _, pe := range parseErrs {
		s.logger.Warnw("skipping match with malformed date/time",
			"match_id", matches[pe.Index].ID,
			"error", pe.Err,
		)
	}
	return kept
}

// Create validates and inserts a new match.
func (s *service) Create(ctx context.Context, req *model.MatchRequest) (*model.Match, error) {
	m, err := matchFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update validates and fully replaces an existing match.
func (s *service) Update(ctx context.Context, id int64, req *model.MatchRequest) (*model.Match, error) {
	m, err := matchFromRequest(req)
	if err != nil {
		return nil, err
	}
	m.ID = id
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes a match.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// matchFromRequest validates the payload and builds the record. An absent
// sport defaults to Football, matching records created before the sport
// field existed.
func matchFromRequest(req *model.MatchRequest) (*model.Match, error) {
	if strings.TrimSpace(req.League) == "" {
		return nil, &model.ValidationError{Field: "league", Message: "league is required"}
	}
	if strings.TrimSpace(req.Team1) == "" {
		return nil, &model.ValidationError{Field: "team1", Message: "team1 is required"}
	}
	if strings.TrimSpace(req.Team2) == "" {
		return nil, &model.ValidationError{Field: "team2", Message: "team2 is required"}
	}
	if !eventview.ValidDate(req.Date) {
		return nil, &model.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"}
	}
	if !eventview.ValidClock(req.Time) {
		return nil, &model.ValidationError{Field: "time", Message: "time must be HH:MM"}
	}

	sport := strings.TrimSpace(req.Sport)
	if sport == "" {
		sport = model.DefaultSport
	}

	return &model.Match{
		Sport:  sport,
		League: req.League,
		Team1:  req.Team1,
		Team2:  req.Team2,
		Date:   req.Date,
		Time:   req.Time,
	}, nil
}
