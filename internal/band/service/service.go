// Package service provides the business logic layer for the band module.
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/declanmoran/omahonys-pub/internal/band/model"
	"github.com/declanmoran/omahonys-pub/internal/band/repository"
	"github.com/declanmoran/omahonys-pub/internal/eventview"
)

// DefaultLatestLimit is the preview size the Entertainment section shows.
const DefaultLatestLimit = 3

// Upcoming names the filter applied to public listings.
type Upcoming string

const (
	// UpcomingNotStarted keeps performances that have not started yet.
	UpcomingNotStarted Upcoming = "not-started"
	// UpcomingToday keeps performances on today's calendar date or later.
	UpcomingToday Upcoming = "today"
	// UpcomingAll applies no time filter.
	UpcomingAll Upcoming = "all"
)

// Service defines band business logic operations.
type Service interface {
	// List returns performances under the named upcoming filter, ordered by
	// start.
	List(ctx context.Context, upcoming Upcoming) ([]model.Band, error)

	// ListGrouped returns the filtered listing partitioned by calendar date.
	ListGrouped(ctx context.Context, upcoming Upcoming) ([]eventview.DateGroup[model.Band], error)

	// Latest returns the n most recent performances, most recent first.
	Latest(ctx context.Context, n int) ([]model.Band, error)

	// Create validates and inserts a new performance.
	Create(ctx context.Context, req *model.BandRequest) (*model.Band, error)

	// Update validates and fully replaces an existing performance.
	Update(ctx context.Context, id int64, req *model.BandRequest) (*model.Band, error)

	// Delete removes a performance.
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   repository.Repository
	loc    *time.Location
	logger *zap.SugaredLogger
	now    func() time.Time
}

// New creates a new band service instance.
func New(repo repository.Repository, loc *time.Location, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

// List returns performances under the named upcoming filter, ordered by start.
// The "No Music" sentinel is not special-cased anywhere here: it filters,
// sorts and groups like any other record.
func (s *service) List(ctx context.Context, upcoming Upcoming) ([]model.Band, error) {
	bands, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	switch upcoming {
	case UpcomingAll:
	case UpcomingNotStarted:
		bands = s.upcoming(bands, eventview.PolicyNotYetStarted)
	default:
		bands = s.upcoming(bands, eventview.PolicyTodayInclusive)
	}

	return eventview.SortByWhen(bands, s.loc, eventview.Ascending), nil
}

// ListGrouped returns the filtered listing partitioned by calendar date.
func (s *service) ListGrouped(ctx context.Context, upcoming Upcoming) ([]eventview.DateGroup[model.Band], error) {
	bands, err := s.List(ctx, upcoming)
	if err != nil {
		return nil, err
	}
	return eventview.GroupByCalendarDate(bands, s.loc), nil
}

// Latest returns the n most recent performances, most recent first. Fewer
// than n records returns them all.
func (s *service) Latest(ctx context.Context, n int) ([]model.Band, error) {
	if n <= 0 {
		n = DefaultLatestLimit
	}
	bands, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return eventview.LimitLatest(bands, s.loc, n), nil
}

func (s *service) upcoming(bands []model.Band, policy eventview.Policy) []model.Band {
	kept, parseErrs := eventview.ListUpcoming(bands, s.now(), s.loc, policy)
	for _, pe := range parseErrs {
		s.logger.Warnw("skipping band with malformed date/time",
			"band_id", bands[pe.Index].ID,
			"error", pe.Err,
		)
	}
	return kept
}

// Create validates and inserts a new performance.
func (s *service) Create(ctx context.Context, req *model.BandRequest) (*model.Band, error) {
	b, err := bandFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update validates and fully replaces an existing performance.
func (s *service) Update(ctx context.Context, id int64, req *model.BandRequest) (*model.Band, error) {
	b, err := bandFromRequest(req)
	if err != nil {
		return nil, err
	}
	b.ID = id
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes a performance.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func bandFromRequest(req *model.BandRequest) (*model.Band, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &model.ValidationError{Field: "name", Message: "name is required"}
	}
	if strings.TrimSpace(req.Genre) == "" {
		return nil, &model.ValidationError{Field: "genre", Message: "genre is required"}
	}
	if !eventview.ValidDate(req.Date) {
		return nil, &model.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"}
	}
	if !eventview.ValidClock(req.Time) {
		return nil, &model.ValidationError{Field: "time", Message: "time must be HH:MM"}
	}

	return &model.Band{
		Name:  req.Name,
		Genre: req.Genre,
		Date:  req.Date,
		Time:  req.Time,
	}, nil
}
