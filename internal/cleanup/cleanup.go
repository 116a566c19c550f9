// Package cleanup removes expired event records. The platform scheduler runs
// the cleanup binary daily; events are the only age-deleted records, menus
// are kept until an operator removes them.
package cleanup

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	bandRepository "github.com/declanmoran/omahonys-pub/internal/band/repository"
	matchRepository "github.com/declanmoran/omahonys-pub/internal/match/repository"
)

// Result reports how many records one run removed.
type Result struct {
	// Date is the venue-local cutoff; records dated strictly before it were
	// deleted.
	Date           string
	MatchesDeleted int64
	BandsDeleted   int64
}

// Service deletes matches and bands dated strictly before the current
// venue-local calendar date. Deletion is by date alone; no other state
// references event rows, so nothing is orphaned.
type Service struct {
	matches matchRepository.Repository
	bands   bandRepository.Repository
	loc     *time.Location
	logger  *zap.SugaredLogger
	now     func() time.Time
}

// New creates a new cleanup service instance.
func New(matches matchRepository.Repository, bands bandRepository.Repository, loc *time.Location, logger *zap.SugaredLogger) *Service {
	return &Service{
		matches: matches,
		bands:   bands,
		loc:     loc,
		logger:  logger,
		now:     time.Now,
	}
}

// Run deletes every expired match and band and returns the counts. Matches
// are attempted even if band deletion fails; the first error is returned.
func (s *Service) Run(ctx context.Context) (Result, error) {
	today := s.now().In(s.loc).Format("2006-01-02")
	res := Result{Date: today}

	bandsDeleted, bandErr := s.bands.DeleteBefore(ctx, today)
	res.BandsDeleted = bandsDeleted
	if bandErr == nil {
		s.logger.Infow("deleted old bands", "count", bandsDeleted, "before", today)
	}

	matchesDeleted, matchErr := s.matches.DeleteBefore(ctx, today)
	res.MatchesDeleted = matchesDeleted
	if matchErr == nil {
		s.logger.Infow("deleted old matches", "count", matchesDeleted, "before", today)
	}

	if bandErr != nil {
		return res, fmt.Errorf("delete old bands: %w", bandErr)
	}
	if matchErr != nil {
		return res, fmt.Errorf("delete old matches: %w", matchErr)
	}
	return res, nil
}
