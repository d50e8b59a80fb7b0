package matching

import (
	"github.com/kbecker21/tt-csv-matcher/feature/roster/models"

	"go.uber.org/zap"
)

// Service answers match requests against a fixed reference roster.
type Service struct {
	refs    []models.Player
	cfg     Config
	matcher *Matcher
	logger  *zap.Logger
}

// NewService builds the service and the default matcher over the roster.
func NewService(refs []models.Player, cfg Config, logger *zap.Logger) (*Service, error) {
	matcher, err := NewMatcher(refs, cfg)
	if err != nil {
		return nil, err
	}
	return &Service{
		refs:    refs,
		cfg:     cfg,
		matcher: matcher,
		logger:  logger,
	}, nil
}

// Match runs the event records through the default matcher.
func (s *Service) Match(events []models.Player) []Result {
	return s.matcher.MatchAll(events)
}

// MatchWithThreshold matches with a per-request fuzzy threshold. The
// reference roster is shared; only the matcher configuration differs.
func (s *Service) MatchWithThreshold(events []models.Player, threshold float64) ([]Result, error) {
	cfg := s.cfg
	cfg.FuzzyThreshold = threshold

	matcher, err := NewMatcher(s.refs, cfg)
	if err != nil {
		return nil, err
	}
	return matcher.MatchAll(events), nil
}

// ReferenceSize returns the number of reference records held in memory.
func (s *Service) ReferenceSize() int {
	return len(s.refs)
}
