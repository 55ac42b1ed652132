package application

import (
	"fmt"

	"github.com/openkraft/repocheck/internal/domain"
	"github.com/openkraft/repocheck/internal/domain/renovate"
	"github.com/openkraft/repocheck/internal/log"
)

// RenovateService orchestrates the Renovate validation pipeline:
// resolve candidate -> parse -> run checks -> report.
type RenovateService struct {
	loader domain.DocumentLoader
}

func NewRenovateService(loader domain.DocumentLoader) *RenovateService {
	return &RenovateService{loader: loader}
}

// Validate resolves the first existing candidate under projectPath and runs
// every check in rules against it. A *domain.NotFoundError or
// *domain.ParseError is returned when no report can be produced; advisory
// gaps are carried in the report, never as an error.
func (s *RenovateService) Validate(projectPath string, rules domain.RenovateRules) (*domain.RenovateReport, error) {
	logger := log.WithComponent("renovate")

	if len(rules.Candidates) == 0 {
		return nil, fmt.Errorf("no candidate paths configured")
	}

	logger.Debug().Str("root", projectPath).Strs("candidates", rules.Candidates).Msg("resolving configuration")
	resolved, err := s.loader.Resolve(projectPath, rules.Candidates)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", resolved.RelPath).Msg("configuration parsed")

	report := renovate.Validate(resolved, rules)
	logger.Debug().Int("results", len(report.Results)).Int("gaps", report.Gaps()).Msg("checks complete")
	return report, nil
}
