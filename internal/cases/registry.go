package cases

import (
	"context"
	"fmt"
	"io/fs"
	"math"

	"github.com/osse101/SkinTrade_Go/configs"
	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/logger"
	"github.com/osse101/SkinTrade_Go/internal/utils"
	"github.com/osse101/SkinTrade_Go/internal/validation"
)

// Config represents the JSON case file
type Config struct {
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Cases       []domain.Case `json:"cases"`
}

// Registry is the read-only set of openable cases, in file order.
type Registry struct {
	cases []domain.Case
	byID  map[string]int
}

// NewRegistry indexes cases by ID. A duplicate ID is an error.
func NewRegistry(cases []domain.Case) (*Registry, error) {
	byID := make(map[string]int, len(cases))
	for i, c := range cases {
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("%s: %s", ErrMsgDuplicateCaseID, c.ID)
		}
		byID[c.ID] = i
	}
	return &Registry{cases: cases, byID: byID}, nil
}

// Load reads the case file (override path or embedded seed), validates it and builds the
// registry. Chance sums other than 100 are logged, not rejected.
func Load(overridePath string, fsys fs.FS, schemas validation.SchemaValidator) (*Registry, error) {
	data, source, err := utils.ReadConfigBytes(overridePath, fsys, configs.CasesFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadCases, err)
	}
	if schemas != nil {
		if err := schemas.ValidateBytes(data, configs.CasesSchemaFile); err != nil {
			return nil, fmt.Errorf("schema validation failed for %s: %w", source, err)
		}
	}

	var cfg Config
	if err := utils.DecodeJSON(data, source, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseCases, err)
	}
	if cfg.Version != ConfigVersion {
		logger.Warn(LogMsgCasesVersionOff, "source", source, "version", cfg.Version, "expected", ConfigVersion)
	}

	for _, issue := range Check(cfg.Cases) {
		logger.Warn(issue.Message, "case_id", issue.CaseID, "total", issue.Total)
	}

	reg, err := NewRegistry(cfg.Cases)
	if err != nil {
		return nil, err
	}
	logger.Info(LogMsgCasesLoaded, "source", source, "cases", len(cfg.Cases))
	return reg, nil
}

// Issue is a non-fatal problem found in a case definition.
type Issue struct {
	CaseID  string
	Total   float64
	Message string
}

// Check reports cases whose chances do not add up to 100 or that have no items.
func Check(cases []domain.Case) []Issue {
	var issues []Issue
	for _, c := range cases {
		if len(c.Items) == 0 {
			issues = append(issues, Issue{CaseID: c.ID, Message: LogMsgCaseHasNoItems})
			continue
		}
		total := c.TotalChance()
		if math.Abs(total-ExpectedChanceTotal) > ChanceTolerance {
			issues = append(issues, Issue{CaseID: c.ID, Total: total, Message: LogMsgChanceSumOff})
		}
	}
	return issues
}

// List returns a copy of all cases in file order.
func (r *Registry) List(_ context.Context) []domain.Case {
	out := make([]domain.Case, len(r.cases))
	copy(out, r.cases)
	return out
}

// Get looks a case up by ID.
func (r *Registry) Get(_ context.Context, id string) (domain.Case, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Case{}, fmt.Errorf("%w: %s", domain.ErrCaseNotFound, id)
	}
	return r.cases[i], nil
}

// Len is the number of cases.
func (r *Registry) Len() int {
	return len(r.cases)
}
