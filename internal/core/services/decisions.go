package services

import (
	"context"
	"fmt"
	"time"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driving"
	"github.com/civica-labs/ratsdata-cli/internal/logger"
)

// Ensure DecisionService implements the interface.
var _ driving.DecisionService = (*DecisionService)(nil)

// Open date bounds used when a query leaves one end of the range unset.
var (
	earliestDate = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	latestDate   = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// DecisionService answers queries over the council decisions category.
type DecisionService struct {
	dataset  driving.DatasetService
	settings *domain.AppSettings
}

// NewDecisionService creates a new decision service.
func NewDecisionService(dataset driving.DatasetService, settings *domain.AppSettings) *DecisionService {
	return &DecisionService{
		dataset:  dataset,
		settings: settings,
	}
}

// Load returns the full collection and the actionable view.
func (s *DecisionService) Load(ctx context.Context) (all, actionable []domain.AgendaItem, err error) {
	all, err = s.dataset.AgendaItems(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load decisions: %w", err)
	}
	actionable = domain.ActionableItems(all, s.settings.Decisions.ExcludedStatuses)
	logger.Debug("Decisions: %d items, %d actionable", len(all), len(actionable))
	return all, actionable, nil
}

// Query returns the items matching q, preserving source order. A nil
// status set means no status filter; an empty non-nil set selects nothing.
func (s *DecisionService) Query(ctx context.Context, q domain.DecisionQuery) ([]domain.AgendaItem, error) {
	all, actionable, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	items := all
	if q.ActionableOnly {
		items = actionable
	}

	if q.From != nil || q.To != nil {
		minDate, maxDate := earliestDate, latestDate
		if q.From != nil {
			minDate = *q.From
		}
		if q.To != nil {
			maxDate = *q.To
		}
		items = domain.FilterByDateRange(items,
			func(a domain.AgendaItem) time.Time { return a.Created }, minDate, maxDate)
	}

	if q.Statuses != nil {
		items = domain.FilterByCategory(items,
			func(a domain.AgendaItem) string { return a.Status }, q.Statuses)
	}

	return items, nil
}
