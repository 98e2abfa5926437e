package services

import (
	"context"
	"time"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"
)

// NetWorthHistoryServiceInterface is the boundary of the net-worth history
// engine. It validates the request, computes the sampling schedule, runs the
// aggregation, and returns the full series together with the parameters
// actually used. It never returns a partially computed series.
type NetWorthHistoryServiceInterface interface {
	GetHistory(ctx context.Context, req dto.NetWorthHistoryRequest) (*models.NetWorthHistory, error)
}

// SampleSchedulerInterface produces the ordered list of sample dates for a
// resolved period and point budget.
type SampleSchedulerInterface interface {
	// Schedule resolves the requested period to a concrete inclusive
	// [start, end] range and generates the sample dates. earliestEntry is
	// the lower bound for the ALL period (ignored when hasEarliest is
	// false). The returned spec always contains at least one date and
	// never one after today.
	Schedule(period string, customStart, customEnd time.Time, strategy string, maxPoints int, today time.Time, earliestEntry time.Time, hasEarliest bool) (models.SamplingSpec, time.Time, time.Time, error)
}

// MetricsRecorderInterface records engine observability metrics
type MetricsRecorderInterface interface {
	ObserveHistoryRequest(status string, duration time.Duration, points int)
	RecordRateFallback()
}

// DemoSeederServiceInterface populates the store with generated demo data
type DemoSeederServiceInterface interface {
	Seed(accountCount, historyMonths int) (*SeedSummary, error)
}
