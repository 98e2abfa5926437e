package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"

	"github.com/google/uuid"
)

const maxAggregationWorkers = 8

type netWorthHistoryService struct {
	accountRepo repositories.AccountRepositoryInterface
	entryRepo   repositories.BalanceEntryRepositoryInterface
	rateRepo    repositories.ExchangeRateRepositoryInterface
	prefRepo    repositories.UserPreferenceRepositoryInterface
	scheduler   SampleSchedulerInterface
	metrics     MetricsRecorderInterface
	aggregator  *netWorthAggregator

	// now is injected so tests can pin "today"; the clamp to the current
	// day is the engine's only dependency on wall-clock time.
	now func() time.Time
}

// NewNetWorthHistoryService creates the history engine boundary. workers
// bounds the per-account conversion pool; zero derives it from the CPU count.
func NewNetWorthHistoryService(
	accountRepo repositories.AccountRepositoryInterface,
	entryRepo repositories.BalanceEntryRepositoryInterface,
	rateRepo repositories.ExchangeRateRepositoryInterface,
	prefRepo repositories.UserPreferenceRepositoryInterface,
	scheduler SampleSchedulerInterface,
	metrics MetricsRecorderInterface,
	workers int,
) NetWorthHistoryServiceInterface {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > maxAggregationWorkers {
		workers = maxAggregationWorkers
	}
	return &netWorthHistoryService{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		rateRepo:    rateRepo,
		prefRepo:    prefRepo,
		scheduler:   scheduler,
		metrics:     metrics,
		aggregator:  newNetWorthAggregator(workers),
		now:         time.Now,
	}
}

// GetHistory validates the request, computes the sampling schedule, runs the
// aggregation across all accounts, and returns the series plus the
// parameters actually used. Either the whole computation succeeds or an
// error is returned; there is no partial series.
func (s *netWorthHistoryService) GetHistory(ctx context.Context, req dto.NetWorthHistoryRequest) (*models.NetWorthHistory, error) {
	started := time.Now()

	history, err := s.computeHistory(ctx, req)
	if err != nil {
		s.metrics.ObserveHistoryRequest("error", time.Since(started), 0)
		return nil, err
	}

	s.metrics.ObserveHistoryRequest("success", time.Since(started), history.ActualDataPoints)
	if history.Diagnostics.RateApproximated {
		s.metrics.RecordRateFallback()
	}

	slog.Info("net worth history computed",
		"period", history.Period,
		"start_date", models.FormatDate(history.StartDate),
		"end_date", models.FormatDate(history.EndDate),
		"currency", history.Currency,
		"strategy", history.SamplingStrategy,
		"points", history.ActualDataPoints,
		"accounts", history.Diagnostics.AccountCount,
		"rate_approximated", history.Diagnostics.RateApproximated,
		"duration_ms", time.Since(started).Milliseconds())

	return history, nil
}

func (s *netWorthHistoryService) computeHistory(ctx context.Context, req dto.NetWorthHistoryRequest) (*models.NetWorthHistory, error) {
	today := models.DateOnly(s.now())

	params, err := s.validateRequest(req, today)
	if err != nil {
		return nil, err
	}

	targetCurrency, err := s.resolveTargetCurrency(req.TargetCurrency)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.GetAll()
	if err != nil {
		slog.Error("failed to fetch accounts for history", "error", err)
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	earliest, hasEarliest, err := s.entryRepo.EarliestEntryDate()
	if err != nil {
		slog.Error("failed to find earliest balance entry", "error", err)
		return nil, fmt.Errorf("failed to resolve all-time range: %w", err)
	}

	spec, start, end, err := s.scheduler.Schedule(
		params.period, params.customStart, params.customEnd,
		params.strategy, params.maxPoints, today, earliest, hasEarliest)
	if err != nil {
		return nil, err
	}

	entriesByAccount, err := s.fetchEntries(ctx, accounts, end, params.includeBreakdown)
	if err != nil {
		return nil, err
	}

	resolver := newExchangeRateResolver(s.rateRepo, end)
	points, diag, err := s.aggregator.aggregate(ctx, accounts, entriesByAccount, spec, targetCurrency, resolver, params.includeBreakdown)
	if err != nil {
		return nil, err
	}

	roundToMinorUnits(points, targetCurrency)

	return &models.NetWorthHistory{
		Period:           params.period,
		StartDate:        start,
		EndDate:          end,
		Currency:         targetCurrency,
		SamplingStrategy: spec.Strategy,
		MaxDataPoints:    params.maxPoints,
		ActualDataPoints: len(points),
		Data:             points,
		Diagnostics:      diag,
	}, nil
}

type historyParams struct {
	period           string
	customStart      time.Time
	customEnd        time.Time
	strategy         string
	maxPoints        int
	includeBreakdown bool
}

// validateRequest enforces the period/date-range combination rules before
// any computation is attempted.
func (s *netWorthHistoryService) validateRequest(req dto.NetWorthHistoryRequest, today time.Time) (historyParams, error) {
	params := historyParams{
		period:           req.Period,
		strategy:         req.SamplingStrategy,
		maxPoints:        req.MaxDataPoints,
		includeBreakdown: req.IncludeAccountBreakdown,
	}

	if !models.IsValidPeriod(req.Period) {
		return params, fmt.Errorf("%w: unknown period %q", ErrInvalidRequest, req.Period)
	}

	if params.strategy == "" {
		params.strategy = models.StrategyAdaptive
	}
	if !models.IsValidStrategy(params.strategy) {
		return params, fmt.Errorf("%w: unknown sampling strategy %q", ErrInvalidRequest, req.SamplingStrategy)
	}

	if params.maxPoints == 0 {
		params.maxPoints = models.DefaultMaxDataPoints
	}
	if params.maxPoints < 1 {
		return params, fmt.Errorf("%w: max_data_points must be positive", ErrInvalidRequest)
	}

	if req.Period == models.PeriodCustom {
		if req.StartDate == "" || req.EndDate == "" {
			return params, fmt.Errorf("%w: CUSTOM period requires start_date and end_date", ErrInvalidRequest)
		}

		start, err := models.ParseDate(req.StartDate)
		if err != nil {
			return params, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		end, err := models.ParseDate(req.EndDate)
		if err != nil {
			return params, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}

		if start.After(end) {
			return params, fmt.Errorf("%w: start_date must not be after end_date", ErrInvalidRequest)
		}
		if end.After(today) {
			return params, fmt.Errorf("%w: end_date must not be in the future", ErrInvalidRequest)
		}

		params.customStart = start
		params.customEnd = end
	} else if req.StartDate != "" || req.EndDate != "" {
		return params, fmt.Errorf("%w: start_date and end_date are only valid with the CUSTOM period", ErrInvalidRequest)
	}

	return params, nil
}

// resolveTargetCurrency falls back to the stored preference when the request
// does not name a currency.
func (s *netWorthHistoryService) resolveTargetCurrency(requested string) (string, error) {
	if requested != "" {
		if !models.IsValidCurrencyCode(requested) {
			return "", fmt.Errorf("%w: invalid target currency %q", ErrInvalidRequest, requested)
		}
		return requested, nil
	}

	pref, err := s.prefRepo.Get()
	if err != nil {
		slog.Error("failed to load user preference", "error", err)
		return "", fmt.Errorf("failed to resolve target currency: %w", err)
	}
	return pref.DefaultCurrency, nil
}

// fetchEntries batch-loads each account's full entry history up to the end
// date, one query per account per request.
func (s *netWorthHistoryService) fetchEntries(ctx context.Context, accounts []models.Account, end time.Time, includeBreakdown bool) (map[uuid.UUID][]models.BalanceEntry, error) {
	entriesByAccount := make(map[uuid.UUID][]models.BalanceEntry, len(accounts))
	for i := range accounts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !accounts[i].IncludeInNetWorth && !includeBreakdown {
			continue
		}

		entries, err := s.entryRepo.ListByAccount(accounts[i].ID, end)
		if err != nil {
			slog.Error("failed to fetch balance entries",
				"account_id", accounts[i].ID,
				"error", err)
			return nil, fmt.Errorf("failed to fetch balance entries: %w", err)
		}
		entriesByAccount[accounts[i].ID] = entries
	}
	return entriesByAccount, nil
}

// roundToMinorUnits rounds every amount to the currency's minor units at the
// output boundary. Assets and liabilities are rounded first and the net
// recomputed from the rounded values, so net == assets - liabilities holds
// exactly on every returned point.
func roundToMinorUnits(points []models.NetWorthPoint, currency string) {
	places := models.CurrencyMinorUnits(currency)
	for i := range points {
		points[i].TotalAssets = points[i].TotalAssets.Round(places)
		points[i].TotalLiabilities = points[i].TotalLiabilities.Round(places)
		points[i].NetWorth = points[i].TotalAssets.Sub(points[i].TotalLiabilities)

		for j := range points[i].Accounts {
			points[i].Accounts[j].Amount = points[i].Accounts[j].Amount.Round(places)
		}
	}
}
