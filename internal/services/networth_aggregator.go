package services

import (
	"context"
	"sync"
	"time"

	"networth-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountSeries is one account's contribution to every sample date, already
// converted to the target currency. A slot with present=false means the
// account had no balance entry at or before that date and is excluded from
// that date's totals.
type accountSeries struct {
	account      models.Account
	amounts      []decimal.Decimal
	present      []bool
	approximated bool
}

// netWorthAggregator walks the sample schedule across all accounts and
// produces the net-worth series. Work is fanned out per account: each
// worker sweeps one account's timeline across all dates in ascending order
// (preserving the O(samples + entries) cursor contract), then a sequential
// reduce combines the per-account series into per-date totals. Accounts are
// independent, so there is no shared mutable state inside a worker beyond
// the resolver's internally synchronized cache.
type netWorthAggregator struct {
	workers int
}

func newNetWorthAggregator(workers int) *netWorthAggregator {
	if workers < 1 {
		workers = 1
	}
	return &netWorthAggregator{workers: workers}
}

// aggregate computes one NetWorthPoint per sample date. Excluded accounts
// (IncludeInNetWorth == false) are converted only when a breakdown is
// requested and never contribute to the totals. The first missing exchange
// rate aborts the whole computation.
func (a *netWorthAggregator) aggregate(
	ctx context.Context,
	accounts []models.Account,
	entriesByAccount map[uuid.UUID][]models.BalanceEntry,
	spec models.SamplingSpec,
	targetCurrency string,
	resolver *exchangeRateResolver,
	includeBreakdown bool,
) ([]models.NetWorthPoint, models.HistoryDiagnostics, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Excluded accounts only matter for the breakdown; skipping them
	// otherwise avoids demanding rates for currencies the totals never use.
	work := make([]int, 0, len(accounts))
	for i := range accounts {
		if accounts[i].IncludeInNetWorth || includeBreakdown {
			work = append(work, i)
		}
	}

	series := make([]*accountSeries, len(accounts))
	jobs := make(chan int)
	errCh := make(chan error, 1)

	var wg sync.WaitGroup
	workers := a.workers
	if workers > len(work) {
		workers = len(work)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				s, err := buildAccountSeries(ctx, accounts[idx], entriesByAccount[accounts[idx].ID], spec.Dates, targetCurrency, resolver)
				if err != nil {
					select {
					case errCh <- err:
					default:
					}
					cancel()
					return
				}
				series[idx] = s
			}
		}()
	}

	for _, idx := range work {
		select {
		case jobs <- idx:
		case <-ctx.Done():
		}
	}
	close(jobs)
	wg.Wait()

	select {
	case err := <-errCh:
		return nil, models.HistoryDiagnostics{}, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, models.HistoryDiagnostics{}, err
	}

	return reduce(accounts, series, spec.Dates, includeBreakdown)
}

// buildAccountSeries sweeps one account's timeline across the ascending
// sample dates, converting each carried-forward balance at that same date's
// rate.
func buildAccountSeries(
	ctx context.Context,
	account models.Account,
	entries []models.BalanceEntry,
	dates []time.Time,
	targetCurrency string,
	resolver *exchangeRateResolver,
) (*accountSeries, error) {
	timeline := newBalanceTimeline(entries)
	s := &accountSeries{
		account: account,
		amounts: make([]decimal.Decimal, len(dates)),
		present: make([]bool, len(dates)),
	}

	for i, date := range dates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		amount, ok := timeline.LatestAtOrBefore(date)
		if !ok {
			continue
		}

		rate, approximated, err := resolver.Rate(account.Currency, targetCurrency, date)
		if err != nil {
			return nil, err
		}
		if approximated {
			s.approximated = true
		}

		s.amounts[i] = amount.Mul(rate)
		s.present[i] = true
	}
	return s, nil
}

// reduce combines per-account series into per-date totals. Iteration is in
// stored account order, so the output is deterministic.
func reduce(accounts []models.Account, series []*accountSeries, dates []time.Time, includeBreakdown bool) ([]models.NetWorthPoint, models.HistoryDiagnostics, error) {
	points := make([]models.NetWorthPoint, len(dates))
	currencies := make(map[string]struct{})
	diag := models.HistoryDiagnostics{AccountCount: len(accounts)}

	for _, s := range series {
		if s == nil {
			continue
		}
		currencies[s.account.Currency] = struct{}{}
		if s.approximated {
			diag.RateApproximated = true
		}
	}
	diag.CurrencyCount = len(currencies)

	for i, date := range dates {
		assets := decimal.Zero
		liabilities := decimal.Zero
		var breakdown []models.AccountContribution

		for _, s := range series {
			if s == nil || !s.present[i] {
				continue
			}

			if s.account.IncludeInNetWorth {
				if s.account.IsLiability() {
					liabilities = liabilities.Add(s.amounts[i])
				} else {
					assets = assets.Add(s.amounts[i])
				}
			}

			if includeBreakdown {
				breakdown = append(breakdown, models.AccountContribution{
					AccountID: s.account.ID,
					Name:      s.account.Name,
					Type:      s.account.Type,
					Currency:  s.account.Currency,
					Amount:    s.amounts[i],
					Included:  s.account.IncludeInNetWorth,
				})
			}
		}

		points[i] = models.NetWorthPoint{
			Date:             date,
			NetWorth:         assets.Sub(liabilities),
			TotalAssets:      assets,
			TotalLiabilities: liabilities,
			Accounts:         breakdown,
		}
	}

	return points, diag, nil
}
