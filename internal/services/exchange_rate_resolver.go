package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

// exchangeRateResolver answers "rate in effect on day X" queries for one
// history request. Each currency pair's history is batch-fetched once and
// resolved in memory; individual (pair, day) lookups are cached for the
// duration of the request so accounts sharing a currency never repeat work.
//
// Resolution order for from->to on day d:
//  1. from == to: rate 1, no lookup.
//  2. Most recent direct rate with date <= d.
//  3. Most recent inverse rate with date <= d, inverted.
//  4. Earliest direct rate after d (boundary approximation, flagged).
//  5. Earliest inverse rate after d, inverted (flagged).
//  6. MissingExchangeRateError.
//
// The resolver is safe for concurrent use by the aggregation workers. Cache
// population is last-write-wins; the value for a given key is deterministic,
// so duplicate computation is harmless.
type exchangeRateResolver struct {
	rateRepo repositories.ExchangeRateRepositoryInterface
	endDate  time.Time

	mu       sync.Mutex
	pairs    map[string]*pairHistory
	resolved map[string]resolvedRate
}

// pairHistory is one pair's batch-fetched rate snapshot: everything at or
// before the request's end date, plus the first rate after it (for the
// boundary-approximation fallback when the pair has no history inside the
// requested range at all).
type pairHistory struct {
	rates    []models.ExchangeRate
	afterEnd *models.ExchangeRate
}

type resolvedRate struct {
	rate         decimal.Decimal
	approximated bool
	err          error
}

func newExchangeRateResolver(rateRepo repositories.ExchangeRateRepositoryInterface, endDate time.Time) *exchangeRateResolver {
	return &exchangeRateResolver{
		rateRepo: rateRepo,
		endDate:  models.DateOnly(endDate),
		pairs:    make(map[string]*pairHistory),
		resolved: make(map[string]resolvedRate),
	}
}

// Rate returns the conversion rate from one currency to another as of the
// given day. The boolean reports whether a fallback (non-exact-date) rate
// was used.
func (r *exchangeRateResolver) Rate(from, to string, date time.Time) (decimal.Decimal, bool, error) {
	if from == to {
		return decimal.NewFromInt(1), false, nil
	}

	day := models.DateOnly(date)
	key := fmt.Sprintf("%s/%s@%s", from, to, models.FormatDate(day))

	r.mu.Lock()
	if cached, ok := r.resolved[key]; ok {
		r.mu.Unlock()
		return cached.rate, cached.approximated, cached.err
	}

	direct, err := r.pairLocked(from, to)
	if err != nil {
		r.mu.Unlock()
		return decimal.Decimal{}, false, err
	}
	inverse, err := r.pairLocked(to, from)
	if err != nil {
		r.mu.Unlock()
		return decimal.Decimal{}, false, err
	}

	result := resolve(direct, inverse, from, to, day)
	r.resolved[key] = result
	r.mu.Unlock()

	return result.rate, result.approximated, result.err
}

// pairLocked returns the batch-fetched history for a pair, loading it on
// first use. Caller holds r.mu.
func (r *exchangeRateResolver) pairLocked(base, quote string) (*pairHistory, error) {
	key := base + "/" + quote
	if h, ok := r.pairs[key]; ok {
		return h, nil
	}

	rates, err := r.rateRepo.ListByPair(base, quote, r.endDate)
	if err != nil {
		return nil, err
	}

	h := &pairHistory{rates: rates}
	for i := range h.rates {
		h.rates[i].Date = models.DateOnly(h.rates[i].Date)
	}
	sort.Slice(h.rates, func(i, j int) bool {
		return h.rates[i].Date.Before(h.rates[j].Date)
	})

	afterEnd, err := r.rateRepo.FirstAfter(base, quote, r.endDate)
	if err != nil && !errors.Is(err, repositories.ErrRateNotFound) {
		return nil, err
	}
	if afterEnd != nil {
		afterEnd.Date = models.DateOnly(afterEnd.Date)
		h.afterEnd = afterEnd
	}

	r.pairs[key] = h
	return h, nil
}

// resolve applies the documented fallback chain over two in-memory snapshots.
func resolve(direct, inverse *pairHistory, from, to string, day time.Time) resolvedRate {
	if rate, ok := direct.latestAtOrBefore(day); ok {
		return resolvedRate{rate: rate}
	}
	if rate, ok := inverse.latestAtOrBefore(day); ok {
		return resolvedRate{rate: invert(rate)}
	}
	if rate, ok := direct.earliestAfter(day); ok {
		return resolvedRate{rate: rate, approximated: true}
	}
	if rate, ok := inverse.earliestAfter(day); ok {
		return resolvedRate{rate: invert(rate), approximated: true}
	}
	return resolvedRate{err: &MissingExchangeRateError{From: from, To: to, Date: day}}
}

func (h *pairHistory) latestAtOrBefore(day time.Time) (decimal.Decimal, bool) {
	i := sort.Search(len(h.rates), func(i int) bool {
		return h.rates[i].Date.After(day)
	})
	if i == 0 {
		return decimal.Decimal{}, false
	}
	return h.rates[i-1].Rate, true
}

func (h *pairHistory) earliestAfter(day time.Time) (decimal.Decimal, bool) {
	i := sort.Search(len(h.rates), func(i int) bool {
		return h.rates[i].Date.After(day)
	})
	if i < len(h.rates) {
		return h.rates[i].Rate, true
	}
	if h.afterEnd != nil {
		return h.afterEnd.Rate, true
	}
	return decimal.Decimal{}, false
}

func invert(rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Div(rate)
}
