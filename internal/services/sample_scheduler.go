package services

import (
	"fmt"
	"time"

	"networth-tracker/internal/models"
)

// Adaptive strategy thresholds, in days of requested span.
const (
	adaptiveDailyMaxDays  = 31
	adaptiveWeeklyMaxDays = 180
)

// sampleScheduler implements SampleSchedulerInterface
type sampleScheduler struct{}

// NewSampleScheduler creates a new sample scheduler
func NewSampleScheduler() SampleSchedulerInterface {
	return &sampleScheduler{}
}

// Schedule resolves the period to a concrete [start, end] range, picks the
// effective granularity, generates the candidate dates, and decimates them
// to the point budget. The whole computation is deterministic for a fixed
// "today": repeated identical requests yield identical sample dates.
func (s *sampleScheduler) Schedule(period string, customStart, customEnd time.Time, strategy string, maxPoints int, today time.Time, earliestEntry time.Time, hasEarliest bool) (models.SamplingSpec, time.Time, time.Time, error) {
	today = models.DateOnly(today)

	start, end, err := resolveRange(period, customStart, customEnd, today, earliestEntry, hasEarliest)
	if err != nil {
		return models.SamplingSpec{}, time.Time{}, time.Time{}, err
	}

	effective := strategy
	if effective == "" || effective == models.StrategyAdaptive {
		effective = adaptiveStrategy(start, end)
	}

	var dates []time.Time
	switch effective {
	case models.StrategyDaily:
		dates = dailyDates(start, end)
	case models.StrategyWeekly:
		dates = steppedDates(start, end, func(d time.Time) time.Time { return d.AddDate(0, 0, -7) })
	case models.StrategyMonthly:
		dates = monthlyDates(start, end)
	default:
		return models.SamplingSpec{}, time.Time{}, time.Time{}, fmt.Errorf("%w: unknown sampling strategy %q", ErrInvalidRequest, strategy)
	}

	if len(dates) == 0 {
		dates = []time.Time{end}
	}

	dates = decimate(dates, maxPoints)

	return models.SamplingSpec{Strategy: effective, Dates: dates}, start, end, nil
}

// resolveRange turns a period preset (or custom range) into inclusive start
// and end days. End is clamped to today; ALL is bounded below by the oldest
// balance entry.
func resolveRange(period string, customStart, customEnd, today, earliestEntry time.Time, hasEarliest bool) (time.Time, time.Time, error) {
	end := today

	var start time.Time
	switch period {
	case models.Period1M:
		start = end.AddDate(0, -1, 0)
	case models.Period3M:
		start = end.AddDate(0, -3, 0)
	case models.Period6M:
		start = end.AddDate(0, -6, 0)
	case models.Period12M:
		start = end.AddDate(0, -12, 0)
	case models.PeriodAll:
		if hasEarliest {
			start = models.DateOnly(earliestEntry)
		} else {
			start = end
		}
	case models.PeriodCustom:
		start = models.DateOnly(customStart)
		end = models.DateOnly(customEnd)
		if end.After(today) {
			end = today
		}
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown period %q", ErrInvalidRequest, period)
	}

	if start.After(end) {
		start = end
	}
	return start, end, nil
}

// adaptiveStrategy picks the granularity from the span length.
func adaptiveStrategy(start, end time.Time) string {
	span := models.DaysBetween(start, end)
	switch {
	case span <= adaptiveDailyMaxDays:
		return models.StrategyDaily
	case span <= adaptiveWeeklyMaxDays:
		return models.StrategyWeekly
	default:
		return models.StrategyMonthly
	}
}

func dailyDates(start, end time.Time) []time.Time {
	dates := make([]time.Time, 0, models.DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// steppedDates walks backward from end so the end date is always on the
// grid (weekly sampling thereby anchors to end's weekday), then reverses
// and prepends start when the grid missed it.
func steppedDates(start, end time.Time, stepBack func(time.Time) time.Time) []time.Time {
	var reversed []time.Time
	for d := end; !d.Before(start); d = stepBack(d) {
		reversed = append(reversed, d)
	}

	dates := make([]time.Time, 0, len(reversed)+1)
	if n := len(reversed); n == 0 || !reversed[n-1].Equal(start) {
		dates = append(dates, start)
	}
	for i := len(reversed) - 1; i >= 0; i-- {
		dates = append(dates, reversed[i])
	}
	return dates
}

// monthlyDates walks backward month by month from end, anchored to end's
// day-of-month and clamped on shorter months (Jan 31 -> Feb 28 -> Mar 31).
func monthlyDates(start, end time.Time) []time.Time {
	anchorDay := end.Day()
	y, m, _ := end.Date()

	var reversed []time.Time
	for step := 0; ; step++ {
		month := time.Date(y, m-time.Month(step), 1, 0, 0, 0, 0, time.UTC)
		day := anchorDay
		if last := daysInMonth(month); day > last {
			day = last
		}
		d := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
		if d.Before(start) {
			break
		}
		reversed = append(reversed, d)
	}

	dates := make([]time.Time, 0, len(reversed)+1)
	if n := len(reversed); n == 0 || !reversed[n-1].Equal(start) {
		dates = append(dates, start)
	}
	for i := len(reversed) - 1; i >= 0; i-- {
		dates = append(dates, reversed[i])
	}
	return dates
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// decimate uniformly thins the candidate list to exactly maxPoints dates,
// always keeping the first and last. Indices are interpolated across the
// candidates so the kept set uses the whole budget. Purely positional, no
// randomness.
func decimate(dates []time.Time, maxPoints int) []time.Time {
	if maxPoints < 1 {
		maxPoints = 1
	}
	n := len(dates)
	if n <= maxPoints {
		return dates
	}
	if maxPoints == 1 {
		return []time.Time{dates[n-1]}
	}

	kept := make([]time.Time, maxPoints)
	for i := 0; i < maxPoints; i++ {
		kept[i] = dates[i*(n-1)/(maxPoints-1)]
	}
	return kept
}
