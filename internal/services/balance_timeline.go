package services

import (
	"sort"
	"time"

	"networth-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// balanceTimeline answers "latest balance at or before date X" queries over
// one account's sparse, date-ordered entries. A balance recorded on day D
// holds until superseded by a later entry (last observation carried forward).
//
// The timeline keeps an integer cursor into the pre-sorted entry slice. As
// long as queries arrive in ascending date order (the aggregation sweep),
// the cursor only advances, so a full pass over all sample dates costs
// O(samples + entries). A query older than the previous one falls back to a
// binary search, so correctness never depends on call order.
type balanceTimeline struct {
	entries []models.BalanceEntry
	cursor  int
}

// newBalanceTimeline builds a timeline over entries sorted ascending by
// date, normalizing each date to day granularity.
func newBalanceTimeline(entries []models.BalanceEntry) *balanceTimeline {
	t := &balanceTimeline{entries: make([]models.BalanceEntry, len(entries))}
	copy(t.entries, entries)
	for i := range t.entries {
		t.entries[i].Date = models.DateOnly(t.entries[i].Date)
	}
	sort.Slice(t.entries, func(i, j int) bool {
		return t.entries[i].Date.Before(t.entries[j].Date)
	})
	return t
}

// LatestAtOrBefore returns the amount of the most recent entry with
// date <= the given day. The boolean is false when no such entry exists:
// the account contributes nothing to that day and must not be treated as
// zero-with-confidence.
func (t *balanceTimeline) LatestAtOrBefore(date time.Time) (decimal.Decimal, bool) {
	day := models.DateOnly(date)

	// Rewind requests bypass the cursor. sort.Search finds the first entry
	// after day; the candidate is the one just before it.
	if t.cursor > 0 && t.entries[t.cursor-1].Date.After(day) {
		i := sort.Search(len(t.entries), func(i int) bool {
			return t.entries[i].Date.After(day)
		})
		if i == 0 {
			return decimal.Decimal{}, false
		}
		return t.entries[i-1].Amount, true
	}

	for t.cursor < len(t.entries) && !t.entries[t.cursor].Date.After(day) {
		t.cursor++
	}

	if t.cursor == 0 {
		return decimal.Decimal{}, false
	}
	return t.entries[t.cursor-1].Amount, true
}

// FirstEntryDate returns the date of the oldest entry, or false when the
// timeline is empty.
func (t *balanceTimeline) FirstEntryDate() (time.Time, bool) {
	if len(t.entries) == 0 {
		return time.Time{}, false
	}
	return t.entries[0].Date, true
}
