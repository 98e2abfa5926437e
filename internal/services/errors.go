package services

import (
	"errors"
	"fmt"
	"time"

	"networth-tracker/internal/models"
)

// ErrInvalidRequest marks a malformed period/date-range combination. It is
// surfaced immediately, before any computation is attempted. Wrap it with
// the specific reason: fmt.Errorf("%w: ...", ErrInvalidRequest).
var ErrInvalidRequest = errors.New("invalid history request")

// MissingExchangeRateError is returned when no usable rate exists for a
// required currency pair: no rate at or before the sample date in either
// direction, and none after it either. One missing rate aborts the whole
// request; silently dropping an account's contribution would produce a
// misleading net-worth figure.
type MissingExchangeRateError struct {
	From string
	To   string
	Date time.Time
}

func (e *MissingExchangeRateError) Error() string {
	return fmt.Sprintf("no exchange rate available for %s/%s at or around %s",
		e.From, e.To, models.FormatDate(e.Date))
}

// IsMissingExchangeRate reports whether err is (or wraps) a missing-rate error.
func IsMissingExchangeRate(err error) bool {
	var target *MissingExchangeRateError
	return errors.As(err, &target)
}
