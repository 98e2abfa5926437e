package repositories

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEntryNotFound      = errors.New("balance entry not found")
	ErrDuplicateEntryDate = errors.New("balance entry already exists for this date")
	ErrRateNotFound       = errors.New("exchange rate not found")

	// ErrStoreUnavailable wraps infrastructure failures so callers can treat
	// them as retryable. This layer performs no writes on the engine path, so
	// a retry is always safe.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// storeError wraps an unexpected database error as a retryable store failure.
func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}

// isDuplicateKey reports whether err is a unique constraint violation. Gorm
// translates these to ErrDuplicatedKey on both drivers; raw pq errors from
// statements that bypass translation are matched by SQLSTATE 23505.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
