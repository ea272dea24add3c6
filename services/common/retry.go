package common

import (
	"time"

	"wagerLedgerBot/services/ledgerService"
)

const retryAttempts = 3

var retryBackoff = 50 * time.Millisecond

// WithRetry runs fn again when the ledger reports transient contention,
// up to three attempts in total with a growing pause between them.
func WithRetry[T any](fn func() (T, error)) (T, error) {
	var (
		result T
		err    error
	)
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		result, err = fn()
		if err == nil || !ledgerService.IsRetryable(err) {
			return result, err
		}
		if attempt < retryAttempts {
			time.Sleep(time.Duration(attempt) * retryBackoff)
		}
	}
	return result, err
}
