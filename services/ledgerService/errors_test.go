package ledgerService

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestErrorMatching(t *testing.T) {
	err := notFound("get bet", "no bet with id %s", "b1")

	if !errors.Is(err, ErrNotFound) {
		t.Error("Expected errors.Is(err, ErrNotFound)")
	}
	if errors.Is(err, ErrDuplicateWager) {
		t.Error("Did not expect errors.Is(err, ErrDuplicateWager)")
	}

	wrapped := fmt.Errorf("handler: %w", err)
	if KindOf(wrapped) != KindNotFound {
		t.Errorf("Expected not_found through wrapping, got %s", KindOf(wrapped))
	}
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Error("Expected unknown kind for foreign errors")
	}
	if got := err.Error(); got != "ledger: get bet: no bet with id b1" {
		t.Errorf("Unexpected message %q", got)
	}
}

func TestClassify(t *testing.T) {
	if classify("op", nil) != nil {
		t.Error("Expected nil for nil")
	}

	ledgerErr := invalidArgument("op", "bad")
	if classify("other", ledgerErr) != ledgerErr {
		t.Error("Ledger errors must pass through unchanged")
	}

	deadlock := &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}
	err := classify("settle", deadlock)
	if KindOf(err) != KindStorageFailure || !IsRetryable(err) {
		t.Errorf("Expected retryable storage failure, got %v", err)
	}
	if !errors.Is(err, deadlock) {
		t.Error("Expected the driver error to stay reachable")
	}

	err = classify("settle", errors.New("disk full"))
	if KindOf(err) != KindStorageFailure || IsRetryable(err) {
		t.Errorf("Expected permanent storage failure, got %v", err)
	}

	if IsRetryable(ledgerErr) {
		t.Error("Domain errors are never retryable")
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindInvalidArgument: "invalid_argument",
		KindNotFound:        "not_found",
		KindDuplicateWager:  "duplicate_wager",
		KindAlreadySettled:  "already_settled",
		KindBetLocked:       "bet_locked",
		KindStorageFailure:  "storage_failure",
		KindUnknown:         "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
