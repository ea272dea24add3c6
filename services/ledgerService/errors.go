package ledgerService

import (
	"errors"
	"fmt"

	"wagerLedgerBot/storage"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindNotFound
	KindDuplicateWager
	KindAlreadySettled
	KindBetLocked
	KindStorageFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindDuplicateWager:
		return "duplicate_wager"
	case KindAlreadySettled:
		return "already_settled"
	case KindBetLocked:
		return "bet_locked"
	case KindStorageFailure:
		return "storage_failure"
	default:
		return "unknown"
	}
}

// Error is the failure every ledger operation returns. Msg is safe to show
// to a user; Err carries the underlying driver error, if any.
type Error struct {
	Kind      Kind
	Op        string
	Msg       string
	Err       error
	Transient bool
}

func (e *Error) Error() string {
	text := "ledger"
	if e.Op != "" {
		text += ": " + e.Op
	}
	if e.Msg != "" {
		text += ": " + e.Msg
	} else {
		text += ": " + e.Kind.String()
	}
	if e.Err != nil {
		text += ": " + e.Err.Error()
	}
	return text
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels below, so errors.Is(err, ErrNotFound) works
// on any ledger error of that kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Msg != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrDuplicateWager  = &Error{Kind: KindDuplicateWager}
	ErrAlreadySettled  = &Error{Kind: KindAlreadySettled}
	ErrBetLocked       = &Error{Kind: KindBetLocked}
	ErrStorageFailure  = &Error{Kind: KindStorageFailure}
)

// KindOf returns the ledger kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsRetryable reports whether the caller may retry the operation that
// returned err. Only storage contention qualifies.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindStorageFailure && e.Transient
}

func invalidArgument(op string, format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidArgument, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func notFound(op string, format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func alreadySettled(op string, betID string) error {
	return &Error{Kind: KindAlreadySettled, Op: op, Msg: fmt.Sprintf("bet %s is already settled", betID)}
}

// classify turns whatever came back from a transaction into a ledger error.
// Ledger errors pass through untouched.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: KindStorageFailure, Op: op, Err: err, Transient: storage.IsTransient(err)}
}
