package common

import (
	"errors"

	"wagerLedgerBot/services/ledgerService"
)

// IsUserError reports whether err is the caller's doing rather than ours.
func IsUserError(err error) bool {
	var input *InputError
	if errors.As(err, &input) {
		return true
	}
	switch ledgerService.KindOf(err) {
	case ledgerService.KindInvalidArgument,
		ledgerService.KindNotFound,
		ledgerService.KindDuplicateWager,
		ledgerService.KindAlreadySettled,
		ledgerService.KindBetLocked:
		return true
	}
	return false
}

// InputError is a malformed command option or form field.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string {
	return e.Msg
}

func Invalid(msg string) error {
	return &InputError{Msg: msg}
}

// UserMessage turns err into the text shown to the member who caused it.
func UserMessage(err error) string {
	var input *InputError
	if errors.As(err, &input) {
		return input.Msg
	}

	var ledgerErr *ledgerService.Error
	if !errors.As(err, &ledgerErr) {
		return "Something went wrong, please try again later."
	}

	switch ledgerErr.Kind {
	case ledgerService.KindInvalidArgument, ledgerService.KindNotFound:
		if ledgerErr.Msg != "" {
			return upperFirst(ledgerErr.Msg) + "."
		}
		return "That request is not valid."
	case ledgerService.KindDuplicateWager:
		return "You already have a wager on this bet."
	case ledgerService.KindAlreadySettled:
		return "This bet has already been settled."
	case ledgerService.KindBetLocked:
		return "Betting on this bet is closed."
	case ledgerService.KindStorageFailure:
		if ledgerErr.Transient {
			return "The ledger is busy right now, please try again."
		}
		return "The ledger is unavailable right now, please try again later."
	}
	return "Something went wrong, please try again later."
}

func upperFirst(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
