package messageService

import (
	"fmt"
	"strconv"
	"strings"

	"wagerLedgerBot/models"
)

const (
	wagerPrefix       = "wager_"
	submitWagerPrefix = "submit_wager_"
	betListPrefix     = "bets_"
	settlePrefix      = "settle_bet_"
	settleConfirm     = "settle_confirm_"
)

// Page actions on the open-bet list.
const (
	PageFirst = "first"
	PagePrev  = "prev"
	PageNext  = "next"
	PageLast  = "last"
)

func WagerButtonID(betID string, side models.Side) string {
	return fmt.Sprintf("%s%s_%s", wagerPrefix, betID, side)
}

func SubmitWagerID(betID string, side models.Side) string {
	return fmt.Sprintf("%s%s_%s", submitWagerPrefix, betID, side)
}

func IsWagerButton(customID string) bool {
	return strings.HasPrefix(customID, wagerPrefix)
}

func IsSubmitWager(customID string) bool {
	return strings.HasPrefix(customID, submitWagerPrefix)
}

func IsBetListButton(customID string) bool {
	return strings.HasPrefix(customID, betListPrefix)
}

func ParseWagerButton(customID string) (string, models.Side, error) {
	return parseBetSide(customID, wagerPrefix)
}

func ParseSubmitWager(customID string) (string, models.Side, error) {
	return parseBetSide(customID, submitWagerPrefix)
}

func parseBetSide(customID, prefix string) (string, models.Side, error) {
	rest, ok := strings.CutPrefix(customID, prefix)
	if !ok {
		return "", "", fmt.Errorf("custom id %q does not start with %q", customID, prefix)
	}
	cut := strings.LastIndex(rest, "_")
	if cut <= 0 {
		return "", "", fmt.Errorf("malformed custom id %q", customID)
	}
	side := models.Side(rest[cut+1:])
	if !side.Valid() {
		return "", "", fmt.Errorf("unknown side in custom id %q", customID)
	}
	return rest[:cut], side, nil
}

// BetListButtonID encodes a pagination click: the action, the page the list
// was on and the member allowed to page it.
func BetListButtonID(action string, page int, userID string) string {
	return fmt.Sprintf("%s%s_%d_%s", betListPrefix, action, page, userID)
}

func ParseBetListButton(customID string) (action string, page int, userID string, err error) {
	parts := strings.Split(strings.TrimPrefix(customID, betListPrefix), "_")
	if len(parts) != 3 {
		return "", 0, "", fmt.Errorf("malformed custom id %q", customID)
	}

	switch parts[0] {
	case PageFirst, PagePrev, PageNext, PageLast:
	default:
		return "", 0, "", fmt.Errorf("unknown page action in %q", customID)
	}

	page, err = strconv.Atoi(parts[1])
	if err != nil || page < 0 {
		return "", 0, "", fmt.Errorf("malformed page in %q", customID)
	}
	return parts[0], page, parts[2], nil
}

func SettleButtonID(betID string) string {
	return settlePrefix + betID
}

func SettleConfirmID(betID string) string {
	return settleConfirm + betID
}

func IsSettleButton(customID string) bool {
	return strings.HasPrefix(customID, settlePrefix)
}

func IsSettleConfirm(customID string) bool {
	return strings.HasPrefix(customID, settleConfirm)
}

func ParseSettleButton(customID string) (string, error) {
	return parseBetID(customID, settlePrefix)
}

func ParseSettleConfirm(customID string) (string, error) {
	return parseBetID(customID, settleConfirm)
}

func parseBetID(customID, prefix string) (string, error) {
	betID, ok := strings.CutPrefix(customID, prefix)
	if !ok || betID == "" {
		return "", fmt.Errorf("malformed custom id %q", customID)
	}
	return betID, nil
}
