package common

import (
	"strconv"
	"strings"

	"wagerLedgerBot/models"
)

// ParseSide accepts the side names used in commands and custom ids.
func ParseSide(value string) (models.Side, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sidea", "a", "1":
		return models.SideA, nil
	case "sideb", "b", "2":
		return models.SideB, nil
	}
	return "", Invalid("Side must be A or B.")
}

func ParseOutcome(value string) (models.BetOutcome, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sidea", "a", "1":
		return models.BetOutcomeSideA, nil
	case "sideb", "b", "2":
		return models.BetOutcomeSideB, nil
	case "void", "cancel", "cancelled":
		return models.BetOutcomeVoid, nil
	}
	return "", Invalid("Outcome must be A, B or void.")
}

// ParseStake reads a whole, positive number of points.
func ParseStake(value string) (int64, error) {
	stake, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || stake <= 0 {
		return 0, Invalid("Invalid wager amount. Please enter a positive whole number.")
	}
	return stake, nil
}

// ParseOdds reads decimal odds, accepting a comma as the decimal mark.
func ParseOdds(value string) (float64, error) {
	odds, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(value), ",", "."), 64)
	if err != nil || odds <= 0 {
		return 0, Invalid("Odds must be a number greater than zero, e.g. 1.85.")
	}
	return odds, nil
}
