package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a client-supplied numeric string. An empty string is
// treated as zero; anything that does not parse is a validation failure
// rather than a NaN stored in the database.
func ParseAmount(field, value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", field, value)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%s must be a finite number", field)
	}
	return amount, nil
}

func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
