package project

import (
	"strconv"
	"strings"
)

// AmountOrZero parses a financial text field as a floating point value.
// Registry data is dirty; a value that does not parse contributes zero to
// aggregates instead of failing the whole report.
func AmountOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// ContainsFold reports whether s contains substr under Unicode case
// folding. An empty substr matches any s.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
