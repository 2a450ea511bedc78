// Package ident allocates the human-readable business keys used throughout
// the CRM: C001 for customers, O001 for orders, F001 for follow-ups.
package ident

import (
	"fmt"
	"strconv"
	"strings"
)

// Entity prefixes.
const (
	CustomerPrefix = "C"
	OrderPrefix    = "O"
	FollowUpPrefix = "F"
)

// Format renders a business key as prefix + zero-padded integer. The pad is
// a minimum of 3 digits; larger suffixes keep all their digits (C1000 stays
// C1000, never truncated back to three).
func Format(prefix string, n int) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}

// Next returns the key following the given maximum numeric suffix.
// A suffix of 0 (empty table) yields prefix + "001".
func Next(prefix string, maxSuffix int) string {
	return Format(prefix, maxSuffix+1)
}

// Suffix parses the numeric portion of a business key. Returns 0 when the
// key does not carry a parseable suffix (user-supplied free-form IDs are
// tolerated; they simply never advance the allocator).
func Suffix(prefix, key string) int {
	rest, ok := strings.CutPrefix(key, prefix)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
