package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

	// Local part is dot-separated segments without separators/quotes, or a
	// quoted string. Domain is a bracketed dotted-quad or dotted labels
	// ending in a TLD of at least two letters.
	emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)
)

// ID reports whether s is a well-formed entity identifier:
// exactly 24 hexadecimal characters, case-insensitive.
func ID(s string) bool {
	return idPattern.MatchString(s)
}

// Phone reports whether s is a 10-digit phone number with a
// nonzero numeric value.
func Phone(s string) bool {
	if len(s) != 10 {
		return false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return false
	}
	return n != 0
}

// Email reports whether s has a plausible local-part@domain shape.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// NormalizeURL repairs a submitted URL rather than rejecting it: values
// already carrying an http, https, or ftp scheme pass through unchanged,
// anything else gets http:// prepended.
func NormalizeURL(s string) string {
	if strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "ftp://") {
		return s
	}
	return "http://" + s
}
