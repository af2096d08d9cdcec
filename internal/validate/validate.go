package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePin   = regexp.MustCompile(`^[0-9]{5,6}$`)
	rePhone = regexp.MustCompile(`^[0-9+\- ]{7,15}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces the backend's minimum length; everything else is the
// backend's call.
func Password(s string) bool {
	return len(s) >= 8 && len(s) <= 72
}

// Qty parses a quantity field, defaulting to 1 and clamping to 50 to avoid
// abuse. The cart itself does not clamp.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Price parses a non-negative decimal form field.
func Price(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil && f >= 0
}

// Stock parses a non-negative integer form field.
func Stock(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n >= 0
}

// ID parses a numeric resource identifier.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil && n > 0
}

func Pincode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePin.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePhone.MatchString(s)
}

// CSVList splits a comma-separated admin form field into trimmed,
// non-empty entries, preserving order.
func CSVList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
