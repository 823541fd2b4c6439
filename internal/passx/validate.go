// Package passx implements password validation, the strength indicator
// buckets, and the random password generator. Everything here is pure; the
// package touches no storage and produces no side effects.
package passx

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/webstash/internal/common"
)

const (
	minLength = 8

	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"
)

// Result is the outcome of validating a password candidate.
// Errors preserves rule order; Score is 5 minus the number of failed rules,
// never below zero. Valid holds iff Score == 5.
type Result struct {
	Valid  bool
	Errors []string
	Score  int
}

// Validate checks a password against the five registration rules and
// returns the per-rule failures in a fixed order.
func Validate(password string) Result {
	var errs []string

	if utf8.RuneCountInString(password) < minLength {
		errs = append(errs, "Too short")
	}
	if !strings.ContainsAny(password, upperChars) {
		errs = append(errs, "Need uppercase letter")
	}
	if !strings.ContainsAny(password, lowerChars) {
		errs = append(errs, "Need lowercase letter")
	}
	if !strings.ContainsAny(password, digitChars) {
		errs = append(errs, "Need a number")
	}
	if !strings.ContainsAny(password, symbolChars) {
		errs = append(errs, "Need a symbol")
	}

	score := 5 - len(errs)
	if score < 0 {
		score = 0
	}

	return Result{Valid: len(errs) == 0, Errors: errs, Score: score}
}

// Strength buckets a password for the live indicator. An empty password
// yields an empty bucket (no indicator shown).
func Strength(password string) string {
	if password == "" {
		return ""
	}
	switch r := Validate(password); {
	case r.Score <= 2:
		return "weak"
	case r.Score == 5:
		return "strong"
	default:
		return "medium"
	}
}

// generateCharset is the alphabet the password generator draws from.
const generateCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+[]{}"

// Generate returns a random password of n characters. The selection is
// uniform enough for a demo; the modulo bias over an 80-character alphabet
// is negligible here.
func Generate(n int) string {
	if n <= 0 {
		return ""
	}
	random := common.GenerateRandByteArray(n)
	out := make([]byte, n)
	for i, b := range random {
		out[i] = generateCharset[int(b)%len(generateCharset)]
	}
	return string(out)
}
