// Package security implements the cybersecurity analysis utilities:
// password strength scoring, phishing indicator analysis, WiFi usage
// recommendations, and URL reputation checks.
package security

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// PasswordReport is the outcome of a strength analysis. Score is a
// 0-100 percentage; Feedback lists one line per check, pass or fail.
type PasswordReport struct {
	Score    int
	Feedback []string
}

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// hasRepeatedRun reports whether s contains the same rune three or more
// times in a row. Go's RE2 engine has no backreferences, so this cannot
// be expressed as a regexp like `(.)\1{2,}`.
func hasRepeatedRun(s string) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if run > 0 && r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

var commonPasswords = []string{"password", "123456", "qwerty", "letmein"}

// CheckPassword scores a password additively: length, character-class
// coverage, and a special-character bonus, with penalties for repeated
// runs. Known common passwords zero the score outright.
func CheckPassword(password string) PasswordReport {
	score := 0
	var feedback []string

	// Length is measured in characters, not bytes.
	switch {
	case utf8.RuneCountInString(password) >= 12:
		score += 25
		feedback = append(feedback, "✅ Good length (12+ characters)")
	case utf8.RuneCountInString(password) >= 8:
		score += 15
		feedback = append(feedback, "⚠️ Consider longer password (12+ characters recommended)")
	default:
		feedback = append(feedback, "❌ Password too short (minimum 8 characters)")
	}

	if upperRe.MatchString(password) {
		score += 15
		feedback = append(feedback, "✅ Contains uppercase letters")
	} else {
		feedback = append(feedback, "❌ Add uppercase letters")
	}

	if lowerRe.MatchString(password) {
		score += 15
		feedback = append(feedback, "✅ Contains lowercase letters")
	} else {
		feedback = append(feedback, "❌ Add lowercase letters")
	}

	if digitRe.MatchString(password) {
		score += 15
		feedback = append(feedback, "✅ Contains numbers")
	} else {
		feedback = append(feedback, "❌ Add numbers")
	}

	if specialRe.MatchString(password) {
		score += 20
		feedback = append(feedback, "✅ Contains special characters")
	} else {
		feedback = append(feedback, "❌ Add special characters")
	}

	for _, common := range commonPasswords {
		if strings.ToLower(password) == common {
			score = 0
			feedback = append(feedback, "❌ This is a commonly used password - choose something unique")
			break
		}
	}

	if hasRepeatedRun(password) {
		score -= 10
		feedback = append(feedback, "❌ Avoid repeated characters")
	}

	if score > 100 {
		score = 100
	}
	return PasswordReport{Score: score, Feedback: feedback}
}
