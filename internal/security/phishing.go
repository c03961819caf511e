package security

import (
	"regexp"
	"strings"
)

// PhishingReport summarizes phishing indicator counts for a piece of
// email text. Indicators maps family name to hit count.
type PhishingReport struct {
	RiskLevel  string
	Analysis   string
	Indicators map[string]int
}

var (
	urgentRe   = regexp.MustCompile(`urgent|immediately|quick|action required`)
	linkRe     = regexp.MustCompile(`http://|https?://[^\s]+`)
	grammarRe  = regexp.MustCompile(`\b(?:their|there|you're|your)\b`)
	personalRe = regexp.MustCompile(`password|account|login|verify|confirm`)
)

// AnalyzeEmail counts four indicator families over the text and buckets
// the total into LOW, MEDIUM, or HIGH risk. The heuristic is
// intentionally crude; it is a first-pass triage, not a verdict.
func AnalyzeEmail(text string) PhishingReport {
	lower := strings.ToLower(text)

	indicators := map[string]int{
		"urgent_language":       len(urgentRe.FindAllString(lower, -1)),
		"suspicious_links":      len(linkRe.FindAllString(text, -1)),
		"grammar_errors":        len(grammarRe.FindAllString(lower, -1)),
		"request_personal_info": len(personalRe.FindAllString(lower, -1)),
	}

	total := 0
	for _, n := range indicators {
		total += n
	}

	report := PhishingReport{Indicators: indicators}
	switch {
	case total >= 5:
		report.RiskLevel = "HIGH"
		report.Analysis = "Multiple phishing indicators detected. Do not click links or provide information."
	case total >= 3:
		report.RiskLevel = "MEDIUM"
		report.Analysis = "Several suspicious elements found. Proceed with caution."
	default:
		report.RiskLevel = "LOW"
		report.Analysis = "Few indicators detected, but always verify sender authenticity."
	}
	return report
}
