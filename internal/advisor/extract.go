package advisor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kelechidev/hustlebot/internal/knowledge"
)

// Keyword vocabularies for intent and slot extraction. Matching is plain
// substring search over the lowercased input; precision is deliberately
// traded for conversational robustness.
var (
	incomeKeywords = []string{
		"money", "income", "earn", "business", "service", "broke",
		"financial", "hustle", "startup", "freelance", "side",
	}

	skillKeywords = []string{
		"writing", "design", "coding", "teaching", "social media",
		"video", "photography", "speaking", "communication", "tech",
		"creative", "analytical", "people",
	}

	zeroCapitalPhrases = []string{"no money", "₦0", "zero", "broke", "nothing"}

	customKeywords = []string{"custom", "unique", "creative", "surprise", "different", "more ideas"}

	// problemPhrases is index-aligned with knowledge.CommonProblems.
	problemPhrases = [][]string{
		{"no money", "don't have money", "can't afford", "no capital", "i'm broke", "im broke"},
		{"no time", "no free time", "don't have time", "busy with school"},
		{"no skills", "don't have skills", "don't have any skills", "not good at anything"},
		{"urgent", "urgently", "need money fast", "quick cash", "this week"},
	}
)

var (
	capitalRe = regexp.MustCompile(`₦?(\d[\d,]*)`)
	intRe     = regexp.MustCompile(`\d+`)
	expandRe  = regexp.MustCompile(`expand.*?(\d+)`)
	ordinalRe = regexp.MustCompile(`\b([123])\b`)
)

// HasIncomeIntent reports whether the text mentions income generation.
func HasIncomeIntent(input string) bool {
	lower := strings.ToLower(input)
	for _, kw := range incomeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ClassifyPath interprets a path-selection answer. PathUnset means the
// answer was not understood; the boolean distinguishes an explicit
// "not sure" from an unrecognized reply.
func ClassifyPath(input string) (Path, bool) {
	lower := strings.ToLower(input)
	switch {
	case strings.Contains(lower, "business") || strings.Contains(input, "1"):
		return PathBusiness, false
	case strings.Contains(lower, "service") || strings.Contains(input, "2"):
		return PathService, false
	case strings.Contains(lower, "not sure") || strings.Contains(input, "3") || strings.Contains(lower, "don't know"):
		return PathUnset, true
	default:
		return PathUnset, false
	}
}

// ExtractCapital pulls a capital amount out of free text. A numeric match
// (with optional thousands separators) wins; failing that, zero-capital
// phrases resolve to 0. The boolean reports whether anything was found.
func ExtractCapital(input string) (int, bool) {
	if m := capitalRe.FindStringSubmatch(input); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		if n, err := strconv.Atoi(raw); err == nil {
			return n, true
		}
	}
	lower := strings.ToLower(input)
	for _, phrase := range zeroCapitalPhrases {
		if strings.Contains(lower, phrase) {
			return 0, true
		}
	}
	return 0, false
}

// ExtractSkills returns every vocabulary skill mentioned in the text, in
// vocabulary order. Duplicate mentions are not deduplicated.
func ExtractSkills(input string) []string {
	lower := strings.ToLower(input)
	var found []string
	for _, skill := range skillKeywords {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// MatchCommonProblem maps a stated blocker ("I have no money", "I need
// cash urgently") onto the catalog's problem-to-solution shortcuts.
func MatchCommonProblem(input string) (knowledge.CommonProblem, bool) {
	lower := strings.ToLower(input)
	problems := knowledge.CommonProblems()
	for i, phrases := range problemPhrases {
		for _, phrase := range phrases {
			if strings.Contains(lower, phrase) {
				return problems[i], true
			}
		}
	}
	return knowledge.CommonProblem{}, false
}

// WantsCustomIdeas reports whether the user is asking for regenerated or
// custom suggestions.
func WantsCustomIdeas(input string) bool {
	lower := strings.ToLower(input)
	for _, kw := range customKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExpandRequest matches "expand on #N" style requests against generated
// (non-catalog) options.
func ExpandRequest(input string) (int, bool) {
	m := expandRe.FindStringSubmatch(strings.ToLower(input))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseCatalogNumbers extracts up to max integer tokens from a model
// reply such as "10, 11, 12".
func ParseCatalogNumbers(reply string, max int) []int {
	var out []int
	for _, tok := range intRe.FindAllString(reply, -1) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		out = append(out, n)
		if len(out) == max {
			break
		}
	}
	return out
}

// SelectOpportunity resolves a user's choice against the subset last
// shown, falling back to the full catalog. Title substring match wins
// over small-ordinal selection.
func SelectOpportunity(input string, lastShown []knowledge.Opportunity) (knowledge.Opportunity, bool) {
	lower := strings.ToLower(input)

	all := knowledge.All()
	for _, opp := range all {
		if strings.Contains(lower, strings.ToLower(opp.Title)) {
			return opp, true
		}
	}

	m := ordinalRe.FindStringSubmatch(input)
	if m == nil {
		return knowledge.Opportunity{}, false
	}
	idx, _ := strconv.Atoi(m[1])
	idx--

	pool := lastShown
	if len(pool) == 0 {
		pool = all
	}
	if idx >= 0 && idx < len(pool) {
		return pool[idx], true
	}
	return knowledge.Opportunity{}, false
}
