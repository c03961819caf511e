package advisor

import (
	"fmt"
	"strings"

	"github.com/kelechidev/hustlebot/internal/knowledge"
)

// renderDiscoveryQuestions lays out the guided-assessment questions
// asked when a student cannot pick a path.
func renderDiscoveryQuestions() string {
	var sb strings.Builder
	sb.WriteString(undecidedIntroText)
	for i, set := range knowledge.DiscoveryQuestions() {
		topic := strings.ToUpper(set.Topic[:1]) + set.Topic[1:]
		fmt.Fprintf(&sb, "**Question %d: %s**\n", i+1, topic)
		for _, q := range set.Questions {
			fmt.Fprintf(&sb, "• %s\n", q)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(undecidedOutroText)
	return sb.String()
}

// renderProblemShortcut answers a recognized blocker with its proven
// directions.
func renderProblemShortcut(p knowledge.CommonProblem) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "💪 **\"%s\" - I hear this a lot, and it's solvable!**\n\n", p.Problem)
	sb.WriteString("**Here's what works for students in your situation:**\n")
	for _, solution := range p.Solutions {
		fmt.Fprintf(&sb, "• %s\n", solution)
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderSummary(n int, opp knowledge.Opportunity) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%d. %s** ⭐\n", n, opp.Title)
	fmt.Fprintf(&sb, "💰 Potential: %s (Month 1) → %s (Month 6)\n",
		opp.PotentialIncome.Month1, opp.PotentialIncome.Month6)
	fmt.Fprintf(&sb, "⏱️ Time to first income: %s\n", opp.TimeToFirstIncome)
	fmt.Fprintf(&sb, "💵 Capital needed: %s\n", opp.CapitalDisplay())
	skills := opp.SkillsNeeded
	if len(skills) > 3 {
		skills = skills[:3]
	}
	fmt.Fprintf(&sb, "📚 Skills needed: %s\n\n", strings.Join(skills, ", "))
	return sb.String()
}

func renderBusinessSummary(n int, opp knowledge.Opportunity) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%d. %s**\n", n, opp.Title)
	fmt.Fprintf(&sb, "💰 Potential: %s (Month 1) → %s (Month 6)\n",
		opp.PotentialIncome.Month1, opp.PotentialIncome.Month6)
	fmt.Fprintf(&sb, "💵 Capital needed: %s\n", opp.CapitalNeeded)
	fmt.Fprintf(&sb, "⏱️ Time to start: %s\n\n", opp.TimeToFirstIncome)
	return sb.String()
}

// renderActionPlan expands an opportunity into the full step-by-step
// guide shown once the student commits to one.
func renderActionPlan(opp knowledge.Opportunity) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🎯 **ACTION PLAN: %s**\n\n", opp.Title)

	fmt.Fprintf(&sb, "💰 **Income Potential:**\n")
	fmt.Fprintf(&sb, "• Month 1: %s\n", opp.PotentialIncome.Month1)
	fmt.Fprintf(&sb, "• Month 3: %s\n", opp.PotentialIncome.Month3)
	fmt.Fprintf(&sb, "• Month 6: %s\n\n", opp.PotentialIncome.Month6)

	fmt.Fprintf(&sb, "💵 **Capital Needed:** %s\n", opp.CapitalDisplay())
	fmt.Fprintf(&sb, "⏱️ **Time to First Income:** %s\n\n", opp.TimeToFirstIncome)

	if len(opp.SkillsNeeded) > 0 {
		fmt.Fprintf(&sb, "📚 **Skills Needed:**\n")
		for _, skill := range opp.SkillsNeeded {
			fmt.Fprintf(&sb, "• %s\n", skill)
		}
		sb.WriteString("\n")
	}

	if len(opp.Tools) > 0 {
		fmt.Fprintf(&sb, "🛠️ **Tools You'll Use:**\n")
		for _, tool := range opp.Tools {
			fmt.Fprintf(&sb, "• %s\n", tool)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "📋 **Step-by-Step Action Plan:**\n")
	for i, step := range opp.ActionPlan {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}
	sb.WriteString("\n")

	targets := opp.TargetClients
	if len(targets) == 0 {
		targets = []string{"General public"}
	}
	fmt.Fprintf(&sb, "🎯 **Target Clients:** %s\n\n", strings.Join(targets, ", "))

	channels := opp.MarketingChannels
	if len(channels) == 0 {
		channels = []string{"Social media", "Word of mouth"}
	}
	fmt.Fprintf(&sb, "📣 **Where to Find Clients:**\n")
	for _, ch := range channels {
		fmt.Fprintf(&sb, "• %s\n", ch)
	}
	sb.WriteString("\n")

	if len(opp.Risks) > 0 {
		fmt.Fprintf(&sb, "⚠️ **Risks to Watch:**\n")
		for _, risk := range opp.Risks {
			fmt.Fprintf(&sb, "• %s\n", risk)
		}
		sb.WriteString("\n")
	}

	if len(opp.SuccessTips) > 0 {
		fmt.Fprintf(&sb, "💡 **Success Tips:**\n")
		for _, tip := range opp.SuccessTips {
			fmt.Fprintf(&sb, "• %s\n", tip)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("**Ready to start? Take the first step today!** 🚀\n")
	sb.WriteString("_Ask me anything about this plan, or say \"show me options again\" to explore more._\n")
	return sb.String()
}

// formatNaira renders an amount with thousands separators, no symbol.
func formatNaira(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
