// Package knowledge holds the static catalog of income opportunities the
// advisor recommends from. The catalog is defined at startup and never
// mutated; ordering is fixed so numbered menus stay stable across turns.
package knowledge

import (
	"strconv"
	"strings"
)

// Income is the projected earnings at the three fixed checkpoints.
type Income struct {
	Month1 string `json:"month1"`
	Month3 string `json:"month3"`
	Month6 string `json:"month6"`
}

// Opportunity is one way to earn income. Service entries set Capital (a
// free-form range); business entries set CapitalNeeded instead, which is
// what marks them as requiring startup capital.
type Opportunity struct {
	Title             string   `json:"title"`
	SkillsNeeded      []string `json:"skillsNeeded"`
	Capital           string   `json:"capital,omitempty"`
	CapitalNeeded     string   `json:"capitalNeeded,omitempty"`
	TimeToFirstIncome string   `json:"timeToFirstIncome"`
	PotentialIncome   Income   `json:"potentialIncome"`
	Tools             []string `json:"tools,omitempty"`
	ActionPlan        []string `json:"actionPlan"`
	TargetClients     []string `json:"targetClients,omitempty"`
	MarketingChannels []string `json:"marketingChannels,omitempty"`
	Risks             []string `json:"risks,omitempty"`
	SuccessTips       []string `json:"successTips,omitempty"`

	// Keywords feed the numbered catalog menu sent to the model during
	// recommendation matching.
	Keywords []string `json:"-"`
}

// CapitalDisplay returns whichever capital field the entry carries.
func (o Opportunity) CapitalDisplay() string {
	if o.CapitalNeeded != "" {
		return o.CapitalNeeded
	}
	if o.Capital != "" {
		return o.Capital
	}
	return "₦0"
}

// Category groups opportunities under a display name.
type Category struct {
	Name          string
	Opportunities []Opportunity
}

// Services returns the service-type categories in catalog order.
func Services() []Category { return serviceCategories }

// Businesses returns the business-type categories in catalog order.
func Businesses() []Category { return businessCategories }

// AllServices flattens the service catalog in category order then
// opportunity order. The positions are 0-based; the model-facing menu is
// 1-based.
func AllServices() []Opportunity {
	var out []Opportunity
	for _, c := range serviceCategories {
		out = append(out, c.Opportunities...)
	}
	return out
}

// All flattens services followed by businesses.
func All() []Opportunity {
	out := AllServices()
	for _, c := range businessCategories {
		out = append(out, c.Opportunities...)
	}
	return out
}

// ByCapital returns the opportunities affordable with maxCapital: zero
// capital restricts to services, up to ₦50,000 adds low-capital
// businesses, anything above opens the whole catalog.
func ByCapital(maxCapital int) []Opportunity {
	out := AllServices()
	switch {
	case maxCapital == 0:
	case maxCapital <= 50000:
		out = append(out, businessCategories[0].Opportunities...)
	default:
		for _, c := range businessCategories {
			out = append(out, c.Opportunities...)
		}
	}
	return out
}

// BySkills returns opportunities whose required skills mention any of the
// given keywords.
func BySkills(keywords []string) []Opportunity {
	var out []Opportunity
	for _, opp := range All() {
		skills := strings.ToLower(strings.Join(opp.SkillsNeeded, " "))
		for _, kw := range keywords {
			if kw != "" && strings.Contains(skills, strings.ToLower(kw)) {
				out = append(out, opp)
				break
			}
		}
	}
	return out
}

// ServiceCatalogPrompt renders the numbered service menu used in the
// recommendation-matching prompt. Numbering matches AllServices order.
func ServiceCatalogPrompt() string {
	var sb strings.Builder
	for i, opp := range AllServices() {
		sb.WriteString(strconv.Itoa(i+1) + ". " + opp.Title)
		if len(opp.Keywords) > 0 {
			sb.WriteString(" (" + strings.Join(opp.Keywords, ", ") + ")")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
