package knowledge

import (
	"strings"
	"testing"
)

func TestAllServicesCount(t *testing.T) {
	services := AllServices()
	if len(services) != 16 {
		t.Fatalf("AllServices = %d entries, want 16", len(services))
	}
	if services[0].Title != "Web Development" {
		t.Errorf("first service = %q, want Web Development", services[0].Title)
	}
	if services[15].Title != "Personal Shopping & Errands" {
		t.Errorf("last service = %q, want Personal Shopping & Errands", services[15].Title)
	}
}

func TestAllOrdering(t *testing.T) {
	all := All()
	if len(all) != 20 {
		t.Fatalf("All = %d entries, want 20", len(all))
	}
	// Services come first, businesses after.
	if all[16].CapitalNeeded == "" {
		t.Errorf("entry 16 should be a business, got %q", all[16].Title)
	}
	for i, opp := range all[:16] {
		if opp.CapitalNeeded != "" {
			t.Errorf("entry %d (%s) should be a service", i, opp.Title)
		}
	}
}

func TestByCapitalTiers(t *testing.T) {
	tests := []struct {
		capital int
		want    int
	}{
		{0, 16},      // services only
		{20000, 19},  // services + low capital businesses
		{50000, 19},  // boundary stays in the low tier
		{100000, 20}, // everything
	}
	for _, tt := range tests {
		got := ByCapital(tt.capital)
		if len(got) != tt.want {
			t.Errorf("ByCapital(%d) = %d entries, want %d", tt.capital, len(got), tt.want)
		}
	}
}

func TestByCapitalZeroExcludesBusinesses(t *testing.T) {
	for _, opp := range ByCapital(0) {
		if opp.CapitalNeeded != "" {
			t.Errorf("ByCapital(0) returned business %q", opp.Title)
		}
	}
}

func TestBySkills(t *testing.T) {
	got := BySkills([]string{"teaching"})
	if len(got) == 0 {
		t.Fatal("expected at least one teaching match")
	}
	found := false
	for _, opp := range got {
		if opp.Title == "Online Tutoring" {
			found = true
		}
	}
	if !found {
		t.Error("teaching should match Online Tutoring")
	}

	if got := BySkills(nil); len(got) != 0 {
		t.Errorf("BySkills(nil) = %d entries, want 0", len(got))
	}
}

func TestServiceCatalogPrompt(t *testing.T) {
	prompt := ServiceCatalogPrompt()
	if !strings.Contains(prompt, "1. Web Development (coding, tech)") {
		t.Errorf("prompt missing first entry:\n%s", prompt)
	}
	if !strings.Contains(prompt, "16. Personal Shopping & Errands") {
		t.Errorf("prompt missing sixteenth entry:\n%s", prompt)
	}
	if strings.Contains(prompt, "17.") {
		t.Error("prompt should stop at 16 entries")
	}
}

func TestDiscoveryQuestions(t *testing.T) {
	sets := DiscoveryQuestions()
	if len(sets) != 4 {
		t.Fatalf("DiscoveryQuestions = %d sets, want 4", len(sets))
	}
	wantTopics := []string{"skills", "capital", "time", "goals"}
	for i, set := range sets {
		if set.Topic != wantTopics[i] {
			t.Errorf("set %d topic = %q, want %q", i, set.Topic, wantTopics[i])
		}
		if len(set.Questions) == 0 {
			t.Errorf("topic %q has no questions", set.Topic)
		}
	}
}

func TestCommonProblems(t *testing.T) {
	problems := CommonProblems()
	if len(problems) != 4 {
		t.Fatalf("CommonProblems = %d entries, want 4", len(problems))
	}
	for _, p := range problems {
		if p.Problem == "" || len(p.Solutions) == 0 {
			t.Errorf("problem %+v incomplete", p)
		}
	}
	if problems[0].Problem != "I have no money to invest" {
		t.Errorf("first problem = %q", problems[0].Problem)
	}
}

func TestCapitalDisplay(t *testing.T) {
	svc := Opportunity{Capital: "₦0 - ₦5,000"}
	if svc.CapitalDisplay() != "₦0 - ₦5,000" {
		t.Errorf("service display = %q", svc.CapitalDisplay())
	}
	biz := Opportunity{CapitalNeeded: "₦10,000 - ₦30,000"}
	if biz.CapitalDisplay() != "₦10,000 - ₦30,000" {
		t.Errorf("business display = %q", biz.CapitalDisplay())
	}
	empty := Opportunity{}
	if empty.CapitalDisplay() != "₦0" {
		t.Errorf("empty display = %q", empty.CapitalDisplay())
	}
}
