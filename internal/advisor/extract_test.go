package advisor

import (
	"reflect"
	"testing"

	"github.com/kelechidev/hustlebot/internal/knowledge"
)

func TestHasIncomeIntent(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"I want to make money", true},
		{"help me start a business", true},
		{"I'm so broke right now", true},
		{"what's a good side hustle", true},
		{"hello there", false},
		{"what's the weather like", false},
	}
	for _, tt := range tests {
		if got := HasIncomeIntent(tt.input); got != tt.want {
			t.Errorf("HasIncomeIntent(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		input         string
		wantPath      Path
		wantUndecided bool
	}{
		{"I want to start a business", PathBusiness, false},
		{"1", PathBusiness, false},
		{"offering services sounds good", PathService, false},
		{"2", PathService, false},
		{"not sure, help me decide", PathUnset, true},
		{"3", PathUnset, true},
		{"i don't know", PathUnset, true},
		{"banana", PathUnset, false},
	}
	for _, tt := range tests {
		path, undecided := ClassifyPath(tt.input)
		if path != tt.wantPath || undecided != tt.wantUndecided {
			t.Errorf("ClassifyPath(%q) = (%v, %v), want (%v, %v)",
				tt.input, path, undecided, tt.wantPath, tt.wantUndecided)
		}
	}
}

func TestExtractCapital(t *testing.T) {
	tests := []struct {
		input    string
		want     int
		wantFound bool
	}{
		{"I have ₦20,000 saved", 20000, true},
		{"about 5000 naira", 5000, true},
		{"I have no money at all", 0, true},
		{"zero capital", 0, true},
		{"I'm completely broke", 0, true},
		{"I like teaching", 0, false},
	}
	for _, tt := range tests {
		got, found := ExtractCapital(tt.input)
		if got != tt.want || found != tt.wantFound {
			t.Errorf("ExtractCapital(%q) = (%d, %v), want (%d, %v)",
				tt.input, got, found, tt.want, tt.wantFound)
		}
	}
}

func TestExtractSkills(t *testing.T) {
	got := ExtractSkills("I'm good at writing and graphic design, plus some coding")
	want := []string{"writing", "design", "coding"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSkills = %v, want %v", got, want)
	}

	if skills := ExtractSkills("nothing in particular"); skills != nil {
		t.Errorf("expected no skills, got %v", skills)
	}
}

func TestMatchCommonProblem(t *testing.T) {
	tests := []struct {
		input       string
		wantProblem string
		wantFound   bool
	}{
		{"I have no money to invest", "I have no money to invest", true},
		{"I'm broke honestly", "I have no money to invest", true},
		{"school keeps me busy, I have no free time", "I have very little free time due to school", true},
		{"I have no skills at all", "I don't have any marketable skills", true},
		{"I need money urgently", "I need money urgently (this week/month)", true},
		{"I want to make money", "", false},
		{"hello there", "", false},
	}
	for _, tt := range tests {
		problem, found := MatchCommonProblem(tt.input)
		if found != tt.wantFound || problem.Problem != tt.wantProblem {
			t.Errorf("MatchCommonProblem(%q) = (%q, %v), want (%q, %v)",
				tt.input, problem.Problem, found, tt.wantProblem, tt.wantFound)
		}
	}
}

func TestProblemPhrasesAlignWithCatalog(t *testing.T) {
	if got, want := len(problemPhrases), len(knowledge.CommonProblems()); got != want {
		t.Fatalf("problemPhrases has %d entries, catalog has %d", got, want)
	}
}

func TestParseCatalogNumbers(t *testing.T) {
	tests := []struct {
		reply string
		want  []int
	}{
		{"10, 11, 12", []int{10, 11, 12}},
		{"The best matches are 2, 5 and 9.", []int{2, 5, 9}},
		{"1 2 3 4 5", []int{1, 2, 3}},
		{"no numbers here", nil},
	}
	for _, tt := range tests {
		if got := ParseCatalogNumbers(tt.reply, 3); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseCatalogNumbers(%q) = %v, want %v", tt.reply, got, tt.want)
		}
	}
}

func TestExpandRequest(t *testing.T) {
	if n, ok := ExpandRequest("expand on #2 please"); !ok || n != 2 {
		t.Errorf("ExpandRequest = (%d, %v), want (2, true)", n, ok)
	}
	if _, ok := ExpandRequest("tell me more"); ok {
		t.Error("expected no expand match")
	}
}

func TestSelectOpportunityByTitle(t *testing.T) {
	opp, ok := SelectOpportunity("tell me more about graphic design", nil)
	if !ok || opp.Title != "Graphic Design" {
		t.Fatalf("got (%q, %v), want Graphic Design", opp.Title, ok)
	}
}

func TestSelectOpportunityByOrdinal(t *testing.T) {
	services := knowledge.AllServices()
	shown := []knowledge.Opportunity{services[4], services[8], services[11]}

	// Ordinals index the last-shown subset, not the full catalog.
	opp, ok := SelectOpportunity("2", shown)
	if !ok || opp.Title != shown[1].Title {
		t.Fatalf("got (%q, %v), want %q", opp.Title, ok, shown[1].Title)
	}

	// Without a shown subset, ordinals fall back to the catalog.
	opp, ok = SelectOpportunity("1", nil)
	if !ok || opp.Title != "Web Development" {
		t.Fatalf("got (%q, %v), want Web Development", opp.Title, ok)
	}

	if _, ok := SelectOpportunity("maybe later", nil); ok {
		t.Error("expected no selection from vague input")
	}
}

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{500, "500"},
		{5000, "5,000"},
		{50000, "50,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := formatNaira(tt.n); got != tt.want {
			t.Errorf("formatNaira(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
