package advisor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/kelechidev/hustlebot/internal/completion"
	"github.com/kelechidev/hustlebot/internal/knowledge"
)

const (
	// DefaultMatchTemperature is used when matching free text against
	// the catalog; DefaultGenerateTemperature when inventing custom
	// opportunities.
	DefaultMatchTemperature    = 0.3
	DefaultGenerateTemperature = 0.7
)

// Options tune the engine's completion calls.
type Options struct {
	MatchTemperature    float64
	GenerateTemperature float64
}

// Engine runs one advisory turn at a time against caller-held session
// state. It holds no per-conversation state itself.
type Engine struct {
	client    completion.Client
	matchTemp float64
	genTemp   float64
}

// New builds an Engine on top of a completion client.
func New(client completion.Client, opts Options) *Engine {
	matchTemp := opts.MatchTemperature
	if matchTemp <= 0 {
		matchTemp = DefaultMatchTemperature
	}
	genTemp := opts.GenerateTemperature
	if genTemp <= 0 {
		genTemp = DefaultGenerateTemperature
	}
	return &Engine{client: client, matchTemp: matchTemp, genTemp: genTemp}
}

// Respond processes one user turn. It returns a forward-only channel of
// text fragments, closed when the turn is complete; the session's stage
// and profile are updated before the channel closes. Dropping the
// consumer and cancelling ctx is the only way to abort mid-stream.
func (e *Engine) Respond(ctx context.Context, input string, s *Session) <-chan string {
	out := make(chan string, 16)
	go func() {
		defer close(out)
		emit := func(text string) bool {
			if text == "" {
				return true
			}
			select {
			case out <- text:
				return true
			case <-ctx.Done():
				return false
			}
		}
		e.dispatch(ctx, input, s, emit)
	}()
	return out
}

type emitFunc func(string) bool

func (e *Engine) dispatch(ctx context.Context, input string, s *Session, emit emitFunc) {
	switch s.Stage {
	case StageInitial:
		e.handleInitial(input, s, emit)
	case StagePathSelection:
		e.handlePathSelection(input, s, emit)
	case StageGatheringInfo:
		e.handleGatheringInfo(ctx, input, s, emit)
	case StageRecommendations:
		e.recommend(ctx, input, s, emit)
	case StageActionPlanning:
		e.handleActionPlanning(ctx, input, s, emit)
	case StageGeneral:
		e.handleGeneral(ctx, input, s, emit)
	default:
		e.handleGeneral(ctx, input, s, emit)
	}
}

func (e *Engine) handleInitial(input string, s *Session, emit emitFunc) {
	// A stated blocker gets its shortcut answer before the path menu.
	if problem, ok := MatchCommonProblem(input); ok {
		s.Stage = StagePathSelection
		emit(renderProblemShortcut(problem) + pathMenuText)
		return
	}
	if HasIncomeIntent(input) {
		s.Stage = StagePathSelection
		emit(pathMenuText)
		return
	}
	emit(greetingText)
}

func (e *Engine) handlePathSelection(input string, s *Session, emit emitFunc) {
	path, undecided := ClassifyPath(input)
	switch {
	case path == PathBusiness:
		s.Profile.Path = PathBusiness
		s.Stage = StageGatheringInfo
		emit(businessPathText)
	case path == PathService:
		s.Profile.Path = PathService
		s.Stage = StageGatheringInfo
		emit(servicePathText)
	case undecided:
		s.Stage = StageGatheringInfo
		emit(renderDiscoveryQuestions())
	default:
		emit(pathRepromptText)
	}
}

func (e *Engine) handleGatheringInfo(ctx context.Context, input string, s *Session, emit emitFunc) {
	if capital, ok := ExtractCapital(input); ok {
		s.Profile.Capital = capital
	}
	if skills := ExtractSkills(input); len(skills) > 0 {
		s.Profile.Skills = append(s.Profile.Skills, skills...)
	}

	// Single-turn stage: recommendations run on the same input.
	s.Stage = StageRecommendations
	e.recommend(ctx, input, s, emit)
}

func (e *Engine) recommend(ctx context.Context, input string, s *Session, emit emitFunc) {
	if s.Profile.Path == PathService || s.Profile.Capital == 0 {
		e.recommendServices(ctx, input, s, emit)
		return
	}
	e.recommendBusinesses(s, emit)
}

// recommendServices is the hybrid path: ask the model to match the free
// text against the numbered service catalog, fall back to custom
// generation when it declines, mismatches, or fails.
func (e *Engine) recommendServices(ctx context.Context, input string, s *Session, emit emitFunc) {
	prompt := fmt.Sprintf(matchPromptTemplate, input, knowledge.ServiceCatalogPrompt())

	reply, err := e.client.Complete(ctx, completion.Request{
		Messages:    []completion.Message{completion.User(prompt)},
		Temperature: e.matchTemp,
	})
	if err != nil {
		log.Printf("[advisor] catalog matching failed: %v", err)
		e.generateCustom(ctx, input, s, emit)
		return
	}

	if strings.Contains(strings.ToUpper(reply), "GENERATE_CUSTOM") {
		e.generateCustom(ctx, input, s, emit)
		return
	}

	services := knowledge.AllServices()
	var picks []knowledge.Opportunity
	for _, n := range ParseCatalogNumbers(reply, 3) {
		if n >= 1 && n <= len(services) {
			picks = append(picks, services[n-1])
		}
	}
	if len(picks) == 0 {
		e.generateCustom(ctx, input, s, emit)
		return
	}

	var sb strings.Builder
	sb.WriteString("✨ **Perfect! Based on your skills, here are the BEST opportunities for you:**\n\n")
	for i, opp := range picks {
		sb.WriteString(renderSummary(i+1, opp))
	}
	sb.WriteString(matchedFollowupText)

	s.LastShown = picks
	s.Stage = StageActionPlanning
	emit(sb.String())
}

func (e *Engine) recommendBusinesses(s *Session, emit emitFunc) {
	capital := s.Profile.Capital

	var picks []knowledge.Opportunity
	for _, opp := range knowledge.ByCapital(capital) {
		if opp.CapitalNeeded == "" {
			continue
		}
		picks = append(picks, opp)
		if len(picks) == 3 {
			break
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🏢 **Based on your ₦%s capital, here are suitable businesses:**\n\n", formatNaira(capital))
	if len(picks) > 0 {
		for i, opp := range picks {
			sb.WriteString(renderBusinessSummary(i+1, opp))
		}
	} else {
		sb.WriteString(serviceFallbackText)
	}
	sb.WriteString(businessFollowupText)

	s.LastShown = picks
	s.Stage = StageActionPlanning
	emit(sb.String())
}

// generateCustom streams novel suggestions from the model. Any failure
// is swallowed and replaced with the fixed fallback list; the stage only
// advances on success.
func (e *Engine) generateCustom(ctx context.Context, input string, s *Session, emit emitFunc) {
	if !emit(customHeaderText) {
		return
	}

	prompt := fmt.Sprintf(customPromptTemplate, input, profileContext(s.Profile))
	err := e.client.CompleteStream(ctx, completion.Request{
		Messages:    []completion.Message{completion.User(prompt)},
		Temperature: e.genTemp,
	}, func(delta string) error {
		if !emit(delta) {
			return ctx.Err()
		}
		return nil
	})
	if err != nil {
		log.Printf("[advisor] custom generation failed: %v", err)
		emit(customFallbackText)
		return
	}

	emit(customFollowupText)
	s.Stage = StageActionPlanning
}

func (e *Engine) handleActionPlanning(ctx context.Context, input string, s *Session, emit emitFunc) {
	if WantsCustomIdeas(input) {
		e.generateCustom(ctx, input, s, emit)
		return
	}

	if _, ok := ExpandRequest(input); ok {
		emit(expandGuidanceText)
		return
	}

	if opp, ok := SelectOpportunity(input, s.LastShown); ok {
		emit(renderActionPlan(opp))
		return
	}

	emit(selectionClarifyText)
}

func (e *Engine) handleGeneral(ctx context.Context, input string, s *Session, emit emitFunc) {
	skills := "unknown"
	if len(s.Profile.Skills) > 0 {
		skills = strings.Join(s.Profile.Skills, ", ")
	}
	system := fmt.Sprintf(generalSystemTemplate, s.Profile.Path, formatNaira(s.Profile.Capital), skills)

	err := e.client.CompleteStream(ctx, completion.Request{
		Messages: []completion.Message{
			completion.System(system),
			completion.User(input),
		},
	}, func(delta string) error {
		if !emit(delta) {
			return ctx.Err()
		}
		return nil
	})
	if err != nil {
		log.Printf("[advisor] general conversation failed: %v", err)
		emit(generalErrorText)
	}
}

func profileContext(p Profile) string {
	var sb strings.Builder
	if p.Path != PathUnset {
		sb.WriteString("\nPreferred path: " + p.Path.String())
	}
	if p.Capital > 0 {
		fmt.Fprintf(&sb, "\nAvailable capital: ₦%s", formatNaira(p.Capital))
	}
	if len(p.Skills) > 0 {
		sb.WriteString("\nIdentified skills: " + strings.Join(p.Skills, ", "))
	}
	return sb.String()
}
