// Package advisor implements the multi-stage income advisory dialogue.
// The engine itself is stateless: all per-conversation state lives in a
// caller-held Session that is read and updated on every turn.
package advisor

import (
	"github.com/kelechidev/hustlebot/internal/knowledge"
)

// Stage is the discrete phase of the advisory conversation.
type Stage int

const (
	StageInitial Stage = iota
	StagePathSelection
	StageGatheringInfo
	StageRecommendations
	StageActionPlanning
	// StageGeneral is the explicit free-form fallback; sessions can be
	// parked here to defer everything to the model.
	StageGeneral
)

var stageNames = map[Stage]string{
	StageInitial:         "initial",
	StagePathSelection:   "path_selection",
	StageGatheringInfo:   "gathering_info",
	StageRecommendations: "recommendations",
	StageActionPlanning:  "action_planning",
	StageGeneral:         "general",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "general"
}

// ParseStage maps a stored stage name back to its enum value. Unknown
// names resolve to StageGeneral, matching the dispatch fallback.
func ParseStage(name string) Stage {
	for stage, n := range stageNames {
		if n == name {
			return stage
		}
	}
	return StageGeneral
}

// Path is the chosen income direction.
type Path int

const (
	PathUnset Path = iota
	PathBusiness
	PathService
)

func (p Path) String() string {
	switch p {
	case PathBusiness:
		return "business"
	case PathService:
		return "service"
	default:
		return "undecided"
	}
}

// Profile accumulates what the engine has learned about the student.
// Skills are append-only and may contain duplicates; Capital is
// last-write-wins.
type Profile struct {
	Path          Path              `json:"path"`
	Skills        []string          `json:"skills"`
	Capital       int               `json:"capital"`
	TimeAvailable string            `json:"timeAvailable,omitempty"`
	Goals         map[string]string `json:"goals,omitempty"`
	Interests     []string          `json:"interests,omitempty"`
}

// Session is the caller-held conversation state. LastShown remembers the
// opportunity subset most recently presented so that ordinal selection
// in action planning resolves against what the user actually saw.
type Session struct {
	Stage     Stage   `json:"stage"`
	Profile   Profile `json:"profile"`
	LastShown []knowledge.Opportunity `json:"-"`
}

// NewSession returns a fresh session at the initial stage.
func NewSession() *Session {
	return &Session{Stage: StageInitial}
}

// Reset clears the session back to its starting state.
func (s *Session) Reset() {
	s.Stage = StageInitial
	s.Profile = Profile{}
	s.LastShown = nil
}
