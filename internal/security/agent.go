package security

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/kelechidev/hustlebot/internal/completion"
)

const systemPrompt = `You are a cybersecurity expert. Provide helpful, accurate advice about cybersecurity, online safety, and digital protection.

Key instructions:
- Remember context from previous messages in this conversation
- Reference earlier points when relevant
- Provide practical cybersecurity guidance
- Be concise but informative
- If the user asks "what did I say earlier" or similar, reference their previous messages`

const agentErrorText = "I encountered an error answering that. Please check your API key and try again."

// historyWindow bounds how much transcript is replayed to the model.
const historyWindow = 10

var (
	quotedRe = regexp.MustCompile(`["']([^"']+)["']`)
	httpRe   = regexp.MustCompile(`https?://[^\s]+`)
)

// Agent routes security questions to the local analysis tools when the
// input matches a tool pattern, and to the model otherwise.
type Agent struct {
	client completion.Client
	urls   *URLChecker
}

// NewAgent builds an agent. urls may be nil; URL questions then fall
// through to the model.
func NewAgent(client completion.Client, urls *URLChecker) *Agent {
	return &Agent{client: client, urls: urls}
}

// Respond processes one security turn, emitting text fragments on the
// returned channel. Tool answers arrive as a single fragment; model
// answers stream. history is the prior transcript, oldest first.
func (a *Agent) Respond(ctx context.Context, input string, history []completion.Message) <-chan string {
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
		a.route(ctx, input, history, emit)
	}()
	return out
}

func (a *Agent) route(ctx context.Context, input string, history []completion.Message, emit func(string) bool) {
	lower := strings.ToLower(input)

	if strings.Contains(lower, "password") && strings.Contains(lower, "check") {
		if m := quotedRe.FindStringSubmatch(input); m != nil {
			emit(FormatPasswordReport(CheckPassword(m[1])))
			return
		}
	}

	if strings.Contains(lower, "phishing") || strings.Contains(lower, "email") {
		if m := quotedRe.FindStringSubmatch(input); m != nil {
			emit(FormatPhishingReport(AnalyzeEmail(m[1])))
			return
		}
	}

	if strings.Contains(lower, "wifi") {
		emit(WiFiAdviceText)
		return
	}

	if a.urls != nil && (strings.Contains(lower, "check") || strings.Contains(lower, "safe") || strings.Contains(lower, "scan")) {
		if m := httpRe.FindString(input); m != "" {
			emit(FormatURLReport(a.urls.Check(ctx, m)))
			return
		}
	}

	a.consult(ctx, input, history, emit)
}

func (a *Agent) consult(ctx context.Context, input string, history []completion.Message, emit func(string) bool) {
	messages := make([]completion.Message, 0, historyWindow+2)
	messages = append(messages, completion.System(systemPrompt))

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	messages = append(messages, history...)
	messages = append(messages, completion.User(input))

	err := a.client.CompleteStream(ctx, completion.Request{Messages: messages}, func(delta string) error {
		if !emit(delta) {
			return ctx.Err()
		}
		return nil
	})
	if err != nil {
		log.Printf("[security] consultation failed: %v", err)
		emit(agentErrorText)
	}
}

// FormatPasswordReport renders a password analysis as markdown.
func FormatPasswordReport(r PasswordReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Password Analysis:**\nStrength Score: %d%%\n\n**Recommendations:**\n", r.Score)
	for _, item := range r.Feedback {
		fmt.Fprintf(&sb, "• %s\n", item)
	}
	return sb.String()
}

// FormatPhishingReport renders a phishing analysis as markdown.
func FormatPhishingReport(r PhishingReport) string {
	return fmt.Sprintf("**Phishing Analysis:**\nRisk Level: %s\n\n%s", r.RiskLevel, r.Analysis)
}

// FormatURLReport renders a URL reputation check as markdown.
func FormatURLReport(r URLReport) string {
	if r.Status != URLStatusSuccess {
		return r.Message
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s **%s**\n\n%s\n\n", r.SafetyColor, r.SafetyStatus, r.Recommendation)
	fmt.Fprintf(&sb, "**Scan Results:**\n")
	fmt.Fprintf(&sb, "• Malicious: %d\n", r.Stats.Malicious)
	fmt.Fprintf(&sb, "• Suspicious: %d\n", r.Stats.Suspicious)
	fmt.Fprintf(&sb, "• Harmless: %d\n", r.Stats.Harmless)
	fmt.Fprintf(&sb, "• Total scans: %d\n", r.Stats.TotalScans)
	return sb.String()
}
