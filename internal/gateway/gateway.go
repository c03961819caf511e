// Package gateway wires the channels, the advisory engine, the security
// agent and the background services into one running process.
package gateway

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/kelechidev/hustlebot/internal/advisor"
	"github.com/kelechidev/hustlebot/internal/bus"
	"github.com/kelechidev/hustlebot/internal/channel"
	"github.com/kelechidev/hustlebot/internal/completion"
	"github.com/kelechidev/hustlebot/internal/config"
	"github.com/kelechidev/hustlebot/internal/cron"
	"github.com/kelechidev/hustlebot/internal/history"
	"github.com/kelechidev/hustlebot/internal/security"
)

const (
	// securityPrefix routes a message to the security agent instead of
	// the income advisor.
	securityPrefix = "/security"

	resetCommand  = "/reset"
	remindCommand = "/remind"

	resetReplyText = "Conversation saved and reset. Tell me what you'd like to work on next!"

	remindUsageText = "Usage: /remind <duration> <message>, e.g. /remind 24h Follow up with my first client"

	securityUsageText = "Ask me a security question after /security, e.g.:\n" +
		"• /security check my password \"MyP@ssw0rd\"\n" +
		"• /security is this email phishing: \"Urgent! Verify your account\"\n" +
		"• /security is https://example.com safe?"

	// dailyPruneExpr fires the retention job at 03:00 every day.
	dailyPruneExpr = "0 0 3 * * *"
)

// ClientFactory creates the completion client. Injectable for tests.
type ClientFactory func(cfg *config.Config) (completion.Client, error)

// Options customize gateway construction.
type Options struct {
	ClientFactory ClientFactory
	SignalChan    chan os.Signal // for testing signal handling
}

// DefaultClientFactory builds the provider-backed completion client.
func DefaultClientFactory(cfg *config.Config) (completion.Client, error) {
	return completion.NewOpenAIClient(completion.OpenAIConfig{
		APIKey:    cfg.Provider.APIKey,
		BaseURL:   cfg.Provider.BaseURL,
		Model:     cfg.Provider.Model,
		MaxTokens: cfg.Provider.MaxTokens,
	})
}

// session is the per-conversation state keyed by bus.SessionKey.
type session struct {
	advisor    *advisor.Session
	transcript []completion.Message
}

type Gateway struct {
	cfg      *config.Config
	bus      *bus.MessageBus
	channels *channel.ChannelManager
	engine   *advisor.Engine
	agent    *security.Agent
	store    *history.Store
	cron     *cron.Service

	mu       sync.Mutex
	sessions map[string]*session

	signalChan chan os.Signal // for testing
}

// New creates a Gateway with default options.
func New(cfg *config.Config) (*Gateway, error) {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions creates a Gateway with custom options for testing.
func NewWithOptions(cfg *config.Config, opts Options) (*Gateway, error) {
	g := &Gateway{
		cfg:        cfg,
		sessions:   make(map[string]*session),
		signalChan: opts.SignalChan,
	}

	g.bus = bus.NewMessageBus(config.DefaultBufSize)

	factory := opts.ClientFactory
	if factory == nil {
		factory = DefaultClientFactory
	}
	client, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("create completion client: %w", err)
	}

	g.engine = advisor.New(client, advisor.Options{
		MatchTemperature:    cfg.Advisor.MatchTemperature,
		GenerateTemperature: cfg.Advisor.GenerateTemperature,
	})
	g.agent = security.NewAgent(client, security.NewURLChecker(security.URLCheckerConfig{
		APIKey:  cfg.Security.VirusTotalAPIKey,
		Timeout: time.Duration(cfg.Security.URLCheckTimeout) * time.Second,
	}))

	g.store = history.NewStore(cfg.History.Path, cfg.History.MaxConversations)

	g.cron = cron.NewService(filepath.Join(config.ConfigDir(), "data", "cron", "jobs.json"))
	g.cron.OnJob = g.handleCronJob

	chMgr, err := channel.NewChannelManager(cfg.Channels, cfg.Gateway, g.bus)
	if err != nil {
		return nil, fmt.Errorf("create channel manager: %w", err)
	}
	g.channels = chMgr

	return g, nil
}

// Run starts every channel and the background services, then blocks
// until SIGINT/SIGTERM.
func (g *Gateway) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := g.channels.StartAll(ctx); err != nil {
		return fmt.Errorf("start channels: %w", err)
	}
	log.Printf("[gateway] channels started: %v", g.channels.EnabledChannels())

	if err := g.cron.Start(ctx); err != nil {
		log.Printf("[gateway] cron start warning: %v", err)
	}
	if g.cfg.History.RetentionDays > 0 {
		if _, err := g.cron.EnsurePruneJob("history-prune", dailyPruneExpr); err != nil {
			log.Printf("[gateway] ensure prune job warning: %v", err)
		}
	}

	go g.processLoop(ctx)

	log.Printf("[gateway] running on %s:%d", g.cfg.Gateway.Host, g.cfg.Gateway.Port)

	sigCh := g.signalChan
	if sigCh == nil {
		sigCh = make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	}
	<-sigCh

	log.Printf("[gateway] shutting down...")
	return g.Shutdown()
}

func (g *Gateway) processLoop(ctx context.Context) {
	for {
		select {
		case msg := <-g.bus.Inbound:
			log.Printf("[gateway] inbound from %s/%s: %s", msg.Channel, msg.SenderID, truncate(msg.Content, 80))

			reply := g.handleTurn(ctx, &msg)
			if reply != "" {
				g.bus.DispatchOutbound(bus.OutboundMessage{
					Channel: msg.Channel,
					ChatID:  msg.ChatID,
					Content: reply,
				})
			}
		case <-ctx.Done():
			return
		}
	}
}

// handleTurn runs one conversation turn and returns the full reply text.
func (g *Gateway) handleTurn(ctx context.Context, msg *bus.InboundMessage) string {
	content := strings.TrimSpace(msg.Content)
	if content == "" {
		return ""
	}

	sess := g.session(msg.SessionKey())

	if content == resetCommand {
		g.resetSession(msg.SessionKey(), sess)
		return resetReplyText
	}
	if args, ok := strings.CutPrefix(content, remindCommand); ok {
		return g.scheduleReminder(msg, args)
	}

	var reply string
	if input, ok := strings.CutPrefix(content, securityPrefix); ok {
		input = strings.TrimSpace(input)
		if input == "" {
			return securityUsageText
		}
		reply = collect(g.agent.Respond(ctx, input, sess.transcript))
	} else {
		reply = collect(g.engine.Respond(ctx, content, sess.advisor))
	}

	if reply != "" {
		g.mu.Lock()
		sess.transcript = append(sess.transcript,
			completion.User(content),
			completion.Assistant(reply),
		)
		g.mu.Unlock()
	}
	return reply
}

// session returns the state for a conversation key, creating it on
// first contact.
func (g *Gateway) session(key string) *session {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[key]
	if !ok {
		s = &session{advisor: advisor.NewSession()}
		g.sessions[key] = s
	}
	return s
}

// resetSession archives the transcript and starts the conversation
// over.
func (g *Gateway) resetSession(key string, sess *session) {
	g.mu.Lock()
	transcript := sess.transcript
	sess.transcript = nil
	sess.advisor.Reset()
	g.mu.Unlock()

	if _, err := g.store.Save("", transcriptTurns(transcript)); err != nil {
		log.Printf("[gateway] save history for %s warning: %v", key, err)
	}
}

// scheduleReminder queues a one-shot nudge back to the asking chat,
// e.g. "/remind 24h Follow up with my first client".
func (g *Gateway) scheduleReminder(msg *bus.InboundMessage, args string) string {
	fields := strings.SplitN(strings.TrimSpace(args), " ", 2)
	if len(fields) < 2 || fields[1] == "" {
		return remindUsageText
	}
	d, err := time.ParseDuration(fields[0])
	if err != nil || d <= 0 {
		return remindUsageText
	}

	if _, err := g.cron.ScheduleReminder(time.Now().Add(d), fields[1], msg.Channel, msg.ChatID); err != nil {
		log.Printf("[gateway] schedule reminder warning: %v", err)
		return "Could not schedule that reminder. Please try again."
	}
	return fmt.Sprintf("Got it! I'll remind you in %s.", d)
}

// handleCronJob routes scheduled jobs: prune jobs hit the history
// store, reminder jobs go out through the bus.
func (g *Gateway) handleCronJob(job cron.CronJob) (string, error) {
	switch job.Payload.Kind {
	case cron.KindPrune:
		days := g.cfg.History.RetentionDays
		if days <= 0 {
			return "retention disabled", nil
		}
		n, err := g.store.Prune(time.Duration(days) * 24 * time.Hour)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("pruned %d conversations", n), nil

	case cron.KindReminder:
		if job.Payload.Channel == "" || job.Payload.ChatID == "" {
			return "", fmt.Errorf("reminder job %s has no destination", job.ID)
		}
		g.bus.DispatchOutbound(bus.OutboundMessage{
			Channel: job.Payload.Channel,
			ChatID:  job.Payload.ChatID,
			Content: "⏰ " + job.Payload.Message,
		})
		return "delivered", nil

	default:
		return "", fmt.Errorf("unknown job kind %q", job.Payload.Kind)
	}
}

// Shutdown stops services and archives every open transcript.
func (g *Gateway) Shutdown() error {
	g.cron.Stop()
	_ = g.channels.StopAll()
	g.flushTranscripts()
	log.Printf("[gateway] shutdown complete")
	return nil
}

func (g *Gateway) flushTranscripts() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for key, sess := range g.sessions {
		if len(sess.transcript) == 0 {
			continue
		}
		if _, err := g.store.Save("", transcriptTurns(sess.transcript)); err != nil {
			log.Printf("[gateway] save history for %s warning: %v", key, err)
		}
		sess.transcript = nil
	}
}

func transcriptTurns(transcript []completion.Message) []history.Turn {
	turns := make([]history.Turn, 0, len(transcript))
	now := time.Now().Format(time.RFC3339)
	for _, m := range transcript {
		turns = append(turns, history.Turn{
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: now,
		})
	}
	return turns
}

// collect drains a response stream into a single string.
func collect(ch <-chan string) string {
	var sb strings.Builder
	for fragment := range ch {
		sb.WriteString(fragment)
	}
	return sb.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
