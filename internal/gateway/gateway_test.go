package gateway

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/kelechidev/hustlebot/internal/bus"
	"github.com/kelechidev/hustlebot/internal/completion"
	"github.com/kelechidev/hustlebot/internal/config"
	"github.com/kelechidev/hustlebot/internal/cron"
)

// fakeClient is a scripted completion client.
type fakeClient struct {
	completeReply string
	completeErr   error
	streamChunks  []string
	streamErr     error
}

func (f *fakeClient) Complete(_ context.Context, _ completion.Request) (string, error) {
	return f.completeReply, f.completeErr
}

func (f *fakeClient) CompleteStream(_ context.Context, _ completion.Request, cb completion.StreamHandler) error {
	for _, chunk := range f.streamChunks {
		if err := cb(chunk); err != nil {
			return err
		}
	}
	return f.streamErr
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg := config.DefaultConfig()
	cfg.Provider.APIKey = "test-key"
	cfg.History.Path = filepath.Join(t.TempDir(), "history.json")
	return cfg
}

func newTestGateway(t *testing.T, cfg *config.Config, client completion.Client) *Gateway {
	t.Helper()
	g, err := NewWithOptions(cfg, Options{
		ClientFactory: func(*config.Config) (completion.Client, error) {
			return client, nil
		},
	})
	if err != nil {
		t.Fatalf("NewWithOptions error: %v", err)
	}
	return g
}

func TestNew_RequiresAPIKey(t *testing.T) {
	cfg := testConfig(t)
	cfg.Provider.APIKey = ""
	if _, err := New(cfg); err == nil {
		t.Error("expected error without API key")
	}
}

func TestGateway_AdvisorGreeting(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})

	reply := g.handleTurn(context.Background(), &bus.InboundMessage{
		Channel: "webui", ChatID: "1", Content: "hello",
	})
	if !strings.Contains(reply, "Business & Income Generation Advisor") {
		t.Errorf("greeting missing, got: %q", reply)
	}
}

func TestGateway_AdvisorIncomeIntent(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})

	reply := g.handleTurn(context.Background(), &bus.InboundMessage{
		Channel: "webui", ChatID: "1", Content: "I want to make money",
	})
	if !strings.Contains(reply, "What interests you more?") {
		t.Errorf("path menu missing, got: %q", reply)
	}
}

func TestGateway_SecurityPasswordTool(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})

	reply := g.handleTurn(context.Background(), &bus.InboundMessage{
		Channel: "webui", ChatID: "1",
		Content: `/security check my password "Str0ng!Passw0rd"`,
	})
	if !strings.Contains(reply, "Password Analysis") {
		t.Errorf("expected password report, got: %q", reply)
	}
}

func TestGateway_SecurityConsultStreams(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{
		streamChunks: []string{"Use a password ", "manager."},
	})

	reply := g.handleTurn(context.Background(), &bus.InboundMessage{
		Channel: "webui", ChatID: "1",
		Content: "/security how do I stay safe online?",
	})
	if reply != "Use a password manager." {
		t.Errorf("reply = %q", reply)
	}
}

func TestGateway_SecurityUsageHint(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})

	reply := g.handleTurn(context.Background(), &bus.InboundMessage{
		Channel: "webui", ChatID: "1", Content: "/security",
	})
	if reply != securityUsageText {
		t.Errorf("reply = %q", reply)
	}
}

func TestGateway_EmptyMessageIgnored(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})

	if reply := g.handleTurn(context.Background(), &bus.InboundMessage{
		Channel: "webui", ChatID: "1", Content: "   ",
	}); reply != "" {
		t.Errorf("expected empty reply, got %q", reply)
	}
}

func TestGateway_TranscriptAccumulates(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})

	msg := &bus.InboundMessage{Channel: "webui", ChatID: "7", Content: "hello"}
	g.handleTurn(context.Background(), msg)

	sess := g.session(msg.SessionKey())
	if len(sess.transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(sess.transcript))
	}
	if sess.transcript[0].Role != completion.RoleUser || sess.transcript[0].Content != "hello" {
		t.Errorf("transcript[0] = %+v", sess.transcript[0])
	}
	if sess.transcript[1].Role != completion.RoleAssistant {
		t.Errorf("transcript[1] = %+v", sess.transcript[1])
	}
}

func TestGateway_ResetArchivesAndRestarts(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})
	ctx := context.Background()

	msg := &bus.InboundMessage{Channel: "webui", ChatID: "1", Content: "I want to make money"}
	g.handleTurn(ctx, msg)

	reply := g.handleTurn(ctx, &bus.InboundMessage{Channel: "webui", ChatID: "1", Content: "/reset"})
	if reply != resetReplyText {
		t.Errorf("reply = %q", reply)
	}

	conversations, err := g.store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll error: %v", err)
	}
	if len(conversations) != 1 {
		t.Fatalf("expected 1 archived conversation, got %d", len(conversations))
	}
	if conversations[0].Turns[0].Content != "I want to make money" {
		t.Errorf("archived turn = %+v", conversations[0].Turns[0])
	}

	// Back to the greeting after reset.
	reply = g.handleTurn(ctx, &bus.InboundMessage{Channel: "webui", ChatID: "1", Content: "hi"})
	if !strings.Contains(reply, "Business & Income Generation Advisor") {
		t.Errorf("expected fresh greeting, got %q", reply)
	}
}

func TestGateway_SessionsAreIsolated(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})
	ctx := context.Background()

	g.handleTurn(ctx, &bus.InboundMessage{Channel: "webui", ChatID: "1", Content: "I want to make money"})
	reply := g.handleTurn(ctx, &bus.InboundMessage{Channel: "telegram", ChatID: "1", Content: "hi"})

	// The telegram conversation is still at the greeting stage.
	if !strings.Contains(reply, "Business & Income Generation Advisor") {
		t.Errorf("expected greeting for separate session, got %q", reply)
	}
}

func TestGateway_RemindCommand(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})
	ctx := context.Background()

	reply := g.handleTurn(ctx, &bus.InboundMessage{
		Channel: "telegram", ChatID: "42", Content: "/remind 24h Follow up with my first client",
	})
	if !strings.Contains(reply, "remind you in 24h") {
		t.Errorf("reply = %q", reply)
	}

	jobs := g.cron.ListJobs()
	if len(jobs) != 1 {
		t.Fatalf("expected 1 scheduled job, got %d", len(jobs))
	}
	if jobs[0].Payload.Kind != cron.KindReminder || jobs[0].Payload.ChatID != "42" {
		t.Errorf("payload = %+v", jobs[0].Payload)
	}
	if jobs[0].Payload.Message != "Follow up with my first client" {
		t.Errorf("message = %q", jobs[0].Payload.Message)
	}
}

func TestGateway_RemindCommand_BadArgs(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})
	ctx := context.Background()

	for _, content := range []string{"/remind", "/remind soon call mum", "/remind 24h"} {
		reply := g.handleTurn(ctx, &bus.InboundMessage{
			Channel: "telegram", ChatID: "42", Content: content,
		})
		if reply != remindUsageText {
			t.Errorf("handleTurn(%q) = %q, want usage text", content, reply)
		}
	}
	if len(g.cron.ListJobs()) != 0 {
		t.Errorf("no jobs should be scheduled, got %d", len(g.cron.ListJobs()))
	}
}

func TestGateway_CronReminderDelivered(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})

	var got bus.OutboundMessage
	g.bus.SubscribeOutbound("telegram", func(msg bus.OutboundMessage) { got = msg })

	result, err := g.handleCronJob(cron.CronJob{
		ID: "r1",
		Payload: cron.Payload{
			Kind:    cron.KindReminder,
			Message: "Check in on your first client",
			Channel: "telegram",
			ChatID:  "42",
		},
	})
	if err != nil {
		t.Fatalf("handleCronJob error: %v", err)
	}
	if result != "delivered" {
		t.Errorf("result = %q", result)
	}
	if got.ChatID != "42" || !strings.Contains(got.Content, "Check in on your first client") {
		t.Errorf("outbound = %+v", got)
	}
}

func TestGateway_CronReminderNeedsDestination(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})

	if _, err := g.handleCronJob(cron.CronJob{
		ID:      "r2",
		Payload: cron.Payload{Kind: cron.KindReminder, Message: "ping"},
	}); err == nil {
		t.Error("expected error for reminder without destination")
	}
}

func TestGateway_CronPrune(t *testing.T) {
	cfg := testConfig(t)
	cfg.History.RetentionDays = 30
	g := newTestGateway(t, cfg, &fakeClient{})

	result, err := g.handleCronJob(cron.CronJob{Payload: cron.Payload{Kind: cron.KindPrune}})
	if err != nil {
		t.Fatalf("handleCronJob error: %v", err)
	}
	if result != "pruned 0 conversations" {
		t.Errorf("result = %q", result)
	}
}

func TestGateway_CronPruneDisabled(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})

	result, err := g.handleCronJob(cron.CronJob{Payload: cron.Payload{Kind: cron.KindPrune}})
	if err != nil {
		t.Fatalf("handleCronJob error: %v", err)
	}
	if result != "retention disabled" {
		t.Errorf("result = %q", result)
	}
}

func TestGateway_CronUnknownKind(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})

	if _, err := g.handleCronJob(cron.CronJob{Payload: cron.Payload{Kind: "mystery"}}); err == nil {
		t.Error("expected error for unknown job kind")
	}
}

func TestGateway_ProcessLoopRoundTrip(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})

	replies := make(chan bus.OutboundMessage, 1)
	g.bus.SubscribeOutbound("webui", func(msg bus.OutboundMessage) { replies <- msg })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go g.processLoop(ctx)

	g.bus.Inbound <- bus.InboundMessage{Channel: "webui", ChatID: "9", Content: "hello"}

	select {
	case msg := <-replies:
		if msg.ChatID != "9" || msg.Content == "" {
			t.Errorf("outbound = %+v", msg)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for reply")
	}
}

func TestGateway_FlushTranscriptsOnShutdown(t *testing.T) {
	g := newTestGateway(t, testConfig(t), &fakeClient{})

	g.handleTurn(context.Background(), &bus.InboundMessage{
		Channel: "webui", ChatID: "1", Content: "hello",
	})

	if err := g.Shutdown(); err != nil {
		t.Fatalf("Shutdown error: %v", err)
	}

	conversations, err := g.store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll error: %v", err)
	}
	if len(conversations) != 1 {
		t.Errorf("expected 1 archived conversation, got %d", len(conversations))
	}
}

func TestGateway_RunShutsDownOnSignal(t *testing.T) {
	cfg := testConfig(t)
	sigCh := make(chan os.Signal, 1)
	g, err := NewWithOptions(cfg, Options{
		ClientFactory: func(*config.Config) (completion.Client, error) {
			return &fakeClient{}, nil
		},
		SignalChan: sigCh,
	})
	if err != nil {
		t.Fatalf("NewWithOptions error: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background()) }()

	time.Sleep(100 * time.Millisecond)
	sigCh <- syscall.SIGTERM

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after signal")
	}
}
