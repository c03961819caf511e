package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/kelechidev/hustlebot/internal/completion"
	"github.com/kelechidev/hustlebot/internal/config"
	"github.com/kelechidev/hustlebot/internal/gateway"
	"github.com/kelechidev/hustlebot/internal/history"
)

// fakeClient is a scripted completion client.
type fakeClient struct {
	completeReply string
	streamChunks  []string
}

func (f *fakeClient) Complete(_ context.Context, _ completion.Request) (string, error) {
	return f.completeReply, nil
}

func (f *fakeClient) CompleteStream(_ context.Context, _ completion.Request, cb completion.StreamHandler) error {
	for _, chunk := range f.streamChunks {
		if err := cb(chunk); err != nil {
			return err
		}
	}
	return nil
}

func fakeFactory(client completion.Client) gateway.ClientFactory {
	return func(*config.Config) (completion.Client, error) {
		return client, nil
	}
}

func setupEnv(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("USERPROFILE", tmpDir)
	for _, key := range []string{
		"HUSTLEBOT_API_KEY", "GROQ_API_KEY", "OPENAI_API_KEY",
		"HUSTLEBOT_BASE_URL", "HUSTLEBOT_MODEL", "HUSTLEBOT_TELEGRAM_TOKEN",
		"VIRUSTOTAL_API_KEY", "HUSTLEBOT_HISTORY_PATH", "HUSTLEBOT_PORT",
	} {
		t.Setenv(key, "")
	}
	return tmpDir
}

// captureStdout runs fn and returns what it printed.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), err
}

func TestInit(t *testing.T) {
	if rootCmd == nil || chatCmd == nil || gatewayCmd == nil || onboardCmd == nil ||
		statusCmd == nil || checkurlCmd == nil || historyCmd == nil {
		t.Fatal("commands should not be nil")
	}

	if chatCmd.Flags().Lookup("message") == nil {
		t.Error("message flag should exist")
	}
	if chatCmd.Flags().Lookup("security") == nil {
		t.Error("security flag should exist")
	}
	if historyCmd.Commands() == nil || len(historyCmd.Commands()) != 4 {
		t.Errorf("history should have 4 subcommands, got %d", len(historyCmd.Commands()))
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", "not set"},
		{"short", "set"},
		{"gsk_test_key_12345678", "gsk_...5678"},
	}
	for _, tt := range tests {
		if got := maskKey(tt.key); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestRunOnboard(t *testing.T) {
	tmpDir := setupEnv(t)

	output, err := captureStdout(t, func() error {
		return runOnboard(&cobra.Command{}, nil)
	})
	if err != nil {
		t.Errorf("runOnboard error: %v", err)
	}

	cfgPath := filepath.Join(tmpDir, ".hustlebot", "config.json")
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}
	dataDir := filepath.Join(tmpDir, ".hustlebot", "data")
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Error("data dir was not created")
	}
	if !strings.Contains(output, "Created config") {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestRunOnboard_AlreadyExists(t *testing.T) {
	tmpDir := setupEnv(t)

	cfgDir := filepath.Join(tmpDir, ".hustlebot")
	os.MkdirAll(cfgDir, 0755)
	os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte("{}"), 0644)

	output, err := captureStdout(t, func() error {
		return runOnboard(&cobra.Command{}, nil)
	})
	if err != nil {
		t.Errorf("runOnboard error: %v", err)
	}
	if !strings.Contains(output, "Config already exists") {
		t.Errorf("expected 'Config already exists', got: %s", output)
	}
}

func TestRunStatus(t *testing.T) {
	setupEnv(t)

	output, err := captureStdout(t, func() error {
		return runStatus(&cobra.Command{}, nil)
	})
	if err != nil {
		t.Errorf("runStatus error: %v", err)
	}

	for _, want := range []string{
		"Config:",
		"API Key: not set",
		"Telegram: enabled=",
		"WebUI: enabled=",
		"VirusTotal: not configured",
		"History:",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("missing %q in output: %s", want, output)
		}
	}
}

func TestRunStatus_WithAPIKey(t *testing.T) {
	setupEnv(t)
	t.Setenv("HUSTLEBOT_API_KEY", "gsk_test_key_12345678")

	output, err := captureStdout(t, func() error {
		return runStatus(&cobra.Command{}, nil)
	})
	if err != nil {
		t.Errorf("runStatus error: %v", err)
	}
	if !strings.Contains(output, "gsk_...5678") {
		t.Errorf("API key should be masked in output: %s", output)
	}
}

func TestRunChat_NoAPIKey(t *testing.T) {
	setupEnv(t)

	err := runChat(&cobra.Command{}, nil)
	if err == nil {
		t.Fatal("expected error when API key is not set")
	}
	if !strings.Contains(err.Error(), "API key not set") {
		t.Errorf("error should mention API key: %v", err)
	}
}

func TestRunGateway_NoAPIKey(t *testing.T) {
	setupEnv(t)

	err := runGateway(&cobra.Command{}, nil)
	if err == nil {
		t.Fatal("expected error when API key is not set")
	}
	if !strings.Contains(err.Error(), "API key not set") {
		t.Errorf("error should mention API key: %v", err)
	}
}

func TestRunChatWithOptions_SingleMessage(t *testing.T) {
	setupEnv(t)
	t.Setenv("HUSTLEBOT_API_KEY", "test-key")

	oldFlag := messageFlag
	messageFlag = "hello"
	defer func() { messageFlag = oldFlag }()

	var stdout bytes.Buffer
	err := runChatWithOptions(ChatOptions{
		ClientFactory: fakeFactory(&fakeClient{}),
		Stdout:        &stdout,
	})
	if err != nil {
		t.Fatalf("runChatWithOptions error: %v", err)
	}

	if !strings.Contains(stdout.String(), "Business & Income Generation Advisor") {
		t.Errorf("expected greeting, got: %s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Conversation saved as") {
		t.Errorf("expected save confirmation, got: %s", stdout.String())
	}
}

func TestRunChatWithOptions_SecurityTool(t *testing.T) {
	setupEnv(t)
	t.Setenv("HUSTLEBOT_API_KEY", "test-key")

	oldFlag := messageFlag
	messageFlag = `/security check my password "Str0ng!Passw0rd"`
	defer func() { messageFlag = oldFlag }()

	var stdout bytes.Buffer
	err := runChatWithOptions(ChatOptions{
		ClientFactory: fakeFactory(&fakeClient{}),
		Stdout:        &stdout,
	})
	if err != nil {
		t.Fatalf("runChatWithOptions error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Password Analysis") {
		t.Errorf("expected password report, got: %s", stdout.String())
	}
}

func TestRunChatWithOptions_REPLMode(t *testing.T) {
	setupEnv(t)
	t.Setenv("HUSTLEBOT_API_KEY", "test-key")

	oldFlag := messageFlag
	messageFlag = ""
	defer func() { messageFlag = oldFlag }()

	stdin := strings.NewReader("\nI want to make money\nexit\n")
	var stdout, stderr bytes.Buffer

	err := runChatWithOptions(ChatOptions{
		ClientFactory: fakeFactory(&fakeClient{}),
		Stdin:         stdin,
		Stdout:        &stdout,
		Stderr:        &stderr,
	})
	if err != nil {
		t.Fatalf("runChatWithOptions error: %v", err)
	}

	if !strings.Contains(stdout.String(), "hustlebot income advisor") {
		t.Errorf("expected REPL welcome, got: %s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "What interests you more?") {
		t.Errorf("expected path menu, got: %s", stdout.String())
	}
}

func TestRunChatWithOptions_REPLReset(t *testing.T) {
	setupEnv(t)
	t.Setenv("HUSTLEBOT_API_KEY", "test-key")

	oldFlag := messageFlag
	messageFlag = ""
	defer func() { messageFlag = oldFlag }()

	stdin := strings.NewReader("hello\n/reset\nexit\n")
	var stdout bytes.Buffer

	err := runChatWithOptions(ChatOptions{
		ClientFactory: fakeFactory(&fakeClient{}),
		Stdin:         stdin,
		Stdout:        &stdout,
	})
	if err != nil {
		t.Fatalf("runChatWithOptions error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Conversation reset.") {
		t.Errorf("expected reset confirmation, got: %s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Conversation saved as") {
		t.Errorf("reset should save the transcript, got: %s", stdout.String())
	}
}

func TestRunHistoryCommands(t *testing.T) {
	tmpDir := setupEnv(t)
	historyPath := filepath.Join(tmpDir, "history.json")
	t.Setenv("HUSTLEBOT_HISTORY_PATH", historyPath)

	store := history.NewStore(historyPath, 10)
	id, err := store.Save("conv-1", []history.Turn{
		{Role: "user", Content: "How do I start freelance writing?"},
		{Role: "assistant", Content: "Start with a portfolio."},
	})
	if err != nil {
		t.Fatalf("seed history: %v", err)
	}

	output, err := captureStdout(t, func() error {
		return runHistoryList(&cobra.Command{}, nil)
	})
	if err != nil {
		t.Fatalf("runHistoryList error: %v", err)
	}
	if !strings.Contains(output, id) || !strings.Contains(output, "2 messages") {
		t.Errorf("list output = %s", output)
	}

	output, err = captureStdout(t, func() error {
		return runHistoryShow(&cobra.Command{}, []string{id})
	})
	if err != nil {
		t.Fatalf("runHistoryShow error: %v", err)
	}
	if !strings.Contains(output, "freelance writing") || !strings.Contains(output, "[assistant]") {
		t.Errorf("show output = %s", output)
	}

	if _, err = captureStdout(t, func() error {
		return runHistoryDelete(&cobra.Command{}, []string{id})
	}); err != nil {
		t.Fatalf("runHistoryDelete error: %v", err)
	}
	if err := runHistoryDelete(&cobra.Command{}, []string{id}); err == nil {
		t.Error("expected error deleting missing conversation")
	}

	store.Save("conv-2", []history.Turn{{Role: "user", Content: "hi"}})
	if _, err = captureStdout(t, func() error {
		return runHistoryClear(&cobra.Command{}, nil)
	}); err != nil {
		t.Fatalf("runHistoryClear error: %v", err)
	}

	output, err = captureStdout(t, func() error {
		return runHistoryList(&cobra.Command{}, nil)
	})
	if err != nil {
		t.Fatalf("runHistoryList error: %v", err)
	}
	if !strings.Contains(output, "No saved conversations.") {
		t.Errorf("expected empty list, got: %s", output)
	}
}

func TestRunHistoryShow_NotFound(t *testing.T) {
	setupEnv(t)

	if err := runHistoryShow(&cobra.Command{}, []string{"missing"}); err == nil {
		t.Error("expected error for missing conversation")
	}
}
