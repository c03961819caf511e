package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kelechidev/hustlebot/internal/advisor"
	"github.com/kelechidev/hustlebot/internal/completion"
	"github.com/kelechidev/hustlebot/internal/config"
	"github.com/kelechidev/hustlebot/internal/gateway"
	"github.com/kelechidev/hustlebot/internal/history"
	"github.com/kelechidev/hustlebot/internal/security"
)

// ChatOptions carries injectable dependencies for testing.
type ChatOptions struct {
	ClientFactory gateway.ClientFactory
	Stdin         io.Reader
	Stdout        io.Writer
	Stderr        io.Writer
}

var rootCmd = &cobra.Command{
	Use:   "hustlebot",
	Short: "hustlebot - income advisory and security assistant for students",
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat in single message or REPL mode",
	RunE:  runChat,
}

var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Start the full gateway (channels + cron)",
	RunE:  runGateway,
}

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize config and data directory",
	RunE:  runOnboard,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show hustlebot status",
	RunE:  runStatus,
}

var checkurlCmd = &cobra.Command{
	Use:   "checkurl <url>",
	Short: "Check a URL's reputation via VirusTotal",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckURL,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage saved conversations",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved conversations",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved conversations",
	RunE:  runHistoryClear,
}

var (
	messageFlag  string
	securityFlag bool
)

func init() {
	chatCmd.Flags().StringVarP(&messageFlag, "message", "m", "", "Single message to send")
	chatCmd.Flags().BoolVar(&securityFlag, "security", false, "Route messages to the security assistant")
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd, historyClearCmd)
	rootCmd.AddCommand(chatCmd, gatewayCmd, onboardCmd, statusCmd, checkurlCmd, historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	return runChatWithOptions(ChatOptions{})
}

// runChatWithOptions runs the chat loop with injectable dependencies.
func runChatWithOptions(opts ChatOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Provider.APIKey == "" {
		return fmt.Errorf("API key not set. Run 'hustlebot onboard' or set HUSTLEBOT_API_KEY / GROQ_API_KEY")
	}

	factory := opts.ClientFactory
	if factory == nil {
		factory = gateway.DefaultClientFactory
	}
	client, err := factory(cfg)
	if err != nil {
		return err
	}

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	engine := advisor.New(client, advisor.Options{
		MatchTemperature:    cfg.Advisor.MatchTemperature,
		GenerateTemperature: cfg.Advisor.GenerateTemperature,
	})
	agent := security.NewAgent(client, security.NewURLChecker(security.URLCheckerConfig{
		APIKey:  cfg.Security.VirusTotalAPIKey,
		Timeout: time.Duration(cfg.Security.URLCheckTimeout) * time.Second,
	}))
	store := history.NewStore(cfg.History.Path, cfg.History.MaxConversations)

	ctx := context.Background()
	sess := advisor.NewSession()
	var transcript []completion.Message

	runTurn := func(input string) string {
		var stream <-chan string
		if text, ok := strings.CutPrefix(input, "/security "); ok || securityFlag {
			if !ok {
				text = input
			}
			stream = agent.Respond(ctx, strings.TrimSpace(text), transcript)
		} else {
			stream = engine.Respond(ctx, input, sess)
		}

		var sb strings.Builder
		for fragment := range stream {
			fmt.Fprint(stdout, fragment)
			sb.WriteString(fragment)
		}
		fmt.Fprintln(stdout)

		reply := sb.String()
		if reply != "" {
			transcript = append(transcript, completion.User(input), completion.Assistant(reply))
		}
		return reply
	}

	saveTranscript := func() {
		if len(transcript) == 0 {
			return
		}
		turns := make([]history.Turn, 0, len(transcript))
		for _, m := range transcript {
			turns = append(turns, history.Turn{Role: string(m.Role), Content: m.Content})
		}
		if id, err := store.Save("", turns); err != nil {
			fmt.Fprintf(stderr, "save history: %v\n", err)
		} else {
			fmt.Fprintf(stdout, "Conversation saved as %s\n", id)
		}
		transcript = nil
	}

	// Single message mode
	if messageFlag != "" {
		runTurn(messageFlag)
		saveTranscript()
		return nil
	}

	// REPL mode
	mode := "income advisor"
	if securityFlag {
		mode = "security assistant"
	}
	fmt.Fprintf(stdout, "hustlebot %s (type 'exit' to quit, '/reset' to start over)\n", mode)
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "\n> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}
		if input == "/reset" {
			saveTranscript()
			sess.Reset()
			fmt.Fprintln(stdout, "Conversation reset.")
			continue
		}
		runTurn(input)
	}
	saveTranscript()
	return nil
}

func runGateway(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Provider.APIKey == "" {
		return fmt.Errorf("API key not set. Run 'hustlebot onboard' or set HUSTLEBOT_API_KEY / GROQ_API_KEY")
	}

	gw, err := gateway.New(cfg)
	if err != nil {
		return fmt.Errorf("create gateway: %w", err)
	}
	return gw.Run(context.Background())
}

func runOnboard(cmd *cobra.Command, args []string) error {
	cfgDir := config.ConfigDir()
	cfgPath := config.ConfigPath()

	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Printf("Created config: %s\n", cfgPath)
	} else {
		fmt.Printf("Config already exists: %s\n", cfgPath)
	}

	dataDir := filepath.Join(cfgDir, "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	fmt.Println("\nNext steps:")
	fmt.Printf("  1. Edit %s to set your API key\n", cfgPath)
	fmt.Println("  2. Or set HUSTLEBOT_API_KEY (or GROQ_API_KEY) in the environment")
	fmt.Println("  3. Run 'hustlebot chat -m \"I want to make money\"' to test")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Config: error (%v)\n", err)
		return nil
	}

	fmt.Printf("Config: %s\n", config.ConfigPath())
	fmt.Printf("Model: %s\n", cfg.Provider.Model)
	fmt.Printf("Base URL: %s\n", cfg.Provider.BaseURL)
	fmt.Printf("API Key: %s\n", maskKey(cfg.Provider.APIKey))
	fmt.Printf("Telegram: enabled=%v\n", cfg.Channels.Telegram.Enabled)
	fmt.Printf("WebUI: enabled=%v\n", cfg.Channels.WebUI.Enabled)
	if cfg.Security.VirusTotalAPIKey != "" {
		fmt.Println("VirusTotal: configured")
	} else {
		fmt.Println("VirusTotal: not configured (URL checks disabled)")
	}

	store := history.NewStore(cfg.History.Path, cfg.History.MaxConversations)
	if summaries, err := store.Summaries(); err == nil {
		fmt.Printf("History: %d saved conversations (%s)\n", len(summaries), cfg.History.Path)
	}
	return nil
}

func maskKey(key string) string {
	switch {
	case key == "":
		return "not set"
	case len(key) > 8:
		return key[:4] + "..." + key[len(key)-4:]
	default:
		return "set"
	}
}

func runCheckURL(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	checker := security.NewURLChecker(security.URLCheckerConfig{
		APIKey:  cfg.Security.VirusTotalAPIKey,
		Timeout: time.Duration(cfg.Security.URLCheckTimeout) * time.Second,
	})
	report := checker.Check(cmd.Context(), args[0])
	fmt.Println(security.FormatURLReport(report))
	return nil
}

func historyStore() (*history.Store, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return history.NewStore(cfg.History.Path, cfg.History.MaxConversations), nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := historyStore()
	if err != nil {
		return err
	}
	summaries, err := store.Summaries()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No saved conversations.")
		return nil
	}
	for _, s := range summaries {
		fmt.Printf("%s  %s  %d messages  %s\n", s.ID, s.CreatedAt, s.Count, s.Preview)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := historyStore()
	if err != nil {
		return err
	}
	conv, err := store.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Conversation %s (%s)\n\n", conv.ID, conv.CreatedAt)
	for _, turn := range conv.Turns {
		fmt.Printf("[%s] %s\n\n", turn.Role, turn.Content)
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	store, err := historyStore()
	if err != nil {
		return err
	}
	removed, err := store.Delete(args[0])
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("conversation %s not found", args[0])
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := historyStore()
	if err != nil {
		return err
	}
	if err := store.ClearAll(); err != nil {
		return err
	}
	fmt.Println("History cleared.")
	return nil
}
