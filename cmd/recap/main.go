package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alkime/recap/internal/gateway"
	"github.com/alkime/recap/internal/ingest"
	"github.com/alkime/recap/internal/keyring"
	"github.com/alkime/recap/internal/logger"
	"github.com/alkime/recap/internal/tui"
	"github.com/alkime/recap/internal/workflow"
	tea "github.com/charmbracelet/bubbletea"
)

// Globals are flags shared by every command.
type Globals struct {
	APIBase  string        `name:"api-base" env:"RECAP_API_BASE" help:"Base URL of the summarize/send API (default ${default_base})"`
	Timeout  time.Duration `env:"RECAP_TIMEOUT" default:"30s" help:"Per-request timeout"`
	LogLevel string        `default:"info" enum:"debug,info,warn,error" help:"Log level"`
}

func (g *Globals) client(log *slog.Logger) *gateway.Client {
	return gateway.New(g.APIBase,
		gateway.WithTimeout(g.Timeout),
		gateway.WithLogger(log),
	)
}

// CLI defines the recap command structure.
type CLI struct {
	Globals

	// Default TUI command (runs when no subcommand given)
	TUI TUICmd `cmd:"" default:"withargs" help:"Launch the terminal UI"`

	Summarize SummarizeCmd `cmd:"" help:"Summarize a transcript file and print the summary"`
	Send      SendCmd      `cmd:"" help:"Email a summary to recipients"`
	Config    ConfigCmd    `cmd:"" help:"Manage configuration"`
}

// TUICmd is the default command that runs the TUI.
type TUICmd struct {
	File    string `arg:"" optional:"" type:"existingfile" help:"Transcript (.txt) to load on start"`
	DropDir string `name:"drop-dir" type:"existingdir" help:"Folder to watch; .txt files saved there are loaded as the transcript"`
	LogFile string `name:"log-file" help:"Write logs to this file (default: discarded)"`
}

// Run executes the TUI command.
func (c *TUICmd) Run(g *Globals) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var logOut io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log := logger.NewCLI(logOut, g.LogLevel)

	ingestor := ingest.NewIngestor(log)
	if c.File != "" {
		if _, err := ingestor.LoadFromFile(ctx, c.File); err != nil {
			return fmt.Errorf("failed to load transcript: %w", err)
		}
	}

	p := tea.NewProgram(tui.New(tui.Config{
		Backend:  g.client(log),
		Ingestor: ingestor,
		Logger:   log,
		Context:  ctx,
	}), tea.WithAltScreen())

	if c.DropDir != "" {
		watcher, err := ingest.NewDropWatcher(c.DropDir, func(paths []string) {
			p.Send(tui.DroppedMsg{Paths: paths})
		}, log)
		if err != nil {
			return fmt.Errorf("failed to watch drop folder: %w", err)
		}
		defer watcher.Close()

		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("Drop watcher stopped", "error", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start TUI: %w", err)
	}

	return nil
}

// SummarizeCmd runs one generation without the TUI.
type SummarizeCmd struct {
	File        string `arg:"" help:"Transcript (.txt), or - for stdin"`
	Instruction string `short:"i" help:"Summary instruction"`
	Preset      int    `short:"p" help:"Use preset 1-4 as the instruction"`
	Output      string `short:"o" help:"Write the summary to this file instead of stdout"`
}

// Run executes the summarize command.
func (c *SummarizeCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := logger.NewCLI(os.Stderr, g.LogLevel)

	transcript, err := readInput(ctx, c.File, log)
	if err != nil {
		return err
	}

	var instruction workflow.Instruction
	instruction.SetText(c.Instruction)
	if c.Preset != 0 {
		if err := instruction.ApplyPresetIndex(c.Preset - 1); err != nil {
			return fmt.Errorf("invalid preset %d: %w", c.Preset, err)
		}
	}

	sc := workflow.NewSummaryController()
	flash, err := sc.Generate(ctx, g.client(log), transcript, instruction.Text())
	if err != nil {
		return errors.New(flash.Text)
	}

	log.Info(flash.Text, "chars", len([]rune(sc.Text())))

	if c.Output == "" {
		fmt.Println(sc.Text())

		return nil
	}

	//nolint:gosec // Summaries need to be readable
	if err := os.WriteFile(c.Output, []byte(sc.Text()), 0o644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}

// SendCmd dispatches a summary without the TUI.
type SendCmd struct {
	To          string `required:"" help:"Recipient emails, comma or space separated"`
	SummaryFile string `name:"summary-file" default:"-" help:"File holding the summary, or - for stdin"`
}

// Run executes the send command.
func (c *SendCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := logger.NewCLI(os.Stderr, g.LogLevel)

	summary, err := readSummary(c.SummaryFile)
	if err != nil {
		return err
	}

	d := workflow.NewDispatcher()
	d.SetRecipients(c.To)

	flash, err := d.Send(ctx, g.client(log), summary)
	if err != nil {
		return errors.New(flash.Text)
	}

	fmt.Println(flash.Text)

	return nil
}

func readInput(ctx context.Context, path string, log *slog.Logger) (string, error) {
	ingestor := ingest.NewIngestor(log)

	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		ingestor.SetManual(string(data))

		return ingestor.Text(), nil
	}

	text, err := ingestor.LoadFromFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to load transcript: %w", err)
	}

	return text, nil
}

func readSummary(path string) (string, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read summary: %w", err)
	}

	return string(data), nil
}

// ConfigCmd groups configuration-related subcommands.
type ConfigCmd struct {
	SetKey   SetKeyCmd   `cmd:"" help:"Store an API key in system keychain"`
	ListKeys ListKeysCmd `cmd:"" name:"list-keys" help:"Show which API keys are configured"`
}

// SetKeyCmd stores an API key in the system keychain.
type SetKeyCmd struct {
	Service string `arg:"" enum:"anthropic,openai,gemini,postmark" help:"Service name (anthropic, openai, gemini or postmark)"`
	Secret  string `arg:"" help:"API key value"`
}

// Run executes the set-key command.
func (c *SetKeyCmd) Run() error {
	if strings.TrimSpace(c.Secret) == "" {
		return errors.New("API key cannot be empty")
	}

	apiKey, err := keyring.APIKeyFromServiceName(c.Service)
	if err != nil {
		return fmt.Errorf("invalid service: %w", err)
	}

	if err := keyring.Set(apiKey, c.Secret); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	fmt.Printf("%s API key stored in keychain\n", c.Service)

	return nil
}

// ListKeysCmd shows which API keys are configured.
type ListKeysCmd struct{}

// Run executes the list-keys command.
//
//nolint:unparam // error return required by Kong interface
func (c *ListKeysCmd) Run() error {
	allSet := true

	for _, apiKey := range keyring.AllAPIKeys() {
		switch {
		case os.Getenv(apiKey.EnvVar()) != "":
			fmt.Printf("%s: configured (%s)\n", apiKey.DisplayName(), apiKey.EnvVar())
		case keyring.IsSet(apiKey):
			fmt.Printf("%s: configured (keychain)\n", apiKey.DisplayName())
		default:
			fmt.Printf("%s: not set\n", apiKey.DisplayName())
			allSet = false
		}
	}

	if !allSet {
		fmt.Println("\nRun 'recap config set-key <service> <key>' to configure.")
	}

	return nil
}

func main() {
	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("recap"),
		kong.Description("Summarize meeting transcripts and email the result."),
		kong.Vars{"default_base": gateway.DefaultBaseURL},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}
