package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/initializ/consent"
	"github.com/initializ/consent/config"
	"github.com/initializ/consent/lineui"
	"github.com/initializ/consent/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the confirm-to-increment counter demo",
	Long:  "A small counter app: every increment must be confirmed through the prompt coordinator. Full-screen on a terminal, line mode otherwise.",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().Bool("line", false, "force line mode (no full-screen TUI)")
	demoCmd.Flags().Int("count", 3, "number of scripted confirmations in line mode")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	policyName := cfg.Policy
	if policyOverride != "" {
		policyName = policyOverride
	}
	policy, err := consent.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	lineMode, _ := cmd.Flags().GetBool("line")
	count, _ := cmd.Flags().GetInt("count")
	lineMode = lineMode || !term.IsTerminal(int(os.Stdout.Fd()))

	opts := []consent.Option{
		consent.WithPolicy(policy),
		consent.WithQueueCapacity(cfg.QueueCapacity),
	}
	// Verbose logging would garble the full-screen UI, so it is wired in
	// line mode only.
	if verbose && lineMode {
		opts = append(opts, consent.WithLogger(slog.New(slog.NewTextHandler(
			os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug},
		))))
	}
	c := consent.NewConfirm(opts...)

	if lineMode {
		return runLineDemo(c, count)
	}
	return runTUIDemo(c, cfg)
}

// loadConfig reads the --config file, falling back to defaults when the
// file does not exist at the default location.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !rootCmd.PersistentFlags().Changed("config") {
			return config.Default(), nil
		}
		return config.Config{}, err
	}
	return cfg, nil
}

func runTUIDemo(c *consent.ConfirmCoordinator, cfg config.Config) error {
	themeName := cfg.Theme
	if themeOverride != "" {
		themeName = themeOverride
	}
	theme := tui.DetectTheme(themeName)

	m := newDemoModel(c, theme, cfg.Labels)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// runLineDemo drives count scripted confirmations through the line-mode
// runner. The coordinator travels in the context, the way an embedding
// application would share it across call sites.
func runLineDemo(c *consent.ConfirmCoordinator, count int) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = consent.NewContext(ctx, c)

	runner := lineui.NewRunner(c)
	go func() { _ = runner.Serve(ctx) }()

	counter := 0
	for i := 0; i < count; i++ {
		scope, err := consent.FromContext[consent.Prompt, bool](ctx)
		if err != nil {
			return err
		}
		d := scope.Request(consent.NewPrompt(
			"Increment counter?",
			fmt.Sprintf("The counter is at %d.", counter),
		))
		ok, err := d.Wait(ctx)
		if err != nil {
			return err
		}
		if ok {
			counter++
		}
		fmt.Printf("counter = %d\n", counter)
	}
	return nil
}
