package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"daytrace/internal/app"
	"daytrace/internal/config"
	"daytrace/internal/logs"
	"daytrace/internal/settings"
	"daytrace/internal/tui"
)

// options holds the persistent flags shared by every command
type options struct {
	vault   string
	exclude string
	view    string
}

// Execute runs the command tree against os.Args and returns the exit code.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the daytrace command tree. Running it without a
// subcommand launches the TUI.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "daytrace",
		Short: "A life calendar over a folder of daily markdown notes",
		Long: `daytrace draws every day from your birth date to your life expectancy
as a grid of cells, one block per year. Days backed by a note in the vault
are colored from the note's lifeCalendar front matter.

Running daytrace without a command launches the interactive TUI.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.vault, "vault", "V", "", "Vault directory (default ~/daytrace)")
	root.PersistentFlags().StringVar(&opts.exclude, "exclude", "", "Glob patterns to skip, comma-separated (e.g. \"Templates/**\")")
	root.PersistentFlags().StringVar(&opts.view, "view", "", "Initial view: calendar, settings")

	root.AddCommand(
		newIndexCmd(opts),
		newStatsCmd(opts),
		newNewCmd(opts),
		newSettingsCmd(opts),
	)
	return root
}

// load resolves the config, makes sure the vault exists, moves the log into
// it and indexes it.
func load(opts *options) (*config.Config, *app.App, error) {
	cfg, err := config.Load(config.CLIFlags{
		VaultDir:    opts.vault,
		Exclude:     config.ParseCommaSeparated(opts.exclude),
		DefaultView: opts.view,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := config.EnsureConfigFile(); err != nil {
		logs.Logger.Printf("Warning: could not create config file: %v", err)
	}

	if err := cfg.EnsureVault(); err != nil {
		return nil, nil, fmt.Errorf("create vault directory: %w", err)
	}

	if err := logs.Initialize(filepath.Join(cfg.VaultDir, settings.DataDir)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}

	a, err := app.Open(cfg.VaultDir, cfg.Exclude)
	if err != nil {
		return nil, nil, err
	}
	return cfg, a, nil
}

func runTUI(ctx context.Context, opts *options) error {
	cfg, a, err := load(opts)
	if err != nil {
		return err
	}
	defer logs.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := a.Vault.Watch(ctx)
	if err != nil {
		logs.Logger.Printf("Warning: could not watch vault, changes need a manual rescan: %v", err)
		events = nil
	}

	logs.Logger.Println("Starting app in TUI mode")
	p := tea.NewProgram(tui.NewAppModel(cfg, a, events), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
