// Package cli wires the keyhelp commands.
package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/renato0307/keyhelp/internal/app"
	"github.com/renato0307/keyhelp/internal/catalog"
	"github.com/renato0307/keyhelp/internal/clipboard"
	"github.com/renato0307/keyhelp/internal/config"
	"github.com/renato0307/keyhelp/internal/logging"
	"github.com/renato0307/keyhelp/internal/search"
	"github.com/renato0307/keyhelp/internal/ui"
)

// defaultSource names the embedded catalog.
const defaultSource = "LazyVim"

// options holds the persistent flags. Set flags override the config file.
type options struct {
	configPath string
	theme      string
	mode       string
	catalog    string
	maxResults int
	logFile    string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

// Execute runs the keyhelp root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "keyhelp",
		Short: "Search Neovim shortcuts and watch them on a keyboard",
		Long: `keyhelp fuzzy-searches a catalog of Neovim (LazyVim) shortcuts and
replays the selected one on an ASCII keyboard, either frame by frame or as a
colour-coded legend of the whole sequence.`,
		Example: `  keyhelp
  keyhelp --mode legend --theme nord
  keyhelp parse "<leader>gg"
  keyhelp search split window
  keyhelp list --category git`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			logging.Info("shutdown")
			return logging.Shutdown()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default: $KEYHELP_CONFIG or $XDG_CONFIG_HOME/keyhelp/config.yaml)")
	flags.StringVarP(&opts.theme, "theme", "t", "", fmt.Sprintf("Color theme %v", ui.AvailableThemes()))
	flags.StringVarP(&opts.mode, "mode", "m", "", "Diagram mode: animation or legend")
	flags.StringVar(&opts.catalog, "catalog", "", "YAML catalog file (default: embedded LazyVim catalog)")
	flags.IntVar(&opts.maxResults, "max-results", 0, "Maximum number of results")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(
		newParseCommand(opts),
		newSearchCommand(opts),
		newListCommand(opts),
	)
	return root
}

// setup loads the config, applies flag overrides and starts logging.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = o.theme
	}
	if flags.Changed("mode") {
		cfg.Mode = o.mode
	}
	if flags.Changed("catalog") {
		cfg.Catalog = o.catalog
	}
	if flags.Changed("max-results") {
		cfg.MaxResults = o.maxResults
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Init(cfg.LoggingConfig()); err != nil {
		return err
	}
	logging.Info("starting",
		"command", cmd.Name(),
		"theme", cfg.Theme,
		"mode", cfg.Mode,
		"catalog", cfg.Catalog,
	)

	o.cfg = cfg
	return nil
}

// loadCatalog returns the configured catalog and a name for it.
func (o *options) loadCatalog() ([]catalog.Item, string, error) {
	timer := logging.Start("load catalog")

	var items []catalog.Item
	var err error
	source := defaultSource
	if o.cfg.Catalog == "" {
		items, err = catalog.Default()
	} else {
		items, err = catalog.Load(o.cfg.Catalog)
		source = filepath.Base(o.cfg.Catalog)
	}
	if err != nil {
		return nil, "", err
	}

	timer.EndWithCount(len(items))
	return items, source, nil
}

func runTUI(opts *options) error {
	items, source, err := opts.loadCatalog()
	if err != nil {
		return err
	}

	model := app.NewModel(app.Options{
		Theme:     ui.GetTheme(opts.cfg.Theme),
		Engine:    search.NewEngine(items, opts.cfg.Limit()),
		Clipboard: clipboard.New(),
		Mode:      opts.cfg.DiagramMode(),
		Source:    source,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
