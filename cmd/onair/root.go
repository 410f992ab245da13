package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/renato0307/onair/internal/app"
	"github.com/renato0307/onair/internal/components/palette"
	"github.com/renato0307/onair/internal/config"
	"github.com/renato0307/onair/internal/library"
	"github.com/renato0307/onair/internal/logging"
	"github.com/renato0307/onair/internal/messages"
)

type rootFlags struct {
	configPath string
	theme      string
	library    string
	logFile    string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:          "onair",
		Short:        "Terminal front end for the onair production studio",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, flags, &cfg)
			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to config.toml (default: $XDG_CONFIG_HOME/onair/config.toml)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Theme to use (charm, dracula, nord, gruvbox)")
	cmd.Flags().StringVar(&flags.library, "library", "", "Path to the library YAML file")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "", "Log format (text, json)")

	cmd.AddCommand(newThemesCmd())
	return cmd
}

// applyFlags lets explicitly set flags override the loaded configuration.
func applyFlags(cmd *cobra.Command, flags rootFlags, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("theme") {
		cfg.Theme = flags.theme
	}
	if set("library") {
		cfg.Library.Path = flags.library
	}
	if set("log-file") {
		cfg.Log.File = flags.logFile
	}
	if set("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if set("log-format") {
		cfg.Log.Format = flags.logFormat
	}
}

// newProvider returns the library file provider, or the demo library when
// no file is configured. A configured file must be readable at startup.
func newProvider(path string) (library.Provider, error) {
	if path == "" {
		return library.Demo(), nil
	}
	provider := library.NewFileProvider(path)
	if _, err := provider.Items(); err != nil {
		return nil, messages.WrapError(err, "invalid library")
	}
	return provider, nil
}

func run(cfg config.Config) error {
	if err := logging.Init(logging.Config{
		FilePath:   cfg.Log.File,
		Level:      logging.ParseLevel(cfg.Log.Level),
		Format:     logging.ParseFormat(cfg.Log.Format),
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logging.Shutdown() }()

	provider, err := newProvider(cfg.Library.Path)
	if err != nil {
		return err
	}

	logging.Info("starting onair", "version", version, "theme", cfg.Theme, "library", cfg.Library.Path)

	model := app.NewModel(app.Options{
		Theme:     cfg.Theme,
		Content:   provider,
		InviteURL: cfg.Studio.InviteURL,
		Palette: palette.Options{
			MaxItems:   cfg.Palette.MaxItems,
			FocusDelay: cfg.Palette.FocusDelay,
			Width:      cfg.Palette.Width,
		},
		LibraryPath: cfg.Library.Path,
		LogFile:     cfg.Log.File,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		logging.Error("program exited with error", "error", err)
		return fmt.Errorf("error running application: %w", err)
	}
	return nil
}
