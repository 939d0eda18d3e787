package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/numbox/internal/app"
	"github.com/zhubert/numbox/internal/clipboard"
	"github.com/zhubert/numbox/internal/config"
	"github.com/zhubert/numbox/internal/logger"
	"github.com/zhubert/numbox/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	modeFlag              string
	themeFlag             string
	valueFlag             string
	placementFlag         string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "numbox",
	Short: "Numeric fields with an inline calculator",
	Long: `numbox shows a small form of numeric fields. Typing an operator
(+ - * /) in a field that holds a number opens a calculator popup next to
the caret; enter or = writes the result back into the field.

Field values are printed when you quit with ctrl+c.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&modeFlag, "mode", "", "Default field mode for this run: integer or float")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Theme for this run ("+themeList()+")")
	rootCmd.Flags().StringVar(&valueFlag, "value", "", "Initial value of the first field")
	rootCmd.Flags().StringVar(&placementFlag, "placement", "below", "Where the calculator opens: below or above the field")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("numbox %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("numbox %s\n", version)
}

func themeList() string {
	names := make([]string, 0, len(ui.ThemeNames()))
	for _, n := range ui.ThemeNames() {
		names = append(names, string(n))
	}
	return strings.Join(names, ", ")
}

// parsePlacement maps the --placement flag to a popup placement.
func parsePlacement(s string) (ui.Placement, error) {
	switch strings.ToLower(s) {
	case "", "below", "bottom":
		return ui.PlacementBottom, nil
	case "above", "top":
		return ui.PlacementTop, nil
	}
	return ui.PlacementBottom, fmt.Errorf("unknown placement %q (want below or above)", s)
}

// applyFlags overrides cfg with the per-run flags and validates the result.
// Nothing is written to disk here.
func applyFlags(cfg *config.Config, mode, theme, value string) error {
	if mode != "" && !cfg.SetMode(mode) {
		return fmt.Errorf("unknown mode %q (want %s or %s)", mode, config.ModeInteger, config.ModeFloat)
	}
	if theme != "" {
		if !ui.ValidTheme(theme) {
			return fmt.Errorf("unknown theme %q (want one of %s)", theme, themeList())
		}
		cfg.SetTheme(theme)
	}
	if value != "" {
		fields := cfg.GetFields()
		if len(fields) == 0 {
			return fmt.Errorf("--value given but no fields are configured")
		}
		cfg.SetFieldValue(fields[0].Label, value)
	}
	return cfg.Validate()
}

func runTUI(cmd *cobra.Command, args []string) error {
	placement, err := parsePlacement(placementFlag)
	if err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := applyFlags(cfg, modeFlag, themeFlag, valueFlag); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	// A missing clipboard only disables ctrl+v
	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable: %v", err)
	}

	// Create and run the app
	m := app.New(cfg, app.Options{Version: version, Placement: placement})
	p := tea.NewProgram(m)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running app: %w", err)
	}

	if fm, ok := final.(*app.Model); ok && fm.Quitting() {
		fmt.Fprint(os.Stdout, fm.FormatValues())
	}
	return nil
}
