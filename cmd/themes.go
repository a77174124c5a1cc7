package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mariesavch/css-in-go/internal/config"
	"github.com/mariesavch/css-in-go/internal/theme"
)

var themesVerbose bool

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List built-in theme presets",
	Long: `List built-in theme presets with a color strip for each.

Use --verbose to print every color token.

Color tokens:
  surface.bg, text.primary, text.secondary, text.muted,
  border.default, border.highlight,
  status.success, status.warning, status.error,
  button.text, button.primary.bg, button.primary.focus, button.danger.bg`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		nameStyle := lipgloss.NewStyle().Bold(true).Width(18)
		current := cfg.Theme.Preset
		if current == "" {
			current = theme.DefaultPresetName
		}

		for _, name := range theme.PresetNames() {
			p := theme.MustResolve(theme.Config{Preset: name})
			marker := "  "
			if name == current {
				marker = "* "
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s %s  %s (%s)\n",
				marker, nameStyle.Render(name), theme.Strip(p), theme.Presets[name].Description, p.Mode())
			if themesVerbose {
				fmt.Fprint(cmd.OutOrStdout(), theme.Swatch(p))
			}
		}
		return nil
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the configured theme",
}

var themeSetCmd = &cobra.Command{
	Use:   "set PRESET",
	Short: "Save PRESET as the theme preset in the config file",
	Long: `Save PRESET as theme.preset in the config file. Comments and the rest of
the file are preserved. A running 'cssgo watch' picks the change up.`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return theme.PresetNames(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SaveTheme(configPath, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "theme preset set to %s in %s\n", args[0], configPath)
		return nil
	},
}

func init() {
	themesCmd.Flags().BoolVarP(&themesVerbose, "verbose", "v", false, "print every color token")
	themeCmd.AddCommand(themeSetCmd)
	rootCmd.AddCommand(themesCmd, themeCmd)
}
