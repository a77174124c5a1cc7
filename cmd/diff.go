package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mariesavch/css-in-go/internal/mount"
	"github.com/mariesavch/css-in-go/internal/sheets"
	"github.com/mariesavch/css-in-go/internal/stylediff"
	"github.com/mariesavch/css-in-go/internal/styles"
)

var diffContext int

var diffCmd = &cobra.Command{
	Use:   "diff PRESET_A PRESET_B",
	Short: "Show how the stylesheet changes between two presets",
	Long: `Build the stock stylesheet under PRESET_A, switch the provider to PRESET_B
and print a line diff of the two stylesheets. Class names never change
between the two; only declarations do.

Color overrides and mode from the config apply to both sides.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().IntVarP(&diffContext, "context", "U", 2, "unchanged lines shown around each change (-1 for all)")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	from, err := palette(args[0])
	if err != nil {
		return err
	}
	to, err := palette(args[1])
	if err != nil {
		return err
	}
	rt, err := newRuntime(cfg.Tracing)
	if err != nil {
		return err
	}
	defer rt.close()

	p := styles.New(mount.Multi{}, from, rt.options()...)
	sheets.RegisterAll(p)
	before := p.Stylesheet()

	if !p.UpdateTheme(to) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s and %s render identically\n", args[0], args[1])
		return nil
	}

	lines := stylediff.Lines(before, p.Stylesheet())
	add := lipgloss.NewStyle().Foreground(lipgloss.Color("#73F59F"))
	del := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8787"))

	out := cmd.OutOrStdout()
	for _, l := range strings.Split(strings.TrimSuffix(stylediff.Unified(lines, diffContext), "\n"), "\n") {
		switch {
		case strings.HasPrefix(l, "+"):
			l = add.Render(l)
		case strings.HasPrefix(l, "-"):
			l = del.Render(l)
		}
		fmt.Fprintln(out, l)
	}
	stats := stylediff.Count(lines)
	fmt.Fprintf(out, "%s -> %s: %d lines added, %d removed\n", args[0], args[1], stats.Added, stats.Removed)
	return nil
}
