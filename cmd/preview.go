package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mariesavch/css-in-go/internal/mount"
	"github.com/mariesavch/css-in-go/internal/preview"
	"github.com/mariesavch/css-in-go/internal/pubsub"
	"github.com/mariesavch/css-in-go/internal/sheets"
	"github.com/mariesavch/css-in-go/internal/styles"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the live stylesheet in the terminal",
	Long: `Open a terminal viewer on a provider holding the stock sheets. Cycle
presets with t/T and toggle a diff of the last rebuild with d.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		pal, err := palette("")
		if err != nil {
			return err
		}
		rt, err := newRuntime(cfg.Tracing)
		if err != nil {
			return err
		}
		defer rt.close()

		broker := pubsub.NewBroker[styles.Change]()
		defer broker.Close()

		p := styles.New(mount.Multi{}, pal, rt.options(styles.WithBroker(broker))...)
		sheets.RegisterAll(p)

		return preview.Run(preview.New(cmd.Context(), p, baseThemeConfig(), broker))
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
