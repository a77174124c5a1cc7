package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mariesavch/css-in-go/internal/mount"
	"github.com/mariesavch/css-in-go/internal/sheets"
	"github.com/mariesavch/css-in-go/internal/styles"
)

var sheetsJSON bool

// sheetDTO is the --json shape of one registered sheet.
type sheetDTO struct {
	Sheet   string   `json:"sheet"`
	Start   uint64   `json:"start"`
	Stop    uint64   `json:"stop"`
	Classes []string `json:"classes"`
}

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List the stock sheets and the class ranges they reserve",
	Long: `List the stock sheets in registration order with the class range each
reserves.

Examples:
  cssgo sheets
  cssgo sheets --json | jq '.[].classes'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		pal, err := palette("")
		if err != nil {
			return err
		}
		p := styles.New(mount.Multi{}, pal)
		sheets.RegisterAll(p)
		ranges := p.Ranges()

		if sheetsJSON {
			dtos := make([]sheetDTO, 0, len(ranges))
			for _, r := range ranges {
				classes := make([]string, 0, r.Len())
				for i := range r.Len() {
					classes = append(classes, styles.ClassAt(r.Start, i))
				}
				dtos = append(dtos, sheetDTO{Sheet: r.Sheet, Start: uint64(r.Start), Stop: uint64(r.Stop), Classes: classes})
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dtos)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SHEET\tSTART\tSTOP\tCLASSES")
		for _, r := range ranges {
			first, last := "-", ""
			if r.Len() > 0 {
				first = styles.ClassName(r.Start)
				last = " .. " + styles.ClassName(r.Stop-1)
			}
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s%s\n", r.Sheet, r.Start, r.Stop, first, last)
		}
		return tw.Flush()
	},
}

func init() {
	sheetsCmd.Flags().BoolVar(&sheetsJSON, "json", false, "print sheets as JSON")
	rootCmd.AddCommand(sheetsCmd)
}
