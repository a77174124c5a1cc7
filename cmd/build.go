package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mariesavch/css-in-go/internal/mount"
	"github.com/mariesavch/css-in-go/internal/sheets"
	"github.com/mariesavch/css-in-go/internal/styles"
	"github.com/mariesavch/css-in-go/internal/theme"
)

var (
	buildOut    string
	buildHTML   bool
	buildPreset string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the stock stylesheet under the configured theme",
	Long: `Register every stock sheet with a fresh provider and print the resulting
stylesheet, or write it to --out.

Examples:
  cssgo build
  cssgo build --preset nord --out dist/styles.css
  cssgo build --html --out dist/index.html`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output file (default: output.path or stdout)")
	buildCmd.Flags().BoolVar(&buildHTML, "html", false, "emit a sample HTML document with the stylesheet mounted in its head")
	buildCmd.Flags().StringVarP(&buildPreset, "preset", "p", "", "theme preset overriding the config")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	pal, err := palette(buildPreset)
	if err != nil {
		return err
	}
	rt, err := newRuntime(cfg.Tracing)
	if err != nil {
		return err
	}
	defer rt.close()

	out := buildOut
	if out == "" {
		out = cfg.Output.Path
	}
	html := buildHTML || cfg.Output.HTML

	text, err := render(rt, pal, html)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}
	target := mount.NewFileTarget(out)
	target.SetText(text)
	if err := target.Err(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes, theme %s)\n", out, len(text), pal.Name())
	return nil
}

// render builds the stock stylesheet, optionally as a full HTML document.
func render(rt *runtime, pal theme.Palette, html bool) (string, error) {
	if !html {
		p := styles.New(mount.Multi{}, pal, rt.options()...)
		sheets.RegisterAll(p)
		return p.Stylesheet(), nil
	}

	doc := mount.NewDocument()
	p := styles.NewMounted(doc, pal, rt.options()...)
	sampleBody(doc, sheets.RegisterAll(p))
	return doc.HTML()
}

// sampleBody fills doc with markup using every stock class.
func sampleBody(doc *mount.Document, b sheets.Bundle) {
	el := func(tag, class, text string) *mount.Element {
		e := mount.NewElement(tag, map[string]string{"class": class})
		e.SetText(text)
		return e
	}

	root := doc.Body.Append(mount.NewElement("main", map[string]string{"class": b.Surface.Root}))
	card := root.Append(mount.NewElement("section", map[string]string{"class": b.Card.Root}))
	card.Append(el("header", b.Card.Header, "Theme preview"))
	body := card.Append(mount.NewElement("div", map[string]string{"class": b.Card.Body}))

	body.Append(el("p", b.Text.Primary, "Primary text"))
	body.Append(el("p", b.Text.Secondary, "Secondary text"))
	body.Append(el("p", b.Text.Muted, "Muted text"))

	body.Append(el("button", b.Button.Root+" "+b.Button.Primary, "Save"))
	body.Append(el("button", b.Button.Root+" "+b.Button.Danger, "Delete"))

	body.Append(el("div", b.Alert.Success, "Saved"))
	body.Append(el("div", b.Alert.Warning, "Unsaved changes"))
	body.Append(el("div", b.Alert.Error, "Save failed"))
}
