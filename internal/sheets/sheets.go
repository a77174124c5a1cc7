// Package sheets holds the stock style sheets rendered from a theme.Palette.
// Each sheet mints its classes in a fixed order and its bundle constructor
// reads them back at the same offsets.
package sheets

import (
	"fmt"
	"strings"

	"github.com/mariesavch/css-in-go/internal/styles"
	"github.com/mariesavch/css-in-go/internal/theme"
)

// rule writes one CSS rule for selector.
func rule(css *strings.Builder, selector string, decls ...string) {
	css.WriteString(selector)
	css.WriteString(" {\n")
	for _, d := range decls {
		css.WriteString("  ")
		css.WriteString(d)
		css.WriteString(";\n")
	}
	css.WriteString("}\n")
}

func decl(prop, value string) string {
	return prop + ": " + value
}

func class(name string) string {
	return "." + name
}

// SurfaceClasses styles the page background.
type SurfaceClasses struct {
	Root string
}

var Surface = styles.NewSheet("surface",
	func(p theme.Palette, css *strings.Builder, c *styles.Counter) {
		rule(css, class(c.Class()),
			decl("color-scheme", string(p.Mode())),
			decl("background", p.Color(theme.TokenSurfaceBg)),
			decl("color", p.Color(theme.TokenTextPrimary)),
		)
	},
	func(start styles.Counter) SurfaceClasses {
		return SurfaceClasses{Root: styles.ClassAt(start, 0)}
	},
	styles.Span(1),
)

// TextClasses covers the text hierarchy.
type TextClasses struct {
	Primary   string
	Secondary string
	Muted     string
}

var Text = styles.NewSheet("text",
	func(p theme.Palette, css *strings.Builder, c *styles.Counter) {
		rule(css, class(c.Class()), decl("color", p.Color(theme.TokenTextPrimary)))
		rule(css, class(c.Class()), decl("color", p.Color(theme.TokenTextSecondary)))
		rule(css, class(c.Class()),
			decl("color", p.Color(theme.TokenTextMuted)),
			decl("font-size", "0.875em"),
		)
	},
	func(start styles.Counter) TextClasses {
		return TextClasses{
			Primary:   styles.ClassAt(start, 0),
			Secondary: styles.ClassAt(start, 1),
			Muted:     styles.ClassAt(start, 2),
		}
	},
	styles.Span(3),
)

// ButtonClasses are combined as Root plus one variant.
type ButtonClasses struct {
	Root    string
	Primary string
	Danger  string
}

var Button = styles.NewSheet("button",
	func(p theme.Palette, css *strings.Builder, c *styles.Counter) {
		text := p.Color(theme.TokenButtonText)

		root := class(c.Class())
		rule(css, root,
			decl("padding", "0.25em 1em"),
			decl("border", "1px solid transparent"),
			decl("border-radius", "4px"),
			decl("font-weight", "bold"),
			decl("cursor", "pointer"),
		)
		rule(css, root+":disabled", decl("opacity", "0.5"), decl("cursor", "not-allowed"))

		primaryBg := p.Color(theme.TokenButtonPrimaryBg)
		primary := class(c.Class())
		rule(css, primary, decl("color", text), decl("background", primaryBg))
		rule(css, primary+":hover", decl("background", theme.Mix(primaryBg, p.Color(theme.TokenButtonPrimaryFocusBg), 0.5)))
		rule(css, primary+":focus-visible",
			decl("background", p.Color(theme.TokenButtonPrimaryFocusBg)),
			decl("outline", "2px solid "+p.Color(theme.TokenBorderHighlight)),
		)

		dangerBg := p.Color(theme.TokenButtonDangerBg)
		danger := class(c.Class())
		rule(css, danger, decl("color", text), decl("background", dangerBg))
		rule(css, danger+":hover", decl("background", lift(p, dangerBg)))
	},
	func(start styles.Counter) ButtonClasses {
		return ButtonClasses{
			Root:    styles.ClassAt(start, 0),
			Primary: styles.ClassAt(start, 1),
			Danger:  styles.ClassAt(start, 2),
		}
	},
	styles.Span(3),
)

// lift makes a hover color that moves away from the surface.
func lift(p theme.Palette, hex string) string {
	if p.Mode() == theme.ModeLight {
		return theme.Darken(hex, 0.08)
	}
	return theme.Lighten(hex, 0.08)
}

// CardClasses styles a bordered panel.
type CardClasses struct {
	Root   string
	Header string
	Body   string
}

var Card = styles.NewSheet("card",
	func(p theme.Palette, css *strings.Builder, c *styles.Counter) {
		border := p.Color(theme.TokenBorderDefault)
		root := class(c.Class())
		rule(css, root,
			decl("border", "1px solid "+border),
			decl("border-radius", "6px"),
			decl("background", theme.Mix(p.Color(theme.TokenSurfaceBg), border, 0.08)),
		)
		rule(css, root+":focus-within", decl("border-color", p.Color(theme.TokenBorderHighlight)))
		rule(css, class(c.Class()),
			decl("padding", "0.5em 1em"),
			decl("border-bottom", "1px solid "+border),
			decl("color", p.Color(theme.TokenTextSecondary)),
		)
		rule(css, class(c.Class()), decl("padding", "1em"))
	},
	func(start styles.Counter) CardClasses {
		return CardClasses{
			Root:   styles.ClassAt(start, 0),
			Header: styles.ClassAt(start, 1),
			Body:   styles.ClassAt(start, 2),
		}
	},
	styles.Span(3),
)

// AlertClasses has one class per status.
type AlertClasses struct {
	Success string
	Warning string
	Error   string
}

var alertTokens = []theme.Token{theme.TokenStatusSuccess, theme.TokenStatusWarning, theme.TokenStatusError}

var Alert = styles.NewSheet("alert",
	func(p theme.Palette, css *strings.Builder, c *styles.Counter) {
		for _, tok := range alertTokens {
			hex := p.Color(tok)
			rule(css, class(c.Class()),
				decl("color", hex),
				decl("background", theme.Alpha(hex, 0.12)),
				decl("border-left", fmt.Sprintf("3px solid %s", hex)),
				decl("padding", "0.5em 1em"),
			)
		}
	},
	func(start styles.Counter) AlertClasses {
		return AlertClasses{
			Success: styles.ClassAt(start, 0),
			Warning: styles.ClassAt(start, 1),
			Error:   styles.ClassAt(start, 2),
		}
	},
	styles.Span(uint64(len(alertTokens))),
)

// Bundle is every stock sheet's classes.
type Bundle struct {
	Surface SurfaceClasses
	Text    TextClasses
	Button  ButtonClasses
	Card    CardClasses
	Alert   AlertClasses
}

// RegisterAll registers every stock sheet with p in a fixed order.
func RegisterAll(p *styles.Provider[theme.Palette]) Bundle {
	return Bundle{
		Surface: styles.Use(p, Surface),
		Text:    styles.Use(p, Text),
		Button:  styles.Use(p, Button),
		Card:    styles.Use(p, Card),
		Alert:   styles.Use(p, Alert),
	}
}

// Names lists the stock sheets in registration order.
func Names() []string {
	return []string{
		Surface.SheetName(),
		Text.SheetName(),
		Button.SheetName(),
		Card.SheetName(),
		Alert.SheetName(),
	}
}
