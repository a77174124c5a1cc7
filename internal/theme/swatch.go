package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Swatch renders one line per token with a colored block, for terminals.
func Swatch(p Palette) string {
	var b strings.Builder
	block := lipgloss.NewStyle().Padding(0, 2)
	label := lipgloss.NewStyle().Width(22)
	for _, tok := range AllTokens() {
		hex := p.Color(tok)
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			block.Background(lipgloss.Color(hex)).Render(" "),
			label.Render(string(tok)),
			hex))
	}
	return b.String()
}

// Strip renders the palette's status and button colors as a single line.
func Strip(p Palette) string {
	tokens := []Token{
		TokenTextPrimary, TokenBorderHighlight, TokenStatusSuccess,
		TokenStatusWarning, TokenStatusError, TokenButtonPrimaryBg,
	}
	cells := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		cells = append(cells, lipgloss.NewStyle().
			Background(lipgloss.Color(p.Color(tok))).
			Render("   "))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
