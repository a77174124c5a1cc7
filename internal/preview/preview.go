// Package preview is a terminal viewer for a live stylesheet. It cycles
// theme presets on the provider it drives and shows what each rebuild
// changed.
package preview

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/mariesavch/css-in-go/internal/cachemanager"
	"github.com/mariesavch/css-in-go/internal/keys"
	"github.com/mariesavch/css-in-go/internal/log"
	"github.com/mariesavch/css-in-go/internal/pubsub"
	"github.com/mariesavch/css-in-go/internal/stylediff"
	"github.com/mariesavch/css-in-go/internal/styles"
	"github.com/mariesavch/css-in-go/internal/theme"
)

const (
	headerHeight = 3
	footerHeight = 2
	logTailLines = 4
	diffContext  = 2
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).PaddingLeft(1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#696969"))
	addStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#73F59F"))
	removeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8787"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8787")).Bold(true)
)

// Model is the preview state. The provider is driven from Update only.
type Model struct {
	provider *styles.Provider[theme.Palette]
	base     theme.Config
	presets  []string
	index    int
	palettes *cachemanager.ReadThroughCache[string, theme.Palette, theme.Config]

	changes *pubsub.Listener[styles.Change]
	logs    *log.Listener

	keys     keys.KeyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool

	css      string
	diff     []stylediff.Line
	showDiff bool
	rebuilds int
	status   string
	logTail  []string
}

// New creates a preview for p. base supplies mode and color overrides; the
// preset is replaced as the user cycles. changes must be the broker p
// publishes to.
func New(ctx context.Context, p *styles.Provider[theme.Palette], base theme.Config, changes *pubsub.Broker[styles.Change]) Model {
	presets := theme.PresetNames()
	index := slices.Index(presets, p.Theme().Name())
	if index < 0 {
		index = 0
	}
	return Model{
		provider: p,
		base:     base,
		presets:  presets,
		index:    index,
		palettes: newPaletteCache(),
		keys:     keys.DefaultKeyMap(),
		help:     help.New(),
		changes:  pubsub.NewListener(ctx, changes),
		logs:     log.NewListener(ctx),
		css:      p.Stylesheet(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.changes.Listen()}
	if m.logs != nil {
		cmds = append(cmds, m.logs.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h := max(1, msg.Height-headerHeight-footerHeight-logTailLines)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTheme):
			m.cycle(1)
		case key.Matches(msg, m.keys.PrevTheme):
			m.cycle(-1)
		case key.Matches(msg, m.keys.ToggleDiff):
			m.showDiff = !m.showDiff
			m.refreshViewport()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Down):
			m.viewport.ScrollDown(1)
		case key.Matches(msg, m.keys.Up):
			m.viewport.ScrollUp(1)
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
		}
		return m, nil

	case pubsub.Event[styles.Change]:
		m.applyChange(msg)
		return m, m.changes.Listen()

	case pubsub.Event[string]:
		m.logTail = append(m.logTail, strings.TrimRight(msg.Payload, "\n"))
		if len(m.logTail) > logTailLines {
			m.logTail = m.logTail[len(m.logTail)-logTailLines:]
		}
		return m, m.logs.Listen()
	}
	return m, nil
}

// cycle moves to the next or previous preset and updates the provider.
// The stylesheet itself arrives as a broker event.
func (m *Model) cycle(step int) {
	n := len(m.presets)
	m.index = ((m.index+step)%n + n) % n

	cfg := m.base
	cfg.Preset = m.presets[m.index]
	pal, err := m.palettes.Get(context.Background(), cfg.Preset, cfg, cachemanager.NoExpiration)
	if err != nil {
		m.status = err.Error()
		return
	}
	if !m.provider.UpdateTheme(pal) {
		m.status = fmt.Sprintf("%s renders identically, no rebuild", pal.Name())
		return
	}
	m.status = ""
}

// newPaletteCache memoizes resolved presets. base is fixed for the life of
// the model, so the preset name is a sufficient key.
func newPaletteCache() *cachemanager.ReadThroughCache[string, theme.Palette, theme.Config] {
	store := cachemanager.NewInMemoryCacheManager[string, theme.Palette](
		"palettes", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	return cachemanager.NewReadThroughCache[string, theme.Palette, theme.Config](store, func(_ context.Context, cfg theme.Config) (theme.Palette, error) {
		log.Debug(log.CatCache, "resolving palette", "preset", cfg.Preset)
		return theme.Resolve(cfg)
	}, false)
}

func (m *Model) applyChange(ev pubsub.Event[styles.Change]) {
	if ev.Payload.ProviderID != m.provider.ID() {
		return
	}
	m.diff = stylediff.Lines(m.css, ev.Payload.Stylesheet)
	m.css = ev.Payload.Stylesheet
	if ev.Type == pubsub.RebuiltEvent {
		m.rebuilds++
	}
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	if m.showDiff {
		m.viewport.SetContent(renderDiff(m.diff))
		return
	}
	m.viewport.SetContent(m.css)
}

func renderDiff(lines []stylediff.Line) string {
	if len(lines) == 0 {
		return mutedStyle.Render("no changes yet")
	}
	raw := strings.Split(strings.TrimSuffix(stylediff.Unified(lines, diffContext), "\n"), "\n")
	for i, l := range raw {
		switch {
		case strings.HasPrefix(l, "+"):
			raw[i] = addStyle.Render(l)
		case strings.HasPrefix(l, "-"):
			raw[i] = removeStyle.Render(l)
		case l == "@@":
			raw[i] = mutedStyle.Render(l)
		}
	}
	return strings.Join(raw, "\n")
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	pal := m.provider.Theme()

	var b strings.Builder
	mode := "css"
	if m.showDiff {
		mode = "diff"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("cssgo preview  %s (%s)  [%s]", pal.Name(), pal.Mode(), mode)))
	b.WriteString("\n ")
	b.WriteString(theme.Strip(pal))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(1, m.width))))
	b.WriteString("\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	stats := stylediff.Count(m.diff)
	footer := fmt.Sprintf(" %d sheets  %d bytes  %d rebuilds  +%d -%d",
		len(m.provider.Ranges()), len(m.css), m.rebuilds, stats.Added, stats.Removed)
	b.WriteString(mutedStyle.Render(footer))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(errorStyle.Render(wordwrap.String(" "+m.status, max(1, m.width))))
	} else {
		b.WriteString(" " + m.help.View(m.keys))
	}

	for _, l := range m.logTail {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(ansi.Truncate(" "+l, max(1, m.width), "…")))
	}
	return b.String()
}

// Run starts the preview program.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
