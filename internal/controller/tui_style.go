package controller

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	heldStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activePane    = paneStyle.BorderForeground(lipgloss.Color("205"))
	diagramStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
	controlsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

type keyMap struct {
	quit     key.Binding
	focus    key.Binding
	up       key.Binding
	down     key.Binding
	pickUp   key.Binding
	drop     key.Binding
	cancel   key.Binding
	create   key.Binding
	rename   key.Binding
	remove   key.Binding
	delete   key.Binding
	back     key.Binding
	forward  key.Binding
	settings key.Binding
	analyze  key.Binding
	results  key.Binding
	copy     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		pickUp:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pick up")),
		drop:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		create:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new bucket")),
		rename:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		remove:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove item")),
		delete:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete bucket")),
		back:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "scroll back")),
		forward:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "scroll forward")),
		settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		analyze:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analyze")),
		results:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "results")),
		copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy results")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.focus, k.pickUp, k.drop, k.create, k.analyze, k.settings, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.focus, k.pickUp, k.drop, k.cancel},
		{k.create, k.rename, k.remove, k.delete, k.back, k.forward},
		{k.settings, k.analyze, k.results, k.copy, k.quit},
	}
}

func renderTreeRow(row m.TreeRow) string {
	name := row.Name
	if row.IsDir {
		name += "/"
	}

	return strings.Repeat("  ", row.Depth) + name
}

// markdownStyle is the glamour style summaries are rendered with.
var markdownStyle = styles.AutoStyle

const defaultMarkdownWidth = 80

// renderDocument styles a results document for the terminal. Section bodies
// are rendered as markdown and diagram fences are drawn as boxes.
func renderDocument(doc m.Document, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(doc.Title))
	b.WriteString("\n\n")

	diagrams := make(map[int][]m.Diagram)
	for _, diagram := range doc.Diagrams {
		diagrams[diagram.Section] = append(diagrams[diagram.Section], diagram)
	}

	if width <= 0 {
		width = defaultMarkdownWidth
	}

	renderers := make(map[int]*glamour.TermRenderer)

	for i, section := range doc.Sections {
		indent := strings.Repeat("  ", max(section.Level-2, 0))
		b.WriteString(indent + headingStyle.Render(section.Title))
		b.WriteString("\n")

		body := section.Body
		if len(diagrams[i]) > 0 {
			body = stripDiagramFences(body)
		}

		if strings.TrimSpace(body) != "" {
			wrap := max(width-len(indent)-2, 20)

			renderer, ok := renderers[wrap]
			if !ok {
				renderer = newMarkdownRenderer(wrap)
				renderers[wrap] = renderer
			}

			b.WriteString(lipgloss.NewStyle().PaddingLeft(len(indent)).Render(renderMarkdown(renderer, body)))
			b.WriteString("\n")
		}

		for _, diagram := range diagrams[i] {
			b.WriteString(diagramStyle.Render(fmt.Sprintf("%s\n%s", subtleStyle.Render(diagram.Kind), diagram.Source)))
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	return b.String()
}

func newMarkdownRenderer(wrap int) *glamour.TermRenderer {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		slog.Debug("markdown renderer unavailable", "error", err)
		return nil
	}

	return renderer
}

// renderMarkdown falls back to the raw text when rendering fails.
func renderMarkdown(renderer *glamour.TermRenderer, body string) string {
	if renderer == nil {
		return body
	}

	out, err := renderer.Render(body)
	if err != nil {
		slog.Debug("markdown render failed", "error", err)
		return body
	}

	return strings.Trim(out, "\n")
}

func stripDiagramFences(body string) string {
	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))
	skipping := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case !skipping && strings.HasPrefix(trimmed, "```") &&
			strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(trimmed, "```")), "mermaid"):
			skipping = true
		case skipping && trimmed == "```":
			skipping = false
		case !skipping:
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n")
}
