package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/plasmidmap/plasmidmap/pkg/plasmid"
	"github.com/plasmidmap/plasmidmap/pkg/render/circular/layout"
)

// inspectRow is one feature's line in the inspect table.
type inspectRow struct {
	name   string
	kind   string
	span   string
	length string
	orbit  string
	labels string
}

// inspectRows builds the table rows from the plasmid's features, in
// insertion order. Orbit allocation must have run already for the orbit
// column to be meaningful.
func inspectRows(p *plasmid.Plasmid) []inspectRow {
	rows := make([]inspectRow, 0, len(p.Features()))
	for _, f := range p.Features() {
		switch f := f.(type) {
		case *plasmid.Rectangle:
			rows = append(rows, spanRow(f.Name(), "rectangle", f.Start(), f.End(), f.Orbit(), f.LabelStyles()))
		case *plasmid.Arrow:
			kind := "arrow (cw)"
			if f.Direction() == plasmid.CounterClockwise {
				kind = "arrow (ccw)"
			}
			rows = append(rows, spanRow(f.Name(), kind, f.Start(), f.End(), f.Orbit(), f.LabelStyles()))
		case *plasmid.RestrictionSite:
			rows = append(rows, markerRow(f.Name(), "site", f.Position()))
		case *plasmid.Marker:
			rows = append(rows, markerRow(f.Name(), "label", f.Position()))
		}
	}
	return rows
}

func spanRow(name, kind string, start, end, orbit int, styles []plasmid.LabelStyle) inspectRow {
	labels := make([]string, len(styles))
	for i, s := range styles {
		labels[i] = string(s)
	}
	return inspectRow{
		name:   name,
		kind:   kind,
		span:   fmt.Sprintf("%d..%d", start, end),
		length: fmt.Sprintf("%d bp", end-start),
		orbit:  fmt.Sprintf("%d", orbit),
		labels: strings.Join(labels, ", "),
	}
}

func markerRow(name, kind string, position int) inspectRow {
	return inspectRow{
		name:  name,
		kind:  kind,
		span:  fmt.Sprintf("%d", position),
		orbit: "-",
	}
}

// renderFeatureTable renders the rows as a bordered table. A cursor of -1
// disables row highlighting (plain output).
func renderFeatureTable(rows []inspectRow, cursor int) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		cells[i] = []string{marker, r.name, r.kind, r.span, r.length, r.orbit, r.labels}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Feature", "Type", "Span", "Length", "Orbit", "Labels").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if col >= 3 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}

// inspectModel is the bubbletea model for the interactive feature table.
type inspectModel struct {
	name      string
	basePairs int
	orbits    int
	rows      []inspectRow
	cursor    int
}

// newInspectModel builds the model from a loaded plasmid and its layout.
func newInspectModel(p *plasmid.Plasmid, l *layout.Layout) inspectModel {
	return inspectModel{
		name:      p.Name(),
		basePairs: p.BasePairs(),
		orbits:    l.Orbits,
		rows:      inspectRows(p),
	}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.name))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d bp · %d features · %d orbits", m.basePairs, len(m.rows), m.orbits)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(StyleDim.Render("  no features"))
		return b.String()
	}

	b.WriteString(renderFeatureTable(m.rows, m.cursor))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.rows))))

	return b.String()
}
