package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/lidkit/pkg/geom"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	barStyle          = lipgloss.NewStyle().Foreground(colorCyan)
	peakStyle         = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

const barWidth = 32

// =============================================================================
// PlaneBrowserModel - Interactive plane and sample browser
// =============================================================================

// PlaneBrowserModel is the bubbletea model behind the view command. The
// left column lists the C-planes; the right column shows the intensity
// samples of the selected plane, scaled against the web's peak.
type PlaneBrowserModel struct {
	Title  string
	Web    *photweb.Web
	Cursor int // selected plane
	Offset int // first visible sample
	Height int // visible rows
}

// NewPlaneBrowserModel creates a browser positioned on the first plane.
func NewPlaneBrowserModel(title string, web *photweb.Web) PlaneBrowserModel {
	return PlaneBrowserModel{Title: title, Web: web, Height: 18}
}

func (m PlaneBrowserModel) Init() tea.Cmd {
	return nil
}

func (m PlaneBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < m.Web.NPlanes()-1 {
				m.Cursor++
			}
		case "pgup", "u":
			m.Offset = max(0, m.Offset-m.Height)
		case "pgdown", "d":
			m.Offset = min(m.maxOffset(), m.Offset+m.Height)
		case "home", "g":
			m.Offset = 0
		case "end", "G":
			m.Offset = m.maxOffset()
		}
		m.Offset = min(m.Offset, m.maxOffset())
	case tea.WindowSizeMsg:
		m.Height = max(5, msg.Height-8)
		m.Offset = min(m.Offset, m.maxOffset())
	}
	return m, nil
}

func (m PlaneBrowserModel) maxOffset() int {
	if m.Web.NPlanes() == 0 {
		return 0
	}
	return max(0, m.Web.Plane(m.Cursor).NSamples()-m.Height)
}

func (m PlaneBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ plane  u/d scroll  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if m.Web.NPlanes() == 0 {
		b.WriteString(listDimStyle.Render("no planes"))
		return b.String()
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.planeList(), "   ", m.sampleTable()))
	b.WriteString("\n\n")

	p := m.Web.Plane(m.Cursor)
	w := p.Width()
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  width -%s / +%s  ∫ %.6g",
		m.Cursor+1, m.Web.NPlanes(),
		formatDeg(geom.RadToDeg(w.Lower)), formatDeg(geom.RadToDeg(w.Upper)), p.Integrate())))
	return b.String()
}

// planeList renders a window of plane angles around the cursor.
func (m PlaneBrowserModel) planeList() string {
	n := m.Web.NPlanes()
	start := min(max(0, m.Cursor-m.Height/2), max(0, n-m.Height))
	end := min(n, start+m.Height)

	var lines []string
	for i := start; i < end; i++ {
		line := fmt.Sprintf("  C %-8s", formatDeg(m.Web.Plane(i).AngleDeg()))
		if i == m.Cursor {
			lines = append(lines, listSelectedStyle.Render("▸"+line[1:]))
			continue
		}
		lines = append(lines, listNormalStyle.Render(line))
	}
	return strings.Join(lines, "\n")
}

// sampleTable renders the visible samples of the selected plane.
func (m PlaneBrowserModel) sampleTable() string {
	p := m.Web.Plane(m.Cursor)
	peak := m.Web.MaxIntensity()
	end := min(p.NSamples(), m.Offset+m.Height)

	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		v := p.Intensities[i]
		rows = append(rows, []string{
			formatDeg(geom.RadToDeg(p.Angles[i])),
			fmt.Sprintf("%.5g", v),
			bar(v, peak, barWidth),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("γ", "cd", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().PaddingRight(1)
			idx := m.Offset + row
			if col == 2 {
				if idx < p.NSamples() && p.Intensities[idx] == peak {
					return base.Inherit(peakStyle)
				}
				return base.Inherit(barStyle)
			}
			return base.Foreground(colorWhite)
		})
	return t.Render()
}

// bar draws v as a horizontal bar of at most width cells relative to peak.
func bar(v, peak float64, width int) string {
	if peak <= 0 || v <= 0 {
		return ""
	}
	n := int(math.Round(v / peak * float64(width)))
	return strings.Repeat("█", min(n, width))
}
