package menubar

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the bar: previous gutter, the visible window of the item
// strip, next gutter. A closed or unmeasured widget renders nothing.
func (m *Model) View() string {
	if m.closed || m.width <= 0 {
		return ""
	}

	viewport := m.state.Viewport()
	if viewport <= 0 {
		return ""
	}

	strip := m.renderStrip()

	// The render offset may sit between the old and new logical offset
	// mid-transition; it never escapes the content bounds.
	off := int(math.Round(m.renderOffset))
	if off < 0 {
		off = 0
	}
	if max := m.state.MaxOffset(); off > max {
		off = max
	}

	window := ansi.Cut(strip, off, off+viewport)
	if w := ansi.StringWidth(window); w < viewport {
		window += strings.Repeat(" ", viewport-w)
	}
	window = m.theme.Viewport.Render(window)

	line := lipgloss.JoinHorizontal(lipgloss.Top, m.prevControl(), window, m.nextControl())
	return m.theme.Wrapper.Render(line)
}

// prevControl renders the "previous" arrow, or blank gutter space while the
// strip sits at its start.
func (m *Model) prevControl() string {
	if !m.state.PrevVisible() {
		return strings.Repeat(" ", m.prevGutter())
	}
	return m.theme.PrevArrow.Render(m.theme.ArrowLabel.Render(m.cfg.PrevLabel))
}

// nextControl renders the "next" arrow, or blank gutter space at the end.
func (m *Model) nextControl() string {
	if !m.state.NextVisible() {
		return strings.Repeat(" ", m.nextGutter())
	}
	return m.theme.NextArrow.Render(m.theme.ArrowLabel.Render(m.cfg.NextLabel))
}

// renderStrip renders the full item strip the viewport slides over.
func (m *Model) renderStrip() string {
	if len(m.items) == 0 {
		return ""
	}

	parts := make([]string, len(m.items))
	for i := range m.items {
		parts[i] = m.renderItem(i)
	}
	return m.theme.List.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}
