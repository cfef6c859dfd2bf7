// Package tui holds the shared styling surface for scrollmenu widgets.
//
// A Theme carries one lipgloss style per structural role of the menu bar
// (wrapper, list strip, item, viewport, the two arrow controls and their
// label centering). Widgets take a Theme at construction and never mutate
// it, so one Theme can back any number of instances.
package tui

import "github.com/charmbracelet/lipgloss"

// Shared color palette.
const (
	// ColorAccent highlights interactive elements (arrow controls).
	ColorAccent = lipgloss.Color("62")
	// ColorMuted renders de-emphasized chrome.
	ColorMuted = lipgloss.Color("241")
	// ColorItem is the default menu item foreground.
	ColorItem = lipgloss.Color("252")
)

// itemGap is the default horizontal margin around a menu item. It is part of
// the item's outer extent for measurement purposes.
const itemGap = 1

// Theme is the set of styles applied to the structural parts of a menu bar.
type Theme struct {
	// Wrapper styles the whole control line.
	Wrapper lipgloss.Style
	// List styles the scrolling item strip.
	List lipgloss.Style
	// Item styles a single menu entry; its margins count toward the item's
	// measured outer width.
	Item lipgloss.Style
	// Viewport styles the visible window of the strip.
	Viewport lipgloss.Style
	// PrevArrow and NextArrow style the navigation controls.
	PrevArrow lipgloss.Style
	// NextArrow styles the forward control.
	NextArrow lipgloss.Style
	// ArrowLabel centers the control text inside its gutter.
	ArrowLabel lipgloss.Style
}

// DefaultTheme returns the stock scrollmenu look.
func DefaultTheme() Theme {
	arrow := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	return Theme{
		Wrapper:    lipgloss.NewStyle(),
		List:       lipgloss.NewStyle(),
		Item:       lipgloss.NewStyle().Foreground(ColorItem).Margin(0, itemGap),
		Viewport:   lipgloss.NewStyle(),
		PrevArrow:  arrow,
		NextArrow:  arrow,
		ArrowLabel: lipgloss.NewStyle().Align(lipgloss.Center),
	}
}
