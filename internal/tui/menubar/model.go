package menubar

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oklog/ulid/v2"

	"github.com/rshade/scrollmenu/internal/config"
	"github.com/rshade/scrollmenu/internal/logging"
	"github.com/rshade/scrollmenu/internal/scroll"
	"github.com/rshade/scrollmenu/internal/tui"
)

// frameInterval is the animation frame period (~60fps).
const frameInterval = 16 * time.Millisecond

// swipeThreshold is the minimum horizontal displacement, in columns, for a
// drag to register as a swipe rather than a click.
const swipeThreshold = 2

// Item is a single entry in the menu bar. A nil Style falls back to the
// theme's item style. The item's outer extent (style margins included) is
// what layout measurement sums.
type Item struct {
	Label string
	Style *lipgloss.Style
}

// LayoutMsg is emitted after every layout recomputation. It is the widget's
// sole public observability hook: hosts can watch it to react to
// resize-driven layout changes.
type LayoutMsg struct {
	// ID identifies the emitting widget instance.
	ID string
	// Offset is the clamped scroll offset in columns.
	Offset int
	// Width is the measured content width (floored at the viewport).
	Width int
	// Viewport is the visible window width in columns.
	Viewport int
	// Step is the per-action scroll distance.
	Step int
	// AtStart and AtEnd report the boundary state (edge-fade hooks).
	AtStart bool
	AtEnd   bool
}

// relayoutMsg fires when the resize debounce timer expires. Stale tags are
// dropped, so only the last resize of a burst triggers work.
type relayoutMsg struct {
	id  string
	tag int
}

// frameMsg advances an offset transition. Stale tags are dropped, so a new
// transition interrupts any in-flight one.
type frameMsg struct {
	id  string
	tag int
}

// Model is the Bubble Tea model for the scrollable menu bar.
type Model struct {
	id    string
	ctx   context.Context
	items []Item

	cfg   config.MenuConfig
	theme tui.Theme
	keys  KeyMap

	state      scroll.State
	itemWidths []int
	width      int

	// Animated render position. The logical offset in state updates
	// immediately; renderOffset chases it linearly over the configured
	// duration.
	renderOffset float64
	animFrom     float64
	animStart    time.Time
	animTag      int
	animating    bool

	// Resize debounce bookkeeping.
	resizeTag    int
	pendingWidth int

	// Drag gesture bookkeeping.
	dragging bool
	dragX    int
	dragY    int

	closed bool
}

// New creates a menu bar over items. The configuration must already be
// resolved (defaults merged with file and caller overrides); it is not
// re-validated here and never changes after construction. The context
// carries the logger, if any.
func New(ctx context.Context, items []Item, cfg config.MenuConfig, theme tui.Theme) *Model {
	if ctx == nil {
		ctx = context.Background()
	}

	m := &Model{
		id:    ulid.Make().String(),
		ctx:   ctx,
		items: items,
		cfg:   cfg,
		theme: theme,
		keys:  DefaultKeyMap(),
	}
	m.measureItems()
	return m
}

// ID returns the widget's instance identifier, as carried by LayoutMsg.
func (m *Model) ID() string {
	return m.id
}

// SetKeyMap replaces the navigation key bindings.
func (m *Model) SetKeyMap(keys KeyMap) {
	m.keys = keys
}

// Init performs the initial layout pass notification.
func (m *Model) Init() tea.Cmd {
	return m.layoutCmd()
}

// Update handles input, resize, and internal timer messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.scheduleRelayout(msg.Width)

	case relayoutMsg:
		if msg.id != m.id || msg.tag != m.resizeTag {
			return m, nil
		}
		m.width = m.pendingWidth
		return m, m.relayout()

	case frameMsg:
		return m, m.advanceFrame(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Prev):
			return m, m.prev()
		case key.Matches(msg, m.keys.Next):
			return m, m.next()
		}

	case tea.MouseMsg:
		if m.cfg.Mouse {
			return m, m.handleMouse(msg)
		}
	}

	return m, nil
}

// Close tears the widget down: pending debounce and animation timers are
// invalidated and the model goes inert (Update and View become no-ops).
// Calling Close again is a no-op.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.resizeTag++
	m.animTag++
	m.animating = false
	logging.FromContext(m.ctx).Debug().
		Str("widget", m.id).
		Msg("menubar closed")
}

// Closed reports whether Close has been called.
func (m *Model) Closed() bool {
	return m.closed
}

// SetWidth applies a new total width immediately, bypassing the resize
// debounce. Hosts that manage their own layout call this instead of
// forwarding tea.WindowSizeMsg.
func (m *Model) SetWidth(w int) tea.Cmd {
	if m.closed {
		return nil
	}
	m.resizeTag++
	m.pendingWidth = w
	m.width = w
	return m.relayout()
}

// SetItems replaces the menu contents and recomputes layout.
func (m *Model) SetItems(items []Item) tea.Cmd {
	if m.closed {
		return nil
	}
	m.items = items
	return m.relayout()
}

// Offset returns the current clamped scroll offset.
func (m *Model) Offset() int { return m.state.Offset() }

// ContentWidth returns the measured strip width.
func (m *Model) ContentWidth() int { return m.state.Width() }

// Viewport returns the visible window width.
func (m *Model) Viewport() int { return m.state.Viewport() }

// Step returns the per-action scroll distance.
func (m *Model) Step() int { return m.state.Step() }

// PrevVisible reports whether the "previous" control is shown.
func (m *Model) PrevVisible() bool { return m.state.PrevVisible() }

// NextVisible reports whether the "next" control is shown.
func (m *Model) NextVisible() bool { return m.state.NextVisible() }

// AtStart reports whether the strip sits at its beginning.
func (m *Model) AtStart() bool { return m.state.AtStart() }

// AtEnd reports whether the strip sits at its end.
func (m *Model) AtEnd() bool { return m.state.AtEnd() }

// Animating reports whether an offset transition is in flight.
func (m *Model) Animating() bool { return m.animating }

// scheduleRelayout restarts the debounce timer for a new total width. Any
// previously pending relayout is superseded by bumping the tag.
func (m *Model) scheduleRelayout(width int) tea.Cmd {
	m.pendingWidth = width
	m.resizeTag++

	id, tag := m.id, m.resizeTag
	debounce := time.Duration(m.cfg.DebounceMs) * time.Millisecond
	return tea.Tick(debounce, func(time.Time) tea.Msg {
		return relayoutMsg{id: id, tag: tag}
	})
}

// relayout runs a full layout pass: re-measure items, derive the viewport
// and step, re-clamp the offset, and notify observers. The render position
// transitions to the re-clamped offset.
func (m *Model) relayout() tea.Cmd {
	m.measureItems()

	viewport := m.width - m.prevGutter() - m.nextGutter()
	if viewport < 0 {
		viewport = 0
	}

	fixed, auto := m.cfg.StepColumns()
	mode := scroll.StepFixed
	if auto {
		mode = scroll.StepAuto
	}
	m.state.SetMetrics(viewport, m.itemWidths, mode, fixed)

	logging.FromContext(m.ctx).Debug().
		Str("widget", m.id).
		Int("viewport", viewport).
		Int("content_width", m.state.Width()).
		Int("step", m.state.Step()).
		Int("offset", m.state.Offset()).
		Msg("menubar layout pass")

	return tea.Batch(m.startTransition(), m.layoutCmd())
}

// layoutCmd emits the layout notification for external observers.
func (m *Model) layoutCmd() tea.Cmd {
	note := LayoutMsg{
		ID:       m.id,
		Offset:   m.state.Offset(),
		Width:    m.state.Width(),
		Viewport: m.state.Viewport(),
		Step:     m.state.Step(),
		AtStart:  m.state.AtStart(),
		AtEnd:    m.state.AtEnd(),
	}
	return func() tea.Msg { return note }
}

// prev scrolls one step back.
func (m *Model) prev() tea.Cmd {
	m.state.Prev()
	return m.startTransition()
}

// next scrolls one step forward.
func (m *Model) next() tea.Cmd {
	m.state.Next()
	return m.startTransition()
}

// startTransition animates the render position toward the logical offset.
// With animation disabled the position snaps. Both paths end at the same
// clamped offset. A new transition invalidates any in-flight frames.
func (m *Model) startTransition() tea.Cmd {
	target := float64(m.state.Offset())
	m.animTag++

	if m.cfg.AnimationMs <= 0 || m.renderOffset == target {
		m.renderOffset = target
		m.animating = false
		return nil
	}

	m.animFrom = m.renderOffset
	m.animStart = time.Now()
	m.animating = true
	return m.frameCmd(m.animTag)
}

// frameCmd schedules the next animation frame.
func (m *Model) frameCmd(tag int) tea.Cmd {
	id := m.id
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, tag: tag}
	})
}

// advanceFrame moves the render position along a linear ramp toward the
// logical offset, finishing exactly on it.
func (m *Model) advanceFrame(msg frameMsg) tea.Cmd {
	if msg.id != m.id || msg.tag != m.animTag || !m.animating {
		return nil
	}

	target := float64(m.state.Offset())
	duration := time.Duration(m.cfg.AnimationMs) * time.Millisecond
	elapsed := time.Since(m.animStart)

	if elapsed >= duration {
		m.renderOffset = target
		m.animating = false
		return nil
	}

	frac := float64(elapsed) / float64(duration)
	m.renderOffset = m.animFrom + (target-m.animFrom)*frac
	return m.frameCmd(msg.tag)
}

// handleMouse maps wheel, drag, and click input onto navigation. Wheel and
// swipe direction is inverted: dragging the strip left reveals content on
// the right, which is the "next" action.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelLeft:
			return m.next()
		case tea.MouseButtonWheelRight:
			return m.prev()
		case tea.MouseButtonLeft:
			m.dragging = true
			m.dragX = msg.X
			m.dragY = msg.Y
		default:
		}

	case tea.MouseActionRelease:
		if msg.Button != tea.MouseButtonLeft || !m.dragging {
			return nil
		}
		m.dragging = false
		return m.finishDrag(msg.X, msg.Y)

	case tea.MouseActionMotion:
	}

	return nil
}

// finishDrag resolves a completed press/release pair into a swipe or a
// click. The gesture counts as a swipe only when its horizontal displacement
// dominates the vertical one, so vertical drags stay available to the host.
func (m *Model) finishDrag(x, y int) tea.Cmd {
	dx := x - m.dragX
	dy := y - m.dragY

	if abs(dx) > abs(dy) && abs(dx) >= swipeThreshold {
		if dx < 0 {
			return m.next()
		}
		return m.prev()
	}

	// A stationary release is a click; check the arrow hit zones. The bar
	// is assumed to render at the left edge of its row.
	switch {
	case x < m.prevGutter() && m.state.PrevVisible():
		return m.prev()
	case x >= m.width-m.nextGutter() && m.state.NextVisible():
		return m.next()
	}
	return nil
}

// measureItems records each item's outer extent in columns.
func (m *Model) measureItems() {
	widths := make([]int, len(m.items))
	for i := range m.items {
		widths[i] = lipgloss.Width(m.renderItem(i))
	}
	m.itemWidths = widths
}

// renderItem renders one item with its effective style.
func (m *Model) renderItem(i int) string {
	item := m.items[i]
	style := m.theme.Item
	if item.Style != nil {
		style = *item.Style
	}
	return style.Render(item.Label)
}

// prevGutter returns the width reserved for the "previous" control. Gutters
// are reserved even while hidden so the viewport doesn't jump at the edges.
func (m *Model) prevGutter() int {
	return lipgloss.Width(m.theme.PrevArrow.Render(m.theme.ArrowLabel.Render(m.cfg.PrevLabel)))
}

// nextGutter returns the width reserved for the "next" control.
func (m *Model) nextGutter() int {
	return lipgloss.Width(m.theme.NextArrow.Render(m.theme.ArrowLabel.Render(m.cfg.NextLabel)))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
