package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rshade/scrollmenu/internal/config"
	"github.com/rshade/scrollmenu/internal/logging"
	"github.com/rshade/scrollmenu/internal/tui"
	"github.com/rshade/scrollmenu/internal/tui/menubar"
)

// defaultDemoEntries is the sample menu shown when no args are given.
//
//nolint:gochecknoglobals // Static demo content.
var defaultDemoEntries = []string{
	"home", "new arrivals", "clothing", "shoes", "accessories",
	"sale", "gift cards", "about us", "contact",
}

// newDemoCmd creates the demo command that runs the menu bar full screen.
func newDemoCmd() *cobra.Command {
	var (
		step     string
		duration int
	)

	cmd := &cobra.Command{
		Use:   "demo [entries...]",
		Short: "Run the scrollable menu bar demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return fmt.Errorf("demo requires an interactive terminal")
			}

			cfg := contextConfig(cmd)
			if cfg == nil {
				cfg = config.Default()
			}
			if cmd.Flags().Changed("step") {
				cfg.Menu.Step = step
			}
			if cmd.Flags().Changed("duration") {
				cfg.Menu.AnimationMs = duration
			}
			for _, w := range cfg.Normalize() {
				cmd.PrintErrf("Warning: %s\n", w)
			}

			entries := args
			if len(entries) == 0 {
				entries = defaultDemoEntries
			}

			bar := menubar.New(cmd.Context(), demoItems(entries), cfg.Menu, tui.DefaultTheme())
			app := newDemoApp(bar)

			opts := []tea.ProgramOption{tea.WithAltScreen()}
			if cfg.Menu.Mouse {
				opts = append(opts, tea.WithMouseCellMotion())
			}

			logger := logging.FromContext(cmd.Context())
			logger.Debug().Int("entries", len(entries)).Msg("starting demo")

			if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
				return fmt.Errorf("running demo: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&step, "step", config.StepAuto, `scroll step: "auto" or a column count`)
	cmd.Flags().IntVar(&duration, "duration", config.DefaultAnimationMs, "scroll animation duration in milliseconds")
	return cmd
}

// demoItems converts raw entry strings into title-cased menu items.
func demoItems(entries []string) []menubar.Item {
	titler := cases.Title(language.English)
	items := make([]menubar.Item, len(entries))
	for i, e := range entries {
		items[i] = menubar.Item{Label: titler.String(e)}
	}
	return items
}

// demoApp hosts the menu bar in a runnable program: it forwards every
// message to the bar, tracks the bar's layout notifications for the status
// line, and owns quitting.
type demoApp struct {
	bar        *menubar.Model
	lastLayout *menubar.LayoutMsg
}

func newDemoApp(bar *menubar.Model) *demoApp {
	return &demoApp{bar: bar}
}

// Init starts the bar's initial layout pass.
func (a *demoApp) Init() tea.Cmd {
	return a.bar.Init()
}

// Update routes messages to the bar and handles quit keys.
func (a *demoApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			a.bar.Close()
			return a, tea.Quit
		}

	case menubar.LayoutMsg:
		layout := msg
		a.lastLayout = &layout
		return a, nil
	}

	_, cmd := a.bar.Update(msg)
	return a, cmd
}

// View renders the bar plus a status line fed by the layout notifications.
func (a *demoApp) View() string {
	if a.bar.Closed() {
		return ""
	}

	view := a.bar.View()
	if view == "" {
		return "terminal too narrow\n"
	}

	status := "←/→ scroll · q quit"
	if a.lastLayout != nil {
		status = fmt.Sprintf("offset %d/%d · step %d · %s",
			a.lastLayout.Offset,
			a.lastLayout.Width-a.lastLayout.Viewport,
			a.lastLayout.Step,
			status,
		)
	}

	return view + "\n\n" + status + "\n"
}
