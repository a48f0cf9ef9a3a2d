package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vecgeom/internal/core"
	"github.com/vovakirdan/vecgeom/internal/registry"
	"github.com/vovakirdan/vecgeom/internal/storage"
)

// MenuItem represents a selectable simulation in the menu.
type MenuItem struct {
	SimID string
	Title string
	Best  int // Most events in a recorded run, 0 when none
	Runs  int
}

// MenuModel is the Bubble Tea model for the simulation picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	sceneName   string
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	nested      bool // Selections hand control back instead of quitting
	quitting    bool
	selected    *MenuItem // Set when user selects a simulation
	openHistory bool      // True if user pressed Tab for the history board
}

// NewMenuModel creates a new menu model. Run counts come from store when it
// is not nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, sceneName string) MenuModel {
	sims := registry.List()
	items := make([]MenuItem, 0, len(sims))

	for _, s := range sims {
		item := MenuItem{SimID: s.ID, Title: s.Title}
		if store != nil {
			if stats, err := store.SimStats(s.ID); err == nil {
				item.Best = stats.BestEvents
				item.Runs = stats.RunsCount
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		sceneName: sceneName,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, m.leave()
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, m.leave()
	}

	return m, nil
}

// leave ends a standalone menu program. Nested menus keep running so the
// parent can switch views.
func (m MenuModel) leave() tea.Cmd {
	if m.nested {
		return nil
	}
	return tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  V E C G E O M  ", m.width))
	b.WriteString("\n\n")

	subtitle := "Select a simulation"
	if m.sceneName != "" {
		subtitle = fmt.Sprintf("Select a simulation (scene: %s)", m.sceneName)
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No simulations registered", m.width))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-10s", cursor, item.Title)
		if item.Runs > 0 {
			line += fmt.Sprintf("  best %d in %d runs", item.Best, item.Runs)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history board.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	SimID        string
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, sceneName string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, sceneName)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.Selected() != nil:
		result.SimID = m.Selected().SimID
	default:
		result.Quit = true
	}

	return result, nil
}
