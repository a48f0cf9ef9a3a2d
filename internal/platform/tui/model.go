package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vecgeom/internal/core"
	"github.com/vovakirdan/vecgeom/internal/registry"
	"github.com/vovakirdan/vecgeom/internal/storage"
)

// SimModel is the Bubble Tea model that drives one simulation. It is used
// on its own by "vecgeom run" and nested inside a SessionModel for the menu
// and SSH flows.
type SimModel struct {
	sim        registry.Sim
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	state      core.SimState
	nested     bool // Back returns control to the parent instead of quitting
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
	gen        uint64
}

// NewSimModel creates a model for the given simulation. store and logger
// may be nil.
func NewSimModel(sim registry.Sim, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SimModel {
	return SimModel{
		sim:        sim,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gen:        nextTickGen(),
	}
}

// Init resets the simulation and starts the tick loop.
func (m SimModel) Init() tea.Cmd {
	m.sim.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m SimModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Simulations scale their world to the screen, so no reset is needed.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m SimModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.recordRun()
		m.backToMenu = true
		if !m.nested {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick advances the simulation by one step.
func (m SimModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	restarting := m.inputFrame.Has(core.ActionRestart)
	if restarting {
		m.recordRun()
	}

	result := m.sim.Step(m.inputFrame)
	m.state = result.State
	if restarting {
		m.runSaved = false
	}

	if m.state.Finished {
		m.recordRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// recordRun stores the current run once. Runs that never ticked are skipped.
func (m *SimModel) recordRun() {
	if m.runSaved || m.state.Ticks == 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	if _, err := m.store.SaveRun(m.sim.ID(), m.state.Ticks, m.state.Events); err != nil && m.logger != nil {
		m.logger.Warn("could not save run", "sim", m.sim.ID(), "error", err)
	}
}

// saveScreenshot writes the current frame as plain text to
// ~/.vecgeom/screenshots.
func (m *SimModel) saveScreenshot() {
	m.screen.Clear()
	m.sim.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".vecgeom", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.sim.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil && m.logger != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current frame.
func (m SimModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.sim.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the simulation state as of the last tick.
func (m SimModel) State() core.SimState {
	return m.state
}

// IsQuitting returns true if the user requested to quit entirely.
func (m SimModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to leave the simulation.
func (m SimModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one simulation.
func Run(sim registry.Sim, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewSimModel(sim, store, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
