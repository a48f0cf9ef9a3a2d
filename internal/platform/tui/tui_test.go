package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vecgeom/internal/config"
	"github.com/vovakirdan/vecgeom/internal/core"
	"github.com/vovakirdan/vecgeom/internal/registry"
	"github.com/vovakirdan/vecgeom/internal/storage"
)

const stubID = "zz-tui-stub"

// countSim ticks until limit and counts one event every other tick.
type countSim struct {
	ticks, limit int
	scene        string
}

func (s *countSim) ID() string                { return stubID }
func (s *countSim) Title() string             { return "Counter" }
func (s *countSim) Reset(core.RuntimeConfig)  { s.ticks = 0 }
func (s *countSim) Configure(sc config.Scene) { s.scene = sc.Name }
func (s *countSim) Render(dst *core.Screen)   { dst.DrawText(0, 0, "count") }
func (s *countSim) State() core.SimState {
	return core.SimState{Ticks: s.ticks, Events: s.ticks / 2, Finished: s.ticks >= s.limit}
}

func (s *countSim) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		s.ticks = 0
	} else if s.ticks < s.limit {
		s.ticks++
	}
	return core.StepResult{State: s.State()}
}

func init() {
	registry.Register(stubID, func() registry.Sim { return &countSim{limit: 4} })
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", keyRune('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s is down", keyRune('s'), core.ActionDown, false},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPause, false},
		{"p pauses", keyRune('p'), core.ActionPause, false},
		{"r restarts", keyRune('r'), core.ActionRestart, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"unbound key", keyRune('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{keyRune('k'), MenuActionUp},
		{keyRune('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{keyRune('b'), MenuActionBack},
		{keyRune('q'), MenuActionQuit},
		{keyRune('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

// tick delivers one tick to the model and returns the updated model.
func tick(t *testing.T, m SimModel) SimModel {
	t.Helper()
	next, _ := m.Update(TickMsg{Gen: m.gen})
	sm, ok := next.(SimModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sm
}

func press(t *testing.T, m SimModel, msg tea.KeyMsg) (SimModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SimModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sm, cmd
}

func TestSimModelRecordsFinishedRunOnce(t *testing.T) {
	store := openStore(t)
	sim := &countSim{limit: 4}
	m := NewSimModel(sim, store, core.DefaultConfig(), nil)
	m.Init()

	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}
	if !m.State().Finished {
		t.Fatal("simulation should have finished")
	}

	runs, err := store.TopRuns(stubID, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly 1 recorded run, got %d", len(runs))
	}
	if runs[0].Ticks != 4 || runs[0].Events != 2 {
		t.Errorf("recorded run = %+v, expected 4 ticks and 2 events", runs[0])
	}

	// Quitting after the run was recorded must not store it again
	m, _ = press(t, m, keyRune('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if runs, _ := store.TopRuns(stubID, 10); len(runs) != 1 {
		t.Errorf("expected 1 run after quitting, got %d", len(runs))
	}
}

func TestSimModelRestartRecordsAbandonedRun(t *testing.T) {
	store := openStore(t)
	m := NewSimModel(&countSim{limit: 100}, store, core.DefaultConfig(), nil)
	m.Init()

	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}
	m, _ = press(t, m, keyRune('r'))
	m = tick(t, m)
	if m.State().Ticks != 0 {
		t.Errorf("ticks after restart = %d, expected 0", m.State().Ticks)
	}

	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs (abandoned + quit), got %d", len(runs))
	}
	if runs[0].Ticks != 5 || runs[1].Ticks != 3 {
		t.Errorf("run ticks = %d, %d; expected 5, 3", runs[0].Ticks, runs[1].Ticks)
	}
}

func TestSimModelIgnoresStaleTicks(t *testing.T) {
	m := NewSimModel(&countSim{limit: 100}, nil, core.DefaultConfig(), nil)
	m.Init()

	next, cmd := m.Update(TickMsg{Gen: m.gen + 1000})
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if next.(SimModel).State().Ticks != 0 {
		t.Error("stale tick should not advance the simulation")
	}
}

func TestSimModelBackWhenNested(t *testing.T) {
	m := NewSimModel(&countSim{limit: 100}, nil, core.DefaultConfig(), nil)
	m.nested = true
	m.Init()
	m = tick(t, m)

	m, cmd := press(t, m, keyRune('b'))
	if !m.BackToMenu() {
		t.Error("b should request the menu")
	}
	if cmd != nil {
		t.Error("nested back should not quit the program")
	}
	if m.IsQuitting() {
		t.Error("back is not a quit")
	}
}

func TestSimModelView(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 10, 3
	m := NewSimModel(&countSim{limit: 1}, nil, cfg, nil)

	if !strings.Contains(m.View(), "count") {
		t.Errorf("View() = %q, expected the rendered frame", m.View())
	}
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	cfg := core.DefaultConfig()
	scene := config.DefaultScene()
	scene.Name = "lab"

	var model tea.Model = NewSessionModel(store, cfg, scene, nil)
	update := func(msg tea.Msg) SessionModel {
		t.Helper()
		model, _ = model.Update(msg)
		return model.(SessionModel)
	}

	// Move the cursor to the stub and select it
	sm := model.(SessionModel)
	for i, item := range sm.menu.items {
		if item.SimID == stubID {
			sm.menu.cursor = i
		}
	}
	model = sm

	sm = update(tea.KeyMsg{Type: tea.KeyEnter})
	if sm.view != viewSim {
		t.Fatalf("view = %v after selecting, expected the simulation", sm.view)
	}
	stub, ok := sm.sim.sim.(*countSim)
	if !ok {
		t.Fatalf("running sim is %T", sm.sim.sim)
	}
	if stub.scene != "lab" {
		t.Errorf("sim scene = %q, expected lab", stub.scene)
	}

	sm = update(TickMsg{Gen: sm.sim.gen})
	sm = update(keyRune('b'))
	if sm.view != viewMenu {
		t.Fatalf("view = %v after back, expected the menu", sm.view)
	}

	sm = update(tea.KeyMsg{Type: tea.KeyTab})
	if sm.view != viewHistory {
		t.Fatalf("view = %v after tab, expected history", sm.view)
	}
	sm = update(tea.KeyMsg{Type: tea.KeyEscape})
	if sm.view != viewMenu {
		t.Fatalf("view = %v after esc, expected the menu", sm.view)
	}

	// The run abandoned with b shows up in the menu stats
	for _, item := range sm.menu.items {
		if item.SimID == stubID && item.Runs != 1 {
			t.Errorf("menu runs for stub = %d, expected 1", item.Runs)
		}
	}

	sm = update(keyRune('q'))
	if !sm.quitting {
		t.Error("q should end the session")
	}
}

func TestHistoryTabs(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(stubID, 40, 7); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveEval("mag((3, 4))", "5"); err != nil {
		t.Fatalf("SaveEval() failed: %v", err)
	}

	m := NewHistoryModel(store, 100, 30)
	for m.current().simID != stubID {
		m.switchTab(1)
	}
	if len(m.runs) != 1 || m.runs[0].Events != 7 {
		t.Errorf("runs = %+v, expected the saved run", m.runs)
	}
	if !strings.Contains(m.statsLine(), "best 7") {
		t.Errorf("statsLine() = %q", m.statsLine())
	}

	for m.current().simID != "" {
		m.switchTab(1)
	}
	if len(m.evals) != 1 || m.evals[0].Result != "5" {
		t.Errorf("evals = %+v, expected the saved expression", m.evals)
	}
	if !strings.Contains(m.View(), "mag((3, 4))") {
		t.Error("expressions tab should list the saved expression")
	}

	// Wrapping backwards from the first tab lands on the last
	m.cursor = 0
	m.switchTab(-1)
	if m.cursor != len(m.tabs)-1 {
		t.Errorf("cursor = %d after wrapping back, expected %d", m.cursor, len(m.tabs)-1)
	}
}
