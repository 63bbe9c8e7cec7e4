package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-labs/internal/colortable"
	"github.com/vovakirdan/tui-labs/internal/config"
	"github.com/vovakirdan/tui-labs/internal/core"
)

// fakeClock returns the configured instant; tests advance it by hand.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// countingRand returns 7 for every draw and counts the calls.
type countingRand struct {
	calls int
}

func (r *countingRand) intn(int) int {
	r.calls++
	return 7
}

func newTestModel(t *testing.T, opts ...ModelOption) (Model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	opts = append([]ModelOption{WithClock(clock.now)}, opts...)

	m, err := NewModel(config.DefaultColorTableConfig(), core.DefaultConfig(), opts...)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

// Default layout: cells are 6x3, the grid starts on screen row 2.
// Cell 5 (the target) covers x in [24, 30), y in [2, 5).
func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func leftPress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func assertOthers(t *testing.T, m Model, want string) {
	t.Helper()
	for _, c := range m.Widget().Cells() {
		if c == m.Widget().Target() {
			continue
		}
		if c.Background != want {
			t.Errorf("cell %d background = %q, expected %q", c.ID, c.Background, want)
		}
	}
}

func TestCellAt(t *testing.T) {
	m, _ := newTestModel(t)

	tests := []struct {
		name   string
		x, y   int
		wantID int // 0 means no cell
	}{
		{"first cell top-left", 0, 2, 1},
		{"first cell bottom-right", 5, 4, 1},
		{"second cell", 6, 2, 2},
		{"target", 25, 3, 5},
		{"second row", 0, 5, 7},
		{"last cell", 35, 19, 36},
		{"right of grid", 36, 2, 0},
		{"below grid", 0, 20, 0},
		{"title line", 0, 0, 0},
		{"blank line", 3, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell, _, _ := m.cellAt(tc.x, tc.y)
			switch {
			case tc.wantID == 0 && cell != nil:
				t.Errorf("cellAt(%d, %d) = cell %d, expected none", tc.x, tc.y, cell.ID)
			case tc.wantID != 0 && cell == nil:
				t.Errorf("cellAt(%d, %d) = none, expected cell %d", tc.x, tc.y, tc.wantID)
			case tc.wantID != 0 && cell.ID != tc.wantID:
				t.Errorf("cellAt(%d, %d) = cell %d, expected %d", tc.x, tc.y, cell.ID, tc.wantID)
			}
		})
	}
}

func TestHoverFiresOncePerEntry(t *testing.T) {
	rnd := &countingRand{}
	m, _ := newTestModel(t, WithRand(rnd.intn))

	m = update(t, m, motion(25, 3))
	if rnd.calls != 3 {
		t.Fatalf("entering the target drew %d channels, expected 3", rnd.calls)
	}
	if got := m.Widget().Target().Background; got != "rgb(7,7,7)" {
		t.Errorf("target background = %q, expected rgb(7,7,7)", got)
	}

	// Moving inside the same cell is not a new entry
	m = update(t, m, motion(28, 4))
	if rnd.calls != 3 {
		t.Errorf("moving within the target redrew the color (%d draws)", rnd.calls)
	}

	// Leave to a neighbor, come back
	m = update(t, m, motion(31, 3))
	m = update(t, m, motion(25, 3))
	if rnd.calls != 6 {
		t.Errorf("re-entering the target gave %d draws, expected 6", rnd.calls)
	}

	// Hovering other cells never draws
	m = update(t, m, motion(0, 2))
	update(t, m, motion(6, 5))
	if rnd.calls != 6 {
		t.Errorf("hovering non-target cells drew colors (%d draws)", rnd.calls)
	}
	assertOthers(t, m, "")
}

func TestClickAppliesPickerColor(t *testing.T) {
	m, _ := newTestModel(t)
	if err := m.Picker().Set("rgb(10,20,30)"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	m = update(t, m, leftPress(25, 3))

	if got := m.Widget().Target().Background; got != "rgb(10,20,30)" {
		t.Errorf("target background = %q, expected rgb(10,20,30)", got)
	}
	assertOthers(t, m, "")
}

func TestDoubleClickPaintsOthers(t *testing.T) {
	m, clock := newTestModel(t)
	if err := m.Picker().Set("rgb(1,2,3)"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	m = update(t, m, leftPress(25, 3))
	clock.advance(150 * time.Millisecond)
	m = update(t, m, leftPress(26, 4))

	assertOthers(t, m, "rgb(1,2,3)")
	if !strings.Contains(m.Status(), "double-click") {
		t.Errorf("status = %q, expected a double-click report", m.Status())
	}
}

func TestSlowClicksAreNotDoubleClick(t *testing.T) {
	m, clock := newTestModel(t)
	if err := m.Picker().Set("rgb(1,2,3)"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	m = update(t, m, leftPress(25, 3))
	clock.advance(time.Second)
	m = update(t, m, leftPress(25, 3))

	assertOthers(t, m, "")
	if got := m.Widget().Target().Background; got != "rgb(1,2,3)" {
		t.Errorf("target background = %q, expected click color", got)
	}
}

func TestClicksOnDifferentCellsAreNotDoubleClick(t *testing.T) {
	m, clock := newTestModel(t)
	if err := m.Picker().Set("rgb(1,2,3)"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	m = update(t, m, leftPress(31, 3)) // cell 6
	clock.advance(50 * time.Millisecond)
	m = update(t, m, leftPress(25, 3)) // target

	assertOthers(t, m, "")
}

func TestTripleClickFiresOneDoubleClick(t *testing.T) {
	m, clock := newTestModel(t)
	if err := m.Picker().Set("rgb(1,2,3)"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	m = update(t, m, leftPress(25, 3))
	clock.advance(100 * time.Millisecond)
	m = update(t, m, leftPress(25, 3))
	assertOthers(t, m, "rgb(1,2,3)")

	// A third quick press starts a new pair instead of repainting
	if err := m.Picker().Set("rgb(9,9,9)"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	clock.advance(100 * time.Millisecond)
	m = update(t, m, leftPress(25, 3))
	assertOthers(t, m, "rgb(1,2,3)")
}

func TestPressOutsideGridIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, leftPress(100, 100))
	m = update(t, m, leftPress(0, 0))

	for _, c := range m.Widget().Cells() {
		if c.Background != "" {
			t.Errorf("cell %d changed by a press outside the grid", c.ID)
		}
	}
}

func TestRightButtonIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	if err := m.Picker().Set("rgb(1,2,3)"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	// Hover fires on the first motion; the right press itself must not click.
	m = update(t, m, motion(25, 3))
	before := m.Widget().Target().Background
	m = update(t, m, tea.MouseMsg{X: 25, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	if got := m.Widget().Target().Background; got != before {
		t.Errorf("right press changed target from %q to %q", before, got)
	}
}

func TestKeyboardDrivesTarget(t *testing.T) {
	rnd := &countingRand{}
	m, _ := newTestModel(t, WithRand(rnd.intn))
	if err := m.Picker().Set("#102030"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	for i := 0; i < 4; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if rnd.calls != 3 {
		t.Fatalf("moving the cursor onto the target drew %d channels, expected 3", rnd.calls)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Widget().Target().Background; got != "#102030" {
		t.Errorf("target background = %q, expected #102030", got)
	}

	m = update(t, m, runeKey("d"))
	assertOthers(t, m, "#102030")
}

func TestCursorStaysInsideGrid(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.cursorRow != 0 || m.cursorCol != 0 {
		t.Errorf("cursor = (%d, %d), expected (0, 0)", m.cursorRow, m.cursorCol)
	}

	for i := 0; i < 10; i++ {
		m = update(t, m, runeKey("j"))
		m = update(t, m, runeKey("l"))
	}
	if m.cursorRow != 5 || m.cursorCol != 5 {
		t.Errorf("cursor = (%d, %d), expected (5, 5)", m.cursorRow, m.cursorCol)
	}
}

func TestPickerCommitAndReject(t *testing.T) {
	m, _ := newTestModel(t)
	initial := m.Picker().Color()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.Picker().Focused() {
		t.Fatal("tab should focus the picker")
	}

	// Keys go to the picker while focused, so q does not quit
	m = update(t, m, runeKey("q"))
	if m.quitting {
		t.Fatal("q typed into the picker should not quit")
	}

	m.Picker().input.SetValue("not a color")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Picker().Err() == nil {
		t.Error("invalid color should be reported")
	}
	if !m.Picker().Focused() {
		t.Error("picker should stay focused after invalid input")
	}
	if m.Picker().Color() != initial {
		t.Errorf("color = %q, expected %q to be kept", m.Picker().Color(), initial)
	}

	m.Picker().input.SetValue("rgb(10,20,30)")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Picker().Focused() {
		t.Error("picker should blur after a valid commit")
	}
	if m.Picker().Color() != "rgb(10,20,30)" {
		t.Errorf("color = %q, expected rgb(10,20,30)", m.Picker().Color())
	}
	if !strings.Contains(m.Status(), "rgb(10,20,30)") {
		t.Errorf("status = %q, expected the picked color", m.Status())
	}
}

func TestPickerEscCancels(t *testing.T) {
	m, _ := newTestModel(t)
	initial := m.Picker().Color()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m.Picker().input.SetValue("#ffffff")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.Picker().Focused() {
		t.Error("esc should blur the picker")
	}
	if m.Picker().Color() != initial {
		t.Errorf("color = %q, esc must not commit", m.Picker().Color())
	}
}

func TestPaletteKeys(t *testing.T) {
	m, _ := newTestModel(t)
	palette := config.DefaultColorTableConfig().Picker.Palette

	m = update(t, m, runeKey("2"))
	if m.Picker().Color() != palette[1] {
		t.Errorf("color = %q, expected palette[1] %q", m.Picker().Color(), palette[1])
	}

	// Slots past the palette are ignored
	m = update(t, m, runeKey("9"))
	if m.Picker().Color() != palette[1] {
		t.Errorf("color = %q, unused slot should not change it", m.Picker().Color())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewShowsGrid(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	for _, want := range []string{"Color table", "[1]", "36", "target cell 5", "color:"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}

	lines := strings.Split(view, "\n")
	if len(lines) < gridTop+6*3 {
		t.Fatalf("view has %d lines, too short for the grid", len(lines))
	}
	if !strings.Contains(lines[gridTop+1], "1") || !strings.Contains(lines[gridTop+1], "5") {
		t.Errorf("first grid row label line = %q", lines[gridTop+1])
	}
}

func TestWindowTooSmall(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		small bool
	}{
		{"default terminal", 80, 24, false},
		{"exact fit", 36, gridTop + 18, false},
		{"one column short", 35, 40, true},
		{"one row short", 80, gridTop + 17, true},
		{"unknown size", 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			m = update(t, m, tea.WindowSizeMsg{Width: tc.w, Height: tc.h})

			view := m.View()
			if got := strings.Contains(view, "Window too small"); got != tc.small {
				t.Errorf("too-small notice shown = %v, expected %v", got, tc.small)
			}
			if tc.small && strings.Contains(view, "[1]") {
				t.Error("grid should not be drawn in a small window")
			}
		})
	}
}

func TestSmallWindowIgnoresCellInput(t *testing.T) {
	m, _ := newTestModel(t)
	if err := m.Picker().Set("rgb(1,2,3)"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})

	m = update(t, m, leftPress(25, 3))
	m = update(t, m, leftPress(25, 3))
	for i := 0; i < 4; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, runeKey("d"))

	for _, c := range m.Widget().Cells() {
		if c.Background != "" {
			t.Errorf("cell %d background = %q, expected untouched", c.ID, c.Background)
		}
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = update(t, m, leftPress(25, 3))
	if got := m.Widget().Target().Background; got != "rgb(1,2,3)" {
		t.Errorf("after resize target background = %q, expected rgb(1,2,3)", got)
	}
}

func TestNewModelRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultColorTableConfig()
	cfg.Grid.Variant = 100

	_, err := NewModel(cfg, core.DefaultConfig())
	if err == nil {
		t.Fatal("NewModel() should fail for an out-of-range variant")
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		slot   int
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, 0},
		{runeKey("q"), core.ActionQuit, 0},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, 0},
		{runeKey("j"), core.ActionDown, 0},
		{runeKey("h"), core.ActionLeft, 0},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, 0},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionClick, 0},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionClick, 0},
		{runeKey("d"), core.ActionDoubleClick, 0},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionPicker, 0},
		{runeKey("1"), core.ActionPalette, 0},
		{runeKey("9"), core.ActionPalette, 8},
		{runeKey("0"), core.ActionNone, 0},
		{runeKey("x"), core.ActionNone, 0},
	}

	for _, tc := range tests {
		action, slot := km.MapKey(tc.msg)
		if action != tc.action || slot != tc.slot {
			t.Errorf("MapKey(%q) = (%s, %d), expected (%s, %d)", tc.msg.String(), action, slot, tc.action, tc.slot)
		}
	}
}

func TestTriggerNames(t *testing.T) {
	if colortable.TriggerDoubleClick.String() != "double-click" {
		t.Errorf("TriggerDoubleClick.String() = %q", colortable.TriggerDoubleClick.String())
	}
}
