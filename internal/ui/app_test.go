package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/stoker/internal/prefs"
	"github.com/five82/stoker/internal/state"
	"github.com/five82/stoker/internal/stokercloud"
)

func fixtureSnapshot(t *testing.T) state.Snapshot {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "stokercloud", "testdata", "status.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	status, err := stokercloud.ParseStatus(data)
	if err != nil {
		t.Fatalf("ParseStatus: %v", err)
	}
	var store state.Store
	store.Update(status, nil)
	return store.Snapshot()
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func TestNew_Defaults(t *testing.T) {
	m := New(Options{})
	if m.theme.Name != "Dracula" {
		t.Fatalf("theme = %q, want Dracula", m.theme.Name)
	}
	if m.pollTick != time.Second {
		t.Fatalf("pollTick = %v, want 1s", m.pollTick)
	}
	if m.ctx == nil {
		t.Fatal("ctx is nil")
	}
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before size = %q, want Loading...", got)
	}
}

func TestView_RendersSnapshot(t *testing.T) {
	m := sized(t, New(Options{ThemeName: "Slate"}))
	next, _ := m.Update(snapshotMsg(fixtureSnapshot(t)))
	m = next.(Model)

	view := m.View()
	for _, want := range []string{"stoker", "#21467", "MOC", "RUNNING", "14:32", "Controller", "62.34 °C"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "ALARM") {
		t.Fatalf("view shows ALARM but alarm is off")
	}
}

func TestView_ConnectingAndError(t *testing.T) {
	m := sized(t, New(Options{}))
	if view := m.View(); !strings.Contains(view, "Connecting to StokerCloud") {
		t.Fatalf("view = %q, want connecting banner", view)
	}

	var store state.Store
	store.Update(nil, errors.New("dial tcp: connection refused"))
	store.Update(nil, errors.New("dial tcp: connection refused"))
	next, _ := m.Update(snapshotMsg(store.Snapshot()))
	m = next.(Model)

	view := m.View()
	for _, want := range []string{"UNREACHABLE", "OFFLINE"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestHandleKey_Quit(t *testing.T) {
	m := sized(t, New(Options{}))
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("key %q returned nil cmd", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("key %q did not quit", msg.String())
		}
	}
}

func TestHandleKey_RefreshRunsOnce(t *testing.T) {
	calls := 0
	store := &state.Store{}
	m := sized(t, New(Options{
		Store: store,
		Refresh: func(context.Context) error {
			calls++
			return errors.New("boom")
		},
	}))

	next, cmd := m.Update(runeKey("r"))
	m = next.(Model)
	if !m.refreshing || cmd == nil {
		t.Fatalf("refresh key did not start a refresh")
	}

	// A second press while refreshing is ignored.
	if _, again := m.Update(runeKey("r")); again != nil {
		t.Fatalf("second refresh press returned a cmd")
	}

	msg := cmd()
	if calls != 1 {
		t.Fatalf("refresh calls = %d, want 1", calls)
	}
	next, cmd = m.Update(msg)
	m = next.(Model)
	if m.refreshing {
		t.Fatalf("still refreshing after completion")
	}
	if m.refreshErr == nil || m.refreshErr.Error() != "boom" {
		t.Fatalf("refreshErr = %v, want boom", m.refreshErr)
	}
	if cmd == nil {
		t.Fatalf("completion did not re-read the store")
	}
	if _, ok := cmd().(snapshotMsg); !ok {
		t.Fatalf("completion cmd did not produce a snapshot")
	}
}

func TestHandleKey_RefreshWithoutFuncIsNoop(t *testing.T) {
	m := sized(t, New(Options{}))
	next, cmd := m.Update(runeKey("r"))
	if cmd != nil || next.(Model).refreshing {
		t.Fatalf("refresh without func should do nothing")
	}
}

func TestHandleKey_CycleThemePersists(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := sized(t, New(Options{PrefsPath: prefsPath}))

	next, _ := m.Update(runeKey("T"))
	m = next.(Model)
	if m.theme.Name != "Slate" {
		t.Fatalf("theme = %q, want Slate", m.theme.Name)
	}

	saved, err := prefs.Load(prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Theme != "Slate" {
		t.Fatalf("saved theme = %q, want Slate", saved.Theme)
	}
}

func TestHandleKey_HelpOverlay(t *testing.T) {
	m := sized(t, New(Options{}))

	next, _ := m.Update(runeKey("?"))
	m = next.(Model)
	if !m.showHelp {
		t.Fatal("help not shown")
	}
	if view := m.View(); !strings.Contains(view, "Keyboard Shortcuts") {
		t.Fatalf("help view missing title:\n%s", view)
	}

	// Any key closes help, including quit.
	next, cmd := m.Update(runeKey("q"))
	m = next.(Model)
	if m.showHelp || cmd != nil {
		t.Fatal("key did not just close help")
	}
}

func TestTick_RereadsStoreAndReschedules(t *testing.T) {
	m := sized(t, New(Options{Store: &state.Store{}}))
	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick returned nil cmd")
	}
}

func TestClassifyConnectionError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{stokercloud.ErrNotConnected, "BOILER OFFLINE"},
		{errors.Join(errors.New("status"), stokercloud.ErrTokenInvalid), "LOGIN REJECTED"},
		{errors.New("dial tcp 1.2.3.4:80: connect: connection refused"), "UNREACHABLE"},
		{errors.New("dial tcp: lookup x: no such host"), "HOST NOT FOUND"},
		{context.DeadlineExceeded, "TIMEOUT"},
		{errors.New("something else"), "ERROR"},
	}
	for _, tt := range tests {
		if got := classifyConnectionError(tt.err); got != tt.want {
			t.Fatalf("classifyConnectionError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
