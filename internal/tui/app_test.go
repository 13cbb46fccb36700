// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dox4free/internal/convert"
	"github.com/pdiddy/dox4free/internal/units"
	"github.com/pdiddy/dox4free/pkg/types"
)

// --- test helpers ---

func testModel(t *testing.T, debounce time.Duration) model {
	t.Helper()
	return newModel(Deps{
		Engine:   convert.New(units.Builtin()),
		Debounce: debounce,
	})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	require.True(t, ok, "Update returned %T", next)
	return mm, cmd
}

// press feeds keys to m and fires the latest debounce timer.
func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, key(k))
	}
	m, _ = update(t, m, debounceMsg{seq: m.seq})
	return m
}

// --- tests ---

func TestNewModel(t *testing.T) {
	m := testModel(t, 0)

	assert.Equal(t, types.Length, m.quantity())
	assert.Equal(t, "meter", m.units[m.from].Name)
	assert.Equal(t, "foot", m.units[m.to].Name)
	assert.Equal(t, "1", m.input.Value())
	require.NotNil(t, m.result)
	assert.Equal(t, "3.2808399", m.result.Formatted)

	view := m.View()
	assert.Contains(t, view, "Length")
	assert.Contains(t, view, "Meter (m)")
	assert.Contains(t, view, "Foot (ft)")
	assert.Contains(t, view, "3.2808399 ft")
	assert.Contains(t, view, "1 meter = 3.2808399 feet")
}

func TestDebounce(t *testing.T) {
	m := testModel(t, 300*time.Millisecond)

	m, cmd := update(t, m, key("0"))
	assert.Equal(t, "10", m.input.Value())
	assert.True(t, m.pending, "edit starts the debounce timer")
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "converting")
	assert.Equal(t, "3.2808399", m.result.Formatted, "result unchanged until the timer fires")

	first := m.seq
	m, _ = update(t, m, key("0"))
	assert.Equal(t, "100", m.input.Value())

	// A stale timer is ignored.
	m, _ = update(t, m, debounceMsg{seq: first})
	assert.True(t, m.pending)

	m, _ = update(t, m, debounceMsg{seq: m.seq})
	assert.False(t, m.pending)
	require.NotNil(t, m.result)
	assert.Equal(t, "328.08399", m.result.Formatted)
	assert.NotContains(t, m.View(), "converting")
}

func TestZeroDebounceConvertsImmediately(t *testing.T) {
	m := testModel(t, 0)
	m, _ = update(t, m, key("2"))
	assert.False(t, m.pending)
	require.NotNil(t, m.result)
	assert.Equal(t, "39.370079", m.result.Formatted)
}

func TestEnterConvertsAndCancelsTimer(t *testing.T) {
	m := testModel(t, time.Second)
	m, _ = update(t, m, key("2"))
	require.True(t, m.pending)
	stale := m.seq

	m, _ = update(t, m, key("enter"))
	assert.False(t, m.pending)
	assert.Equal(t, "39.370079", m.result.Formatted)

	m, _ = update(t, m, debounceMsg{seq: stale})
	assert.Equal(t, "39.370079", m.result.Formatted)
}

func TestQuantityCycling(t *testing.T) {
	m := testModel(t, 0)

	m = press(t, m, "tab")
	assert.Equal(t, types.Mass, m.quantity())
	assert.Equal(t, "kilogram", m.units[m.from].Name)
	assert.Equal(t, "pound", m.units[m.to].Name)

	m = press(t, m, "shift+tab", "shift+tab")
	assert.Equal(t, types.Temperature, m.quantity(), "cycling wraps around")
	assert.Equal(t, "celsius", m.units[m.from].Name)
	assert.Equal(t, "fahrenheit", m.units[m.to].Name)
	assert.Equal(t, "33.8", m.result.Formatted)
}

func TestUnitCyclingAndSwap(t *testing.T) {
	m := testModel(t, 0)

	m = press(t, m, "down")
	assert.Equal(t, "kilometer", m.units[m.from].Name)
	m = press(t, m, "up", "up")
	assert.Equal(t, "centimeter", m.units[m.from].Name)

	m = press(t, m, "ctrl+n")
	assert.Equal(t, "yard", m.units[m.to].Name)
	m = press(t, m, "ctrl+p", "ctrl+p")
	assert.Equal(t, "inch", m.units[m.to].Name)

	m = press(t, m, "ctrl+s")
	assert.Equal(t, "inch", m.units[m.from].Name)
	assert.Equal(t, "centimeter", m.units[m.to].Name)
	assert.Equal(t, "2.54", m.result.Formatted)
}

func TestErrorsAndEmptyInput(t *testing.T) {
	m := testModel(t, 0)

	m = press(t, m, "x")
	assert.Nil(t, m.result)
	assert.Equal(t, "please enter a valid number", m.errMsg)
	assert.Contains(t, m.View(), "please enter a valid number")

	m = press(t, m, "backspace", "backspace")
	assert.Empty(t, m.input.Value())
	assert.Nil(t, m.result)
	assert.Empty(t, m.errMsg, "empty input is not an error")
	assert.Contains(t, m.View(), "(no value)")

	m = press(t, m, "shift+tab", "-", "3", "0", "0")
	assert.Equal(t, types.Temperature, m.quantity())
	assert.Contains(t, m.errMsg, "below absolute zero (-273.15 °C)")
}

func TestQuit(t *testing.T) {
	m := testModel(t, 0)
	_, cmd := update(t, m, key("esc"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSafeModel_RecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	// A model without units panics on any unit access.
	s := wrapSafe(model{quantities: []types.Quantity{types.Length}}, log)

	assert.Equal(t, panicNotice, s.View())

	next, cmd := s.Update(key("down"))
	assert.Nil(t, cmd)
	sm, ok := next.(safeModel)
	require.True(t, ok)
	assert.Equal(t, panicNotice, sm.m.errMsg)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "panic.recovered"))
	assert.Contains(t, out, `"where":"tui.view"`)
	assert.Contains(t, out, `"where":"tui.update"`)
}

func TestSafeModel_PassesThrough(t *testing.T) {
	s := wrapSafe(testModel(t, 0), nil)
	next, _ := s.Update(key("5"))
	sm := next.(safeModel)
	assert.Equal(t, "15", sm.m.input.Value())
	assert.Contains(t, sm.View(), "49.212598 ft")
}
