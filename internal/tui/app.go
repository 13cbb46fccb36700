// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive converter: pick a quantity, type a value,
// cycle the units and read the result as you type.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/dox4free/internal/format"
	"github.com/pdiddy/dox4free/pkg/types"
)

// unitPair is the initial from/to selection for a quantity.
type unitPair struct{ from, to string }

var defaultPairs = map[types.Quantity]unitPair{
	types.Length:      {"meter", "foot"},
	types.Mass:        {"kilogram", "pound"},
	types.Area:        {"square_meter", "square_foot"},
	types.Volume:      {"cubic_meter", "cubic_foot"},
	types.Time:        {"hour", "minute"},
	types.Energy:      {"joule", "kilowatt_hour"},
	types.Temperature: {"celsius", "fahrenheit"},
}

type model struct {
	theme Theme
	deps  Deps

	quantities []types.Quantity
	qi         int
	units      []types.Unit
	from, to   int

	input   textinput.Model
	spinner spinner.Model

	// seq numbers edits; pending is set while a debounce timer runs.
	seq     int
	pending bool

	result *types.Conversion
	errMsg string
}

// Run starts the converter on the terminal and blocks until the user quits.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	ti := textinput.New()
	ti.Placeholder = "Enter a number"
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.SetValue("1")
	ti.Focus()

	m := model{
		theme:      DefaultTheme(),
		deps:       deps,
		quantities: deps.Engine.Catalog().Quantities(),
		input:      ti,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.selectQuantity(0)
	m.convert()
	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) quantity() types.Quantity { return m.quantities[m.qi] }

// selectQuantity switches to quantity i and resets the unit selection.
func (m *model) selectQuantity(i int) {
	n := len(m.quantities)
	m.qi = ((i % n) + n) % n

	table, _ := m.deps.Engine.Catalog().Table(m.quantity())
	m.units = table.Units()
	m.from, m.to = 0, 1%len(m.units)

	pair, ok := defaultPairs[m.quantity()]
	if !ok {
		return
	}
	for j, u := range m.units {
		switch u.Name {
		case pair.from:
			m.from = j
		case pair.to:
			m.to = j
		}
	}
}

func cycle(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.selectQuantity(m.qi + 1)
			return m.edited()
		case "shift+tab":
			m.selectQuantity(m.qi - 1)
			return m.edited()
		case "up":
			m.from = cycle(m.from, -1, len(m.units))
			return m.edited()
		case "down":
			m.from = cycle(m.from, 1, len(m.units))
			return m.edited()
		case "ctrl+p":
			m.to = cycle(m.to, -1, len(m.units))
			return m.edited()
		case "ctrl+n":
			m.to = cycle(m.to, 1, len(m.units))
			return m.edited()
		case "ctrl+s":
			m.from, m.to = m.to, m.from
			return m.edited()
		case "enter":
			m.seq++
			m.pending = false
			m.convert()
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() == before {
			return m, cmd
		}
		next, debounce := m.edited()
		return next, tea.Batch(cmd, debounce)

	case debounceMsg:
		if msg.seq != m.seq || !m.pending {
			return m, nil
		}
		m.pending = false
		m.convert()
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// edited records a change to the input or the unit selection and schedules
// a conversion after the debounce period.
func (m model) edited() (tea.Model, tea.Cmd) {
	m.seq++
	if m.deps.Debounce <= 0 {
		m.pending = false
		m.convert()
		return m, nil
	}
	m.pending = true
	return m, tea.Batch(cmdDebounce(m.seq, m.deps.Debounce), m.spinner.Tick)
}

// convert runs the engine on the current selection. An empty input clears
// the result without reporting an error.
func (m *model) convert() {
	m.result, m.errMsg = nil, ""
	value := m.input.Value()
	if strings.TrimSpace(value) == "" {
		return
	}

	from, to := m.units[m.from].Name, m.units[m.to].Name
	c, err := m.deps.Engine.Convert(m.quantity(), value, from, to)
	if err != nil {
		m.errMsg = err.Error()
		if m.deps.Logger != nil {
			m.deps.Logger.Debug("tui.convert.failed", "quantity", m.quantity(), "from", from, "to", to, "err", err)
		}
		return
	}
	m.result = &c
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("dox4free") + "\n" +
		m.theme.Subtitle.Render("Unit converter") + "\n"

	tabs := make([]string, len(m.quantities))
	for i, q := range m.quantities {
		style := m.theme.Tab
		if i == m.qi {
			style = m.theme.ActiveTab
		}
		tabs[i] = style.Render(format.Title(string(q)))
	}

	var b strings.Builder
	b.WriteString(m.theme.Label.Render("Value") + "\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(m.theme.Label.Render("From") + "  " + unitOption(m.units[m.from]) + "\n")
	b.WriteString(m.theme.Label.Render("To  ") + "  " + unitOption(m.units[m.to]) + "\n\n")
	b.WriteString(m.theme.Label.Render("Result") + "\n")
	b.WriteString(m.resultLine())

	help := m.theme.Help.Render("tab quantity • ↑/↓ from unit • ctrl+p/ctrl+n to unit • ctrl+s swap • esc quit")
	return wrap.Render(header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n" +
		m.theme.Card.Render(b.String()) + "\n" + help)
}

func (m model) resultLine() string {
	switch {
	case m.pending:
		return m.spinner.View() + " converting"
	case m.errMsg != "":
		return m.theme.Error.Render(m.errMsg)
	case m.result == nil:
		return m.theme.Subtitle.Render("(no value)")
	}
	from, to := m.units[m.from], m.units[m.to]
	return m.theme.Result.Render(format.Symbol(to, m.result.Formatted)) + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("%s = %s", format.Label(from, strings.TrimSpace(m.input.Value())), format.Label(to, m.result.Formatted)))
}

// unitOption renders a unit the way a selector shows it: "Foot (ft)".
func unitOption(u types.Unit) string {
	name := format.Title(format.DisplayName(u))
	if u.Symbol == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, u.Symbol)
}
