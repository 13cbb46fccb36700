// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debounceMsg fires when the quiet period for edit seq has elapsed. Only
// the latest edit's message triggers a conversion.
type debounceMsg struct {
	seq int
}

func cmdDebounce(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}
