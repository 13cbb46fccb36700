// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"log/slog"
	"time"

	"github.com/pdiddy/dox4free/internal/convert"
)

// Deps are the collaborators the UI needs.
type Deps struct {
	Engine *convert.Engine

	// Debounce is the quiet period after the last edit before converting.
	// Zero converts on every edit.
	Debounce time.Duration

	Logger *slog.Logger
}
