// Package renderer formats league data as markdown reports: the season
// leaderboard, per-event standings, pool balances, and the financial
// summary. The reports are plain markdown strings; callers decide whether
// to print them raw, run them through a terminal renderer, or feed them
// to the assistant.
package renderer

import (
	"fmt"
	"strings"
)

// reportRenderer accumulates markdown output.
type reportRenderer struct {
	*strings.Builder
}

func newReport() *reportRenderer {
	return &reportRenderer{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *reportRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}
