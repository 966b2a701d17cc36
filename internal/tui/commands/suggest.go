package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/replog-dev/replog/internal/api"
	"github.com/replog-dev/replog/internal/tui"
)

// DebounceCmd arms the quiet-window timer for one keystroke generation.
// Each keystroke bumps the generation, so only the tick belonging to the
// last keystroke in a settled window is still current when it fires.
func DebounceCmd(window time.Duration, generation int) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return tui.SuggestDebounceMsg{Generation: generation}
	})
}

// FetchSuggestionsCmd looks up exercise name suggestions. The response
// carries the request generation so stale responses can be dropped.
func FetchSuggestionsCmd(client *api.Client, query string, limit, generation int) tea.Cmd {
	return func() tea.Msg {
		suggestions, err := client.ExerciseSuggestions(query, limit)
		return tui.SuggestionsMsg{Generation: generation, Suggestions: suggestions, Err: err}
	}
}
