package service

import (
	"strings"
	"time"
	"unicode"

	"nutrition-assistant-be/internal/constant"
)

// deriveTitle builds a session title from the first user message. The text is
// collapsed to single spaces and cut to ChatSessionTitleMaxRunes, backing up
// to the previous word boundary when the cut lands mid-word. Truncated titles
// get an ellipsis. An empty or whitespace-only message falls back to a
// timestamp title.
func deriveTitle(firstMessage string, now time.Time) string {
	collapsed := strings.Join(strings.Fields(firstMessage), " ")
	if collapsed == "" {
		return "Chat " + now.Format("2006-01-02 15:04")
	}

	runes := []rune(collapsed)
	if len(runes) <= constant.ChatSessionTitleMaxRunes {
		return collapsed
	}

	cut := constant.ChatSessionTitleMaxRunes
	for cut > 0 && !unicode.IsSpace(runes[cut]) {
		cut--
	}
	if cut == 0 {
		// Single word longer than the limit, hard cut.
		cut = constant.ChatSessionTitleMaxRunes
	}

	return strings.TrimRight(string(runes[:cut]), " ") + "…"
}
