package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"

	// ChatSessionDefaultTitle marks a session that has not yet received an
	// auto-title from its first user message.
	ChatSessionDefaultTitle = "New Chat"

	// ChatSessionTitleMaxRunes bounds auto-derived titles. Longer first
	// messages are trimmed at a word boundary and get an ellipsis.
	ChatSessionTitleMaxRunes = 50

	ChatAssistantGreeting = "Hi! I'm your nutrition assistant. Ask me about meals, macros, or healthy habits."
)
