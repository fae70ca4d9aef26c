package llm

import (
	"encoding/json"
	"strings"
)

// maxHistoryMessages keeps the outbound payload small.
const maxHistoryMessages = 10

// historyEntry is the client-side shape of one prior turn.
type historyEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NormalizeHistory filters a client-supplied conversation history down to a
// bounded, role-validated message sequence. Anything that is not a list, not
// record-shaped, has an unknown role, or has blank text is dropped silently.
// At most the last 10 qualifying entries survive, relative order preserved.
func NormalizeHistory(raw json.RawMessage) []Message {
	if len(raw) == 0 {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	cleaned := make([]Message, 0, len(items))
	for _, item := range items {
		var entry historyEntry
		if err := json.Unmarshal(item, &entry); err != nil {
			continue
		}
		if entry.Role != RoleUser && entry.Role != RoleAssistant {
			continue
		}
		if strings.TrimSpace(entry.Content) == "" {
			continue
		}
		cleaned = append(cleaned, Message{
			Role:    entry.Role,
			Content: []TextBlock{{Text: entry.Content}},
		})
	}

	if len(cleaned) == 0 {
		return nil
	}
	if len(cleaned) > maxHistoryMessages {
		cleaned = cleaned[len(cleaned)-maxHistoryMessages:]
	}
	return cleaned
}
