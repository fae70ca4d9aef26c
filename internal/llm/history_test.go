package llm

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHistory(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []Message
	}{
		{
			name: "valid turns survive in order",
			raw:  `[{"role":"user","content":"hi"},{"role":"assistant","content":"hello"}]`,
			expected: []Message{
				{Role: RoleUser, Content: []TextBlock{{Text: "hi"}}},
				{Role: RoleAssistant, Content: []TextBlock{{Text: "hello"}}},
			},
		},
		{
			name: "unknown roles are dropped",
			raw:  `[{"role":"system","content":"be nice"},{"role":"user","content":"hi"}]`,
			expected: []Message{
				{Role: RoleUser, Content: []TextBlock{{Text: "hi"}}},
			},
		},
		{
			name: "blank content is dropped",
			raw:  `[{"role":"user","content":"   "},{"role":"assistant","content":"ok"}]`,
			expected: []Message{
				{Role: RoleAssistant, Content: []TextBlock{{Text: "ok"}}},
			},
		},
		{
			name: "non-record entries are dropped",
			raw:  `["just a string", 42, {"role":"user","content":"hi"}]`,
			expected: []Message{
				{Role: RoleUser, Content: []TextBlock{{Text: "hi"}}},
			},
		},
		{name: "not a list yields nil", raw: `{"role":"user","content":"hi"}`, expected: nil},
		{name: "malformed JSON yields nil", raw: `[{"role":`, expected: nil},
		{name: "empty input yields nil", raw: ``, expected: nil},
		{name: "null yields nil", raw: `null`, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHistory(json.RawMessage(tt.raw))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeHistoryKeepsLastTen(t *testing.T) {
	entries := make([]historyEntry, 0, 15)
	for i := 0; i < 15; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		entries = append(entries, historyEntry{Role: role, Content: fmt.Sprintf("turn %d", i)})
	}
	raw, err := json.Marshal(entries)
	require.NoError(t, err)

	got := NormalizeHistory(raw)
	require.Len(t, got, maxHistoryMessages)

	// The oldest five turns fall off; relative order is preserved.
	assert.Equal(t, "turn 5", got[0].Content[0].Text)
	assert.Equal(t, "turn 14", got[len(got)-1].Content[0].Text)
}

func TestNormalizeHistoryCountsOnlyValidEntries(t *testing.T) {
	// 12 valid turns interleaved with junk: the cap applies after filtering.
	raw := `[`
	for i := 0; i < 12; i++ {
		raw += fmt.Sprintf(`{"role":"user","content":"turn %d"},{"role":"tool","content":"junk"},`, i)
	}
	raw += `{"role":"assistant","content":""}]`

	got := NormalizeHistory(json.RawMessage(raw))
	require.Len(t, got, maxHistoryMessages)
	assert.Equal(t, "turn 2", got[0].Content[0].Text)
	assert.Equal(t, "turn 11", got[len(got)-1].Content[0].Text)
}
