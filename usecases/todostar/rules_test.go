package todostar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandPattern(t *testing.T) {
	pattern := commandPattern("todo")

	matching := []string{
		"todo", "todo ", " todo x", "\n todo\ty",
		"todo\u3000buy milk", "\u3000todo", "todo\u00a0x", "todo\vx", "\ufefftodo", "todo\u2028x",
	}
	for _, text := range matching {
		assert.True(t, pattern.MatchString(text), "expected %q to match", text)
	}
	for _, text := range []string{"todoist", "xtodo", "to do", "TODO", ":todo:", "todo:", "todo\u200bx"} {
		assert.False(t, pattern.MatchString(text), "expected %q not to match", text)
	}
}

func TestEmojiPattern(t *testing.T) {
	pattern := emojiPattern([]string{"memo", "pushpin", "+1"})

	for _, text := range []string{":memo:", " :pushpin: later", ":+1:", ":memo:\u3000later", "\u00a0:memo:"} {
		assert.True(t, pattern.MatchString(text), "expected %q to match", text)
	}
	for _, text := range []string{"memo", ":memo", ":memo:s", ":1:", "x :memo:", ":memo_2:"} {
		assert.False(t, pattern.MatchString(text), "expected %q not to match", text)
	}
}

func TestMatchReactionRule_FirstMatchWins(t *testing.T) {
	rules := []reactionRule{
		{name: "first", reactions: reactionSet([]string{"memo"})},
		{name: "second", reactions: reactionSet([]string{"memo", "tada"})},
	}

	rule, ok := matchReactionRule(rules, "memo")
	assert.True(t, ok)
	assert.Equal(t, "first", rule.name)

	rule, ok = matchReactionRule(rules, "tada")
	assert.True(t, ok)
	assert.Equal(t, "second", rule.name)

	_, ok = matchReactionRule(rules, "eyes")
	assert.False(t, ok)
}

func TestMatchMessageRule_FirstMatchWins(t *testing.T) {
	rules := []messageRule{
		{name: "start", pattern: commandPattern("start")},
		{name: "done", pattern: commandPattern("done")},
	}

	rule, ok := matchMessageRule(rules, "start done")
	assert.True(t, ok)
	assert.Equal(t, "start", rule.name)

	_, ok = matchMessageRule(rules, "finished")
	assert.False(t, ok)
}
