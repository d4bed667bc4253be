package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflower/todo-star-slack-bot/core"
)

func TestNewVocabulary(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		v, err := NewVocabulary(VocabularyOptions{})
		require.NoError(t, err)

		assert.Equal(t, []string{"memo"}, v.TodoReactions())
		assert.Equal(t, []string{"white_check_mark"}, v.StartReactions())
		assert.Equal(t, []string{"heavy_check_mark"}, v.DoneReactions())
		assert.Equal(t, "memo", v.TodoReaction())
		assert.Equal(t, "white_check_mark", v.StartReaction())
		assert.Equal(t, "heavy_check_mark", v.DoneReaction())
	})

	t.Run("PlacedReactionDefaultsToFirstEntry", func(t *testing.T) {
		v, err := NewVocabulary(VocabularyOptions{
			TodoReactions: []string{"pushpin", "memo"},
			DoneReactions: []string{" ballot_box_with_check ", ""},
		})
		require.NoError(t, err)

		assert.Equal(t, "pushpin", v.TodoReaction())
		assert.Equal(t, []string{"ballot_box_with_check"}, v.DoneReactions())
		assert.Equal(t, "ballot_box_with_check", v.DoneReaction())
	})

	t.Run("ExplicitPlacedReaction", func(t *testing.T) {
		v, err := NewVocabulary(VocabularyOptions{
			StartReactions: []string{"runner", "white_check_mark"},
			StartReaction:  "white_check_mark",
		})
		require.NoError(t, err)

		assert.Equal(t, "white_check_mark", v.StartReaction())
	})

	t.Run("Error_EmptyList", func(t *testing.T) {
		_, err := NewVocabulary(VocabularyOptions{StartReactions: []string{}})
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrEmptyVocabulary)
		assert.Contains(t, err.Error(), "start reactions")
	})

	t.Run("Error_OnlyBlankEntries", func(t *testing.T) {
		_, err := NewVocabulary(VocabularyOptions{DoneReactions: []string{" ", ""}})
		assert.ErrorIs(t, err, core.ErrEmptyVocabulary)
	})

	t.Run("AccessorsReturnCopies", func(t *testing.T) {
		v := DefaultVocabulary()
		reactions := v.TodoReactions()
		reactions[0] = "changed"

		assert.Equal(t, []string{"memo"}, v.TodoReactions())
	})
}

func TestParseReactionList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "single", input: "memo", expected: []string{"memo"}},
		{name: "multiple", input: "memo,pushpin", expected: []string{"memo", "pushpin"}},
		{name: "whitespace and colons", input: " :memo: , pushpin ", expected: []string{"memo", "pushpin"}},
		{name: "blank entries dropped", input: "memo,,", expected: []string{"memo"}},
		{name: "empty", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseReactionList(tt.input))
		})
	}
}

func TestSlackEventConstructors(t *testing.T) {
	msg := SlackMessageEvent{Channel: "C1", TS: "100.1", User: "BOT"}
	event := NewSlackMessageEvent(msg)

	assert.Equal(t, SlackEventTypeMessage, event.Type)
	assert.True(t, event.Message.IsPresent())
	assert.False(t, event.Reaction.IsPresent())
	assert.Equal(t, SlackItemRef{Channel: "C1", Timestamp: "100.1"}, event.Message.MustGet().Ref())
	assert.False(t, msg.IsThreadReply())

	reaction := SlackReactionEvent{Item: SlackReactionItem{Type: "message", Channel: "C2", TS: "200.2"}}
	removed := NewSlackReactionEvent(SlackEventTypeReactionRemoved, reaction)

	assert.Equal(t, SlackEventTypeReactionRemoved, removed.Type)
	assert.Equal(t, SlackItemRef{Channel: "C2", Timestamp: "200.2"}, removed.Reaction.MustGet().Ref())
}
