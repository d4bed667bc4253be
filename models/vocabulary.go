package models

import (
	"fmt"
	"strings"

	"github.com/dayflower/todo-star-slack-bot/core"
)

// Default reaction vocabularies
var (
	DefaultTodoReactions  = []string{"memo"}
	DefaultStartReactions = []string{"white_check_mark"}
	DefaultDoneReactions  = []string{"heavy_check_mark"}
)

// Command keywords recognised at the start of a message
const (
	TodoCommand  = "todo"
	StartCommand = "start"
	DoneCommand  = "done"
)

// VocabularyOptions holds the raw reaction lists and the optional names to place.
// Empty lists fall back to the defaults; empty names fall back to the first list entry.
type VocabularyOptions struct {
	TodoReactions  []string
	StartReactions []string
	DoneReactions  []string

	TodoReaction  string
	StartReaction string
	DoneReaction  string
}

// Vocabulary is the immutable set of reactions recognised and placed by the bot.
type Vocabulary struct {
	todoReactions  []string
	startReactions []string
	doneReactions  []string

	todoReaction  string
	startReaction string
	doneReaction  string
}

// NewVocabulary validates opts and builds a Vocabulary.
func NewVocabulary(opts VocabularyOptions) (*Vocabulary, error) {
	todo, err := normalizeReactions("todo", opts.TodoReactions, DefaultTodoReactions)
	if err != nil {
		return nil, err
	}
	start, err := normalizeReactions("start", opts.StartReactions, DefaultStartReactions)
	if err != nil {
		return nil, err
	}
	done, err := normalizeReactions("done", opts.DoneReactions, DefaultDoneReactions)
	if err != nil {
		return nil, err
	}

	return &Vocabulary{
		todoReactions:  todo,
		startReactions: start,
		doneReactions:  done,
		todoReaction:   firstNonEmpty(opts.TodoReaction, todo[0]),
		startReaction:  firstNonEmpty(opts.StartReaction, start[0]),
		doneReaction:   firstNonEmpty(opts.DoneReaction, done[0]),
	}, nil
}

// DefaultVocabulary returns the memo / white_check_mark / heavy_check_mark vocabulary.
func DefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(VocabularyOptions{})
	if err != nil {
		panic(fmt.Sprintf("default vocabulary is invalid: %v", err))
	}
	return v
}

func (v *Vocabulary) TodoReactions() []string  { return cloneStrings(v.todoReactions) }
func (v *Vocabulary) StartReactions() []string { return cloneStrings(v.startReactions) }
func (v *Vocabulary) DoneReactions() []string  { return cloneStrings(v.doneReactions) }

// TodoReaction is the reaction placed on a root message for the "todo" command.
func (v *Vocabulary) TodoReaction() string { return v.todoReaction }

// StartReaction is the reaction placed on a thread root for the "start" command.
func (v *Vocabulary) StartReaction() string { return v.startReaction }

// DoneReaction is the reaction placed on a thread root for the "done" command.
func (v *Vocabulary) DoneReaction() string { return v.doneReaction }

func (v *Vocabulary) String() string {
	return fmt.Sprintf(
		"todo=%s (%s) start=%s (%s) done=%s (%s)",
		strings.Join(v.todoReactions, ","), v.todoReaction,
		strings.Join(v.startReactions, ","), v.startReaction,
		strings.Join(v.doneReactions, ","), v.doneReaction,
	)
}

// ParseReactionList splits a comma separated list of reaction names.
// Surrounding whitespace and colons are stripped and blank entries dropped.
func ParseReactionList(raw string) []string {
	var reactions []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.Trim(strings.TrimSpace(part), ":")
		if name != "" {
			reactions = append(reactions, name)
		}
	}
	return reactions
}

func normalizeReactions(kind string, reactions, defaults []string) ([]string, error) {
	if reactions == nil {
		return cloneStrings(defaults), nil
	}

	var normalized []string
	for _, r := range reactions {
		if name := strings.TrimSpace(r); name != "" {
			normalized = append(normalized, name)
		}
	}
	if len(normalized) == 0 {
		return nil, fmt.Errorf("%s reactions: %w", kind, core.ErrEmptyVocabulary)
	}
	return normalized, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
