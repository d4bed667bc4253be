package todostar

import (
	"context"
	"regexp"
	"strings"

	"github.com/dayflower/todo-star-slack-bot/models"
)

// messageRule fires handle when pattern matches the message text
type messageRule struct {
	name    string
	pattern *regexp.Regexp
	handle  func(ctx context.Context, event models.SlackMessageEvent) error
}

// reactionRule fires handle when the reaction name is one of reactions.
// A nil handle swallows the reaction silently.
type reactionRule struct {
	name      string
	reactions map[string]struct{}
	handle    func(ctx context.Context, event models.SlackReactionEvent) error
}

func (r reactionRule) matches(reaction string) bool {
	_, ok := r.reactions[reaction]
	return ok
}

// matchMessageRule returns the first rule whose pattern matches text
func matchMessageRule(rules []messageRule, text string) (messageRule, bool) {
	for _, rule := range rules {
		if rule.pattern.MatchString(text) {
			return rule, true
		}
	}
	return messageRule{}, false
}

// matchReactionRule returns the first rule listing reaction
func matchReactionRule(rules []reactionRule, reaction string) (reactionRule, bool) {
	for _, rule := range rules {
		if rule.matches(reaction) {
			return rule, true
		}
	}
	return reactionRule{}, false
}

// space also covers the vertical tab and Unicode spaces such as U+00A0 and U+3000,
// which RE2's \s does not.
const space = `[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]`

// commandPattern matches word as the first token of a message,
// e.g. "todo", "  todo buy milk" but not "todoist".
func commandPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`^` + space + `*` + regexp.QuoteMeta(word) + `(?:` + space + `|$)`)
}

// emojiPattern matches any of reactions written as :name: as the first token of a message.
func emojiPattern(reactions []string) *regexp.Regexp {
	quoted := make([]string, len(reactions))
	for i, r := range reactions {
		quoted[i] = regexp.QuoteMeta(r)
	}
	return regexp.MustCompile(`^` + space + `*:(?:` + strings.Join(quoted, "|") + `):(?:` + space + `|$)`)
}

func reactionSet(reactions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(reactions))
	for _, r := range reactions {
		set[r] = struct{}{}
	}
	return set
}
