package prompts

import (
	"fmt"
	"strings"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

const qaInstructions = "You are a fact-based QA assistant.\n" +
	"Use only the following information to answer the question. Do not add any extra information:\n\n"

// Bullet renders one fact as a markdown bullet with bold entities.
func Bullet(t types.Triple) string {
	return fmt.Sprintf("- **%s** %s **%s**", t.Subject, t.Predicate, t.Object)
}

// BulletList renders facts one per line, in order.
func BulletList(triples []types.Triple) string {
	lines := make([]string, len(triples))
	for i, t := range triples {
		lines[i] = Bullet(t)
	}
	return strings.Join(lines, "\n")
}

// QAPrompt wraps the bullet list and question in the answering template.
func QAPrompt(question, bulletList string) string {
	var b strings.Builder
	b.WriteString(qaInstructions)
	b.WriteString(bulletList)
	b.WriteString("\n\nUser: ")
	b.WriteString(question)
	b.WriteString("\nAssistant:")
	return b.String()
}
