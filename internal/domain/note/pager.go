package note

import (
	"fmt"
	"strings"
)

// maxChunkLen caps one outbound list message. Telegram rejects longer texts.
const maxChunkLen = 4096

// Pager lazily renders note summaries into display chunks. Each Next call
// consumes summaries, so an exhausted pager cannot be restarted.
type Pager struct {
	items []Summary
	index int
}

// NewPager creates a pager over summaries ordered by the caller.
func NewPager(items []Summary) *Pager {
	return &Pager{items: items}
}

// Next returns the next chunk of newline-joined note lines. Lines are packed
// greedily while their cumulative length stays within the budget; the newline
// separators are not counted. ok is false once all summaries are consumed.
func (p *Pager) Next() (chunk string, ok bool) {
	if p.index >= len(p.items) {
		return "", false
	}

	var size int
	var lines []string
	for _, item := range p.items[p.index:] {
		line := formatLine(item)
		if len(lines) > 0 && size+len(line) > maxChunkLen {
			break
		}
		lines = append(lines, line)
		size += len(line)
		p.index++
	}
	return strings.Join(lines, "\n"), true
}

// formatLine renders one summary as a MarkdownV2 list line. The hyphen is
// escaped because MarkdownV2 treats a bare hyphen as a control character.
// Over-long lines are cut per character and marked with a "..." suffix.
func formatLine(item Summary) string {
	line := fmt.Sprintf("`%d` \\- %s", item.ID, item.Keywords.String())
	if len(line) > maxChunkLen {
		runes := []rune(line)
		line = string(runes[:maxChunkLen-3]) + "..."
	}
	return line
}
