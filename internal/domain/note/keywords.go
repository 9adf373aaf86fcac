package note

import "strings"

// Keywords is an ordered, duplicate-preserving list of search tags.
type Keywords []string

// SplitKeywords splits free text on single spaces. There is no trimming or
// case folding: consecutive spaces yield empty-string keywords, which take
// part in containment matching like any other token.
func SplitKeywords(text string) Keywords {
	return Keywords(strings.Split(text, " "))
}

// String joins the keywords with single spaces for display.
func (k Keywords) String() string {
	return strings.Join(k, " ")
}
