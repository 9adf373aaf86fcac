// Package dialogue implements the multi-turn capture state machine that
// walks a caller through "send content" then "send keywords" before a note
// is persisted. The transition function is pure: it returns the effects the
// caller must apply (persist the note, persist or clear the state, reply),
// so it can be tested without any I/O.
package dialogue

import "github.com/ganot/notekeeper/internal/domain/note"

const (
	promptContent  = "Send any message"
	promptKeywords = "Send keywords"
	replyDone      = "Done"
)

// Result is what one transition asks the caller to do. The caller persists
// Save (if set) first, then persists Next or clears the session when Done,
// then sends Reply.
type Result struct {
	Next  State
	Done  bool
	Reply string
	Save  *note.New
}

// Advance drives the capture dialogue one inbound message forward.
func Advance(state State, msg note.Message) Result {
	switch state.Step {
	case StepAwaitingContent:
		content, err := note.ContentFromMessage(msg)
		if err != nil {
			return Result{Next: state, Reply: err.Error()}
		}
		return Result{
			Next:  State{Step: StepAwaitingKeywords, Content: content},
			Reply: promptKeywords,
		}
	case StepAwaitingKeywords:
		if msg.Kind != note.MessageText {
			// Replies "Done" without persisting and keeps waiting for
			// keywords. Kept as-is from the original behavior even though
			// the caller is told the note was saved; see DESIGN.md.
			return Result{Next: state, Reply: replyDone}
		}
		return Result{
			Done:  true,
			Reply: replyDone,
			Save: &note.New{
				Content:  state.Content,
				Keywords: note.SplitKeywords(msg.Text),
			},
		}
	default:
		return Result{Next: State{Step: StepAwaitingContent}, Reply: promptContent}
	}
}
