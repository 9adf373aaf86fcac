package dialogue

import (
	"encoding/json"

	"github.com/ganot/notekeeper/internal/domain/note"
)

// Step identifies where a capture dialogue is between messages.
type Step string

const (
	// StepStart is the initial step: the dialogue has not prompted yet.
	StepStart Step = "start"
	// StepAwaitingContent means the caller was asked to send any message.
	StepAwaitingContent Step = "awaiting_content"
	// StepAwaitingKeywords means content was received and keywords are next.
	StepAwaitingKeywords Step = "awaiting_keywords"
)

// State is the per-chat dialogue state persisted between messages.
// Content is set only in StepAwaitingKeywords. The zero value is the
// dialogue's starting state.
type State struct {
	Step    Step
	Content note.Content
}

type stateDoc struct {
	Step    Step            `json:"step"`
	Content json.RawMessage `json:"content,omitempty"`
}

// MarshalJSON encodes the state with its content as a nested document.
func (s State) MarshalJSON() ([]byte, error) {
	doc := stateDoc{Step: s.Step}
	if s.Content != nil {
		data, err := note.EncodeContent(s.Content)
		if err != nil {
			return nil, err
		}
		doc.Content = data
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes a persisted state. A missing step maps to StepStart.
func (s *State) UnmarshalJSON(data []byte) error {
	var doc stateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	s.Step = doc.Step
	if s.Step == "" {
		s.Step = StepStart
	}
	s.Content = nil
	if len(doc.Content) > 0 {
		content, err := note.DecodeContent(doc.Content)
		if err != nil {
			return err
		}
		s.Content = content
	}
	return nil
}
