package component

import (
	"time"

	"journeo/chat"
)

// EditorSubmitMsg is sent when the user submits the editor.
type EditorSubmitMsg struct {
	Value string
}

// ReplyMsg carries the answer to a submitted prompt.
type ReplyMsg struct {
	Answer  chat.Answer
	Elapsed time.Duration
}
