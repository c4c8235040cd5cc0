package dialog

// Close ends the turn with a terminal state and one plain-text message.
func Close(intentName string, state IntentState, message string) *Response {
	return &Response{
		SessionState: ResponseSessionState{
			DialogAction: DialogAction{Type: DialogActionClose},
			Intent: Intent{
				Name:  intentName,
				State: state,
			},
		},
		Messages: []Message{plainText(message)},
	}
}

// Fulfilled is Close with StateFulfilled.
func Fulfilled(intentName, message string) *Response {
	return Close(intentName, StateFulfilled, message)
}

// Failed is Close with StateFailed.
func Failed(intentName, message string) *Response {
	return Close(intentName, StateFailed, message)
}

// Elicit asks the user for one slot. The incoming intent is echoed so that
// Lex keeps the slots which are already filled.
func Elicit(intent Intent, slot, prompt string) *Response {
	return &Response{
		SessionState: ResponseSessionState{
			DialogAction: DialogAction{
				Type:         DialogActionElicitSlot,
				SlotToElicit: slot,
			},
			Intent: intent,
		},
		Messages: []Message{plainText(prompt)},
	}
}

func plainText(content string) Message {
	return Message{ContentType: ContentTypePlainText, Content: content}
}

// Text returns the first message content, or "" when there is none.
func (r *Response) Text() string {
	if r == nil || len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[0].Content
}

func (r *Response) IsClose() bool {
	return r != nil && r.SessionState.DialogAction.Type == DialogActionClose
}

func (r *Response) IsElicit() bool {
	return r != nil && r.SessionState.DialogAction.Type == DialogActionElicitSlot
}

// Outcome is a short label used for logs and metrics: fulfilled, failed or
// elicit.
func (r *Response) Outcome() string {
	switch {
	case r.IsElicit():
		return "elicit"
	case r.IsClose() && r.SessionState.Intent.State == StateFulfilled:
		return "fulfilled"
	default:
		return "failed"
	}
}
