// Package dialog holds the Lex V2 code hook wire types and the two response
// shapes a handler may return: Close and ElicitSlot.
package dialog

// Event is the code hook input sent by Lex V2.
type Event struct {
	MessageVersion   string       `json:"messageVersion,omitempty"`
	InvocationSource string       `json:"invocationSource,omitempty"`
	InputMode        string       `json:"inputMode,omitempty"`
	SessionID        string       `json:"sessionId,omitempty"`
	InputTranscript  string       `json:"inputTranscript,omitempty"`
	Bot              *Bot         `json:"bot,omitempty"`
	SessionState     SessionState `json:"sessionState"`
}

type Bot struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	AliasID  string `json:"aliasId,omitempty"`
	LocaleID string `json:"localeId,omitempty"`
	Version  string `json:"version,omitempty"`
}

type SessionState struct {
	DialogAction      *DialogAction     `json:"dialogAction,omitempty"`
	Intent            Intent            `json:"intent"`
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
}

type Intent struct {
	Name              string      `json:"name"`
	State             IntentState `json:"state,omitempty"`
	ConfirmationState string      `json:"confirmationState,omitempty"`
	Slots             Slots       `json:"slots,omitempty"`
}

// Slot is null on the wire until Lex has filled it.
type Slot struct {
	Shape string     `json:"shape,omitempty"`
	Value *SlotValue `json:"value,omitempty"`
}

type SlotValue struct {
	OriginalValue    string   `json:"originalValue,omitempty"`
	InterpretedValue string   `json:"interpretedValue,omitempty"`
	ResolvedValues   []string `json:"resolvedValues,omitempty"`
}

type DialogActionType string

const (
	DialogActionClose      DialogActionType = "Close"
	DialogActionElicitSlot DialogActionType = "ElicitSlot"
	DialogActionDelegate   DialogActionType = "Delegate"
)

type DialogAction struct {
	Type         DialogActionType `json:"type"`
	SlotToElicit string           `json:"slotToElicit,omitempty"`
}

type IntentState string

const (
	StateFulfilled  IntentState = "Fulfilled"
	StateFailed     IntentState = "Failed"
	StateInProgress IntentState = "InProgress"
)

const ContentTypePlainText = "PlainText"

type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Response is the code hook output returned to Lex.
type Response struct {
	SessionState ResponseSessionState `json:"sessionState"`
	Messages     []Message            `json:"messages"`
}

type ResponseSessionState struct {
	DialogAction      DialogAction      `json:"dialogAction"`
	Intent            Intent            `json:"intent"`
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
}
