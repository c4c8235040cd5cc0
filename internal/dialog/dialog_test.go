package dialog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weatherEvent = `{
  "sessionId": "abc-123",
  "inputTranscript": "what is the weather in Lund",
  "sessionState": {
    "intent": {
      "name": "GetWeather",
      "state": "InProgress",
      "slots": {
        "City": {"value": {"originalValue": "lund", "interpretedValue": "Lund", "resolvedValues": ["Lund"]}},
        "Date": null
      }
    }
  }
}`

func TestSlots_Get(t *testing.T) {
	var event Event
	require.NoError(t, json.Unmarshal([]byte(weatherEvent), &event))

	city, ok := event.Slot("City")
	assert.True(t, ok)
	assert.Equal(t, "Lund", city)

	_, ok = event.Slot("Date")
	assert.False(t, ok, "null slot is absent")

	_, ok = event.Slot("Missing")
	assert.False(t, ok, "unknown slot is absent")

	assert.Equal(t, "GetWeather", event.IntentName())
	assert.Equal(t, "abc-123", event.SessionID)
}

func TestSlots_Get_BlankAndEmptyValue(t *testing.T) {
	slots := Slots{
		"Blank":   {Value: &SlotValue{InterpretedValue: "   "}},
		"Empty":   {Value: &SlotValue{InterpretedValue: ""}},
		"NoValue": {Shape: "Scalar"},
	}

	v, ok := slots.Get("Blank")
	assert.True(t, ok)
	assert.Equal(t, "   ", v)
	_, ok = slots.Get("Empty")
	assert.False(t, ok)
	_, ok = slots.Get("NoValue")
	assert.False(t, ok)

	var nilSlots Slots
	_, ok = nilSlots.Get("City")
	assert.False(t, ok)
}

func TestNewSlots(t *testing.T) {
	slots := NewSlots(map[string]string{"City": "Lund"})
	v, ok := slots.Get("City")
	assert.True(t, ok)
	assert.Equal(t, "Lund", v)
}

func TestClose_WireShape(t *testing.T) {
	resp := Failed("GetWeather", "Could not find coordinates for Lund.")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	sessionState := decoded["sessionState"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"type": "Close"}, sessionState["dialogAction"])
	assert.Equal(t, map[string]interface{}{"name": "GetWeather", "state": "Failed"}, sessionState["intent"])

	messages := decoded["messages"].([]interface{})
	require.Len(t, messages, 1)
	assert.Equal(t, map[string]interface{}{
		"contentType": "PlainText",
		"content":     "Could not find coordinates for Lund.",
	}, messages[0])

	assert.True(t, resp.IsClose())
	assert.Equal(t, "failed", resp.Outcome())
}

func TestElicit_EchoesIntent(t *testing.T) {
	var event Event
	require.NoError(t, json.Unmarshal([]byte(weatherEvent), &event))

	resp := Elicit(event.SessionState.Intent, "Date", "What date?")

	assert.True(t, resp.IsElicit())
	assert.Equal(t, "elicit", resp.Outcome())
	assert.Equal(t, "Date", resp.SessionState.DialogAction.SlotToElicit)
	assert.Equal(t, "GetWeather", resp.SessionState.Intent.Name)
	assert.Equal(t, "What date?", resp.Text())

	city, ok := resp.SessionState.Intent.Slots.Get("City")
	assert.True(t, ok)
	assert.Equal(t, "Lund", city)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"dialogAction":{"type":"ElicitSlot","slotToElicit":"Date"}`)
}

func TestFulfilled_Outcome(t *testing.T) {
	resp := Fulfilled("CarCheck", "ok")
	assert.Equal(t, "fulfilled", resp.Outcome())
	assert.Equal(t, StateFulfilled, resp.SessionState.Intent.State)

	var nilResp *Response
	assert.Equal(t, "", nilResp.Text())
}

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name  string
		want  IntentName
		found bool
	}{
		{"CarCheck", IntentCarCheck, true},
		{"GetWeather", IntentGetWeather, true},
		{"getweather", "", false},
		{"OrderPizza", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIntent(tt.name)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
