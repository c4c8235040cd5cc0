package dialog

// Slots maps a slot name to its (possibly unfilled) value.
type Slots map[string]*Slot

// Get returns the interpreted value of a slot. Unfilled, null and empty slots
// are reported as absent; whitespace counts as a value.
func (s Slots) Get(name string) (string, bool) {
	slot, ok := s[name]
	if !ok || slot == nil || slot.Value == nil {
		return "", false
	}
	v := slot.Value.InterpretedValue
	if v == "" {
		return "", false
	}
	return v, true
}

// NewSlots builds filled slots from plain values, mostly for tests and the
// HTTP transport.
func NewSlots(values map[string]string) Slots {
	out := make(Slots, len(values))
	for name, v := range values {
		out[name] = &Slot{
			Shape: "Scalar",
			Value: &SlotValue{OriginalValue: v, InterpretedValue: v},
		}
	}
	return out
}

// Slot is a shortcut for e.SessionState.Intent.Slots.Get.
func (e *Event) Slot(name string) (string, bool) {
	return e.SessionState.Intent.Slots.Get(name)
}

func (e *Event) IntentName() string {
	return e.SessionState.Intent.Name
}
