package dialog

// IntentName is the closed set of intents this bot fulfils.
type IntentName string

const (
	IntentCarCheck   IntentName = "CarCheck"
	IntentGetWeather IntentName = "GetWeather"
)

// KnownIntents lists every supported intent in a stable order.
var KnownIntents = []IntentName{IntentCarCheck, IntentGetWeather}

// ParseIntent maps a raw intent name onto the closed set. The comparison is
// exact, matching how Lex reports intent names.
func ParseIntent(name string) (IntentName, bool) {
	for _, known := range KnownIntents {
		if string(known) == name {
			return known, true
		}
	}
	return "", false
}

func (n IntentName) String() string {
	return string(n)
}
