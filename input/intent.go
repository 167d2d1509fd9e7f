package input

// Intent is the game action bound to a key
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentLeftUp
	IntentLeftDown
	IntentRightUp
	IntentRightDown
)

var intentNames = map[Intent]string{
	IntentNone:      "none",
	IntentQuit:      "quit",
	IntentLeftUp:    "left_up",
	IntentLeftDown:  "left_down",
	IntentRightUp:   "right_up",
	IntentRightDown: "right_down",
}

func (i Intent) String() string {
	return intentNames[i]
}
