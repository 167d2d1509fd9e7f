package input

import "github.com/lixenwraith/pong/platform"

// Binding pairs a key with the intent it triggers while held
type Binding struct {
	Key    platform.Key
	Intent Intent
}

// KeyTable is an ordered list of bindings
// Order is significant: when conflicting keys are held, the later binding wins
type KeyTable struct {
	Bindings []Binding
}

// DefaultKeyTable returns W/S for the left paddle, I/K for the right, Escape to quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Bindings: []Binding{
			{platform.KeyEscape, IntentQuit},
			{platform.KeyW, IntentLeftUp},
			{platform.KeyS, IntentLeftDown},
			{platform.KeyI, IntentRightUp},
			{platform.KeyK, IntentRightDown},
		},
	}
}
