package input

import "github.com/lixenwraith/pong/platform"

// Command is the per-frame result of reading held keys
type Command struct {
	// Paddle directions: -1 up, 0 idle, 1 down
	Left  int
	Right int
	Quit  bool
}

// Resolve maps a held-key snapshot to a Command
// Directions start at 0 each frame; bindings are evaluated in table order and each held key
// assigns its direction, so with both keys of a paddle held the last binding checked wins
func (kt *KeyTable) Resolve(keys platform.KeyState) Command {
	var cmd Command
	for _, b := range kt.Bindings {
		if !keys.Held(b.Key) {
			continue
		}
		switch b.Intent {
		case IntentQuit:
			cmd.Quit = true
		case IntentLeftUp:
			cmd.Left = -1
		case IntentLeftDown:
			cmd.Left = 1
		case IntentRightUp:
			cmd.Right = -1
		case IntentRightDown:
			cmd.Right = 1
		}
	}
	return cmd
}
