package platform

// Key is a backend-neutral key identifier
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyS
	KeyI
	KeyK
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyW:       "w",
	KeyS:       "s",
	KeyI:       "i",
	KeyK:       "k",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return keyNames[KeyUnknown]
}

// KeyState maps a key to whether it is currently held
// Missing keys are not held
type KeyState map[Key]bool

// Held reports whether k is held
func (s KeyState) Held(k Key) bool {
	return s[k]
}
