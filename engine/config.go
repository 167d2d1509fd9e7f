package engine

import "github.com/lixenwraith/pong/parameter"

// Config selects what Open creates; geometry is fixed by the parameter package
type Config struct {
	Variant Variant
	Title   string
	WindowX int
	WindowY int

	// Seed feeds the spawn RNG; a fixed seed reproduces a twin launch
	Seed uint64
}

// DefaultConfig returns the classic single-ball setup in the standard window
func DefaultConfig() Config {
	return Config{
		Variant: VariantClassic,
		Title:   parameter.WindowTitle,
		WindowX: parameter.WindowX,
		WindowY: parameter.WindowY,
	}
}
