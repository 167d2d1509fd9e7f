//go:build sdl

package main

import (
	"runtime"

	"github.com/lixenwraith/pong/platform"
)

// SDL requires its calls on the main OS thread
func init() {
	runtime.LockOSThread()
}

func newPlatform() platform.Platform {
	return platform.NewSDL()
}
