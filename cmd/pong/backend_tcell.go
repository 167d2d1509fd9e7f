//go:build !sdl

package main

import "github.com/lixenwraith/pong/platform"

func newPlatform() platform.Platform {
	return platform.NewTerminal()
}
