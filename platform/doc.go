// Package platform defines the windowing, input and drawing contract the game loop talks to,
// along with the backends that fulfil it.
//
// Backends:
//   - Terminal: tcell screen, the 1024x768 field projected onto the terminal cell grid.
//     Held keys are emulated from press/auto-repeat events within a hold window.
//   - SDL: native window and accelerated renderer (build tag "sdl").
//
// All drawing coordinates are field units; backends scale them to their own raster.
package platform
