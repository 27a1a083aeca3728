// gemini - Terminal ASCII/ANSI renderer
// Draws 2D primitives and spinning 3D meshes with plain characters and
// ANSI colours.
//
// Controls (uv backend):
//
//	W/S, Up/Down     - Pitch
//	A/D, Left/Right  - Yaw
//	Q/E              - Roll
//	Space            - Random spin
//	+/-              - Zoom
//	M                - Next display mode
//	R                - Reset camera
//	Esc, Ctrl+C      - Quit
package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
)

var (
	version = "dev"
	commit  = ""
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithCommit(commit),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}
