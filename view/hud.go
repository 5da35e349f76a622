package view

import (
	"fmt"
	"math"
)

var desktopHelp = []string{
	"Drive with WASD or the arrow keys",
	"R resets the car",
	"Click a building or drive into it",
	"Esc closes the open panel",
}

var touchHelp = []string{
	"Drive with the on-screen arrows",
	"Tap a building or drive into it",
}

// HUDLines is the instruction box text. Speed is in world units per second.
func HUDLines(touch bool, speed, toKmh float64) []string {
	help := desktopHelp
	if touch {
		help = touchHelp
	}
	lines := make([]string, 0, len(help)+1)
	lines = append(lines, help...)
	return append(lines, fmt.Sprintf("Speed: %d km/h", int(math.Round(speed*toKmh))))
}

// DebugLine shows loop timing and what the village holds
func DebugLine(fps, tps float64, bodies int) string {
	return fmt.Sprintf("FPS %.0f  TPS %.0f  bodies %d", fps, tps, bodies)
}
