package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHUDLines(t *testing.T) {
	desktop := HUDLines(false, 10, 3.6)
	assert.Contains(t, desktop[0], "WASD")
	assert.Equal(t, "Speed: 36 km/h", desktop[len(desktop)-1])

	touch := HUDLines(true, 0, 3.6)
	assert.Contains(t, touch[0], "on-screen")
	assert.Equal(t, "Speed: 0 km/h", touch[len(touch)-1])
}

func TestDebugLine(t *testing.T) {
	assert.Equal(t, "FPS 60  TPS 60  bodies 31", DebugLine(60, 60, 31))
}
