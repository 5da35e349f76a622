package systems

import (
	"testing"

	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestUpdateFloatingLabels_Bobs(t *testing.T) {
	w := donburi.NewWorld()
	spot := cfg.DefaultBuildings[0]
	entry := factory.CreateBuilding(w, nil, spot, false)
	label := components.FloatingLabel.Get(entry)

	assert.Equal(t, spot.Label, label.Text)
	assert.Equal(t, spot.H+cfg.UI.LabelHeight, label.Height)

	amp := float64(cfg.UI.LabelBobAmp)
	peak, flips := 0.0, 0
	rising := true
	for i := 0; i < 3*cfg.C.TPS; i++ {
		UpdateFloatingLabels(w)
		assert.GreaterOrEqual(t, label.Offset, -1e-6)
		assert.LessOrEqual(t, label.Offset, amp+1e-6)
		if label.Offset > peak {
			peak = label.Offset
		}
		if label.Rising != rising {
			rising = label.Rising
			flips++
		}
	}

	assert.InDelta(t, amp, peak, 0.01)
	// a full cycle takes LabelBobSecs, so three seconds flip at least four times
	assert.GreaterOrEqual(t, flips, 4)
}
