package systems

import (
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateFloatingLabels bobs building labels up and down
func UpdateFloatingLabels(w donburi.World) {
	dt := float32(tickSeconds())
	components.FloatingLabel.Each(w, func(entry *donburi.Entry) {
		label := components.FloatingLabel.Get(entry)
		if label.Tween == nil {
			label.Rising = true
			label.Tween = newBobTween(true)
		}
		offset, done := label.Tween.Update(dt)
		label.Offset = float64(offset)
		if done {
			label.Rising = !label.Rising
			label.Tween = newBobTween(label.Rising)
		}
	})
}

func newBobTween(rising bool) *gween.Tween {
	amp := cfg.UI.LabelBobAmp
	half := cfg.UI.LabelBobSecs / 2
	if rising {
		return gween.New(0, amp, half, ease.InOutSine)
	}
	return gween.New(amp, 0, half, ease.InOutSine)
}
