package server

import "github.com/lixenwraith/deckplay/present"

// State is one frame of presentation state as browsers see it. Frames
// are absolute snapshots, never deltas, so a dropped or replayed frame
// cannot desynchronize a viewer.
type State struct {
	Slide      int      `json:"slide"`
	SlideCount int      `json:"slideCount"`
	Progress   float64  `json:"progress"`
	Revealed   []string `json:"revealed"`
}

// Snapshot captures the controller's visible state. Call it from the
// goroutine that owns the controller; the returned value can then be
// handed to Publish from anywhere.
func Snapshot(ctrl *present.Controller) State {
	return State{
		Slide:      ctrl.Index(),
		SlideCount: ctrl.Deck().SlideCount(),
		Progress:   ctrl.Progress(),
		Revealed:   ctrl.RevealedIDs(),
	}
}
