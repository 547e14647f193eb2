package cue

import (
	"context"

	"github.com/gen2brain/beeep"
)

var titles = map[Cue]string{
	WarmUpStart:   "Warm up",
	RunStart:      "Run",
	WalkStart:     "Walk",
	CoolDownStart: "Cool down",
	Complete:      "Workout complete",
}

// Notifier shows a desktop notification when a segment starts and when the
// workout is complete. Countdown and halfway cues are not shown.
type Notifier struct {
	// Icon is the path to an image shown with the notification. It may be
	// empty.
	Icon string

	notify func(title, message, icon string) error
}

// NewNotifier returns a Notifier that uses the system notification service.
func NewNotifier(icon string) *Notifier {
	return &Notifier{
		Icon:   icon,
		notify: func(title, message, icon string) error {
			return beeep.Notify(title, message, icon)
		},
	}
}

func (n *Notifier) Play(_ context.Context, c Cue) error {
	title, ok := titles[c]
	if !ok {
		return nil
	}

	return n.notify(title, phrases[c][0], n.Icon)
}
