package cue

import "math/rand/v2"

var phrases = map[Cue][]string{
	RunStart: {
		"Let's go! Start running.",
		"Run time! You got this.",
		"Time to run!",
		"Here we go, run!",
		"Push it! Start running.",
	},
	WalkStart: {
		"Nice work! Walk it out.",
		"Good job. Walking now.",
		"Great effort! Rest up.",
		"Well done. Catch your breath.",
		"Awesome! Time to walk.",
	},
	WarmUpStart: {
		"Let's warm up. Start walking.",
		"Warm up time. Easy pace.",
	},
	CoolDownStart: {
		"Cool down. Great workout!",
		"Walk it off. You did amazing.",
	},
	Halfway: {
		"Halfway there! Keep going.",
		"You're halfway. Stay strong!",
		"Half done. You got this!",
	},
	Complete: {
		"Workout complete! Amazing job!",
		"You did it! Great work today.",
		"Finished! You crushed it!",
		"Done! Be proud of yourself.",
	},
	Countdown30: {"Thirty seconds."},
	Countdown10: {"Ten seconds!"},
}

// Phrase returns a spoken line for c picked with r. It returns an empty
// string for None.
func Phrase(c Cue, r *rand.Rand) string {
	variants := phrases[c]

	switch len(variants) {
	case 0:
		return ""
	case 1:
		return variants[0]
	}

	return variants[r.IntN(len(variants))]
}
