// Package program holds the interval data for the nine week Couch to 5K
// schedule: typed segments, the immutable sequences built from them and the
// 27 workouts of the program.
package program

import "encoding/json"

// SegmentType identifies what the runner does during a segment.
type SegmentType string

const (
	WarmUp   SegmentType = "warmup"
	Run      SegmentType = "run"
	Walk     SegmentType = "walk"
	CoolDown SegmentType = "cooldown"
)

// Label returns the human readable name of the segment type.
func (t SegmentType) Label() string {
	switch t {
	case WarmUp:
		return "Warm Up"
	case Run:
		return "Run"
	case Walk:
		return "Walk"
	case CoolDown:
		return "Cool Down"
	}

	return string(t)
}

// ParseSegmentType returns the segment type named s.
func ParseSegmentType(s string) (SegmentType, bool) {
	switch t := SegmentType(s); t {
	case WarmUp, Run, Walk, CoolDown:
		return t, true
	}

	return "", false
}

// Segment is one timed portion of a workout.
type Segment struct {
	Type     SegmentType `json:"type"`
	Duration int         `json:"duration"` // seconds
}

// Sequence is the ordered, immutable list of segments that make up a
// workout. The zero value is an empty sequence.
type Sequence struct {
	segments []Segment
	total    int
}

// NewSequence builds a sequence from segments. The slice is copied so later
// changes made by the caller do not leak into the sequence. Segments
// without a positive duration are dropped.
func NewSequence(segments ...Segment) Sequence {
	s := Sequence{
		segments: make([]Segment, 0, len(segments)),
	}

	for _, seg := range segments {
		if seg.Duration <= 0 {
			continue
		}

		s.segments = append(s.segments, seg)
		s.total += seg.Duration
	}

	return s
}

// Len returns the number of segments.
func (s Sequence) Len() int {
	return len(s.segments)
}

// At returns the segment at index i. It panics if i is out of range.
func (s Sequence) At(i int) Segment {
	return s.segments[i]
}

// Total returns the sum of all segment durations in seconds.
func (s Sequence) Total() int {
	return s.total
}

// Segments returns a copy of the segments in order.
func (s Sequence) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)

	return out
}

func (s Sequence) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.segments)
}

func (s *Sequence) UnmarshalJSON(b []byte) error {
	var segments []Segment

	if err := json.Unmarshal(b, &segments); err != nil {
		return err
	}

	*s = NewSequence(segments...)

	return nil
}
