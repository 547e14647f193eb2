package program

import "fmt"

// Position points at a workout in the program.
type Position struct {
	Week int `json:"week"`
	Day  int `json:"day"`
}

// Start is the first workout of the program.
var Start = Position{Week: 1, Day: 1}

// Final is the last workout of the program.
var Final = Position{Week: Weeks, Day: DaysPerWeek}

// Valid reports whether the position refers to a workout in the program.
func (p Position) Valid() bool {
	return p.Week >= 1 && p.Week <= Weeks && p.Day >= 1 && p.Day <= DaysPerWeek
}

// Next returns the position after p. The week rolls over after the third
// day and the result never moves past the final workout.
func (p Position) Next() Position {
	next := Position{Week: p.Week, Day: p.Day + 1}

	if next.Day > DaysPerWeek {
		next.Day = 1
		next.Week++
	}

	if next.Week > Weeks {
		return Final
	}

	return next
}

// Before reports whether p comes earlier in the program than q.
func (p Position) Before(q Position) bool {
	if p.Week != q.Week {
		return p.Week < q.Week
	}

	return p.Day < q.Day
}

// Remaining returns the number of workouts left in the program, counting
// the one at p.
func (p Position) Remaining() int {
	i := Index(p.Week, p.Day)
	if i < 0 {
		return 0
	}

	return Weeks*DaysPerWeek - i
}

func (p Position) String() string {
	return fmt.Sprintf("Week %d, Day %d", p.Week, p.Day)
}
