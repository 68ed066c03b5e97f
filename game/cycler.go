package game

const (
	counterClockwise = -1
	clockwise        = 1
)

// Cycler tracks the seat in turn and the direction of play around the
// table.
type Cycler struct {
	seats     int
	current   int
	direction int
}

func NewCycler(seats int) *Cycler {
	return &Cycler{
		seats:     seats,
		direction: clockwise,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

// Next advances one seat in the current direction and returns the new
// seat in turn.
func (c *Cycler) Next() int {
	c.current = (c.current + c.direction + c.seats) % c.seats
	return c.current
}

// Seek jumps straight to seat.
func (c *Cycler) Seek(seat int) {
	c.current = ((seat % c.seats) + c.seats) % c.seats
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case clockwise:
		c.direction = counterClockwise
	case counterClockwise:
		c.direction = clockwise
	}
}

// Clockwise reports whether play currently advances in seating order.
func (c *Cycler) Clockwise() bool {
	return c.direction == clockwise
}
