package core

import "time"

// Clock measures elapsed wall time in seconds. It also tracks the time
// between consecutive Update calls, which the frame loop uses as delta time.
type Clock struct {
	now       func() time.Time
	startTime time.Time
	started   bool
	elapsed   float64
	delta     float64
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockWithSource builds a clock that reads time from now. Tests use it
// to step time by hand.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if !c.started {
		return
	}
	elapsed := c.now().Sub(c.startTime).Seconds()
	c.delta = elapsed - c.elapsed
	c.elapsed = elapsed
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = c.now()
	c.started = true
	c.elapsed = 0
	c.delta = 0
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.started = false
}

// Elapsed returns the seconds between Start and the last Update.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Delta returns the seconds between the last two Update calls.
func (c *Clock) Delta() float64 {
	return c.delta
}
