// sim/ball.go
package sim

import "fmt"

// Ball is a single numbered draw target. Its value is fixed for the lifetime
// of the owning Pool; its draw count only changes through that Pool.
type Ball struct {
	value     int
	drawCount int
}

func newBall(value int) *Ball {
	return &Ball{value: value}
}

// Value returns the ball's number.
func (b *Ball) Value() int { return b.value }

// DrawCount returns how many times the ball has been drawn since the last reset.
func (b *Ball) DrawCount() int { return b.drawCount }

func (b *Ball) draw() {
	b.drawCount++
}

func (b *Ball) reset() {
	b.drawCount = 0
}

// rankedBefore reports whether b ranks ahead of other: higher draw count
// first, ties by ascending value.
func (b *Ball) rankedBefore(other *Ball) bool {
	if b.drawCount != other.drawCount {
		return b.drawCount > other.drawCount
	}
	return b.value < other.value
}

func (b *Ball) String() string {
	return fmt.Sprintf("Ball %d: %d", b.value, b.drawCount)
}
