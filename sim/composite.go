// sim/composite.go
package sim

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Drawing is anything that can be run, reported on and reset between
// repetitions. *Pool and *CompositeSimulation both implement it, so
// composites may nest.
type Drawing interface {
	Run() string
	Reset()
	FinalReport() string
}

var (
	_ Drawing = (*Pool)(nil)
	_ Drawing = (*CompositeSimulation)(nil)
)

const compositeHeader = "Final composite result:\n"

// CompositeSimulation runs an ordered set of drawings together.
// Insertion order is the run order and the report order.
type CompositeSimulation struct {
	drawings []Drawing
}

// NewCompositeSimulation creates an empty composite.
func NewCompositeSimulation() *CompositeSimulation {
	return &CompositeSimulation{drawings: make([]Drawing, 0)}
}

// Append adds a drawing at the end of the run order.
func (c *CompositeSimulation) Append(d Drawing) {
	c.drawings = append(c.drawings, d)
}

// Len returns the number of drawings.
func (c *CompositeSimulation) Len() int { return len(c.drawings) }

// Drawings returns the drawings in insertion order.
func (c *CompositeSimulation) Drawings() []Drawing {
	out := make([]Drawing, len(c.drawings))
	copy(out, c.drawings)
	return out
}

// Run runs every drawing one after another, then returns the aggregate report.
func (c *CompositeSimulation) Run() string {
	for i, d := range c.drawings {
		logrus.Debugf("[composite] running drawing %d/%d", i+1, len(c.drawings))
		d.Run()
	}
	report := c.FinalReport()
	logrus.Info(report)
	return report
}

// Reset resets every drawing in insertion order.
func (c *CompositeSimulation) Reset() {
	for _, d := range c.drawings {
		d.Reset()
	}
}

// FinalReport concatenates each drawing's final report, each followed by a
// blank line, under a composite header. It reads current state only.
func (c *CompositeSimulation) FinalReport() string {
	var b strings.Builder
	b.WriteString(compositeHeader)
	for _, d := range c.drawings {
		b.WriteString(d.FinalReport())
		b.WriteString("\n\n")
	}
	return b.String()
}

// AggregateReport is FinalReport under the name callers outside a run use.
func (c *CompositeSimulation) AggregateReport() string {
	return c.FinalReport()
}
