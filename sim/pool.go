// sim/pool.go
package sim

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/drawsim/drawsim/sim/trace"
)

const (
	// MinDraws is the floor of the per-run draw budget.
	MinDraws = 500000
	// MinExtraDraws and MaxExtraDraws bound the random amount added to MinDraws.
	MinExtraDraws = 0
	MaxExtraDraws = 50000000
	// NumberOfPrints is how many progress snapshots a run takes on its way to the budget.
	NumberOfPrints = 10
)

// Pool is one drawing simulation over the contiguous range [smallest, biggest].
// It owns exactly one Ball per integer in that range.
type Pool struct {
	smallest    int
	biggest     int
	countToDraw int

	balls   map[int]*Ball
	ordered []*Ball // same balls, ascending by value

	// maxCount always equals the highest drawCount among balls.
	maxCount   int
	totalDraws int

	source Source
	trace  *trace.RunTrace

	minDraws      int
	minExtraDraws int
	maxExtraDraws int
	prints        int
}

// PoolOption customises a Pool at construction.
type PoolOption func(*Pool)

// WithSource sets the random source used for both the draw budget and the draws.
func WithSource(src Source) PoolOption {
	return func(p *Pool) { p.source = src }
}

// WithTrace sets the sink for progress snapshots. A nil trace disables recording.
func WithTrace(rt *trace.RunTrace) PoolOption {
	return func(p *Pool) { p.trace = rt }
}

// WithDrawBudget replaces MinDraws, MinExtraDraws and MaxExtraDraws.
func WithDrawBudget(minDraws, minExtra, maxExtra int) PoolOption {
	return func(p *Pool) {
		p.minDraws = minDraws
		p.minExtraDraws = minExtra
		p.maxExtraDraws = maxExtra
	}
}

// WithPrints replaces NumberOfPrints.
func WithPrints(n int) PoolOption {
	return func(p *Pool) { p.prints = n }
}

// NewPool builds a pool with one zero-count Ball per integer in [smallest, biggest].
// It returns an error wrapping ErrInvalidConfiguration when biggest <= smallest,
// smallest <= 0, countToDraw <= 0, countToDraw exceeds the pool size, or an
// option carries an unusable budget.
func NewPool(smallest, biggest, countToDraw int, opts ...PoolOption) (*Pool, error) {
	if err := validatePool(smallest, biggest, countToDraw); err != nil {
		return nil, err
	}

	p := &Pool{
		smallest:      smallest,
		biggest:       biggest,
		countToDraw:   countToDraw,
		balls:         make(map[int]*Ball, biggest-smallest+1),
		ordered:       make([]*Ball, 0, biggest-smallest+1),
		minDraws:      MinDraws,
		minExtraDraws: MinExtraDraws,
		maxExtraDraws: MaxExtraDraws,
		prints:        NumberOfPrints,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.source == nil {
		p.source = NewSource()
	}
	if err := p.validateBudget(); err != nil {
		return nil, err
	}

	for v := smallest; v <= biggest; v++ {
		b := newBall(v)
		p.balls[v] = b
		p.ordered = append(p.ordered, b)
	}
	return p, nil
}

func validatePool(smallest, biggest, countToDraw int) error {
	var errs []string
	if biggest <= smallest {
		errs = append(errs, fmt.Sprintf("biggest (%d) must be greater than smallest (%d)", biggest, smallest))
	}
	if smallest <= 0 {
		errs = append(errs, fmt.Sprintf("smallest must be positive, got %d", smallest))
	}
	if countToDraw <= 0 {
		errs = append(errs, fmt.Sprintf("count to draw must be positive, got %d", countToDraw))
	} else if biggest >= smallest && countToDraw > biggest-smallest+1 {
		errs = append(errs, fmt.Sprintf("count to draw (%d) exceeds pool size (%d)", countToDraw, biggest-smallest+1))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfiguration, strings.Join(errs, "; "))
	}
	return nil
}

func (p *Pool) validateBudget() error {
	switch {
	case p.minDraws < 0:
		return fmt.Errorf("%w: min draws must not be negative, got %d", ErrInvalidConfiguration, p.minDraws)
	case p.minExtraDraws < 0 || p.maxExtraDraws < p.minExtraDraws:
		return fmt.Errorf("%w: extra draws range [%d, %d] is invalid", ErrInvalidConfiguration, p.minExtraDraws, p.maxExtraDraws)
	case p.prints <= 0:
		return fmt.Errorf("%w: number of prints must be positive, got %d", ErrInvalidConfiguration, p.prints)
	}
	return nil
}

func (p *Pool) Smallest() int    { return p.smallest }
func (p *Pool) Biggest() int     { return p.biggest }
func (p *Pool) CountToDraw() int { return p.countToDraw }
func (p *Pool) Size() int        { return len(p.ordered) }

// MaxCount returns the highest draw count of any ball in the pool.
func (p *Pool) MaxCount() int { return p.maxCount }

// TotalDraws returns the number of successful draws since construction or the last Reset.
func (p *Pool) TotalDraws() int { return p.totalDraws }

// Ball looks up the ball with the given value.
func (p *Pool) Ball(value int) (*Ball, bool) {
	b, ok := p.balls[value]
	return b, ok
}

// Balls returns every ball in ascending value order. The slice is a copy;
// the balls are not.
func (p *Pool) Balls() []*Ball {
	return slices.Clone(p.ordered)
}

// Label is the short "smallest-biggest" name used in traces and logs.
func (p *Pool) Label() string {
	return fmt.Sprintf("%d-%d", p.smallest, p.biggest)
}

// Description reads like "Drawing of 6 balls from 1 to 49".
func (p *Pool) Description() string {
	noun := "balls"
	if p.countToDraw == 1 {
		noun = "ball"
	}
	return fmt.Sprintf("Drawing of %d %s from %d to %d", p.countToDraw, noun, p.smallest, p.biggest)
}

// Draw counts one draw of the ball with the given value. It returns an error
// wrapping ErrSampleMiss, and changes nothing, when no such ball exists.
func (p *Pool) Draw(value int) error {
	ball, ok := p.balls[value]
	if !ok {
		return fmt.Errorf("%w: %d outside %s", ErrSampleMiss, value, p.Label())
	}
	ball.draw()
	p.totalDraws++
	p.maxCount = max(p.maxCount, ball.drawCount)
	return nil
}

func (p *Pool) drawRandomBall() {
	value := p.source.IntInRange(p.smallest, p.biggest)
	if err := p.Draw(value); err != nil {
		logrus.Warnf("[pool %s] skipping draw: %v", p.Label(), err)
	}
}

// Run draws random balls until one of them has been drawn numberOfDraws
// times, where numberOfDraws is picked at random from the draw budget.
// The stop condition is on the single highest count, not on draws issued.
// A snapshot is recorded each time maxCount reaches the next multiple of
// numberOfDraws/prints. Run returns the final report.
func (p *Pool) Run() string {
	logrus.Infof("[pool %s] %s", p.Label(), p.Description())

	numberOfDraws := p.source.IntInRange(p.minExtraDraws, p.maxExtraDraws) + p.minDraws
	increment := numberOfDraws / p.prints
	logrus.Infof("[pool %s] budget=%d increment=%d", p.Label(), numberOfDraws, increment)
	p.trace.RecordBudget(numberOfDraws, increment)

	nextPrint := increment
	for p.maxCount < numberOfDraws {
		p.drawRandomBall()
		// maxCount grows by at most one per draw, so equality catches every boundary.
		if increment > 0 && p.maxCount == nextPrint {
			p.recordSnapshot(numberOfDraws)
			nextPrint += increment
		}
	}

	report := p.FinalReport()
	logrus.Infof("[pool %s] %s (total draws %d)", p.Label(), report, p.totalDraws)
	return report
}

func (p *Pool) recordSnapshot(budget int) {
	top := p.TopBalls()
	snap := trace.Snapshot{
		Pool:     p.Label(),
		MaxCount: p.maxCount,
		Budget:   budget,
		Top:      make([]trace.BallCount, len(top)),
	}
	for i, b := range top {
		snap.Top[i] = trace.BallCount{Value: b.value, Count: b.drawCount}
	}
	p.trace.RecordSnapshot(snap)
	logrus.Debugf("[pool %s] %s", p.Label(), snap)
}

// Reset zeroes every ball and maxCount without reallocating the balls.
func (p *Pool) Reset() {
	for _, b := range p.ordered {
		b.reset()
	}
	p.maxCount = 0
	p.totalDraws = 0
}

// TopBalls returns the countToDraw balls with the highest draw counts, ranked
// by descending count. Equal counts are ordered by ascending value.
func (p *Pool) TopBalls() []*Ball {
	ranked := slices.Clone(p.ordered)
	slices.SortStableFunc(ranked, func(a, b *Ball) int {
		switch {
		case a.rankedBefore(b):
			return -1
		case b.rankedBefore(a):
			return 1
		}
		return 0
	})
	return ranked[:min(p.countToDraw, len(ranked))]
}

// FinalReport names maxCount and, on the next line, the top balls' values in
// ascending order: " (4)  (17)  (23) ".
func (p *Pool) FinalReport() string {
	top := p.TopBalls()
	values := make([]int, len(top))
	for i, b := range top {
		values[i] = b.value
	}
	slices.Sort(values)

	var b strings.Builder
	fmt.Fprintf(&b, "Final result: %d repetitions:\n", p.maxCount)
	for _, v := range values {
		fmt.Fprintf(&b, " (%d) ", v)
	}
	return b.String()
}
