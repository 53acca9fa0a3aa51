package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Stats summarises the draw-count distribution of one pool.
type Stats struct {
	TotalDraws int
	MinCount   int
	MaxCount   int
	Mean       float64
	StdDev     float64 // sample standard deviation
	// ChiSquare is Pearson's statistic of the counts against a uniform
	// expectation; 0 before any draw.
	ChiSquare float64
}

// Stats computes the current count distribution.
func (p *Pool) Stats() Stats {
	counts := make([]float64, len(p.ordered))
	s := Stats{TotalDraws: p.totalDraws, MaxCount: p.maxCount, MinCount: p.maxCount}
	for i, b := range p.ordered {
		counts[i] = float64(b.drawCount)
		s.MinCount = min(s.MinCount, b.drawCount)
	}
	s.Mean, s.StdDev = stat.MeanStdDev(counts, nil)

	if p.totalDraws > 0 {
		expected := make([]float64, len(counts))
		for i := range expected {
			expected[i] = float64(p.totalDraws) / float64(len(counts))
		}
		s.ChiSquare = stat.ChiSquare(counts, expected)
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("draws=%d min=%d max=%d mean=%.2f stddev=%.2f chi2=%.2f",
		s.TotalDraws, s.MinCount, s.MaxCount, s.Mean, s.StdDev, s.ChiSquare)
}
