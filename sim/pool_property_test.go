package sim

import (
	"testing"

	"pgregory.net/rapid"
)

// drawPoolConfig generates a valid (smallest, biggest, countToDraw).
func drawPoolConfig(t *rapid.T) (int, int, int) {
	smallest := rapid.IntRange(1, 100).Draw(t, "smallest")
	biggest := rapid.IntRange(smallest+1, smallest+60).Draw(t, "biggest")
	count := rapid.IntRange(1, biggest-smallest+1).Draw(t, "countToDraw")
	return smallest, biggest, count
}

func drawValues(t *rapid.T, p *Pool) []int {
	return rapid.SliceOfN(rapid.IntRange(p.Smallest(), p.Biggest()), 0, 200).Draw(t, "draws")
}

func TestPropertyFreshPool(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		smallest, biggest, count := drawPoolConfig(t)
		p, err := NewPool(smallest, biggest, count)
		if err != nil {
			t.Fatalf("valid config rejected: %v", err)
		}
		if p.Size() != biggest-smallest+1 {
			t.Fatalf("size %d, want %d", p.Size(), biggest-smallest+1)
		}
		if p.MaxCount() != 0 {
			t.Fatalf("fresh maxCount %d", p.MaxCount())
		}
		for _, b := range p.Balls() {
			if b.DrawCount() != 0 {
				t.Fatalf("fresh ball %d has count %d", b.Value(), b.DrawCount())
			}
		}
	})
}

func TestPropertyInvalidRangeRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		smallest := rapid.IntRange(-50, 50).Draw(t, "smallest")
		biggest := rapid.IntRange(-50, smallest).Draw(t, "biggest")
		if _, err := NewPool(smallest, biggest, 1); err == nil {
			t.Fatalf("Pool(%d, %d, 1) accepted", smallest, biggest)
		}
	})
}

func TestPropertyMaxCountTracksBalls(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		smallest, biggest, count := drawPoolConfig(t)
		p, _ := NewPool(smallest, biggest, count)
		for _, v := range drawValues(t, p) {
			if err := p.Draw(v); err != nil {
				t.Fatalf("draw %d: %v", v, err)
			}
			highest := 0
			for _, b := range p.Balls() {
				highest = max(highest, b.DrawCount())
			}
			if highest != p.MaxCount() {
				t.Fatalf("maxCount %d, highest ball count %d", p.MaxCount(), highest)
			}
		}
	})
}

func TestPropertyResetIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		smallest, biggest, count := drawPoolConfig(t)
		p, _ := NewPool(smallest, biggest, count)
		for _, v := range drawValues(t, p) {
			_ = p.Draw(v)
		}
		times := rapid.IntRange(1, 3).Draw(t, "resets")
		for range times {
			p.Reset()
		}
		if p.MaxCount() != 0 || p.TotalDraws() != 0 {
			t.Fatalf("after reset maxCount=%d totalDraws=%d", p.MaxCount(), p.TotalDraws())
		}
		if p.Size() != biggest-smallest+1 {
			t.Fatalf("reset changed size to %d", p.Size())
		}
		for i, b := range p.Balls() {
			if b.Value() != smallest+i || b.DrawCount() != 0 {
				t.Fatalf("after reset ball %d has value %d count %d", i, b.Value(), b.DrawCount())
			}
		}
	})
}

func TestPropertyTopBalls(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		smallest, biggest, count := drawPoolConfig(t)
		p, _ := NewPool(smallest, biggest, count)
		for _, v := range drawValues(t, p) {
			_ = p.Draw(v)
		}

		top := p.TopBalls()
		if len(top) != count {
			t.Fatalf("got %d top balls, want %d", len(top), count)
		}
		seen := map[int]bool{}
		for i, b := range top {
			if own, ok := p.Ball(b.Value()); !ok || own != b {
				t.Fatalf("top ball %d is not a member of the pool", b.Value())
			}
			if seen[b.Value()] {
				t.Fatalf("duplicate top ball %d", b.Value())
			}
			seen[b.Value()] = true
			if i > 0 && top[i-1].DrawCount() < b.DrawCount() {
				t.Fatalf("rank %d count %d above rank %d count %d", i-1, top[i-1].DrawCount(), i, b.DrawCount())
			}
		}
		// nothing left out beats the last ranked ball
		for _, b := range p.Balls() {
			if !seen[b.Value()] && b.DrawCount() > top[len(top)-1].DrawCount() {
				t.Fatalf("ball %d (count %d) left out of top", b.Value(), b.DrawCount())
			}
		}
	})
}
