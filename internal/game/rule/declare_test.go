package rule

import (
	"testing"

	"github.com/lonng/liaptong/pkg/errutil"
)

func TestValidateDeclaration(t *testing.T) {
	opts := DefaultOptions()
	tests := []struct {
		candidate  int
		isLast     bool
		total      int
		zeroStreak int
		reason     string
	}{
		{2, false, 0, 0, ""},
		{8, false, 0, 0, ""},
		{9, false, 0, 0, "declaration must be between 0 and 8"},
		{-1, false, 0, 0, "declaration must be between 0 and 8"},
		{1, true, 7, 0, "total cannot equal 8"},
		{2, true, 7, 0, ""},
		{0, true, 7, 0, ""},
		{0, false, 0, 1, ""},
		{0, false, 0, 2, ReasonThirdZero},
		{0, true, 8, 2, "total cannot equal 8"},
		{3, false, 0, 2, ""},
	}

	for _, c := range tests {
		err := ValidateDeclaration(c.candidate, c.isLast, c.total, c.zeroStreak, opts)
		if c.reason == "" {
			if err != nil {
				t.Fatalf("declare %d (last=%t total=%d streak=%d) should pass: %v",
					c.candidate, c.isLast, c.total, c.zeroStreak, err)
			}
			continue
		}
		if !errutil.Is(err, errutil.ErrIllegalDeclaration) {
			t.Fatalf("declare %d should be an illegal declaration, got=%v", c.candidate, err)
		}
		if r := errutil.Reason(err); r != c.reason {
			t.Fatalf("declare %d reason, expect=%q, got=%q", c.candidate, c.reason, r)
		}
	}
}

// Every legal 4-player sequence ends with a total other than 8.
func TestValidateDeclaration_TotalNeverEight(t *testing.T) {
	opts := DefaultOptions()
	for a := 0; a <= 8; a++ {
		for b := 0; b <= 8; b++ {
			for c := 0; c <= 8; c++ {
				for d := 0; d <= 8; d++ {
					seq := []int{a, b, c, d}
					total, ok := 0, true
					for i, v := range seq {
						if err := ValidateDeclaration(v, i == 3, total, 0, opts); err != nil {
							ok = false
							break
						}
						total += v
					}
					if ok && total == opts.PileTotal {
						t.Fatalf("sequence %v accepted with total %d", seq, total)
					}
				}
			}
		}
	}
}

func TestNextZeroStreak(t *testing.T) {
	streak := 0
	history := []int{0, 0, 3, 0, 0}
	expect := []int{1, 2, 0, 1, 2}
	for i, v := range history {
		streak = NextZeroStreak(v, streak)
		if streak != expect[i] {
			t.Fatalf("step %d, expect=%d, got=%d", i, expect[i], streak)
		}
	}
}
