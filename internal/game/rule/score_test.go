package rule

import (
	"reflect"
	"testing"
)

func TestScore(t *testing.T) {
	opts := DefaultOptions()
	tests := []struct {
		declared, captured, multiplier int
		delta                          int
	}{
		{0, 0, 1, 3},
		{0, 0, 2, 6},
		{3, 3, 1, 8},
		{3, 3, 3, 24},
		{1, 1, 1, 6},
		{2, 4, 1, -2},
		{4, 2, 2, -4},
		{0, 3, 1, -3},
		{5, 0, 2, -10},
	}

	for _, c := range tests {
		if d := Score(c.declared, c.captured, c.multiplier, opts); d != c.delta {
			t.Fatalf("Score(%d, %d, %d), expect=%d, got=%d", c.declared, c.captured, c.multiplier, c.delta, d)
		}
	}
}

func TestScore_Properties(t *testing.T) {
	opts := DefaultOptions()
	for m := 1; m <= 4; m++ {
		if Score(0, 0, m, opts) != 3*m {
			t.Fatalf("perfect avoid with multiplier %d", m)
		}
		for d := 0; d <= 8; d++ {
			for c := 0; c <= 8; c++ {
				got := Score(d, c, m, opts)
				switch {
				case d == 0 && c == 0:
				case d == c:
					if got != (d+opts.HitBonus)*m {
						t.Fatalf("hit %d with multiplier %d, got=%d", d, m, got)
					}
				default:
					if got != -abs(d-c)*m {
						t.Fatalf("miss %d/%d with multiplier %d, got=%d", d, c, m, got)
					}
				}
			}
		}
	}
}

func TestWinners(t *testing.T) {
	tests := []struct {
		totals  []int
		winners []int
	}{
		{[]int{10, 20, 30, 49}, nil},
		{[]int{10, 50, 30, 49}, []int{1}},
		{[]int{55, 20, 55, 49}, []int{0, 2}},
		{[]int{51, 60, -3, 49}, []int{1}},
		{nil, nil},
	}

	for _, c := range tests {
		if w := Winners(c.totals, 50); !reflect.DeepEqual(w, c.winners) {
			t.Fatalf("Winners(%v), expect=%v, got=%v", c.totals, c.winners, w)
		}
	}
}
