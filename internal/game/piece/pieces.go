package piece

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type Pieces []Piece

func (ps Pieces) Len() int {
	return len(ps)
}

func (ps Pieces) Swap(i, j int) {
	ps[i], ps[j] = ps[j], ps[i]
}

// 点数降序, 同点数按花色
func (ps Pieces) Less(i, j int) bool {
	if ps[i].Value != ps[j].Value {
		return ps[i].Value > ps[j].Value
	}
	return ps[i].Color < ps[j].Color
}

func (ps Pieces) String() string {
	res := make([]string, len(ps))
	for i := range ps {
		res[i] = ps[i].String()
	}
	return strings.Join(res, " ")
}

// Sort orders the set in place by descending value.
func (ps Pieces) Sort() {
	sort.Stable(ps)
}

// Sorted returns a copy ordered by descending value.
func (ps Pieces) Sorted() Pieces {
	out := ps.Clone()
	sort.Stable(out)
	return out
}

func (ps Pieces) Clone() Pieces {
	if ps == nil {
		return nil
	}
	out := make(Pieces, len(ps))
	copy(out, ps)
	return out
}

func (ps Pieces) Values() []int {
	vs := make([]int, len(ps))
	for i, p := range ps {
		vs[i] = p.Value
	}
	return vs
}

// MaxValue returns the highest value in the set, 0 for an empty set.
func (ps Pieces) MaxValue() int {
	max := 0
	for _, p := range ps {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}

// Pick returns the pieces at the given indices, in index order, and the remaining
// pieces. Indices must be distinct and in range.
func (ps Pieces) Pick(indices []int) (picked Pieces, rest Pieces, err error) {
	if len(indices) == 0 {
		return nil, ps, errors.New("no piece selected")
	}

	chosen := make(map[int]bool, len(indices))
	picked = make(Pieces, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(ps) {
			return nil, ps, errors.Errorf("piece index %d out of range", i)
		}
		if chosen[i] {
			return nil, ps, errors.Errorf("duplicate piece index %d", i)
		}
		chosen[i] = true
		picked = append(picked, ps[i])
	}

	rest = make(Pieces, 0, len(ps)-len(picked))
	for i, p := range ps {
		if !chosen[i] {
			rest = append(rest, p)
		}
	}
	return picked, rest, nil
}

// SameColor reports whether every piece shares one color.
func (ps Pieces) SameColor() bool {
	for i := 1; i < len(ps); i++ {
		if ps[i].Color != ps[0].Color {
			return false
		}
	}
	return len(ps) > 0
}

// KindCounts counts pieces per kind.
func (ps Pieces) KindCounts() map[Kind]int {
	counts := make(map[Kind]int, len(ps))
	for _, p := range ps {
		counts[p.Kind]++
	}
	return counts
}
