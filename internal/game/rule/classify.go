package rule

import (
	"sort"

	"github.com/lonng/liaptong/internal/game/piece"
)

type PlayType int

const (
	Invalid PlayType = iota
	Single
	Pair
	Triple
	Straight
	FourOfAKind
	ExtendedStraight
	FiveOfAKind
	ExtendedStraight5
	DoubleStraight
)

const (
	MinPlaySize = 1
	MaxPlaySize = 6
)

var playTypeNames = [...]string{
	Invalid:           "INVALID",
	Single:            "SINGLE",
	Pair:              "PAIR",
	Triple:            "TRIPLE",
	Straight:          "STRAIGHT",
	FourOfAKind:       "FOUR_OF_A_KIND",
	ExtendedStraight:  "EXTENDED_STRAIGHT",
	FiveOfAKind:       "FIVE_OF_A_KIND",
	ExtendedStraight5: "EXTENDED_STRAIGHT_5",
	DoubleStraight:    "DOUBLE_STRAIGHT",
}

func (t PlayType) String() string {
	if t < 0 || int(t) >= len(playTypeNames) {
		return playTypeNames[Invalid]
	}
	return playTypeNames[t]
}

// Combination is a classified set of pieces.
type Combination struct {
	Type   PlayType
	Pieces piece.Pieces // sorted by descending value
	Value  int          // comparison value for candidates of the same type
}

func (c Combination) Valid() bool {
	return c.Type != Invalid
}

// Classify determines the play type of 1..6 pieces. It never fails: sets that
// match no rule classify as Invalid. The result does not depend on input order.
func Classify(pieces piece.Pieces) Combination {
	invalid := Combination{Type: Invalid}

	n := len(pieces)
	if n < MinPlaySize || n > MaxPlaySize {
		return invalid
	}
	for _, p := range pieces {
		if !p.Valid() {
			return invalid
		}
	}

	sorted := pieces.Sorted()
	if n == 1 {
		return Combination{Type: Single, Pieces: sorted, Value: sorted[0].Value}
	}

	// 多张组合必须同色
	if !sorted.SameColor() {
		return invalid
	}

	counts := sorted.KindCounts()
	if len(counts) == 1 {
		return sameKind(sorted, counts)
	}

	ranks := distinctRanks(counts)
	if !consecutive(ranks) {
		return invalid
	}

	// 所有兵种不同: 顺子
	if len(ranks) == n && n >= 3 {
		return Combination{Type: Straight, Pieces: sorted, Value: sorted.MaxValue()}
	}

	// 三个相邻兵种, 按张数区分扩展顺子
	if len(ranks) != 3 {
		return invalid
	}
	shape := multiplicities(counts)
	switch {
	case n == 4 && equal(shape, []int{1, 1, 2}):
		return Combination{Type: ExtendedStraight, Pieces: sorted, Value: sorted.MaxValue()}
	case n == 5 && equal(shape, []int{1, 2, 2}):
		return Combination{Type: ExtendedStraight5, Pieces: sorted, Value: sorted.MaxValue()}
	case n == 6 && equal(shape, []int{2, 2, 2}):
		return Combination{Type: DoubleStraight, Pieces: sorted, Value: sorted.MaxValue()}
	}
	return invalid
}

// ClassifyType is Classify without the combination details.
func ClassifyType(pieces piece.Pieces) PlayType {
	return Classify(pieces).Type
}

func sameKind(sorted piece.Pieces, counts map[piece.Kind]int) Combination {
	n := len(sorted)
	value := sorted[0].Value
	if n == 2 {
		return Combination{Type: Pair, Pieces: sorted, Value: value}
	}

	// 三张及以上相同只允许最低等级的兵
	if _, ok := counts[piece.MinKind]; !ok {
		return Combination{Type: Invalid}
	}
	switch n {
	case 3:
		return Combination{Type: Triple, Pieces: sorted, Value: value}
	case 4:
		return Combination{Type: FourOfAKind, Pieces: sorted, Value: value}
	case 5:
		return Combination{Type: FiveOfAKind, Pieces: sorted, Value: value}
	}
	return Combination{Type: Invalid}
}

func distinctRanks(counts map[piece.Kind]int) []int {
	ranks := make([]int, 0, len(counts))
	for k := range counts {
		ranks = append(ranks, k.Rank())
	}
	sort.Ints(ranks)
	return ranks
}

func consecutive(ranks []int) bool {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false
		}
	}
	return true
}

func multiplicities(counts map[piece.Kind]int) []int {
	shape := make([]int, 0, len(counts))
	for _, c := range counts {
		shape = append(shape, c)
	}
	sort.Ints(shape)
	return shape
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
