package rule

import (
	"github.com/lonng/liaptong/internal/game/piece"
	"github.com/lonng/liaptong/pkg/errutil"
)

// Outcome of a resolved turn. Winner indexes the plays in play order:
// 0 is the starter, i+1 is followers[i].
type Outcome struct {
	Winner   int
	Type     PlayType
	Value    int
	Matching []bool // per play in play order, starter always true
}

// Matching reports, in play order starting with the starter, which plays
// classify to the starter's play type. It has no side effects and is safe for
// presentation code that needs reveal or highlight sets.
func Matching(starter piece.Pieces, followers []piece.Pieces) []bool {
	lead := ClassifyType(starter)
	matching := make([]bool, len(followers)+1)
	matching[0] = lead != Invalid
	for i, f := range followers {
		matching[i+1] = lead != Invalid && len(f) == len(starter) && ClassifyType(f) == lead
	}
	return matching
}

// Resolve picks the winning play of a turn. Only plays of the starter's type
// compete; equal values go to the earlier play, so the starter wins every tie
// and wins by default when no follower matches.
func Resolve(starter piece.Pieces, followers []piece.Pieces) (Outcome, error) {
	lead := Classify(starter)
	if !lead.Valid() {
		return Outcome{}, errutil.Rejectf(errutil.ErrIllegalPlay, "starter play %v does not form a combination", starter)
	}
	for i, f := range followers {
		if len(f) != len(starter) {
			return Outcome{}, errutil.Rejectf(errutil.ErrIllegalPlay,
				"follower %d played %d pieces, expect %d", i, len(f), len(starter))
		}
	}

	out := Outcome{
		Winner:   0,
		Type:     lead.Type,
		Value:    lead.Value,
		Matching: make([]bool, len(followers)+1),
	}
	out.Matching[0] = true

	for i, f := range followers {
		c := Classify(f)
		if c.Type != lead.Type {
			continue
		}
		out.Matching[i+1] = true
		if c.Value > out.Value {
			out.Winner = i + 1
			out.Value = c.Value
		}
	}
	return out, nil
}
