package game

import (
	"github.com/lonng/liaptong/internal/game/engine"
	"github.com/lonng/liaptong/internal/game/piece"
	"github.com/lonng/liaptong/internal/game/rule"
)

// 机器人策略, 只依赖玩家视图, 与真实玩家看到的信息一致

// botRedeal decides whether a bot accepts a redeal of its weak hand.
func botRedeal(v engine.View) bool {
	return v.Redeals == 0
}

// botDeclare estimates the piles a hand can win and moves to the nearest
// legal value.
func botDeclare(v engine.View, opts rule.Options) int {
	estimate := 0
	for _, p := range v.Hand {
		if p.Value > opts.WeakThreshold {
			estimate++
		}
	}

	total, undeclared, streak := 0, 0, 0
	for _, p := range v.Players {
		if p.Declared < 0 {
			undeclared++
			continue
		}
		total += p.Declared
	}
	if v.Seat >= 0 && v.Seat < len(v.Players) {
		streak = v.Players[v.Seat].ZeroStreak
	}
	isLast := undeclared == 1

	// 由近及远尝试, 同距离时优先多报
	for d := 0; d <= opts.PileTotal; d++ {
		for _, c := range []int{estimate + d, estimate - d} {
			if rule.ValidateDeclaration(c, isLast, total, streak, opts) == nil {
				return c
			}
		}
	}
	return estimate
}

// botPlay picks hand indices for the bot's play in the current turn.
func botPlay(v engine.View) []int {
	n := len(v.Hand)
	if n == 0 {
		return nil
	}

	// 首家出最大的单张
	if len(v.Plays) == 0 {
		return []int{0}
	}

	count := v.RequiredCount
	if count > n {
		count = n
	}

	lead := rule.Classify(v.Plays[0].Pieces)
	best := lead.Value
	for _, play := range v.Plays[1:] {
		if c := rule.Classify(play.Pieces); c.Type == lead.Type && c.Value > best {
			best = c.Value
		}
	}

	// 能压过当前最大的牌就出, 否则垫最小的牌
	if idx := beatingIndices(v.Hand, count, lead.Type, best); idx != nil {
		return idx
	}
	idx := make([]int, count)
	for i := range idx {
		idx[i] = n - count + i
	}
	return idx
}

// beatingIndices looks for count consecutive pieces of the sorted hand that
// classify to typ with a value above best.
func beatingIndices(hand piece.Pieces, count int, typ rule.PlayType, best int) []int {
	for start := 0; start+count <= len(hand); start++ {
		c := rule.Classify(hand[start : start+count])
		if c.Type != typ || c.Value <= best {
			continue
		}
		idx := make([]int, count)
		for i := range idx {
			idx[i] = start + i
		}
		return idx
	}
	return nil
}
