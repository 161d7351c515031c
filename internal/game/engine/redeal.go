package engine

import (
	"github.com/lonng/liaptong/pkg/constant"
)

// 弱牌重发决策统计
type redealContext struct {
	mode      constant.RedealMode
	weak      []int        // 弱牌玩家座位, 按询问顺序
	decisions map[int]bool // 座位 -> 是否同意重发
	cursor    int          // 顺序模式下当前决策者
}

func newRedealContext(mode constant.RedealMode, weak []int) *redealContext {
	return &redealContext{
		mode:      mode,
		weak:      weak,
		decisions: map[int]bool{},
	}
}

func (r *redealContext) isWeak(seat int) bool {
	for _, s := range r.weak {
		if s == seat {
			return true
		}
	}
	return false
}

func (r *redealContext) decided(seat int) bool {
	_, ok := r.decisions[seat]
	return ok
}

// current returns the only seat allowed to decide in sequential mode.
func (r *redealContext) current() (int, bool) {
	if r.mode != constant.RedealSequential || r.complete() {
		return noSeat, false
	}
	return r.weak[r.cursor], true
}

func (r *redealContext) record(seat int, accept bool) {
	r.decisions[seat] = accept
	if r.mode == constant.RedealSequential && !accept {
		r.cursor++
	}
}

func (r *redealContext) received() int {
	return len(r.decisions)
}

func (r *redealContext) needed() int {
	return len(r.weak)
}

func (r *redealContext) accepted() []int {
	var seats []int
	for _, s := range r.weak {
		if r.decisions[s] {
			seats = append(seats, s)
		}
	}
	return seats
}

// complete reports whether the negotiation is over. Sequential mode stops at the
// first accept, simultaneous mode waits for every weak player.
func (r *redealContext) complete() bool {
	if r.mode == constant.RedealSequential && len(r.accepted()) > 0 {
		return true
	}
	return r.received() == r.needed()
}

// pending returns the weak seats still expected to decide.
func (r *redealContext) pending() []int {
	if r.complete() {
		return nil
	}
	if seat, ok := r.current(); ok {
		return []int{seat}
	}
	var seats []int
	for _, s := range r.weak {
		if !r.decided(s) {
			seats = append(seats, s)
		}
	}
	return seats
}
