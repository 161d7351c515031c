package engine

import (
	"github.com/lonng/liaptong/pkg/constant"
)

// Awaiting lists the players the engine waits on in the current phase.
func (e *Engine) Awaiting() []string {
	r := e.state.Round
	if r == nil {
		return nil
	}

	switch e.state.Phase {
	case constant.PhasePreparation:
		if r.redeal != nil {
			return e.state.ids(r.redeal.pending())
		}
	case constant.PhaseDeclaration:
		return e.state.ids([]int{r.declareOrder(len(r.Declared))})
	case constant.PhaseTurn:
		if r.Current != nil {
			return e.state.ids([]int{r.Current.next()})
		}
	}
	return nil
}

// RedealPending reports whether a weak-hand decision blocks the round.
func (e *Engine) RedealPending() bool {
	r := e.state.Round
	return e.state.Phase == constant.PhasePreparation && r != nil && r.redeal != nil
}

// PendingDeciders lists the weak players whose redeal decision is still awaited.
func (e *Engine) PendingDeciders() []string {
	if !e.RedealPending() {
		return nil
	}
	return e.state.ids(e.state.Round.redeal.pending())
}

// CurrentDecider returns the single allowed decider in sequential mode.
func (e *Engine) CurrentDecider() (string, bool) {
	if !e.RedealPending() {
		return "", false
	}
	seat, ok := e.state.Round.redeal.current()
	if !ok {
		return "", false
	}
	return e.state.Players[seat].ID, true
}

func (e *Engine) DecisionsReceived() int {
	if !e.RedealPending() {
		return 0
	}
	return e.state.Round.redeal.received()
}

func (e *Engine) DecisionsNeeded() int {
	if !e.RedealPending() {
		return 0
	}
	return e.state.Round.redeal.needed()
}

// RoundEnd returns the result of the most recently scored round.
func (e *Engine) RoundEnd() (*RoundResult, bool) {
	if e.state.lastRound == nil {
		return nil, false
	}
	res := *e.state.lastRound
	return &res, true
}

// GameEnd returns the final result once the game is over.
func (e *Engine) GameEnd() (*GameResult, bool) {
	if e.state.result == nil {
		return nil, false
	}
	res := *e.state.result
	res.Winners = append([]string(nil), res.Winners...)
	return &res, true
}

// Player returns a copy of the player record.
func (e *Engine) Player(id string) (Player, bool) {
	seat, ok := e.seats[id]
	if !ok {
		return Player{}, false
	}
	p := *e.state.Players[seat]
	p.Hand = p.Hand.Clone()
	p.Declarations = append([]int(nil), p.Declarations...)
	return p, true
}

// Players returns the seated player ids in seat order.
func (e *Engine) Players() []string {
	return e.state.ids([]int{0, 1, 2, 3})
}
