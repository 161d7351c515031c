package engine

import (
	"github.com/lonng/liaptong/internal/game/piece"
)

type PlayerView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsBot      bool   `json:"isBot"`
	Seat       int    `json:"seat"`
	HandSize   int    `json:"handSize"`
	Declared   int    `json:"declared"`
	Captured   int    `json:"captured"`
	TotalScore int    `json:"totalScore"`
	ZeroStreak int    `json:"zeroStreak"`
}

// View is what one player is allowed to see of the game. Other players'
// hands are reduced to their sizes.
type View struct {
	GameID        string       `json:"gameId"`
	Phase         string       `json:"phase"`
	Round         int          `json:"round"`
	Multiplier    int          `json:"multiplier"`
	Redeals       int          `json:"redeals"`
	Seat          int          `json:"seat"`
	Hand          piece.Pieces `json:"hand"`
	Players       []PlayerView `json:"players"`
	Awaiting      []string     `json:"awaiting"`
	Turn          int          `json:"turn"`
	RequiredCount int          `json:"requiredCount"`
	Plays         []PlayRecord `json:"plays"`
	LastRound     *RoundResult `json:"lastRound,omitempty"`
	Result        *GameResult  `json:"result,omitempty"`
}

// View builds the view of the given player. An unknown id yields a spectator
// view with Seat -1 and no hand.
func (e *Engine) View(id string) View {
	v := View{
		GameID:     e.state.ID,
		Phase:      e.state.Phase.String(),
		Round:      e.state.RoundNumber,
		Multiplier: e.Multiplier(),
		Seat:       noSeat,
		Awaiting:   e.Awaiting(),
	}

	if seat, ok := e.seats[id]; ok {
		v.Seat = seat
		v.Hand = e.state.Players[seat].Hand.Clone()
	}

	for _, p := range e.state.Players {
		v.Players = append(v.Players, PlayerView{
			ID:         p.ID,
			Name:       p.Name,
			IsBot:      p.IsBot,
			Seat:       p.Seat,
			HandSize:   len(p.Hand),
			Declared:   p.Declared,
			Captured:   p.Captured,
			TotalScore: p.TotalScore,
			ZeroStreak: p.ZeroStreak,
		})
	}

	if r := e.state.Round; r != nil {
		v.Redeals = r.Redeals
		if t := r.Current; t != nil {
			v.Turn = t.Index
			v.RequiredCount = t.RequiredCount
			v.Plays = clonePlays(t.Plays)
		}
	}

	if res, ok := e.RoundEnd(); ok {
		v.LastRound = res
	}
	if res, ok := e.GameEnd(); ok {
		v.Result = res
	}
	return v
}
