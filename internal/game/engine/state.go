package engine

import (
	"github.com/lonng/liaptong/internal/game/piece"
	"github.com/lonng/liaptong/pkg/constant"
)

const (
	// 尚未报墩
	undeclared = -1
	noSeat     = -1
)

// Seat describes who sits at a table position when the game is created.
type Seat struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	IsBot bool   `json:"isBot"`
}

// Player is the single record shape for humans and bots alike.
type Player struct {
	ID    string
	Name  string
	IsBot bool
	Seat  int

	// 每局重置
	Hand     piece.Pieces
	Declared int
	Captured int

	// 跨局保留
	TotalScore   int
	ZeroStreak   int
	Declarations []int
}

func (p *Player) declared() bool {
	return p.Declared != undeclared
}

func (p *Player) resetRound() {
	p.Hand = nil
	p.Declared = undeclared
	p.Captured = 0
}

// PlayRecord is one player's contribution to a turn.
type PlayRecord struct {
	PlayerID string       `json:"playerId"`
	Seat     int          `json:"seat"`
	Pieces   piece.Pieces `json:"pieces"`
	Turn     int          `json:"turn"`
}

func clonePlays(plays []PlayRecord) []PlayRecord {
	if plays == nil {
		return nil
	}
	out := make([]PlayRecord, len(plays))
	for i, p := range plays {
		p.Pieces = p.Pieces.Clone()
		out[i] = p
	}
	return out
}

type TurnState struct {
	Index         int
	Starter       int
	RequiredCount int
	Plays         []PlayRecord
	Winner        int
}

func newTurn(index, starter int) *TurnState {
	return &TurnState{Index: index, Starter: starter, Winner: noSeat}
}

// next returns the seat expected to play.
func (t *TurnState) next() int {
	return (t.Starter + len(t.Plays)) % piece.Seats
}

func (t *TurnState) complete() bool {
	return len(t.Plays) == piece.Seats
}

type RoundState struct {
	Number     int
	Multiplier int
	Redeals    int
	Starter    int
	Declared   []int // 已报墩的座位, 按报墩顺序
	Turns      []*TurnState
	Current    *TurnState

	redeal *redealContext

	// 开局时的连续报0和报墩记录, 重开本局时恢复
	streaks [piece.Seats]int
	decls   [piece.Seats]int
}

func newRound(number int, players [piece.Seats]*Player) *RoundState {
	r := &RoundState{Number: number, Multiplier: 1, Starter: noSeat}
	for i, p := range players {
		r.streaks[i] = p.ZeroStreak
		r.decls[i] = len(p.Declarations)
	}
	return r
}

// rollback undoes the declarations made in this round.
func (r *RoundState) rollback(players [piece.Seats]*Player) {
	for i, p := range players {
		p.ZeroStreak = r.streaks[i]
		if len(p.Declarations) > r.decls[i] {
			p.Declarations = p.Declarations[:r.decls[i]]
		}
	}
}

// declareOrder returns the seat expected to declare next.
func (r *RoundState) declareOrder(i int) int {
	return (r.Starter + i) % piece.Seats
}

func (r *RoundState) totalDeclared(players [piece.Seats]*Player) int {
	total := 0
	for _, seat := range r.Declared {
		total += players[seat].Declared
	}
	return total
}

// clear drops everything dealt or declared in this round except the multiplier
// and redeal count.
func (r *RoundState) clear() {
	r.Starter = noSeat
	r.Declared = nil
	r.Turns = nil
	r.Current = nil
	r.redeal = nil
}

type GameState struct {
	ID           string
	Players      [piece.Seats]*Player
	RoundNumber  int
	WinThreshold int
	Phase        constant.Phase
	Round        *RoundState

	lastRound *RoundResult
	result    *GameResult
}

func (g *GameState) totals() [piece.Seats]int {
	var totals [piece.Seats]int
	for i, p := range g.Players {
		totals[i] = p.TotalScore
	}
	return totals
}

func (g *GameState) ids(seats []int) []string {
	ids := make([]string, len(seats))
	for i, s := range seats {
		ids[i] = g.Players[s].ID
	}
	return ids
}

// RoundResult is the scoring outcome of one round.
type RoundResult struct {
	Round      int                 `json:"round"`
	Multiplier int                 `json:"multiplier"`
	Players    [piece.Seats]string `json:"players"`
	Declared   [piece.Seats]int    `json:"declared"`
	Captured   [piece.Seats]int    `json:"captured"`
	Deltas     [piece.Seats]int    `json:"deltas"`
	Totals     [piece.Seats]int    `json:"totals"`
	Hits       [piece.Seats]bool   `json:"hits"`
}

type GameResult struct {
	Rounds  int                 `json:"rounds"`
	Winners []string            `json:"winners"`
	Players [piece.Seats]string `json:"players"`
	Totals  [piece.Seats]int    `json:"totals"`
}
