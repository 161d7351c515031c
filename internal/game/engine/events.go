package engine

import (
	"github.com/lonng/liaptong/internal/game/piece"
)

// Event is an immutable notification produced by an accepted action. Route is
// the push route used by the transport layer.
type Event interface {
	Route() string
}

type PhaseChanged struct {
	Round int    `json:"round"`
	From  string `json:"from"`
	To    string `json:"to"`
}

type HandsDealt struct {
	Round      int              `json:"round"`
	Multiplier int              `json:"multiplier"`
	Redeals    int              `json:"redeals"`
	Starter    string           `json:"starter"`
	HandSizes  [piece.Seats]int `json:"handSizes"`
	Weak       []string         `json:"weak"`
}

type RedealRequested struct {
	Round   int      `json:"round"`
	Mode    string   `json:"mode"`
	Weak    []string `json:"weak"`
	Pending []string `json:"pending"`
}

type RedealDecided struct {
	Round    int      `json:"round"`
	PlayerID string   `json:"playerId"`
	Accept   bool     `json:"accept"`
	Received int      `json:"received"`
	Needed   int      `json:"needed"`
	Pending  []string `json:"pending"`
}

type RedealTriggered struct {
	Round      int      `json:"round"`
	Multiplier int      `json:"multiplier"`
	Redeals    int      `json:"redeals"`
	AcceptedBy []string `json:"acceptedBy"`
}

type Declared struct {
	Round    int    `json:"round"`
	PlayerID string `json:"playerId"`
	Value    int    `json:"value"`
	Total    int    `json:"total"`
	Next     string `json:"next"`
}

type Played struct {
	Round    int          `json:"round"`
	Turn     int          `json:"turn"`
	PlayerID string       `json:"playerId"`
	Pieces   piece.Pieces `json:"pieces"`
	Next     string       `json:"next"`
}

type TurnResolved struct {
	Round              int          `json:"round"`
	Turn               int          `json:"turn"`
	Winner             string       `json:"winner"`
	CapturedPilesDelta int          `json:"capturedPilesDelta"`
	PlayType           string       `json:"playType"`
	Plays              []PlayRecord `json:"plays"`
	Matching           []bool       `json:"matching"`
}

type RoundScored struct {
	RoundResult
}

type GameEnded struct {
	GameResult
}

type RoundAborted struct {
	Round  int    `json:"round"`
	Reason string `json:"reason"`
}

func (PhaseChanged) Route() string    { return "onPhaseChanged" }
func (HandsDealt) Route() string      { return "onHandsDealt" }
func (RedealRequested) Route() string { return "onRedealRequested" }
func (RedealDecided) Route() string   { return "onRedealDecided" }
func (RedealTriggered) Route() string { return "onRedealTriggered" }
func (Declared) Route() string        { return "onDeclared" }
func (Played) Route() string          { return "onPlayed" }
func (TurnResolved) Route() string    { return "onTurnResolved" }
func (RoundScored) Route() string     { return "onRoundScored" }
func (GameEnded) Route() string       { return "onGameEnded" }
func (RoundAborted) Route() string    { return "onRoundAborted" }
