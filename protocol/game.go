package protocol

type DeclareRequest struct {
	Value int `json:"value"`
}

type PlayRequest struct {
	Indices []int `json:"indices"`
}

type RedealRequest struct {
	Accept bool `json:"accept"`
}

// Piece is the wire shape of a piece.
type Piece struct {
	Kind  string `json:"kind"`
	Color string `json:"color"`
	Value int    `json:"value"`
}

// Hand is pushed privately to each player after every deal.
type Hand struct {
	Round      int     `json:"round"`
	Multiplier int     `json:"multiplier"`
	Pieces     []Piece `json:"pieces"`
	Weak       bool    `json:"weak"`
}

// RedealCountdown is pushed when weak players are asked to decide.
type RedealCountdown struct {
	Pending []string `json:"pending"`
	Seconds int      `json:"seconds"`
}
