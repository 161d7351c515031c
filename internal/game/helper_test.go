package game

import (
	"sync"
	"testing"

	"github.com/lonng/liaptong/internal/game/piece"
	"github.com/lonng/liaptong/internal/game/rule"
	"github.com/lonng/liaptong/pkg/room"

	"github.com/lonng/nano/session"
)

func red(k piece.Kind) piece.Piece   { return piece.New(k, piece.Red) }
func black(k piece.Kind) piece.Piece { return piece.New(k, piece.Black) }

const (
	S = piece.Soldier
	N = piece.Cannon
	H = piece.Horse
	R = piece.Chariot
	E = piece.Elephant
	A = piece.Advisor
	G = piece.General
)

// Seat 0 holds the red general, nobody is weak.
func dealA() [piece.Seats]piece.Pieces {
	return [piece.Seats]piece.Pieces{
		{red(G), red(R), red(R), red(S), red(S), red(S), black(N), black(S)},
		{black(G), red(A), red(H), black(H), red(N), black(S), black(S), black(S)},
		{red(A), black(E), black(E), black(R), black(R), red(S), red(S), black(S)},
		{black(A), black(A), red(E), red(E), red(H), red(N), black(H), black(N)},
	}
}

// Seat 3 holds nothing above 9.
func dealWeak() [piece.Seats]piece.Pieces {
	return [piece.Seats]piece.Pieces{
		{red(G), red(A), red(N), black(N), red(S), red(S), black(S), black(S)},
		{black(G), red(A), red(E), red(N), black(N), red(S), black(S), black(S)},
		{black(A), black(A), red(E), red(H), black(H), red(S), red(S), black(S)},
		{black(E), black(E), red(R), red(R), black(R), black(R), red(H), black(H)},
	}
}

// recorder stands in for the nano group.
type recorder struct {
	mu     sync.Mutex
	routes []string
	closed bool
}

func (r *recorder) Add(*session.Session) error   { return nil }
func (r *recorder) Leave(*session.Session) error { return nil }

func (r *recorder) Broadcast(route string, v interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
	return nil
}

func (r *recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *recorder) count(route string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rt := range r.routes {
		if rt == route {
			n++
		}
	}
	return n
}

func newTestRoom(t *testing.T, opts rule.Options, deals ...[piece.Seats]piece.Pieces) (*Room, *recorder) {
	t.Helper()
	rec := &recorder{}
	r := newRoom(room.Number("123456"), 1, roomOptions{
		rules:  opts,
		dealer: piece.NewFixedDealer(deals...),
		group:  rec,
	})
	return r, rec
}
