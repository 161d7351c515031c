package rule

import (
	"testing"

	"github.com/lonng/liaptong/internal/game/piece"
	"github.com/lonng/liaptong/pkg/errutil"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		starter   piece.Pieces
		followers []piece.Pieces
		winner    int
		matching  []bool
	}{
		{
			name:      "higher pair wins, invalid follower forfeits",
			starter:   red(R, R),
			followers: []piece.Pieces{red(G, S), black(E, E), black(S, S)},
			winner:    2,
			matching:  []bool{true, false, true, true},
		},
		{
			name:      "highest single wins",
			starter:   black(S),
			followers: []piece.Pieces{red(G), red(A), red(E)},
			winner:    1,
			matching:  []bool{true, true, true, true},
		},
		{
			name:      "no follower matches, starter wins by default",
			starter:   black(S, S, S),
			followers: []piece.Pieces{red(G, A, E), red(S, N, H), black(G, A, S)},
			winner:    0,
			matching:  []bool{true, false, false, false},
		},
		{
			name:      "tie goes to the starter",
			starter:   red(R, H, N),
			followers: []piece.Pieces{red(H, N, R), black(R, H, N), black(S, S, S)},
			winner:    0,
			matching:  []bool{true, true, true, false},
		},
		{
			name:      "tie between followers goes to earlier follower",
			starter:   black(N),
			followers: []piece.Pieces{red(H), red(H), black(S)},
			winner:    1,
			matching:  []bool{true, true, true, true},
		},
		{
			name:      "straights compare highest piece",
			starter:   black(R, H, N),
			followers: []piece.Pieces{red(E, R, H), black(G, A, E), red(S, N, H)},
			winner:    2,
			matching:  []bool{true, true, true, true},
		},
	}

	for _, c := range tests {
		out, err := Resolve(c.starter, c.followers)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if out.Winner != c.winner {
			t.Fatalf("%s: winner, expect=%d, got=%d", c.name, c.winner, out.Winner)
		}
		for i := range c.matching {
			if out.Matching[i] != c.matching[i] {
				t.Fatalf("%s: matching, expect=%v, got=%v", c.name, c.matching, out.Matching)
			}
		}

		m := Matching(c.starter, c.followers)
		for i := range c.matching {
			if m[i] != c.matching[i] {
				t.Fatalf("%s: Matching query, expect=%v, got=%v", c.name, c.matching, m)
			}
		}
	}
}

func TestResolve_Preconditions(t *testing.T) {
	if _, err := Resolve(red(R, H), []piece.Pieces{red(S, S)}); !errutil.Is(err, errutil.ErrIllegalPlay) {
		t.Fatalf("invalid starter should be an illegal play, got=%v", err)
	}
	if _, err := Resolve(red(R, R), []piece.Pieces{red(S)}); !errutil.Is(err, errutil.ErrIllegalPlay) {
		t.Fatalf("size mismatch should be an illegal play, got=%v", err)
	}
}
