package rule

import (
	"testing"

	"github.com/lonng/liaptong/internal/game/piece"
)

func red(kinds ...piece.Kind) piece.Pieces {
	ps := make(piece.Pieces, len(kinds))
	for i, k := range kinds {
		ps[i] = piece.New(k, piece.Red)
	}
	return ps
}

func black(kinds ...piece.Kind) piece.Pieces {
	ps := make(piece.Pieces, len(kinds))
	for i, k := range kinds {
		ps[i] = piece.New(k, piece.Black)
	}
	return ps
}

const (
	S = piece.Soldier
	N = piece.Cannon
	H = piece.Horse
	R = piece.Chariot
	E = piece.Elephant
	A = piece.Advisor
	G = piece.General
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		pieces piece.Pieces
		typ    PlayType
		value  int
	}{
		{"empty", nil, Invalid, 0},
		{"single general", red(G), Single, 14},
		{"single black soldier", black(S), Single, 1},
		{"pair chariot", red(R, R), Pair, 8},
		{"pair black elephant", black(E, E), Pair, 9},
		{"pair mixed color", append(red(R), black(R)...), Invalid, 0},
		{"pair mixed kind", red(R, H), Invalid, 0},
		{"triple soldier", red(S, S, S), Triple, 2},
		{"triple black soldier", black(S, S, S), Triple, 1},
		{"triple non soldier", red(A, A, A), Invalid, 0},
		{"straight general", red(E, G, A), Straight, 14},
		{"straight chariot", black(N, R, H), Straight, 7},
		{"straight with soldier", red(S, N, H), Straight, 6},
		{"straight gap", red(G, A, R), Invalid, 0},
		{"straight mixed color", append(red(G, A), black(E)...), Invalid, 0},
		{"straight of four", red(G, A, E, R), Straight, 14},
		{"straight of six", black(A, E, R, H, N, S), Straight, 11},
		{"four soldiers", red(S, S, S, S), FourOfAKind, 2},
		{"extended straight", red(R, R, H, N), ExtendedStraight, 8},
		{"extended straight double low", black(R, H, N, N), ExtendedStraight, 7},
		{"extended straight double mixed color", append(red(R, H, N), black(N)...), Invalid, 0},
		{"four with two doubles", red(R, R, H, H), Invalid, 0},
		{"five soldiers", black(S, S, S, S, S), FiveOfAKind, 1},
		{"extended straight five", red(R, R, H, H, N), ExtendedStraight5, 8},
		{"extended straight five triple", red(R, R, R, H, N), Invalid, 0},
		{"double straight", red(R, R, H, H, N, N), DoubleStraight, 8},
		{"double straight gap", red(G, G, A, A, R, R), Invalid, 0},
		{"seven pieces", red(S, S, S, S, S, N, N), Invalid, 0},
	}

	for _, c := range tests {
		combo := Classify(c.pieces)
		if combo.Type != c.typ {
			t.Fatalf("%s: type, expect=%v, got=%v", c.name, c.typ, combo.Type)
		}
		if combo.Value != c.value {
			t.Fatalf("%s: value, expect=%d, got=%d", c.name, c.value, combo.Value)
		}
	}
}

func TestClassify_OrderIndependent(t *testing.T) {
	sets := []piece.Pieces{
		red(E, G, A),
		red(N, R, H, R),
		black(R, H, N, H, R),
		red(S, S, S),
		red(N, N, R, H, H, R),
	}

	for _, set := range sets {
		expect := Classify(set)
		reversed := make(piece.Pieces, len(set))
		for i := range set {
			reversed[len(set)-1-i] = set[i]
		}
		for _, variant := range []piece.Pieces{reversed, set.Sorted()} {
			got := Classify(variant)
			if got.Type != expect.Type || got.Value != expect.Value {
				t.Fatalf("classify %v, expect=%v/%d, got=%v/%d", variant, expect.Type, expect.Value, got.Type, got.Value)
			}
		}
	}
}

func TestClassify_InvalidPiece(t *testing.T) {
	forged := piece.Pieces{{Kind: G, Color: piece.Red, Value: 99}}
	if typ := ClassifyType(forged); typ != Invalid {
		t.Fatalf("forged piece should classify invalid, got=%v", typ)
	}
}
