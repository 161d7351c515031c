package piece

import (
	"encoding/json"
	"testing"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		kind  Kind
		color Color
		value int
	}{
		{General, Red, 14},
		{General, Black, 13},
		{Advisor, Red, 12},
		{Elephant, Black, 9},
		{Chariot, Red, 8},
		{Horse, Black, 5},
		{Cannon, Red, 4},
		{Soldier, Red, 2},
		{Soldier, Black, 1},
		{Kind(0), Red, 0},
		{General, Color(5), 0},
	}

	for _, c := range tests {
		if v := ValueOf(c.kind, c.color); v != c.value {
			t.Fatalf("ValueOf(%v, %v), expect=%d, got=%d", c.kind, c.color, c.value, v)
		}
	}
}

func TestStandard(t *testing.T) {
	set := Standard()
	if len(set) != StandardSize {
		t.Fatalf("standard size, expect=%d, got=%d", StandardSize, len(set))
	}

	counts := map[Piece]int{}
	for _, p := range set {
		if !p.Valid() {
			t.Fatalf("invalid piece in standard set: %v", p)
		}
		counts[p]++
	}
	if counts[New(Soldier, Red)] != 5 || counts[New(General, Black)] != 1 {
		t.Fatalf("unexpected standard counts: %v", counts)
	}
	if set[0] != New(General, Red) || set[len(set)-1] != New(Soldier, Black) {
		t.Fatalf("standard set should be ordered by descending value: %v", set)
	}
}

func TestIsWeak(t *testing.T) {
	weak := Pieces{New(Elephant, Black), New(Chariot, Red), New(Soldier, Red)}
	if !IsWeak(weak, DefaultWeakThreshold) {
		t.Fatalf("hand should be weak: %v", weak)
	}

	strong := append(weak.Clone(), New(Elephant, Red))
	if IsWeak(strong, DefaultWeakThreshold) {
		t.Fatalf("hand should not be weak: %v", strong)
	}

	if !IsWeak(nil, DefaultWeakThreshold) {
		t.Fatal("empty hand has no piece above threshold")
	}
}

func TestPieces_Pick(t *testing.T) {
	hand := Pieces{New(General, Red), New(Horse, Black), New(Soldier, Red), New(Cannon, Black)}

	picked, rest, err := hand.Pick([]int{2, 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(picked) != 2 || picked[0] != New(Soldier, Red) || picked[1] != New(General, Red) {
		t.Fatalf("picked, got=%v", picked)
	}
	if len(rest) != 2 || rest[0] != New(Horse, Black) || rest[1] != New(Cannon, Black) {
		t.Fatalf("rest, got=%v", rest)
	}
	if len(hand) != 4 {
		t.Fatal("Pick must not mutate the source hand")
	}

	for _, bad := range [][]int{nil, {4}, {-1}, {1, 1}} {
		if _, _, err := hand.Pick(bad); err == nil {
			t.Fatalf("indices %v should be rejected", bad)
		}
	}
}

func TestHighestHolder(t *testing.T) {
	hands, err := Split(Standard())
	if err != nil {
		t.Fatal(err)
	}
	// standard set is sorted, Red General lands on seat 0
	if seat := HighestHolder(hands); seat != 0 {
		t.Fatalf("highest holder, expect=0, got=%d", seat)
	}

	hands[0], hands[2] = hands[2], hands[0]
	if seat := HighestHolder(hands); seat != 2 {
		t.Fatalf("highest holder, expect=2, got=%d", seat)
	}
}

func TestShuffleDealer(t *testing.T) {
	d := NewShuffleDealer(nil, 42)
	hands, err := d.Deal()
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	for _, h := range hands {
		if len(h) != HandSize {
			t.Fatalf("hand size, expect=%d, got=%d", HandSize, len(h))
		}
		for _, p := range h {
			total += p.Value
		}
	}

	expect := 0
	for _, p := range Standard() {
		expect += p.Value
	}
	if total != expect {
		t.Fatalf("dealt value sum, expect=%d, got=%d", expect, total)
	}
}

func TestFixedDealer(t *testing.T) {
	first, _ := Split(Standard())
	second := first
	second[0], second[1] = first[1], first[0]

	d := NewFixedDealer(first, second)
	for i, expect := range []int{0, 1, 1} {
		hands, err := d.Deal()
		if err != nil {
			t.Fatal(err)
		}
		if seat := HighestHolder(hands); seat != expect {
			t.Fatalf("deal %d, expect highest holder=%d, got=%d", i, expect, seat)
		}
	}

	if _, err := NewFixedDealer().Deal(); err == nil {
		t.Fatal("empty fixed dealer should fail")
	}
}

func TestPiece_JSON(t *testing.T) {
	p := New(Chariot, Black)
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"kind":"CHARIOT","color":"BLACK","value":7}` {
		t.Fatalf("json, got=%s", data)
	}

	var back Piece
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != p {
		t.Fatalf("decoded piece, expect=%v, got=%v", p, back)
	}
}
