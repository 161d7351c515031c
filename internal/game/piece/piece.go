package piece

import "fmt"

type Kind int

// 按等级从低到高
const (
	Soldier Kind = iota + 1
	Cannon
	Horse
	Chariot
	Elephant
	Advisor
	General
)

const (
	MinKind = Soldier
	MaxKind = General
)

var kindNames = [...]string{
	Soldier:  "SOLDIER",
	Cannon:   "CANNON",
	Horse:    "HORSE",
	Chariot:  "CHARIOT",
	Elephant: "ELEPHANT",
	Advisor:  "ADVISOR",
	General:  "GENERAL",
}

func (k Kind) Valid() bool {
	return k >= MinKind && k <= MaxKind
}

// Rank is the ordinal position of the kind, 1 for Soldier up to 7 for General.
func (k Kind) Rank() int {
	return int(k)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("KIND(%d)", int(k))
	}
	return kindNames[k]
}

type Color int

const (
	Red Color = iota
	Black
)

var colorNames = [...]string{
	Red:   "RED",
	Black: "BLACK",
}

func (c Color) Valid() bool {
	return c == Red || c == Black
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("COLOR(%d)", int(c))
	}
	return colorNames[c]
}

// Piece is an immutable game piece. Build it with New so Value stays
// consistent with the catalog.
type Piece struct {
	Kind  Kind  `json:"kind"`
	Color Color `json:"color"`
	Value int   `json:"value"`
}

// 点数表, Red General 14 ... Black Soldier 1
var catalog = map[Kind][2]int{
	General:  {14, 13},
	Advisor:  {12, 11},
	Elephant: {10, 9},
	Chariot:  {8, 7},
	Horse:    {6, 5},
	Cannon:   {4, 3},
	Soldier:  {2, 1},
}

// ValueOf returns the catalog value of a kind and color, or 0 for an unknown combination.
func ValueOf(k Kind, c Color) int {
	v, ok := catalog[k]
	if !ok || !c.Valid() {
		return 0
	}
	return v[c]
}

func New(k Kind, c Color) Piece {
	return Piece{Kind: k, Color: c, Value: ValueOf(k, c)}
}

func (p Piece) Valid() bool {
	return p.Kind.Valid() && p.Color.Valid() && p.Value == ValueOf(p.Kind, p.Color)
}

// Same reports whether two pieces share kind and color.
func (p Piece) Same(o Piece) bool {
	return p.Kind == o.Kind && p.Color == o.Color
}

func (p Piece) String() string {
	return fmt.Sprintf("%s_%s(%d)", p.Kind, p.Color, p.Value)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name != "" && name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown piece kind %q", text)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	for i, name := range colorNames {
		if name == string(text) {
			*c = Color(i)
			return nil
		}
	}
	return fmt.Errorf("unknown piece color %q", text)
}
