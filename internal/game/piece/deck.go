package piece

import (
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	Seats        = 4
	HandSize     = 8
	StandardSize = Seats * HandSize
)

// 每种颜色的标准配置
var standardCounts = map[Kind]int{
	General:  1,
	Advisor:  2,
	Elephant: 2,
	Chariot:  2,
	Horse:    2,
	Cannon:   2,
	Soldier:  5,
}

// Standard returns the 32-piece set, ordered by descending value.
func Standard() Pieces {
	set := make(Pieces, 0, StandardSize)
	for k := MaxKind; k >= MinKind; k-- {
		for _, c := range []Color{Red, Black} {
			for i := 0; i < standardCounts[k]; i++ {
				set = append(set, New(k, c))
			}
		}
	}
	return set.Sorted()
}

// Dealer produces the four hands of a round.
type Dealer interface {
	Deal() ([Seats]Pieces, error)
}

// Split divides a multiset evenly into four hands in dealing order.
func Split(set Pieces) ([Seats]Pieces, error) {
	var hands [Seats]Pieces
	if len(set) == 0 || len(set)%Seats != 0 {
		return hands, errors.Errorf("cannot split %d pieces between %d seats", len(set), Seats)
	}
	size := len(set) / Seats
	for i := range hands {
		hands[i] = set[i*size : (i+1)*size].Clone()
	}
	return hands, nil
}

type ShuffleDealer struct {
	mu  sync.Mutex
	set Pieces
	rnd *rand.Rand
}

// NewShuffleDealer deals shuffled copies of set. A nil set means the standard set.
func NewShuffleDealer(set Pieces, seed int64) *ShuffleDealer {
	if set == nil {
		set = Standard()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &ShuffleDealer{set: set.Clone(), rnd: rand.New(rand.NewSource(seed))}
}

func (d *ShuffleDealer) Deal() ([Seats]Pieces, error) {
	d.mu.Lock()
	deck := d.set.Clone()
	d.rnd.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	d.mu.Unlock()

	return Split(deck)
}

// FixedDealer replays prepared deals in order, repeating the last one when exhausted.
type FixedDealer struct {
	deals [][Seats]Pieces
	next  int
}

func NewFixedDealer(deals ...[Seats]Pieces) *FixedDealer {
	return &FixedDealer{deals: deals}
}

func (d *FixedDealer) Deal() ([Seats]Pieces, error) {
	var hands [Seats]Pieces
	if len(d.deals) == 0 {
		return hands, errors.New("no prepared deal")
	}
	i := d.next
	if i >= len(d.deals) {
		i = len(d.deals) - 1
	} else {
		d.next++
	}
	for seat, h := range d.deals[i] {
		hands[seat] = h.Clone()
	}
	return hands, nil
}
