package room

import (
	"math/rand"
	"sync"
	"time"
)

const (
	roomNoLen = 6
	// 连续冲突次数上限
	maxAttempts = 1000
)

type Number string

// Generator hands out room numbers that are not in use according to exists.
type Generator struct {
	lock   sync.Mutex
	rnd    *rand.Rand
	exists func(no string) bool
}

var numbers = [...]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// NewGenerator creates a generator. A nil exists treats every number as free.
func NewGenerator(seed int64, exists func(no string) bool) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if exists == nil {
		exists = func(string) bool { return false }
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed)), exists: exists}
}

// Next returns a fresh number, or false when no free number was found.
func (g *Generator) Next() (Number, bool) {
	no := make([]byte, roomNoLen)
	g.lock.Lock()
	defer g.lock.Unlock()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		for i := 0; i < roomNoLen; i++ {
			no[i] = numbers[g.rnd.Intn(len(numbers))]
		}
		if !g.exists(string(no)) {
			return Number(no), true
		}
	}
	return "", false
}

func (n Number) String() string {
	return string(n)
}

// Valid reports whether n has the shape of a generated room number.
func (n Number) Valid() bool {
	if len(n) != roomNoLen {
		return false
	}
	for i := 0; i < len(n); i++ {
		if n[i] < '0' || n[i] > '9' {
			return false
		}
	}
	return true
}
