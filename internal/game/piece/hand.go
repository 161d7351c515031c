package piece

// DefaultWeakThreshold 弱牌阈值: 手牌中没有任何一张大于该点数
const DefaultWeakThreshold = 9

// IsWeak reports whether no piece in the hand is worth more than threshold.
func IsWeak(hand Pieces, threshold int) bool {
	for _, p := range hand {
		if p.Value > threshold {
			return false
		}
	}
	return true
}

// HighestHolder returns the seat holding the single highest valued piece
// across all hands, or -1 when every hand is empty. Earlier seats win ties.
func HighestHolder(hands [Seats]Pieces) int {
	seat, best := -1, 0
	for i, h := range hands {
		if v := h.MaxValue(); v > best {
			seat, best = i, v
		}
	}
	return seat
}
