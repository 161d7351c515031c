package rule

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Hit reports whether a player captured exactly what they declared.
func Hit(declared, captured int) bool {
	return declared == captured
}

// Score converts a declared and captured pile count into the round delta.
func Score(declared, captured, multiplier int, opts Options) int {
	switch {
	case declared == 0 && captured == 0:
		return opts.PerfectAvoidBonus * multiplier
	case declared == captured:
		return (declared + opts.HitBonus) * multiplier
	default:
		return -abs(declared-captured) * multiplier
	}
}

// Winners returns the seats tied at the highest total once any total reaches
// the threshold, or nil when the game continues.
func Winners(totals []int, threshold int) []int {
	if len(totals) == 0 {
		return nil
	}

	max, reached := totals[0], false
	for _, t := range totals {
		if t >= threshold {
			reached = true
		}
		if t > max {
			max = t
		}
	}
	if !reached {
		return nil
	}

	var winners []int
	for seat, t := range totals {
		if t == max {
			winners = append(winners, seat)
		}
	}
	return winners
}
