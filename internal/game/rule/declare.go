package rule

import (
	"github.com/lonng/liaptong/pkg/errutil"
)

const (
	// 连续报0的上限, 第三次连续报0被拒绝
	MaxZeroStreak = 2

	ReasonThirdZero = "no third consecutive zero"
)

// ValidateDeclaration checks a pile declaration against the running total of
// the earlier declarers and the declarer's consecutive zero streak. Only the
// first failing rule is reported.
func ValidateDeclaration(candidate int, isLast bool, totalSoFar, zeroStreak int, opts Options) error {
	if candidate < 0 || candidate > opts.PileTotal {
		return errutil.Rejectf(errutil.ErrIllegalDeclaration, "declaration must be between 0 and %d", opts.PileTotal)
	}

	if isLast && totalSoFar+candidate == opts.PileTotal {
		return errutil.Rejectf(errutil.ErrIllegalDeclaration, "total cannot equal %d", opts.PileTotal)
	}

	if candidate == 0 && zeroStreak >= MaxZeroStreak {
		return errutil.Reject(errutil.ErrIllegalDeclaration, ReasonThirdZero)
	}
	return nil
}

// NextZeroStreak returns the streak after an accepted declaration.
func NextZeroStreak(candidate, zeroStreak int) int {
	if candidate == 0 {
		return zeroStreak + 1
	}
	return 0
}
