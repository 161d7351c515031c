package rule

import (
	"github.com/lonng/liaptong/internal/game/piece"
	"github.com/lonng/liaptong/pkg/constant"
	"github.com/pkg/errors"
)

// Options 牌局规则配置
type Options struct {
	WeakThreshold     int                 // 弱牌阈值
	PerfectAvoidBonus int                 // 报0且未收墩的奖励
	HitBonus          int                 // 报中奖励
	WinThreshold      int                 // 达到该分数游戏结束
	PileTotal         int                 // 所有玩家报墩总和不能等于该值
	MaxRedeals        int                 // 每局最多重发次数, 0表示不允许重发
	RedealMode        constant.RedealMode // 重发决策模式
}

func DefaultOptions() Options {
	return Options{
		WeakThreshold:     piece.DefaultWeakThreshold,
		PerfectAvoidBonus: 3,
		HitBonus:          5,
		WinThreshold:      50,
		PileTotal:         piece.HandSize,
		MaxRedeals:        3,
		RedealMode:        constant.RedealSequential,
	}
}

func (o Options) Validate() error {
	switch {
	case o.WinThreshold <= 0:
		return errors.Errorf("win threshold must be positive, got %d", o.WinThreshold)
	case o.PileTotal <= 0:
		return errors.Errorf("pile total must be positive, got %d", o.PileTotal)
	case o.MaxRedeals < 0:
		return errors.Errorf("max redeals cannot be negative, got %d", o.MaxRedeals)
	case o.RedealMode != constant.RedealSequential && o.RedealMode != constant.RedealSimultaneous:
		return errors.Errorf("unknown redeal mode %d", o.RedealMode)
	}
	return nil
}
