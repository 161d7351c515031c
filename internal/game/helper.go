package game

import (
	"github.com/lonng/liaptong/internal/game/piece"
	"github.com/lonng/liaptong/internal/game/rule"
	"github.com/lonng/liaptong/pkg/constant"
	"github.com/lonng/liaptong/pkg/errutil"
	"github.com/lonng/liaptong/protocol"

	"github.com/lonng/nano/session"
)

// 房间可选的胜利分数
var winThresholds = map[int]bool{30: true, 50: true, 100: true}

// verifyOptions applies the client's room options on top of the server rules.
func verifyOptions(base rule.Options, opts *protocol.RoomOptions) (rule.Options, error) {
	if opts == nil {
		return base, nil
	}

	if opts.RedealMode != "" {
		mode := constant.ParseRedealMode(opts.RedealMode)
		if mode.String() != opts.RedealMode {
			return base, errutil.Rejectf(errutil.ErrInvalidParameter, "unknown redeal mode %q", opts.RedealMode)
		}
		base.RedealMode = mode
	}

	if opts.WinThreshold != 0 {
		if !winThresholds[opts.WinThreshold] {
			return base, errutil.Rejectf(errutil.ErrInvalidParameter, "unsupported win threshold %d", opts.WinThreshold)
		}
		base.WinThreshold = opts.WinThreshold
	}

	return base, base.Validate()
}

func toProtocolPieces(ps piece.Pieces) []protocol.Piece {
	out := make([]protocol.Piece, 0, len(ps))
	for _, p := range ps {
		out = append(out, protocol.Piece{Kind: p.Kind.String(), Color: p.Color.String(), Value: p.Value})
	}
	return out
}

func playerWithSession(s *session.Session) (*Player, error) {
	p, ok := s.Value(kCurPlayer).(*Player)
	if !ok {
		return nil, errutil.ErrPlayerNotFound
	}
	return p, nil
}

func errorResponse(s *session.Session, err error) error {
	logger.Warnf("请求被拒绝: UID=%d, Error=%v", s.UID(), err)
	return s.Response(&protocol.ErrorResponse{
		Code:  errutil.Code(err),
		Error: errutil.Reason(err),
	})
}
