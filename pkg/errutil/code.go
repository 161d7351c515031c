package errutil

const (
	codeBase = 1000
)

const (
	Unknown = codeBase + iota
	ltIllegalParameter
	ltInvalidParameter
	ltServerInternal
	ltDbOperation
	ltPermissionDenied
	ltPlayerNotFound
	ltRoomNotFound
	ltRoomFull
	ltAlreadyInRoom
	ltHistoryNotFound
	ltIllegalPhase
)

// 游戏规则相关
const (
	ltIllegalDeclaration = 2000 + iota
	ltIllegalPlay
	ltOutOfTurn
	ltInvalidRedealState
	ltInternalInvariant
)

var errs = map[error]int{
	ErrIllegalParameter:   ltIllegalParameter,
	ErrInvalidParameter:   ltInvalidParameter,
	ErrServerInternal:     ltServerInternal,
	ErrDBOperation:        ltDbOperation,
	ErrPermissionDenied:   ltPermissionDenied,
	ErrPlayerNotFound:     ltPlayerNotFound,
	ErrRoomNotFound:       ltRoomNotFound,
	ErrRoomFull:           ltRoomFull,
	ErrAlreadyInRoom:      ltAlreadyInRoom,
	ErrHistoryNotFound:    ltHistoryNotFound,
	ErrIllegalPhase:       ltIllegalPhase,
	ErrIllegalDeclaration: ltIllegalDeclaration,
	ErrIllegalPlay:        ltIllegalPlay,
	ErrOutOfTurn:          ltOutOfTurn,
	ErrInvalidRedealState: ltInvalidRedealState,
	ErrInternalInvariant:  ltInternalInvariant,
}

// Recoverable reports whether the error is a rejected user action that leaves
// game state untouched.
func Recoverable(err error) bool {
	switch Code(err) {
	case ltIllegalDeclaration, ltIllegalPlay, ltOutOfTurn, ltInvalidRedealState, ltIllegalPhase:
		return true
	}
	return false
}
