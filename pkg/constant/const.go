package constant

type Phase int32

const (
	// 等待开局
	PhaseWaiting Phase = iota
	// 发牌, 处理弱牌重发
	PhasePreparation
	// 报墩
	PhaseDeclaration
	// 出牌
	PhaseTurn
	// 结算
	PhaseScoring
	// 游戏结束
	PhaseGameOver
	// 本局异常中止
	PhaseAborted
)

var stringify = [...]string{
	PhaseWaiting:     "waiting",
	PhasePreparation: "preparation",
	PhaseDeclaration: "declaration",
	PhaseTurn:        "turn",
	PhaseScoring:     "scoring",
	PhaseGameOver:    "game_over",
	PhaseAborted:     "aborted",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(stringify) {
		return "unknown"
	}
	return stringify[p]
}

// Terminal reports whether no further game actions are accepted in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver
}

type RedealMode int

const (
	RedealSequential RedealMode = iota
	RedealSimultaneous
)

var redealModes = [...]string{
	RedealSequential:   "sequential",
	RedealSimultaneous: "simultaneous",
}

func (m RedealMode) String() string {
	if m < 0 || int(m) >= len(redealModes) {
		return "unknown"
	}
	return redealModes[m]
}

// ParseRedealMode maps a configuration string to a RedealMode, defaulting to sequential.
func ParseRedealMode(s string) RedealMode {
	for m, name := range redealModes {
		if name == s {
			return RedealMode(m)
		}
	}
	return RedealSequential
}

type RoomStatus int32

const (
	// 创建房间, 等待玩家
	RoomStatusCreated RoomStatus = iota
	// 游戏进行中
	RoomStatusPlaying
	// 游戏正常结束
	RoomStatusFinished
	// 房间被解散
	RoomStatusDestroy
)

var roomStatus = [...]string{
	RoomStatusCreated:  "created",
	RoomStatusPlaying:  "playing",
	RoomStatusFinished: "finished",
	RoomStatusDestroy:  "destroy",
}

func (s RoomStatus) String() string {
	if s < 0 || int(s) >= len(roomStatus) {
		return "unknown"
	}
	return roomStatus[s]
}
