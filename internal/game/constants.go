package game

import "time"

const (
	kCurPlayer = "player"
)

const (
	fieldRoom   = "room"
	fieldPlayer = "player"
)

// 推送路由, 引擎事件使用事件自身的路由
const (
	routeHand            = "onHand"
	routePlayerEnter     = "onPlayerEnter"
	routePlayerExit      = "onPlayerExit"
	routePlayerReady     = "onPlayerReady"
	routeOfflineStatus   = "onPlayerOfflineStatus"
	routeRedealCountdown = "onRedealCountdown"
	routeRoomDestroyed   = "onRoomDestroyed"
	routeSync            = "onSync"
)

const (
	defaultRedealTimeout = 30 * time.Second
	minHeartbeat         = 5 * time.Second
)

// 单次驱动机器人的最大动作数
const maxBotSteps = 512
