package db

const (
	defaultMaxConns = 10
	// 玩家房间列表最多返回条数
	roomListLimit = 15
)
