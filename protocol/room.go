package protocol

type LoginRequest struct {
	UID  int64  `json:"uid"`
	Name string `json:"name"`
}

type LoginResponse struct {
	Code int    `json:"code"`
	UID  int64  `json:"uid"`
	Name string `json:"name"`
	// 断线重连时所在的房间
	RoomNo string `json:"roomNo,omitempty"`
}

// RoomOptions 创建房间时可选的规则
type RoomOptions struct {
	RedealMode   string `json:"redealMode"`   // sequential | simultaneous, 空则使用服务器配置
	WinThreshold int    `json:"winThreshold"` // 0 使用服务器配置
}

type CreateRoomRequest struct {
	Options *RoomOptions `json:"options"`
}

type JoinRoomRequest struct {
	RoomNo string `json:"roomNo"`
}

type RoomResponse struct {
	Code   int        `json:"code"`
	RoomNo string     `json:"roomNo"`
	Seat   int        `json:"seat"`
	Seats  []SeatInfo `json:"seats"`
}

type SeatInfo struct {
	Seat    int    `json:"seat"`
	UID     int64  `json:"uid"`
	Name    string `json:"name"`
	IsBot   bool   `json:"isBot"`
	IsReady bool   `json:"isReady"`
	Offline bool   `json:"offline"`
}

type PlayerEnterRoom struct {
	Seats []SeatInfo `json:"seats"`
}

type PlayerExit struct {
	UID  int64 `json:"uid"`
	Seat int   `json:"seat"`
}

type PlayerReady struct {
	UID  int64 `json:"uid"`
	Seat int   `json:"seat"`
}

type PlayerOfflineStatus struct {
	UID     int64 `json:"uid"`
	Offline bool  `json:"offline"`
}

// RoomSummary is the lite room record returned by the query api.
type RoomSummary struct {
	RoomNo     string   `json:"roomNo"`
	Phase      string   `json:"phase"`
	Round      int      `json:"round"`
	Multiplier int      `json:"multiplier"`
	Players    []string `json:"players"`
	CreatedAt  int64    `json:"createdAt"`
}

type RoomListResponse struct {
	Code  int           `json:"code"`
	Data  []RoomSummary `json:"data"`
	Total int           `json:"total"`
}

// RoomRecord is a persisted room row.
type RoomRecord struct {
	Id           int64  `json:"id"`
	RoomNo       string `json:"roomNo"`
	Creator      int64  `json:"creator"`
	RedealMode   string `json:"redealMode"`
	WinThreshold int    `json:"winThreshold"`
	Status       string `json:"status"`
	Round        int    `json:"round"`
	Player0      int64  `json:"player0"`
	Player1      int64  `json:"player1"`
	Player2      int64  `json:"player2"`
	Player3      int64  `json:"player3"`
	PlayerName0  string `json:"playerName0"`
	PlayerName1  string `json:"playerName1"`
	PlayerName2  string `json:"playerName2"`
	PlayerName3  string `json:"playerName3"`
	ScoreChange0 int    `json:"scoreChange0"`
	ScoreChange1 int    `json:"scoreChange1"`
	ScoreChange2 int    `json:"scoreChange2"`
	ScoreChange3 int    `json:"scoreChange3"`
	Winners      string `json:"winners"`
	CreatedAt    int64  `json:"createdAt"`
	CreatedAtStr string `json:"createdAtStr"`
	FinishedAt   int64  `json:"finishedAt"`
}

type RoomRecordListResponse struct {
	Code  int          `json:"code"`
	Data  []RoomRecord `json:"data"`
	Total int          `json:"total"`
}

type RoomRecordResponse struct {
	Code int         `json:"code"`
	Data *RoomRecord `json:"data"`
}

type RoomViewResponse struct {
	Code int         `json:"code"`
	Data interface{} `json:"data"`
}
