package protocol

type HistoryLite struct {
	Id           int64  `json:"id"`
	RoomNo       string `json:"roomNo"`
	Round        int    `json:"round"`
	Multiplier   int    `json:"multiplier"`
	BeginAt      int64  `json:"beginAt"`
	BeginAtStr   string `json:"beginAtStr"`
	EndAt        int64  `json:"endAt"`
	PlayerName0  string `json:"playerName0"`
	PlayerName1  string `json:"playerName1"`
	PlayerName2  string `json:"playerName2"`
	PlayerName3  string `json:"playerName3"`
	ScoreChange0 int    `json:"scoreChange0"`
	ScoreChange1 int    `json:"scoreChange1"`
	ScoreChange2 int    `json:"scoreChange2"`
	ScoreChange3 int    `json:"scoreChange3"`
}

type History struct {
	HistoryLite
	Snapshot string `json:"snapshot"`
}

type HistoryLiteListResponse struct {
	Code  int           `json:"code"`
	Data  []HistoryLite `json:"data"`
	Total int64         `json:"total"`
}

type HistoryByIDResponse struct {
	Code int      `json:"code"`
	Data *History `json:"data"`
}
