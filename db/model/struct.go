package model

type Room struct {
	Id           int64
	RoomNo       string `xorm:"not null index VARCHAR(32) default ''"`
	GameId       string `xorm:"not null VARCHAR(64) default ''"`
	Creator      int64  `xorm:"not null index BIGINT(20) default 0"`
	RedealMode   string `xorm:"not null VARCHAR(16) default ''"`
	WinThreshold int    `xorm:"not null INT(11) default 0"`
	Status       int    `xorm:"not null index INT(11) default 0"`
	Round        int    `xorm:"not null INT(11) default 0"`
	Player0      int64  `xorm:"not null index BIGINT(20) default 0"`
	Player1      int64  `xorm:"not null index BIGINT(20) default 0"`
	Player2      int64  `xorm:"not null index BIGINT(20) default 0"`
	Player3      int64  `xorm:"not null index BIGINT(20) default 0"`
	PlayerName0  string `xorm:"not null VARCHAR(255) default ''"`
	PlayerName1  string `xorm:"not null VARCHAR(255) default ''"`
	PlayerName2  string `xorm:"not null VARCHAR(255) default ''"`
	PlayerName3  string `xorm:"not null VARCHAR(255) default ''"`
	ScoreChange0 int    `xorm:"not null INT(11) default 0"`
	ScoreChange1 int    `xorm:"not null INT(11) default 0"`
	ScoreChange2 int    `xorm:"not null INT(11) default 0"`
	ScoreChange3 int    `xorm:"not null INT(11) default 0"`
	Winners      string `xorm:"not null VARCHAR(255) default ''"`
	CreatedAt    int64  `xorm:"not null BIGINT(20) default 0"`
	FinishedAt   int64  `xorm:"not null BIGINT(20) default 0"`
}

type History struct {
	Id           int64
	RoomId       int64  `xorm:"not null index BIGINT(20) default 0"`
	RoomNo       string `xorm:"not null VARCHAR(32) default ''"`
	GameId       string `xorm:"not null index VARCHAR(64) default ''"`
	Round        int    `xorm:"not null INT(11) default 0"`
	Multiplier   int    `xorm:"not null INT(11) default 1"`
	BeginAt      int64  `xorm:"not null BIGINT(20) default 0"`
	EndAt        int64  `xorm:"not null BIGINT(20) default 0"`
	PlayerName0  string `xorm:"not null VARCHAR(255) default ''"`
	PlayerName1  string `xorm:"not null VARCHAR(255) default ''"`
	PlayerName2  string `xorm:"not null VARCHAR(255) default ''"`
	PlayerName3  string `xorm:"not null VARCHAR(255) default ''"`
	ScoreChange0 int    `xorm:"not null INT(11) default 0"`
	ScoreChange1 int    `xorm:"not null INT(11) default 0"`
	ScoreChange2 int    `xorm:"not null INT(11) default 0"`
	ScoreChange3 int    `xorm:"not null INT(11) default 0"`
	Snapshot     string `xorm:"TEXT"`
}
