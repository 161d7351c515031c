package db

import (
	"github.com/lonng/liaptong/db/model"
	"github.com/lonng/liaptong/pkg/constant"
	"github.com/lonng/liaptong/pkg/errutil"
)

func InsertRoom(r *model.Room) error {
	if r == nil {
		return errutil.ErrInvalidParameter
	}
	if !Enabled() {
		return disabled()
	}
	if _, err := database.Insert(r); err != nil {
		logger.Errorf("写入房间失败: %v", err)
		return errutil.ErrDBOperation
	}
	return nil
}

// UpdateRoom saves the progress of a room: seats, scores, round and status.
func UpdateRoom(r *model.Room) error {
	if r == nil || r.Id == 0 {
		return errutil.ErrInvalidParameter
	}
	if !Enabled() {
		return disabled()
	}
	_, err := database.ID(r.Id).Cols(
		"status", "round", "game_id",
		"player0", "player1", "player2", "player3",
		"player_name0", "player_name1", "player_name2", "player_name3",
		"score_change0", "score_change1", "score_change2", "score_change3",
		"winners", "finished_at",
	).Update(r)
	if err != nil {
		logger.Errorf("更新房间失败: %v", err)
		return errutil.ErrDBOperation
	}
	return nil
}

func QueryRoom(id int64) (*model.Room, error) {
	if !Enabled() {
		return nil, disabled()
	}
	r := &model.Room{Id: id}
	has, err := database.Get(r)
	if err != nil {
		return nil, errutil.ErrDBOperation
	}
	if !has {
		return nil, errutil.ErrRoomNotFound
	}
	return r, nil
}

// RoomNumberExists reports whether an unfinished room uses the number.
func RoomNumberExists(no string) bool {
	if !Enabled() {
		return false
	}
	has, err := database.Where("room_no=? AND status IN (?, ?)",
		no, int(constant.RoomStatusCreated), int(constant.RoomStatusPlaying)).Exist(&model.Room{})
	if err != nil {
		return true
	}
	return has
}

// RoomList returns the latest rooms the player has sat in.
func RoomList(player int64) ([]model.Room, int, error) {
	if !Enabled() {
		return nil, 0, disabled()
	}
	result := make([]model.Room, 0)
	err := database.Where("(player0 = ? OR player1 = ? OR player2 = ? OR player3 = ?) AND round > 0",
		player, player, player, player).Desc("created_at").Limit(roomListLimit, 0).Find(&result)
	if err != nil {
		return nil, 0, errutil.ErrDBOperation
	}
	return result, len(result), nil
}
