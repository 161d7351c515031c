package db

import (
	"github.com/lonng/liaptong/db/model"
	"github.com/lonng/liaptong/pkg/errutil"
)

func InsertHistory(h *model.History) error {
	if h == nil {
		return errutil.ErrInvalidParameter
	}
	if !Enabled() {
		return disabled()
	}
	if _, err := database.Insert(h); err != nil {
		logger.Errorf("写入牌局记录失败: %v", err)
		return errutil.ErrDBOperation
	}
	return nil
}

func QueryHistory(id int64) (*model.History, error) {
	if !Enabled() {
		return nil, disabled()
	}
	h := &model.History{Id: id}
	has, err := database.Get(h)
	if err != nil {
		logger.Error(err)
		return nil, errutil.ErrDBOperation
	}
	if !has {
		return nil, errutil.ErrHistoryNotFound
	}
	return h, nil
}

func QueryHistoriesByRoomID(roomID int64) ([]model.History, int, error) {
	if !Enabled() {
		return nil, 0, disabled()
	}
	result := make([]model.History, 0)
	err := database.Where("room_id=?", roomID).Asc("round").Find(&result)
	if err != nil {
		logger.Error(err)
		return nil, 0, errutil.ErrDBOperation
	}
	return result, len(result), nil
}
