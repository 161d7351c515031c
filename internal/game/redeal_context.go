package game

import (
	"time"

	"github.com/lonng/liaptong/pkg/constant"

	"github.com/lonng/nano/scheduler"
)

// 弱牌重发倒计时, 超时未决策的玩家视为不重发
type redealContext struct {
	room     *Room
	restTime int32            // 剩余时间
	timer    *scheduler.Timer // 倒计时定时器
	gen      int              // 每次开始或停止倒计时递增, 过期定时器据此忽略
}

func newRedealContext(room *Room) *redealContext {
	return &redealContext{room: room}
}

// stop is called with the room lock held. Pending ticks of the stopped timer
// are ignored.
func (d *redealContext) stop() {
	d.gen++
	if d.timer != nil {
		d.room.logger.Debug("关闭重发倒计时定时器")
		d.timer.Stop()
		d.timer = nil
	}
}

// start is called with the room lock held.
func (d *redealContext) start(restTime int32) {
	d.stop()
	d.room.logger.Debugf("开始重发倒计时: %d秒", restTime)

	gen := d.gen
	d.restTime = restTime
	d.timer = scheduler.NewTimer(time.Second, func() {
		r := d.room
		r.mu.Lock()
		defer r.mu.Unlock()
		d.tick(gen)
	})
}

// tick counts down one second and declines for the pending players once the
// rest time reaches zero. Called with the room lock held.
func (d *redealContext) tick(gen int) {
	if d.gen != gen {
		return
	}
	r := d.room
	if r.status == constant.RoomStatusDestroy {
		r.logger.Error("重发倒计时过程中房间已解散")
		d.stop()
		return
	}

	d.restTime--
	rest := d.restTime
	// 每10秒记录日志
	if rest%10 == 0 {
		r.logger.Debugf("重发倒计时: %d", rest)
	}
	if rest <= 0 {
		d.stop()
		r.redealTimeout()
	}
}
