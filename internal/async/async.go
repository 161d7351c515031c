package async

import (
	"runtime/debug"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	logger  = log.WithField("component", "async")
	pending sync.WaitGroup
)

func pcall(fn func()) {
	defer func() {
		if err := recover(); err != nil {
			logger.Errorf("异步任务异常: Error=%v\n%s", err, debug.Stack())
		}
	}()

	fn()
}

// Run executes fn on its own goroutine. A panic in fn is logged, never
// propagated.
func Run(fn func()) {
	pending.Add(1)
	go func() {
		defer pending.Done()
		pcall(fn)
	}()
}

// Wait blocks until every task started by Run has returned, or until the
// timeout expires. It reports whether all tasks finished.
func Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		logger.Warnf("等待异步任务超时: %v", timeout)
		return false
	}
}
