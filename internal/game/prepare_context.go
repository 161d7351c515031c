package game

// 开局前的准备状态
type prepareContext struct {
	readyStatus map[int]bool // 座位 -> 是否已经ready
}

func newPrepareContext() *prepareContext {
	return &prepareContext{
		readyStatus: map[int]bool{},
	}
}

func (p *prepareContext) isReady(seat int) bool {
	return p.readyStatus[seat]
}

func (p *prepareContext) ready(seat int) {
	p.readyStatus[seat] = true
}

func (p *prepareContext) cancel(seat int) {
	delete(p.readyStatus, seat)
}

func (p *prepareContext) readyCount() int {
	return len(p.readyStatus)
}

func (p *prepareContext) reset() {
	p.readyStatus = map[int]bool{}
}
