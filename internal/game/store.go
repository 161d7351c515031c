package game

import (
	"sort"
	"sync"

	"github.com/lonng/liaptong/pkg/errutil"
	"github.com/lonng/liaptong/pkg/room"
)

// roomStore is the keyed registry of live rooms owned by one RoomManager.
type roomStore struct {
	mu    sync.RWMutex
	rooms map[room.Number]*Room
}

func newRoomStore() *roomStore {
	return &roomStore{rooms: map[room.Number]*Room{}}
}

func (s *roomStore) add(r *Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[r.roomNo]; ok {
		return errutil.Rejectf(errutil.ErrIllegalParameter, "room %s already exists", r.roomNo)
	}
	s.rooms[r.roomNo] = r
	return nil
}

func (s *roomStore) get(no room.Number) (*Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[no]
	if !ok {
		return nil, errutil.Rejectf(errutil.ErrRoomNotFound, "room %s not found", no)
	}
	return r, nil
}

func (s *roomStore) remove(no room.Number) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rooms, no)
}

func (s *roomStore) exists(no string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.rooms[room.Number(no)]
	return ok
}

func (s *roomStore) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.rooms)
}

// all returns the live rooms ordered by number.
func (s *roomStore) all() []*Room {
	s.mu.RLock()
	list := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		list = append(list, r)
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].roomNo < list[j].roomNo })
	return list
}
