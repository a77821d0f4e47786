// Package state holds the application's state containers. Each container
// exclusively owns one slice of state and its storage key, applies pure
// transition functions under a mutex, persists the result through the
// storage bridge, and broadcasts a snapshot to subscribers.
package state

import "sync"

// subscribers is a minimal observer registry. Notification happens outside
// the container lock, with a snapshot, so callbacks can call back into the
// container.
type subscribers[T any] struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(T)
}

// add registers fn and returns its cancel function.
func (s *subscribers[T]) add(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fns == nil {
		s.fns = make(map[int]func(T))
	}
	id := s.next
	s.next++
	s.fns[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.fns, id)
	}
}

func (s *subscribers[T]) notify(snapshot T) {
	s.mu.Lock()
	fns := make([]func(T), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
