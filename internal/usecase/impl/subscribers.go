package impl

import "sync"

// subscribers is a minimal subscription registry shared by the stores. The
// UI layer registers callbacks to re-render on state changes. Callbacks run
// outside the registry lock, on the goroutine that triggered the change.
type subscribers struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func (s *subscribers) add(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs == nil {
		s.subs = make(map[int]func())
	}
	id := s.next
	s.next++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *subscribers) notify() {
	s.mu.Lock()
	callbacks := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}
