package booking

import "sync"

// carLockStore hands out one mutex per car so the availability check and the
// subsequent insert run as a unit against concurrent requests for the same
// car. Requests for different cars do not contend.
type carLockStore struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// get returns the mutex for a car, creating one on first use.
func (s *carLockStore) get(carID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	lock, exists := s.locks[carID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[carID] = lock
	}
	return lock
}
