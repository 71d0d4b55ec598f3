package lifecycle

import "sync"

// CustomerLocker serializes loyalty-counter updates per customer phone so two
// sessions completing concurrently for the same customer cannot lose an
// increment.
type CustomerLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCustomerLocker() *CustomerLocker {
	return &CustomerLocker{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the given phone and returns its unlock func.
func (l *CustomerLocker) Lock(phone string) func() {
	l.mu.Lock()
	m, ok := l.locks[phone]
	if !ok {
		m = &sync.Mutex{}
		l.locks[phone] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
