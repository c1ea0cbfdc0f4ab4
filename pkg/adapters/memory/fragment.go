package memory

import "sync"

type listener struct {
	id int
	fn func(string)
}

// Fragment implements ports.Fragment in memory.
// Safe for concurrent use; listeners run synchronously, outside the lock.
type Fragment struct {
	mu        sync.Mutex
	value     string
	nextID    int
	listeners []listener
}

// NewFragment creates a fragment holding the initial value without notifying anyone.
func NewFragment(initial string) *Fragment {
	return &Fragment{value: initial}
}

// Get returns the current value.
func (f *Fragment) Get() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Set stores the value and notifies subscribers if it changed.
func (f *Fragment) Set(value string) {
	f.mu.Lock()
	if f.value == value {
		f.mu.Unlock()
		return
	}
	f.value = value
	listeners := make([]listener, len(f.listeners))
	copy(listeners, f.listeners)
	f.mu.Unlock()

	for _, l := range listeners {
		l.fn(value)
	}
}

// Subscribe registers a change listener.
func (f *Fragment) Subscribe(fn func(string)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.listeners = append(f.listeners, listener{id: id, fn: fn})

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, l := range f.listeners {
			if l.id == id {
				f.listeners = append(f.listeners[:i], f.listeners[i+1:]...)
				return
			}
		}
	}
}
