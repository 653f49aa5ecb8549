package trailerOffsets

import "sync"

// Exhausted marks a trailer key that will never be offered again.
const Exhausted = -1

// Offsets maps a trailer key to the index of the next candidate to try.
// Keys at their initial zero offset are never stored: an entry appears on
// the first rejection and disappears only by never being created, so the
// map holds exactly the keys that carry information. Shared by all chats.
type Offsets struct {
	offsets map[string]int
	max     int
	mu      sync.Mutex
}

// NewOffsets caps every key at max candidates before it is exhausted.
func NewOffsets(max int) *Offsets {
	return &Offsets{
		offsets: make(map[string]int),
		max:     max,
	}
}

// Next returns the candidate index to try for the key, 0 for unseen keys,
// Exhausted for keys past the cap.
func (o *Offsets) Next(key string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.offsets[key]
}

// Advance moves the key to the following candidate on explicit user
// rejection. Reaching the cap flips the key to Exhausted; advancing an
// exhausted key is a no-op.
func (o *Offsets) Advance(key string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	current := o.offsets[key]
	if current == Exhausted {
		return
	}
	if current+1 >= o.max {
		o.offsets[key] = Exhausted
		return
	}
	o.offsets[key] = current + 1
}

// Len reports how many keys carry a non-initial offset.
func (o *Offsets) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.offsets)
}
