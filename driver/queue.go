package driver

// KeyQueue is a bounded buffer of pending keys. Push may be called from an
// input goroutine while the frame goroutine drains it.
type KeyQueue struct {
	keys chan Key
}

// NewKeyQueue creates a queue holding at most size pending keys.
func NewKeyQueue(size int) *KeyQueue {
	return &KeyQueue{keys: make(chan Key, size)}
}

// Push enqueues key, dropping it when the queue is full. It reports whether
// the key was accepted.
func (q *KeyQueue) Push(key Key) bool {
	select {
	case q.keys <- key:
		return true
	default:
		return false
	}
}

// Drain returns every pending key in arrival order without blocking.
func (q *KeyQueue) Drain() []Key {
	var keys []Key
	for {
		select {
		case key := <-q.keys:
			keys = append(keys, key)
		default:
			return keys
		}
	}
}
