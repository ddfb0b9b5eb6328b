package repository

import (
	"sync"

	"smart_hub/internal/models"
)

// DefaultHistoryCapacity is the number of readings kept for graphs.
const DefaultHistoryCapacity = 100

// RingHistory is a fixed-capacity FIFO of readings; the oldest is dropped when full.
type RingHistory struct {
	mu       sync.RWMutex
	buf      []models.SensorReading
	capacity int
	head     int // next write position
	count    int
}

var _ HistoryBuffer = (*RingHistory)(nil)

func NewRingHistory(capacity int) *RingHistory {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &RingHistory{
		buf:      make([]models.SensorReading, capacity),
		capacity: capacity,
	}
}

func (r *RingHistory) Append(reading models.SensorReading) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// when full, head already points at the oldest entry
	r.buf[r.head] = reading
	r.head = (r.head + 1) % r.capacity
	if r.count < r.capacity {
		r.count++
	}
}

func (r *RingHistory) Latest() (models.SensorReading, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.count == 0 {
		return models.SensorReading{}, false
	}
	return r.buf[(r.head-1+r.capacity)%r.capacity], true
}

// LastN returns up to n of the newest readings, oldest first.
func (r *RingHistory) LastN(n int) []models.SensorReading {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n > r.count {
		n = r.count
	}
	if n <= 0 {
		return []models.SensorReading{}
	}
	out := make([]models.SensorReading, n)
	start := (r.head - n + r.capacity) % r.capacity
	for i := 0; i < n; i++ {
		out[i] = r.buf[(start+i)%r.capacity]
	}
	return out
}

func (r *RingHistory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

func (r *RingHistory) Capacity() int {
	return r.capacity
}
