package slotarena

// Metrics contains statistical information about an arena.
type Metrics struct {
	Len         int     // Stored values
	Slots       int     // Slots ever created
	Capacity    int     // Slots the allocated chunks can hold
	Vacant      int     // Vacant slots available for reuse
	Retired     int     // Slots whose generation is exhausted
	Chunks      int     // Number of chunks
	ChunkLen    int     // Slots per chunk
	Utilization float64 // Ratio of stored values to slots (0.0-1.0)
}

// Retired returns the number of slots that will never be reused because
// their generation is exhausted.
func (e *engine[T]) Retired() int {
	return e.retired
}

// Utilization returns the ratio of stored values to slots (0.0 to 1.0).
// Returns 0.0 if the arena has no slots.
func (e *engine[T]) Utilization() float64 {
	n := e.slots.Len()
	if n == 0 {
		return 0
	}
	return float64(e.count) / float64(n)
}

// Metrics returns a snapshot of arena statistics.
func (e *engine[T]) Metrics() Metrics {
	return Metrics{
		Len:         e.count,
		Slots:       e.slots.Len(),
		Capacity:    e.slots.Capacity(),
		Vacant:      e.vacant(),
		Retired:     e.retired,
		Chunks:      e.slots.NumChunks(),
		ChunkLen:    e.slots.ChunkLen(),
		Utilization: e.Utilization(),
	}
}
