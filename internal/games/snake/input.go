package snake

// InputBuffer holds the applied direction and the latest accepted request.
// Requests are applied one per tick, so only the last accepted key between
// two ticks takes effect.
type InputBuffer struct {
	current Direction
	next    Direction
}

// NewInputBuffer starts both directions at d.
func NewInputBuffer(d Direction) InputBuffer {
	return InputBuffer{current: d, next: d}
}

// Request buffers d unless it reverses the current direction.
// It reports whether the request was accepted.
func (b *InputBuffer) Request(d Direction) bool {
	if d.Opposite(b.current) {
		return false
	}
	b.next = d
	return true
}

// Advance applies the buffered direction and returns it.
func (b *InputBuffer) Advance() Direction {
	b.current = b.next
	return b.current
}

// Current returns the direction applied on the last tick.
func (b InputBuffer) Current() Direction {
	return b.current
}

// Next returns the buffered direction.
func (b InputBuffer) Next() Direction {
	return b.next
}
