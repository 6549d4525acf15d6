package queue

// FIFO is a growable ring buffer queue.
// It is not safe for concurrent use.
type FIFO[T any] struct {
	buf  []T
	head int
	size int
}

// NewFIFO creates a queue with room for capacity items before growing.
func NewFIFO[T any](capacity int) *FIFO[T] {
	return &FIFO[T]{buf: make([]T, max(capacity, 1))}
}

// Len returns the number of queued items.
func (q *FIFO[T]) Len() int { return q.size }

// Push appends v to the tail.
func (q *FIFO[T]) Push(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// Pop removes and returns the head.
func (q *FIFO[T]) Pop() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, true
}

// Drain removes and returns all queued items in FIFO order.
func (q *FIFO[T]) Drain() []T {
	out := make([]T, 0, q.size)
	for q.size > 0 {
		v, _ := q.Pop()
		out = append(out, v)
	}
	return out
}

func (q *FIFO[T]) grow() {
	buf := make([]T, len(q.buf)*2)
	for i := range q.size {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
