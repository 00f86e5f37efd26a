package buffer

import (
	"fmt"

	"github.com/arloliu/flexbuf/errs"
)

// markUnset is the mark value when no mark has been set.
const markUnset = -1

// state tracks the cursor bookkeeping shared by every buffer variant.
//
// It is a pure state machine: it performs no storage access and enforces
// the ordering invariant -1 <= mark <= position <= limit <= capacity on
// every mutation. Buffer variants embed it and consult nextIndex,
// nextPutIndex and checkIndex before touching the backing store.
type state struct {
	mark     int
	position int
	limit    int
	capacity int
}

// newState creates cursor state with the given position, limit and
// capacity and no mark. The caller guarantees 0 <= position <= limit <= capacity.
func newState(position, limit, capacity int) state {
	return state{
		mark:     markUnset,
		position: position,
		limit:    limit,
		capacity: capacity,
	}
}

// Capacity returns the fixed number of elements the buffer can hold.
func (s *state) Capacity() int {
	return s.capacity
}

// Position returns the index of the next element to be read or written.
func (s *state) Position() int {
	return s.position
}

// SetPosition sets the position to newPos.
//
// If the mark is set and greater than newPos, the mark is discarded.
//
// Returns errs.ErrInvalidArgument if newPos is negative or greater than
// the limit; the state is unchanged on failure.
func (s *state) SetPosition(newPos int) error {
	if newPos < 0 || newPos > s.limit {
		return fmt.Errorf("%w: position %d out of range [0, %d]", errs.ErrInvalidArgument, newPos, s.limit)
	}

	s.position = newPos
	if s.mark > newPos {
		s.mark = markUnset
	}

	return nil
}

// Limit returns the exclusive upper bound of valid elements.
func (s *state) Limit() int {
	return s.limit
}

// SetLimit sets the limit to newLimit.
//
// If the position is greater than newLimit, it is clamped down to
// newLimit. If the mark is set and then exceeds the position, it is
// discarded.
//
// Returns errs.ErrInvalidArgument if newLimit is negative or greater
// than the capacity; the state is unchanged on failure.
func (s *state) SetLimit(newLimit int) error {
	if newLimit < 0 || newLimit > s.capacity {
		return fmt.Errorf("%w: limit %d out of range [0, %d]", errs.ErrInvalidArgument, newLimit, s.capacity)
	}

	s.limit = newLimit
	if s.position > newLimit {
		s.position = newLimit
	}
	if s.mark > s.position {
		s.mark = markUnset
	}

	return nil
}

// Mark saves the current position for a later Reset.
func (s *state) Mark() {
	s.mark = s.position
}

// Reset restores the position to the previously set mark.
//
// Returns errs.ErrInvalidMark if no mark is set.
func (s *state) Reset() error {
	if s.mark == markUnset {
		return errs.ErrInvalidMark
	}

	s.position = s.mark

	return nil
}

// Clear resets the cursor for a new sequence of writes: position zero,
// limit raised to the capacity, mark discarded. The content is untouched.
func (s *state) Clear() {
	s.position = 0
	s.limit = s.capacity
	s.mark = markUnset
}

// Flip prepares for reading back what was just written: the limit moves
// to the current position, the position returns to zero and the mark is
// discarded.
func (s *state) Flip() {
	s.limit = s.position
	s.position = 0
	s.mark = markUnset
}

// Rewind moves the position back to zero and discards the mark, leaving
// the limit untouched so the same range can be re-read.
func (s *state) Rewind() {
	s.position = 0
	s.mark = markUnset
}

// Remaining returns the number of elements between position and limit.
func (s *state) Remaining() int {
	return s.limit - s.position
}

// HasRemaining reports whether any elements remain between position and limit.
func (s *state) HasRemaining() bool {
	return s.position < s.limit
}

// nextIndex validates that step elements remain, returns the current
// position and advances it by step. Every sequential get goes through
// this method.
func (s *state) nextIndex(step int) (int, error) {
	if s.limit-s.position < step {
		return 0, fmt.Errorf("%w: need %d elements, %d remaining", errs.ErrBufferUnderflow, step, s.limit-s.position)
	}

	idx := s.position
	s.position += step

	return idx, nil
}

// nextPutIndex is the write-side counterpart of nextIndex, failing with
// errs.ErrBufferOverflow instead.
func (s *state) nextPutIndex(step int) (int, error) {
	if s.limit-s.position < step {
		return 0, fmt.Errorf("%w: need %d elements, %d remaining", errs.ErrBufferOverflow, step, s.limit-s.position)
	}

	idx := s.position
	s.position += step

	return idx, nil
}

// checkIndex validates an absolute access of step elements at index i
// against [0, limit) without moving the position.
func (s *state) checkIndex(i, step int) error {
	if i < 0 || i+step > s.limit {
		return fmt.Errorf("%w: index %d with width %d exceeds limit %d", errs.ErrIndexOutOfBounds, i, step, s.limit)
	}

	return nil
}
