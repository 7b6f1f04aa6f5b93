package event

import "github.com/legacy3/wowlab-sub002/simtime"

// Queue is a stable time-ordered event queue keyed on (time, insertion
// sequence), tie-broken so the earlier-inserted event always wins.
//
// It is grounded on the teacher's own pending-action idiom
// (sim/core/sim.go's AddPendingAction/Step): rather than a classic
// container/heap binary heap, the queue is kept as a slice in
// descending (time, seq) order and Pop removes from the tail, so the
// smallest (time, seq) pair — the next event due — is always the last
// element. Insertion is a linear scan from the front for the first
// element strictly smaller than the new one; this is O(n) per insert but
// keeps Pop O(1) and needs no extra bookkeeping, which matches a hot loop
// that schedules a handful of pending events at a time, not thousands.
type Queue struct {
	items     []Event
	nextSeq   uint64
	scheduled uint64
	processed uint64
}

// NewQueue constructs an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// less reports whether a sorts strictly before b in the (time, seq)
// tuple ordering used to keep the slice in descending order.
func less(a, b Event) bool {
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	return a.seq < b.seq
}

// Schedule inserts ev at the given time, stamping it with the next
// insertion sequence number, and returns the stamped event.
func (q *Queue) Schedule(t simtime.Time, ev Event) Event {
	ev.Time = t
	ev.seq = q.nextSeq
	q.nextSeq++
	q.scheduled++

	idx := len(q.items)
	for i, existing := range q.items {
		if less(existing, ev) {
			idx = i
			break
		}
	}
	q.items = append(q.items, Event{})
	copy(q.items[idx+1:], q.items[idx:])
	q.items[idx] = ev
	return ev
}

// ScheduleIn schedules ev at now+delay.
func (q *Queue) ScheduleIn(now, delay simtime.Time, ev Event) Event {
	return q.Schedule(now.Add(delay), ev)
}

// Pop removes and returns the earliest-due event. ok is false if the
// queue is empty.
func (q *Queue) Pop() (Event, bool) {
	n := len(q.items)
	if n == 0 {
		return Event{}, false
	}
	ev := q.items[n-1]
	q.items = q.items[:n-1]
	q.processed++
	return ev, true
}

// Peek returns the earliest-due event without removing it.
func (q *Queue) Peek() (Event, bool) {
	n := len(q.items)
	if n == 0 {
		return Event{}, false
	}
	return q.items[n-1], true
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.items) }

// Clear empties the queue and resets its diagnostic counters and its
// insertion-sequence counter: sequence numbers restart at zero, which is
// fine since FIFO ordering only matters within one iteration.
func (q *Queue) Clear() {
	q.items = q.items[:0]
	q.nextSeq = 0
	q.scheduled = 0
	q.processed = 0
}

// Scheduled returns the running count of events ever scheduled since the
// last Clear.
func (q *Queue) Scheduled() uint64 { return q.scheduled }

// Processed returns the running count of events ever popped since the
// last Clear.
func (q *Queue) Processed() uint64 { return q.processed }
