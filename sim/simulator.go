// sim/simulator.go
package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// event is one pending continuation. The sequence number breaks deadline
// ties so that continuations scheduled for the same instant fire in the
// order they were scheduled.
type event struct {
	time float64
	seq  uint64
	fn   func()
}

// eventQueue implements heap.Interface and orders events by (time, seq).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type eventQueue []*event

func (eq eventQueue) Len() int { return len(eq) }
func (eq eventQueue) Less(i, j int) bool {
	if eq[i].time != eq[j].time {
		return eq[i].time < eq[j].time
	}
	return eq[i].seq < eq[j].seq
}
func (eq eventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *eventQueue) Push(x any) {
	*eq = append(*eq, x.(*event))
}

func (eq *eventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*eq = old[:n-1]
	return item
}

// Simulator owns the virtual clock and the queue of pending continuations.
// Time is measured in simulated hours, never decreases, and is advanced only
// by RunUntil.
type Simulator struct {
	clock float64
	seq   uint64
	queue eventQueue
}

func NewSimulator() *Simulator {
	return &Simulator{queue: make(eventQueue, 0)}
}

// Now returns the current simulated time in hours.
func (s *Simulator) Now() float64 {
	return s.clock
}

// Pending returns the number of continuations still waiting to fire.
func (s *Simulator) Pending() int {
	return len(s.queue)
}

// Schedule registers fn to run when simulated time reaches Now()+delay.
// Continuations sharing a deadline run in scheduling order. A negative delay
// panics with a SchedulingError.
func (s *Simulator) Schedule(delay float64, fn func()) {
	if delay < 0 {
		panic(&SchedulingError{Delay: delay, At: s.clock})
	}
	s.seq++
	heap.Push(&s.queue, &event{time: s.clock + delay, seq: s.seq, fn: fn})
}

// RunUntil fires pending continuations in deadline order until none remain
// with a deadline at or before horizon. Production lines reschedule
// themselves forever, so the horizon is the only terminator; events past it
// stay queued and the clock rests on the last executed deadline.
func (s *Simulator) RunUntil(horizon float64) {
	for len(s.queue) > 0 && s.queue[0].time <= horizon {
		ev := heap.Pop(&s.queue).(*event)
		s.clock = ev.time
		ev.fn()
	}
	logrus.Debugf("[t=%8.3f] run finished, %d events beyond horizon", s.clock, len(s.queue))
}
