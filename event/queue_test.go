package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/simtime"
)

func TestQueueOrdersByTime(t *testing.T) {
	q := NewQueue()
	q.Schedule(simtime.FromSeconds(3), Event{Kind: SimEnd})
	q.Schedule(simtime.FromSeconds(1), Event{Kind: GcdEnd})
	q.Schedule(simtime.FromSeconds(2), Event{Kind: ResourceTick})

	var got []simtime.Time
	for {
		ev, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, ev.Time)
	}

	require.Equal(t, []simtime.Time{
		simtime.FromSeconds(1),
		simtime.FromSeconds(2),
		simtime.FromSeconds(3),
	}, got)
}

func TestQueueSameTimeIsFIFO(t *testing.T) {
	q := NewQueue()
	q.Schedule(simtime.FromSeconds(1), Event{Kind: GcdEnd, Spell: 0})
	q.Schedule(simtime.FromSeconds(1), Event{Kind: GcdEnd, Spell: 1})
	q.Schedule(simtime.FromSeconds(1), Event{Kind: GcdEnd, Spell: 2})

	var got []int
	for {
		ev, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, ev.Spell)
	}

	require.Equal(t, []int{0, 1, 2}, got)
}

func TestQueueEmptyPop(t *testing.T) {
	q := NewQueue()
	_, ok := q.Pop()
	require.False(t, ok)
}

func TestQueueClearResetsCounters(t *testing.T) {
	q := NewQueue()
	q.Schedule(simtime.Zero, Event{Kind: SimEnd})
	require.Equal(t, uint64(1), q.Scheduled())
	q.Clear()
	require.Equal(t, 0, q.Len())
	require.Equal(t, uint64(0), q.Scheduled())
}
