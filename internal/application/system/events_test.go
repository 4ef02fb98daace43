package system

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventQueue_DrainKeepsOrder(t *testing.T) {
	q := NewEventQueue()
	q.Push(ShotFired{Weapon: "MP5"})
	q.Push(EnemyHit{EnemyID: 2, Damage: 50})
	q.Push(EnemyKilled{EnemyID: 2, Points: 50})

	assert.Equal(t, 3, q.Len())

	events := q.Drain()
	assert.Equal(t, []Event{
		ShotFired{Weapon: "MP5"},
		EnemyHit{EnemyID: 2, Damage: 50},
		EnemyKilled{EnemyID: 2, Points: 50},
	}, events)
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain())
}

func TestEventQueue_DrainedSliceIsStable(t *testing.T) {
	q := NewEventQueue()
	q.Push(Reloaded{Weapon: "Glock 17", Rounds: 5})
	first := q.Drain()

	q.Push(PurchaseRefused{Name: "MP7", Reason: errors.New("broke")})
	second := q.Drain()

	assert.Equal(t, Reloaded{Weapon: "Glock 17", Rounds: 5}, first[0], "later pushes must not overwrite a drained batch")
	assert.Len(t, second, 1)
}

func TestEventQueue_Nil(t *testing.T) {
	var q *EventQueue
	q.Push(PlayerDied{})
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain())
}
