package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	assert.True(t, f.Empty())
	assert.False(t, f.Has(ActionJump))

	f.Set(ActionJump)
	f.Set(ActionNone)
	assert.True(t, f.Has(ActionJump))
	assert.False(t, f.Has(ActionQuit))
	assert.False(t, f.Has(ActionNone))

	f.Clear()
	assert.True(t, f.Empty())
}

func TestInputOf(t *testing.T) {
	f := InputOf(ActionJump, ActionQuit)
	assert.True(t, f.Has(ActionJump))
	assert.True(t, f.Has(ActionQuit))
	assert.False(t, f.Has(ActionBack))
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventScore, EventHit}}
	assert.True(t, r.Has(EventHit))
	assert.False(t, r.Has(EventGameOver))
	assert.Equal(t, "gameover", EventGameOver.String())
}
