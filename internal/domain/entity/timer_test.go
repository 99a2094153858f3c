package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdown_ZeroValueIsReady(t *testing.T) {
	var c Countdown
	assert.True(t, c.Ready())
	assert.False(t, c.Active())
}

func TestCountdown_StartAndTick(t *testing.T) {
	var c Countdown
	c.Start(0.5)

	assert.True(t, c.Active())
	assert.False(t, c.Ready())

	c.Tick(0.2)
	assert.True(t, c.Active())
	assert.InDelta(t, 0.3, c.Remaining(), 1e-9)

	c.Tick(0.3)
	assert.True(t, c.Ready())
	assert.False(t, c.Active())
}

func TestCountdown_TickClampsAtZero(t *testing.T) {
	var c Countdown
	c.Start(0.1)
	c.Tick(10)

	assert.Equal(t, 0.0, c.Remaining())
	assert.True(t, c.Ready())
}

func TestCountdown_Restart(t *testing.T) {
	var c Countdown
	c.Start(0.1)
	c.Tick(0.2)
	assert.True(t, c.Ready())

	c.Start(1.0)
	assert.True(t, c.Active())
	assert.InDelta(t, 1.0, c.Remaining(), 1e-9)
}
