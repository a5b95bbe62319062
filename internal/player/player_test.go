package player_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/clambin/blinkq"
	"github.com/clambin/blinkq/internal/player"
	"github.com/clambin/blinkq/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLED struct {
	lock  sync.RWMutex
	state bool
	sets  int
}

func (f *fakeLED) SetLED(state bool) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.state = state
	f.sets++
	return nil
}

func (f *fakeLED) getState() bool {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.state
}

func TestPlayer(t *testing.T) {
	led := &fakeLED{}
	q := blinkq.New(led, false, 4)
	p := player.New(q, 10*time.Millisecond)

	require.Equal(t, 4, p.Capacity())
	require.Zero(t, p.Length())

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan error)
	go func() { ch <- p.Run(ctx) }()

	// 4 steps on, 4 steps off
	p.Enqueue(pattern.LongOnOff)

	require.Eventually(t, func() bool { return led.getState() }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return !led.getState() }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return p.Length() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-ch)
}

func TestPlayer_Overflow(t *testing.T) {
	led := &fakeLED{}
	q := blinkq.New(led, false, 2)
	p := player.New(q, 10*time.Millisecond)

	// the player isn't running: patterns beyond the channel's capacity are dropped
	for i := 0; i < 5; i++ {
		p.Enqueue(pattern.LongOnOff)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan error)
	go func() { ch <- p.Run(ctx) }()

	require.Eventually(t, func() bool { return led.getState() }, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-ch)
}
