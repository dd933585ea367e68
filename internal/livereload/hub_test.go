package livereload_test

import (
	"testing"
	"time"

	"github.com/fieldops/landing/internal/livereload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastReachesSubscribers(t *testing.T) {
	hub := livereload.NewHub()
	go hub.Run()

	a := &livereload.Subscriber{Send: make(chan []byte, 1)}
	b := &livereload.Subscriber{Send: make(chan []byte, 1)}
	hub.Register <- a
	hub.Register <- b

	hub.Broadcast <- []byte("reload")

	for _, sub := range []*livereload.Subscriber{a, b} {
		select {
		case msg := <-sub.Send:
			assert.Equal(t, "reload", string(msg))
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive broadcast")
		}
	}
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub := livereload.NewHub()
	go hub.Run()

	sub := &livereload.Subscriber{Send: make(chan []byte, 1)}
	hub.Register <- sub
	hub.Unregister <- sub

	select {
	case _, open := <-sub.Send:
		assert.False(t, open, "send channel must be closed after unregister")
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestHub_EvictsSlowSubscriber(t *testing.T) {
	hub := livereload.NewHub()
	go hub.Run()

	slow := &livereload.Subscriber{Send: make(chan []byte, 1)}
	slow.Send <- []byte("stale") // fill the buffer so the next send cannot go through
	healthy := &livereload.Subscriber{Send: make(chan []byte, 2)}
	hub.Register <- slow
	hub.Register <- healthy

	hub.Broadcast <- []byte("reload")
	// A second broadcast acts as a barrier: once the healthy subscriber
	// has seen it, the first broadcast has been fully processed and the
	// slow subscriber evicted.
	hub.Broadcast <- []byte("reload")
	for i := 0; i < 2; i++ {
		select {
		case <-healthy.Send:
		case <-time.After(time.Second):
			t.Fatal("healthy subscriber did not receive broadcast")
		}
	}

	msg, open := <-slow.Send
	require.True(t, open)
	require.Equal(t, "stale", string(msg), "nothing must be delivered past a full buffer")
	_, open = <-slow.Send
	require.False(t, open, "slow subscriber must be evicted")
}
