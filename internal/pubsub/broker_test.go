package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBroker_PublishReachesAllSubscribers(t *testing.T) {
	b := NewBroker[string]()
	t.Cleanup(b.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	first := b.Subscribe(ctx)
	second := b.Subscribe(ctx)
	require.Equal(t, 2, b.SubscriberCount())

	b.Publish(ChangedEvent, "hello")

	for _, ch := range []<-chan Event[string]{first, second} {
		select {
		case ev := <-ch:
			require.Equal(t, ChangedEvent, ev.Type)
			require.Equal(t, "hello", ev.Payload)
			require.False(t, ev.Timestamp.IsZero())
		case <-time.After(time.Second):
			t.Fatal("expected an event")
		}
	}
}

func TestBroker_ContextCancelRemovesSubscription(t *testing.T) {
	b := NewBroker[int]()
	t.Cleanup(b.Close)

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool {
		return b.SubscriberCount() == 0
	}, time.Second, 10*time.Millisecond)

	// The channel must be closed.
	select {
	case _, ok := <-ch:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("expected the channel to close")
	}
}

func TestBroker_CloseStopsDelivery(t *testing.T) {
	b := NewBroker[int]()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	ch := b.Subscribe(ctx)

	b.Close()

	// Publish after close is a no-op, and the channel is closed.
	b.Publish(ChangedEvent, 1)
	_, ok := <-ch
	require.False(t, ok)

	// Subscribing after close yields a closed channel.
	late := b.Subscribe(ctx)
	_, ok = <-late
	require.False(t, ok)
}

func TestBroker_FullSubscriberDropsInsteadOfBlocking(t *testing.T) {
	b := NewBroker[int]()
	t.Cleanup(b.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	_ = b.Subscribe(ctx) // never drained

	done := make(chan struct{})
	go func() {
		for i := 0; i < defaultBufferSize*3; i++ {
			b.Publish(ChangedEvent, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestListenCmd_DeliversEventAsMsg(t *testing.T) {
	b := NewBroker[string]()
	t.Cleanup(b.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	listener := NewContinuousListener(ctx, b)

	b.Publish(ChangedEvent, "ping")

	msg := listener.Listen()()
	ev, ok := msg.(Event[string])
	require.True(t, ok)
	require.Equal(t, "ping", ev.Payload)
}

func TestListenCmd_NilOnCancel(t *testing.T) {
	b := NewBroker[string]()
	t.Cleanup(b.Close)

	ctx, cancel := context.WithCancel(context.Background())
	listener := NewContinuousListener(ctx, b)
	cancel()

	require.Nil(t, listener.Listen()())
}
