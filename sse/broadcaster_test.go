// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sse

import (
	"testing"
	"time"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Subscribe()
	ch2 := b.Subscribe()

	b.Publish(EventParticipants, `["Ada"]`)

	for i, ch := range []chan Message{ch1, ch2} {
		select {
		case msg := <-ch:
			if msg.Event != EventParticipants || msg.Data != `["Ada"]` {
				t.Errorf("Subscriber %d got unexpected message %+v", i, msg)
			}
		case <-time.After(time.Second):
			t.Fatalf("Subscriber %d did not receive the message", i)
		}
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()

	b.Unsubscribe(ch)

	if _, open := <-ch; open {
		t.Error("Expected channel to be closed")
	}

	// Unsubscribing twice is safe
	b.Unsubscribe(ch)

	// Publishing after unsubscribe must not panic
	b.Publish(EventWinners, `["Alan"]`)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	b := NewBroadcaster()
	// Must not block or panic
	b.Publish(EventParticipants, `[]`)
}

func TestSlowSubscriberDoesNotBlockOthers(t *testing.T) {
	b := NewBroadcaster()
	slow := b.Subscribe()
	fast := b.Subscribe()

	// Fill the slow subscriber's buffer so further sends would block
	for i := 0; i < cap(slow); i++ {
		b.Publish(EventParticipants, `[]`)
	}

	done := make(chan struct{})
	go func() {
		b.Publish(EventParticipants, `["Ada"]`)
		close(done)
	}()

	// Drain the fast subscriber; the publish must complete once the send
	// timeout skips the stuck channel.
	go func() {
		for range fast {
		}
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	b.Unsubscribe(slow)
	b.Unsubscribe(fast)
}
