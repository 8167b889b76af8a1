// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sse

import (
	"sync"
	"time"
)

// Event name constants
const (
	EventParticipants = "participants"
	EventWinners      = "winners"
)

// sendTimeout bounds how long a slow subscriber can hold up a broadcast.
const sendTimeout = time.Second

// Message is one server-sent event.
type Message struct {
	Event string
	Data  string
}

// Broadcaster fans messages out to subscribed channels.
type Broadcaster struct {
	mu      sync.RWMutex
	clients map[chan Message]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{clients: make(map[chan Message]struct{})}
}

// Subscribe registers a new client channel.
func (b *Broadcaster) Subscribe() chan Message {
	ch := make(chan Message, 10)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[ch] = struct{}{}
	return ch
}

// Unsubscribe removes and closes a client channel.
func (b *Broadcaster) Unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.clients[ch]; exists {
		delete(b.clients, ch)
		close(ch)
	}
}

// Publish sends an event to all subscribers.
func (b *Broadcaster) Publish(event, data string) {
	b.mu.RLock()
	// Collect client channels while holding the lock
	clients := make([]chan Message, 0, len(b.clients))
	for ch := range b.clients {
		clients = append(clients, ch)
	}
	b.mu.RUnlock()

	// Send without holding the lock
	msg := Message{Event: event, Data: data}
	for _, ch := range clients {
		select {
		case ch <- msg:
			// Sent
		case <-time.After(sendTimeout):
			// Timeout - skip this client to avoid blocking
		}
	}
}
