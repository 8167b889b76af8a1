// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sse implements a small server-sent-events broadcaster.

The spinner page subscribes to roster updates so new scans appear without
polling:

	b := sse.NewBroadcaster()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.Publish(sse.EventParticipants, jsonPayload)

Publish never blocks on a stalled subscriber longer than one second; slow
clients miss events rather than wedging the scan pipeline.
*/
package sse
