// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const (
	queueSize = 1000
)

// Message - one queued event
type Message struct {
	From string      // emitting service tag
	Item interface{} // one of the service event structs
}

// Bus - a buffered event queue
type Bus struct {
	queue chan Message
}

// New - create an event bus
func New() *Bus {
	return &Bus{
		queue: make(chan Message, queueSize),
	}
}

// Send - queue one event
func (bus *Bus) Send(from string, item interface{}) {
	bus.queue <- Message{
		From: from,
		Item: item,
	}
}

// Chan - channel to read from
func (bus *Bus) Chan() <-chan Message {
	return bus.queue
}
