// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

// Package seqobsv holds a monotonic counter that can be waited on.
package seqobsv

import "sync"

// Observable is a counter that only moves forward.
type Observable struct {
	mu      sync.Mutex
	val     uint64
	waiters map[uint64][]chan struct{}
}

// New returns a counter starting at start.
func New(start uint64) *Observable {
	return &Observable{
		val:     start,
		waiters: make(map[uint64][]chan struct{}),
	}
}

// Value returns the current count.
func (o *Observable) Value() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.val
}

// Inc adds one and returns the new count.
func (o *Observable) Inc() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.advance(o.val + 1)
	return o.val
}

// Set moves the counter to v. Values below the current count are ignored.
func (o *Observable) Set(v uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if v > o.val {
		o.advance(v)
	}
}

// advance requires o.mu.
func (o *Observable) advance(v uint64) {
	o.val = v
	for want, chans := range o.waiters {
		if want > v {
			continue
		}
		for _, ch := range chans {
			close(ch)
		}
		delete(o.waiters, want)
	}
}

// WaitFor returns a channel that is closed once the count reached v.
func (o *Observable) WaitFor(v uint64) <-chan struct{} {
	ch := make(chan struct{})

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.val >= v {
		close(ch)
		return ch
	}
	o.waiters[v] = append(o.waiters[v], ch)
	return ch
}
