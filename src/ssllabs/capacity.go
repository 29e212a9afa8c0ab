// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssllabs

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Response headers carrying the service's assessment counters.
const (
	HeaderCurrentAssessments = "X-Current-Assessments"
	HeaderMaxAssessments     = "X-Max-Assessments"
)

// Unbounded is the Max value of a snapshot with no known limit.
const Unbounded = -1

// Snapshot is a point-in-time view of the service's assessment capacity.
type Snapshot struct {
	Current int
	// Max is negative when the limit is unknown or unbounded.
	Max     int
	CoolOff time.Duration
}

// HasCapacity reports whether a new assessment may start now.
func (s Snapshot) HasCapacity() bool {
	return s.Max < 0 || s.Current < s.Max
}

// Capacity holds the last observed [Snapshot]. It is advisory: any request
// may overwrite it and the last write wins.
//
// Thread Safety: Safe for concurrent use. A single Capacity may be shared
// by several clients through [WithCapacity].
type Capacity struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewCapacity returns a cell that starts out unbounded.
func NewCapacity() *Capacity {
	return &Capacity{snap: Snapshot{Max: Unbounded}}
}

// Snapshot returns the last observed values.
func (c *Capacity) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Store replaces the snapshot.
func (c *Capacity) Store(s Snapshot) {
	c.mu.Lock()
	c.snap = s
	c.mu.Unlock()
}

// merge overlays the counters present in info and returns the result.
func (c *Capacity) merge(info *Info) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = info.Snapshot(c.snap)
	return c.snap
}

// observe updates the counters from response headers. Missing or
// malformed headers leave the matching counter untouched.
func (c *Capacity) observe(h http.Header) {
	current, okCurrent := headerInt(h, HeaderCurrentAssessments)
	limit, okMax := headerInt(h, HeaderMaxAssessments)
	if !okCurrent && !okMax {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if okCurrent {
		c.snap.Current = current
	}
	if okMax {
		c.snap.Max = limit
	}
}

func headerInt(h http.Header, key string) (int, bool) {
	v := strings.TrimSpace(h.Get(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}
