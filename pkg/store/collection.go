/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package store

import (
	"sync"
)

// Status is the synchronization state of one collection. Pages branch on
// it to show a spinner, the data or an inline error.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Record is any entity with a server-assigned identifier.
type Record interface {
	GetID() string
}

// Pagination mirrors the server-reported page window for paginated
// resources.
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalRecords int
}

// collection owns one cached entity collection and its transition rules.
// Every mutation of the cache goes through one of its methods; the methods
// are pure state transitions, network effects live in the owning store.
//
// Fetches carry a sequence number. A response whose sequence is older than
// the newest issued fetch is discarded, so two overlapping fetches can
// never leave the cache holding the older response's data.
type collection[T Record] struct {
	mu         sync.Mutex
	records    []T
	status     Status
	err        error
	pagination *Pagination
	seq        uint64
	stale      bool
	fetched    bool
	prepend    bool
}

func newCollection[T Record](prepend bool) *collection[T] {
	return &collection[T]{status: StatusIdle, prepend: prepend}
}

// beginFetch transitions to loading, clears the previous error and issues
// a new fetch sequence number.
func (c *collection[T]) beginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = StatusLoading
	c.err = nil
	c.seq++
	return c.seq
}

// reconcileFetch replaces the cache with the server page. It reports false
// when a newer fetch was issued meanwhile and the response was dropped.
func (c *collection[T]) reconcileFetch(seq uint64, records []T, p *Pagination) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return false
	}
	c.records = append([]T(nil), records...)
	c.status = StatusSucceeded
	c.pagination = p
	c.stale = false
	c.fetched = true
	return true
}

// failFetch records the fetch failure unless a newer fetch superseded it.
func (c *collection[T]) failFetch(seq uint64, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return false
	}
	c.status = StatusFailed
	c.err = err
	return true
}

// applyCreate patches the new record into the cache without a refetch. A
// record with a known identifier replaces its predecessor so identifiers
// stay unique.
func (c *collection[T]) applyCreate(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.records {
		if c.records[i].GetID() == rec.GetID() {
			c.records[i] = rec
			return
		}
	}
	if c.prepend {
		c.records = append([]T{rec}, c.records...)
		return
	}
	c.records = append(c.records, rec)
}

// applyUpdate replaces the matching record in place. A response for an
// identifier no longer cached is dropped.
func (c *collection[T]) applyUpdate(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.records {
		if c.records[i].GetID() == rec.GetID() {
			c.records[i] = rec
			return
		}
	}
}

// applyDelete filters the identifier out of the cache. Deleting an absent
// identifier is a no-op.
func (c *collection[T]) applyDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.records[:0]
	for _, rec := range c.records {
		if rec.GetID() != id {
			kept = append(kept, rec)
		}
	}
	c.records = kept
}

// invalidate marks the cache stale; the next ensure-style read refetches.
func (c *collection[T]) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stale = true
}

func (c *collection[T]) needsFetch() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stale || !c.fetched
}

// items returns a copy of the cached records.
func (c *collection[T]) items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.records...)
}

func (c *collection[T]) currentStatus() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *collection[T]) lastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *collection[T]) page() *Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pagination == nil {
		return nil
	}
	p := *c.pagination
	return &p
}
