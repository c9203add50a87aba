// seehuhn.de/go/colorconv - convert colour values between colour spaces
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package colorconv

import "sync"

// pathCacheSize is the number of resolved paths kept by the package.
const pathCacheSize = 256

// pathKey identifies a resolved path.  Two requests with the same endpoints
// and the same effective options share a path.
type pathKey struct {
	from, to string
	opt      options
}

var paths = newCache[pathKey, *Path](pathCacheSize)

// lruCache is a least-recently-used cache which is safe for concurrent use.
type lruCache[K comparable, V any] struct {
	mu          sync.Mutex
	capacity    int
	entries     map[K]*cacheEntry[K, V]
	first, last *cacheEntry[K, V]
}

type cacheEntry[K comparable, V any] struct {
	prev, next *cacheEntry[K, V]
	key        K
	val        V
}

func newCache[K comparable, V any](capacity int) *lruCache[K, V] {
	return &lruCache[K, V]{
		capacity: capacity,
		entries:  make(map[K]*cacheEntry[K, V], capacity),
	}
}

// Put adds a value to the cache, evicting the least recently used entry
// if the cache is full.
func (l *lruCache[K, V]) Put(key K, val V) {
	if l.capacity <= 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if ent, ok := l.entries[key]; ok {
		ent.val = val
		l.moveToFront(ent)
		return
	}

	ent := &cacheEntry[K, V]{
		key: key,
		val: val,
	}
	l.entries[key] = ent
	l.moveToFront(ent)

	if len(l.entries) > l.capacity {
		l.removeLast()
	}
}

// Get returns a value from the cache and marks it as recently used.
func (l *lruCache[K, V]) Get(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ent, ok := l.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	l.moveToFront(ent)
	return ent.val, true
}

// Has reports whether the cache contains the given key.
// The entry is not marked as recently used.
func (l *lruCache[K, V]) Has(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.entries[key]
	return ok
}

// Len returns the number of entries in the cache.
func (l *lruCache[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *lruCache[K, V]) moveToFront(ent *cacheEntry[K, V]) {
	if ent == l.first {
		return
	}

	if ent.prev != nil {
		ent.prev.next = ent.next
	}
	if ent.next != nil {
		ent.next.prev = ent.prev
	}
	if ent == l.last {
		l.last = ent.prev
	}

	ent.prev = nil
	ent.next = l.first
	if l.first != nil {
		l.first.prev = ent
	}
	l.first = ent
	if l.last == nil {
		l.last = ent
	}
}

func (l *lruCache[K, V]) removeLast() {
	if l.last == nil {
		return
	}

	delete(l.entries, l.last.key)
	if l.last.prev != nil {
		l.last.prev.next = nil
	}
	l.last = l.last.prev
	if l.last == nil {
		l.first = nil
	}
}
