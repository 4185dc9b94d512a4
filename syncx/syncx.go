// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package syncx contains useful synchronization primitives.
package syncx

import (
	"sync"

	"github.com/go4org/hashtriemap"
)

// Lazy represents a lazily computed value.
type Lazy[T any] struct {
	once sync.Once
	val  T
}

// Get returns T, calling f to compute it, if necessary.
func (l *Lazy[T]) Get(f func() T) T {
	l.once.Do(func() { l.val = f() })
	return l.val
}

// Set is a set of comparable values safe for concurrent use.
// The zero value is ready to use. It should not be copied.
type Set[K comparable] struct {
	m hashtriemap.HashTrieMap[K, struct{}]
}

// Add adds key to the set. It reports whether key was absent, so exactly
// one of several concurrent callers adding the same key gets true.
func (s *Set[K]) Add(key K) bool {
	_, loaded := s.m.LoadOrStore(key, struct{}{})
	return !loaded
}
