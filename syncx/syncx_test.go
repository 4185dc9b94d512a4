// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"go.astrophena.name/pathbanner/testutil"
)

func TestLazy(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var l Lazy[int]
		var count int
		var mu sync.Mutex

		f := func() int {
			mu.Lock()
			defer mu.Unlock()
			count++
			return count
		}

		testutil.AssertEqual(t, l.Get(f), 1)
		testutil.AssertEqual(t, l.Get(f), 1)
		testutil.AssertEqual(t, count, 1)
	})
}

func TestSet(t *testing.T) {
	t.Parallel()

	var s Set[string]
	testutil.AssertEqual(t, s.Add("a.py"), true)
	testutil.AssertEqual(t, s.Add("a.py"), false)
	testutil.AssertEqual(t, s.Add("b.py"), true)
}

func TestSetConcurrentAdd(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var (
			s     Set[int]
			wins  atomic.Int32
			start = make(chan struct{})
		)
		for range 50 {
			go func() {
				<-start
				if s.Add(7) {
					wins.Add(1)
				}
			}()
		}
		close(start)
		synctest.Wait()
		testutil.AssertEqual(t, wins.Load(), int32(1))
	})
}
