// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package process

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go.astrophena.name/pathbanner/internal/banner"
	"go.astrophena.name/pathbanner/syncx"
)

// Batch processes paths with at most jobs files in flight (GOMAXPROCS if
// jobs < 1) and returns their outcomes in the order of paths.
//
// A path given more than once is processed once; its later occurrences
// are reported as unchanged. When ctx is canceled, Batch stops starting new
// files and returns the context error along with the outcomes collected so
// far.
func (p *Processor) Batch(ctx context.Context, paths []string, jobs int) ([]Outcome, error) {
	if jobs < 1 {
		jobs = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]Outcome, len(paths))
	for i, path := range paths {
		outcomes[i].Path = banner.DisplayPath(path)
	}

	var seen syncx.Set[string]
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}
		if !seen.Add(outcomes[i].Path) {
			continue
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			outcomes[i] = p.Process(ctx, path)
			return nil
		})
	}
	g.Wait()

	return outcomes, ctx.Err()
}
