// SPDX-License-Identifier: MIT
//
// File: parallel.go
// Role: supplemented feature (SPEC_FULL.md §4) — fans validation out across
// every candidate concurrently, reimplementing the original's
// explore_new/par_bridge fan-out. The worker-pool shape (errgroup.WithContext
// plus a fixed number of goroutines draining a work channel against
// ctx.Done(), fed by a send loop that also selects on ctx.Done() before
// closing the channel) is ported from the cockroach rt-enforcer's enforceAll.
package oracle

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sorawee/isaforge/egraph"
	"github.com/sorawee/isaforge/isa"
)

// Result pairs a candidate eclass with its oracle verdict.
type Result struct {
	EClass  egraph.Id
	Verdict Verdict
	Err     error
}

// ValidateAll runs driver over every candidate concurrently, bounded to
// parallelism workers (config.Parallelism). A candidate whose AST does not
// translate to Racket (Translate's ok=false) is reported as an ordinary
// reject with no oracle invocation, matching Driver.Validate's own
// reject-vs-transport-failure split.
func ValidateAll(ctx context.Context, driver Driver, candidates map[egraph.Id]*isa.Expr, parallelism int) ([]Result, error) {
	if parallelism < 1 {
		parallelism = 1
	}

	ids := make([]egraph.Id, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}

	results := make([]Result, len(ids))
	work := make(chan int, parallelism)
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < parallelism; w++ {
		g.Go(func() error {
			for {
				select {
				case i, open := <-work:
					if !open {
						return nil
					}
					results[i] = validateOne(gctx, driver, ids[i], candidates[ids[i]])
				case <-gctx.Done():
					return gctx.Err()
				}
			}
		})
	}

sendLoop:
	for i := range ids {
		select {
		case work <- i:
		case <-gctx.Done():
			break sendLoop
		}
	}
	close(work)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func validateOne(ctx context.Context, driver Driver, id egraph.Id, expr *isa.Expr) Result {
	racketExpr, bitwidths, ok := Translate(expr)
	if !ok {
		return Result{EClass: id, Verdict: Verdict{Accepted: false}}
	}
	verdict, err := driver.Validate(ctx, racketExpr, bitwidths)
	if err != nil {
		return Result{EClass: id, Err: err}
	}
	return Result{EClass: id, Verdict: verdict}
}
