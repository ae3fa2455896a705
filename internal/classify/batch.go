package classify

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ClassifyAll classifies paths with at most concurrency decodes in
// flight. Results come back in the order of paths. The only error
// returned is context cancellation; per-file failures are carried on
// the results themselves.
func ClassifyAll(ctx context.Context, paths []string, minDiff float64, concurrency int) ([]Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = ClassifyFile(path, minDiff)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
