package corrector

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// CorrectBatch corrects texts concurrently on at most workers goroutines.
// Results keep the input order. Sentences share only read-only state, so the
// only failure is a cancelled context.
func (sc *SpellCorrector) CorrectBatch(ctx context.Context, texts []string, workers int) ([]CorrectionResult, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]CorrectionResult, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, text := range texts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = sc.CorrectText(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
