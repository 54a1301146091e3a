package workflow

import (
	"context"
	"sync"

	"server/internal/domain"
)

// fanOut launches n independent provider calls concurrently, waits for all of
// them to settle, and keeps only the ones that produced a usable image.
// Results arrive in completion order; batch outputs are interchangeable, so
// ordering carries no meaning. Failures and imageless replies are logged and
// dropped rather than failing the batch: the caller decides what an empty
// survivor set means. This is deliberately not a fail-fast join.
func (s *Service) fanOut(ctx context.Context, n int, call func(context.Context) (domain.ImageInput, error)) []domain.ImageInput {
	if n < 1 {
		n = 1
	}
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = make([]domain.ImageInput, 0, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			asset, err := call(ctx)
			if err != nil {
				s.logger.Warn().Err(err).Int("call", idx+1).Int("batch", n).
					Msg("workflow: batch call failed")
				return
			}
			if len(asset.Data) == 0 {
				s.logger.Warn().Int("call", idx+1).Int("batch", n).
					Msg("workflow: batch call returned no image data")
				return
			}
			mu.Lock()
			out = append(out, asset)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	return out
}
