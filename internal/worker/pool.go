// Package worker provides the fan-out used by batch verification.
package worker

import (
	"context"
	"sync"

	"github.com/tecw/truthengine/internal/model"
)

// VerifyFunc verifies one claim.
type VerifyFunc func(ctx context.Context, claim string) model.VerificationResult

// ClaimReport pairs a claim with its verification result, preserving the
// claim's position in the input file.
type ClaimReport struct {
	Index  int
	Claim  string
	Result model.VerificationResult
}

// Pool runs claim verifications across a fixed number of workers.
type Pool struct {
	workers int
	verify  VerifyFunc
}

// NewPool creates a pool. Workers below one are clamped to one.
func NewPool(workers int, verify VerifyFunc) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers, verify: verify}
}

// Run verifies every claim and returns the reports ordered by input
// position. It respects context cancellation: claims not yet started
// when the context ends are skipped.
func (p *Pool) Run(ctx context.Context, claims []string) []ClaimReport {
	jobs := make(chan int)
	reports := make([]ClaimReport, len(claims))

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				reports[idx] = ClaimReport{
					Index:  idx,
					Claim:  claims[idx],
					Result: p.verify(ctx, claims[idx]),
				}
			}
		}()
	}

	for i := range claims {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return compact(reports)
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return compact(reports)
}

// compact drops slots for claims that were never verified.
func compact(reports []ClaimReport) []ClaimReport {
	out := reports[:0]
	for _, r := range reports {
		if r.Claim != "" {
			out = append(out, r)
		}
	}
	return out
}
