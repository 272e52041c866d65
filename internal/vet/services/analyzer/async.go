package analyzer

import (
	"context"
	"fmt"

	"github.com/haukened/urlvet/internal/vet/domain"
)

// Outcome is the single delivery event of one background analysis: either a
// Result or an unexpected failure, never both.
type Outcome struct {
	Result domain.Result
	Err    error
}

// Go runs Analyze on its own goroutine and delivers exactly one Outcome on
// the returned channel.
//
// The channel is buffered, so a caller that abandons a superseded check never
// blocks the worker; the in-flight network calls run to completion and their
// result is simply discarded. Panics inside the pipeline surface as Err
// rather than crashing the process.
func (a *Analyzer) Go(ctx context.Context, raw string) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				out <- Outcome{Err: fmt.Errorf("analysis failed unexpectedly: %v", r)}
			}
		}()
		result, err := a.Analyze(ctx, raw)
		out <- Outcome{Result: result, Err: err}
	}()
	return out
}
