package processor

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"voynich/internal/cipher"
	"voynich/internal/dictionary"
	"voynich/internal/tokenizer"
	"voynich/internal/types"
)

/////////////////////////////////////////////////////////////////////////////
// SHIFT SCANNER
/////////////////////////////////////////////////////////////////////////////

// ShiftScanner tries every Caesar shift from 1 to 25 and counts how many
// word tokens of each shifted text are dictionary words.
type ShiftScanner struct {
	Dictionary dictionary.Table
	// Parallel evaluates the shifts concurrently. Results are identical to
	// the sequential scan.
	Parallel bool
	Logger   *zap.Logger
}

func NewShiftScanner(dict dictionary.Table, parallel bool, logger *zap.Logger) *ShiftScanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShiftScanner{
		Dictionary: dict,
		Parallel:   parallel,
		Logger:     logger,
	}
}

// Evaluate returns the result for a single shift amount.
func (s *ShiftScanner) Evaluate(text string, shift int) types.ShiftResult {
	tokens := tokenizer.Words(cipher.Shift(text, shift))
	return types.ShiftResult{
		Shift:   shift,
		Matches: s.Dictionary.CountMatches(tokens),
	}
}

// Scan returns one result per shift in increasing shift order. Every shift
// is evaluated; only a cancelled context stops the scan.
func (s *ShiftScanner) Scan(ctx context.Context, text string) ([]types.ShiftResult, error) {
	if words := s.Dictionary.MixedCaseWords(); len(words) > 0 {
		s.logger().Warn("Dictionary words with upper-case letters never match shifted tokens",
			zap.Strings("words", words))
	}

	results := make([]types.ShiftResult, cipher.MaxShift)

	if s.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for shift := cipher.MinShift; shift <= cipher.MaxShift; shift++ {
			shift := shift
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[shift-cipher.MinShift] = s.Evaluate(text, shift)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for shift := cipher.MinShift; shift <= cipher.MaxShift; shift++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[shift-cipher.MinShift] = s.Evaluate(text, shift)
		}
	}

	best := Best(results)
	s.logger().Debug("Shift scan complete",
		zap.Bool("parallel", s.Parallel),
		zap.Int("best_shift", best.Shift),
		zap.Int("best_matches", best.Matches))

	return results, nil
}

func (s *ShiftScanner) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Best returns the result with the most matches, preferring the lowest shift
// on ties. It returns the zero value for an empty slice.
func Best(results []types.ShiftResult) types.ShiftResult {
	var best types.ShiftResult
	for i, r := range results {
		if i == 0 || r.Matches > best.Matches {
			best = r
		}
	}
	return best
}
