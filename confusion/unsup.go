package confusion

import "github.com/mkravets/biaskit/matrix"

// WeightedMatrices builds the unsupervised co-occurrence matrices for the
// setting where bias labels are model predictions carrying a per-example
// marginal confidence instead of ground truth.
//
// Algorithm Outline (staged masked-overwrite; the stage order is load-bearing):
//  1. Validate: shared label contract plus len(marginals) == len(targets)
//     and every marginal >= 0.
//  2. Accumulate weighted[bias][target] += marginal and
//     count[bias][target] += 1 over the zipped triples.
//  3. Capture the zero mask — cells whose weighted sum is exactly 0 —
//     before any further mutation.
//  4. Clamp zero counts to 1, isolating the upcoming division: such cells
//     have weighted sum 0, so their quotient is 0 either way.
//  5. Divide elementwise: mean confidence = weighted / count.
//  6. Write the placeholder 1 into masked cells so the inversion below
//     cannot divide by zero.
//  7. Invert elementwise: surprise = 1 / mean. High average confidence
//     maps to low surprise, so rare and under-confident bias-target
//     pairings dominate after normalization.
//  8. Re-apply the mask as a final clamp: surprise of a never-occurring
//     cell is exactly 0, discarding whatever the placeholder inverted to.
//  9. Row-normalize surprise (rows = bias labels) under opts.ZeroRows /
//     opts.Epsilon.
//
// A nil opts means DefaultOptions().
func WeightedMatrices(numClasses int, targets, biases []int, marginals []float64, opts *Options) (*WeightedResult, error) {
	if err := validateLabels(numClasses, targets, biases); err != nil {
		return nil, err
	}
	if len(marginals) != len(targets) {
		return nil, ErrLengthMismatch
	}
	for _, m := range marginals {
		if m < 0 {
			return nil, ErrNegativeMarginal
		}
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Stage 2 (Accumulate). Shape and labels were validated; Add cannot fail.
	weighted, _ := matrix.NewSquare(numClasses)
	count, _ := matrix.NewSquare(numClasses)
	for i, t := range targets {
		_ = weighted.Add(biases[i], t, marginals[i])
		_ = count.Add(biases[i], t, 1)
	}

	// Stage 3 (Mask): row-major zero mask, captured before any mutation.
	mask := make([]bool, numClasses*numClasses)
	forEachCell(numClasses, func(i, j int) {
		if v, _ := weighted.At(i, j); v == 0 {
			mask[i*numClasses+j] = true
		}
	})

	// Stage 4 (Clamp counts): never-hit cells divide by 1 instead of 0.
	forEachCell(numClasses, func(i, j int) {
		if v, _ := count.At(i, j); v == 0 {
			_ = count.Set(i, j, 1)
		}
	})

	// Stage 5 (Mean): surprise starts as the per-cell mean confidence.
	surprise := weighted.Clone()
	forEachCell(numClasses, func(i, j int) {
		w, _ := surprise.At(i, j)
		c, _ := count.At(i, j)
		_ = surprise.Set(i, j, w/c)
	})

	// Stage 6 (Placeholder): masked cells become 1 so inversion stays finite.
	forEachCell(numClasses, func(i, j int) {
		if mask[i*numClasses+j] {
			_ = surprise.Set(i, j, 1)
		}
	})

	// Stage 7 (Invert).
	forEachCell(numClasses, func(i, j int) {
		v, _ := surprise.At(i, j)
		_ = surprise.Set(i, j, 1/v)
	})

	// Stage 8 (Final clamp): the mask wins over the inverted placeholder.
	forEachCell(numClasses, func(i, j int) {
		if mask[i*numClasses+j] {
			_ = surprise.Set(i, j, 0)
		}
	})

	// Stage 9 (Normalize).
	normalized, err := matrix.NormalizeRows(surprise, o.Epsilon, o.ZeroRows)
	if err != nil {
		return nil, err
	}

	return &WeightedResult{Surprise: surprise, Normalized: normalized}, nil
}

// forEachCell visits every (i, j) of an n×n grid in fixed row-major order.
func forEachCell(n int, fn func(i, j int)) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			fn(i, j)
		}
	}
}
