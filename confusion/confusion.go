package confusion

import "github.com/mkravets/biaskit/matrix"

// validateLabels checks the shared input contract of both builders:
// a positive class count, equal-length sequences, and every label inside
// [0, numClasses). Runs before any allocation so a failed call computes
// nothing.
func validateLabels(numClasses int, targets, biases []int) error {
	if numClasses <= 0 {
		return ErrBadClassCount
	}
	if len(targets) != len(biases) {
		return ErrLengthMismatch
	}
	for i := range targets {
		if targets[i] < 0 || targets[i] >= numClasses {
			return ErrLabelOutOfRange
		}
		if biases[i] < 0 || biases[i] >= numClasses {
			return ErrLabelOutOfRange
		}
	}

	return nil
}

// Matrices builds the supervised co-occurrence matrices between target and
// bias labels.
//
// Algorithm Outline:
//  1. Validate: numClasses > 0, len(targets) == len(biases), all labels in range.
//  2. Accumulate in a single pass over the zipped pairs:
//     raw[bias][target] += 1 and byTarget[target][bias] += 1.
//  3. Row-normalize raw (rows = bias labels) and byTarget (rows = target
//     labels) under opts.ZeroRows / opts.Epsilon.
//
// The two accumulators are independent; NormalizedByTarget is not derived
// by transposing Raw. Accumulation is order-independent, so permuting the
// input pairs yields identical matrices.
//
// A nil opts means DefaultOptions().
//
// Example:
//
//	res, err := confusion.Matrices(2, []int{0, 0, 1, 1}, []int{0, 1, 0, 1}, nil)
//	// res.Raw == [[1, 1], [1, 1]], res.Normalized == [[0.5, 0.5], [0.5, 0.5]]
func Matrices(numClasses int, targets, biases []int, opts *Options) (*Result, error) {
	if err := validateLabels(numClasses, targets, biases); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Shape was validated above; constructor and Add cannot fail past this point.
	raw, _ := matrix.NewSquare(numClasses)
	byTarget, _ := matrix.NewSquare(numClasses)
	for i, t := range targets {
		b := biases[i]
		_ = raw.Add(b, t, 1)
		_ = byTarget.Add(t, b, 1)
	}

	normalized, err := matrix.NormalizeRows(raw, o.Epsilon, o.ZeroRows)
	if err != nil {
		return nil, err
	}
	normalizedBy, err := matrix.NormalizeRows(byTarget, o.Epsilon, o.ZeroRows)
	if err != nil {
		return nil, err
	}

	return &Result{Raw: raw, Normalized: normalized, NormalizedByTarget: normalizedBy}, nil
}
