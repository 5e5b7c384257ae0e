package confusion_test

import (
	"testing"

	"github.com/mkravets/biaskit/confusion"
)

// benchInputs builds n examples spread deterministically over k classes.
func benchInputs(n, k int) (targets, biases []int, marginals []float64) {
	targets = make([]int, n)
	biases = make([]int, n)
	marginals = make([]float64, n)
	for i := 0; i < n; i++ {
		targets[i] = i % k
		biases[i] = (i * 7) % k // co-prime stride spreads pairs across cells
		marginals[i] = float64(i%10)/10 + 0.05
	}
	return targets, biases, marginals
}

// BenchmarkMatrices_Small benchmarks the supervised builder on 1k examples, 10 classes.
func BenchmarkMatrices_Small(b *testing.B) {
	targets, biases, _ := benchInputs(1_000, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := confusion.Matrices(10, targets, biases, nil); err != nil {
			b.Fatalf("Matrices failed: %v", err)
		}
	}
}

// BenchmarkMatrices_Large benchmarks the supervised builder on 100k examples, 100 classes.
func BenchmarkMatrices_Large(b *testing.B) {
	targets, biases, _ := benchInputs(100_000, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := confusion.Matrices(100, targets, biases, nil); err != nil {
			b.Fatalf("Matrices failed: %v", err)
		}
	}
}

// BenchmarkWeightedMatrices_Small benchmarks the estimator on 1k examples, 10 classes.
func BenchmarkWeightedMatrices_Small(b *testing.B) {
	targets, biases, marginals := benchInputs(1_000, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := confusion.WeightedMatrices(10, targets, biases, marginals, nil); err != nil {
			b.Fatalf("WeightedMatrices failed: %v", err)
		}
	}
}

// BenchmarkWeightedMatrices_Large benchmarks the estimator on 100k examples, 100 classes.
func BenchmarkWeightedMatrices_Large(b *testing.B) {
	targets, biases, marginals := benchInputs(100_000, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := confusion.WeightedMatrices(100, targets, biases, marginals, nil); err != nil {
			b.Fatalf("WeightedMatrices failed: %v", err)
		}
	}
}
