package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces a non-negative integer edge weight from an optional RNG.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min. A nil rng yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// DistinctWeightFn samples uniformly in [1, limit] and never repeats a value.
//
// The returned closure is stateful: share it across BuildGraph calls and the
// weights stay distinct across all of them. It panics once the range is exhausted.
// A nil rng degrades to the sequence 1, 2, 3, ...
func DistinctWeightFn(limit int64) WeightFn {
	if limit < 1 {
		panic(fmt.Sprintf("DistinctWeightFn: limit must be ≥ 1, got %d", limit))
	}
	used := make(map[int64]struct{})
	var next int64

	return func(rng *rand.Rand) int64 {
		if int64(len(used)) >= limit {
			panic(fmt.Sprintf("DistinctWeightFn: all %d weights used", limit))
		}
		if rng == nil {
			next++
			used[next] = struct{}{}
			return next
		}
		for {
			w := 1 + rng.Int63n(limit)
			if _, dup := used[w]; !dup {
				used[w] = struct{}{}
				return w
			}
		}
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max] via UniformWeightFn.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithDistinctWeights sets pairwise-distinct weights in [1, limit].
func WithDistinctWeights(limit int64) BuilderOption {
	return WithWeightFn(DistinctWeightFn(limit))
}
