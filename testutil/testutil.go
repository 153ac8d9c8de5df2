// Package testutil provides deterministic random-data generators and a
// brute-force oracle for exercising the B-WST build and query paths in
// tests without depending on real corpus files.
package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"
)

// RNG wraps a seeded *rand.Rand behind a mutex so the same instance can
// be shared across parallel test helpers while still producing
// reproducible sequences for a fixed seed.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates an RNG seeded deterministically.
func NewRNG(seed int64) *RNG {
	return &RNG{rand: rand.New(rand.NewSource(seed)), seed: seed}
}

// Reset rewinds the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the seed the RNG was constructed with.
func (r *RNG) Seed() int64 { return r.seed }

// Intn returns a pseudo-random int in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVectors generates num vectors of dim dimensions with entries in
// [0, 1), sharing one backing array.
func (r *RNG) UniformVectors(num, dim int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dim)
	vectors := make([][]float32, num)
	for i := 0; i < num; i++ {
		vec := data[i*dim : (i+1)*dim]
		for j := range vec {
			vec[j] = r.rand.Float32()
		}
		vectors[i] = vec
	}
	return vectors
}

// GaussianVectors generates num vectors of dim dimensions drawn from a
// standard normal distribution.
func (r *RNG) GaussianVectors(num, dim int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dim)
	vectors := make([][]float32, num)
	for i := 0; i < num; i++ {
		vec := data[i*dim : (i+1)*dim]
		for j := range vec {
			vec[j] = float32(r.rand.NormFloat64())
		}
		vectors[i] = vec
	}
	return vectors
}

// ClusteredVectors generates num vectors around `clusters` random unit
// centroids, for exercising recall on non-uniform corpora (§8 scenario 5).
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float32) [][]float32 {
	r.mu.Lock()
	centroids := make([][]float32, clusters)
	for c := range centroids {
		centroid := make([]float32, dim)
		var norm float64
		for j := range centroid {
			v := r.rand.NormFloat64()
			centroid[j] = float32(v)
			norm += v * v
		}
		if norm == 0 {
			norm = 1
		}
		inv := float32(1.0 / math.Sqrt(norm))
		for j := range centroid {
			centroid[j] *= inv
		}
		centroids[c] = centroid
	}

	data := make([]float32, num*dim)
	vectors := make([][]float32, num)
	for i := 0; i < num; i++ {
		centroid := centroids[i%clusters]
		vec := data[i*dim : (i+1)*dim]
		for j := range vec {
			vec[j] = centroid[j] + float32(r.rand.NormFloat64())*spread
		}
		vectors[i] = vec
	}
	r.mu.Unlock()
	return vectors
}

// UniformAttributes generates n attribute values uniformly distributed
// in [lo, hi).
func (r *RNG) UniformAttributes(n int, lo, hi float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	attrs := make([]float64, n)
	span := hi - lo
	for i := range attrs {
		attrs[i] = lo + r.rand.Float64()*span
	}
	return attrs
}

// SequentialAttributes generates n attributes equal to their index,
// matching the §8 scenario 2/3 "attributes = i" fixtures.
func SequentialAttributes(n int) []float64 {
	attrs := make([]float64, n)
	for i := range attrs {
		attrs[i] = float64(i)
	}
	return attrs
}

// BruteForceResult is one entry of an exhaustive nearest-neighbor scan.
type BruteForceResult struct {
	OID      int
	Distance float32
}

// BruteForce performs an exact squared-Euclidean nearest-neighbor scan
// over vectors restricted to the ids for which keep(oid) is true (or all
// ids if keep is nil), returning the k closest ascending by distance with
// ties broken by ascending id. It is the reference oracle the beam-search
// path is checked against in tests.
func BruteForce(vectors [][]float32, query []float32, k int, keep func(oid int) bool) []BruteForceResult {
	results := make([]BruteForceResult, 0, len(vectors))
	for i, v := range vectors {
		if keep != nil && !keep(i) {
			continue
		}
		var sum float32
		for j := range v {
			d := v[j] - query[j]
			sum += d * d
		}
		results = append(results, BruteForceResult{OID: i, Distance: sum})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].OID < results[j].OID
	})

	if k >= 0 && len(results) > k {
		results = results[:k]
	}
	return results
}

// Recall computes recall@k: the fraction of groundTruth ids (truncated to
// len(approx) or k, whichever is smaller) that also appear in approx.
func Recall(groundTruth, approx []int) float64 {
	if len(groundTruth) == 0 {
		return 1.0
	}
	k := len(groundTruth)
	if len(approx) < k {
		k = len(approx)
	}
	if k == 0 {
		return 0.0
	}

	truth := make(map[int]struct{}, k)
	for i := 0; i < k; i++ {
		truth[groundTruth[i]] = struct{}{}
	}

	hits := 0
	for _, id := range approx {
		if _, ok := truth[id]; ok {
			hits++
		}
	}
	return float64(hits) / float64(k)
}
