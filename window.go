package imgmetrics

import (
	"math"
	"sync"
)

// gaussianKey is the process-wide window cache's key, per §4.4/§9.
type gaussianKey struct {
	k     int
	sigma float64
}

var gaussianCache sync.Map // gaussianKey -> []float32

// cachedGaussianWindow returns the memoized, sum-normalized 1-D Gaussian
// window of size k and standard deviation sigma, computing and storing it
// on first use. sync.Map's LoadOrStore gives the lock-free single-writer
// protocol the concurrency model (§5/§9) calls for.
func cachedGaussianWindow(k int, sigma float64) []float32 {
	key := gaussianKey{k, sigma}
	if v, ok := gaussianCache.Load(key); ok {
		return v.([]float32)
	}
	w := gaussianWindow(k, sigma)
	actual, _ := gaussianCache.LoadOrStore(key, w)
	return actual.([]float32)
}

// gaussianWindow computes a sum-normalized 1-D Gaussian window, per §4.4.
func gaussianWindow(k int, sigma float64) []float32 {
	w := make([]float32, k)
	c := float64(k-1) / 2
	var sum float64
	for i := 0; i < k; i++ {
		v := math.Exp(-((float64(i) - c) * (float64(i) - c)) / (2 * sigma * sigma))
		w[i] = float32(v)
		sum += v
	}
	for i := range w {
		w[i] = float32(float64(w[i]) / sum)
	}
	return w
}

// boxWeights returns the 1-D box window of size k: each weight 1/k.
func boxWeights(k int) []float32 {
	w := make([]float32, k)
	v := float32(1.0 / float64(k))
	for i := range w {
		w[i] = v
	}
	return w
}
