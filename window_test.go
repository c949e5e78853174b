package imgmetrics

import "testing"

func TestGaussianWindowSumsToOne(t *testing.T) {
	w := gaussianWindow(11, 1.5)
	if len(w) != 11 {
		t.Fatalf("len(window) = %d, want 11", len(w))
	}
	var sum float64
	for _, v := range w {
		sum += float64(v)
	}
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("gaussianWindow sums to %v, want ~1", sum)
	}
}

func TestGaussianWindowIsSymmetric(t *testing.T) {
	w := gaussianWindow(11, 1.5)
	for i := 0; i < len(w)/2; i++ {
		j := len(w) - 1 - i
		if diff := float64(w[i]) - float64(w[j]); diff > 1e-6 || diff < -1e-6 {
			t.Errorf("gaussianWindow not symmetric at %d/%d: %v != %v", i, j, w[i], w[j])
		}
	}
}

func TestCachedGaussianWindowReturnsSameBackingArray(t *testing.T) {
	a := cachedGaussianWindow(11, 1.5)
	b := cachedGaussianWindow(11, 1.5)
	if &a[0] != &b[0] {
		t.Error("cachedGaussianWindow did not reuse the cached slice for the same key")
	}
}

func TestCachedGaussianWindowDistinctKeysDistinctSlices(t *testing.T) {
	a := cachedGaussianWindow(9, 1.5)
	b := cachedGaussianWindow(11, 1.5)
	if len(a) == len(b) {
		t.Error("distinct window sizes produced same-length slices")
	}
}

func TestBoxWeightsSumToOne(t *testing.T) {
	w := boxWeights(4)
	var sum float64
	for _, v := range w {
		sum += float64(v)
	}
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("boxWeights sums to %v, want ~1", sum)
	}
}
