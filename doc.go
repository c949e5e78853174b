// Package imgmetrics implements a family of perceptual image comparison
// kernels for a visual-regression testing toolchain: PixelDiff, SSIM,
// MS-SSIM, GMSD, and HitchhikerSSIM.
//
// Every kernel operates on contiguous RGBA8 buffers supplied by the caller
// — {data, width, height} triples produced by whatever image decoder the
// host application uses — and is a pure, reentrant, synchronous function.
// No kernel performs I/O, logging, or reads the clock; the only shared
// state is a process-wide cache of normalized Gaussian windows keyed by
// (size, sigma).
package imgmetrics
