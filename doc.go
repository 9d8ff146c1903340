// Package gofft provides a single-precision, power-of-two, mixed-radix
// decimation-in-time FFT engine.
//
// It implements complex-to-complex, real-to-complex, and
// complex-to-real transforms using a radix-4 algorithm with a leading
// radix-2 stage promoted to radix-8 where applicable. All transforms
// run strictly out-of-place: a plan owns its twiddle tables and scratch
// buffer once, constructed by NewPlanC2C or NewPlanR2C, and is reused
// across any number of TransformC2C, TransformR2C, or TransformC2R
// calls at that size. A Plan is not safe for concurrent use by more
// than one goroutine at a time; build one Plan per goroutine, or guard
// a shared Plan with your own lock.
//
// Output is in natural order; no bit-reversal permutation is performed
// or required by the caller. Forward transforms are unscaled; inverse
// transforms are scaled by 1/N.
package gofft
