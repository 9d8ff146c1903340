package gofft

import "fmt"

// SizeError reports that a vector or buffer did not have the size the
// engine requires.
type SizeError struct {
	What     string
	Expected string
	Got      int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("gofft: size of %s must be %s, is: %d", e.What, e.Expected, e.Got)
}

// FactorError reports that a plan's FFT size could not be factored into
// the engine's radix-2/4/8 schedule.
type FactorError struct {
	N      int
	Reason string
}

func (e *FactorError) Error() string {
	return fmt.Sprintf("gofft: cannot factor N=%d: %s", e.N, e.Reason)
}
