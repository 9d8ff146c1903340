package gofft

// MaxFactors bounds the number of butterfly stages a schedule may use.
const MaxFactors = 32

// Algorithm records which butterfly path a schedule requires.
type Algorithm int

const (
	// AlgRadix24 means the schedule uses only radices 2 and 4, with a
	// leading radix-2 silently promoted to radix-8 by the kernel.
	AlgRadix24 Algorithm = iota
	// AlgAny means a generic mixed-radix path would be required. This
	// engine implements only the radix-2/4/8 kernel; factor rejects any N
	// that is not a power of two and never produces an AlgAny schedule,
	// so no plan carries this flag.
	AlgAny
)

// Mode selects how the factorizer builds a schedule.
type Mode int

const (
	// ModeDefault extracts radix-4 stages while the remainder is
	// divisible by 4, recording a leading radix-2 for an odd power of 2.
	ModeDefault Mode = iota
	// ModeEight asks the factorizer to rewrite a schedule so the kernel
	// can fuse a leading radix-2 stage with the following radix-4 stage
	// into a single radix-8 pass. For the power-of-two sizes this engine
	// supports, ModeDefault already produces a schedule in that shape,
	// so ModeEight never changes the result; it exists to mirror the
	// two-mode factorizer the plan allocators call (see plan.go).
	ModeEight
)

// Factors is the stage schedule the butterfly kernel walks. All stages
// after the first are implicitly radix-4 (the restriction the spec
// places on this kernel: radix_i in {2,4}, first entry 2 or 4), so the
// schedule only needs to record the leading radix and the stage count;
// FStride and the per-stage mstride/fstride progression follow from
// those two numbers and N.
type Factors struct {
	N          int
	StageCount int
	FStride    int // N / FirstRadix, the first stage's butterfly stride
	FirstRadix int // 2 or 4
	Algorithm  Algorithm
}

// factor decomposes n into a radix-2/4 stage schedule.
func factor(n int, mode Mode) (Factors, error) {
	if n < 1 {
		return Factors{}, &FactorError{N: n, Reason: "N must be positive"}
	}
	if n == 1 {
		return Factors{N: 1, StageCount: 1, FStride: 1, FirstRadix: 1, Algorithm: AlgRadix24}, nil
	}

	p := n
	stageCount := 0
	for p%4 == 0 {
		p /= 4
		stageCount++
	}

	var firstRadix int
	switch p {
	case 1:
		firstRadix = 4
	case 2:
		stageCount++
		firstRadix = 2
	default:
		// Not reducible to pure radix-2/4 stages (N is not a power of 2).
		return Factors{}, &FactorError{N: n, Reason: "N is not a power of 2"}
	}

	if stageCount > MaxFactors {
		return Factors{}, &FactorError{N: n, Reason: "factor count exceeds MaxFactors"}
	}

	// mode is read here only for documentation fidelity: see ModeEight's
	// comment above for why it never changes the outcome on this domain.
	_ = mode

	return Factors{
		N:          n,
		StageCount: stageCount,
		FStride:    n / firstRadix,
		FirstRadix: firstRadix,
		Algorithm:  AlgRadix24,
	}, nil
}
