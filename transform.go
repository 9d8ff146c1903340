package gofft

// TransformC2C computes a complex-to-complex FFT of plan.N points,
// reading in and writing out. in and out must each have length plan.N
// and must not share a backing array. When inverse is true, the result
// is additionally scaled by 1/N (see PlanC2C's doc and SPEC_FULL.md's
// notes on the forward/inverse scaling asymmetry this engine preserves
// from its origin).
func TransformC2C(plan *PlanC2C, out, in []Complex, inverse bool) error {
	if len(in) != plan.N {
		return &SizeError{What: "C2C input", Expected: "plan.N", Got: len(in)}
	}
	if len(out) != plan.N {
		return &SizeError{What: "C2C output", Expected: "plan.N", Got: len(out)}
	}

	if inverse {
		butterflyInverse(out, in, plan.scratch, plan.factors, plan.twiddles)
		scale := float32(1) / float32(plan.N)
		for i := range out {
			out[i].R *= scale
			out[i].I *= scale
		}
		return nil
	}

	butterflyForward(out, in, plan.scratch, plan.factors, plan.twiddles)
	return nil
}

// TransformR2C computes the real-to-complex FFT of plan.N real samples,
// writing the conjugate-symmetric-compact spectrum (plan.Ncfft+1 bins:
// DC through Nyquist) into out. in must have length plan.N, out length
// plan.Ncfft+1.
func TransformR2C(plan *PlanR2C, out []Complex, in []float32) error {
	if len(in) != plan.N {
		return &SizeError{What: "R2C input", Expected: "plan.N", Got: len(in)}
	}
	if len(out) != plan.Ncfft+1 {
		return &SizeError{What: "R2C output", Expected: "plan.Ncfft+1", Got: len(out)}
	}

	packed := plan.scratchC
	packReal(packed, in)
	butterflyForward(plan.scratchA, packed, plan.scratchB, plan.factors, plan.twiddles)
	splitR2C(out, plan.scratchA, plan.superTwiddles, plan.Ncfft)
	return nil
}

// TransformC2R computes the complex-to-real inverse FFT recovering
// plan.N real samples from their conjugate-symmetric-compact spectrum.
// in must have length plan.Ncfft+1, out length plan.N. The result is
// scaled by 1/Ncfft, mirroring TransformC2C's inverse-direction scaling.
func TransformC2R(plan *PlanR2C, out []float32, in []Complex) error {
	if len(in) != plan.Ncfft+1 {
		return &SizeError{What: "C2R input", Expected: "plan.Ncfft+1", Got: len(in)}
	}
	if len(out) != plan.N {
		return &SizeError{What: "C2R output", Expected: "plan.N", Got: len(out)}
	}

	splitC2R(plan.scratchA, in, plan.superTwiddles, plan.Ncfft)
	butterflyInverse(plan.scratchC, plan.scratchA, plan.scratchB, plan.factors, plan.twiddles)

	scale := float32(1) / float32(plan.Ncfft)
	for i := range plan.scratchC {
		plan.scratchC[i].R *= scale
		plan.scratchC[i].I *= scale
	}
	unpackReal(out, plan.scratchC)
	return nil
}
