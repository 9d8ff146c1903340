package gofft

// This file implements the mixed-radix-4/8 decimation-in-time butterfly
// kernel shared by the C2C, R2C, and C2R paths (TransformR2C and
// TransformC2R in transform.go call it on an N/2-point complex transform
// around the split steps in split.go, same as TransformC2C calls it on
// the full N-point one). At each stage, fstride holds the
// number of butterfly sections left to process and mstride holds the
// number of butterflies performed within each section; mstride and
// fstride move inversely (mstride *= 4, fstride /= 4) as the kernel
// walks from the first stage to the last. The first stage is special:
// it has no incoming twiddles, and when the schedule's leading radix is
// 2, it is fused with the radix-4 stage that would otherwise follow it
// into a single radix-8 pass, matching the promotion the factors always
// perform for this engine's schedules.
//
// Every stage after the first writes its output into the opposite
// buffer from the one it read (ping-ponging between the caller's output
// slice and the plan's scratch slice); the last stage always writes
// into the caller's output slice, whichever buffer currently holds the
// input for it.

// combineRadix4Forward applies the forward-direction radix-4 combine to
// four already twiddle-multiplied (or raw, for the first stage) inputs.
func combineRadix4Forward(a, b, c, d Complex) (Complex, Complex, Complex, Complex) {
	s0 := a.Add(c)
	s1 := a.Sub(c)
	s2 := b.Add(d)
	s3 := b.Sub(d)
	return s0.Add(s2), s1.Add(s3.MulNegI()), s0.Sub(s2), s1.Add(s3.MulPosI())
}

// combineRadix4Inverse is combineRadix4Forward with the rotation signs
// swapped for the inverse transform.
func combineRadix4Inverse(a, b, c, d Complex) (Complex, Complex, Complex, Complex) {
	s0 := a.Add(c)
	s1 := a.Sub(c)
	s2 := b.Add(d)
	s3 := b.Sub(d)
	return s0.Add(s2), s1.Add(s3.MulPosI()), s0.Sub(s2), s1.Add(s3.MulNegI())
}

// radix8Forward computes the fused radix-2-into-radix-8 first stage for
// eight strided input samples, (p0,p1)..(p6,p7) being the four
// X[k] +/- X[k+N/2] pairs in ascending k order.
func radix8Forward(p0, p1, p2, p3, p4, p5, p6, p7 Complex) (o0, o1, o2, o3, o4, o5, o6, o7 Complex) {
	sum0, diff0 := p0.Add(p1), p0.Sub(p1)
	sum1, diff1 := p2.Add(p3), p2.Sub(p3)
	sum2, diff2 := p4.Add(p5), p4.Sub(p5)
	sum3, diff3 := p6.Add(p7), p6.Sub(p7)

	a0, a1, a2 := sum0, diff0, sum1
	a3 := mulT8Minus(diff1)
	a4, a5, a6 := sum2, diff2.MulNegI(), sum3
	a7 := mulT8Plus(diff3)

	b8, b9 := a0.Add(a4), a1.Add(a5)
	b10, b11 := a0.Sub(a4), a1.Sub(a5)
	b12, b13 := a2.Add(a6), a3.Sub(a7)
	b14, b15 := a2.Sub(a6), a3.Add(a7)

	o0 = b8.Add(b12)
	o1 = b9.Add(b13)
	o2 = b10.Add(b14.MulNegI())
	o3 = b11.Add(b15.MulNegI())
	o4 = b8.Sub(b12)
	o5 = b9.Sub(b13)
	o6 = b10.Add(b14.MulPosI())
	o7 = b11.Add(b15.MulPosI())
	return
}

// radix8Inverse is radix8Forward with the inverse-direction sign swaps.
func radix8Inverse(p0, p1, p2, p3, p4, p5, p6, p7 Complex) (o0, o1, o2, o3, o4, o5, o6, o7 Complex) {
	sum0, diff0 := p0.Add(p1), p0.Sub(p1)
	sum1, diff1 := p2.Add(p3), p2.Sub(p3)
	sum2, diff2 := p4.Add(p5), p4.Sub(p5)
	sum3, diff3 := p6.Add(p7), p6.Sub(p7)

	a0, a1, a2 := sum0, diff0, sum1
	a3 := mulT8Plus(diff1)
	a4, a5, a6 := sum2, diff2.MulPosI(), sum3
	a7 := mulT8Minus(diff3)

	b8, b9 := a0.Add(a4), a1.Add(a5)
	b10, b11 := a0.Sub(a4), a1.Sub(a5)
	b12, b13 := a2.Add(a6), a3.Sub(a7)
	b14, b15 := a2.Sub(a6), a3.Add(a7)

	o0 = b8.Add(b12)
	o1 = b9.Add(b13)
	o2 = b10.Add(b14.MulPosI())
	o3 = b11.Add(b15.MulPosI())
	o4 = b8.Sub(b12)
	o5 = b9.Sub(b13)
	o6 = b10.Add(b14.MulNegI())
	o7 = b11.Add(b15.MulNegI())
	return
}

// butterflyForward transforms in into out (forward direction, unscaled)
// using scratch as ping-pong scratch space. out, in, and scratch must
// each have length f.N, with out and in distinct slices.
func butterflyForward(out, in, scratch []Complex, f Factors, twiddles []Complex) {
	if f.N == 1 {
		out[0] = in[0]
		return
	}
	if f.FirstRadix == 2 && f.StageCount == 1 {
		// N == 2: no radix-4 partner stage exists to fuse into radix-8.
		out[0] = in[0].Add(in[1])
		out[1] = in[0].Sub(in[1])
		return
	}

	stageCount, fstride := f.StageCount, f.FStride
	var mstride, step int

	if f.FirstRadix == 2 {
		fstride1 := fstride / 4
		for fc := 0; fc < fstride1; fc++ {
			d := out[fc*8 : fc*8+8]
			d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7] = radix8Forward(
				in[fc], in[fc+fstride],
				in[fc+fstride1], in[fc+fstride1+fstride],
				in[fc+2*fstride1], in[fc+2*fstride1+fstride],
				in[fc+3*fstride1], in[fc+3*fstride1+fstride],
			)
		}
		step = fstride >> 1
		mstride = 8
		fstride /= 16
		stageCount -= 2
		twiddles = twiddles[6:]
	} else {
		for fc := 0; fc < fstride; fc++ {
			o0, o1, o2, o3 := combineRadix4Forward(in[fc], in[fc+fstride], in[fc+2*fstride], in[fc+3*fstride])
			out[fc*4], out[fc*4+1], out[fc*4+2], out[fc*4+3] = o0, o1, o2, o3
		}
		step = fstride
		mstride = 4
		stageCount--
		fstride /= 4
	}

	curIn, curOut := out, scratch

	for ; stageCount > 1; stageCount-- {
		for fc := 0; fc < fstride; fc++ {
			srcBase := fc * mstride
			dstBase := fc * mstride * 4
			tw := twiddles
			for mc := 0; mc < mstride; mc++ {
				i0 := curIn[srcBase+mc]
				i1 := curIn[srcBase+mc+step]
				i2 := curIn[srcBase+mc+2*step]
				i3 := curIn[srcBase+mc+3*step]
				t0, t1, t2 := tw[mc], tw[mc+mstride], tw[mc+2*mstride]
				o0, o1, o2, o3 := combineRadix4Forward(i0, i1.Mul(t0), i2.Mul(t1), i3.Mul(t2))
				curOut[dstBase+mc] = o0
				curOut[dstBase+mc+mstride] = o1
				curOut[dstBase+mc+2*mstride] = o2
				curOut[dstBase+mc+3*mstride] = o3
			}
		}
		twiddles = twiddles[mstride*3:]
		mstride *= 4
		fstride /= 4
		curIn, curOut = curOut, curIn
	}

	if stageCount > 0 {
		for fc := 0; fc < fstride; fc++ {
			base := fc * mstride
			tw := twiddles
			for mc := 0; mc < mstride; mc++ {
				i0 := curIn[base+mc]
				i1 := curIn[base+mc+step]
				i2 := curIn[base+mc+2*step]
				i3 := curIn[base+mc+3*step]
				t0, t1, t2 := tw[mc], tw[mc+mstride], tw[mc+2*mstride]
				o0, o1, o2, o3 := combineRadix4Forward(i0, i1.Mul(t0), i2.Mul(t1), i3.Mul(t2))
				out[base+mc] = o0
				out[base+mc+step] = o1
				out[base+mc+2*step] = o2
				out[base+mc+3*step] = o3
			}
		}
	}
}

// butterflyInverse is butterflyForward's inverse-direction counterpart.
// Scaling by 1/N is applied separately by the caller (see transform.go)
// rather than folded into the last stage, so both directions share one
// normalization convention regardless of which stage happens to be last.
func butterflyInverse(out, in, scratch []Complex, f Factors, twiddles []Complex) {
	if f.N == 1 {
		out[0] = in[0]
		return
	}
	if f.FirstRadix == 2 && f.StageCount == 1 {
		out[0] = in[0].Add(in[1])
		out[1] = in[0].Sub(in[1])
		return
	}

	stageCount, fstride := f.StageCount, f.FStride
	var mstride, step int

	if f.FirstRadix == 2 {
		fstride1 := fstride / 4
		for fc := 0; fc < fstride1; fc++ {
			d := out[fc*8 : fc*8+8]
			d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7] = radix8Inverse(
				in[fc], in[fc+fstride],
				in[fc+fstride1], in[fc+fstride1+fstride],
				in[fc+2*fstride1], in[fc+2*fstride1+fstride],
				in[fc+3*fstride1], in[fc+3*fstride1+fstride],
			)
		}
		step = fstride >> 1
		mstride = 8
		fstride /= 16
		stageCount -= 2
		twiddles = twiddles[6:]
	} else {
		for fc := 0; fc < fstride; fc++ {
			o0, o1, o2, o3 := combineRadix4Inverse(in[fc], in[fc+fstride], in[fc+2*fstride], in[fc+3*fstride])
			out[fc*4], out[fc*4+1], out[fc*4+2], out[fc*4+3] = o0, o1, o2, o3
		}
		step = fstride
		mstride = 4
		stageCount--
		fstride /= 4
	}

	curIn, curOut := out, scratch

	for ; stageCount > 1; stageCount-- {
		for fc := 0; fc < fstride; fc++ {
			srcBase := fc * mstride
			dstBase := fc * mstride * 4
			tw := twiddles
			for mc := 0; mc < mstride; mc++ {
				i0 := curIn[srcBase+mc]
				i1 := curIn[srcBase+mc+step]
				i2 := curIn[srcBase+mc+2*step]
				i3 := curIn[srcBase+mc+3*step]
				t0, t1, t2 := tw[mc], tw[mc+mstride], tw[mc+2*mstride]
				o0, o1, o2, o3 := combineRadix4Inverse(i0, i1.MulConj(t0), i2.MulConj(t1), i3.MulConj(t2))
				curOut[dstBase+mc] = o0
				curOut[dstBase+mc+mstride] = o1
				curOut[dstBase+mc+2*mstride] = o2
				curOut[dstBase+mc+3*mstride] = o3
			}
		}
		twiddles = twiddles[mstride*3:]
		mstride *= 4
		fstride /= 4
		curIn, curOut = curOut, curIn
	}

	if stageCount > 0 {
		for fc := 0; fc < fstride; fc++ {
			base := fc * mstride
			tw := twiddles
			for mc := 0; mc < mstride; mc++ {
				i0 := curIn[base+mc]
				i1 := curIn[base+mc+step]
				i2 := curIn[base+mc+2*step]
				i3 := curIn[base+mc+3*step]
				t0, t1, t2 := tw[mc], tw[mc+mstride], tw[mc+2*mstride]
				o0, o1, o2, o3 := combineRadix4Inverse(i0, i1.MulConj(t0), i2.MulConj(t1), i3.MulConj(t2))
				out[base+mc] = o0
				out[base+mc+step] = o1
				out[base+mc+2*step] = o2
				out[base+mc+3*step] = o3
			}
		}
	}
}
