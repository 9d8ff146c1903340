package gofft

// splitR2C turns the ncfft-point complex FFT of a packed real signal
// (two real samples per complex input slot) into the first ncfft+1
// complex bins of the real signal's own 2*ncfft-point spectrum. src and
// dst must not alias; dst must have length ncfft+1, src length ncfft.
func splitR2C(dst, src, superTwiddles []Complex, ncfft int) {
	tdc := src[0]
	dst[0] = Complex{R: tdc.R + tdc.I, I: 0}
	dst[ncfft] = Complex{R: tdc.R - tdc.I, I: 0}

	for k := 1; k <= ncfft/2; k++ {
		fpk := src[k]
		fpnk := Complex{R: src[ncfft-k].R, I: -src[ncfft-k].I}

		f1k := fpk.Add(fpnk)
		f2k := fpk.Sub(fpnk)

		tw := f2k.Mul(superTwiddles[k-1])

		dst[k] = Complex{R: (f1k.R + tw.R) * 0.5, I: (f1k.I + tw.I) * 0.5}
		dst[ncfft-k] = Complex{R: (f1k.R - tw.R) * 0.5, I: (tw.I - f1k.I) * 0.5}
	}
}

// splitC2R is splitR2C's inverse: it turns the compact ncfft+1-bin
// spectrum of a real signal into the ncfft-point complex sequence whose
// inverse FFT recovers that signal (packed two reals per slot). src
// must have length ncfft+1, dst length ncfft.
func splitC2R(dst, src, superTwiddles []Complex, ncfft int) {
	dst[0] = Complex{
		R: (src[0].R + src[ncfft].R) * 0.5,
		I: (src[0].R - src[ncfft].R) * 0.5,
	}

	for k := 1; k <= ncfft/2; k++ {
		fk := src[k]
		fnkc := Complex{R: src[ncfft-k].R, I: -src[ncfft-k].I}

		fek := fk.Add(fnkc)
		tmp := fk.Sub(fnkc)

		fok := tmp.MulConj(superTwiddles[k-1])

		dst[k] = Complex{R: (fek.R + fok.R) * 0.5, I: (fek.I + fok.I) * 0.5}
		dst[ncfft-k] = Complex{R: (fek.R - fok.R) * 0.5, I: (fok.I - fek.I) * 0.5}
	}
}

// packReal reinterprets an even-length real signal as ncfft complex
// samples, two reals per slot, the packing ne10_fft_r2c_1d_float32_c
// gets from casting its float pointer to a complex one.
func packReal(dst []Complex, src []float32) {
	for i := range dst {
		dst[i] = Complex{R: src[2*i], I: src[2*i+1]}
	}
}

// unpackReal is packReal's inverse.
func unpackReal(dst []float32, src []Complex) {
	for i, c := range src {
		dst[2*i] = c.R
		dst[2*i+1] = c.I
	}
}
