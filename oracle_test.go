package gofft

import (
	"math"
	"math/rand"
	"testing"

	dspfft "github.com/mjibson/go-dsp/fft"
	ktyefft "github.com/ktye/fft"
	gonumfft "gonum.org/v1/gonum/dsp/fourier"
	scientificfft "scientificgo.org/fft"
)

// benchmarks mirrors the size table the teacher package benchmarks
// against, extended with the radix-8-promotion sizes this engine cares
// about (2^odd).
var benchmarks = []struct {
	size int
	name string
}{
	{2, "2"},
	{4, "4"},
	{8, "8"},
	{16, "16"},
	{32, "32"},
	{64, "64"},
	{128, "128"},
	{256, "256"},
	{1024, "1024"},
	{4096, "4096"},
}

func complexRand128(n int, r *rand.Rand) []complex128 {
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(r.NormFloat64(), r.NormFloat64())
	}
	return x
}

func toComplex128(x []Complex) []complex128 {
	y := make([]complex128, len(x))
	for i, c := range x {
		y[i] = complex(float64(c.R), float64(c.I))
	}
	return y
}

func fromComplex128(x []complex128) []Complex {
	y := make([]Complex, len(x))
	for i, c := range x {
		y[i] = Complex{R: float32(real(c)), I: float32(imag(c))}
	}
	return y
}

func maxAbsDiff(a, b []complex128) float64 {
	var worst float64
	for i := range a {
		d := math.Hypot(real(a[i])-real(b[i]), imag(a[i])-imag(b[i]))
		if d > worst {
			worst = d
		}
	}
	return worst
}

// TestAgainstGonum differentially tests this engine's forward C2C
// transform against gonum.org/v1/gonum/dsp/fourier's CmplxFFT.
func TestAgainstGonum(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, bm := range benchmarks {
		x128 := complexRand128(bm.size, r)

		want := gonumfft.NewCmplxFFT(bm.size).Coefficients(nil, x128)

		plan := mustC2C(t, bm.size)
		got := make([]Complex, bm.size)
		if err := TransformC2C(plan, got, fromComplex128(x128), false); err != nil {
			t.Fatalf("N=%d: TransformC2C: %v", bm.size, err)
		}

		if d := maxAbsDiff(want, toComplex128(got)); d > 1e-1 {
			t.Errorf("N=%d: max abs diff vs gonum = %v", bm.size, d)
		}
	}
}

// TestAgainstGoDSP differentially tests the forward C2C transform
// against github.com/mjibson/go-dsp/fft.
func TestAgainstGoDSP(t *testing.T) {
	r := rand.New(rand.NewSource(43))
	for _, bm := range benchmarks {
		x128 := complexRand128(bm.size, r)

		dspfft.EnsureRadix2Factors(bm.size)
		want := dspfft.FFT(append([]complex128(nil), x128...))

		plan := mustC2C(t, bm.size)
		got := make([]Complex, bm.size)
		if err := TransformC2C(plan, got, fromComplex128(x128), false); err != nil {
			t.Fatalf("N=%d: TransformC2C: %v", bm.size, err)
		}

		if d := maxAbsDiff(want, toComplex128(got)); d > 1e-1 {
			t.Errorf("N=%d: max abs diff vs go-dsp = %v", bm.size, d)
		}
	}
}

// TestAgainstScientificGo differentially tests the forward C2C
// transform against scientificgo.org/fft.
func TestAgainstScientificGo(t *testing.T) {
	r := rand.New(rand.NewSource(44))
	for _, bm := range benchmarks {
		if bm.size > 1024 {
			continue // keep this oracle's comparatively slow path cheap
		}
		x128 := complexRand128(bm.size, r)

		want := scientificfft.Fft(append([]complex128(nil), x128...), false)

		plan := mustC2C(t, bm.size)
		got := make([]Complex, bm.size)
		if err := TransformC2C(plan, got, fromComplex128(x128), false); err != nil {
			t.Fatalf("N=%d: TransformC2C: %v", bm.size, err)
		}

		if d := maxAbsDiff(want, toComplex128(got)); d > 1e-1 {
			t.Errorf("N=%d: max abs diff vs scientificgo = %v", bm.size, d)
		}
	}
}

// TestAgainstKtye differentially tests the forward C2C transform
// against github.com/ktye/fft's in-place Transform.
func TestAgainstKtye(t *testing.T) {
	r := rand.New(rand.NewSource(45))
	for _, bm := range benchmarks {
		f, err := ktyefft.New(bm.size)
		if err != nil {
			t.Fatalf("ktyefft.New(%d): %v", bm.size, err)
		}
		x128 := complexRand128(bm.size, r)
		want := append([]complex128(nil), x128...)
		f.Transform(want)

		plan := mustC2C(t, bm.size)
		got := make([]Complex, bm.size)
		if err := TransformC2C(plan, got, fromComplex128(x128), false); err != nil {
			t.Fatalf("N=%d: TransformC2C: %v", bm.size, err)
		}

		if d := maxAbsDiff(want, toComplex128(got)); d > 1e-1 {
			t.Errorf("N=%d: max abs diff vs ktye = %v", bm.size, d)
		}
	}
}

func BenchmarkFFT(b *testing.B) {
	for _, bm := range benchmarks {
		plan, err := NewPlanC2C(bm.size)
		if err != nil {
			b.Fatalf("NewPlanC2C(%d): %v", bm.size, err)
		}
		r := rand.New(rand.NewSource(int64(bm.size)))
		x := randComplex(bm.size, r)
		out := make([]Complex, bm.size)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 8))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = TransformC2C(plan, out, x, false)
			}
		})
	}
}

func BenchmarkGonumFFT(b *testing.B) {
	for _, bm := range benchmarks {
		fft := gonumfft.NewCmplxFFT(bm.size)
		r := rand.New(rand.NewSource(int64(bm.size)))
		x := complexRand128(bm.size, r)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				fft.Coefficients(x, x)
			}
		})
	}
}

func BenchmarkGoDSPFFT(b *testing.B) {
	for _, bm := range benchmarks {
		dspfft.EnsureRadix2Factors(bm.size)
		r := rand.New(rand.NewSource(int64(bm.size)))
		x := complexRand128(bm.size, r)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				dspfft.FFT(x)
			}
		})
	}
}
