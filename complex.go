package gofft

// Complex is a single-precision complex sample, value semantics, no identity.
type Complex struct {
	R float32
	I float32
}

// Add returns c+d.
func (c Complex) Add(d Complex) Complex {
	return Complex{c.R + d.R, c.I + d.I}
}

// Sub returns c-d.
func (c Complex) Sub(d Complex) Complex {
	return Complex{c.R - d.R, c.I - d.I}
}

// Mul returns c*d using the standard complex product.
func (c Complex) Mul(d Complex) Complex {
	return Complex{c.R*d.R - c.I*d.I, c.R*d.I + c.I*d.R}
}

// MulConj returns c*conj(d), the multiply used by inverse-direction twiddles.
func (c Complex) MulConj(d Complex) Complex {
	return Complex{c.R*d.R + c.I*d.I, c.I*d.R - c.R*d.I}
}

// MulNegI returns c*(-i): swap real/imaginary and negate the new imaginary part.
func (c Complex) MulNegI() Complex {
	return Complex{c.I, -c.R}
}

// MulPosI returns c*(+i): swap real/imaginary and negate the new real part.
func (c Complex) MulPosI() Complex {
	return Complex{-c.I, c.R}
}

// tw81 is T8 = sqrt(2)/2, the hardcoded radix-8 twiddle magnitude.
const tw81 = 0.70710678

// mulT8Minus returns c*(T8 - T8*i) without a general complex multiply.
func mulT8Minus(c Complex) Complex {
	return Complex{(c.R + c.I) * tw81, (c.I - c.R) * tw81}
}

// mulT8Plus returns c*(T8 + T8*i) without a general complex multiply.
func mulT8Plus(c Complex) Complex {
	return Complex{(c.R - c.I) * tw81, (c.I + c.R) * tw81}
}
