package field

// Fp2 is an element of GF(p^2) = GF(p)[i]/(i^2 + 1), represented as
// A + i*B. Both components follow the GF(p) conventions (Montgomery
// representation, range [0, 2p)).
type Fp2 struct {
	A Fp
	B Fp
}

// Internal function for GF(p^2) multiplication. The Karatsuba
// formulas are evaluated on double-width integers, with only two
// Montgomery reductions:
//   real = a0*b0 - a1*b1            (plus p*R if negative)
//   imag = (a0+a1)*(b0+b1) - a0*b0 - a1*b1
// All sums are unreduced (below 4p), so that products stay below 16p^2,
// which is lower than p*R for all supported primes.
func fp2_mul(pr *Prime, d, a, b *Fp2) {
	var t1, t2 Fp
	var m0, m1, m2 FpX2
	mp_add(pr, &t1, &a.A, &a.B)
	mp_add(pr, &t2, &b.A, &b.B)
	mp_mul(pr, &m0, &a.A, &b.A)
	mp_mul(pr, &m1, &a.B, &b.B)
	mp_mul(pr, &m2, &t1, &t2)
	mp2_sub(pr, &m2, &m2, &m0)
	mp2_sub(pr, &m2, &m2, &m1)
	mp2_sub_p(pr, &m0, &m0, &m1)
	rdc_mont(pr, &d.A, &m0)
	rdc_mont(pr, &d.B, &m2)
}

// Internal function for GF(p^2) squaring:
//   real = (a0+a1)*(a0-a1)
//   imag = 2*a0*a1
func fp2_sqr(pr *Prime, d, a *Fp2) {
	var t1, t2, t3 Fp
	var m0, m1 FpX2
	mp_add(pr, &t1, &a.A, &a.B)
	mp_sub_plus_2p(pr, &t2, &a.A, &a.B)
	mp_add(pr, &t3, &a.A, &a.A)
	mp_mul(pr, &m0, &t1, &t2)
	mp_mul(pr, &m1, &t3, &a.B)
	rdc_mont(pr, &d.A, &m0)
	rdc_mont(pr, &d.B, &m1)
}

// Internal function for GF(p^2) inversion:
//   1/(a0 + i*a1) = (a0 - i*a1)/(a0^2 + a1^2)
// If a == 0, then d is set to 0.
func fp2_inv(pr *Prime, d, a *Fp2) {
	var s0, s1 FpX2
	var n, t Fp
	mp_sqr(pr, &s0, &a.A)
	mp_sqr(pr, &s1, &a.B)
	mp2_add(pr, &s0, &s0, &s1)
	rdc_mont(pr, &n, &s0)
	fp_inv(pr, &n, &n)
	fp_neg(pr, &t, &a.B)
	fp_mul(pr, &d.A, &a.A, &n)
	fp_mul(pr, &d.B, &t, &n)
}

// Fp2Zero sets d to 0.
func (f *Prime) Fp2Zero(d *Fp2) *Fp2 {
	*d = Fp2{}
	return d
}

// Fp2One sets d to 1.
func (f *Prime) Fp2One(d *Fp2) *Fp2 {
	d.A = f.one
	d.B = Fp{}
	return d
}

// Fp2SetUint64 sets d to the small integer x.
func (f *Prime) Fp2SetUint64(d *Fp2, x uint64) *Fp2 {
	f.SetUint64(&d.A, x)
	d.B = Fp{}
	return d
}

// Fp2Add sets d = a + b.
func (f *Prime) Fp2Add(d, a, b *Fp2) *Fp2 {
	f.Add(&d.A, &a.A, &b.A)
	f.Add(&d.B, &a.B, &b.B)
	return d
}

// Fp2Sub sets d = a - b.
func (f *Prime) Fp2Sub(d, a, b *Fp2) *Fp2 {
	f.Sub(&d.A, &a.A, &b.A)
	f.Sub(&d.B, &a.B, &b.B)
	return d
}

// Fp2Neg sets d = -a.
func (f *Prime) Fp2Neg(d, a *Fp2) *Fp2 {
	f.Neg(&d.A, &a.A)
	f.Neg(&d.B, &a.B)
	return d
}

// Fp2Half sets d = a/2.
func (f *Prime) Fp2Half(d, a *Fp2) *Fp2 {
	f.Half(&d.A, &a.A)
	f.Half(&d.B, &a.B)
	return d
}

// Fp2Mul sets d = a*b.
func (f *Prime) Fp2Mul(d, a, b *Fp2) *Fp2 {
	f.check2p(&a.A, &a.B, &b.A, &b.B)
	fp2_mul(f, d, a, b)
	return d
}

// Fp2Sqr sets d = a^2.
func (f *Prime) Fp2Sqr(d, a *Fp2) *Fp2 {
	f.check2p(&a.A, &a.B)
	fp2_sqr(f, d, a)
	return d
}

// Fp2Inv sets d = 1/a. If a == 0, then d is set to 0.
func (f *Prime) Fp2Inv(d, a *Fp2) *Fp2 {
	f.check2p(&a.A, &a.B)
	fp2_inv(f, d, a)
	return d
}

// Fp2Correct normalizes both components to [0, p).
func (f *Prime) Fp2Correct(d, a *Fp2) *Fp2 {
	f.Correct(&d.A, &a.A)
	f.Correct(&d.B, &a.B)
	return d
}

// Fp2BatchInv3 inverts three elements with a single inversion
// (Montgomery's trick). None of the inputs may be zero. Destinations
// may overlap the sources.
func (f *Prime) Fp2BatchInv3(d1, d2, d3, z1, z2, z3 *Fp2) {
	var t0, t1, t2, inv Fp2
	f.Fp2Mul(&t0, z1, z2)
	f.Fp2Mul(&t1, &t0, z3)
	f.Fp2Inv(&inv, &t1)
	f.Fp2Mul(&t2, &inv, z3)
	f.Fp2Mul(d3, &inv, &t0)
	t0 = *z1
	f.Fp2Mul(d1, &t2, z2)
	f.Fp2Mul(d2, &t2, &t0)
}

// Fp2IsZero returns 1 if a == 0, 0 otherwise.
func (f *Prime) Fp2IsZero(a *Fp2) uint64 {
	return fp_iszero(f, &a.A) & fp_iszero(f, &a.B)
}

// Fp2Equal returns 1 if a == b, 0 otherwise.
func (f *Prime) Fp2Equal(a, b *Fp2) uint64 {
	return fp_eq(f, &a.A, &b.A) & fp_eq(f, &a.B, &b.B)
}

// Fp2Encode appends the encoding of a (real part, then imaginary part;
// Fp2ByteLen() bytes in total) to dst, and returns the new slice.
func (f *Prime) Fp2Encode(dst []byte, a *Fp2) []byte {
	dst = fp_encode(f, dst, &a.A)
	return fp_encode(f, dst, &a.B)
}

// Fp2Decode decodes Fp2ByteLen() bytes from src. It returns 1 on
// success; if either component is out of range, then d is set to zero
// and 0 is returned.
func (f *Prime) Fp2Decode(d *Fp2, src []byte) uint64 {
	ok := fp_decode(f, &d.A, src[:f.byteLen])
	ok &= fp_decode(f, &d.B, src[f.byteLen:2*f.byteLen])
	var z Fp
	fp_select(&d.A, &d.A, &z, ok)
	fp_select(&d.B, &d.B, &z, ok)
	return ok
}

// Select sets d to a if ctl == 1, or to b if ctl == 0. ctl MUST be 0
// or 1.
func (d *Fp2) Select(a, b *Fp2, ctl uint64) *Fp2 {
	fp_select(&d.A, &a.A, &b.A, ctl)
	fp_select(&d.B, &a.B, &b.B, ctl)
	return d
}

// CondSwap exchanges d and b if ctl == 1; ctl MUST be 0 or 1.
func (d *Fp2) CondSwap(b *Fp2, ctl uint64) {
	fp_cswap(&d.A, &b.A, ctl)
	fp_cswap(&d.B, &b.B, ctl)
}
