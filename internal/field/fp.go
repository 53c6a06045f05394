package field

// Public API for GF(p) elements. All functions are methods on the
// Prime, which carries the modulus; elements themselves are plain
// values (type Fp) that can be copied freely. Each function returns the
// destination, to allow chained calls. Unless stated otherwise, inputs
// must be in [0, 2p) and outputs are in [0, 2p).

// Zero sets d to 0.
func (f *Prime) Zero(d *Fp) *Fp {
	*d = Fp{}
	return d
}

// One sets d to 1 (in Montgomery representation).
func (f *Prime) One(d *Fp) *Fp {
	*d = f.one
	return d
}

// SetUint64 sets d to the small integer x (converted to Montgomery
// representation).
func (f *Prime) SetUint64(d *Fp, x uint64) *Fp {
	t := Fp{0: x}
	fp_to_mont(f, d, &t)
	return d
}

// Add sets d = a + b.
func (f *Prime) Add(d, a, b *Fp) *Fp {
	f.check2p(a, b)
	fp_add(f, d, a, b)
	return d
}

// Sub sets d = a - b.
func (f *Prime) Sub(d, a, b *Fp) *Fp {
	f.check2p(a, b)
	fp_sub(f, d, a, b)
	return d
}

// Neg sets d = -a.
func (f *Prime) Neg(d, a *Fp) *Fp {
	f.check2p(a)
	fp_neg(f, d, a)
	return d
}

// Half sets d = a/2.
func (f *Prime) Half(d, a *Fp) *Fp {
	f.check2p(a)
	fp_div2(f, d, a)
	return d
}

// Mul sets d = a*b (Montgomery product).
func (f *Prime) Mul(d, a, b *Fp) *Fp {
	f.check2p(a, b)
	fp_mul(f, d, a, b)
	return d
}

// Sqr sets d = a^2.
func (f *Prime) Sqr(d, a *Fp) *Fp {
	f.check2p(a)
	fp_sqr(f, d, a)
	return d
}

// Inv sets d = 1/a. If a == 0, then d is set to 0.
func (f *Prime) Inv(d, a *Fp) *Fp {
	f.check2p(a)
	fp_inv(f, d, a)
	return d
}

// Correct normalizes a value in [0, 2p) to [0, p).
func (f *Prime) Correct(d, a *Fp) *Fp {
	f.check2p(a)
	fp_correction(f, d, a)
	return d
}

// Correct4p normalizes a value in [0, 4p) to [0, p).
func (f *Prime) Correct4p(d, a *Fp) *Fp {
	fp_correction_4p(f, d, a)
	return d
}

// AddLazy sets d = a + b without any reduction. Inputs in [0, 2p) yield
// an output in [0, 4p).
func (f *Prime) AddLazy(d, a, b *Fp) *Fp {
	mp_add(f, d, a, b)
	return d
}

// SubPlus2p sets d = a - b + 2p, without any reduction. Inputs in
// [0, 2p) yield an output in (0, 4p).
func (f *Prime) SubPlus2p(d, a, b *Fp) *Fp {
	mp_sub_plus_2p(f, d, a, b)
	return d
}

// SubPlus4p sets d = a - b + 4p, without any reduction. Inputs in
// [0, 4p) yield an output in (0, 8p).
func (f *Prime) SubPlus4p(d, a, b *Fp) *Fp {
	mp_sub_plus_4p(f, d, a, b)
	return d
}

// MulWide sets d to the full double-width integer product a*b.
func (f *Prime) MulWide(d *FpX2, a, b *Fp) *FpX2 {
	mp_mul(f, d, a, b)
	return d
}

// MulWideKaratsuba computes the same value as MulWide(), using one
// level of Karatsuba splitting.
func (f *Prime) MulWideKaratsuba(d *FpX2, a, b *Fp) *FpX2 {
	mp_mul_karatsuba(f, d, a, b)
	return d
}

// SqrWide sets d to the full double-width integer square of a.
func (f *Prime) SqrWide(d *FpX2, a *Fp) *FpX2 {
	mp_sqr(f, d, a)
	return d
}

// Reduce sets d = t/R mod 2p (Montgomery reduction). t must be lower
// than p*R; the output is in [0, 2p).
func (f *Prime) Reduce(d *Fp, t *FpX2) *Fp {
	rdc_mont(f, d, t)
	return d
}

// ReduceFull computes the same value as Reduce(), with the textbook
// algorithm (no use of the special shape of p).
func (f *Prime) ReduceFull(d *Fp, t *FpX2) *Fp {
	rdc_mont_full(f, d, t)
	return d
}

// ToMont converts a plain integer a (in [0, 2p)) into Montgomery
// representation.
func (f *Prime) ToMont(d, a *Fp) *Fp {
	fp_to_mont(f, d, a)
	return d
}

// FromMont converts a out of Montgomery representation; the output is
// the plain integer, in [0, p).
func (f *Prime) FromMont(d, a *Fp) *Fp {
	fp_from_mont(f, d, a)
	return d
}

// IsZero returns 1 if a is zero modulo p, 0 otherwise.
func (f *Prime) IsZero(a *Fp) uint64 {
	return fp_iszero(f, a)
}

// Equal returns 1 if a and b are equal modulo p, 0 otherwise.
func (f *Prime) Equal(a, b *Fp) uint64 {
	return fp_eq(f, a, b)
}

// Encode appends the canonical encoding of a (ByteLen() bytes,
// little-endian) to dst, and returns the new slice.
func (f *Prime) Encode(dst []byte, a *Fp) []byte {
	return fp_encode(f, dst, a)
}

// Decode decodes ByteLen() bytes from src into d. If the value is not
// lower than p, then d is set to zero and 0 is returned; otherwise, 1
// is returned. src must have length at least ByteLen().
func (f *Prime) Decode(d *Fp, src []byte) uint64 {
	return fp_decode(f, d, src)
}

// Select sets d to a if ctl == 1, or to b if ctl == 0. ctl MUST be 0
// or 1.
func (d *Fp) Select(a, b *Fp, ctl uint64) *Fp {
	fp_select(d, a, b, ctl)
	return d
}

// CondSwap exchanges the contents of d and b if ctl == 1; they are
// left unchanged if ctl == 0. ctl MUST be 0 or 1.
func (d *Fp) CondSwap(b *Fp, ctl uint64) {
	fp_cswap(d, b, ctl)
}
