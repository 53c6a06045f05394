package field

import (
	"encoding/binary"
	"math/bits"
)

// This file implements computations on the finite fields of integers
// modulo the SIDH primes p = 2^e2 * 3^e3 - 1. This implementation is
// portable (no assembly) and works for any prime of that shape which
// fits on MaxWords 64-bit limbs. It is safe (constant-time) as long as
// 64-bit operations (especially 64x64->128 multiplication, using
// math/bits.Mul64()) are constant-time, which should be true on most
// modern systems.

// =======================================================================
// Internal functions
// =======================================================================

// Unless otherwise stated, all functions below accept source and destination
// operands to be the same objects. Parameter order is destination first
// (similar to mathematical notation: "d = a + b").
// The 'pr' parameter is the prime definition; only its first pr.words
// limbs are read or written, the other limbs of an element stay at zero.
//
// Storage format: an array of 64-bit unsigned integers, which encode
// the value in base 2^64 (little-endian order: first limb is least
// significant). Field elements are kept in Montgomery representation
// (a*R mod p, with R = 2^(64*W)), and are not necessarily reduced: each
// function documents the range it accepts and the range it produces.
// Most values live in [0, 2p); lazy additions may produce values up
// to 4p (or 8p for mp_sub_plus_4p()).

// MaxWords is the largest number of 64-bit limbs used by a supported
// prime (p751 uses 12 limbs).
const MaxWords = 12

// Fp is an element of GF(p), or a raw W-limb integer.
type Fp [MaxWords]uint64

// FpX2 is a double-width integer, typically the unreduced product of
// two field elements.
type FpX2 [2 * MaxWords]uint64

// -----------------------------------------------------------------------
// Multi-precision layer. These functions work on plain integers; they
// never reduce modulo p.

// Add two integers of the same length; the carry is returned.
func mp_addn(d, a, b []uint64) uint64 {
	var cc uint64
	for i := range d {
		d[i], cc = bits.Add64(a[i], b[i], cc)
	}
	return cc
}

// Subtract two integers of the same length; the borrow is returned.
func mp_subn(d, a, b []uint64) uint64 {
	var cc uint64
	for i := range d {
		d[i], cc = bits.Sub64(a[i], b[i], cc)
	}
	return cc
}

// Schoolbook product: d <- a*b. len(d) must be len(a) + len(b), and d
// must not overlap a or b.
func mp_muln(d, a, b []uint64) {
	for i := range d {
		d[i] = 0
	}
	for i := 0; i < len(a); i++ {
		var cc uint64
		for j := 0; j < len(b); j++ {
			// (2^64-1)^2 + 2*(2^64-1) = 2^128-1: hi cannot overflow.
			hi, lo := bits.Mul64(a[i], b[j])
			var c uint64
			lo, c = bits.Add64(lo, d[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, cc, 0)
			hi += c
			d[i+j] = lo
			cc = hi
		}
		d[i+len(b)] = cc
	}
}

// Squaring: d <- a^2. len(d) must be 2*len(a), and d must not overlap a.
// Cross products are computed once and doubled; the result is
// identical to mp_muln(d, a, a).
func mp_sqrn(d, a []uint64) {
	n := len(a)
	for i := range d {
		d[i] = 0
	}
	for i := 0; i < n; i++ {
		var cc uint64
		for j := i + 1; j < n; j++ {
			hi, lo := bits.Mul64(a[i], a[j])
			var c uint64
			lo, c = bits.Add64(lo, d[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, cc, 0)
			hi += c
			d[i+j] = lo
			cc = hi
		}
		d[i+n] = cc
	}

	var top uint64
	for i := 0; i < 2*n; i++ {
		w := d[i]
		d[i] = (w << 1) | top
		top = w >> 63
	}

	var cc uint64
	for i := 0; i < n; i++ {
		hi, lo := bits.Mul64(a[i], a[i])
		d[2*i], cc = bits.Add64(d[2*i], lo, cc)
		d[2*i+1], cc = bits.Add64(d[2*i+1], hi, cc)
	}
}

// mp_add computes d = a + b over W limbs. There is no reduction; the
// caller tracks the range (inputs below 2p yield an output below 4p,
// which always fits).
func mp_add(pr *Prime, d, a, b *Fp) {
	n := pr.words
	mp_addn(d[:n], a[:n], b[:n])
}

// mp_sub_plus_2p computes d = a - b + 2p. For a and b in [0, 2p), the
// output is in (0, 4p).
func mp_sub_plus_2p(pr *Prime, d, a, b *Fp) {
	n := pr.words
	// The intermediate borrow is cancelled by the addition of 2p,
	// since the exact result is nonnegative.
	mp_subn(d[:n], a[:n], b[:n])
	mp_addn(d[:n], d[:n], pr.p2[:n])
}

// mp_sub_plus_4p computes d = a - b + 4p. For a and b in [0, 4p), the
// output is in (0, 8p); 8p fits on W limbs for all supported primes.
func mp_sub_plus_4p(pr *Prime, d, a, b *Fp) {
	n := pr.words
	mp_subn(d[:n], a[:n], b[:n])
	mp_addn(d[:n], d[:n], pr.p4[:n])
}

// mp_mul computes the full 2W-limb product d = a*b (schoolbook).
func mp_mul(pr *Prime, d *FpX2, a, b *Fp) {
	n := pr.words
	var t FpX2
	mp_muln(t[:2*n], a[:n], b[:n])
	*d = t
}

// mp_mul_karatsuba computes d = a*b with one level of Karatsuba
// splitting. The output is bit-identical to mp_mul().
func mp_mul_karatsuba(pr *Prime, d *FpX2, a, b *Fp) {
	n := pr.words
	h := n >> 1
	k := n - h

	// Operand halves: a = a0 + a1*B^h, with B = 2^64.
	var z0, z2 [MaxWords]uint64
	mp_muln(z0[:2*h], a[:h], b[:h])
	mp_muln(z2[:2*k], a[h:n], b[h:n])

	// sa = a0 + a1 and sb = b0 + b1 over k limbs, with carries ca, cb.
	var sa, sb [MaxWords/2 + 1]uint64
	var ca, cb uint64
	for i := 0; i < k; i++ {
		var x0, y0 uint64
		if i < h {
			x0 = a[i]
			y0 = b[i]
		}
		sa[i], ca = bits.Add64(a[h+i], x0, ca)
		sb[i], cb = bits.Add64(b[h+i], y0, cb)
	}

	// z1 = (sa + ca*B^k)*(sb + cb*B^k), over 2k+1 limbs.
	var z1 [MaxWords + 2]uint64
	mp_muln(z1[:2*k], sa[:k], sb[:k])
	var cc uint64
	for i := 0; i < k; i++ {
		z1[k+i], cc = bits.Add64(z1[k+i], sb[i]&-ca, cc)
	}
	z1[2*k] += cc
	cc = 0
	for i := 0; i < k; i++ {
		z1[k+i], cc = bits.Add64(z1[k+i], sa[i]&-cb, cc)
	}
	z1[2*k] += cc + (ca & cb)

	// z1 <- z1 - z0 - z2 = a0*b1 + a1*b0 (nonnegative).
	var bb uint64
	for i := 0; i <= 2*k; i++ {
		var w uint64
		if i < 2*h {
			w = z0[i]
		}
		z1[i], bb = bits.Sub64(z1[i], w, bb)
	}
	bb = 0
	for i := 0; i <= 2*k; i++ {
		var w uint64
		if i < 2*k {
			w = z2[i]
		}
		z1[i], bb = bits.Sub64(z1[i], w, bb)
	}

	// d = z0 + z1*B^h + z2*B^(2h)
	var t FpX2
	copy(t[:2*h], z0[:2*h])
	copy(t[2*h:2*n], z2[:2*k])
	cc = 0
	for i := 0; i <= 2*k; i++ {
		t[h+i], cc = bits.Add64(t[h+i], z1[i], cc)
	}
	for i := h + 2*k + 1; i < 2*n; i++ {
		t[i], cc = bits.Add64(t[i], 0, cc)
	}
	*d = t
}

// mp_sqr computes d = a^2 over 2W limbs; identical to mp_mul(d, a, a).
func mp_sqr(pr *Prime, d *FpX2, a *Fp) {
	n := pr.words
	var t FpX2
	mp_sqrn(t[:2*n], a[:n])
	*d = t
}

// mp2_add computes d = a + b over 2W limbs.
func mp2_add(pr *Prime, d, a, b *FpX2) {
	n := pr.words << 1
	mp_addn(d[:n], a[:n], b[:n])
}

// mp2_sub computes d = a - b over 2W limbs. The caller guarantees a >= b.
func mp2_sub(pr *Prime, d, a, b *FpX2) {
	n := pr.words << 1
	mp_subn(d[:n], a[:n], b[:n])
}

// mp2_sub_p computes d = a - b over 2W limbs, then adds p*R if the
// difference was negative. For a and b below p*R, the output is below
// p*R, hence a valid input for rdc_mont().
func mp2_sub_p(pr *Prime, d, a, b *FpX2) {
	n := pr.words
	bb := mp_subn(d[:2*n], a[:2*n], b[:2*n])
	mask := -bb
	var cc uint64
	for i := 0; i < n; i++ {
		d[n+i], cc = bits.Add64(d[n+i], pr.p[i]&mask, cc)
	}
}

// -----------------------------------------------------------------------
// Montgomery reduction.

// rdc_mont computes d = t/R mod 2p, for t < p*R. The output is in
// [0, 2p).
//
// Since p = -1 mod 2^64, the Montgomery quotient digit of each round is
// simply the current low limb m; adding m*p = m*(p+1) - m clears that
// limb, and only the nonzero limbs of p+1 (starting at pr.zeroWords)
// need to be multiplied in.
func rdc_mont(pr *Prime, d *Fp, t *FpX2) {
	n := pr.words
	z := pr.zeroWords
	var u FpX2
	copy(u[:2*n], t[:2*n])
	for i := 0; i < n; i++ {
		m := u[i]
		var cc uint64
		for j := z; j < n; j++ {
			hi, lo := bits.Mul64(m, pr.pp1[j])
			var c uint64
			lo, c = bits.Add64(lo, cc, 0)
			hi += c
			u[i+j], c = bits.Add64(u[i+j], lo, 0)
			cc = hi + c
		}
		for j := i + n; j < 2*n; j++ {
			u[j], cc = bits.Add64(u[j], cc, 0)
		}
	}
	var r Fp
	copy(r[:n], u[n:2*n])
	*d = r
}

// rdc_mont_full is the textbook word-by-word Montgomery reduction,
// with a full multiplication by p on each round. Its output is the
// same as that of rdc_mont(); it is kept as a reference.
func rdc_mont_full(pr *Prime, d *Fp, t *FpX2) {
	n := pr.words
	var u [2*MaxWords + 1]uint64
	copy(u[:2*n], t[:2*n])
	for i := 0; i < n; i++ {
		m := u[i] * pr.pinv
		var cc uint64
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(m, pr.p[j])
			var c uint64
			lo, c = bits.Add64(lo, cc, 0)
			hi += c
			u[i+j], c = bits.Add64(u[i+j], lo, 0)
			cc = hi + c
		}
		for j := i + n; j <= 2*n; j++ {
			u[j], cc = bits.Add64(u[j], cc, 0)
		}
	}
	var r Fp
	copy(r[:n], u[n:2*n])
	*d = r
}

// -----------------------------------------------------------------------
// Field operations.

// Internal function for field addition (modulo 2p).
// Parameters:
//   pr   prime definition
//   d    destination
//   a    first operand (in [0, 2p))
//   b    second operand (in [0, 2p))
// Output is in [0, 2p).
func fp_add(pr *Prime, d, a, b *Fp) {
	n := pr.words

	// First pass: sum; no overflow since a + b < 4p < 2^(64*W).
	mp_addn(d[:n], a[:n], b[:n])

	// Second pass: subtract 2p; if this triggers a borrow, then
	// the sum was lower than 2p and we add it back.
	mask := -mp_subn(d[:n], d[:n], pr.p2[:n])
	var cc uint64
	for i := 0; i < n; i++ {
		d[i], cc = bits.Add64(d[i], pr.p2[i]&mask, cc)
	}
}

// Internal function for field subtraction (modulo 2p).
// Parameters:
//   pr   prime definition
//   d    destination
//   a    first operand (in [0, 2p))
//   b    second operand (in [0, 2p))
// Output is in [0, 2p).
func fp_sub(pr *Prime, d, a, b *Fp) {
	n := pr.words
	mask := -mp_subn(d[:n], a[:n], b[:n])
	var cc uint64
	for i := 0; i < n; i++ {
		d[i], cc = bits.Add64(d[i], pr.p2[i]&mask, cc)
	}
}

// Internal function for field negation: d = 2p - a, or 0 if a == 0.
// Input is in [0, 2p); output is in [0, 2p).
func fp_neg(pr *Prime, d, a *Fp) {
	var z Fp
	fp_sub(pr, d, &z, a)
}

// Internal function for halving: d = a/2 mod p. If a is odd, p is
// added first (which makes the value even), then the value is shifted
// right by one bit.
// Input is in [0, 2p); output is in [0, 2p).
func fp_div2(pr *Prime, d, a *Fp) {
	n := pr.words
	mask := -(a[0] & 1)
	var cc uint64
	for i := 0; i < n; i++ {
		d[i], cc = bits.Add64(a[i], pr.p[i]&mask, cc)
	}
	for i := 0; i < n-1; i++ {
		d[i] = (d[i] >> 1) | (d[i+1] << 63)
	}
	d[n-1] >>= 1
}

// Internal function for normalization. Input is in [0, 2p); output is
// in [0, p). It is meant to be called prior to encoding, or for
// comparisons.
func fp_correction(pr *Prime, d, a *Fp) {
	n := pr.words
	mask := -mp_subn(d[:n], a[:n], pr.p[:n])
	var cc uint64
	for i := 0; i < n; i++ {
		d[i], cc = bits.Add64(d[i], pr.p[i]&mask, cc)
	}
}

// Internal function for normalization of a value in [0, 4p) down to
// [0, p): a conditional subtraction of 2p followed by fp_correction().
func fp_correction_4p(pr *Prime, d, a *Fp) {
	n := pr.words
	mask := -mp_subn(d[:n], a[:n], pr.p2[:n])
	var cc uint64
	for i := 0; i < n; i++ {
		d[i], cc = bits.Add64(d[i], pr.p2[i]&mask, cc)
	}
	fp_correction(pr, d, d)
}

// Internal function for Montgomery multiplication: d = a*b/R mod 2p.
// Inputs are in [0, 2p); output is in [0, 2p).
func fp_mul(pr *Prime, d, a, b *Fp) {
	var t FpX2
	mp_mul(pr, &t, a, b)
	rdc_mont(pr, d, &t)
}

// Internal function for Montgomery squaring: d = a^2/R mod 2p.
func fp_sqr(pr *Prime, d, a *Fp) {
	var t FpX2
	mp_sqr(pr, &t, a)
	rdc_mont(pr, d, &t)
}

// Internal function for inversion: d = a^(p-2) = 1/a. If a == 0, then
// d is set to 0. The exponent is public, so the fixed 4-bit window
// lookups below do not depend on secret data; the sequence of
// operations is the same for all values of a.
func fp_inv(pr *Prime, d, a *Fp) {
	var win [16]Fp
	win[0] = pr.one
	win[1] = *a
	for i := 2; i < 16; i++ {
		fp_mul(pr, &win[i], &win[i-1], a)
	}

	r := pr.one
	nd := (pr.bits + 3) >> 2
	for i := nd - 1; i >= 0; i-- {
		for j := 0; j < 4; j++ {
			fp_sqr(pr, &r, &r)
		}
		e := (pr.pm2[(4*i)>>6] >> uint((4*i)&63)) & 15
		fp_mul(pr, &r, &r, &win[e])
	}
	*d = r
}

// Internal function for conversion into Montgomery representation:
// d = a*R mod 2p. Input is a plain integer in [0, 2p).
func fp_to_mont(pr *Prime, d, a *Fp) {
	fp_mul(pr, d, a, &pr.r2)
}

// Internal function for conversion out of Montgomery representation.
// Output is the plain integer, fully reduced to [0, p).
func fp_from_mont(pr *Prime, d, a *Fp) {
	var t FpX2
	copy(t[:pr.words], a[:pr.words])
	rdc_mont(pr, d, &t)
	fp_correction(pr, d, d)
}

// Internal function for constant-time selection. Output d is set to
// the value of a if ctl == 1, or to the value of b if ctl == 0.
// ctl MUST be 0 or 1.
func fp_select(d, a, b *Fp, ctl uint64) {
	ma := -ctl
	mb := ^ma
	for i := 0; i < MaxWords; i++ {
		d[i] = (a[i] & ma) | (b[i] & mb)
	}
}

// Internal function for constant-time conditional swap: a and b are
// exchanged if ctl == 1, unchanged if ctl == 0. ctl MUST be 0 or 1.
func fp_cswap(a, b *Fp, ctl uint64) {
	m := -ctl
	for i := 0; i < MaxWords; i++ {
		t := m & (a[i] ^ b[i])
		a[i] ^= t
		b[i] ^= t
	}
}

// Internal function for comparing a value with zero. This function
// returns 1 if the value is equal to 0 modulo p; otherwise, it returns 0.
// Input is in [0, 2p).
func fp_iszero(pr *Prime, a *Fp) uint64 {
	var t Fp
	fp_correction(pr, &t, a)
	var r uint64
	for i := 0; i < pr.words; i++ {
		r |= t[i]
	}
	return 1 - ((r | -r) >> 63)
}

// Internal function for comparing two values. This function returns 1
// if the values are equal modulo p, 0 otherwise.
func fp_eq(pr *Prime, a, b *Fp) uint64 {
	var t Fp
	fp_sub(pr, &t, a, b)
	return fp_iszero(pr, &t)
}

// Internal function for encoding a field element into exactly
// pr.byteLen bytes (unsigned little-endian, canonical value in [0, p)).
// The encoded element is appended to the specified slice; the new slice
// (with the appended data) is returned.
func fp_encode(pr *Prime, b []byte, a *Fp) []byte {
	var t Fp
	fp_from_mont(pr, &t, a)
	var buf [8 * MaxWords]byte
	for i := 0; i < pr.words; i++ {
		binary.LittleEndian.PutUint64(buf[8*i:], t[i])
	}
	return append(b, buf[:pr.byteLen]...)
}

// Internal function for decoding a field element from pr.byteLen bytes.
// If the source is not in the valid range (0..p-1), then the destination
// is set to zero, and 0 is returned; otherwise, 1 is returned. The
// decoded value is converted to Montgomery representation.
func fp_decode(pr *Prime, d *Fp, src []byte) uint64 {
	var buf [8 * MaxWords]byte
	copy(buf[:pr.byteLen], src[:pr.byteLen])
	var t Fp
	for i := 0; i < pr.words; i++ {
		t[i] = binary.LittleEndian.Uint64(buf[8*i:])
	}

	// Compare with p: if there is no borrow, the value is out of range.
	var x Fp
	cc := mp_subn(x[:pr.words], t[:pr.words], pr.p[:pr.words])
	for i := 0; i < pr.words; i++ {
		t[i] &= -cc
	}
	fp_to_mont(pr, d, &t)
	return cc
}
