// Package curve implements x-only arithmetic on supersingular Montgomery
// curves E_(A:C): C*y^2 = C*x^3 + A*x^2 + C*x over GF(p^2), for the SIDH
// primes of package field. Points and curve coefficients are projective,
// so that no inversion is needed, except in the few functions that
// explicitly return affine values.
//
// All functions take the prime as first parameter. Inputs and outputs
// follow the range conventions of package field. Unless stated
// otherwise, the sequence of operations never depends on the values
// being processed.
package curve

import (
	"github.com/doubleodd/go-sike/internal/field"
	"github.com/doubleodd/go-sike/internal/scalar"
)

// Point is an x-only projective point (X:Z). The point at infinity
// (and only it) has Z == 0.
type Point struct {
	X, Z field.Fp2
}

// Curve holds the projective coefficients (A:C) of the Montgomery curve
// with affine coefficient a = A/C.
type Curve struct {
	A, C field.Fp2
}

// Coeffs24 holds the curve coefficients in the form (A+2C : 4C), used
// for point doubling and by 2- and 4-isogenies.
type Coeffs24 struct {
	A24plus, C24 field.Fp2
}

// Coeffs3 holds the curve coefficients in the form (A+2C : A-2C), used
// for point tripling and by 3-isogenies.
type Coeffs3 struct {
	A24plus, A24minus field.Fp2
}

// FromAffine sets P to (x:1).
func (P *Point) FromAffine(f *field.Prime, x *field.Fp2) *Point {
	P.X = *x
	f.Fp2One(&P.Z)
	return P
}

// ToAffine sets x to X/Z. If P is the point at infinity, then x is set
// to 0.
func (P *Point) ToAffine(f *field.Prime, x *field.Fp2) *field.Fp2 {
	var t field.Fp2
	f.Fp2Inv(&t, &P.Z)
	return f.Fp2Mul(x, &P.X, &t)
}

// IsInfinity returns 1 if P is the point at infinity, 0 otherwise.
func (P *Point) IsInfinity(f *field.Prime) uint64 {
	return f.Fp2IsZero(&P.Z)
}

// Equal returns 1 if P and Q have the same x coordinate (i.e. Q = P or
// Q = -P), 0 otherwise. Two points at infinity are equal. A point with
// X == Z == 0 is not valid and must not be used here.
func (P *Point) Equal(f *field.Prime, Q *Point) uint64 {
	var t0, t1 field.Fp2
	f.Fp2Mul(&t0, &P.X, &Q.Z)
	f.Fp2Mul(&t1, &Q.X, &P.Z)
	return f.Fp2Equal(&t0, &t1)
}

// CondSwap exchanges P and Q if ctl == 1; they are unchanged if
// ctl == 0. ctl MUST be 0 or 1.
func (P *Point) CondSwap(Q *Point, ctl uint64) {
	P.X.CondSwap(&Q.X, ctl)
	P.Z.CondSwap(&Q.Z, ctl)
}

// FromAffine sets the curve to (a:1).
func (cv *Curve) FromAffine(f *field.Prime, a *field.Fp2) *Curve {
	cv.A = *a
	f.Fp2One(&cv.C)
	return cv
}

// Coeffs24 computes (A+2C : 4C).
func (cv *Curve) Coeffs24(f *field.Prime) Coeffs24 {
	var c Coeffs24
	f.Fp2Add(&c.C24, &cv.C, &cv.C)
	f.Fp2Add(&c.A24plus, &cv.A, &c.C24)
	f.Fp2Add(&c.C24, &c.C24, &c.C24)
	return c
}

// Coeffs3 computes (A+2C : A-2C).
func (cv *Curve) Coeffs3(f *field.Prime) Coeffs3 {
	var c Coeffs3
	var c2 field.Fp2
	f.Fp2Add(&c2, &cv.C, &cv.C)
	f.Fp2Add(&c.A24plus, &cv.A, &c2)
	f.Fp2Sub(&c.A24minus, &cv.A, &c2)
	return c
}

// A24 computes the affine constant (A+2C)/4C used by the three-point
// ladder. This function performs an inversion.
func (cv *Curve) A24(f *field.Prime) field.Fp2 {
	var r, t field.Fp2
	f.Fp2Add(&t, &cv.C, &cv.C)
	f.Fp2Add(&r, &cv.A, &t)
	f.Fp2Add(&t, &t, &t)
	f.Fp2Inv(&t, &t)
	f.Fp2Mul(&r, &r, &t)
	return r
}

// Curve recovers (A:C) from (A+2C : 4C). The result is (A:C) itself
// (not a multiple of it).
func (c *Coeffs24) Curve(f *field.Prime) Curve {
	var cv Curve
	f.Fp2Half(&cv.C, &c.C24)
	f.Fp2Sub(&cv.A, &c.A24plus, &cv.C)
	f.Fp2Half(&cv.C, &cv.C)
	return cv
}

// Curve recovers (4A : 4C) from (A+2C : A-2C).
func (c *Coeffs3) Curve(f *field.Prime) Curve {
	var cv Curve
	f.Fp2Add(&cv.A, &c.A24plus, &c.A24minus)
	f.Fp2Add(&cv.A, &cv.A, &cv.A)
	f.Fp2Sub(&cv.C, &c.A24plus, &c.A24minus)
	return cv
}

// XDBL sets Q = [2]P. Q and P may be the same object.
func XDBL(f *field.Prime, Q, P *Point, c *Coeffs24) {
	var t0, t1 field.Fp2
	f.Fp2Sub(&t0, &P.X, &P.Z)        // t0 = X - Z
	f.Fp2Add(&t1, &P.X, &P.Z)        // t1 = X + Z
	f.Fp2Sqr(&t0, &t0)               // t0 = (X - Z)^2
	f.Fp2Sqr(&t1, &t1)               // t1 = (X + Z)^2
	f.Fp2Mul(&Q.Z, &c.C24, &t0)      // Z2 = C24*t0
	f.Fp2Mul(&Q.X, &Q.Z, &t1)        // X2 = Z2*t1
	f.Fp2Sub(&t1, &t1, &t0)          // t1 = 4XZ
	f.Fp2Mul(&t0, &c.A24plus, &t1)   // t0 = A24plus*t1
	f.Fp2Add(&Q.Z, &Q.Z, &t0)        // Z2 = Z2 + t0
	f.Fp2Mul(&Q.Z, &Q.Z, &t1)        // Z2 = Z2*t1
}

// XDBLe sets Q = [2^e]P. Q and P may be the same object.
func XDBLe(f *field.Prime, Q, P *Point, c *Coeffs24, e int) {
	*Q = *P
	for i := 0; i < e; i++ {
		XDBL(f, Q, Q, c)
	}
}

// XTPL sets Q = [3]P. Q and P may be the same object.
func XTPL(f *field.Prime, Q, P *Point, c *Coeffs3) {
	var t0, t1, t2, t3, t4, t5, t6 field.Fp2
	f.Fp2Sub(&t0, &P.X, &P.Z)          // t0 = X - Z
	f.Fp2Sqr(&t2, &t0)                 // t2 = t0^2
	f.Fp2Add(&t1, &P.X, &P.Z)          // t1 = X + Z
	f.Fp2Sqr(&t3, &t1)                 // t3 = t1^2
	f.Fp2Add(&t4, &t1, &t0)            // t4 = 2X
	f.Fp2Sub(&t0, &t1, &t0)            // t0 = 2Z
	f.Fp2Sqr(&t1, &t4)                 // t1 = 4X^2
	f.Fp2Sub(&t1, &t1, &t3)            // t1 = t1 - t3
	f.Fp2Sub(&t1, &t1, &t2)            // t1 = t1 - t2
	f.Fp2Mul(&t5, &t3, &c.A24plus)     // t5 = t3*A24plus
	f.Fp2Mul(&t3, &t3, &t5)            // t3 = t3*t5
	f.Fp2Mul(&t6, &t2, &c.A24minus)    // t6 = t2*A24minus
	f.Fp2Mul(&t2, &t2, &t6)            // t2 = t2*t6
	f.Fp2Sub(&t3, &t2, &t3)            // t3 = t2 - t3
	f.Fp2Sub(&t2, &t5, &t6)            // t2 = t5 - t6
	f.Fp2Mul(&t1, &t2, &t1)            // t1 = t2*t1
	f.Fp2Add(&t2, &t3, &t1)            // t2 = t3 + t1
	f.Fp2Sqr(&t2, &t2)                 // t2 = t2^2
	f.Fp2Mul(&Q.X, &t2, &t4)           // X3 = t2*t4
	f.Fp2Sub(&t1, &t3, &t1)            // t1 = t3 - t1
	f.Fp2Sqr(&t1, &t1)                 // t1 = t1^2
	f.Fp2Mul(&Q.Z, &t1, &t0)           // Z3 = t1*t0
}

// XTPLe sets Q = [3^e]P. Q and P may be the same object.
func XTPLe(f *field.Prime, Q, P *Point, c *Coeffs3, e int) {
	*Q = *P
	for i := 0; i < e; i++ {
		XTPL(f, Q, Q, c)
	}
}

// XDBLADD is the combined doubling and differential addition step of
// the Montgomery ladder: given P, Q and PQ = x(Q - P), it sets P to
// [2]P and Q to P + Q. a24 is the affine constant (A+2C)/4C.
func XDBLADD(f *field.Prime, P, Q, PQ *Point, a24 *field.Fp2) {
	var t0, t1, t2 field.Fp2
	var x2, z2, xs, zs field.Fp2
	f.Fp2Add(&t0, &P.X, &P.Z)    // t0 = XP + ZP
	f.Fp2Sub(&t1, &P.X, &P.Z)    // t1 = XP - ZP
	f.Fp2Sqr(&x2, &t0)           // X2 = t0^2
	f.Fp2Sub(&t2, &Q.X, &Q.Z)    // t2 = XQ - ZQ
	f.Fp2Add(&xs, &Q.X, &Q.Z)    // XS = XQ + ZQ
	f.Fp2Mul(&t0, &t0, &t2)      // t0 = t0*t2
	f.Fp2Sqr(&z2, &t1)           // Z2 = t1^2
	f.Fp2Mul(&t1, &t1, &xs)      // t1 = t1*XS
	f.Fp2Sub(&t2, &x2, &z2)      // t2 = X2 - Z2
	f.Fp2Mul(&x2, &x2, &z2)      // X2 = X2*Z2
	f.Fp2Mul(&xs, a24, &t2)      // XS = a24*t2
	f.Fp2Sub(&zs, &t0, &t1)      // ZS = t0 - t1
	f.Fp2Add(&z2, &xs, &z2)      // Z2 = XS + Z2
	f.Fp2Add(&xs, &t0, &t1)      // XS = t0 + t1
	f.Fp2Mul(&z2, &z2, &t2)      // Z2 = Z2*t2
	f.Fp2Sqr(&zs, &zs)           // ZS = ZS^2
	f.Fp2Sqr(&xs, &xs)           // XS = XS^2
	f.Fp2Mul(&zs, &PQ.X, &zs)    // ZS = XPQ*ZS
	f.Fp2Mul(&xs, &PQ.Z, &xs)    // XS = ZPQ*XS
	P.X, P.Z = x2, z2
	Q.X, Q.Z = xs, zs
}

// Ladder3pt computes x(P + [m]Q), given x(P), x(Q) and x(P - Q) on the
// curve cv. The scalar m is read from the nbits least significant bits
// of the little-endian byte slice m, which must have length at least
// (nbits+7)/8. The processing is constant-time with regard to the value
// of m: at each step, a masked swap (controlled by the XOR of the
// current and previous bits) is followed by a single XDBLADD.
func Ladder3pt(f *field.Prime, cv *Curve, xP, xQ, xPQ *Point, m []byte, nbits int) Point {
	a24 := cv.A24(f)
	R0 := *xQ
	R1 := *xP
	R2 := *xPQ

	var prev uint64
	for i := 0; i < nbits; i++ {
		bit := scalar.Bit(m, i)
		R1.CondSwap(&R2, bit^prev)
		prev = bit
		XDBLADD(f, &R0, &R2, &R1, &a24)
	}
	R1.CondSwap(&R2, prev)
	return R1
}

// JInvariant computes the j-invariant of the curve:
// j = 256*(A^2 - 3C^2)^3 / (C^4*(A^2 - 4C^2)).
// The returned value is affine (this function performs an inversion).
func JInvariant(f *field.Prime, cv *Curve, j *field.Fp2) {
	var t0, t1, r field.Fp2
	f.Fp2Sqr(&r, &cv.A)         // r  = A^2
	f.Fp2Sqr(&t1, &cv.C)        // t1 = C^2
	f.Fp2Add(&t0, &t1, &t1)     // t0 = 2C^2
	f.Fp2Sub(&t0, &r, &t0)      // t0 = A^2 - 2C^2
	f.Fp2Sub(&t0, &t0, &t1)     // t0 = A^2 - 3C^2
	f.Fp2Sub(&r, &t0, &t1)      // r  = A^2 - 4C^2
	f.Fp2Sqr(&t1, &t1)          // t1 = C^4
	f.Fp2Mul(&r, &r, &t1)       // r  = C^4*(A^2 - 4C^2)
	f.Fp2Add(&t0, &t0, &t0)     // t0 = 2t0
	f.Fp2Add(&t0, &t0, &t0)     // t0 = 4t0
	f.Fp2Sqr(&t1, &t0)          // t1 = t0^2
	f.Fp2Mul(&t0, &t0, &t1)     // t0 = t0^3
	f.Fp2Add(&t0, &t0, &t0)     // t0 = 2t0
	f.Fp2Add(&t0, &t0, &t0)     // t0 = 4t0
	f.Fp2Inv(&r, &r)            // r  = 1/r
	f.Fp2Mul(j, &t0, &r)        // j  = t0*r
}

// RecoverA computes the curve (A:1) from the affine x-coordinates of
// P, Q and Q - P:
// A = (1 - xP*xQ - xP*xR - xQ*xR)^2 / (4*xP*xQ*xR) - xP - xQ - xR.
// This function performs an inversion.
func RecoverA(f *field.Prime, xP, xQ, xR *field.Fp2) Curve {
	var cv Curve
	var t0, t1, one field.Fp2
	f.Fp2One(&one)
	f.Fp2Add(&t1, xP, xQ)       // t1 = xP + xQ
	f.Fp2Mul(&t0, xP, xQ)       // t0 = xP*xQ
	f.Fp2Mul(&cv.A, xR, &t1)    // A  = xR*t1
	f.Fp2Add(&cv.A, &cv.A, &t0) // A  = A + t0
	f.Fp2Mul(&t0, &t0, xR)      // t0 = t0*xR
	f.Fp2Sub(&cv.A, &cv.A, &one)
	f.Fp2Add(&t0, &t0, &t0)     // t0 = 2t0
	f.Fp2Add(&t1, &t1, xR)      // t1 = t1 + xR
	f.Fp2Add(&t0, &t0, &t0)     // t0 = 4t0
	f.Fp2Sqr(&cv.A, &cv.A)      // A  = A^2
	f.Fp2Inv(&t0, &t0)          // t0 = 1/t0
	f.Fp2Mul(&cv.A, &cv.A, &t0) // A  = A*t0
	f.Fp2Sub(&cv.A, &cv.A, &t1) // A  = A - t1
	cv.C = one
	return cv
}
