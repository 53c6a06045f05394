package curve

import (
	"github.com/doubleodd/go-sike/internal/field"
)

// Isogeny2 is a 2-isogeny, holding the constants derived from its
// kernel point.
type Isogeny2 struct {
	k1, k2 field.Fp2
}

// Generate sets up the 2-isogeny whose kernel is generated by P, which
// must have order exactly 2 and not be (0,0). The coefficients
// (A'+2C' : 4C') of the codomain curve are returned.
func (phi *Isogeny2) Generate(f *field.Prime, P *Point) Coeffs24 {
	var c Coeffs24
	f.Fp2Add(&phi.k1, &P.X, &P.Z)       // k1 = X2 + Z2
	f.Fp2Sub(&phi.k2, &P.X, &P.Z)       // k2 = X2 - Z2
	f.Fp2Sqr(&c.A24plus, &P.X)          // X2^2
	f.Fp2Sqr(&c.C24, &P.Z)              // C24 = Z2^2
	f.Fp2Sub(&c.A24plus, &c.C24, &c.A24plus) // A24plus = Z2^2 - X2^2
	return c
}

// Eval sets Q to the image of P. Q and P may be the same object.
func (phi *Isogeny2) Eval(f *field.Prime, Q, P *Point) {
	var t0, t1, t2, t3 field.Fp2
	f.Fp2Add(&t2, &P.X, &P.Z)      // t2 = X + Z
	f.Fp2Sub(&t3, &P.X, &P.Z)      // t3 = X - Z
	f.Fp2Mul(&t0, &phi.k1, &t3)    // t0 = (X2 + Z2)*(X - Z)
	f.Fp2Mul(&t1, &phi.k2, &t2)    // t1 = (X2 - Z2)*(X + Z)
	f.Fp2Add(&t2, &t0, &t1)        // t2 = 2*(X2*X - Z2*Z)
	f.Fp2Sub(&t3, &t0, &t1)        // t3 = 2*(Z2*X - X2*Z)
	f.Fp2Mul(&Q.X, &P.X, &t2)
	f.Fp2Mul(&Q.Z, &P.Z, &t3)
}

// EvalMany evaluates the isogeny on all provided points, in place.
func (phi *Isogeny2) EvalMany(f *field.Prime, pts []Point) {
	for i := range pts {
		phi.Eval(f, &pts[i], &pts[i])
	}
}

// Isogeny3 is a 3-isogeny, holding the constants derived from its
// kernel point.
type Isogeny3 struct {
	k1, k2 field.Fp2
}

// Generate sets up the 3-isogeny whose kernel is generated by P, which
// must have order exactly 3. The coefficients (A'+2C' : A'-2C') of the
// codomain curve are returned.
func (phi *Isogeny3) Generate(f *field.Prime, P *Point) Coeffs3 {
	var c Coeffs3
	var t0, t1, t2, t3, t4 field.Fp2
	k1, k2 := &phi.k1, &phi.k2
	f.Fp2Sub(k1, &P.X, &P.Z)            // k1 = X3 - Z3
	f.Fp2Sqr(&t0, k1)                   // t0 = k1^2
	f.Fp2Add(k2, &P.X, &P.Z)            // k2 = X3 + Z3
	f.Fp2Sqr(&t1, k2)                   // t1 = k2^2
	f.Fp2Add(&t2, &t0, &t1)             // t2 = t0 + t1
	f.Fp2Add(&t3, k1, k2)               // t3 = k1 + k2
	f.Fp2Sqr(&t3, &t3)                  // t3 = t3^2
	f.Fp2Sub(&t3, &t3, &t2)             // t3 = t3 - t2
	f.Fp2Add(&t2, &t1, &t3)             // t2 = t1 + t3
	f.Fp2Add(&t3, &t3, &t0)             // t3 = t3 + t0
	f.Fp2Add(&t4, &t3, &t0)             // t4 = t3 + t0
	f.Fp2Add(&t4, &t4, &t4)             // t4 = 2*t4
	f.Fp2Add(&t4, &t1, &t4)             // t4 = t1 + t4
	f.Fp2Mul(&c.A24minus, &t2, &t4)     // A24minus = t2*t4
	f.Fp2Add(&t4, &t1, &t2)             // t4 = t1 + t2
	f.Fp2Add(&t4, &t4, &t4)             // t4 = 2*t4
	f.Fp2Add(&t4, &t0, &t4)             // t4 = t0 + t4
	f.Fp2Mul(&t4, &t3, &t4)             // t4 = t3*t4
	f.Fp2Sub(&t0, &t4, &c.A24minus)     // t0 = t4 - A24minus
	f.Fp2Add(&c.A24plus, &c.A24minus, &t0) // A24plus = A24minus + t0
	return c
}

// Eval sets Q to the image of P. Q and P may be the same object.
func (phi *Isogeny3) Eval(f *field.Prime, Q, P *Point) {
	var t0, t1, t2 field.Fp2
	f.Fp2Add(&t0, &P.X, &P.Z)      // t0 = X + Z
	f.Fp2Sub(&t1, &P.X, &P.Z)      // t1 = X - Z
	f.Fp2Mul(&t0, &phi.k1, &t0)    // t0 = k1*t0
	f.Fp2Mul(&t1, &phi.k2, &t1)    // t1 = k2*t1
	f.Fp2Add(&t2, &t0, &t1)        // t2 = t0 + t1
	f.Fp2Sub(&t0, &t1, &t0)        // t0 = t1 - t0
	f.Fp2Sqr(&t2, &t2)             // t2 = t2^2
	f.Fp2Sqr(&t0, &t0)             // t0 = t0^2
	f.Fp2Mul(&Q.X, &P.X, &t2)
	f.Fp2Mul(&Q.Z, &P.Z, &t0)
}

// EvalMany evaluates the isogeny on all provided points, in place.
func (phi *Isogeny3) EvalMany(f *field.Prime, pts []Point) {
	for i := range pts {
		phi.Eval(f, &pts[i], &pts[i])
	}
}

// Isogeny4 is a 4-isogeny, holding the constants derived from its
// kernel point.
type Isogeny4 struct {
	k1, k2, k3 field.Fp2
}

// Generate sets up the 4-isogeny whose kernel is generated by P, which
// must have order exactly 4, with [2]P != (0,0). The coefficients
// (A'+2C' : 4C') of the codomain curve are returned.
func (phi *Isogeny4) Generate(f *field.Prime, P *Point) Coeffs24 {
	var c Coeffs24
	k1, k2, k3 := &phi.k1, &phi.k2, &phi.k3
	f.Fp2Sub(k2, &P.X, &P.Z)              // k2 = X4 - Z4
	f.Fp2Add(k3, &P.X, &P.Z)              // k3 = X4 + Z4
	f.Fp2Sqr(k1, &P.Z)                    // k1 = Z4^2
	f.Fp2Add(k1, k1, k1)                  // k1 = 2*Z4^2
	f.Fp2Sqr(&c.C24, k1)                  // C24 = 4*Z4^4
	f.Fp2Add(k1, k1, k1)                  // k1 = 4*Z4^2
	f.Fp2Sqr(&c.A24plus, &P.X)            // A24plus = X4^2
	f.Fp2Add(&c.A24plus, &c.A24plus, &c.A24plus) // A24plus = 2*X4^2
	f.Fp2Sqr(&c.A24plus, &c.A24plus)      // A24plus = 4*X4^4
	return c
}

// Eval sets Q to the image of P. Q and P may be the same object.
func (phi *Isogeny4) Eval(f *field.Prime, Q, P *Point) {
	var t0, t1, x, z field.Fp2
	f.Fp2Add(&t0, &P.X, &P.Z)      // t0 = X + Z
	f.Fp2Sub(&t1, &P.X, &P.Z)      // t1 = X - Z
	f.Fp2Mul(&x, &t0, &phi.k2)     // x  = t0*k2
	f.Fp2Mul(&z, &t1, &phi.k3)     // z  = t1*k3
	f.Fp2Mul(&t0, &t0, &t1)        // t0 = t0*t1
	f.Fp2Mul(&t0, &t0, &phi.k1)    // t0 = t0*k1
	f.Fp2Add(&t1, &x, &z)          // t1 = x + z
	f.Fp2Sub(&z, &x, &z)           // z  = x - z
	f.Fp2Sqr(&t1, &t1)             // t1 = t1^2
	f.Fp2Sqr(&z, &z)               // z  = z^2
	f.Fp2Add(&x, &t0, &t1)         // x  = t0 + t1
	f.Fp2Sub(&t0, &z, &t0)         // t0 = z - t0
	f.Fp2Mul(&Q.X, &x, &t1)        // X' = x*t1
	f.Fp2Mul(&Q.Z, &z, &t0)        // Z' = z*t0
}

// EvalMany evaluates the isogeny on all provided points, in place.
func (phi *Isogeny4) EvalMany(f *field.Prime, pts []Point) {
	for i := range pts {
		phi.Eval(f, &pts[i], &pts[i])
	}
}
