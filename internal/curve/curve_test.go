package curve_test

import (
	"crypto/sha512"
	"math/big"
	"testing"

	"github.com/doubleodd/go-sike/internal/curve"
	"github.com/doubleodd/go-sike/internal/field"
	"github.com/doubleodd/go-sike/sike"
)

// Curve tests run on the public SIDH data (starting curve and torsion
// bases) of the supported parameter sets. Orders of the basis points are
// known exactly, which gives independent checks on doubling, tripling,
// the ladder and the isogeny formulas.

type prng struct {
	buf [64]byte
	ptr int
}

func (p *prng) init(seed string) {
	hv := sha512.Sum512([]byte(seed))
	copy(p.buf[:], hv[:])
	p.ptr = 0
}

func (p *prng) generate(d []byte) {
	n := len(d)
	for n > 0 {
		c := 32 - p.ptr
		if c == 0 {
			hv := sha512.Sum512(p.buf[:])
			copy(p.buf[:], hv[:])
			p.ptr = 0
			c = 32
		}
		if c > n {
			c = n
		}
		copy(d, p.buf[p.ptr:p.ptr+c])
		d = d[c:]
		n -= c
		p.ptr += c
	}
}

type setup struct {
	params     *sike.Params
	f          *field.Prime
	e2, e3     int
	cv         curve.Curve
	c24        curve.Coeffs24
	c3         curve.Coeffs3
	PA, QA, RA curve.Point
	PB, QB, RB curve.Point
}

func newSetup(params *sike.Params) *setup {
	f := params.Field
	s := &setup{params: params, f: f}
	e2, e3 := f.Exponents()
	s.e2, s.e3 = int(e2), int(e3)
	var a field.Fp2
	f.Fp2SetUint64(&a, params.StartA)
	s.cv.FromAffine(f, &a)
	s.c24 = s.cv.Coeffs24(f)
	s.c3 = s.cv.Coeffs3(f)
	s.PA.FromAffine(f, &params.A.AffineP)
	s.QA.FromAffine(f, &params.A.AffineQ)
	s.RA.FromAffine(f, &params.A.AffineR)
	s.PB.FromAffine(f, &params.B.AffineP)
	s.QB.FromAffine(f, &params.B.AffineQ)
	s.RB.FromAffine(f, &params.B.AffineR)
	return s
}

func allSetups() []*setup {
	return []*setup{newSetup(sike.SIKEp434), newSetup(sike.SIKEp503)}
}

func TestBasisOrders(t *testing.T) {
	for _, s := range allSetups() {
		f := s.f
		for _, P := range []curve.Point{s.PA, s.QA, s.RA} {
			var T curve.Point
			curve.XDBLe(f, &T, &P, &s.c24, s.e2-1)
			if T.IsInfinity(f) != 0 {
				t.Fatalf("%s: 2-torsion point has order below 2^e2", s.params.Name)
			}
			curve.XDBL(f, &T, &T, &s.c24)
			if T.IsInfinity(f) != 1 {
				t.Fatalf("%s: 2-torsion point has order above 2^e2", s.params.Name)
			}
		}
		for _, P := range []curve.Point{s.PB, s.QB, s.RB} {
			var T curve.Point
			curve.XTPLe(f, &T, &P, &s.c3, s.e3-1)
			if T.IsInfinity(f) != 0 {
				t.Fatalf("%s: 3-torsion point has order below 3^e3", s.params.Name)
			}
			curve.XTPL(f, &T, &T, &s.c3)
			if T.IsInfinity(f) != 1 {
				t.Fatalf("%s: 3-torsion point has order above 3^e3", s.params.Name)
			}
		}
	}
}

func TestJInvariantStart(t *testing.T) {
	// A = 6 gives j = 287496; A = 0 gives j = 1728.
	want := map[uint64]uint64{6: 287496, 0: 1728}
	for _, s := range allSetups() {
		f := s.f
		var j, w field.Fp2
		curve.JInvariant(f, &s.cv, &j)
		f.Fp2SetUint64(&w, want[s.params.StartA])
		if f.Fp2Equal(&j, &w) != 1 {
			t.Fatalf("%s: wrong j-invariant for starting curve", s.params.Name)
		}

		// Same curve with a projective scaling of (A:C).
		var cv curve.Curve
		f.Fp2Mul(&cv.A, &s.cv.A, &s.params.A.AffineP)
		f.Fp2Mul(&cv.C, &s.cv.C, &s.params.A.AffineP)
		curve.JInvariant(f, &cv, &j)
		if f.Fp2Equal(&j, &w) != 1 {
			t.Fatalf("%s: j-invariant depends on (A:C) scaling", s.params.Name)
		}
	}
}

func TestCoeffsRoundTrip(t *testing.T) {
	for _, s := range allSetups() {
		f := s.f
		cv := s.c24.Curve(f)
		if f.Fp2Equal(&cv.A, &s.cv.A) != 1 || f.Fp2Equal(&cv.C, &s.cv.C) != 1 {
			t.Fatalf("%s: Coeffs24 round trip failed", s.params.Name)
		}
		cv = s.c3.Curve(f)
		var a4 field.Fp2
		f.Fp2Add(&a4, &s.cv.A, &s.cv.A)
		f.Fp2Add(&a4, &a4, &a4)
		var c4 field.Fp2
		f.Fp2SetUint64(&c4, 4)
		if f.Fp2Equal(&cv.A, &a4) != 1 || f.Fp2Equal(&cv.C, &c4) != 1 {
			t.Fatalf("%s: Coeffs3 round trip failed", s.params.Name)
		}
	}
}

func TestRecoverA(t *testing.T) {
	for _, s := range allSetups() {
		f := s.f
		for _, dp := range []*sike.DomainParams{&s.params.A, &s.params.B} {
			cv := curve.RecoverA(f, &dp.AffineP, &dp.AffineQ, &dp.AffineR)
			var a field.Fp2
			f.Fp2SetUint64(&a, s.params.StartA)
			if f.Fp2Equal(&cv.A, &a) != 1 {
				t.Fatalf("%s: RecoverA did not find the starting curve", s.params.Name)
			}
		}
	}
}

func TestDoubleTripleConsistency(t *testing.T) {
	for _, s := range allSetups() {
		f := s.f
		a24 := s.cv.A24(f)
		for _, P := range []curve.Point{s.PA, s.QB, s.RB} {
			// XDBLADD(P, P, O) doubles P on its first output.
			P2 := P
			Q := P
			var O curve.Point
			f.Fp2One(&O.X)
			curve.XDBLADD(f, &P2, &Q, &O, &a24)
			var D curve.Point
			curve.XDBL(f, &D, &P, &s.c24)
			if D.Equal(f, &P2) != 1 {
				t.Fatalf("%s: XDBL and XDBLADD disagree", s.params.Name)
			}

			// [3]P = [2]P + P, with difference P.
			T2 := D
			S := P
			curve.XDBLADD(f, &T2, &S, &P, &a24)
			var T curve.Point
			curve.XTPL(f, &T, &P, &s.c3)
			if T.Equal(f, &S) != 1 {
				t.Fatalf("%s: XTPL and differential addition disagree", s.params.Name)
			}
		}
	}
}

// ladderScalar encodes m over the provided number of bytes.
func ladderScalar(m *big.Int, n int) []byte {
	b := m.Bytes()
	r := make([]byte, n)
	for i := range b {
		r[i] = b[len(b)-1-i]
	}
	return r
}

func TestLadder3pt(t *testing.T) {
	for _, s := range allSetups() {
		f := s.f
		a24 := s.cv.A24(f)
		nbits := s.params.A.SecretBitLen
		nbytes := s.params.A.SecretByteLen
		var rng prng
		rng.init("test ladder " + s.params.Name)
		for i := 0; i < 10; i++ {
			buf := make([]byte, nbytes)
			rng.generate(buf)
			buf[nbytes-1] &= 0x3F
			for j, k := 0, len(buf)-1; j < k; j, k = j+1, k-1 {
				buf[j], buf[k] = buf[k], buf[j]
			}
			m := new(big.Int).SetBytes(buf)
			m.Add(m, big.NewInt(1))
			m1 := new(big.Int).Sub(m, big.NewInt(1))
			m2 := new(big.Int).Add(m, big.NewInt(1))

			L0 := curve.Ladder3pt(f, &s.cv, &s.PA, &s.QA, &s.RA, ladderScalar(m1, nbytes), nbits)
			L1 := curve.Ladder3pt(f, &s.cv, &s.PA, &s.QA, &s.RA, ladderScalar(m, nbytes), nbits)
			L2 := curve.Ladder3pt(f, &s.cv, &s.PA, &s.QA, &s.RA, ladderScalar(m2, nbytes), nbits)

			// P+[m+1]Q = (P+[m]Q) + Q, with difference P+[m-1]Q.
			Q := s.QA
			S := L1
			curve.XDBLADD(f, &Q, &S, &L0, &a24)
			if S.Equal(f, &L2) != 1 {
				t.Fatalf("%s: ladder outputs are not consecutive", s.params.Name)
			}
		}

		// m = 0 yields P, m = 1 yields P+Q.
		zero := make([]byte, nbytes)
		L := curve.Ladder3pt(f, &s.cv, &s.PA, &s.QA, &s.RA, zero, nbits)
		if L.Equal(f, &s.PA) != 1 {
			t.Fatalf("%s: ladder with m=0", s.params.Name)
		}
		one := make([]byte, nbytes)
		one[0] = 1
		L = curve.Ladder3pt(f, &s.cv, &s.PA, &s.QA, &s.RA, one, nbits)
		P := s.PA
		S := s.QA
		curve.XDBLADD(f, &P, &S, &s.RA, &a24)
		if L.Equal(f, &S) != 1 {
			t.Fatalf("%s: ladder with m=1", s.params.Name)
		}

		// Q has order 2^e2: m and m + 2^e2 give the same point.
		var rng2 prng
		rng2.init("test ladder period " + s.params.Name)
		buf := make([]byte, nbytes+1)
		rng2.generate(buf[:nbytes])
		buf[nbytes-1] &= byte(1<<uint(s.e2-8*(nbytes-1))) - 1
		La := curve.Ladder3pt(f, &s.cv, &s.PA, &s.QA, &s.RA, buf, s.e2+1)
		buf[s.e2>>3] |= 1 << uint(s.e2&7)
		Lb := curve.Ladder3pt(f, &s.cv, &s.PA, &s.QA, &s.RA, buf, s.e2+1)
		if La.Equal(f, &Lb) != 1 {
			t.Fatalf("%s: ladder is not periodic in the order of Q", s.params.Name)
		}
	}
}

func TestToAffine(t *testing.T) {
	for _, s := range allSetups() {
		f := s.f
		var P curve.Point
		curve.XDBL(f, &P, &s.PB, &s.c24)
		var x field.Fp2
		P.ToAffine(f, &x)
		var Q curve.Point
		Q.FromAffine(f, &x)
		if Q.Equal(f, &P) != 1 {
			t.Fatalf("%s: affine round trip failed", s.params.Name)
		}
		var O curve.Point
		f.Fp2One(&O.X)
		O.ToAffine(f, &x)
		if f.Fp2IsZero(&x) != 1 {
			t.Fatalf("%s: affine x of infinity is not zero", s.params.Name)
		}
	}
}

func TestCondSwap(t *testing.T) {
	s := newSetup(sike.SIKEp434)
	f := s.f
	P, Q := s.PA, s.QA
	P.CondSwap(&Q, 0)
	if P.Equal(f, &s.PA) != 1 || Q.Equal(f, &s.QA) != 1 {
		t.Fatalf("CondSwap(0) modified the points")
	}
	P.CondSwap(&Q, 1)
	if P.Equal(f, &s.QA) != 1 || Q.Equal(f, &s.PA) != 1 {
		t.Fatalf("CondSwap(1) did not swap the points")
	}
}
