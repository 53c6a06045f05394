package field

import (
	"fmt"
	"math/big"
)

// Prime describes a SIDH prime p = 2^e2 * 3^e3 - 1, along with all the
// constants needed for Montgomery arithmetic modulo p. All constants are
// derived from (e2, e3) when the Prime is created; a Prime is immutable
// afterwards and can be shared between goroutines.
type Prime struct {
	name string
	e2   uint
	e3   uint

	bits      int // bit length of p
	words     int // W: limbs per element, 2^(64*W) > 4p
	byteLen   int // bytes per encoded element
	zeroWords int // number of zero low limbs in p+1

	p    Fp     // p
	p2   Fp     // 2*p
	p4   Fp     // 4*p
	pp1  Fp     // p+1
	pm2  Fp     // p-2 (inversion exponent)
	one  Fp     // R mod p (1 in Montgomery representation)
	r2   Fp     // R^2 mod p
	pinv uint64 // -1/p mod 2^64

	pbig *big.Int
}

// Supported primes.
var (
	P434 = NewPrime("p434", 216, 137)
	P503 = NewPrime("p503", 250, 159)
	P610 = NewPrime("p610", 305, 192)
	P751 = NewPrime("p751", 372, 239)
)

// NewPrime derives all constants for p = 2^e2 * 3^e3 - 1. It panics if
// the prime does not fit on MaxWords limbs, or if e2 < 64 (the
// Montgomery reduction relies on p = -1 mod 2^64).
func NewPrime(name string, e2, e3 uint) *Prime {
	if e2 < 64 {
		panic(fmt.Sprintf("field: %s: e2 = %d is too small", name, e2))
	}
	p := new(big.Int).Lsh(big.NewInt(1), e2)
	p.Mul(p, new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(e3)), nil))
	p.Sub(p, big.NewInt(1))

	pr := &Prime{
		name: name,
		e2:   e2,
		e3:   e3,
		bits: p.BitLen(),
		pbig: p,
	}

	// 4p < 2^(bits+2); one extra bit keeps room for the lazy
	// values up to 8p.
	pr.words = (pr.bits + 3 + 63) >> 6
	if pr.words > MaxWords {
		panic(fmt.Sprintf("field: %s: %d bits do not fit on %d words", name, pr.bits, MaxWords))
	}
	pr.byteLen = (pr.bits + 7) >> 3
	pr.zeroWords = int(e2 >> 6)

	r := new(big.Int).Lsh(big.NewInt(1), uint(64*pr.words))
	setBig(&pr.p, p)
	setBig(&pr.p2, new(big.Int).Lsh(p, 1))
	setBig(&pr.p4, new(big.Int).Lsh(p, 2))
	setBig(&pr.pp1, new(big.Int).Add(p, big.NewInt(1)))
	setBig(&pr.pm2, new(big.Int).Sub(p, big.NewInt(2)))
	setBig(&pr.one, new(big.Int).Mod(r, p))
	setBig(&pr.r2, new(big.Int).Mod(new(big.Int).Mul(r, r), p))

	// -1/p mod 2^64; this is 1 for all SIDH primes.
	m64 := new(big.Int).Lsh(big.NewInt(1), 64)
	pinv := new(big.Int).ModInverse(new(big.Int).Mod(p, m64), m64)
	pinv.Sub(m64, pinv)
	pr.pinv = pinv.Uint64()

	return pr
}

// Name returns the short name of the prime (e.g. "p434").
func (pr *Prime) Name() string {
	return pr.name
}

// Exponents returns (e2, e3).
func (pr *Prime) Exponents() (uint, uint) {
	return pr.e2, pr.e3
}

// Bits returns the bit length of p.
func (pr *Prime) Bits() int {
	return pr.bits
}

// Words returns the number of 64-bit limbs used for an element.
func (pr *Prime) Words() int {
	return pr.words
}

// ByteLen returns the length of an encoded GF(p) element.
func (pr *Prime) ByteLen() int {
	return pr.byteLen
}

// Fp2ByteLen returns the length of an encoded GF(p^2) element.
func (pr *Prime) Fp2ByteLen() int {
	return pr.byteLen << 1
}

// Int returns a copy of p as a big integer.
func (pr *Prime) Int() *big.Int {
	return new(big.Int).Set(pr.pbig)
}

func setBig(d *Fp, x *big.Int) {
	*d = Fp{}
	m := new(big.Int).SetUint64(^uint64(0))
	t := new(big.Int).Set(x)
	for i := 0; i < MaxWords && t.Sign() > 0; i++ {
		d[i] = new(big.Int).And(t, m).Uint64()
		t.Rsh(t, 64)
	}
	if t.Sign() != 0 {
		panic("field: constant overflow")
	}
}
