package field

import (
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"
)

// =====================================================================
// Custom PRNG (based on SHA-512) for reproducible tests.

type prng struct {
	buf [64]byte
	ptr int
}

// Initialize the PRNG with an explicit seed.
func (p *prng) init(seed string) {
	hv := sha512.Sum512([]byte(seed))
	copy(p.buf[:], hv[:])
	p.ptr = 0
}

// Fill the provided slice with pseudorandom bytes from the PRNG.
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

// Generate a random integer over the W limbs of the prime.
func (p *prng) mkwords(pr *Prime, d *Fp) {
	var bb [8 * MaxWords]byte
	p.generate(bb[:8*pr.words])
	*d = Fp{}
	for i := 0; i < pr.words; i++ {
		d[i] = binary.LittleEndian.Uint64(bb[8*i:])
	}
}

// Make a new random field element from the PRNG, in [0, 2p).
func (p *prng) mkfp(pr *Prime, d *Fp) {
	var t Fp
	p.mkwords(pr, &t)
	x := fpToInt(pr, &t)
	x.Mod(x, new(big.Int).Lsh(pr.pbig, 1))
	setBig(d, x)
}

// Make a new random GF(p^2) element from the PRNG.
func (p *prng) mkfp2(pr *Prime, d *Fp2) {
	p.mkfp(pr, &d.A)
	p.mkfp(pr, &d.B)
}

var testPrimes = []*Prime{P434, P503, P610, P751}

// Get the plain integer held in the W limbs of a (no reduction).
func fpToInt(pr *Prime, a *Fp) *big.Int {
	var x, y big.Int
	for i := pr.words - 1; i >= 0; i-- {
		y.SetUint64(a[i])
		x.Lsh(&x, 64).Add(&x, &y)
	}
	return &x
}

// Get the field element represented by a (Montgomery representation),
// as a big integer in [0, p).
func fpToBig(pr *Prime, a *Fp) *big.Int {
	x := fpToInt(pr, a)
	r := new(big.Int).Lsh(big.NewInt(1), uint(64*pr.words))
	r.ModInverse(r, pr.pbig)
	x.Mul(x, r)
	return x.Mod(x, pr.pbig)
}

// Set d to the Montgomery representation of x (x in [0, p)).
func bigToFp(pr *Prime, d *Fp, x *big.Int) {
	var t Fp
	setBig(&t, x)
	fp_to_mont(pr, d, &t)
}

// Get the string representation of a W-limb integer (hexadecimal, with
// '0x' prefix).
func fpToString(pr *Prime, a *Fp) string {
	var sb strings.Builder
	sb.WriteString("0x")
	for i := pr.words - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016X", a[i])
	}
	return sb.String()
}

func fp2ToString(pr *Prime, a *Fp2) string {
	return "(" + fpToString(pr, &a.A) + ", " + fpToString(pr, &a.B) + ")"
}

// Decode a sequence of bytes into a big integer, with unsigned little-endian
// convention.
func decodeToBigLE(src []byte) *big.Int {
	n := len(src)
	tt := make([]byte, n)
	for i := 0; i < n; i++ {
		tt[i] = src[n-1-i]
	}
	return new(big.Int).SetBytes(tt)
}
