package sike

import (
	"bytes"
	cryptorand "crypto/rand"
	"io"

	"github.com/pkg/errors"

	"github.com/doubleodd/go-sike/internal/curve"
	"github.com/doubleodd/go-sike/internal/field"
	"github.com/doubleodd/go-sike/internal/scalar"
)

// This file implements the SIDH key exchange:
//
//   - Private and public key types, with their encodings
//   - Key pair generation (secret isogeny walk from the starting curve)
//   - Shared secret derivation (j-invariant of the final curve)
//
// Side A walks 2^e2-isogenies (as a chain of 4-isogenies); side B walks
// 3^e3-isogenies. A SIKE private key is a side B key that also carries
// the implicit-rejection value s and a copy of the public key.

// KeyVariant identifies the side of a key.
type KeyVariant uint

const (
	// KeyVariantSIDHA is a SIDH key for side A (2-power isogenies).
	KeyVariantSIDHA KeyVariant = 1 << 0
	// KeyVariantSIDHB is a SIDH key for side B (3-power isogenies).
	KeyVariantSIDHB KeyVariant = 1 << 1
	// KeyVariantSIKE is a SIKE KEM key; it works on side B.
	KeyVariantSIKE KeyVariant = 1<<2 | KeyVariantSIDHB
)

func (v KeyVariant) isA() bool {
	return v&KeyVariantSIDHA != 0
}

func (v KeyVariant) valid() bool {
	return v == KeyVariantSIDHA || v == KeyVariantSIDHB || v == KeyVariantSIKE
}

// PublicKey contains the affine x-coordinates of the images of the other
// side's basis points P, Q and P-Q through the secret isogeny.
type PublicKey struct {
	params  *Params
	variant KeyVariant
	x       [3]field.Fp2
	enc     []byte
}

// PrivateKey contains a secret scalar, and (for SIKE keys) the random
// value s used for implicit rejection. The public key is cached.
type PrivateKey struct {
	params  *Params
	variant KeyVariant
	s       []byte
	k       []byte
	pub     *PublicKey
}

// NewPublicKey returns an empty public key for the given parameters and
// variant. It must be filled with Import() before use.
func NewPublicKey(params *Params, v KeyVariant) *PublicKey {
	if !v.valid() {
		panic("sike: invalid key variant")
	}
	return &PublicKey{params: params, variant: v}
}

// NewPrivateKey returns an empty private key for the given parameters
// and variant. It must be filled with Generate() or Import() before use.
func NewPrivateKey(params *Params, v KeyVariant) *PrivateKey {
	if !v.valid() {
		panic("sike: invalid key variant")
	}
	prv := &PrivateKey{params: params, variant: v}
	prv.k = make([]byte, prv.domain().SecretByteLen)
	if v == KeyVariantSIKE {
		prv.s = make([]byte, params.MsgLen)
	}
	return prv
}

// Params returns the parameter set of the key.
func (pub *PublicKey) Params() *Params {
	return pub.params
}

// Variant returns the key variant.
func (pub *PublicKey) Variant() KeyVariant {
	return pub.variant
}

// Size returns the size (in bytes) of the encoded public key.
func (pub *PublicKey) Size() int {
	return pub.params.PublicKeySize()
}

// Import decodes a public key. An error is returned if src does not have
// the exact public key size, or if a coordinate is not canonically
// encoded (i.e. not lower than p).
func (pub *PublicKey) Import(src []byte) error {
	f := pub.params.Field
	n := f.Fp2ByteLen()
	if len(src) != 3*n {
		return errorf(ErrInvalidKey, "public key has length %d, expected %d", len(src), 3*n)
	}
	var ok uint64 = 1
	for i := 0; i < 3; i++ {
		ok &= f.Fp2Decode(&pub.x[i], src[i*n:(i+1)*n])
	}
	if ok != 1 {
		return errors.Wrap(ErrInvalidKey, "public key coordinate out of range")
	}
	pub.enc = append(pub.enc[:0], src...)
	return nil
}

// Export appends the encoded public key to dst, and returns the new
// slice.
func (pub *PublicKey) Export(dst []byte) []byte {
	head, tail := prepareAppend(dst, len(pub.enc))
	copy(tail, pub.enc)
	return head
}

// Equal returns true if both keys use the same parameters and encode to
// the same bytes. The comparison is not constant-time (public keys are
// public).
func (pub *PublicKey) Equal(other *PublicKey) bool {
	if other == nil || pub.params != other.params {
		return false
	}
	return bytes.Equal(pub.enc, other.enc)
}

func (pub *PublicKey) setAffine(pts []curve.Point) {
	f := pub.params.Field
	f.Fp2BatchInv3(&pub.x[0], &pub.x[1], &pub.x[2], &pts[0].Z, &pts[1].Z, &pts[2].Z)
	pub.enc = pub.enc[:0]
	for i := 0; i < 3; i++ {
		f.Fp2Mul(&pub.x[i], &pub.x[i], &pts[i].X)
		pub.enc = f.Fp2Encode(pub.enc, &pub.x[i])
	}
}

// Params returns the parameter set of the key.
func (prv *PrivateKey) Params() *Params {
	return prv.params
}

// Variant returns the key variant.
func (prv *PrivateKey) Variant() KeyVariant {
	return prv.variant
}

// Size returns the size (in bytes) of the encoded private key.
func (prv *PrivateKey) Size() int {
	return prv.params.PrivateKeySize(prv.variant)
}

func (prv *PrivateKey) domain() *DomainParams {
	if prv.variant.isA() {
		return &prv.params.A
	}
	return &prv.params.B
}

// Generate fills the private key with random bytes from rng, and computes
// the matching public key. If rng is nil, then crypto/rand.Reader is
// used (this is the recommended way). The secret scalar is uniform in
// [0, 2^n) for the bit length n of the key side.
func (prv *PrivateKey) Generate(rng io.Reader) error {
	if rng == nil {
		rng = cryptorand.Reader
	}
	if prv.variant == KeyVariantSIKE {
		if _, err := io.ReadFull(rng, prv.s); err != nil {
			return errors.Wrap(err, "sike: reading random value")
		}
	}
	if _, err := io.ReadFull(rng, prv.k); err != nil {
		return errors.Wrap(err, "sike: reading secret scalar")
	}
	scalar.Clamp(prv.k, prv.domain().SecretBitLen)
	prv.pub = prv.computePublicKey()
	return nil
}

// GeneratePublicKey returns the public key matching this private key.
// The returned value is a copy that the caller may modify.
func (prv *PrivateKey) GeneratePublicKey() *PublicKey {
	if prv.pub == nil {
		prv.pub = prv.computePublicKey()
	}
	pub := NewPublicKey(prv.params, prv.variant)
	pub.x = prv.pub.x
	pub.enc = append([]byte(nil), prv.pub.enc...)
	return pub
}

// Export appends the encoded private key to dst, and returns the new
// slice. A SIDH key is its secret scalar; a SIKE key is s, then the
// secret scalar, then the public key.
func (prv *PrivateKey) Export(dst []byte) []byte {
	if prv.variant == KeyVariantSIKE {
		dst = scalar.Encode(dst, prv.s)
	}
	dst = scalar.Encode(dst, prv.k)
	if prv.variant == KeyVariantSIKE {
		dst = prv.pub.Export(dst)
	}
	return dst
}

// Import decodes a private key. For SIDH keys, the public key is
// recomputed; for SIKE keys, it is decoded from the trailing bytes. The
// only error condition is a bad length (or, for SIKE keys, an invalid
// embedded public key).
func (prv *PrivateKey) Import(src []byte) error {
	dp := prv.domain()
	if len(src) != prv.Size() {
		return errorf(ErrInvalidKey, "private key has length %d, expected %d", len(src), prv.Size())
	}
	if prv.variant == KeyVariantSIKE {
		copy(prv.s, src[:len(prv.s)])
		src = src[len(prv.s):]
	}
	// Bits beyond the secret bit length are dropped.
	scalar.Decode(prv.k, src[:dp.SecretByteLen], dp.SecretBitLen)
	if prv.variant != KeyVariantSIKE {
		prv.pub = prv.computePublicKey()
		return nil
	}
	pub := NewPublicKey(prv.params, prv.variant)
	if err := pub.Import(src[dp.SecretByteLen:]); err != nil {
		return err
	}
	prv.pub = pub
	return nil
}

// computePublicKey runs the secret isogeny walk from the starting curve,
// pushing the other side's basis through it.
func (prv *PrivateKey) computePublicKey() *PublicKey {
	params := prv.params
	f := params.Field
	cv := params.startCurve()

	own, other := &params.A, &params.B
	if !prv.variant.isA() {
		own, other = other, own
	}
	basis := own.basis(f)
	K := curve.Ladder3pt(f, &cv, &basis[0], &basis[1], &basis[2], prv.k, own.SecretBitLen)
	pts := other.basis(f)
	if prv.variant.isA() {
		walk4(f, cv.Coeffs24(f), K, pts, own.Strategy)
	} else {
		walk3(f, cv.Coeffs3(f), K, pts, own.Strategy)
	}

	pub := NewPublicKey(params, prv.variant)
	pub.setAffine(pts)
	return pub
}

// DeriveSecret computes the SIDH shared secret between our private key
// and the peer's public key: the encoded j-invariant of the final curve
// (params.SIDHSharedSecretSize() bytes). Both keys must use the same
// parameters, and be on opposite sides.
func DeriveSecret(prv *PrivateKey, pub *PublicKey) ([]byte, error) {
	if prv.params != pub.params {
		return nil, errors.Wrap(ErrIncompatibleKeys, "parameter sets differ")
	}
	if prv.variant.isA() == pub.variant.isA() {
		return nil, errors.Wrap(ErrIncompatibleKeys, "keys are on the same side")
	}
	if len(pub.enc) == 0 {
		return nil, errors.Wrap(ErrInvalidKey, "public key is not set")
	}
	return deriveSecret(prv, pub), nil
}

func deriveSecret(prv *PrivateKey, pub *PublicKey) []byte {
	f := prv.params.Field
	dp := prv.domain()

	cv := curve.RecoverA(f, &pub.x[0], &pub.x[1], &pub.x[2])
	var P, Q, R curve.Point
	P.FromAffine(f, &pub.x[0])
	Q.FromAffine(f, &pub.x[1])
	R.FromAffine(f, &pub.x[2])
	K := curve.Ladder3pt(f, &cv, &P, &Q, &R, prv.k, dp.SecretBitLen)

	if prv.variant.isA() {
		c := walk4(f, cv.Coeffs24(f), K, nil, dp.Strategy)
		cv = c.Curve(f)
	} else {
		c := walk3(f, cv.Coeffs3(f), K, nil, dp.Strategy)
		cv = c.Curve(f)
	}
	var j field.Fp2
	curve.JInvariant(f, &cv, &j)
	return f.Fp2Encode(nil, &j)
}

// walk4 computes the 2^e2-isogeny with kernel generated by R, as a chain
// of 4-isogenies, following the provided strategy. The points in pts are
// evaluated in place. The coefficients of the final curve are returned.
func walk4(f *field.Prime, c curve.Coeffs24, R curve.Point, pts []curve.Point, strat []uint32) curve.Coeffs24 {
	n := len(strat)
	var phi curve.Isogeny4
	stack := make([]curve.Point, 0, n)
	rows := make([]int, 0, n)
	i, s := 0, 0
	for j := 1; j <= n; j++ {
		for i <= n-j {
			stack = append(stack, R)
			rows = append(rows, i)
			k := int(strat[s])
			s++
			curve.XDBLe(f, &R, &R, &c, 2*k)
			i += k
		}
		c = phi.Generate(f, &R)
		phi.EvalMany(f, stack)
		phi.EvalMany(f, pts)

		top := len(stack) - 1
		R, i = stack[top], rows[top]
		stack, rows = stack[:top], rows[:top]
	}
	c = phi.Generate(f, &R)
	phi.EvalMany(f, pts)
	return c
}

// walk3 is the 3^e3 counterpart of walk4.
func walk3(f *field.Prime, c curve.Coeffs3, R curve.Point, pts []curve.Point, strat []uint32) curve.Coeffs3 {
	n := len(strat)
	var phi curve.Isogeny3
	stack := make([]curve.Point, 0, n)
	rows := make([]int, 0, n)
	i, s := 0, 0
	for j := 1; j <= n; j++ {
		for i <= n-j {
			stack = append(stack, R)
			rows = append(rows, i)
			k := int(strat[s])
			s++
			curve.XTPLe(f, &R, &R, &c, k)
			i += k
		}
		c = phi.Generate(f, &R)
		phi.EvalMany(f, stack)
		phi.EvalMany(f, pts)

		top := len(stack) - 1
		R, i = stack[top], rows[top]
		stack, rows = stack[:top], rows[:top]
	}
	c = phi.Generate(f, &R)
	phi.EvalMany(f, pts)
	return c
}

// Extend a slice for appending n bytes. The two returned values are the
// new extended slice (no extra allocation if the original slice was large
// enough), and the sub-slice where data should be written.
func prepareAppend(b []byte, n int) (head, tail []byte) {
	len1 := len(b)
	len2 := len1 + n
	if cap(b) >= len2 {
		head = b[:len2]
	} else {
		head = make([]byte, len2)
		copy(head, b)
	}
	tail = head[len1:]
	return
}
