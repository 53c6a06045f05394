package sike

import (
	cryptorand "crypto/rand"
	"crypto/subtle"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/doubleodd/go-sike/internal/scalar"
)

// This file implements the SIKE key encapsulation mechanism on top of
// SIDH, with the Fujisaki-Okamoto style transform of the NIST round 3
// submission. SHAKE256 is used for all hashing:
//
//   r  = SHAKE256(m || pk), reduced to a side A secret scalar
//   c0 = public key of side A for r
//   c1 = m XOR SHAKE256(j)      (j = SIDH shared secret)
//   ss = SHAKE256(m || c0 || c1)
//
// Decapsulation recomputes c0 from the recovered m; on mismatch, the
// shared secret is derived from the secret value s instead of m
// (implicit rejection), without any observable branch.

// GenerateKeyPair creates a new SIKE key pair from the random source rng
// (crypto/rand.Reader if nil).
func GenerateKeyPair(params *Params, rng io.Reader) (*PrivateKey, *PublicKey, error) {
	prv := NewPrivateKey(params, KeyVariantSIKE)
	if err := prv.Generate(rng); err != nil {
		return nil, nil, err
	}
	return prv, prv.GeneratePublicKey(), nil
}

// Encapsulate generates a random message with rng (crypto/rand.Reader if
// nil) and encapsulates it for the public key pub. It returns the
// ciphertext and the shared secret.
func Encapsulate(rng io.Reader, pub *PublicKey) (ct, ss []byte, err error) {
	if rng == nil {
		rng = cryptorand.Reader
	}
	if err := checkEncapsKey(pub); err != nil {
		return nil, nil, err
	}
	m := make([]byte, pub.params.MsgLen)
	if _, err := io.ReadFull(rng, m); err != nil {
		return nil, nil, errors.Wrap(err, "sike: reading message")
	}
	ct, ss = encapsulate(pub, m)
	return ct, ss, nil
}

func checkEncapsKey(pub *PublicKey) error {
	if pub.variant.isA() {
		return errors.Wrap(ErrIncompatibleKeys, "encapsulation needs a side B public key")
	}
	if len(pub.enc) == 0 {
		return errors.Wrap(ErrInvalidKey, "public key is not set")
	}
	return nil
}

// encapsulate is the deterministic part of Encapsulate(), for message m.
func encapsulate(pub *PublicKey, m []byte) (ct, ss []byte) {
	params := pub.params
	eph := ephemeralKey(params, m, pub.enc)
	j := deriveSecret(eph, pub)

	ct = eph.pub.Export(make([]byte, 0, params.CiphertextSize()))
	ct = append(ct, m...)
	xorHash(ct[len(ct)-len(m):], j)
	ss = shake(params.SharedSecretSize, m, ct)
	return ct, ss
}

// Decapsulate recovers the shared secret from the ciphertext ct, with the
// SIKE private key prv. An invalid ciphertext of the right length yields
// a pseudorandom shared secret (implicit rejection) and no error; an
// error is returned only for ciphertexts that cannot be decoded at all.
func Decapsulate(prv *PrivateKey, ct []byte) ([]byte, error) {
	params := prv.params
	if prv.variant != KeyVariantSIKE {
		return nil, errors.Wrap(ErrInvalidArgument, "decapsulation needs a SIKE private key")
	}
	if prv.pub == nil {
		return nil, errors.Wrap(ErrInvalidKey, "private key is not set")
	}
	if len(ct) != params.CiphertextSize() {
		return nil, errorf(ErrInvalidCiphertext, "ciphertext has length %d, expected %d",
			len(ct), params.CiphertextSize())
	}
	npk := params.PublicKeySize()
	c0 := NewPublicKey(params, KeyVariantSIDHA)
	if c0.Import(ct[:npk]) != nil {
		return nil, errors.Wrap(ErrInvalidCiphertext, "c0 coordinate out of range")
	}

	j := deriveSecret(prv, c0)
	m := append([]byte(nil), ct[npk:]...)
	xorHash(m, j)

	eph := ephemeralKey(params, m, prv.pub.enc)
	ok := scalar.Equal(eph.pub.enc, ct[:npk])
	scalar.Select(m, m, prv.s, ok)
	ss := shake(params.SharedSecretSize, m, ct)
	scalar.Zeroize(m)
	return ss, nil
}

// ephemeralKey derives the side A key of the encapsulation from the
// message and the encoded recipient public key.
func ephemeralKey(params *Params, m, pk []byte) *PrivateKey {
	eph := NewPrivateKey(params, KeyVariantSIDHA)
	h := sha3.NewShake256()
	h.Write(m)
	h.Write(pk)
	h.Read(eph.k)
	scalar.Clamp(eph.k, params.A.SecretBitLen)
	eph.pub = eph.computePublicKey()
	return eph
}

// xorHash XORs d with the first len(d) bytes of SHAKE256(j).
func xorHash(d, j []byte) {
	h := shake(len(d), j)
	subtle.XORBytes(d, d, h)
}

func shake(n int, chunks ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, c := range chunks {
		h.Write(c)
	}
	out := make([]byte, n)
	h.Read(out)
	return out
}
