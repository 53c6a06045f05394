package sike

import (
	"strings"

	"github.com/doubleodd/go-sike/internal/curve"
	"github.com/doubleodd/go-sike/internal/field"
)

// DomainParams holds the public data of one side of the exchange: the
// basis of the torsion subgroup used for that side's secret isogeny,
// the tree traversal strategy, and the size of secret scalars.
type DomainParams struct {
	// Affine x-coordinates of P, Q and R = P - Q.
	AffineP, AffineQ, AffineR field.Fp2

	// Tree traversal strategy; each entry is a number of 4-isogeny
	// (side A) or 3-isogeny (side B) steps.
	Strategy []uint32

	// Secret scalars are integers in [0, 2^SecretBitLen), encoded
	// over SecretByteLen bytes (unsigned little-endian).
	SecretBitLen  int
	SecretByteLen int
}

// Params is a complete SIDH/SIKE parameter set. Values of this type are
// immutable and shared; use ParamsByName() or the package-level
// variables to obtain one.
type Params struct {
	Name  string
	Field *field.Prime

	// Affine coefficient A of the starting curve y^2 = x^3 + A*x^2 + x
	// (a small integer).
	StartA uint64

	A DomainParams
	B DomainParams

	// SIKE sizes (in bytes): random message, shared secret, and the
	// resulting key and ciphertext sizes.
	MsgLen           int
	SharedSecretSize int
}

// Supported parameter sets.
var (
	SIKEp434 = &Params{
		Name:   "p434",
		Field:  field.P434,
		StartA: 6,
		A: DomainParams{
			AffineP:       p434PA,
			AffineQ:       p434QA,
			AffineR:       p434RA,
			Strategy:      p434StrategyA,
			SecretBitLen:  216,
			SecretByteLen: 27,
		},
		B: DomainParams{
			AffineP:       p434PB,
			AffineQ:       p434QB,
			AffineR:       p434RB,
			Strategy:      p434StrategyB,
			SecretBitLen:  217,
			SecretByteLen: 28,
		},
		MsgLen:           16,
		SharedSecretSize: 16,
	}

	SIKEp503 = &Params{
		Name:   "p503",
		Field:  field.P503,
		StartA: 0,
		A: DomainParams{
			AffineP:       p503PA,
			AffineQ:       p503QA,
			AffineR:       p503RA,
			Strategy:      p503StrategyA,
			SecretBitLen:  250,
			SecretByteLen: 32,
		},
		B: DomainParams{
			AffineP:       p503PB,
			AffineQ:       p503QB,
			AffineR:       p503RB,
			Strategy:      p503StrategyB,
			SecretBitLen:  252,
			SecretByteLen: 32,
		},
		MsgLen:           24,
		SharedSecretSize: 24,
	}
)

var allParams = []*Params{SIKEp434, SIKEp503}

// ParamsByName returns the parameter set with the provided name
// ("p434" or "p503"; a "SIKE" prefix is tolerated, and the comparison
// is case-insensitive). If no such set exists, ErrInvalidArgument is
// returned.
func ParamsByName(name string) (*Params, error) {
	n := strings.ToLower(name)
	n = strings.TrimPrefix(n, "sike")
	for _, p := range allParams {
		if p.Name == n {
			return p, nil
		}
	}
	return nil, errorf(ErrInvalidArgument, "unknown parameter set %q", name)
}

// Names returns the names of all supported parameter sets.
func Names() []string {
	var r []string
	for _, p := range allParams {
		r = append(r, p.Name)
	}
	return r
}

// PublicKeySize is the size (in bytes) of an encoded public key: three
// GF(p^2) elements.
func (params *Params) PublicKeySize() int {
	return 3 * params.Field.Fp2ByteLen()
}

// SIDHSharedSecretSize is the size (in bytes) of the SIDH shared secret
// (an encoded j-invariant).
func (params *Params) SIDHSharedSecretSize() int {
	return params.Field.Fp2ByteLen()
}

// PrivateKeySize is the size (in bytes) of an encoded private key of
// the provided variant. A SIKE private key also contains the random
// value s and the public key.
func (params *Params) PrivateKeySize(v KeyVariant) int {
	switch v {
	case KeyVariantSIDHA:
		return params.A.SecretByteLen
	case KeyVariantSIDHB:
		return params.B.SecretByteLen
	default:
		return params.MsgLen + params.B.SecretByteLen + params.PublicKeySize()
	}
}

// CiphertextSize is the size (in bytes) of a SIKE ciphertext.
func (params *Params) CiphertextSize() int {
	return params.PublicKeySize() + params.MsgLen
}

// startCurve returns the starting curve (A:1).
func (params *Params) startCurve() curve.Curve {
	var a field.Fp2
	params.Field.Fp2SetUint64(&a, params.StartA)
	var cv curve.Curve
	cv.FromAffine(params.Field, &a)
	return cv
}

func (dp *DomainParams) basis(f *field.Prime) []curve.Point {
	pts := make([]curve.Point, 3)
	pts[0].FromAffine(f, &dp.AffineP)
	pts[1].FromAffine(f, &dp.AffineQ)
	pts[2].FromAffine(f, &dp.AffineR)
	return pts
}
