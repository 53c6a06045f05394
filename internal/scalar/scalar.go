package scalar

import (
	"crypto/subtle"
)

// This file contains helper functions for SIDH secret scalars. A secret
// scalar is an integer in [0, 2^n) for a bit length n fixed by the
// parameter set; it is encoded over (n+7)/8 bytes in unsigned
// little-endian convention. Scalars are only used as ladder multipliers,
// so no modular arithmetic is needed; but all functions here must be
// strictly constant-time because scalar values are secret.

// Extend a slice for appending n bytes. The two returned values are the
// new extended slice (no extra allocation if the original slice was large
// enough), and the sub-slice where data should be written.
// (Inspired by https://github.com/gtank/ristretto255 )
func prepareAppend(b []byte, n int) (head, tail []byte) {
	len1 := len(b)   // current length
	len2 := len1 + n // new length after extension
	if cap(b) >= len2 {
		head = b[:len2]
	} else {
		head = make([]byte, len2)
		copy(head, b)
	}
	tail = head[len1:]
	return
}

// ByteLen returns the encoded length of a scalar of nbits bits.
func ByteLen(nbits int) int {
	return (nbits + 7) >> 3
}

// topMask returns the mask for the last byte of an nbits-bit scalar.
func topMask(nbits int) byte {
	r := nbits & 7
	if r == 0 {
		return 0xFF
	}
	return byte(1<<uint(r)) - 1
}

// Bit returns bit i of the little-endian scalar k (0 or 1).
func Bit(k []byte, i int) uint64 {
	return uint64(k[i>>3]>>uint(i&7)) & 1
}

// Clamp clears all bits of index nbits or more in k, so that the value
// is in [0, 2^nbits). k must have length ByteLen(nbits).
func Clamp(k []byte, nbits int) {
	k[len(k)-1] &= topMask(nbits)
}

// Decode copies a scalar from src into d, clearing all bits of index
// nbits or more. src and d must both have length ByteLen(nbits).
// Returned value is 1 if src was already in [0, 2^nbits), 0 otherwise
// (in which case some bits were dropped).
func Decode(d, src []byte, nbits int) uint64 {
	n := ByteLen(nbits)
	copy(d[:n], src[:n])
	hi := d[n-1] &^ topMask(nbits)
	d[n-1] ^= hi
	return uint64((uint32(hi) - 1) >> 31)
}

// Encode appends the scalar k to dst, and returns the new slice.
func Encode(dst, k []byte) []byte {
	head, tail := prepareAppend(dst, len(k))
	copy(tail, k)
	return head
}

// Select sets d to a if ctl == 1, or to b if ctl == 0. All three slices
// must have the same length. ctl MUST be 0 or 1.
func Select(d, a, b []byte, ctl uint64) {
	m := byte(-ctl)
	for i := range d {
		d[i] = b[i] ^ (m & (a[i] ^ b[i]))
	}
}

// Equal returns 1 if a and b have the same length and contents, 0
// otherwise. For slices of the same length, the comparison is
// constant-time.
func Equal(a, b []byte) uint64 {
	return uint64(subtle.ConstantTimeCompare(a, b))
}

// Zeroize clears the provided slice.
func Zeroize(k []byte) {
	for i := range k {
		k[i] = 0
	}
}
