package sike

import (
	"context"
	cryptorand "crypto/rand"
	"io"

	"github.com/pkg/errors"

	"github.com/doubleodd/go-sike/internal/batch"
)

// EncapsulateBatch runs Encapsulate() for each of the provided public
// keys, spreading the work over at most workers goroutines (one per CPU
// if workers <= 0). All messages are read from rng (crypto/rand.Reader
// if nil) before any work starts, in key order, so that the results do
// not depend on scheduling. Output slices are indexed like pubs.
func EncapsulateBatch(ctx context.Context, rng io.Reader, pubs []*PublicKey, workers int) (cts, sss [][]byte, err error) {
	if rng == nil {
		rng = cryptorand.Reader
	}
	msgs := make([][]byte, len(pubs))
	for i, pub := range pubs {
		if err := checkEncapsKey(pub); err != nil {
			return nil, nil, errors.WithMessagef(err, "key %d", i)
		}
		msgs[i] = make([]byte, pub.params.MsgLen)
		if _, err := io.ReadFull(rng, msgs[i]); err != nil {
			return nil, nil, errors.Wrap(err, "sike: reading message")
		}
	}

	cts = make([][]byte, len(pubs))
	sss = make([][]byte, len(pubs))
	err = batch.Map(ctx, len(pubs), workers, func(_ context.Context, i int) error {
		cts[i], sss[i] = encapsulate(pubs[i], msgs[i])
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return cts, sss, nil
}

// DecapsulateBatch runs Decapsulate() with private key prv on each of
// the provided ciphertexts, spreading the work over at most workers
// goroutines. The first decoding error (if any) is returned, annotated
// with the index of the faulty ciphertext.
func DecapsulateBatch(ctx context.Context, prv *PrivateKey, cts [][]byte, workers int) ([][]byte, error) {
	sss := make([][]byte, len(cts))
	err := batch.Map(ctx, len(cts), workers, func(_ context.Context, i int) error {
		ss, err := Decapsulate(prv, cts[i])
		if err != nil {
			return errors.WithMessagef(err, "ciphertext %d", i)
		}
		sss[i] = ss
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sss, nil
}
