package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/doubleodd/go-sike/sike"
)

const (
	privateKeyFile = "sike.key"
	publicKeyFile  = "sike.pub"

	dirPermMode     = 0700
	privatePermMode = 0600
	publicPermMode  = 0644

	metricsNamespace = "sike"
)

func (st *state) keygenCommand() *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "Generate a SIKE key pair",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "out",
				Usage:    "Directory receiving " + privateKeyFile + " and " + publicKeyFile,
				Required: true,
			},
		},
		Action: st.keygen,
	}
}

func (st *state) keygen(c *cli.Context) error {
	dir, err := expandPath(c.String("out"))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, dirPermMode); err != nil {
		return errors.Wrap(err, "cannot create output directory")
	}
	prv, pub, err := sike.GenerateKeyPair(st.params, nil)
	if err != nil {
		return err
	}
	if err := writeHex(filepath.Join(dir, privateKeyFile), prv.Export(nil), privatePermMode); err != nil {
		return err
	}
	if err := writeHex(filepath.Join(dir, publicKeyFile), pub.Export(nil), publicPermMode); err != nil {
		return err
	}
	st.log.Info().Str("params", st.params.Name).Str("dir", dir).Msg("key pair generated")
	return nil
}

func (st *state) encapsCommand() *cli.Command {
	return &cli.Command{
		Name:  "encaps",
		Usage: "Encapsulate a fresh shared secret for a public key",
		Description: "Prints the shared secret in hexadecimal. The ciphertext goes to the --out\n" +
			"file, or is printed on the line before the shared secret.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pub",
				Usage:    "Public key file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Ciphertext output file",
			},
		},
		Action: st.encaps,
	}
}

func (st *state) encaps(c *cli.Context) error {
	enc, err := readHex(c.String("pub"))
	if err != nil {
		return err
	}
	pub := sike.NewPublicKey(st.params, sike.KeyVariantSIKE)
	if err := pub.Import(enc); err != nil {
		return errors.Wrap(err, "cannot load public key")
	}
	ct, ss, err := sike.Encapsulate(nil, pub)
	if err != nil {
		return err
	}
	if out := c.String("out"); out != "" {
		path, err := expandPath(out)
		if err != nil {
			return err
		}
		if err := writeHex(path, ct, publicPermMode); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(c.App.Writer, hex.EncodeToString(ct))
	}
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(ss))
	st.log.Debug().Int("ciphertext_size", len(ct)).Msg("secret encapsulated")
	return nil
}

func (st *state) decapsCommand() *cli.Command {
	return &cli.Command{
		Name:  "decaps",
		Usage: "Recover the shared secret from a ciphertext",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Directory holding " + privateKeyFile,
				Required: true,
			},
			&cli.StringFlag{
				Name:     "ct",
				Usage:    "Ciphertext file",
				Required: true,
			},
		},
		Action: st.decaps,
	}
}

func (st *state) decaps(c *cli.Context) error {
	dir, err := expandPath(c.String("key"))
	if err != nil {
		return err
	}
	enc, err := readHex(filepath.Join(dir, privateKeyFile))
	if err != nil {
		return err
	}
	prv := sike.NewPrivateKey(st.params, sike.KeyVariantSIKE)
	if err := prv.Import(enc); err != nil {
		return errors.Wrap(err, "cannot load private key")
	}
	ct, err := readHex(c.String("ct"))
	if err != nil {
		return err
	}
	ss, err := sike.Decapsulate(prv, ct)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(ss))
	return nil
}

func (st *state) benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Measure batched encapsulation and decapsulation",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "n",
				Usage: "Number of operations per batch",
				Value: 64,
			},
			&cli.StringFlag{
				Name:  "metrics-out",
				Usage: "Write the results to this file in Prometheus text format",
			},
		},
		Action: st.bench,
	}
}

type benchMetrics struct {
	registry *prometheus.Registry
	duration *prometheus.GaugeVec
	ops      *prometheus.CounterVec
}

func newBenchMetrics(params string) *benchMetrics {
	labels := prometheus.Labels{"params": params}
	m := &benchMetrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   metricsNamespace,
				Subsystem:   "bench",
				Name:        "duration_seconds",
				Help:        "Wall-clock duration of the last batch",
				ConstLabels: labels,
			},
			[]string{"op"},
		),
		ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   metricsNamespace,
				Subsystem:   "bench",
				Name:        "operations_total",
				Help:        "Number of completed operations",
				ConstLabels: labels,
			},
			[]string{"op"},
		),
	}
	m.registry.MustRegister(m.duration, m.ops)
	return m
}

func (m *benchMetrics) observe(op string, n int, d time.Duration) {
	m.duration.WithLabelValues(op).Set(d.Seconds())
	m.ops.WithLabelValues(op).Add(float64(n))
}

func (st *state) bench(c *cli.Context) error {
	n := c.Int("n")
	if n <= 0 {
		return errors.Errorf("invalid batch size %d", n)
	}
	metrics := newBenchMetrics(st.params.Name)

	start := time.Now()
	prv, pub, err := sike.GenerateKeyPair(st.params, nil)
	if err != nil {
		return err
	}
	metrics.observe("keygen", 1, time.Since(start))

	pubs := make([]*sike.PublicKey, n)
	for i := range pubs {
		pubs[i] = pub
	}
	start = time.Now()
	cts, sss, err := sike.EncapsulateBatch(c.Context, nil, pubs, st.cfg.Workers)
	if err != nil {
		return err
	}
	encTime := time.Since(start)
	metrics.observe("encaps", n, encTime)

	start = time.Now()
	dec, err := sike.DecapsulateBatch(c.Context, prv, cts, st.cfg.Workers)
	if err != nil {
		return err
	}
	decTime := time.Since(start)
	metrics.observe("decaps", n, decTime)

	for i := range sss {
		if !bytes.Equal(sss[i], dec[i]) {
			return errors.Errorf("shared secret mismatch in lane %d", i)
		}
	}

	st.log.Info().
		Str("params", st.params.Name).
		Int("n", n).
		Dur("encaps", encTime).
		Dur("decaps", decTime).
		Msg("batch completed")
	fmt.Fprintf(c.App.Writer, "encaps: %d ops in %v (%.1f ops/s)\n", n, encTime, opsPerSecond(n, encTime))
	fmt.Fprintf(c.App.Writer, "decaps: %d ops in %v (%.1f ops/s)\n", n, decTime, opsPerSecond(n, decTime))

	if out := c.String("metrics-out"); out != "" {
		path, err := expandPath(out)
		if err != nil {
			return err
		}
		if err := prometheus.WriteToTextfile(path, metrics.registry); err != nil {
			return errors.Wrap(err, "cannot write metrics")
		}
	}
	return nil
}

func opsPerSecond(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

func readHex(name string) ([]byte, error) {
	path, err := expandPath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read input file")
	}
	b, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, errors.Wrapf(err, "%s does not hold hexadecimal data", path)
	}
	return b, nil
}

func writeHex(path string, data []byte, perm os.FileMode) error {
	s := hex.EncodeToString(data) + "\n"
	if err := os.WriteFile(path, []byte(s), perm); err != nil {
		return errors.Wrapf(err, "cannot write %s", path)
	}
	return nil
}
