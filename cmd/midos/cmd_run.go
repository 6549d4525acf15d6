package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/hupe1980/midos"
	midosprom "github.com/hupe1980/midos/metrics/prometheus"
	"github.com/hupe1980/midos/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	var rf runFlags

	cmd := &cobra.Command{
		Use:   "run [dataset]",
		Short: "Mine the best K subgroups of a dataset",
		Long: `Run reads a dataset (plain, gzip, zstd or lz4) from a local path,
s3://bucket/key or minio://bucket/key and writes the best K hypotheses.

K and the quality function default to the values in the dataset header.
Flags override a --config YAML file, which overrides the header.

Quality functions:
  1, sqrt-deviation     sqrt(g) * |p - p0|
  2, odds-squared       g / (1 - g) * (p - p0)^2
  3, weighted-accuracy  g * (2p - 1) + (1 - p0)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := loadConfig(rf.config)
			if err != nil {
				return err
			}
			s, err := resolve(rf, fc, args, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			return execute(cmd, g, s)
		},
	}

	f := cmd.Flags()
	f.StringVar(&rf.config, "config", "", "YAML run file")
	f.StringVarP(&rf.output, "output", "o", "", "Output path or s3:// / minio:// URL (default: stdout)")
	f.StringVar(&rf.format, "format", "text", "Output format: text or json")
	f.StringVar(&rf.codec, "codec", "go-json", "JSON codec: json or go-json")
	f.IntVarP(&rf.k, "k", "k", 0, "Number of hypotheses (default: from header)")
	f.StringVar(&rf.function, "function", "", "Quality function number or name (default: from header)")
	f.IntVar(&rf.targetLabel, "target", 1, "Target label (0 or 1)")
	f.Float64Var(&rf.significanceLevel, "significance", 0.01, "Significance level: 0.10, 0.05, 0.01 or 0.001")
	f.Float64Var(&rf.z, "z", 0, "z threshold (overrides --significance)")
	f.IntVar(&rf.workers, "workers", 0, "Parallel workers (0 or 1: sequential)")
	f.BoolVar(&rf.significantOnly, "significant", false, "Only output hypotheses passing the z-test")
	f.BoolVar(&rf.eagerBound, "eager-bound", false, "Prune against the worst retained hypothesis before K are found")
	f.StringVar(&rf.region, "region", "", "AWS region for s3:// URLs")
	f.StringVar(&rf.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address during the run")
	return cmd
}

func execute(cmd *cobra.Command, g *globalFlags, s settings) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := newLogger(cmd.ErrOrStderr(), g)
	if err != nil {
		return err
	}
	opts := append(s.options(), midos.WithLogger(logger))

	if s.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		mc, err := midosprom.NewCollector(reg)
		if err != nil {
			return err
		}
		stop, err := serveMetrics(s.metricsAddr, reg)
		if err != nil {
			return err
		}
		defer stop()
		opts = append(opts, midos.WithMetricsCollector(mc))
	}

	in, err := parseLocation(s.input)
	if err != nil {
		return err
	}
	store, name, err := openStore(ctx, in, s.region)
	if err != nil {
		return err
	}

	m, err := midos.Load(ctx, store, name, opts...)
	if err != nil {
		return err
	}

	res, err := m.Run(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, s.format, s.codec, res, m.K(), s.significantOnly); err != nil {
		return err
	}

	if s.output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	out, err := parseLocation(s.output)
	if err != nil {
		return err
	}
	outStore, outName, err := openStore(ctx, out, s.region)
	if err != nil {
		return err
	}
	if err := outStore.Put(ctx, outName, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", s.output, err)
	}
	logger.InfoContext(ctx, "report written", "output", s.output, "hypotheses", len(res.Hypotheses))
	return nil
}

// serveMetrics exposes reg on addr until the returned stop function runs.
func serveMetrics(addr string, reg *prometheus.Registry) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", midosprom.Handler(reg))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = ln.Close()
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
