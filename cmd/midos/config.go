package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/midos"
	"github.com/hupe1980/midos/codec"
	"github.com/hupe1980/midos/quality"
	"github.com/hupe1980/midos/report"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML run file. Unset fields keep the flag defaults.
type fileConfig struct {
	Input             string   `yaml:"input"`
	Output            string   `yaml:"output"`
	Format            string   `yaml:"format"`
	Codec             string   `yaml:"codec"`
	K                 *int     `yaml:"k"`
	Function          string   `yaml:"function"`
	TargetLabel       *int     `yaml:"target_label"`
	SignificanceLevel *float64 `yaml:"significance_level"`
	Z                 *float64 `yaml:"z"`
	Workers           *int     `yaml:"workers"`
	SignificantOnly   *bool    `yaml:"significant_only"`
	EagerBound        *bool    `yaml:"eager_bound"`
	Region            string   `yaml:"region"`
	MetricsAddr       string   `yaml:"metrics_addr"`
}

func loadConfig(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// runFlags holds the flag values of the run command.
type runFlags struct {
	config            string
	output            string
	format            string
	codec             string
	k                 int
	function          string
	targetLabel       int
	significanceLevel float64
	z                 float64
	workers           int
	significantOnly   bool
	eagerBound        bool
	region            string
	metricsAddr       string
}

// settings is the merged run configuration.
type settings struct {
	input           string
	output          string
	format          report.Format
	codec           codec.Codec
	k               *int
	function        *quality.Function
	targetLabel     uint8
	z               float64
	workers         int
	significantOnly bool
	eagerBound      bool
	region          string
	metricsAddr     string
}

// resolve merges flags over the config file. changed reports whether a flag
// was set on the command line.
func resolve(rf runFlags, fc fileConfig, args []string, changed func(string) bool) (settings, error) {
	s := settings{
		input:           fc.Input,
		output:          rf.output,
		targetLabel:     1,
		z:               quality.DefaultConfig().SignificanceZ,
		workers:         rf.workers,
		significantOnly: rf.significantOnly,
		eagerBound:      rf.eagerBound,
		region:          rf.region,
		metricsAddr:     rf.metricsAddr,
	}
	if len(args) > 0 {
		s.input = args[0]
	}
	if s.input == "" {
		return s, fmt.Errorf("input dataset is required")
	}

	if !changed("output") && fc.Output != "" {
		s.output = fc.Output
	}
	if !changed("region") && fc.Region != "" {
		s.region = fc.Region
	}
	if !changed("metrics-addr") && fc.MetricsAddr != "" {
		s.metricsAddr = fc.MetricsAddr
	}
	if !changed("workers") && fc.Workers != nil {
		s.workers = *fc.Workers
	}
	if !changed("significant") && fc.SignificantOnly != nil {
		s.significantOnly = *fc.SignificantOnly
	}
	if !changed("eager-bound") && fc.EagerBound != nil {
		s.eagerBound = *fc.EagerBound
	}

	format := rf.format
	if !changed("format") && fc.Format != "" {
		format = fc.Format
	}
	f, err := report.ParseFormat(format)
	if err != nil {
		return s, err
	}
	s.format = f

	codecName := rf.codec
	if !changed("codec") && fc.Codec != "" {
		codecName = fc.Codec
	}
	c, ok := codec.ByName(codecName)
	if !ok {
		return s, fmt.Errorf("unsupported codec %q (use json or go-json)", codecName)
	}
	s.codec = c

	switch {
	case changed("k"):
		k := rf.k
		s.k = &k
	case fc.K != nil:
		s.k = fc.K
	}

	fn := fc.Function
	if changed("function") {
		fn = rf.function
	}
	if fn != "" {
		qf, err := quality.ParseFunction(fn)
		if err != nil {
			return s, err
		}
		s.function = &qf
	}

	label := -1
	switch {
	case changed("target"):
		label = rf.targetLabel
	case fc.TargetLabel != nil:
		label = *fc.TargetLabel
	}
	if label != -1 {
		if label < 0 || label > 1 {
			return s, fmt.Errorf("%w: %d", quality.ErrInvalidTargetLabel, label)
		}
		s.targetLabel = uint8(label)
	}

	level := 0.0
	switch {
	case changed("significance"):
		level = rf.significanceLevel
	case fc.SignificanceLevel != nil:
		level = *fc.SignificanceLevel
	}
	if level != 0 {
		z, ok := quality.ZForLevel(level)
		if !ok {
			return s, fmt.Errorf("unsupported significance level %g (use 0.10, 0.05, 0.01 or 0.001)", level)
		}
		s.z = z
	}
	switch {
	case changed("z"):
		s.z = rf.z
	case fc.Z != nil:
		s.z = *fc.Z
	}

	return s, nil
}

// options turns the settings into miner options. K and the function are
// left to the dataset header unless set.
func (s settings) options() []midos.Option {
	opts := []midos.Option{
		midos.WithTargetLabel(s.targetLabel),
		midos.WithSignificanceZ(s.z),
		midos.WithWorkers(s.workers),
	}
	if s.k != nil {
		opts = append(opts, midos.WithK(*s.k))
	}
	if s.function != nil {
		opts = append(opts, midos.WithFunction(*s.function))
	}
	if s.eagerBound {
		opts = append(opts, midos.WithEagerBound())
	}
	return opts
}
