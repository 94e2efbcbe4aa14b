// Package main generates the Grafana dashboard and Prometheus rule artifacts
// for the sainto API under deploy/.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"
	"gopkg.in/yaml.v3"

	"github.com/bilegt6969/sainto-api/tools/dashgen/dashboards"
	"github.com/bilegt6969/sainto-api/tools/dashgen/rules"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	recording := rules.RecordingRules()
	alerts := rules.AlertRules()

	for _, group := range append(recording.Spec.Groups, alerts.Spec.Groups...) {
		for _, rule := range group.Rules {
			unknown, err := unknownMetrics(rule.Expr)
			if err != nil {
				return fmt.Errorf("rule %s%s: %w", rule.Record, rule.Alert, err)
			}
			if len(unknown) > 0 {
				return fmt.Errorf("rule %s%s references unknown metrics %v", rule.Record, rule.Alert, unknown)
			}
		}
	}

	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return fmt.Errorf("building overview dashboard: %w", err)
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	dashJSON, err := json.MarshalIndent(dash, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dashboard: %w", err)
	}
	dashJSON = append(dashJSON, '\n')

	if cfg.DashboardEnabled {
		path := filepath.Join(cfg.OutputDir, "grafana", "data", "sainto-overview.json")
		if err := writeFile(path, dashJSON); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}

	if cfg.RulesEnabled {
		for name, cr := range map[string]rules.PrometheusRule{
			"sainto-recording-rules.yaml": recording,
			"sainto-alerts.yaml":          alerts,
		} {
			data, err := yaml.Marshal(cr)
			if err != nil {
				return fmt.Errorf("marshaling %s: %w", name, err)
			}
			path := filepath.Join(cfg.OutputDir, "prometheus", name)
			if err := writeFile(path, append([]byte(generatedHeader), data...)); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
		}
	}

	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// unknownMetrics parses expr as PromQL and returns the selected metric names
// that are not in KnownMetrics. Histogram _bucket/_sum/_count suffixes map to
// the base name.
func unknownMetrics(expr string) ([]string, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, fmt.Errorf("parsing expression %q: %w", expr, err)
	}

	var unknown []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		base := vs.Name
		for _, suffix := range []string{"_bucket", "_sum", "_count"} {
			if rest, found := strings.CutSuffix(base, suffix); found && rest != "" {
				base = rest
				break
			}
		}
		if !KnownMetrics[base] {
			unknown = append(unknown, vs.Name)
		}
		return nil
	})
	return unknown, nil
}
