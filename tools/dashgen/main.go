package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/satsearch-go/tools/dashgen/dashboards"
	"github.com/donaldgifford/satsearch-go/tools/dashgen/rules"
	"github.com/donaldgifford/satsearch-go/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	dashboard := flag.Bool("dashboard", true, "generate the Grafana dashboard")
	ruleFiles := flag.Bool("rules", true, "generate Prometheus recording and alert rules")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	cfg.DashboardEnabled = *dashboard
	cfg.RulesEnabled = *ruleFiles

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one generated file, relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	files, res, err := generate(cfg)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !res.Ok() {
		return fmt.Errorf("validation failed:\n  %s", strings.Join(res.Errors, "\n  "))
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, f := range files {
		path := filepath.Join(cfg.OutputDir, f.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, f.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}

// generate builds and validates every enabled artifact.
func generate(cfg Config) ([]artifact, validate.Result, error) {
	var (
		files []artifact
		res   validate.Result
	)

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, res, fmt.Errorf("building dashboard: %w", err)
		}
		res.Merge(validate.Dashboard(dash, KnownMetrics))

		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, res, fmt.Errorf("marshaling dashboard: %w", err)
		}
		files = append(files, artifact{
			path: filepath.Join("grafana", "data", dashboards.UID+".json"),
			data: append(data, '\n'),
		})
	}

	if cfg.RulesEnabled {
		recording := rules.RecordingRules()
		alerts := rules.AlertRules()

		for _, cr := range []rules.PrometheusRule{recording, alerts} {
			res.Merge(validate.Rules(cr, KnownMetrics))

			data, err := marshalYAML(cr)
			if err != nil {
				return nil, res, err
			}
			files = append(files, artifact{
				path: filepath.Join("prometheus", cr.Metadata.Name+".yaml"),
				data: data,
			})
		}

		// Plain rule file for Prometheus installs without the operator.
		plain := rules.Flatten(recording, alerts)
		data, err := marshalYAML(plain)
		if err != nil {
			return nil, res, err
		}
		files = append(files, artifact{
			path: filepath.Join("prometheus", "satsearch-rules.yaml"),
			data: data,
		})
	}

	if len(files) == 0 {
		return nil, res, errors.New("nothing to generate")
	}
	return files, res, nil
}

func marshalYAML(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling rules: %w", err)
	}
	return append([]byte(generatedHeader), data...), nil
}
