package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Ali-Badami/lsm-demo/model"
)

// results is the combined output document: inputs plus everything the
// three calculators produce for them.
type results struct {
	Params        model.ParameterSet        `json:"params"`
	Calibration   model.Calibration         `json:"calibration"`
	Seed          int64                     `json:"seed"`
	Cost          model.CostResult          `json:"cost"`
	SpeedupSweep  []model.SpeedupPoint      `json:"speedupSweep"`
	Amplification model.AmplificationResult `json:"amplification"`
	Tradeoff      model.TradeoffPoint       `json:"tradeoff"`
	TradeoffCurve []model.TradeoffPoint     `json:"tradeoffCurve"`
	Verdict       model.WorkloadVerdict     `json:"verdict"`
}

// loadFile decodes a JSON or YAML file (by extension) into out.
func loadFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	case ".json":
		return json.Unmarshal(data, out)
	default:
		return fmt.Errorf("unsupported config format %q (use .json, .yaml or .yml)", ext)
	}
}

func main() {
	// Parse command line flags
	paramsFile := flag.String("params", "", "Path to parameter file (JSON or YAML); defaults used if omitted")
	calibrationFile := flag.String("calibration", "", "Path to calibration file (JSON or YAML); paper defaults used if omitted")
	seed := flag.Int64("seed", 0, "Random seed for the amplification noise (0 = non-reproducible)")
	optimization := flag.Bool("optimization", true, "Include the deferred-update (optimized) amplification curve")
	outputFile := flag.String("output", "", "Path to output JSON file (optional, prints to stdout if not specified)")
	flag.Parse()

	// Load parameters
	params := model.DefaultParameters()
	if *paramsFile != "" {
		if err := loadFile(*paramsFile, &params); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading params file: %v\n", err)
			os.Exit(1)
		}
	}
	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters: %v\n", err)
		os.Exit(1)
	}

	// Load calibration
	cal := model.DefaultCalibration()
	if *calibrationFile != "" {
		if err := loadFile(*calibrationFile, &cal); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading calibration file: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cal.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid calibration: %v\n", err)
		os.Exit(1)
	}

	// Run all three calculators
	cost, err := model.ComputeUpdateCost(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing update cost: %v\n", err)
		os.Exit(1)
	}
	sweep, err := model.SweepCostByIndexCount(params, model.DefaultSweepRange())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sweeping index counts: %v\n", err)
		os.Exit(1)
	}
	amplification, err := cal.SimulateWriteAmplification(
		params.WriteLoadOpsPerSec, params.FlushThresholdMB, *optimization, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error simulating write amplification: %v\n", err)
		os.Exit(1)
	}
	tradeoff, err := cal.TradeoffPoint(params.WriteRatioPct)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing tradeoff point: %v\n", err)
		os.Exit(1)
	}
	curve, err := cal.TradeoffCurve(model.DefaultTradeoffSamples())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing tradeoff curve: %v\n", err)
		os.Exit(1)
	}

	doc := results{
		Params:        params,
		Calibration:   cal,
		Seed:          *seed,
		Cost:          cost,
		SpeedupSweep:  sweep,
		Amplification: amplification,
		Tradeoff:      tradeoff,
		TradeoffCurve: curve,
		Verdict:       cal.ClassifyWorkload(params.WriteRatioPct),
	}

	// Output results
	output, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling results: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, output, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Results written to %s\n", *outputFile)
	} else {
		fmt.Println(string(output))
	}
}
