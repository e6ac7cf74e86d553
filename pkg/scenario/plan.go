// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package scenario

import (
	"fmt"
	"github.com/onosproject/v2x-scenario/pkg/mobility"
	"github.com/onosproject/v2x-scenario/pkg/utils"
	"gopkg.in/yaml.v3"
)

const generatedHeader = "# Generated by v2x-scenario; DO NOT EDIT\n"

// Plan is everything the simulation engine needs to instantiate the scenario
type Plan struct {
	Seed          uint32           `yaml:"seed"`
	OutputDir     string           `yaml:"output_dir"`
	TxPower       float64          `yaml:"tx_power"`
	Logging       bool             `yaml:"logging"`
	MobilityTrace string           `yaml:"mobility_trace"`
	GNBPositions  string           `yaml:"gnb_positions"`
	Summary       mobility.Summary `yaml:"summary"`
	UENodes       uint32           `yaml:"ue_nodes"`
	GNBs          []mobility.Node  `yaml:"gnbs"`
	Application   Application      `yaml:"application"`
	Timing        Timing           `yaml:"timing"`
}

// Timing holds the simulation schedule in seconds
type Timing struct {
	SimulationTime        float64 `yaml:"simulation_time"`
	BearerActivation      float64 `yaml:"bearer_activation"`
	FinalBearerActivation float64 `yaml:"final_bearer_activation"`
	FinalSimulationTime   float64 `yaml:"final_simulation_time"`
	AppStart              float64 `yaml:"app_start"`
	AppStop               float64 `yaml:"app_stop"`
}

// GeneratePlan parses the mobility trace and gNB position scripts named by the scenario
// and builds the engine plan from them
func GeneratePlan(s *Scenario) (*Plan, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var opts []mobility.Option
	if s.ExplicitStartTime {
		opts = append(opts, mobility.WithExplicitStartTime())
	}
	if s.AxisDiagnostics {
		opts = append(opts, mobility.WithAxisDiagnostics())
	}

	tracePath := utils.ResolvePath(s.MobilityDir, s.MobilityFile)
	summary, err := mobility.SummarizeTrace(tracePath, opts...)
	if err != nil {
		return nil, err
	}
	log.Infof("Mobility summary:\n%s", summary)

	positionsPath := utils.ResolvePath(s.MobilityDir, s.GNBPositionsFile)
	nodes, err := mobility.LoadPositions(positionsPath, opts...)
	if err != nil {
		return nil, err
	}
	log.Debugf("gNB positions: %s", nodes)

	plan := BuildPlan(s, summary, nodes)
	plan.MobilityTrace = tracePath
	plan.GNBPositions = positionsPath
	return plan, nil
}

// BuildPlan combines the trace summary and gNB positions into the engine plan
func BuildPlan(s *Scenario, summary *mobility.Summary, gnbs mobility.NodeMap) *Plan {
	return &Plan{
		Seed:        s.Seed,
		OutputDir:   s.OutputDir,
		TxPower:     s.TxPower,
		Logging:     s.Logging,
		Summary:     *summary,
		UENodes:     summary.Nodes,
		GNBs:        gnbs.Ordered(),
		Application: s.Application,
		Timing:      computeTiming(s, summary),
	}
}

// The bearers are activated at the first trace event and the application starts
// sending once its first packet could have been generated
func computeTiming(s *Scenario, summary *mobility.Summary) Timing {
	simulationTime := summary.Duration()
	bearerActivation := summary.StartTime
	finalBearerActivation := bearerActivation + s.BearerActivationDelay
	finalSimulationTime := simulationTime + s.StopPadding
	firstPacket := float64(s.Application.PacketSize) * 8.0 / s.Application.BitRate()
	return Timing{
		SimulationTime:        simulationTime,
		BearerActivation:      bearerActivation,
		FinalBearerActivation: finalBearerActivation,
		FinalSimulationTime:   finalSimulationTime,
		AppStart:              finalBearerActivation + firstPacket,
		AppStop:               finalSimulationTime,
	}
}

// SavePlanFile saves the given plan as YAML in the specified file path; stdout if -
func SavePlanFile(plan *Plan, path string) error {
	output, err := utils.CreateOutput(path)
	if err != nil {
		return err
	}
	defer output.Close()

	if _, err = fmt.Fprint(output, generatedHeader); err != nil {
		return err
	}
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)
	if err = encoder.Encode(plan); err != nil {
		return err
	}
	return encoder.Close()
}
