// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for summarizing V2X scenario scripts and generating engine plans
package main

import (
	"fmt"
	"github.com/onosproject/onos-lib-go/pkg/logging"
	"github.com/onosproject/v2x-scenario/pkg/mobility"
	"github.com/onosproject/v2x-scenario/pkg/scenario"
	"github.com/spf13/cobra"
	"os"
)

const (
	traceFlag           = "trace"
	positionsFlag       = "positions"
	scenarioFlag        = "scenario"
	outputFlag          = "output"
	verboseFlag         = "verbose"
	explicitStartFlag   = "explicit-start-time"
	axisDiagnosticsFlag = "axis-diagnostics"

	mobilityDirFlag  = "mobility-dir"
	mobilityFileFlag = "mobility-file"
	gnbPositionsFlag = "gnb-positions"
	outputDirFlag    = "output-dir"
	seedFlag         = "seed"
)

// The main entry point
func main() {
	if err := getRootCommand().Execute(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func getRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "v2x-scenario {summary, positions, plan}",
		Short:             "Summarize V2X mobility scenarios and generate simulation plans",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setLogLevel,
	}
	cmd.PersistentFlags().Bool(verboseFlag, false, "enable debug logging")
	cmd.AddCommand(getSummaryCommand())
	cmd.AddCommand(getPositionsCommand())
	cmd.AddCommand(getPlanCommand())
	return cmd
}

func setLogLevel(cmd *cobra.Command, args []string) error {
	if verbose, _ := cmd.Flags().GetBool(verboseFlag); verbose {
		logging.GetLogger().SetLevel(logging.DebugLevel)
	}
	return nil
}

func getSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "summary",
		Aliases: []string{"info"},
		Short:   "Summarize the nodes and time window of an ns-2 mobility trace",
		Args:    cobra.NoArgs,
		RunE:    runSummaryCommand,
	}
	cmd.Flags().String(traceFlag, "-", "mobility trace file; use - for stdin (default)")
	cmd.Flags().Bool(explicitStartFlag, false, "report an event at time 0 as the trace start")
	return cmd
}

func runSummaryCommand(cmd *cobra.Command, args []string) error {
	tracePath, _ := cmd.Flags().GetString(traceFlag)
	var opts []mobility.Option
	if explicit, _ := cmd.Flags().GetBool(explicitStartFlag); explicit {
		opts = append(opts, mobility.WithExplicitStartTime())
	}
	summary, err := mobility.SummarizeTrace(tracePath, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), summary)
	return err
}

func getPositionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "positions",
		Aliases: []string{"pos"},
		Short:   "List the static node positions of an ns-2 position script in node order",
		Args:    cobra.NoArgs,
		RunE:    runPositionsCommand,
	}
	cmd.Flags().String(positionsFlag, "-", "position script file; use - for stdin (default)")
	cmd.Flags().Bool(axisDiagnosticsFlag, false, "report assignments to unknown axes")
	return cmd
}

func runPositionsCommand(cmd *cobra.Command, args []string) error {
	positionsPath, _ := cmd.Flags().GetString(positionsFlag)
	var opts []mobility.Option
	if axis, _ := cmd.Flags().GetBool(axisDiagnosticsFlag); axis {
		opts = append(opts, mobility.WithAxisDiagnostics())
	}
	nodes, err := mobility.LoadPositions(positionsPath, opts...)
	if err != nil {
		return err
	}
	for _, node := range nodes.Ordered() {
		if _, err = fmt.Fprintln(cmd.OutOrStdout(), node); err != nil {
			return err
		}
	}
	return nil
}

func getPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan",
		Aliases: []string{"gen"},
		Short:   "Generate the simulation engine plan YAML from a scenario",
		Args:    cobra.NoArgs,
		RunE:    runPlanCommand,
	}
	cmd.Flags().String(scenarioFlag, "", "scenario YAML file; use - for stdin; defaults apply if omitted")
	cmd.Flags().String(outputFlag, "-", "output plan YAML file; use - for stdout (default)")
	cmd.Flags().String(mobilityDirFlag, "", "directory holding the mobility and position scripts")
	cmd.Flags().String(mobilityFileFlag, "", "mobility trace file")
	cmd.Flags().String(gnbPositionsFlag, "", "gNB position script file")
	cmd.Flags().String(outputDirFlag, "", "directory where the engine stores simulation results")
	cmd.Flags().Uint32(seedFlag, 1, "random number generator seed")
	return cmd
}

func runPlanCommand(cmd *cobra.Command, args []string) error {
	scenarioPath, _ := cmd.Flags().GetString(scenarioFlag)
	outputPath, _ := cmd.Flags().GetString(outputFlag)

	s, err := scenario.LoadScenario(scenarioPath, cmd.Flags())
	if err != nil {
		return err
	}
	plan, err := scenario.GeneratePlan(s)
	if err != nil {
		return err
	}
	return scenario.SavePlanFile(plan, outputPath)
}
