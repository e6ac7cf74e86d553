// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package scenario describes V2X simulation scenarios and converts their mobility and
// position scripts into the plan handed to the simulation engine.
package scenario

import (
	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/onosproject/onos-lib-go/pkg/logging"
	"net"
)

var log = logging.GetLogger("scenario")

// Scenario is a description of a simulated V2X scenario
type Scenario struct {
	MobilityDir           string      `mapstructure:"mobility_dir" yaml:"mobility_dir"`
	MobilityFile          string      `mapstructure:"mobility_file" yaml:"mobility_file"`
	GNBPositionsFile      string      `mapstructure:"gnb_positions_file" yaml:"gnb_positions_file"`
	OutputDir             string      `mapstructure:"output_dir" yaml:"output_dir"`
	Seed                  uint32      `mapstructure:"seed" yaml:"seed"`
	Logging               bool        `mapstructure:"logging" yaml:"logging"`
	TxPower               float64     `mapstructure:"tx_power" yaml:"tx_power"`
	Application           Application `mapstructure:"application" yaml:"application"`
	BearerActivationDelay float64     `mapstructure:"bearer_activation_delay" yaml:"bearer_activation_delay"`
	StopPadding           float64     `mapstructure:"stop_padding" yaml:"stop_padding"`
	ExplicitStartTime     bool        `mapstructure:"explicit_start_time" yaml:"explicit_start_time"`
	AxisDiagnostics       bool        `mapstructure:"axis_diagnostics" yaml:"axis_diagnostics"`
}

// Application is a description of the groupcast traffic sent over the sidelink
type Application struct {
	PacketSize   uint32  `mapstructure:"packet_size" yaml:"packet_size"`
	DataRateKbps float64 `mapstructure:"data_rate_kbps" yaml:"data_rate_kbps"`
	Port         uint16  `mapstructure:"port" yaml:"port"`
	GroupAddress string  `mapstructure:"group_address" yaml:"group_address"`
}

// BitRate returns the application data rate in bits per second
func (a Application) BitRate() float64 {
	return a.DataRateKbps * 1000
}

// Validate checks that the scenario names its inputs and describes usable traffic
func (s *Scenario) Validate() error {
	if s.MobilityFile == "" {
		return errors.NewInvalid("mobility file not specified")
	}
	if s.GNBPositionsFile == "" {
		return errors.NewInvalid("gNB positions file not specified")
	}
	if s.Application.PacketSize == 0 {
		return errors.NewInvalid("application packet size must be positive")
	}
	if s.Application.DataRateKbps <= 0 {
		return errors.NewInvalid("application data rate must be positive: %g", s.Application.DataRateKbps)
	}
	if ip := net.ParseIP(s.Application.GroupAddress); ip == nil || !ip.IsMulticast() {
		return errors.NewInvalid("invalid groupcast address: %s", s.Application.GroupAddress)
	}
	if s.BearerActivationDelay < 0 || s.StopPadding < 0 {
		return errors.NewInvalid("bearer activation delay and stop padding cannot be negative")
	}
	return nil
}
