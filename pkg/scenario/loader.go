// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package scenario

import (
	"github.com/onosproject/v2x-scenario/pkg/utils"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"os"
)

// Command-line flags that may override scenario keys
var flagKeys = map[string]string{
	"mobility-dir":  "mobility_dir",
	"mobility-file": "mobility_file",
	"gnb-positions": "gnb_positions_file",
	"output-dir":    "output_dir",
	"seed":          "seed",
}

// LoadScenario loads the scenario from the specified YAML file; - for stdin and empty for defaults only.
// Any of the given flags that were set override values from the file.
func LoadScenario(path string, flags *pflag.FlagSet) (*Scenario, error) {
	cfg := newConfig()
	if path != "" {
		log.Infof("Loading scenario from %s", path)
		if err := readConfig(cfg, path); err != nil {
			return nil, err
		}
	}
	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := cfg.BindPFlag(key, flag); err != nil {
					return nil, err
				}
			}
		}
	}

	scenario := &Scenario{}
	if err := cfg.Unmarshal(scenario); err != nil {
		return nil, err
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return scenario, nil
}

// LoadScenarioFile loads the specified scenario YAML file
func LoadScenarioFile(path string) (*Scenario, error) {
	return LoadScenario(path, nil)
}

// Creates viper configuration populated with the scenario defaults
func newConfig() *viper.Viper {
	cfg := viper.New()
	cfg.SetConfigType("yaml")
	cfg.SetDefault("mobility_dir", "./scratch/mob")
	cfg.SetDefault("mobility_file", "urban-low.tcl")
	cfg.SetDefault("gnb_positions_file", "001-gnb.tcl")
	cfg.SetDefault("output_dir", "./")
	cfg.SetDefault("seed", 1)
	cfg.SetDefault("logging", true)
	cfg.SetDefault("tx_power", 23.0)
	cfg.SetDefault("application.packet_size", 200)
	cfg.SetDefault("application.data_rate_kbps", 16.0)
	cfg.SetDefault("application.port", 1978)
	cfg.SetDefault("application.group_address", "225.0.0.0")
	cfg.SetDefault("bearer_activation_delay", 0.01)
	cfg.SetDefault("stop_padding", 1.0)
	cfg.SetDefault("explicit_start_time", false)
	cfg.SetDefault("axis_diagnostics", false)
	return cfg
}

// Reads configuration from the specified path (- for stdin) via viper; ready to Unmarshal
func readConfig(cfg *viper.Viper, path string) error {
	if path == utils.StdStream {
		return cfg.ReadConfig(os.Stdin)
	}
	cfg.SetConfigFile(path)
	return cfg.ReadInConfig()
}
